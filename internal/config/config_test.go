package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Placeholder = "·"
	cfg.DefaultText = "Aб"
	cfg.GridColumns = 32
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("loaded config mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultText != "Привіт!" {
		t.Errorf("DefaultText = %q", cfg.DefaultText)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("grid_columns = 8\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GridColumns != 8 {
		t.Errorf("GridColumns = %d, want 8", cfg.GridColumns)
	}
	if cfg.DimFactor != 0.9 || cfg.Placeholder != "◌" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"wide placeholder", `placeholder = "中"`, "cells wide"},
		{"invisible placeholder", `placeholder = " "`, "not printable"},
		{"negative cache", `cache_size = -1`, "cache_size"},
		{"zero columns", `grid_columns = 0`, "grid_columns"},
		{"dim factor", `dim_factor = 1.5`, "dim_factor"},
		{"bad toml", `grid_columns = "many"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content+"\n"), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %v, want it to mention %q", err, tt.errPart)
			}
		})
	}
}

func TestMapper(t *testing.T) {
	cfg := Default()
	cfg.Placeholder = ""
	m, err := cfg.Mapper()
	if err != nil {
		t.Fatal(err)
	}
	if m.Placeholder() != "◌" {
		t.Errorf("empty placeholder should fall back to the default, got %q", m.Placeholder())
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
