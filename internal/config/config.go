package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/glyph"
)

// DefaultText is shown when no text has been entered yet.
const DefaultText = "Привіт!"

// Config represents ~/.chardetect/config.toml.
type Config struct {
	Placeholder  string  `toml:"placeholder"`
	DefaultText  string  `toml:"default_text"`
	CacheSize    int     `toml:"cache_size"`
	GridColumns  int     `toml:"grid_columns"`
	DimFactor    float64 `toml:"dim_factor"`
	ShareBaseURL string  `toml:"share_base_url"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Placeholder:  glyph.DefaultPlaceholder,
		DefaultText:  DefaultText,
		CacheSize:    detect.DefaultCacheSize,
		GridColumns:  16,
		DimFactor:    0.9,
		ShareBaseURL: "https://chardetect.local/",
	}
}

// Load reads config from the given path. Keys absent from the file keep
// their default values. Returns an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when the file does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks value ranges and builds the placeholder mapper once to
// reject unusable glyphs early.
func (c *Config) Validate() error {
	if _, err := c.Mapper(); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.GridColumns < 1 || c.GridColumns > 256 {
		return fmt.Errorf("grid_columns must be between 1 and 256, got %d", c.GridColumns)
	}
	if c.DimFactor < 0 || c.DimFactor > 1 {
		return fmt.Errorf("dim_factor must be between 0 and 1, got %g", c.DimFactor)
	}
	if c.ShareBaseURL != "" {
		if _, err := url.Parse(c.ShareBaseURL); err != nil {
			return fmt.Errorf("share_base_url: %w", err)
		}
	}
	return nil
}

// Mapper returns the glyph mapper for the configured placeholder.
func (c *Config) Mapper() (*glyph.Mapper, error) {
	if c.Placeholder == "" {
		return glyph.Default(), nil
	}
	return glyph.NewMapper(c.Placeholder)
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
