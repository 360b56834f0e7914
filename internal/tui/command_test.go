package tui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matheus3301/chardetect/internal/blocks"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"quit", Command{Name: "quit"}},
		{"  Q  ", Command{Name: "q"}},
		{"search hello world", Command{Name: "search", Args: "hello world"}},
		{"text   Привіт ", Command{Name: "text", Args: "Привіт"}},
		{"hl Basic Latin", Command{Name: "hl", Args: "Basic Latin"}},
		{"", Command{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseCommand(tt.input)); diff != "" {
			t.Errorf("ParseCommand(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestResolveBlock(t *testing.T) {
	table := blocks.Default()
	tests := []struct {
		input   string
		want    string
		errPart string
	}{
		{"Cyrillic", "Cyrillic", ""},
		{"cyrillic", "Cyrillic", ""},
		{"armen", "Armenian", ""},
		{"thai", "Thai", ""},
		{"arabic ext", "", "ambiguous"},
		{"klingon", "", "no block"},
		{"  ", "", "required"},
	}
	for _, tt := range tests {
		got, err := resolveBlock(table, tt.input)
		if tt.errPart != "" {
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("resolveBlock(%q) error = %v, want %q", tt.input, err, tt.errPart)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveBlock(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveBlock(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
