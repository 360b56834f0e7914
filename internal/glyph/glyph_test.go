package glyph

import (
	"testing"
	"unicode"
)

func TestVisualPassthrough(t *testing.T) {
	for _, r := range []rune{'A', 'z', '0', '!', '~', 'Б', 'б', 'ї', 'é', '中', 'あ', '한', '😀', '€', '→', '◌'} {
		if got := Visual(r); got != string(r) {
			t.Errorf("Visual(%q) = %q, want passthrough", r, got)
		}
	}
}

func TestVisualSubstitutes(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		kind Kind
	}{
		{"null", 0x0000, Control},
		{"tab", '\t', Control},
		{"newline", '\n', Control},
		{"carriage return", '\r', Control},
		{"delete", 0x007F, Control},
		{"c1 control", 0x0085, Control},
		{"space", ' ', Whitespace},
		{"no-break space", 0x00A0, Whitespace},
		{"em space", 0x2003, Whitespace},
		{"line separator", 0x2028, Whitespace},
		{"ideographic space", 0x3000, Whitespace},
		{"soft hyphen", 0x00AD, Format},
		{"zero width space", 0x200B, Format},
		{"zero width joiner", 0x200D, Format},
		{"right-to-left mark", 0x200F, Format},
		{"byte order mark", 0xFEFF, Format},
		{"combining acute", 0x0301, Mark},
		{"enclosing circle", 0x20DD, Mark},
		{"variation selector 16", 0xFE0F, Mark},
		{"devanagari vowel sign", 0x093E, Mark},
		{"skin tone modifier", 0x1F3FB, ZeroWidth},
		{"braille blank", 0x2800, Blank},
		{"hangul filler", 0x3164, Blank},
		{"private use", 0xE000, NonGraphic},
		{"unassigned", 0x0378, NonGraphic},
		{"noncharacter", 0xFFFF, NonGraphic},
		{"surrogate", 0xD800, Invalid},
		{"negative", -1, Invalid},
		{"beyond max", unicode.MaxRune + 1, Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k := Classify(tt.r); k != tt.kind {
				t.Errorf("Classify(%U) = %s, want %s", tt.r, k, tt.kind)
			}
			if got := Visual(tt.r); got != DefaultPlaceholder {
				t.Errorf("Visual(%U) = %q, want placeholder", tt.r, got)
			}
		})
	}
}

func TestVisualNeverEmpty(t *testing.T) {
	for r := rune(0); r <= unicode.MaxRune; r++ {
		s := Visual(r)
		if s == "" {
			t.Fatalf("Visual(%U) returned empty string", r)
		}
		if s != DefaultPlaceholder && s != string(r) {
			t.Fatalf("Visual(%U) = %q, want the rune or the placeholder", r, s)
		}
	}
}

func TestVisualDeterministic(t *testing.T) {
	for _, r := range []rune{'A', '\n', 0x0301, 0x200B, '中'} {
		first := Visual(r)
		for i := 0; i < 3; i++ {
			if got := Visual(r); got != first {
				t.Fatalf("Visual(%U) changed from %q to %q", r, first, got)
			}
		}
	}
}

func TestNewMapper(t *testing.T) {
	m, err := NewMapper("·")
	if err != nil {
		t.Fatalf("NewMapper(·) error = %v", err)
	}
	if got := m.Visual('\t'); got != "·" {
		t.Errorf("Visual(tab) = %q, want ·", got)
	}
	if got := m.Visual('A'); got != "A" {
		t.Errorf("Visual(A) = %q, want A", got)
	}
	if m.Placeholder() != "·" {
		t.Errorf("Placeholder() = %q", m.Placeholder())
	}

	for _, bad := range []string{"", "ab", " ", "\t", "́", "中", "​"} {
		if _, err := NewMapper(bad); err == nil {
			t.Errorf("NewMapper(%q) should fail", bad)
		}
	}
}

func TestRenderReportsKind(t *testing.T) {
	s, k := Default().Render('\n')
	if s != DefaultPlaceholder || k != Control || !k.Substituted() {
		t.Errorf("Render(newline) = %q, %s", s, k)
	}
	s, k = Default().Render('A')
	if s != "A" || k != Printable || k.Substituted() {
		t.Errorf("Render(A) = %q, %s", s, k)
	}
}

func TestKindString(t *testing.T) {
	if Mark.String() != "combining mark" {
		t.Errorf("Mark.String() = %q", Mark.String())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}
