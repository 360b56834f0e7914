// Package detect splits text into code points and describes each one: its
// Unicode block, the glyph used to draw it and its character name.
package detect

import (
	"golang.org/x/text/unicode/runenames"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/glyph"
)

// Character is one classified code point of an input text.
type Character struct {
	Index  int // position in runes
	Offset int // position in bytes
	Rune   rune
	Block  blocks.Block
	Visual string
	Kind   glyph.Kind
}

// CodePoint returns the U+XXXX notation of the rune.
func (c Character) CodePoint() string {
	return blocks.CodePoint(c.Rune)
}

// Substituted reports whether Visual is the placeholder rather than the rune.
func (c Character) Substituted() bool {
	return c.Kind.Substituted()
}

// Name returns the Unicode character name, or a bracketed description when
// the code point has none.
func (c Character) Name() string {
	if n := runenames.Name(c.Rune); n != "" {
		return n
	}
	switch c.Kind {
	case glyph.Invalid:
		return "<invalid>"
	case glyph.NonGraphic:
		return "<unassigned>"
	}
	return "<unnamed>"
}
