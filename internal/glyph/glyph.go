// Package glyph turns single code points into strings that are safe to draw
// in one fixed-width cell.
//
// A rune is drawn as itself only when it is printable, has a visible shape
// and occupies at least one cell. Everything else (controls, whitespace,
// format characters, combining marks, zero-width and blank characters,
// private use and unassigned code points, invalid runes) is replaced by a
// single placeholder glyph so that every cell stays visible and clickable.
package glyph

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// DefaultPlaceholder is U+25CC DOTTED CIRCLE, the conventional stand-in for
// characters that have no glyph of their own.
const DefaultPlaceholder = "◌"

// Kind explains how a rune is rendered.
type Kind int

const (
	Printable Kind = iota
	Invalid
	Control
	Whitespace
	Format
	Mark
	ZeroWidth
	Blank
	NonGraphic
)

var kindNames = [...]string{
	Printable:  "printable",
	Invalid:    "invalid",
	Control:    "control",
	Whitespace: "whitespace",
	Format:     "format",
	Mark:       "combining mark",
	ZeroWidth:  "zero width",
	Blank:      "blank",
	NonGraphic: "non-graphic",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Substituted reports whether runes of this kind are drawn as the placeholder.
func (k Kind) Substituted() bool {
	return k != Printable
}

// blank holds graphic characters that nevertheless render as empty space.
var blank = map[rune]struct{}{
	'ᅟ': {}, // Hangul choseong filler
	'ᅠ': {}, // Hangul jungseong filler
	'⠀': {}, // Braille pattern blank
	'ㅤ': {}, // Hangul filler
	'ﾠ': {}, // Halfwidth hangul filler
}

// Classify returns the rendering kind of r. The checks run in a fixed order,
// so a tab is a Control rather than Whitespace.
func Classify(r rune) Kind {
	switch {
	case !utf8.ValidRune(r):
		return Invalid
	case unicode.IsControl(r):
		return Control
	case unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp) || unicode.IsSpace(r):
		return Whitespace
	case unicode.Is(unicode.Cf, r):
		return Format
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc):
		return Mark
	}
	if _, ok := blank[r]; ok {
		return Blank
	}
	if !unicode.IsGraphic(r) {
		return NonGraphic
	}
	if uniseg.StringWidth(string(r)) == 0 {
		return ZeroWidth
	}
	return Printable
}

// Mapper renders runes, substituting a fixed placeholder for unsafe ones.
type Mapper struct {
	placeholder string
}

// NewMapper returns a mapper using placeholder. The placeholder must be a
// single printable rune one cell wide.
func NewMapper(placeholder string) (*Mapper, error) {
	if utf8.RuneCountInString(placeholder) != 1 {
		return nil, fmt.Errorf("placeholder %q must be exactly one character", placeholder)
	}
	r, _ := utf8.DecodeRuneInString(placeholder)
	if k := Classify(r); k != Printable {
		return nil, fmt.Errorf("placeholder %q is not printable (%s)", placeholder, k)
	}
	if w := uniseg.StringWidth(placeholder); w != 1 {
		return nil, fmt.Errorf("placeholder %q is %d cells wide, want 1", placeholder, w)
	}
	return &Mapper{placeholder: placeholder}, nil
}

var defaultMapper = &Mapper{placeholder: DefaultPlaceholder}

// Default returns the mapper using DefaultPlaceholder.
func Default() *Mapper {
	return defaultMapper
}

// Placeholder returns the substitute glyph.
func (m *Mapper) Placeholder() string {
	return m.placeholder
}

// Render returns the visual representation of r together with its kind.
func (m *Mapper) Render(r rune) (string, Kind) {
	k := Classify(r)
	if k.Substituted() {
		return m.placeholder, k
	}
	return string(r), k
}

// Visual returns r itself when it is safe to draw, otherwise the placeholder.
// The result is never empty.
func (m *Mapper) Visual(r rune) string {
	s, _ := m.Render(r)
	return s
}

// Visual renders r with the default placeholder.
func Visual(r rune) string {
	return defaultMapper.Visual(r)
}
