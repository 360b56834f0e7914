package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// BlockColor converts a "#rrggbb" block color to a terminal color. Inactive
// blocks are blended toward the theme's dim target by factor (0 keeps the
// color, 1 replaces it).
func (t *Theme) BlockColor(hex string, active bool, factor float64) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return t.BgColor
	}
	if !active && factor > 0 {
		target, err := colorful.Hex(t.DimTarget)
		if err == nil {
			c = c.BlendRgb(target, factor).Clamped()
		}
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// colorName returns a tview-compatible color name string.
func colorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// Tag returns the tview color tag name for c.
func Tag(c tcell.Color) string {
	return colorName(c)
}
