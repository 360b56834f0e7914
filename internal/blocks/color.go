package blocks

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const referenceBase = "https://en.wikipedia.org/wiki/"

// def is one row of the built-in range data.
type def struct {
	start, end rune
	name       string
}

// ColorFor derives the display color of a block from its name. The hue comes
// from a hash of the name; saturation and lightness vary slightly so that
// neighbouring hues stay distinguishable behind white text.
func ColorFor(name string) string {
	h := xxhash.Sum64String(name)
	hue := float64(h % 360)
	sat := 0.45 + float64((h>>16)%20)/100
	light := 0.35 + float64((h>>32)%15)/100
	return colorful.Hsl(hue, sat, light).Hex()
}

// ReferenceFor returns the Wikipedia article for a block name.
func ReferenceFor(name string) string {
	return referenceBase + strings.ReplaceAll(name, " ", "_") + "_(Unicode_block)"
}

func (d def) block() Block {
	return Block{
		Name:      d.name,
		Start:     d.start,
		End:       d.end,
		Color:     ColorFor(d.name),
		Reference: ReferenceFor(d.name),
	}
}
