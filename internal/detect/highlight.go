package detect

import "github.com/matheus3301/chardetect/internal/blocks"

// Highlight tracks which block, if any, is emphasized. Blocks are matched
// by name. The zero value has nothing highlighted.
type Highlight struct {
	name string
}

// Toggle highlights b, or clears the highlight when b is already
// highlighted. It reports whether b is highlighted afterwards.
func (h *Highlight) Toggle(b blocks.Block) bool {
	if h.name == b.Name {
		h.name = ""
		return false
	}
	h.name = b.Name
	return true
}

// Clear removes the highlight.
func (h *Highlight) Clear() {
	h.name = ""
}

// Current returns the highlighted block name.
func (h *Highlight) Current() (string, bool) {
	return h.name, h.name != ""
}

// Active reports whether b should be drawn at full strength: either nothing
// is highlighted or b is the highlighted block.
func (h *Highlight) Active(b blocks.Block) bool {
	return h.name == "" || h.name == b.Name
}
