package views

import (
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
)

// DetectPage is the main page: the editor and character grid on the left,
// the blocks of the text and the detail panel on the right.
type DetectPage struct {
	*tview.Flex
	Editor *Editor
	Grid   *Grid
	Blocks *BlockList
	Detail *Detail
	panes  []tview.Primitive
}

// NewDetectPage builds the page.
func NewDetectPage(theme *ui.Theme, columns int, dim float64) *DetectPage {
	p := &DetectPage{
		Editor: NewEditor(theme),
		Grid:   NewGrid(theme, columns, dim),
		Blocks: NewBlockList(theme),
		Detail: NewDetail(theme),
	}
	p.panes = []tview.Primitive{p.Editor, p.Grid, p.Blocks}

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.Editor, 7, 0, true).
		AddItem(p.Grid, 0, 1, false)
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.Blocks, 0, 1, false).
		AddItem(p.Detail, 11, 0, false)
	p.Flex = tview.NewFlex().
		AddItem(left, 0, 3, true).
		AddItem(right, 0, 2, false)
	return p
}

// Name implements ui.Component.
func (p *DetectPage) Name() string { return "Detect" }

// Primary implements ui.Component.
func (p *DetectPage) Primary() tview.Primitive { return p.Editor }

// Hints implements ui.Component.
func (p *DetectPage) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next pane"},
		{Key: "Enter", Description: "Highlight"},
	}
}

// EditorFocused reports whether the text area has focus.
func (p *DetectPage) EditorFocused() bool {
	return p.Editor.HasFocus()
}

// NextPane returns the pane after the focused one, wrapping around. With
// reverse set it goes backwards.
func (p *DetectPage) NextPane(reverse bool) tview.Primitive {
	step := 1
	if reverse {
		step = len(p.panes) - 1
	}
	for i, pane := range p.panes {
		if pane.HasFocus() {
			return p.panes[(i+step)%len(p.panes)]
		}
	}
	return p.panes[0]
}
