package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// Detail describes the character or block under the cursor.
type Detail struct {
	*tview.TextView
	theme *ui.Theme
}

// NewDetail creates the detail panel.
func NewDetail(theme *ui.Theme) *Detail {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Details ")
	tv.SetTitleColor(theme.TitleColor)
	return &Detail{TextView: tv, theme: theme}
}

func (d *Detail) row(label, value string) {
	_, _ = fmt.Fprintf(d, " [%s::b]%-10s[-:-:-] [%s]%s[-]\n",
		ui.Tag(d.theme.FgColor), label+":", ui.Tag(d.theme.CounterColor), tview.Escape(value))
}

// ShowCharacter describes c, which belongs to block b (b may be nil).
func (d *Detail) ShowCharacter(c *chardetv1.Character, b *chardetv1.Block) {
	d.Clear()
	if c == nil {
		return
	}
	d.SetTitle(fmt.Sprintf(" %s ", c.CodePoint))
	d.row("Glyph", c.Visual)
	d.row("Code", c.CodePoint)
	d.row("Name", c.Name)
	d.row("Kind", c.Kind)
	d.row("Index", fmt.Sprintf("%d (byte %d)", c.Index, c.Offset))
	if c.Substituted {
		d.row("Shown as", "placeholder")
	}
	d.row("Block", c.Block)
	if b != nil {
		d.row("Range", b.Range)
		if b.Reference != "" {
			d.row("See", b.Reference)
		}
	}
}

// ShowBlock describes a block of the current text.
func (d *Detail) ShowBlock(s *chardetv1.BlockSummary, highlighted bool) {
	d.Clear()
	if s == nil {
		return
	}
	d.SetTitle(fmt.Sprintf(" %s ", tview.Escape(s.Block.Name)))
	d.row("Block", s.Block.Name)
	d.row("Range", s.Block.Range)
	d.row("Count", fmt.Sprint(s.Count))
	d.row("First at", fmt.Sprint(s.First))
	d.row("Color", s.Block.Color)
	if highlighted {
		d.row("State", "highlighted")
	}
	if s.Block.Reference != "" {
		d.row("See", s.Block.Reference)
	}
}
