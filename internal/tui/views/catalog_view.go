package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// CatalogView lists every block the daemon knows.
type CatalogView struct {
	*tview.Table
	theme    *ui.Theme
	blocks   []*chardetv1.Block
	filter   string
	onToggle func(b *chardetv1.Block)
}

// NewCatalogView creates the catalog table.
func NewCatalogView(theme *ui.Theme) *CatalogView {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitle(" Blocks ")
	table.SetTitleColor(theme.TitleColor)

	cv := &CatalogView{Table: table, theme: theme}
	table.SetSelectedFunc(func(row, _ int) {
		if b := cv.at(row); b != nil && cv.onToggle != nil {
			cv.onToggle(b)
		}
	})
	return cv
}

// Name implements ui.Component.
func (cv *CatalogView) Name() string { return "Blocks" }

// Primary implements ui.Component.
func (cv *CatalogView) Primary() tview.Primitive { return cv.Table }

// Hints implements ui.Component.
func (cv *CatalogView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Highlight"},
		{Key: "/", Description: "Filter"},
	}
}

// SetOnToggle sets the callback for Enter on a block.
func (cv *CatalogView) SetOnToggle(fn func(b *chardetv1.Block)) {
	cv.onToggle = fn
}

// Filter returns the filter the blocks were loaded with.
func (cv *CatalogView) Filter() string {
	return cv.filter
}

// Update renders blocks, loaded for filter; highlight marks one block.
func (cv *CatalogView) Update(blocks []*chardetv1.Block, filter, highlight string) {
	row, _ := cv.GetSelection()
	cv.Clear()
	cv.blocks = blocks
	cv.filter = filter

	headers := []struct {
		text string
		exp  int
	}{
		{"", 0},
		{" NAME", 1},
		{" RANGE", 0},
		{" SIZE", 0},
		{" REFERENCE", 1},
	}
	for col, h := range headers {
		cv.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cv.theme.TableHeaderFg).
			SetBackgroundColor(cv.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	for i, b := range blocks {
		r := i + 1
		name, nameColor := " "+tview.Escape(b.Name), cv.theme.FgColor
		if b.Name == highlight {
			name, nameColor = "▶"+tview.Escape(b.Name), cv.theme.CounterColor
		}
		cv.SetCell(r, 0, tview.NewTableCell("  ").SetBackgroundColor(cv.theme.BlockColor(b.Color, true, 0)))
		cv.SetCell(r, 1, tview.NewTableCell(name).SetExpansion(1).SetTextColor(nameColor))
		cv.SetCell(r, 2, tview.NewTableCell(" "+b.Range).SetTextColor(cv.theme.FgColor))
		cv.SetCell(r, 3, tview.NewTableCell(fmt.Sprint(b.End-b.Start+1)).SetAlign(tview.AlignRight).SetTextColor(cv.theme.FgColor))
		cv.SetCell(r, 4, tview.NewTableCell(" "+tview.Escape(b.Reference)).SetExpansion(1).SetTextColor(cv.theme.FgColor))
	}

	title := fmt.Sprintf(" Blocks [%s]%d[-] ", ui.Tag(cv.theme.CounterColor), len(blocks))
	if filter != "" {
		title = fmt.Sprintf(" Blocks [%s]%d[-] </%s> ", ui.Tag(cv.theme.CounterColor), len(blocks), tview.Escape(filter))
	}
	cv.SetTitle(title)
	if n := len(blocks); n > 0 {
		cv.Select(min(max(row, 1), n), 0)
	}
}

func (cv *CatalogView) at(row int) *chardetv1.Block {
	i := row - 1
	if i < 0 || i >= len(cv.blocks) {
		return nil
	}
	return cv.blocks[i]
}
