package views

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// BlockList lists the blocks found in the current text, in order of first
// appearance, with their character counts.
type BlockList struct {
	*tview.Table
	theme     *ui.Theme
	summaries []*chardetv1.BlockSummary
	onSelect  func(s *chardetv1.BlockSummary)
	onToggle  func(s *chardetv1.BlockSummary)
}

// NewBlockList creates the block list table.
func NewBlockList(theme *ui.Theme) *BlockList {
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

	bl := &BlockList{Table: table, theme: theme}
	table.SetSelectionChangedFunc(func(row, _ int) {
		if s := bl.at(row); s != nil && bl.onSelect != nil {
			bl.onSelect(s)
		}
	})
	table.SetSelectedFunc(func(row, _ int) {
		if s := bl.at(row); s != nil && bl.onToggle != nil {
			bl.onToggle(s)
		}
	})
	return bl
}

// SetOnSelect sets the callback for cursor movement.
func (bl *BlockList) SetOnSelect(fn func(s *chardetv1.BlockSummary)) {
	bl.onSelect = fn
}

// SetOnToggle sets the callback for Enter on a block.
func (bl *BlockList) SetOnToggle(fn func(s *chardetv1.BlockSummary)) {
	bl.onToggle = fn
}

// Update renders the block summaries; highlight names the highlighted
// block, if any.
func (bl *BlockList) Update(summaries []*chardetv1.BlockSummary, highlight string) {
	row, _ := bl.GetSelection()
	bl.Clear()
	bl.summaries = summaries

	headers := []struct {
		text string
		exp  int
	}{
		{"", 0},
		{" BLOCK", 1},
		{" COUNT", 0},
		{" RANGE", 0},
	}
	for col, h := range headers {
		bl.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(bl.theme.TableHeaderFg).
			SetBackgroundColor(bl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	for i, s := range summaries {
		r := i + 1
		name := " " + tview.Escape(s.Block.Name)
		nameColor := bl.theme.FgColor
		if s.Block.Name == highlight {
			name = "▶" + tview.Escape(s.Block.Name)
			nameColor = bl.theme.CounterColor
		}
		bl.SetCell(r, 0, tview.NewTableCell("  ").
			SetBackgroundColor(bl.theme.BlockColor(s.Block.Color, true, 0)))
		bl.SetCell(r, 1, tview.NewTableCell(name).SetExpansion(1).SetTextColor(nameColor))
		bl.SetCell(r, 2, tview.NewTableCell(strconv.Itoa(int(s.Count))).SetAlign(tview.AlignRight).SetTextColor(bl.theme.FgColor))
		bl.SetCell(r, 3, tview.NewTableCell(" "+s.Block.Range).SetTextColor(bl.theme.FgColor))
	}

	bl.SetTitle(fmt.Sprintf(" Blocks (%d) ", len(summaries)))
	if n := len(summaries); n > 0 {
		bl.Select(min(max(row, 1), n), 0)
	}
}

// Selected returns the summary under the cursor.
func (bl *BlockList) Selected() *chardetv1.BlockSummary {
	row, _ := bl.GetSelection()
	return bl.at(row)
}

func (bl *BlockList) at(row int) *chardetv1.BlockSummary {
	i := row - 1 // account for header
	if i < 0 || i >= len(bl.summaries) {
		return nil
	}
	return bl.summaries[i]
}
