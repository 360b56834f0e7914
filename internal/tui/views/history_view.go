package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/glyph"
	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// HistoryView lists saved samples, most recently updated first.
type HistoryView struct {
	*tview.Table
	theme   *ui.Theme
	mapper  *glyph.Mapper
	samples []*chardetv1.Sample
	visible []*chardetv1.Sample
	total   int32
	filter  string
	onOpen  func(id string)
}

// NewHistoryView creates the history table.
func NewHistoryView(theme *ui.Theme, mapper *glyph.Mapper) *HistoryView {
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
	table.SetTitle(" History ")
	table.SetTitleColor(theme.TitleColor)

	hv := &HistoryView{Table: table, theme: theme, mapper: mapper}
	table.SetSelectedFunc(func(row, _ int) {
		if s := hv.at(row); s != nil && hv.onOpen != nil {
			hv.onOpen(s.Id)
		}
	})
	return hv
}

// Name implements ui.Component.
func (hv *HistoryView) Name() string { return "History" }

// Primary implements ui.Component.
func (hv *HistoryView) Primary() tview.Primitive { return hv.Table }

// Hints implements ui.Component.
func (hv *HistoryView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Load"},
		{Key: "/", Description: "Filter"},
	}
}

// SetOnOpen sets the callback for Enter on a sample.
func (hv *HistoryView) SetOnOpen(fn func(id string)) {
	hv.onOpen = fn
}

// Update replaces the listed samples; total is the number of saved samples.
func (hv *HistoryView) Update(samples []*chardetv1.Sample, total int32) {
	hv.samples = samples
	hv.total = total
	hv.render()
}

// SetFilter shows only samples whose text contains filter.
func (hv *HistoryView) SetFilter(filter string) {
	hv.filter = filter
	hv.render()
}

// Filter returns the active filter.
func (hv *HistoryView) Filter() string {
	return hv.filter
}

// Selected returns the sample under the cursor.
func (hv *HistoryView) Selected() *chardetv1.Sample {
	row, _ := hv.GetSelection()
	return hv.at(row)
}

func (hv *HistoryView) render() {
	row, _ := hv.GetSelection()
	hv.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" ID", 0},
		{" UPDATED", 0},
		{" CHARS", 0},
		{" BLOCKS", 0},
		{" TEXT", 1},
	}
	for col, h := range headers {
		hv.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(hv.theme.TableHeaderFg).
			SetBackgroundColor(hv.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	hv.visible = hv.visible[:0]
	for _, s := range hv.samples {
		if hv.filter == "" || strings.Contains(s.Body, hv.filter) {
			hv.visible = append(hv.visible, s)
		}
	}
	for i, s := range hv.visible {
		r := i + 1
		hv.SetCell(r, 0, tview.NewTableCell(" "+tview.Escape(shortID(s.Id))).SetTextColor(hv.theme.CounterColor))
		hv.SetCell(r, 1, tview.NewTableCell(" "+formatTimestamp(s.UpdatedAt)).SetTextColor(hv.theme.FgColor))
		hv.SetCell(r, 2, tview.NewTableCell(strconv.Itoa(int(s.CharCount))).SetAlign(tview.AlignRight).SetTextColor(hv.theme.FgColor))
		hv.SetCell(r, 3, tview.NewTableCell(strconv.Itoa(int(s.BlockCount))).SetAlign(tview.AlignRight).SetTextColor(hv.theme.FgColor))
		hv.SetCell(r, 4, tview.NewTableCell(" "+displayText(hv.mapper, s.Body, 80)).SetExpansion(1).SetTextColor(hv.theme.FgColor))
	}

	title := fmt.Sprintf(" History [%s]%d/%d[-] ", ui.Tag(hv.theme.CounterColor), len(hv.visible), hv.total)
	if hv.filter != "" {
		title = fmt.Sprintf(" History [%s]%d/%d[-] </%s> ", ui.Tag(hv.theme.CounterColor), len(hv.visible), hv.total, tview.Escape(hv.filter))
	}
	hv.SetTitle(title)

	if n := len(hv.visible); n > 0 {
		hv.Select(min(max(row, 1), n), 0)
	}
}

func (hv *HistoryView) at(row int) *chardetv1.Sample {
	i := row - 1
	if i < 0 || i >= len(hv.visible) {
		return nil
	}
	return hv.visible[i]
}
