package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/glyph"
	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// SearchView searches saved samples by text and block.
type SearchView struct {
	*tview.Flex
	theme   *ui.Theme
	mapper  *glyph.Mapper
	query   *tview.InputField
	block   *tview.InputField
	results *tview.Table
	data    []*chardetv1.SearchResult

	onQuery  func(query, block string)
	onOpen   func(id string)
	onCancel func()
	setFocus func(p tview.Primitive)
}

// NewSearchView creates a new search view.
func NewSearchView(theme *ui.Theme, mapper *glyph.Mapper) *SearchView {
	newInput := func(label string) *tview.InputField {
		in := tview.NewInputField().
			SetLabel(label).
			SetFieldWidth(0)
		in.SetBackgroundColor(theme.BgColor)
		in.SetFieldBackgroundColor(theme.BgColor)
		in.SetFieldTextColor(theme.FgColor)
		in.SetLabelColor(theme.MenuKeyColor)
		return in
	}
	query := newInput(" Search: ")
	block := newInput(" Block: ")
	block.SetPlaceholder("any")
	block.SetAutocompleteFunc(func(text string) []string {
		if text == "" {
			return nil
		}
		var names []string
		for _, b := range blocks.Default().Filter(text) {
			names = append(names, b.Name)
		}
		return names
	})

	results := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	results.SetBorder(true)
	results.SetBorderColor(theme.BorderColor)
	results.SetBackgroundColor(theme.BgColor)
	results.SetTitle(" Results ")
	results.SetTitleColor(theme.TitleColor)
	results.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	inputs := tview.NewFlex().
		AddItem(query, 0, 2, true).
		AddItem(block, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(inputs, 1, 0, true).
		AddItem(results, 0, 1, false)

	sv := &SearchView{
		Flex:    flex,
		theme:   theme,
		mapper:  mapper,
		query:   query,
		block:   block,
		results: results,
	}

	done := func(next tview.Primitive) func(tcell.Key) {
		return func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				sv.Submit()
			case tcell.KeyTab, tcell.KeyBacktab:
				sv.focus(next)
			case tcell.KeyEscape:
				if sv.onCancel != nil {
					sv.onCancel()
				}
			}
		}
	}
	query.SetDoneFunc(done(block))
	block.SetDoneFunc(done(results))
	results.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
			sv.focus(query)
			return nil
		}
		return ev
	})
	results.SetSelectedFunc(func(row, _ int) {
		if r := sv.at(row); r != nil && sv.onOpen != nil {
			sv.onOpen(r.Sample.Id)
		}
	})
	return sv
}

// Name implements ui.Component.
func (sv *SearchView) Name() string { return "Search" }

// Primary implements ui.Component.
func (sv *SearchView) Primary() tview.Primitive { return sv.query }

// Hints implements ui.Component.
func (sv *SearchView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Search/Load"},
		{Key: "Tab", Description: "Next field"},
	}
}

// SetOnQuery sets the callback for a submitted search.
func (sv *SearchView) SetOnQuery(fn func(query, block string)) {
	sv.onQuery = fn
}

// SetOnOpen sets the callback for Enter on a result.
func (sv *SearchView) SetOnOpen(fn func(id string)) {
	sv.onOpen = fn
}

// SetOnCancel sets the callback for Esc in an input.
func (sv *SearchView) SetOnCancel(fn func()) {
	sv.onCancel = fn
}

// SetFocusFunc is used to move focus between the fields and results.
func (sv *SearchView) SetFocusFunc(fn func(p tview.Primitive)) {
	sv.setFocus = fn
}

// Prefill sets the inputs, e.g. from a :search command.
func (sv *SearchView) Prefill(query, block string) {
	sv.query.SetText(query)
	sv.block.SetText(block)
}

// InputFocused reports whether one of the inputs has focus.
func (sv *SearchView) InputFocused() bool {
	return sv.query.HasFocus() || sv.block.HasFocus()
}

// Submit runs the search with the current inputs.
func (sv *SearchView) Submit() {
	if sv.onQuery != nil {
		sv.onQuery(sv.query.GetText(), sv.block.GetText())
	}
}

// Results returns the results table.
func (sv *SearchView) Results() *tview.Table {
	return sv.results
}

// Update renders search results.
func (sv *SearchView) Update(results []*chardetv1.SearchResult) {
	sv.data = results
	sv.results.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" ID", 0},
		{" UPDATED", 0},
		{" MATCH", 1},
	}
	for col, h := range headers {
		sv.results.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(sv.theme.TableHeaderFg).
			SetBackgroundColor(sv.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	match := ui.Tag(sv.theme.CounterColor)
	for i, r := range results {
		row := i + 1
		sv.results.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(shortID(r.Sample.Id))).SetTextColor(sv.theme.CounterColor))
		sv.results.SetCell(row, 1, tview.NewTableCell(" "+formatTimestamp(r.Sample.UpdatedAt)).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 2, tview.NewTableCell(" "+highlightSnippet(sv.mapper, r.Snippet, match)).SetExpansion(1).SetTextColor(sv.theme.FgColor))
	}
	sv.results.SetTitle(fmt.Sprintf(" Results (%d) ", len(results)))
	if len(results) > 0 {
		sv.results.Select(1, 0)
	}
}

// SelectedID returns the sample id of the selected result.
func (sv *SearchView) SelectedID() string {
	row, _ := sv.results.GetSelection()
	if r := sv.at(row); r != nil {
		return r.Sample.Id
	}
	return ""
}

func (sv *SearchView) at(row int) *chardetv1.SearchResult {
	i := row - 1
	if i < 0 || i >= len(sv.data) {
		return nil
	}
	return sv.data[i]
}

func (sv *SearchView) focus(p tview.Primitive) {
	if sv.setFocus != nil {
		sv.setFocus(p)
	}
}
