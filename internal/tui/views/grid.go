package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// Grid shows one colored cell per character, wrapped at a fixed number of
// columns. Cells of blocks other than the highlighted one are dimmed.
type Grid struct {
	*tview.Table
	theme    *ui.Theme
	columns  int
	dim      float64
	chars    []*chardetv1.Character
	colors   map[string]string
	onSelect func(c *chardetv1.Character)
	onToggle func(c *chardetv1.Character)
}

// NewGrid creates a grid with the given column count and dim factor.
func NewGrid(theme *ui.Theme, columns int, dim float64) *Grid {
	if columns < 1 {
		columns = 16
	}
	table := tview.NewTable().
		SetSelectable(true, true).
		SetBorders(false)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetTitle(" Characters ")
	table.SetTitleColor(theme.TitleColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg).
		Attributes(tcell.AttrBold))

	g := &Grid{
		Table:   table,
		theme:   theme,
		columns: columns,
		dim:     dim,
		colors:  make(map[string]string),
	}
	table.SetSelectionChangedFunc(func(row, col int) {
		if c := g.at(row, col); c != nil && g.onSelect != nil {
			g.onSelect(c)
		}
	})
	table.SetSelectedFunc(func(row, col int) {
		if c := g.at(row, col); c != nil && g.onToggle != nil {
			g.onToggle(c)
		}
	})
	return g
}

// SetOnSelect sets the callback for cursor movement.
func (g *Grid) SetOnSelect(fn func(c *chardetv1.Character)) {
	g.onSelect = fn
}

// SetOnToggle sets the callback for Enter on a cell.
func (g *Grid) SetOnToggle(fn func(c *chardetv1.Character)) {
	g.onToggle = fn
}

// Update renders the analysis. active reports whether a block is drawn at
// full strength; highlight is shown in the title when non-empty.
func (g *Grid) Update(res *chardetv1.ClassifyResponse, active func(block string) bool, highlight string) {
	row, col := g.GetSelection()
	g.Clear()
	g.chars = nil
	clear(g.colors)
	if res == nil {
		g.SetTitle(" Characters ")
		return
	}
	g.chars = res.Characters
	for _, s := range res.Blocks {
		g.colors[s.Block.Name] = s.Block.Color
	}

	for i, c := range g.chars {
		on := active(c.Block)
		cell := tview.NewTableCell(" " + tview.Escape(c.Visual) + " ").
			SetAlign(tview.AlignCenter).
			SetBackgroundColor(g.theme.BlockColor(g.colors[c.Block], on, g.dim)).
			SetTextColor(g.theme.BlockColor("#ffffff", on, g.dim)).
			SetReference(c)
		if c.Substituted {
			cell.SetAttributes(tcell.AttrItalic)
		}
		g.SetCell(i/g.columns, i%g.columns, cell)
	}

	title := fmt.Sprintf(" Characters (%d) ", len(g.chars))
	if highlight != "" {
		title = fmt.Sprintf(" Characters (%d) highlight: %s ", len(g.chars), tview.Escape(highlight))
	}
	g.SetTitle(title)

	// Keep the cursor where it was, or on the last character.
	if n := len(g.chars); n > 0 {
		if row*g.columns+col >= n {
			row, col = (n-1)/g.columns, (n-1)%g.columns
		}
		g.Select(row, col)
	}
}

// Selected returns the character under the cursor.
func (g *Grid) Selected() *chardetv1.Character {
	return g.at(g.GetSelection())
}

func (g *Grid) at(row, col int) *chardetv1.Character {
	i := row*g.columns + col
	if row < 0 || col < 0 || col >= g.columns || i >= len(g.chars) {
		return nil
	}
	return g.chars[i]
}
