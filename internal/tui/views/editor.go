package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
)

// Editor is the text input of the detect page.
type Editor struct {
	*tview.TextArea
	onChange func(text string)
}

// NewEditor creates the text area.
func NewEditor(theme *ui.Theme) *Editor {
	ta := tview.NewTextArea().
		SetPlaceholder("Type or paste text...").
		SetWordWrap(false)
	ta.SetTextStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(theme.BgColor))
	ta.SetPlaceholderStyle(tcell.StyleDefault.Foreground(tcell.ColorGray).Background(theme.BgColor))
	ta.SetBorder(true)
	ta.SetBorderColor(theme.BorderColor)
	ta.SetBackgroundColor(theme.BgColor)
	ta.SetTitle(" Text ")
	ta.SetTitleColor(theme.TitleColor)

	e := &Editor{TextArea: ta}
	ta.SetChangedFunc(func() {
		if e.onChange != nil {
			e.onChange(e.GetText())
		}
	})
	return e
}

// SetOnChange sets the callback for every edit, including SetText.
func (e *Editor) SetOnChange(fn func(text string)) {
	e.onChange = fn
}

// Replace sets the whole text and moves the cursor to the end.
func (e *Editor) Replace(text string) {
	e.SetText(text, true)
}
