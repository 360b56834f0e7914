package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
)

// HelpSection is a titled group of key bindings.
type HelpSection struct {
	Title string
	Keys  [][2]string // key, description
}

// HelpView displays the key binding and command reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)
	return &HelpView{TextView: tv, theme: theme}
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return "Help" }

// Primary implements ui.Component.
func (hv *HelpView) Primary() tview.Primitive { return hv.TextView }

// Hints implements ui.Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "j/k", Description: "Scroll"}}
}

// SetSections renders the reference.
func (hv *HelpView) SetSections(sections []HelpSection) {
	hv.Clear()
	kc := ui.Tag(hv.theme.MenuKeyColor)
	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", s.Title)
		for _, k := range s.Keys {
			fmt.Fprintf(&b, "  [%s]%-18s[-:-:-] %s\n", kc, tview.Escape(k[0]), tview.Escape(k[1]))
		}
	}
	_, _ = fmt.Fprint(hv, b.String())
	hv.ScrollToBeginning()
}
