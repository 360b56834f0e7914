package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/tui/ui"
)

// ShareView shows the share token and link of the current text, with the
// link as a QR code.
type ShareView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewShareView creates the share page.
func NewShareView(theme *ui.Theme) *ShareView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Share ")
	tv.SetTitleColor(theme.TitleColor)
	return &ShareView{TextView: tv, theme: theme}
}

// Name implements ui.Component.
func (sv *ShareView) Name() string { return "Share" }

// Primary implements ui.Component.
func (sv *ShareView) Primary() tview.Primitive { return sv.TextView }

// Hints implements ui.Component.
func (sv *ShareView) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "j/k", Description: "Scroll"}}
}

// Show renders the token and link for text. The QR code is skipped when
// the link is too long to encode.
func (sv *ShareView) Show(text, link string) {
	sv.Clear()
	sv.ScrollToBeginning()
	key := ui.Tag(sv.theme.MenuKeyColor)
	val := ui.Tag(sv.theme.CounterColor)

	_, _ = fmt.Fprintf(sv, "\n  [%s::b]Token[-:-:-]  [%s]%s[-]\n", key, val, tview.Escape(share.Encode(text)))
	_, _ = fmt.Fprintf(sv, "  [%s::b]Link[-:-:-]   [%s]%s[-]\n\n", key, val, tview.Escape(link))

	art, err := share.RenderQR(link)
	if err != nil {
		_, _ = fmt.Fprintf(sv, "  [%s]%s[-]\n", ui.Tag(sv.theme.FlashWarnColor), tview.Escape(err.Error()))
		return
	}
	for _, line := range strings.Split(strings.TrimRight(art, "\n"), "\n") {
		_, _ = fmt.Fprintf(sv, "  [white:black]%s[-:-]\n", line)
	}
}
