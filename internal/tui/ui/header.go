package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"
)

const logo = `┌─┐┬ ┬┌─┐┬─┐
│  ├─┤├─┤├┬┘
└─┘┴ ┴┴ ┴┴└─`

// DaemonData holds daemon information for display.
type DaemonData struct {
	Home        string
	Status      string
	Samples     int32
	Blocks      int32
	Placeholder string
	Watchers    int32
	Uptime      time.Duration
}

// Header is the top bar: daemon info, key hints and the logo.
type Header struct {
	*tview.Flex
	theme *Theme
	info  *tview.TextView
	menu  *tview.TextView
	logo  *tview.TextView
}

// NewHeader creates the header bar.
func NewHeader(theme *Theme) *Header {
	newText := func() *tview.TextView {
		tv := tview.NewTextView().SetDynamicColors(true)
		tv.SetBackgroundColor(theme.BgColor)
		return tv
	}
	h := &Header{
		theme: theme,
		info:  newText(),
		menu:  newText(),
		logo:  newText(),
	}
	h.info.SetBorderPadding(0, 0, 1, 1)
	h.menu.SetBorderPadding(0, 0, 2, 0)
	h.logo.SetTextAlign(tview.AlignRight)
	h.logo.SetBorderPadding(0, 0, 0, 1)

	titleColor := colorName(theme.TitleColor)
	for _, line := range strings.Split(logo, "\n") {
		_, _ = fmt.Fprintf(h.logo, "[%s::b]%s[-:-:-]\n", titleColor, line)
	}
	_, _ = fmt.Fprintf(h.logo, "[%s]char detect[-]", colorName(theme.FgColor))

	h.Flex = tview.NewFlex().
		AddItem(h.info, 34, 0, false).
		AddItem(h.menu, 0, 1, false).
		AddItem(h.logo, 16, 0, false)
	return h
}

// SetDaemon renders the daemon info panel.
func (h *Header) SetDaemon(data *DaemonData) {
	h.info.Clear()
	if data == nil {
		_, _ = fmt.Fprintf(h.info, "[%s]connecting...[-]", colorName(h.theme.FlashWarnColor))
		return
	}
	fg := colorName(h.theme.FgColor)
	ct := colorName(h.theme.CounterColor)
	row := func(label, value string) {
		_, _ = fmt.Fprintf(h.info, "[%s::b]%-8s[-:-:-] [%s]%s[-]\n", fg, label+":", ct, tview.Escape(value))
	}
	row("Home", shortenHome(data.Home))
	row("Status", data.Status)
	row("Samples", fmt.Sprint(data.Samples))
	row("Blocks", fmt.Sprint(data.Blocks))
	row("Glyph", data.Placeholder)
	row("Uptime", formatDuration(data.Uptime))
}

// SetHints renders key hints in columns of up to six rows.
func (h *Header) SetHints(hints []MenuHint) {
	h.menu.Clear()
	const rows = 6
	keyColor := colorName(h.theme.MenuKeyColor)
	pageColor := colorName(h.theme.PageKeyColor)

	lines := make([]string, rows)
	for i, hint := range hints {
		kc := keyColor
		if hint.Page {
			kc = pageColor
		}
		lines[i%rows] += fmt.Sprintf("[%s::b]%-9s[-:-:-] %-14s", kc, "<"+hint.Key+">", hint.Description)
	}
	_, _ = fmt.Fprint(h.menu, strings.Join(lines, "\n"))
}

// Crumbs is a breadcrumb bar showing the current navigation path.
type Crumbs struct {
	*tview.TextView
	theme *Theme
}

// NewCrumbs creates a new breadcrumb bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	return &Crumbs{TextView: tv, theme: theme}
}

// Update renders the breadcrumb trail from the page stack.
func (c *Crumbs) Update(stack []string) {
	c.Clear()
	parts := make([]string, 0, len(stack))
	for i, name := range stack {
		fg, bg, attr := c.theme.CrumbInactiveFg, c.theme.CrumbInactiveBg, ""
		if i == len(stack)-1 {
			fg, bg, attr = c.theme.CrumbActiveFg, c.theme.CrumbActiveBg, "b"
		}
		parts = append(parts, fmt.Sprintf("[%s:%s:%s] <%s> [-:-:-]", colorName(fg), colorName(bg), attr, strings.ToLower(name)))
	}
	_, _ = fmt.Fprint(c, strings.Join(parts, " "))
}

func shortenHome(path string) string {
	if len(path) <= 24 {
		return path
	}
	return "…" + path[len(path)-23:]
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
