package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/tui/ui"
)

// StatusBar shows the daemon status, what the current text is saved as,
// and the substitution count of the analysis.
type StatusBar struct {
	*tview.TextView
	theme         *ui.Theme
	status        string
	sampleID      string
	substitutions int32
	now           func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)
	return &StatusBar{TextView: tv, theme: theme, now: time.Now}
}

// SetStatus updates the daemon status display.
func (sb *StatusBar) SetStatus(status string) {
	sb.status = status
	sb.render()
}

// SetSample updates the saved marker; an empty id means unsaved.
func (sb *StatusBar) SetSample(id string) {
	sb.sampleID = id
	sb.render()
}

// SetSubstitutions updates the placeholder count.
func (sb *StatusBar) SetSubstitutions(n int32) {
	sb.substitutions = n
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	statusColor := sb.theme.FlashWarnColor
	if sb.status == "READY" {
		statusColor = sb.theme.FlashInfoColor
	}
	saved := "[gray]unsaved[-]"
	if sb.sampleID != "" {
		saved = fmt.Sprintf("[green]saved %s[-]", tview.Escape(shortID(sb.sampleID)))
	}
	clock := sb.now().Format("15:04")

	line := fmt.Sprintf(" [%s::b]%s[-:-:-] | %s | %d placeholders | %s",
		ui.Tag(statusColor), tview.Escape(sb.status), saved, sb.substitutions, clock)
	_, _ = fmt.Fprint(sb, line)
}
