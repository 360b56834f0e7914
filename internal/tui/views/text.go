package views

import (
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/glyph"
)

// displayText makes s safe for a single table row: line breaks and tabs
// get visible arrows, spaces stay, and every other character goes through
// the glyph mapper so that invisible and combining characters cannot break
// the layout. The result is cut to max runes and tview-escaped.
func displayText(m *glyph.Mapper, s string, max int) string {
	if m == nil {
		m = glyph.Default()
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if max > 0 && n == max {
			b.WriteRune('…')
			break
		}
		switch r {
		case '\n':
			b.WriteRune('↵')
		case '\t':
			b.WriteRune('⇥')
		case '\r':
			continue
		case ' ':
			b.WriteRune(' ')
		default:
			b.WriteString(m.Visual(r))
		}
		n++
	}
	return tview.Escape(b.String())
}

// highlightSnippet turns the <<match>> markers of a search snippet into
// color tags.
func highlightSnippet(m *glyph.Mapper, snippet, color string) string {
	var b strings.Builder
	for {
		start := strings.Index(snippet, "<<")
		if start < 0 {
			break
		}
		end := strings.Index(snippet[start:], ">>")
		if end < 0 {
			break
		}
		end += start
		b.WriteString(displayText(m, snippet[:start], 0))
		b.WriteString("[" + color + "::b]")
		b.WriteString(displayText(m, snippet[start+2:end], 0))
		b.WriteString("[-::-]")
		snippet = snippet[end+2:]
	}
	b.WriteString(displayText(m, snippet, 0))
	return b.String()
}

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms)
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("01/02 15:04")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
