package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func TestBlockColor(t *testing.T) {
	theme := DefaultTheme()

	if got := theme.BlockColor("#336699", true, 0.9); got != tcell.NewRGBColor(0x33, 0x66, 0x99) {
		t.Errorf("active color = %06x, want 336699", got.Hex())
	}
	if got := theme.BlockColor("#336699", false, 0); got != tcell.NewRGBColor(0x33, 0x66, 0x99) {
		t.Errorf("factor 0 should keep the color, got %06x", got.Hex())
	}
	if got := theme.BlockColor("#ffffff", false, 1); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("factor 1 should reach the dim target, got %06x", got.Hex())
	}

	dim := theme.BlockColor("#ffffff", false, 0.9)
	r, g, b := dim.RGB()
	if r > 40 || r != g || g != b {
		t.Errorf("dimmed white = %d,%d,%d, want a dark grey", r, g, b)
	}
	if got := theme.BlockColor("nonsense", true, 0); got != theme.BgColor {
		t.Errorf("invalid hex should fall back to the background")
	}
}

func TestFlashModelExpiry(t *testing.T) {
	f := NewFlashModel()
	now := time.Now()
	f.now = func() time.Time { return now }

	if f.Current() != nil {
		t.Fatal("new model should be empty")
	}
	f.Err(errors.New("boom"))
	if m := f.Current(); m == nil || m.Text != "boom" || m.Level != FlashErr {
		t.Fatalf("Current() = %+v", m)
	}
	now = now.Add(11 * time.Second)
	if f.Current() != nil {
		t.Error("message should expire")
	}

	f.Infof("saved %s", "s1")
	if m := f.Current(); m == nil || m.Text != "saved s1" {
		t.Fatalf("Current() = %+v", m)
	}
	f.Clear()
	if f.Current() != nil {
		t.Error("Clear() should drop the message")
	}
}

type testPage struct {
	*tview.Box
	name string
}

func (p testPage) Name() string             { return p.name }
func (p testPage) Primary() tview.Primitive { return p.Box }
func (p testPage) Hints() []MenuHint        { return nil }

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"Detect", "History", "Help"} {
		p.Add(testPage{Box: tview.NewBox(), name: name})
	}
	var changes [][]string
	p.SetOnChange(func(_ Component, stack []string) { changes = append(changes, stack) })

	if p.Pop() {
		t.Error("Pop() on an empty stack should do nothing")
	}
	p.Open("Detect")
	p.Open("History")
	p.Open("Help")
	if got := p.Current(); got != "Help" {
		t.Errorf("Current() = %q", got)
	}

	// Opening a page already on the stack returns to it.
	p.Open("History")
	if got := p.Stack(); len(got) != 2 || got[1] != "History" {
		t.Errorf("Stack() = %v, want [Detect History]", got)
	}

	if !p.Pop() || p.Current() != "Detect" {
		t.Errorf("after Pop() current = %q", p.Current())
	}
	if p.Pop() {
		t.Error("the root page must not be popped")
	}
	if p.Open("Missing") {
		t.Error("Open() of an unknown page should fail")
	}
	if len(changes) != 5 {
		t.Errorf("got %d change notifications, want 5", len(changes))
	}
	if p.Top().Name() != "Detect" {
		t.Errorf("Top() = %q", p.Top().Name())
	}
}
