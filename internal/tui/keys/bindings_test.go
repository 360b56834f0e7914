package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Label: "q", Description: "Quit", Visible: true,
		Handler: func() { got = append(got, "global q") }})
	r.AddView("History", &Action{Key: tcell.KeyRune, Rune: 'q', Label: "q", Description: "Back", Visible: true,
		Handler: func() { got = append(got, "history q") }})
	r.AddGlobal(&Action{Key: tcell.KeyCtrlS, Label: "ctrl-s", Description: "Save",
		Handler: func() { got = append(got, "save") }})

	q := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if !r.HandleEvent("History", q) || !r.HandleEvent("Detect", q) {
		t.Fatal("q should be handled in both views")
	}
	if !r.HandleEvent("Detect", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)) {
		t.Fatal("ctrl-s should be handled")
	}
	if r.HandleEvent("Detect", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("x has no binding")
	}

	want := []string{"history q", "global q", "save"}
	if len(got) != len(want) {
		t.Fatalf("handlers ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler %d = %q, want %q", i, got[i], want[i])
		}
	}

	hints := r.Hints("History")
	if len(hints) != 2 || hints[0].Description != "Back" || hints[1].Description != "Quit" {
		t.Errorf("hints = %+v", hints)
	}
}
