package ui

import "github.com/rivo/tview"

// MenuHint describes a keyboard shortcut for display in the header.
type MenuHint struct {
	Key         string
	Description string
	Page        bool // true for page switches (displayed in a different color)
}

// Component is implemented by every page of the TUI.
type Component interface {
	tview.Primitive

	// Name is shown in the breadcrumb bar.
	Name() string
	// Primary is the primitive that receives focus when the page is shown.
	Primary() tview.Primitive
	Hints() []MenuHint
}
