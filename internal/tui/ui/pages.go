package ui

import (
	"slices"

	"github.com/rivo/tview"
)

// Pages is a stack of components on top of tview.Pages. The bottom page is
// the root and is never popped.
type Pages struct {
	*tview.Pages
	components map[string]Component
	stack      []string
	onChange   func(top Component, stack []string)
}

// NewPages creates an empty page stack.
func NewPages() *Pages {
	return &Pages{
		Pages:      tview.NewPages(),
		components: make(map[string]Component),
	}
}

// Add registers c under its name without showing it.
func (p *Pages) Add(c Component) {
	p.components[c.Name()] = c
	p.AddPage(c.Name(), c, true, false)
}

// SetOnChange sets a callback that fires when the stack changes.
func (p *Pages) SetOnChange(fn func(top Component, stack []string)) {
	p.onChange = fn
}

// Open shows the named page. A page already on the stack is returned to by
// popping the pages above it; otherwise it is pushed.
func (p *Pages) Open(name string) bool {
	if _, ok := p.components[name]; !ok {
		return false
	}
	if i := slices.Index(p.stack, name); i >= 0 {
		for _, n := range p.stack[i+1:] {
			p.HidePage(n)
		}
		p.stack = p.stack[:i+1]
	} else {
		if len(p.stack) > 0 {
			p.HidePage(p.stack[len(p.stack)-1])
		}
		p.stack = append(p.stack, name)
	}
	p.show(name)
	return true
}

// Pop removes the top page and shows the previous one. The root page
// stays; Pop reports whether anything was removed.
func (p *Pages) Pop() bool {
	if len(p.stack) <= 1 {
		return false
	}
	p.HidePage(p.stack[len(p.stack)-1])
	p.stack = p.stack[:len(p.stack)-1]
	p.show(p.stack[len(p.stack)-1])
	return true
}

// Top returns the component on top of the stack, or nil.
func (p *Pages) Top() Component {
	if len(p.stack) == 0 {
		return nil
	}
	return p.components[p.stack[len(p.stack)-1]]
}

// Current returns the name of the top page.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Stack returns a copy of the current page stack.
func (p *Pages) Stack() []string {
	return slices.Clone(p.stack)
}

func (p *Pages) show(name string) {
	p.ShowPage(name)
	p.SendToFront(name)
	if p.onChange != nil {
		p.onChange(p.components[name], p.Stack())
	}
}
