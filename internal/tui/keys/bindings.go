package keys

import "github.com/gdamore/tcell/v2"

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Label       string // key as shown in hints, e.g. "ctrl-s"
	Description string
	Handler     func()
	Visible     bool
	Page        bool // switches page
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Registry holds keybindings per view plus global ones, in registration
// order.
type Registry struct {
	global []*Action
	views  map[string][]*Action
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string][]*Action)}
}

// AddGlobal registers a global keybinding.
func (r *Registry) AddGlobal(action *Action) {
	r.global = append(r.global, action)
}

// AddView registers a view-specific keybinding. View bindings take
// precedence over global ones with the same key.
func (r *Registry) AddView(view string, action *Action) {
	r.views[view] = append(r.views[view], action)
}

// Hints returns the visible bindings for a view, view bindings first.
func (r *Registry) Hints(view string) []*Action {
	var hints []*Action
	for _, a := range r.views[view] {
		if a.Visible {
			hints = append(hints, a)
		}
	}
	for _, a := range r.global {
		if a.Visible {
			hints = append(hints, a)
		}
	}
	return hints
}

// HandleEvent dispatches a key event to the first matching action of the
// view, then of the global bindings. Returns true if a handler ran.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, a := range r.views[view] {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	for _, a := range r.global {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	return false
}
