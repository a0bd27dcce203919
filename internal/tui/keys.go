package tui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler mutates the board in response to a key. The bool reports
// whether the key was consumed.
type KeyHandler func(BoardModel) (BoardModel, tea.Cmd, bool)

// KeyBinding ties a key to a handler. When, if set, gates the binding
// on current model state (pane focus, data present).
type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	When        func(BoardModel) bool
	Priority    int
	Hidden      bool
}

func (b KeyBinding) applies(m BoardModel) bool {
	return b.When == nil || b.When(m)
}

// HandlerRegistry dispatches keys to bindings in priority order.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m BoardModel, key string) (BoardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.applies(m) {
			next, cmd, handled := b.Handler(m)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpEntries returns the visible bindings applicable to the current
// state, for the footer.
func (r *HandlerRegistry) HelpEntries(m BoardModel) []KeyBinding {
	var out []KeyBinding
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if b.Hidden || seen[b.Key] || !b.applies(m) {
			continue
		}
		seen[b.Key] = true
		out = append(out, b)
	}
	return out
}
