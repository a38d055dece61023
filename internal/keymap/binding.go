// Package keymap implements the global keyboard shortcut engine: a registry
// of named bindings, a matcher for key events, a focus guard that mutes most
// shortcuts while the user types, and a first-match-wins dispatcher.
package keymap

// Binding is a named shortcut definition. Bindings are values; the registry
// only ever replaces them wholesale.
type Binding struct {
	// Name is the stable identifier used by the registry, the allow-list and
	// hint targets.
	Name string
	// Key is a single character ("k", "/") or a named key ("Escape", "Tab").
	// It may also be a physical key code such as "Slash".
	Key string

	// Ctrl is satisfied by either a control or a command/meta modifier.
	Ctrl  bool
	Alt   bool
	Shift bool

	Action      Action
	Description string
}

// Action is the behavior a binding triggers.
type Action interface {
	Run(ev Event) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ev Event) error

// Run calls f(ev).
func (f ActionFunc) Run(ev Event) error { return f(ev) }

// Noop is an Action that does nothing. Useful for display-only bindings.
var Noop Action = ActionFunc(func(Event) error { return nil })

// Signature returns the (key, modifiers) pair compared by the matcher, with
// the key folded to lower case.
func (b Binding) Signature() Signature {
	return Signature{Key: foldKey(b.Key), Ctrl: b.Ctrl, Alt: b.Alt, Shift: b.Shift}
}

// Signature identifies the event shape a binding responds to.
type Signature struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}
