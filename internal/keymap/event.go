package keymap

import "strings"

// FocusKind classifies whatever currently holds keyboard focus.
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusTextInput
	FocusTextArea
	FocusOther
)

// Focus describes the focus target of a key event.
type Focus struct {
	Kind FocusKind
	// ID optionally names the focused element, for logging.
	ID string
}

// Editable reports whether the focus target is a free-text surface.
func (f Focus) Editable() bool {
	return f.Kind == FocusTextInput || f.Kind == FocusTextArea
}

func (k FocusKind) String() string {
	switch k {
	case FocusNone:
		return "none"
	case FocusTextInput:
		return "text-input"
	case FocusTextArea:
		return "text-area"
	case FocusOther:
		return "other"
	default:
		return "unknown"
	}
}

// Event is a single key press as seen by the engine.
type Event struct {
	// Key is the logical key identity ("k", "K", "Escape").
	Key string
	// Code is the physical key code ("KeyK", "Slash"), empty when unknown.
	Code string

	Ctrl  bool
	Meta  bool
	Alt   bool
	Shift bool

	Focus Focus
}

func foldKey(key string) string {
	return strings.ToLower(key)
}
