package keymap

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal key names as printed by Bubble Tea, mapped to engine key names.
var namedKeys = map[string]string{
	"esc":       "Escape",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"insert":    "Insert",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	" ":         " ",
}

// US layout: symbol -> physical key code and whether it needs shift.
var symbolCodes = map[rune]struct {
	code    string
	shifted bool
}{
	' ': {"Space", false}, '/': {"Slash", false}, '?': {"Slash", true},
	'.': {"Period", false}, '>': {"Period", true}, ',': {"Comma", false}, '<': {"Comma", true},
	';': {"Semicolon", false}, ':': {"Semicolon", true}, '\'': {"Quote", false}, '"': {"Quote", true},
	'[': {"BracketLeft", false}, '{': {"BracketLeft", true}, ']': {"BracketRight", false}, '}': {"BracketRight", true},
	'\\': {"Backslash", false}, '|': {"Backslash", true}, '-': {"Minus", false}, '_': {"Minus", true},
	'=': {"Equal", false}, '+': {"Equal", true}, '`': {"Backquote", false}, '~': {"Backquote", true},
	'!': {"Digit1", true}, '@': {"Digit2", true}, '#': {"Digit3", true}, '$': {"Digit4", true},
	'%': {"Digit5", true}, '^': {"Digit6", true}, '&': {"Digit7", true}, '*': {"Digit8", true},
	'(': {"Digit9", true}, ')': {"Digit0", true},
}

// FromKeyMsg translates a Bubble Tea key message into an engine event.
// Upper-case letters and shifted US-layout symbols report Shift, the way a
// browser key event would.
func FromKeyMsg(msg tea.KeyMsg, focus Focus) Event {
	ev := Event{Alt: msg.Alt, Focus: focus}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		if len(msg.Runes) > 1 {
			ev.Key = string(msg.Runes)
			return ev
		}
		r := msg.Runes[0]
		ev.Key = string(r)
		ev.Code, ev.Shift = physicalCode(r)
		return ev
	}

	name := msg.String()
	if msg.Alt {
		name = strings.TrimPrefix(name, "alt+")
	}
	for {
		switch {
		case len(name) > len("ctrl+") && strings.HasPrefix(name, "ctrl+"):
			ev.Ctrl = true
			name = name[len("ctrl+"):]
			continue
		case len(name) > len("shift+") && strings.HasPrefix(name, "shift+"):
			ev.Shift = true
			name = name[len("shift+"):]
			continue
		}
		break
	}

	// Terminals send ctrl+/ as the unit separator, which Bubble Tea names
	// ctrl+_.
	if ev.Ctrl && name == "_" {
		name = "/"
	}

	if mapped, ok := namedKeys[name]; ok {
		ev.Key = mapped
		ev.Code = mapped
		if mapped == " " {
			ev.Code = "Space"
		}
		return ev
	}
	if len(name) >= 2 && name[0] == 'f' && isDigits(name[1:]) {
		ev.Key = strings.ToUpper(name)
		ev.Code = ev.Key
		return ev
	}

	ev.Key = name
	if runes := []rune(name); len(runes) == 1 {
		ev.Code, _ = physicalCode(runes[0])
	}
	return ev
}

func physicalCode(r rune) (string, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return "Key" + string(unicode.ToUpper(r)), false
	case r >= 'A' && r <= 'Z':
		return "Key" + string(r), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), false
	}
	if sym, ok := symbolCodes[r]; ok {
		return sym.code, sym.shifted
	}
	return "", unicode.IsUpper(r)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Focusable is any bubbles component that can hold focus.
type Focusable interface {
	Focused() bool
}

// FocusOf returns the focus of the first focused component. Text inputs and
// text areas are reported as editable.
func FocusOf(components ...Focusable) Focus {
	for _, c := range components {
		if c == nil || !c.Focused() {
			continue
		}
		switch c.(type) {
		case textinput.Model, *textinput.Model:
			return Focus{Kind: FocusTextInput}
		case textarea.Model, *textarea.Model:
			return Focus{Kind: FocusTextArea}
		default:
			return Focus{Kind: FocusOther}
		}
	}
	return Focus{Kind: FocusNone}
}

// KeyBindings mirrors the registry as bubbles key bindings, suitable for
// bubbles/help rendering and key.Matches checks.
func KeyBindings(reg *Registry) []key.Binding {
	bindings := make([]key.Binding, 0, reg.Len())
	for b := range reg.All() {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(TerminalKey(b)),
			key.WithHelp(Format(b), b.Description),
		))
	}
	return bindings
}

// TerminalKey renders b's signature using Bubble Tea's key naming, e.g.
// "ctrl+k", "alt+1", "shift+tab".
func TerminalKey(b Binding) string {
	name := b.Key
	for teaName, engineName := range namedKeys {
		if strings.EqualFold(engineName, b.Key) && teaName != " " {
			name = teaName
			break
		}
	}
	if b.Ctrl && name == "/" {
		name = "_"
	}

	var prefix strings.Builder
	if b.Alt {
		prefix.WriteString("alt+")
	}
	if b.Ctrl {
		prefix.WriteString("ctrl+")
		name = strings.ToLower(name)
	}
	if b.Shift {
		if runes := []rune(name); len(runes) == 1 && unicode.IsLetter(runes[0]) && !b.Ctrl {
			return prefix.String() + strings.ToUpper(name)
		}
		prefix.WriteString("shift+")
	}
	return prefix.String() + name
}
