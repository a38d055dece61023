package keymap

import "strings"

// Format renders b's signature as a human-readable hint such as "Ctrl+K".
// Required modifiers come first in the fixed order Ctrl, Alt, Shift.
func Format(b Binding) string {
	parts := make([]string, 0, 4)
	if b.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if b.Alt {
		parts = append(parts, "Alt")
	}
	if b.Shift {
		parts = append(parts, "Shift")
	}
	parts = append(parts, strings.ToUpper(b.Key))
	return strings.Join(parts, "+")
}
