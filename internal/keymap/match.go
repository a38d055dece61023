package keymap

import "strings"

// Matches reports whether ev satisfies b's signature. The key must equal
// b.Key ignoring case, or the event's physical code must equal b.Key
// exactly. Each modifier must match exactly; ctrl and meta are aliases.
func Matches(ev Event, b Binding) bool {
	return keyMatches(ev, b) && modifiersMatch(ev, b)
}

func keyMatches(ev Event, b Binding) bool {
	if b.Key == "" {
		return false
	}
	if strings.EqualFold(ev.Key, b.Key) {
		return true
	}
	return ev.Code != "" && ev.Code == b.Key
}

func modifiersMatch(ev Event, b Binding) bool {
	return (ev.Ctrl || ev.Meta) == b.Ctrl &&
		ev.Alt == b.Alt &&
		ev.Shift == b.Shift
}
