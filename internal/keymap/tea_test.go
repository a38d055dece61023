package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Event
	}{
		{"plain rune", runes("k"), Event{Key: "k", Code: "KeyK"}},
		{"upper rune", runes("K"), Event{Key: "K", Code: "KeyK", Shift: true}},
		{"shifted symbol", runes("?"), Event{Key: "?", Code: "Slash", Shift: true}},
		{"digit", runes("1"), Event{Key: "1", Code: "Digit1"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}, Event{Key: "1", Code: "Digit1", Alt: true}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlK}, Event{Key: "k", Code: "KeyK", Ctrl: true}},
		{"ctrl slash", tea.KeyMsg{Type: tea.KeyCtrlUnderscore}, Event{Key: "/", Code: "Slash", Ctrl: true}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, Event{Key: "Escape", Code: "Escape"}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Event{Key: "Tab", Code: "Tab"}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Event{Key: "Tab", Code: "Tab", Shift: true}},
		{"ctrl shift up", tea.KeyMsg{Type: tea.KeyCtrlShiftUp}, Event{Key: "ArrowUp", Code: "ArrowUp", Ctrl: true, Shift: true}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Event{Key: " ", Code: "Space"}},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, Event{Key: "F1", Code: "F1"}},
		{"paste", runes("hello"), Event{Key: "hello"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromKeyMsg(tc.msg, Focus{}); got != tc.want {
				t.Fatalf("FromKeyMsg(%q) = %+v, want %+v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestFromKeyMsgCarriesFocus(t *testing.T) {
	ev := FromKeyMsg(runes("a"), Focus{Kind: FocusTextArea, ID: "note"})
	if !ev.Focus.Editable() || ev.Focus.ID != "note" {
		t.Fatalf("expected focus to be carried, got %+v", ev.Focus)
	}
}

func TestDefaultBindingsMatchTerminalKeys(t *testing.T) {
	reg := NewRegistry()
	actions := Actions{}
	for _, spec := range DefaultSpecs() {
		actions[spec.CommandID()] = Noop
	}
	if err := Load(reg, DefaultSpecs(), actions); err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	d := NewDispatcher(reg, NewGuard(NewAllowList(DefaultAllowList()...)), DispatcherOptions{})

	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlUnderscore}, NameHelp},
		{tea.KeyMsg{Type: tea.KeyEsc}, NameClose},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, NameQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlK}, NameSearch},
		{tea.KeyMsg{Type: tea.KeyTab}, NameNextView},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, NamePrevView},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true}, NameViewCart},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, NameCheckout},
		{tea.KeyMsg{Type: tea.KeyCtrlP}, NameExport},
	}
	for _, tc := range tests {
		out, err := d.Handle(FromKeyMsg(tc.msg, Focus{}))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.msg, err)
		}
		if out.Binding != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.msg, tc.want, out.Binding)
		}
	}

	if out, _ := d.Handle(FromKeyMsg(runes("2"), Focus{})); out.Handled {
		t.Fatalf("plain 2 should not match alt+2, got %+v", out)
	}
	if out, _ := d.Handle(FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlK}, Focus{Kind: FocusTextInput})); out.Handled {
		t.Fatal("search must be suppressed while typing")
	}
	if out, _ := d.Handle(FromKeyMsg(tea.KeyMsg{Type: tea.KeyEsc}, Focus{Kind: FocusTextInput})); out.Binding != NameClose {
		t.Fatal("close must pass through while typing")
	}
}

func TestFocusOf(t *testing.T) {
	input := textinput.New()
	area := textarea.New()

	if got := FocusOf(input, area); got.Kind != FocusNone {
		t.Fatalf("expected no focus, got %v", got.Kind)
	}

	input.Focus()
	if got := FocusOf(input, area); got.Kind != FocusTextInput {
		t.Fatalf("expected text input focus, got %v", got.Kind)
	}

	input.Blur()
	area.Focus()
	if got := FocusOf(input, &area); got.Kind != FocusTextArea {
		t.Fatalf("expected text area focus, got %v", got.Kind)
	}
}

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		b    Binding
		want string
	}{
		{Binding{Key: "k", Ctrl: true}, "ctrl+k"},
		{Binding{Key: "/", Ctrl: true}, "ctrl+_"},
		{Binding{Key: "Escape"}, "esc"},
		{Binding{Key: "Tab", Shift: true}, "shift+tab"},
		{Binding{Key: "1", Alt: true}, "alt+1"},
		{Binding{Key: "g", Shift: true}, "G"},
	}
	for _, tc := range tests {
		if got := TerminalKey(tc.b); got != tc.want {
			t.Errorf("TerminalKey(%+v) = %q, want %q", tc.b, got, tc.want)
		}
	}
}

func TestKeyBindingsMatchTeaMessages(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Binding{Name: "search", Key: "k", Ctrl: true, Description: "Open search"})
	reg.Register(Binding{Name: "close", Key: "Escape", Description: "Close dialog"})

	bindings := KeyBindings(reg)
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlK}, bindings[0]) {
		t.Fatal("expected ctrl+k to match search")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, bindings[1]) {
		t.Fatal("expected esc to match close")
	}
	if help := bindings[0].Help(); help.Key != "Ctrl+K" || help.Desc != "Open search" {
		t.Fatalf("unexpected help %+v", help)
	}
}
