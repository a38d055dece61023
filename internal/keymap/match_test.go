package keymap

import "testing"

func TestMatchesKeyIdentity(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		b    Binding
		want bool
	}{
		{"exact", Event{Key: "k", Ctrl: true}, Binding{Key: "k", Ctrl: true}, true},
		{"case insensitive", Event{Key: "ESCAPE"}, Binding{Key: "Escape"}, true},
		{"physical code", Event{Key: "?", Code: "Slash", Shift: true}, Binding{Key: "Slash", Shift: true}, true},
		{"code is case sensitive", Event{Key: "x", Code: "slash"}, Binding{Key: "Slash"}, false},
		{"different key", Event{Key: "j", Ctrl: true}, Binding{Key: "k", Ctrl: true}, false},
		{"empty binding key", Event{Key: ""}, Binding{Key: ""}, false},
		{"meta aliases ctrl", Event{Key: "k", Meta: true}, Binding{Key: "k", Ctrl: true}, true},
		{"ctrl and meta together", Event{Key: "k", Ctrl: true, Meta: true}, Binding{Key: "k", Ctrl: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.ev, tc.b); got != tc.want {
				t.Fatalf("Matches(%+v, %+v) = %v, want %v", tc.ev, tc.b, got, tc.want)
			}
		})
	}
}

func TestMatchesModifierExactness(t *testing.T) {
	type mods struct{ ctrl, alt, shift bool }
	all := []mods{}
	for _, c := range []bool{false, true} {
		for _, a := range []bool{false, true} {
			for _, s := range []bool{false, true} {
				all = append(all, mods{c, a, s})
			}
		}
	}

	for _, held := range all {
		for _, required := range all {
			ev := Event{Key: "p", Ctrl: held.ctrl, Alt: held.alt, Shift: held.shift}
			b := Binding{Key: "p", Ctrl: required.ctrl, Alt: required.alt, Shift: required.shift}
			want := held == required
			if got := Matches(ev, b); got != want {
				t.Fatalf("held %+v required %+v: got %v, want %v", held, required, got, want)
			}
		}
	}
}

func TestMatchesIsPure(t *testing.T) {
	ev := Event{Key: "k", Ctrl: true}
	b := Binding{Name: "search", Key: "k", Ctrl: true}
	for i := 0; i < 3; i++ {
		if !Matches(ev, b) {
			t.Fatalf("expected match on call %d", i)
		}
	}
	if ev.Key != "k" || b.Key != "k" {
		t.Fatal("matcher must not mutate its inputs")
	}
}
