package keymap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConflicts(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Binding{Name: "save", Key: "s", Ctrl: true})
	reg.Register(Binding{Name: "search", Key: "k", Ctrl: true})
	reg.Register(Binding{Name: "submit", Key: "S", Ctrl: true})
	reg.Register(Binding{Name: "shout", Key: "s", Ctrl: true, Shift: true})

	want := []Conflict{{Shadowed: "submit", By: "save"}}
	if diff := cmp.Diff(want, Conflicts(reg)); diff != "" {
		t.Fatalf("conflicts mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsHaveNoConflicts(t *testing.T) {
	reg := NewRegistry()
	actions := Actions{}
	for _, spec := range DefaultSpecs() {
		actions[spec.CommandID()] = Noop
	}
	if err := Load(reg, DefaultSpecs(), actions); err != nil {
		t.Fatal(err)
	}
	if got := Conflicts(reg); len(got) != 0 {
		t.Fatalf("unexpected conflicts %v", got)
	}
}
