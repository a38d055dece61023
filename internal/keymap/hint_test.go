package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

type fakeTarget struct {
	shortcut string
	hint     string
	sets     int
}

func (f *fakeTarget) Shortcut() string { return f.shortcut }
func (f *fakeTarget) Hint() string     { return f.hint }
func (f *fakeTarget) SetHint(h string) { f.hint = h; f.sets++ }

func hintRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(Binding{Name: "search", Key: "k", Ctrl: true, Description: "Open search"})
	reg.Register(Binding{Name: "help", Key: "/", Ctrl: true, Description: "Show keyboard shortcuts"})
	return reg
}

func TestAnnotateAppendsToExistingHint(t *testing.T) {
	target := &fakeTarget{hint: "  Search products "}
	if !NewAnnotator(hintRegistry()).Annotate(target, "search") {
		t.Fatal("expected hint to be added")
	}
	if target.hint != "Search products  (Ctrl+K)" {
		t.Fatalf("unexpected hint %q", target.hint)
	}
}

func TestAnnotateEmptyHint(t *testing.T) {
	target := &fakeTarget{}
	NewAnnotator(hintRegistry()).Annotate(target, "help")
	if target.hint != "(Ctrl+/)" {
		t.Fatalf("unexpected hint %q", target.hint)
	}
}

func TestAnnotateUnknownNameIsNoop(t *testing.T) {
	target := &fakeTarget{hint: "Checkout"}
	if NewAnnotator(hintRegistry()).Annotate(target, "missing") {
		t.Fatal("expected unknown binding to report false")
	}
	if target.hint != "Checkout" || target.sets != 0 {
		t.Fatalf("expected target untouched, got %q (sets=%d)", target.hint, target.sets)
	}
}

func TestAnnotateAllUsesDeclaredNames(t *testing.T) {
	search := &fakeTarget{shortcut: "search", hint: "Search"}
	help := &fakeTarget{shortcut: "help", hint: "Help"}
	none := &fakeTarget{hint: "Plain"}
	unknown := &fakeTarget{shortcut: "nope", hint: "Nope"}

	added := NewAnnotator(hintRegistry()).AnnotateAll(search, help, none, unknown, nil)
	if added != 2 {
		t.Fatalf("expected 2 annotations, got %d", added)
	}
	if search.hint != "Search (Ctrl+K)" || help.hint != "Help (Ctrl+/)" {
		t.Fatalf("unexpected hints %q %q", search.hint, help.hint)
	}
	if none.hint != "Plain" || unknown.hint != "Nope" {
		t.Fatal("targets without a known shortcut must be left alone")
	}
}

func TestKeyHintAnnotatesBubblesBinding(t *testing.T) {
	kb := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to cart"))
	target := KeyHint{Name: "search", Binding: &kb}

	NewAnnotator(hintRegistry()).Annotate(target, target.Shortcut())

	help := kb.Help()
	if help.Key != "enter" {
		t.Fatalf("expected help key to stay, got %q", help.Key)
	}
	if help.Desc != "add to cart (Ctrl+K)" {
		t.Fatalf("unexpected help desc %q", help.Desc)
	}
}
