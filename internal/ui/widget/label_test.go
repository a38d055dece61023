package widget

import (
	"testing"

	"github.com/adamkadaban/storefront-tui/internal/keymap"
)

func TestLabelAnnotation(t *testing.T) {
	reg := keymap.NewRegistry()
	reg.Register(keymap.Binding{Name: keymap.NameViewCart, Key: "2", Alt: true})

	label := NewLabel(keymap.NameViewCart, "Cart")
	ann := keymap.NewAnnotator(reg)
	if !ann.Annotate(label, label.Shortcut()) {
		t.Fatal("expected annotation to apply")
	}
	if label.String() != "Cart (Alt+2)" {
		t.Fatalf("unexpected hint %q", label.String())
	}
	if label.Text() != "Cart" {
		t.Fatalf("text should stay bare, got %q", label.Text())
	}

	label.Reset()
	if label.Hint() != "Cart" {
		t.Fatalf("reset should drop the hint, got %q", label.Hint())
	}
}

func TestLabelUnknownShortcutKeepsText(t *testing.T) {
	label := NewLabel("missing", "Orders")
	if keymap.NewAnnotator(keymap.NewRegistry()).Annotate(label, label.Shortcut()) {
		t.Fatal("expected no annotation")
	}
	if label.Hint() != "Orders" {
		t.Fatalf("unexpected hint %q", label.Hint())
	}
}
