package keymap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingSurface struct {
	shown  [][]HelpEntry
	hidden int
}

func (r *recordingSurface) Show(entries []HelpEntry) { r.shown = append(r.shown, entries) }
func (r *recordingSurface) Hide()                    { r.hidden++ }

func TestHelpListFollowsRegistryOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Binding{Name: "search", Key: "k", Ctrl: true, Description: "Open search"})
	reg.Register(Binding{Name: "close", Key: "Escape", Description: "Close dialog"})
	reg.Register(Binding{Name: "search", Key: "f", Ctrl: true, Description: "Find"})

	want := []HelpEntry{
		{Hint: "Ctrl+F", Description: "Find"},
		{Hint: "ESCAPE", Description: "Close dialog"},
	}
	if diff := cmp.Diff(want, HelpList(reg)); diff != "" {
		t.Fatalf("help list mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpToggleShowsAndHides(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Binding{Name: "help", Key: "/", Ctrl: true, Description: "Show keyboard shortcuts"})
	surface := &recordingSurface{}
	toggle := NewHelpToggle(reg, surface)

	if err := toggle.Run(Event{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggle.Visible() || len(surface.shown) != 1 {
		t.Fatalf("expected surface shown once, got %d", len(surface.shown))
	}
	if surface.shown[0][0].Hint != "Ctrl+/" {
		t.Fatalf("unexpected entries %+v", surface.shown[0])
	}

	toggle.Run(Event{})
	if toggle.Visible() || surface.hidden != 1 {
		t.Fatalf("expected surface hidden, hidden=%d", surface.hidden)
	}
}

func TestHelpToggleCloseOnlyWhenVisible(t *testing.T) {
	surface := &recordingSurface{}
	toggle := NewHelpToggle(NewRegistry(), surface)

	if toggle.Close() {
		t.Fatal("close on hidden surface should report false")
	}
	if surface.hidden != 0 {
		t.Fatal("hidden surface must not receive Hide")
	}
	toggle.Run(Event{})
	if !toggle.Close() || surface.hidden != 1 {
		t.Fatal("expected close to hide visible surface")
	}
}

func TestHelpToggleWithoutSurface(t *testing.T) {
	if err := NewHelpToggle(NewRegistry(), nil).Run(Event{}); err == nil {
		t.Fatal("expected error without a surface")
	}
}

func TestShortHelp(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Binding{Name: "quit", Key: "c", Ctrl: true, Description: "Quit"})
	reg.Register(Binding{Name: "help", Key: "/", Ctrl: true, Description: "Show keyboard shortcuts"})
	reg.Register(Binding{Name: "silent", Key: "z"})

	got := ShortHelp(reg, "help", "quit", "silent", "missing")
	want := "Ctrl+/ show keyboard shortcuts · Ctrl+C quit"
	if got != want {
		t.Fatalf("ShortHelp = %q, want %q", got, want)
	}
}

func TestHelpTextAligns(t *testing.T) {
	text := HelpText([]HelpEntry{
		{Hint: "Ctrl+K", Description: "Open search"},
		{Hint: "ESCAPE", Description: "Close dialog"},
		{Hint: "Alt+1", Description: "Go to catalog"},
	})
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
	if lines[2] != "Alt+1   Go to catalog" {
		t.Fatalf("unexpected padding: %q", lines[2])
	}
}
