// Package help renders the keyboard shortcut overlay.
package help

import (
	bubblehelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/theme"
)

// Overlay is a keymap.HelpSurface drawn over the active view.
type Overlay struct {
	theme   theme.Theme
	help    bubblehelp.Model
	entries []keymap.HelpEntry
	visible bool
}

var _ keymap.HelpSurface = (*Overlay)(nil)

// New returns a hidden overlay.
func New(th theme.Theme) *Overlay {
	o := &Overlay{help: bubblehelp.New()}
	o.SetTheme(th)
	return o
}

// Show replaces the listing and makes the overlay visible.
func (o *Overlay) Show(entries []keymap.HelpEntry) {
	o.entries = append([]keymap.HelpEntry(nil), entries...)
	o.visible = true
}

// Hide removes the overlay.
func (o *Overlay) Hide() {
	o.visible = false
}

func (o *Overlay) Visible() bool { return o.visible }

// Entries returns the listing last passed to Show.
func (o *Overlay) Entries() []keymap.HelpEntry {
	return append([]keymap.HelpEntry(nil), o.entries...)
}

func (o *Overlay) SetTheme(th theme.Theme) {
	o.theme = th
	o.help.Styles.FullKey = th.HelpKey
	o.help.Styles.FullDesc = th.HelpDesc
	o.help.Styles.FullSeparator = th.Subtle
}

func (o *Overlay) SetWidth(width int) {
	o.help.Width = width
}

// Text renders the listing without styling.
func (o *Overlay) Text() string {
	return keymap.HelpText(o.entries)
}

// View renders the overlay, or nothing while hidden.
func (o *Overlay) View() string {
	if !o.visible {
		return ""
	}
	body := o.help.FullHelpView(columns(o.entries, 2))
	return o.theme.HelpBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		o.theme.Title.Render("Keyboard shortcuts"),
		"",
		body,
		"",
		o.theme.Subtle.Render("Press the help shortcut again or Escape to close"),
	))
}

// columns splits entries into n roughly equal columns of key bindings.
func columns(entries []keymap.HelpEntry, n int) [][]key.Binding {
	if len(entries) == 0 || n <= 0 {
		return nil
	}
	per := (len(entries) + n - 1) / n
	out := make([][]key.Binding, 0, n)
	for start := 0; start < len(entries); start += per {
		end := min(start+per, len(entries))
		col := make([]key.Binding, 0, end-start)
		for _, entry := range entries[start:end] {
			col = append(col, key.NewBinding(
				key.WithKeys(entry.Hint),
				key.WithHelp(entry.Hint, entry.Description),
			))
		}
		out = append(out, col)
	}
	return out
}
