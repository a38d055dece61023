package keymap

import (
	"fmt"
	"strings"
)

// HelpEntry is one row of the shortcut listing.
type HelpEntry struct {
	Hint        string
	Description string
}

// HelpList returns (hint, description) pairs for every binding in registry
// order.
func HelpList(reg *Registry) []HelpEntry {
	entries := make([]HelpEntry, 0, reg.Len())
	for b := range reg.All() {
		entries = append(entries, HelpEntry{Hint: Format(b), Description: b.Description})
	}
	return entries
}

// HelpSurface displays a shortcut listing. Building and tearing down the
// visual surface is the implementation's business.
type HelpSurface interface {
	Show(entries []HelpEntry)
	Hide()
}

// HelpToggle is an Action that alternately shows and hides a help surface
// with the registry's current listing.
type HelpToggle struct {
	registry *Registry
	surface  HelpSurface
	visible  bool
}

// NewHelpToggle returns a toggle feeding surface from reg.
func NewHelpToggle(reg *Registry, surface HelpSurface) *HelpToggle {
	return &HelpToggle{registry: reg, surface: surface}
}

// Run shows the listing when hidden and hides it when shown.
func (h *HelpToggle) Run(Event) error {
	if h.surface == nil {
		return fmt.Errorf("help surface not configured")
	}
	if h.visible {
		h.Close()
		return nil
	}
	h.surface.Show(HelpList(h.registry))
	h.visible = true
	return nil
}

// Close hides the surface. It reports whether the surface was showing.
func (h *HelpToggle) Close() bool {
	if !h.visible {
		return false
	}
	h.visible = false
	if h.surface != nil {
		h.surface.Hide()
	}
	return true
}

// Visible reports whether the surface is currently shown.
func (h *HelpToggle) Visible() bool { return h.visible }

// ShortHelp renders a compact "hint description" footer line for the named
// bindings. Unknown names and bindings without a description are skipped.
func ShortHelp(reg *Registry, names ...string) string {
	snippets := make([]string, 0, len(names))
	for _, name := range names {
		b, ok := reg.Lookup(name)
		if !ok || b.Description == "" {
			continue
		}
		snippets = append(snippets, fmt.Sprintf("%s %s", Format(b), strings.ToLower(b.Description)))
	}
	return strings.Join(snippets, " · ")
}

// HelpText renders the full listing as aligned plain text, one binding per
// line.
func HelpText(entries []HelpEntry) string {
	width := 0
	for _, entry := range entries {
		if n := len([]rune(entry.Hint)); n > width {
			width = n
		}
	}
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%-*s  %s\n", width, entry.Hint, entry.Description)
	}
	return b.String()
}
