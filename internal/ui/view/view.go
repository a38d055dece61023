package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adamkadaban/storefront-tui/internal/keymap"
	"github.com/adamkadaban/storefront-tui/internal/theme"
)

// Model represents a routed Bubble Tea view.
type Model interface {
	tea.Model
	SetSize(width, height int)
	SetTheme(theme theme.Theme)
	Title() string

	// Focus reports which component inside the view owns the keyboard.
	Focus() keymap.Focus
	// Blur releases an editable component. It reports whether anything
	// was focused.
	Blur() bool
	// Hints lists the elements that display a shortcut hint.
	Hints() []keymap.HintTarget
}

// Searcher is implemented by views with a search field.
type Searcher interface {
	StartSearch() tea.Cmd
}

// Submitter is implemented by views that can submit their contents.
// The returned error is reported by the binding that triggered it.
type Submitter interface {
	Submit() error
}
