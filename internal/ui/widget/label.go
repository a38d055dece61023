package widget

import "github.com/adamkadaban/storefront-tui/internal/keymap"

// Label is a piece of chrome text that can carry a shortcut hint, such as a
// tab title or a button caption.
type Label struct {
	shortcut string
	text     string
	hint     string
}

var _ keymap.HintTarget = (*Label)(nil)

// NewLabel returns a label annotated by the binding named shortcut.
func NewLabel(shortcut, text string) *Label {
	return &Label{shortcut: shortcut, text: text, hint: text}
}

func (l *Label) Shortcut() string { return l.shortcut }

func (l *Label) Hint() string { return l.hint }

func (l *Label) SetHint(hint string) { l.hint = hint }

// Text is the caption without any hint.
func (l *Label) Text() string { return l.text }

// Reset drops any hint so the label can be annotated again.
func (l *Label) Reset() { l.hint = l.text }

func (l *Label) String() string { return l.hint }
