package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HintTarget is a presentation element that declares which binding it
// belongs to and carries a textual hint.
type HintTarget interface {
	Shortcut() string
	Hint() string
	SetHint(hint string)
}

// Annotator appends formatted shortcut labels to hint targets.
type Annotator struct {
	registry *Registry
}

// NewAnnotator returns an annotator reading bindings from reg.
func NewAnnotator(reg *Registry) Annotator {
	return Annotator{registry: reg}
}

// Annotate appends "(<hint>)" for the named binding to target's existing
// hint. Unknown names leave the target untouched. It reports whether a hint
// was added.
func (a Annotator) Annotate(target HintTarget, name string) bool {
	if target == nil || a.registry == nil {
		return false
	}
	b, ok := a.registry.Lookup(name)
	if !ok {
		return false
	}
	hint := strings.TrimSpace(target.Hint() + " (" + Format(b) + ")")
	target.SetHint(hint)
	return true
}

// AnnotateAll annotates each target using its declared shortcut name and
// returns how many targets received a hint.
func (a Annotator) AnnotateAll(targets ...HintTarget) int {
	added := 0
	for _, target := range targets {
		if target == nil {
			continue
		}
		name := target.Shortcut()
		if name == "" {
			continue
		}
		if a.Annotate(target, name) {
			added++
		}
	}
	return added
}

// KeyHint exposes a bubbles key.Binding's help description as a hint target.
type KeyHint struct {
	Name    string
	Binding *key.Binding
}

func (k KeyHint) Shortcut() string { return k.Name }

func (k KeyHint) Hint() string {
	if k.Binding == nil {
		return ""
	}
	return k.Binding.Help().Desc
}

func (k KeyHint) SetHint(hint string) {
	if k.Binding == nil {
		return
	}
	k.Binding.SetHelp(k.Binding.Help().Key, hint)
}
