package keymap

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Load when a binding names a command that
// has no action.
var ErrUnknownCommand = errors.New("unknown command")

// BindingSpec is the serializable form of a Binding. Absent modifier flags
// decode as false.
type BindingSpec struct {
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	Ctrl        bool   `yaml:"ctrl,omitempty"`
	Alt         bool   `yaml:"alt,omitempty"`
	Shift       bool   `yaml:"shift,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Command selects the action from an Actions table. Defaults to Name.
	Command string `yaml:"command,omitempty"`
}

// Actions maps command identifiers to actions.
type Actions map[string]Action

// CommandID returns the command the spec invokes.
func (s BindingSpec) CommandID() string {
	if s.Command != "" {
		return s.Command
	}
	return s.Name
}

// Binding resolves the spec against actions.
func (s BindingSpec) Binding(actions Actions) (Binding, error) {
	action, ok := actions[s.CommandID()]
	if !ok {
		return Binding{}, fmt.Errorf("binding %q: %w %q", s.Name, ErrUnknownCommand, s.CommandID())
	}
	return Binding{
		Name:        s.Name,
		Key:         s.Key,
		Ctrl:        s.Ctrl,
		Alt:         s.Alt,
		Shift:       s.Shift,
		Action:      action,
		Description: s.Description,
	}, nil
}

// Load resolves every spec and registers them in order. Nothing is
// registered when any spec fails to resolve.
func Load(reg *Registry, specs []BindingSpec, actions Actions) error {
	bindings := make([]Binding, 0, len(specs))
	for _, spec := range specs {
		b, err := spec.Binding(actions)
		if err != nil {
			return err
		}
		bindings = append(bindings, b)
	}
	for _, b := range bindings {
		reg.Register(b)
	}
	return nil
}
