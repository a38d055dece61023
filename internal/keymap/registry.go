package keymap

import (
	"iter"
	"sync"
)

// Registry is an ordered set of bindings keyed by name. Insertion order is
// the dispatch tie-break and the help listing order.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Binding)}
}

// Register stores b under b.Name. An existing binding with the same name is
// replaced in place and keeps its position.
func (r *Registry) Register(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[b.Name]; !ok {
		r.order = append(r.order, b.Name)
	}
	r.byName[b.Name] = b
}

// Unregister removes the named binding. The remaining bindings keep their
// relative order. It reports whether a binding was removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return false
	}
	delete(r.byName, name)
	for idx, existing := range r.order {
		if existing == name {
			r.order = append(r.order[:idx:idx], r.order[idx+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the binding registered under name.
func (r *Registry) Lookup(name string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byName[name]
	return b, ok
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Names returns binding names in registry order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All yields the bindings in registry order. Each range over the sequence
// works on a snapshot taken when iteration starts, so registrations made
// while ranging only show up in the next pass.
func (r *Registry) All() iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		for _, b := range r.snapshot() {
			if !yield(b) {
				return
			}
		}
	}
}

func (r *Registry) snapshot() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := make([]Binding, 0, len(r.order))
	for _, name := range r.order {
		bindings = append(bindings, r.byName[name])
	}
	return bindings
}
