package keymap

// Conflict names a binding that can never fire because an earlier binding
// has the same signature.
type Conflict struct {
	Shadowed string
	By       string
}

// Conflicts lists every shadowed binding in registry order.
func Conflicts(reg *Registry) []Conflict {
	first := make(map[Signature]string)
	var out []Conflict
	for b := range reg.All() {
		sig := b.Signature()
		if winner, ok := first[sig]; ok {
			out = append(out, Conflict{Shadowed: b.Name, By: winner})
			continue
		}
		first[sig] = b.Name
	}
	return out
}
