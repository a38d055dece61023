package keymap

import "sort"

// AllowList names the bindings that still dispatch while an editable field
// holds focus.
type AllowList map[string]struct{}

// NewAllowList builds an allow-list from binding names.
func NewAllowList(names ...string) AllowList {
	list := make(AllowList, len(names))
	for _, name := range names {
		list[name] = struct{}{}
	}
	return list
}

// Has reports whether name is allow-listed.
func (a AllowList) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Names returns the allow-listed names sorted alphabetically.
func (a AllowList) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Guard decides which bindings may fire for a given focus context.
type Guard struct {
	allow AllowList
}

// NewGuard returns a guard using allow as its editable-focus allow-list.
func NewGuard(allow AllowList) Guard {
	if allow == nil {
		allow = AllowList{}
	}
	return Guard{allow: allow}
}

// Editable reports whether ev was pressed inside an editable field.
func (g Guard) Editable(ev Event) bool {
	return ev.Focus.Editable()
}

// Permits reports whether b may fire given the editable state of the event.
func (g Guard) Permits(editable bool, b Binding) bool {
	return !editable || g.allow.Has(b.Name)
}

// MayDispatch combines Editable and Permits for a single binding.
func (g Guard) MayDispatch(ev Event, b Binding) bool {
	return g.Permits(g.Editable(ev), b)
}

// AllowList returns the guard's allow-list.
func (g Guard) AllowList() AllowList {
	return g.allow
}
