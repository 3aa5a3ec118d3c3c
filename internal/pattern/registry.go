package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Entry binds a pattern to the aliases it may be addressed by.
type Entry struct {
	Pattern Pattern
	Aliases []string
}

// Registry resolves pattern names case-insensitively via a reverse index
// built once at construction. It is immutable afterwards: lookups are O(1)
// and safe for concurrent readers, and output never depends on
// registration order.
type Registry struct {
	entries map[string]Entry  // canonical name -> entry
	reverse map[string]string // lowercased name or alias -> canonical name
	names   []string          // canonical names, sorted
}

// NewRegistry builds a registry from entries. Canonical names and aliases
// share one namespace; a collision is a programming error in the static
// pattern catalogue, so NewRegistry panics rather than returning a registry
// whose contents depend on registration order.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		reverse: make(map[string]string, len(entries)*3),
	}
	for _, e := range entries {
		name := e.Pattern.Name
		if name == "" {
			panic("pattern: registry entry with empty pattern name")
		}
		if _, dup := r.entries[name]; dup {
			panic(fmt.Sprintf("pattern: duplicate pattern %q", name))
		}
		r.entries[name] = e
		r.names = append(r.names, name)

		for _, key := range append([]string{name}, e.Aliases...) {
			low := strings.ToLower(strings.TrimSpace(key))
			if low == "" {
				panic(fmt.Sprintf("pattern: empty alias for %q", name))
			}
			if prev, dup := r.reverse[low]; dup && prev != name {
				panic(fmt.Sprintf("pattern: alias %q claimed by both %q and %q", low, prev, name))
			}
			r.reverse[low] = name
		}
	}
	sort.Strings(r.names)
	return r
}

// Lookup resolves name (canonical or alias, any case) to its pattern.
// Unknown names are an absence, not a fault: the second return is false
// and the caller decides how loudly to report it.
func (r *Registry) Lookup(name string) (Pattern, bool) {
	canonical, ok := r.reverse[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, false
	}
	return r.entries[canonical].Pattern, true
}

// Has reports whether name resolves to a registered pattern.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// All returns every registered pattern in canonical-name order.
func (r *Registry) All() []Pattern {
	out := make([]Pattern, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.entries[name].Pattern)
	}
	return out
}

// Aliases returns the registered aliases for a canonical name, nil when
// the name is unknown or has none.
func (r *Registry) Aliases(canonical string) []string {
	e, ok := r.entries[canonical]
	if !ok {
		return nil
	}
	return e.Aliases
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.names)
}

// Default returns the built-in pattern catalogue.
func Default() *Registry {
	return NewRegistry(defaultEntries()...)
}

// DefaultWith returns the built-in catalogue extended with extra entries,
// typically a project's custom rule pattern.
func DefaultWith(extra ...Entry) *Registry {
	return NewRegistry(append(defaultEntries(), extra...)...)
}

func defaultEntries() []Entry {
	return []Entry{
		{
			Pattern: ProgressiveDisclosure(),
			Aliases: []string{"disclosure", "progressive-disclosure"},
		},
		{
			Pattern: FormBasic(),
			Aliases: []string{"form", "forms"},
		},
		{
			Pattern: TableSimple(),
			Aliases: []string{"table", "tables"},
		},
		{
			Pattern: GuidedFlow(),
			Aliases: []string{"flow", "wizard"},
		},
	}
}
