package domain

import "sort"

// IgnoreSet is an immutable set of entry base names that are neither indexed
// nor descended into.
type IgnoreSet struct {
	names map[string]struct{}
}

// NewIgnoreSet builds an IgnoreSet from base names. Empty names are dropped.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := IgnoreSet{names: make(map[string]struct{}, len(names))}

	for _, name := range names {
		if name == "" {
			continue
		}

		set.names[name] = struct{}{}
	}

	return set
}

// DefaultIgnoreSet returns a fresh copy of the fixed exclusion set.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(".git")
}

// Ignores reports whether an entry with the given base name is excluded.
// Matching is exact and case-sensitive.
func (s IgnoreSet) Ignores(name string) bool {
	if len(s.names) == 0 {
		return false
	}

	_, ok := s.names[name]

	return ok
}

// Names returns the ignored names in sorted order.
func (s IgnoreSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
