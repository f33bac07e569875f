package custody

import (
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values, e.g. the levels of a column or
// the categories of an enumeration.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

func (s StringSet) String() string {
	return "[" + strings.Join(s.Elements(), " ") + "]"
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Missing returns the elements of want which are not in s, in the
// order given by want.
func (s StringSet) Missing(want []string) []string {
	var missing []string
	for _, w := range want {
		if !s.Contains(w) {
			missing = append(missing, w)
		}
	}
	return missing
}

// Elements returns the sorted elements of s.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
