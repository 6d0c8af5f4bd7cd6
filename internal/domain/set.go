package domain

import "slices"

// Set is a collection of unique line values. The zero value is an empty set
// ready for reading; Add allocates on first use.
type Set struct {
	items map[string]struct{}
}

func NewSet(lines ...string) Set {
	s := Set{items: make(map[string]struct{}, len(lines))}
	for _, l := range lines {
		s.Add(l)
	}
	return s
}

// Add inserts line. Empty lines are never stored.
func (s *Set) Add(line string) {
	if line == "" {
		return
	}
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[line] = struct{}{}
}

func (s Set) Contains(line string) bool {
	_, ok := s.items[line]
	return ok
}

func (s Set) Len() int { return len(s.items) }

func (s Set) Union(other Set) Set {
	out := Set{items: make(map[string]struct{}, len(s.items)+len(other.items))}
	for k := range s.items {
		out.items[k] = struct{}{}
	}
	for k := range other.items {
		out.items[k] = struct{}{}
	}
	return out
}

func (s Set) Intersection(other Set) Set {
	small, large := s, other
	if len(large.items) < len(small.items) {
		small, large = large, small
	}
	out := Set{items: make(map[string]struct{})}
	for k := range small.items {
		if large.Contains(k) {
			out.items[k] = struct{}{}
		}
	}
	return out
}

func (s Set) Difference(other Set) Set {
	out := Set{items: make(map[string]struct{})}
	for k := range s.items {
		if !other.Contains(k) {
			out.items[k] = struct{}{}
		}
	}
	return out
}

func (s Set) Elements() []string {
	out := make([]string, 0, len(s.items))
	for k := range s.items {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
