package domain

import "slices"

// Multiset maps a line value to its multiplicity. Keys with multiplicity 0
// are never stored. The zero value is an empty multiset.
type Multiset struct {
	counts map[string]int
}

func NewMultiset(lines ...string) Multiset {
	m := Multiset{counts: make(map[string]int, len(lines))}
	for _, l := range lines {
		m.Add(l, 1)
	}
	return m
}

// Add increases the multiplicity of line by n. Empty lines and
// non-positive n are ignored.
func (m *Multiset) Add(line string, n int) {
	if line == "" || n <= 0 {
		return
	}
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[line] += n
}

// Count returns the multiplicity of line (0 if absent).
func (m Multiset) Count(line string) int { return m.counts[line] }

func (m Multiset) Len() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}
	return n
}

// Union keeps, per key, the larger multiplicity.
func (m Multiset) Union(other Multiset) Multiset {
	out := m.clone()
	for k, c := range other.counts {
		if c > out.counts[k] {
			out.counts[k] = c
		}
	}
	return out
}

// Sum adds multiplicities key by key.
func (m Multiset) Sum(other Multiset) Multiset {
	out := m.clone()
	for k, c := range other.counts {
		out.counts[k] += c
	}
	return out
}

// Intersection keeps, per key, the smaller multiplicity.
func (m Multiset) Intersection(other Multiset) Multiset {
	out := Multiset{counts: make(map[string]int)}
	for k, c := range m.counts {
		if oc := other.counts[k]; oc > 0 {
			out.counts[k] = min(c, oc)
		}
	}
	return out
}

// Difference subtracts multiplicities, dropping keys that reach zero.
func (m Multiset) Difference(other Multiset) Multiset {
	out := Multiset{counts: make(map[string]int)}
	for k, c := range m.counts {
		if d := c - other.counts[k]; d > 0 {
			out.counts[k] = d
		}
	}
	return out
}

// Elements returns the sorted keys, each repeated by its multiplicity.
func (m Multiset) Elements() []string {
	keys := make([]string, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]string, 0, m.Len())
	for _, k := range keys {
		for range m.counts[k] {
			out = append(out, k)
		}
	}
	return out
}

func (m Multiset) clone() Multiset {
	out := Multiset{counts: make(map[string]int, len(m.counts))}
	for k, c := range m.counts {
		out.counts[k] = c
	}
	return out
}
