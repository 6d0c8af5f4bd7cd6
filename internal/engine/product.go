package engine

import (
	"iter"
	"strings"
)

// Product yields the Cartesian product of lists, one line per tuple with the
// components joined by delim. The first list varies slowest and the last
// fastest. Zero lists, or any empty list, yield nothing. The returned
// sequence can be ranged over more than once.
func Product(lists [][]string, delim string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(lists) == 0 {
			return
		}
		for _, l := range lists {
			if len(l) == 0 {
				return
			}
		}

		idx := make([]int, len(lists))
		parts := make([]string, len(lists))
		for {
			for i, l := range lists {
				parts[i] = l[idx[i]]
			}
			if !yield(strings.Join(parts, delim)) {
				return
			}

			// odometer increment, last position fastest
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(lists[i]) {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// ProductSize is the number of lines Product yields for lists.
func ProductSize(lists [][]string) int {
	if len(lists) == 0 {
		return 0
	}
	n := 1
	for _, l := range lists {
		n *= len(l)
	}
	return n
}
