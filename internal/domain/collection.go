package domain

// Collection is implemented by Set and Multiset. The type parameter lets
// binary operations take an operand of the same concrete type, so the engine
// can be written once and the set/multiset choice made at a single point.
type Collection[C any] interface {
	Union(other C) C
	Intersection(other C) C
	Difference(other C) C
	// Len counts elements including repetitions.
	Len() int
	// Elements returns the sorted elements, repeated by multiplicity.
	Elements() []string
}

var (
	_ Collection[Set]      = Set{}
	_ Collection[Multiset] = Multiset{}
)
