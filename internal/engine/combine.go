package engine

import (
	"iter"
	"slices"

	"github.com/aalvaropc/setop/internal/domain"
)

// Plan describes one evaluation over collections of type C.
type Plan[C domain.Collection[C]] struct {
	Op        domain.Operation
	Binary    BinaryOp[C] // unused for product
	Empty     func() C
	Delimiter string
	// SortProduct re-sorts rendered product lines before output.
	SortProduct bool
}

// Run evaluates p over cs and returns the output lines.
func (p Plan[C]) Run(cs []C) iter.Seq[string] {
	if p.Op == domain.OpProduct {
		lists := make([][]string, len(cs))
		for i, c := range cs {
			lists[i] = c.Elements()
		}
		seq := Product(lists, p.Delimiter)
		if !p.SortProduct {
			return seq
		}
		lines := slices.AppendSeq(make([]string, 0, ProductSize(lists)), seq)
		slices.Sort(lines)
		return slices.Values(lines)
	}

	return slices.Values(Reduce(cs, p.Binary, p.Empty).Elements())
}

// SetPlan builds the set-mode plan for op.
func SetPlan(op domain.Operation, delim string) (Plan[domain.Set], error) {
	p := Plan[domain.Set]{Op: op, Empty: func() domain.Set { return domain.NewSet() }, Delimiter: delim}
	if op == domain.OpProduct {
		return p, nil
	}
	bin, err := SetOp(op)
	if err != nil {
		return Plan[domain.Set]{}, err
	}
	p.Binary = bin
	return p, nil
}

// MultisetPlan builds the multiset-mode plan for op. Product lines are
// sorted after rendering in this mode.
func MultisetPlan(op domain.Operation, delim string) (Plan[domain.Multiset], error) {
	p := Plan[domain.Multiset]{
		Op:          op,
		Empty:       func() domain.Multiset { return domain.NewMultiset() },
		Delimiter:   delim,
		SortProduct: true,
	}
	if op == domain.OpProduct {
		return p, nil
	}
	bin, err := MultisetOp(op)
	if err != nil {
		return Plan[domain.Multiset]{}, err
	}
	p.Binary = bin
	return p, nil
}
