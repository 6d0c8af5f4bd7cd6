package engine

import (
	"fmt"

	"github.com/aalvaropc/setop/internal/domain"
)

// BinaryOp combines two collections into a new one.
type BinaryOp[C any] func(a, b C) C

// Reduce folds cs left to right: op(op(op(c1, c2), c3), ...).
// Zero inputs yield empty(); a single input is returned unchanged.
func Reduce[C any](cs []C, op BinaryOp[C], empty func() C) C {
	if len(cs) == 0 {
		return empty()
	}
	acc := cs[0]
	for _, c := range cs[1:] {
		acc = op(acc, c)
	}
	return acc
}

// SetOp returns the set-mode implementation of op. Sum and product have no
// set binary form.
func SetOp(op domain.Operation) (BinaryOp[domain.Set], error) {
	switch op {
	case domain.OpUnion:
		return domain.Set.Union, nil
	case domain.OpIntersection:
		return domain.Set.Intersection, nil
	case domain.OpDifference:
		return domain.Set.Difference, nil
	case domain.OpSum:
		return nil, domain.UsageError("engine.setop", domain.ErrSumRequiresMultiset)
	}
	return nil, domain.UsageError("engine.setop", fmt.Errorf("%q is not a binary operation", op))
}

// MultisetOp returns the multiset-mode implementation of op.
func MultisetOp(op domain.Operation) (BinaryOp[domain.Multiset], error) {
	switch op {
	case domain.OpUnion:
		return domain.Multiset.Union, nil
	case domain.OpIntersection:
		return domain.Multiset.Intersection, nil
	case domain.OpDifference:
		return domain.Multiset.Difference, nil
	case domain.OpSum:
		return domain.Multiset.Sum, nil
	}
	return nil, domain.UsageError("engine.multisetop", fmt.Errorf("%q is not a binary operation", op))
}
