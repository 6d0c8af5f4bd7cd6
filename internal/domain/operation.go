package domain

import (
	"fmt"
	"runtime"
	"slices"
)

// Operation is the combination applied across all inputs.
type Operation string

const (
	OpUnion        Operation = "union"
	OpIntersection Operation = "intersection"
	OpDifference   Operation = "difference"
	OpSum          Operation = "sum"
	OpProduct      Operation = "product"
)

// Operations lists every operation in the order they are presented to users.
var Operations = []Operation{OpUnion, OpIntersection, OpDifference, OpProduct, OpSum}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	return slices.Contains(Operations, op)
}

// Mode selects the collection type used for every input of a run.
type Mode string

const (
	ModeSet      Mode = "set"
	ModeMultiset Mode = "multiset"
)

// CheckOperation rejects operation/mode pairs that cannot be evaluated.
// It must be called before any input is read.
func CheckOperation(op Operation, mode Mode) error {
	if !op.Valid() {
		return UsageError("domain.checkoperation", fmt.Errorf("unknown operation %q", op))
	}
	switch mode {
	case ModeSet:
		if op == OpSum {
			return UsageError("domain.checkoperation", ErrSumRequiresMultiset)
		}
	case ModeMultiset:
	default:
		return UsageError("domain.checkoperation", fmt.Errorf("unknown mode %q", mode))
	}
	return nil
}

// Newline names an output line terminator style.
type Newline string

const (
	NewlineUnix    Newline = "unix"
	NewlineWindows Newline = "windows"
)

// DefaultNewline follows the host OS.
func DefaultNewline() Newline {
	if runtime.GOOS == "windows" {
		return NewlineWindows
	}
	return NewlineUnix
}

// ParseNewline accepts exactly "unix" or "windows".
func ParseNewline(s string) (Newline, error) {
	switch Newline(s) {
	case NewlineUnix:
		return NewlineUnix, nil
	case NewlineWindows:
		return NewlineWindows, nil
	}
	return "", fmt.Errorf("invalid newlines %q (expected unix|windows)", s)
}

// Terminator returns the byte sequence written after every output line.
func (n Newline) Terminator() string {
	if n == NewlineWindows {
		return "\r\n"
	}
	return "\n"
}
