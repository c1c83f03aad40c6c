package ostree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Ordering is the result of a tri-state comparison.
type Ordering int8

// Results of a Comparator.
const (
	Smaller Ordering = -1
	Equal   Ordering = 0
	Bigger  Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Smaller:
		return "smaller"
	case Equal:
		return "equal"
	case Bigger:
		return "bigger"
	}
	return fmt.Sprintf("Ordering(%d)", int8(o))
}

// Comparator compares a to b and tells whether a is smaller, equal or bigger
// than b. It has to be consistent with a strict weak ordering.
//
// A tree uses its comparator for every structural decision: placement of new
// values, detection of duplicates and computation of ranks.
type Comparator[T any] func(a, b T) Ordering

// Natural is the comparator for the natural ordering of T.
func Natural[T constraints.Ordered](a, b T) Ordering {
	if a < b {
		return Smaller
	}
	if a > b {
		return Bigger
	}
	return Equal
}

// FromFunc adapts a comparison function in the style of cmp.Compare, which
// returns a negative, zero or positive int.
func FromFunc[T any](f func(a, b T) int) Comparator[T] {
	return func(a, b T) Ordering {
		switch c := f(a, b); {
		case c < 0:
			return Smaller
		case c > 0:
			return Bigger
		}
		return Equal
	}
}

// Reverse inverts a comparator.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return cmp(b, a)
	}
}

// By orders values of type T by a key derived from them.
func By[T, K any](key func(T) K, cmp Comparator[K]) Comparator[T] {
	return func(a, b T) Ordering {
		return cmp(key(a), key(b))
	}
}

// DuplicatePolicy tells a tree what to do with a value which compares equal
// to a value already in the tree.
type DuplicatePolicy uint8

const (
	// RejectDuplicates makes Insert report false for an equal value (maps, sets).
	RejectDuplicates DuplicatePolicy = iota
	// AllowDuplicates stores equal values to the right of their equals (multisets).
	AllowDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject-duplicates"
	case AllowDuplicates:
		return "allow-duplicates"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", uint8(p))
}

// Config configures an order-statistics tree.
type Config[T any] struct {
	// Compare orders the values of the tree. It is required.
	Compare Comparator[T]
	// Duplicates decides whether equal values are stored more than once.
	Duplicates DuplicatePolicy
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Duplicates > AllowDuplicates {
		return fmt.Errorf("%w: unknown duplicate policy %d", ErrInvalidConfig, cfg.Duplicates)
	}
	return nil
}
