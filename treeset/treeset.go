/*
Package treeset implements an ordered set on top of an order-statistics tree.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treeset

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/ostree"
	"golang.org/x/exp/constraints"
)

// Iterator addresses an element of a set.
type Iterator[T any] = ostree.Iterator[T]

// Set is an ordered set. Create sets with New or NewFunc.
type Set[T any] struct {
	tree *ostree.Tree[T]
}

// New creates a set with the natural ordering of T and inserts values.
func New[T constraints.Ordered](values ...T) *Set[T] {
	return &Set[T]{tree: ostree.New(values...)}
}

// NewFunc creates a set ordered by cmp and inserts values.
// It returns ostree.ErrInvalidConfig if cmp is nil.
func NewFunc[T any](cmp ostree.Comparator[T], values ...T) (*Set[T], error) {
	tree, err := ostree.NewWithConfig(ostree.Config[T]{
		Compare:    cmp,
		Duplicates: ostree.RejectDuplicates,
	}, values...)
	if err != nil {
		return nil, fmt.Errorf("creating set: %w", err)
	}
	return &Set[T]{tree: tree}, nil
}

// Insert adds v to s unless s contains an equal element. It returns an
// iterator at the element equal to v and whether v has been added.
func (s *Set[T]) Insert(v T) (Iterator[T], bool) {
	return s.tree.Insert(v)
}

// Erase removes the element equal to v and reports whether there was one.
func (s *Set[T]) Erase(v T) bool {
	return s.tree.Erase(v)
}

// EraseAt removes the element addressed by it.
func (s *Set[T]) EraseAt(it Iterator[T]) bool {
	return s.tree.EraseAt(it)
}

// Find returns an iterator at the element equal to v, or End().
func (s *Set[T]) Find(v T) Iterator[T] {
	return s.tree.Find(v)
}

// Contains is true if s contains an element equal to v.
func (s *Set[T]) Contains(v T) bool {
	return s.tree.Contains(v)
}

// Count returns 1 if s contains an element equal to v, and 0 otherwise.
func (s *Set[T]) Count(v T) int {
	return s.tree.Count(v)
}

// LowerBound returns an iterator at the first element not smaller than v.
func (s *Set[T]) LowerBound(v T) Iterator[T] {
	return s.tree.LowerBound(v)
}

// UpperBound returns an iterator at the first element bigger than v.
func (s *Set[T]) UpperBound(v T) Iterator[T] {
	return s.tree.UpperBound(v)
}

// Begin returns an iterator at the smallest element.
func (s *Set[T]) Begin() Iterator[T] {
	return s.tree.Begin()
}

// End returns the past-the-end iterator.
func (s *Set[T]) End() Iterator[T] {
	return s.tree.End()
}

// Nth returns an iterator at the element of rank i, or End().
func (s *Set[T]) Nth(i int) Iterator[T] { return s.tree.At(i) }

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Empty is true for a set without elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// MaxSize is the theoretical limit of the number of elements.
func (s *Set[T]) MaxSize() int {
	return s.tree.MaxSize()
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Swap exchanges the elements and orderings of s and other.
func (s *Set[T]) Swap(other *Set[T]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.tree)
}

// Merge moves every element of other which is not in s into s.
// Elements already in s stay in other.
func (s *Set[T]) Merge(other *Set[T]) {
	if other == nil {
		return
	}
	s.tree.Merge(other.tree)
}

// Clone returns a copy of s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

// All returns an iterator over the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.tree.All()
}

// Backward returns an iterator over the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return s.tree.Backward()
}

// Values returns the elements in ascending order.
func (s *Set[T]) Values() []T {
	return s.tree.Values()
}

// Check validates the invariants of the underlying tree.
func (s *Set[T]) Check() error {
	return s.tree.Check()
}
