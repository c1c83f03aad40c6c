/*
Package multiset implements an ordered multiset on top of an order-statistics
tree.

Equal elements are kept in insertion order: a new element is placed after
all elements equal to it.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package multiset

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/ostree"
	"golang.org/x/exp/constraints"
)

// Iterator addresses an element of a multiset.
type Iterator[T any] = ostree.Iterator[T]

// Multiset is an ordered collection which may hold equal elements more than
// once. Create multisets with New or NewFunc.
type Multiset[T any] struct {
	tree *ostree.Tree[T]
}

// New creates a multiset with the natural ordering of T and inserts values.
func New[T constraints.Ordered](values ...T) *Multiset[T] {
	return &Multiset[T]{tree: ostree.NewMulti(values...)}
}

// NewFunc creates a multiset ordered by cmp and inserts values.
// It returns ostree.ErrInvalidConfig if cmp is nil.
func NewFunc[T any](cmp ostree.Comparator[T], values ...T) (*Multiset[T], error) {
	tree, err := ostree.NewWithConfig(ostree.Config[T]{
		Compare:    cmp,
		Duplicates: ostree.AllowDuplicates,
	}, values...)
	if err != nil {
		return nil, fmt.Errorf("creating multiset: %w", err)
	}
	return &Multiset[T]{tree: tree}, nil
}

// Insert adds v to ms and returns an iterator at the new element.
// The returned flag is always true.
func (ms *Multiset[T]) Insert(v T) (Iterator[T], bool) {
	return ms.tree.Insert(v)
}

// Erase removes the first element equal to v and reports whether there was one.
func (ms *Multiset[T]) Erase(v T) bool {
	return ms.tree.Erase(v)
}

// EraseAll removes every element equal to v and returns their number.
func (ms *Multiset[T]) EraseAll(v T) int {
	n := 0
	for ms.tree.Erase(v) {
		n++
	}
	return n
}

// EraseAt removes the element addressed by it, which need not be the first
// of its equals.
func (ms *Multiset[T]) EraseAt(it Iterator[T]) bool {
	return ms.tree.EraseAt(it)
}

// Find returns an iterator at the first element equal to v, or End().
func (ms *Multiset[T]) Find(v T) Iterator[T] {
	return ms.tree.Find(v)
}

// Contains is true if ms contains an element equal to v.
func (ms *Multiset[T]) Contains(v T) bool {
	return ms.tree.Contains(v)
}

// Count returns the number of elements equal to v.
func (ms *Multiset[T]) Count(v T) int {
	return ms.tree.Count(v)
}

// LowerBound returns an iterator at the first element not smaller than v.
func (ms *Multiset[T]) LowerBound(v T) Iterator[T] {
	return ms.tree.LowerBound(v)
}

// UpperBound returns an iterator at the first element bigger than v.
func (ms *Multiset[T]) UpperBound(v T) Iterator[T] {
	return ms.tree.UpperBound(v)
}

// EqualRange returns the half-open range of elements equal to v.
func (ms *Multiset[T]) EqualRange(v T) (Iterator[T], Iterator[T]) {
	return ms.tree.EqualRange(v)
}

// Begin returns an iterator at the smallest element.
func (ms *Multiset[T]) Begin() Iterator[T] {
	return ms.tree.Begin()
}

// End returns the past-the-end iterator.
func (ms *Multiset[T]) End() Iterator[T] {
	return ms.tree.End()
}

// Nth returns an iterator at the element of rank i, or End().
func (ms *Multiset[T]) Nth(i int) Iterator[T] { return ms.tree.At(i) }

// Len returns the number of elements.
func (ms *Multiset[T]) Len() int {
	return ms.tree.Len()
}

// Empty is true for a multiset without elements.
func (ms *Multiset[T]) Empty() bool {
	return ms.tree.Empty()
}

// MaxSize is the theoretical limit of the number of elements.
func (ms *Multiset[T]) MaxSize() int {
	return ms.tree.MaxSize()
}

// Clear removes all elements.
func (ms *Multiset[T]) Clear() {
	ms.tree.Clear()
}

// Swap exchanges the elements and orderings of ms and other.
func (ms *Multiset[T]) Swap(other *Multiset[T]) {
	if other == nil {
		return
	}
	ms.tree.Swap(other.tree)
}

// Merge moves all elements of other into ms, leaving other empty.
func (ms *Multiset[T]) Merge(other *Multiset[T]) {
	if other == nil {
		return
	}
	ms.tree.Merge(other.tree)
}

// Clone returns a copy of ms.
func (ms *Multiset[T]) Clone() *Multiset[T] {
	return &Multiset[T]{tree: ms.tree.Clone()}
}

// All returns an iterator over the elements in ascending order.
func (ms *Multiset[T]) All() iter.Seq[T] {
	return ms.tree.All()
}

// Backward returns an iterator over the elements in descending order.
func (ms *Multiset[T]) Backward() iter.Seq[T] {
	return ms.tree.Backward()
}

// Values returns the elements in ascending order.
func (ms *Multiset[T]) Values() []T {
	return ms.tree.Values()
}

// Check validates the invariants of the underlying tree.
func (ms *Multiset[T]) Check() error {
	return ms.tree.Check()
}
