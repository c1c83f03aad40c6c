/*
Package treemap implements an ordered map on top of an order-statistics tree.

Entries are key-value pairs ordered by key; every key is stored at most once.
Iterators address entries by rank, see package ostree.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package treemap

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/ostree"
	"golang.org/x/exp/constraints"
)

// Pair is an entry of a map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Iterator addresses an entry of a map.
type Iterator[K, V any] = ostree.Iterator[Pair[K, V]]

// Map is an ordered map. Create maps with New or NewFunc.
type Map[K, V any] struct {
	tree *ostree.Tree[Pair[K, V]]
}

// New creates a map ordered by the natural ordering of K and inserts pairs.
// Of pairs with equal keys, the first one wins.
func New[K constraints.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m, err := NewFunc(ostree.Natural[K], pairs...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewFunc creates a map ordered by cmp and inserts pairs.
// It returns ostree.ErrInvalidConfig if cmp is nil.
func NewFunc[K, V any](cmp ostree.Comparator[K], pairs ...Pair[K, V]) (*Map[K, V], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: map needs a key comparator", ostree.ErrInvalidConfig)
	}
	tree, err := ostree.NewWithConfig(ostree.Config[Pair[K, V]]{
		Compare:    ostree.By(key[K, V], cmp),
		Duplicates: ostree.RejectDuplicates,
	}, pairs...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

func key[K, V any](p Pair[K, V]) K {
	return p.Key
}

func lookup[K, V any](k K) Pair[K, V] {
	return Pair[K, V]{Key: k}
}

// Insert adds an entry for k if there is none. It returns an iterator at the
// entry for k and whether a new entry was added. An existing value is not
// changed.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	return m.tree.Insert(Pair[K, V]{Key: k, Value: v})
}

// InsertPair is Insert for a pair.
func (m *Map[K, V]) InsertPair(p Pair[K, V]) (Iterator[K, V], bool) {
	return m.tree.Insert(p)
}

// InsertOrAssign adds an entry for k or replaces the value of the existing
// entry. It reports whether a new entry was added.
func (m *Map[K, V]) InsertOrAssign(k K, v V) (Iterator[K, V], bool) {
	it, inserted := m.tree.Insert(Pair[K, V]{Key: k, Value: v})
	if !inserted {
		p, err := it.Ref()
		if err != nil {
			panic(err) // rejected insert always points to the blocking entry
		}
		p.Value = v
	}
	return it, inserted
}

// At returns the value for k. It returns containers.ErrOutOfRange if
// there is no entry for k.
func (m *Map[K, V]) At(k K) (V, error) {
	p, err := m.tree.Find(lookup[K, V](k)).Value()
	if err != nil {
		return p.Value, fmt.Errorf("key %v not in map: %w", k, containers.ErrOutOfRange)
	}
	return p.Value, nil
}

// Ref returns a pointer to the value for k. If there is no entry for k, an
// entry with the zero value is inserted first.
func (m *Map[K, V]) Ref(k K) *V {
	it, _ := m.tree.Insert(lookup[K, V](k))
	p, err := it.Ref()
	if err != nil {
		panic(err)
	}
	return &p.Value
}

// Erase removes the entry for k and reports whether there was one.
func (m *Map[K, V]) Erase(k K) bool {
	return m.tree.Erase(lookup[K, V](k))
}

// EraseAt removes the entry addressed by it.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) bool {
	return m.tree.EraseAt(it)
}

// Find returns an iterator at the entry for k, or End().
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return m.tree.Find(lookup[K, V](k))
}

// Contains is true if m has an entry for k.
func (m *Map[K, V]) Contains(k K) bool {
	return m.tree.Contains(lookup[K, V](k))
}

// Count returns 1 if m has an entry for k, and 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	return m.tree.Count(lookup[K, V](k))
}

// LowerBound returns an iterator at the first entry with a key not smaller than k.
func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] {
	return m.tree.LowerBound(lookup[K, V](k))
}

// UpperBound returns an iterator at the first entry with a key bigger than k.
func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] {
	return m.tree.UpperBound(lookup[K, V](k))
}

// Begin returns an iterator at the entry with the smallest key.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.tree.Begin()
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.tree.End()
}

// Nth returns an iterator at the entry of rank i, or End().
func (m *Map[K, V]) Nth(i int) Iterator[K, V] {
	return m.tree.At(i)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Empty is true for a map without entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// MaxSize is the theoretical limit of the number of entries.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Swap exchanges the entries and orderings of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	if other == nil {
		return
	}
	m.tree.Swap(other.tree)
}

// Merge moves every entry of other with a key not present in m into m.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil {
		return
	}
	m.tree.Merge(other.tree)
}

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// All returns an iterator over the entries of m in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Check validates the invariants of the underlying tree.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}
