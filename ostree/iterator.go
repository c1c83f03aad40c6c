package ostree

import (
	"fmt"
)

// Iterator addresses a value of a tree by its rank. An iterator does not
// store a path: every move descends from the current root of its tree.
//
// Iterators stay valid across modifications of the tree in the sense that
// they keep their rank. After an insert or erase at a smaller rank an
// iterator will therefore address a different value on its next move.
// Value and Ref return the node the iterator was positioned on.
type Iterator[T any] struct {
	tree  *Tree[T]
	cur   *node[T] // nil for end
	index int      // -1 for end
}

// Begin returns an iterator at the smallest value, or End() for an empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	return t.At(0)
}

// End returns the past-the-end iterator of t.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t, index: -1}
}

// IsEnd is true for the past-the-end iterator.
func (it Iterator[T]) IsEnd() bool {
	return it.cur == nil
}

// Index returns the rank of the iterator, or -1 for end.
func (it Iterator[T]) Index() int {
	if it.cur == nil {
		return -1
	}
	return it.index
}

// Advance moves the iterator by n positions, which may be negative.
// End counts as rank Len() for the move; landing outside of
// [0, Len()) gives End().
func (it Iterator[T]) Advance(n int) Iterator[T] {
	if it.tree == nil {
		return it
	}
	base := it.index
	if it.IsEnd() {
		base = it.tree.Len()
	}
	return it.tree.At(base + n)
}

// Next moves to the following value. Next of end is end.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Advance(1)
}

// Prev moves to the preceding value. Prev of end is the last value,
// Prev of the first value is end.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Advance(-1)
}

// Value returns the value the iterator is positioned on.
// It returns ErrOutOfRange for end.
func (it Iterator[T]) Value() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, fmt.Errorf("dereferencing end iterator: %w", ErrOutOfRange)
	}
	return it.cur.value, nil
}

// Ref returns a pointer to the value the iterator is positioned on.
// Clients must not change the value in a way which changes its ordering.
// It returns ErrOutOfRange for end.
func (it Iterator[T]) Ref() (*T, error) {
	if it.cur == nil {
		return nil, fmt.Errorf("dereferencing end iterator: %w", ErrOutOfRange)
	}
	return &it.cur.value, nil
}

// Equal is true if it and other address the same position of the same tree.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.tree == other.tree && it.cur == other.cur && it.Index() == other.Index()
}
