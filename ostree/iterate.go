package ostree

import (
	"iter"
)

// All returns an iterator over the values of t in ascending order.
//
// Different from Iterator, a range loop over All keeps its position on a
// stack and visits every node exactly once. t must not be modified during
// the loop.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(t.root, func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// Ranked returns an iterator over ranks and values of t in ascending order.
func (t *Tree[T]) Ranked() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		inorder(t.root, func(n *node[T]) bool {
			ok := yield(i, n.value)
			i++
			return ok
		})
	}
}

// Backward returns an iterator over the values of t in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		reverseorder(t.root, func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// Values returns the values of t in ascending order.
func (t *Tree[T]) Values() []T {
	vals := make([]T, 0, t.Len())
	for v := range t.All() {
		vals = append(vals, v)
	}
	return vals
}

// ForEach calls f for every value in ascending order, until f returns false.
func (t *Tree[T]) ForEach(f func(v T) bool) {
	inorder(t.root, func(n *node[T]) bool {
		return f(n.value)
	})
}
