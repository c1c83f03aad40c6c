// Package list implements a generic doubly linked list.
package list

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"

	"github.com/npillmayer/containers"
)

// Element is a node of a linked list.
type Element[T any] struct {
	Value      T
	next, prev *Element[T]
	list       *List[T]
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is a doubly linked list.
//
// A list created by
//
//	List[T]{}
//
// is a valid and empty list.
type List[T any] struct {
	head, tail *Element[T]
	n          int
}

// New creates a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements of l.
func (l *List[T]) Len() int {
	return l.n
}

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool {
	return l.n == 0
}

// First returns the first element of l or nil.
func (l *List[T]) First() *Element[T] {
	return l.head
}

// Last returns the last element of l or nil.
func (l *List[T]) Last() *Element[T] {
	return l.tail
}

// Front returns the first value. It is an error to call Front on an empty list.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return l.head.Value, nil
}

// Back returns the last value. It is an error to call Back on an empty list.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return l.tail.Value, nil
}

// PushFront prepends v and returns the new element.
func (l *List[T]) PushFront(v T) *Element[T] {
	return l.insertBefore(l.head, &Element[T]{Value: v})
}

// PushBack appends v and returns the new element.
func (l *List[T]) PushBack(v T) *Element[T] {
	return l.insertBefore(nil, &Element[T]{Value: v})
}

// InsertBefore inserts v right before mark. A nil mark denotes the position
// after the last element. If mark is not an element of l, InsertBefore
// returns nil and l is left unchanged.
func (l *List[T]) InsertBefore(mark *Element[T], v T) *Element[T] {
	if mark != nil && mark.list != l {
		return nil
	}
	return l.insertBefore(mark, &Element[T]{Value: v})
}

func (l *List[T]) insertBefore(mark, e *Element[T]) *Element[T] {
	e.list = l
	if mark == nil {
		e.prev = l.tail
		e.next = nil
		if l.tail != nil {
			l.tail.next = e
		} else {
			l.head = e
		}
		l.tail = e
	} else {
		e.next = mark
		e.prev = mark.prev
		if mark.prev != nil {
			mark.prev.next = e
		} else {
			l.head = e
		}
		mark.prev = e
	}
	l.n++
	return e
}

// Remove unlinks e from l and returns its value. Removing an element which
// does not belong to l is a no-op.
func (l *List[T]) Remove(e *Element[T]) T {
	if e == nil {
		var zero T
		return zero
	}
	if e.list != l {
		return e.Value
	}
	l.unlink(e)
	return e.Value
}

func (l *List[T]) unlink(e *Element[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.next, e.prev, e.list = nil, nil, nil
	l.n--
}

// PopFront removes the first element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return l.Remove(l.head), nil
}

// PopBack removes the last element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return l.Remove(l.tail), nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.head, l.tail, l.n = nil, nil, 0
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.n, other.n = other.n, l.n
	l.adopt()
	other.adopt()
}

func (l *List[T]) adopt() {
	for e := l.head; e != nil; e = e.next {
		e.list = l
	}
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	for e := l.head; e != nil; e = e.prev {
		e.next, e.prev = e.prev, e.next
	}
	l.head, l.tail = l.tail, l.head
}

// Unique removes consecutive elements which are equal to their predecessor.
func (l *List[T]) Unique(eq func(a, b T) bool) {
	if l.n < 2 {
		return
	}
	for e := l.head; e.next != nil; {
		if eq(e.Value, e.next.Value) {
			l.unlink(e.next)
		} else {
			e = e.next
		}
	}
}

// Sort sorts the elements with cmp. Sorting is stable and keeps the
// identity of elements.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.n < 2 {
		return
	}
	elems := make([]*Element[T], 0, l.n)
	for e := l.head; e != nil; e = e.next {
		elems = append(elems, e)
	}
	slices.SortStableFunc(elems, func(a, b *Element[T]) int {
		return cmp(a.Value, b.Value)
	})
	l.relink(elems)
}

func (l *List[T]) relink(elems []*Element[T]) {
	var prev *Element[T]
	for _, e := range elems {
		e.prev = prev
		if prev != nil {
			prev.next = e
		}
		prev = e
	}
	prev.next = nil
	l.head, l.tail = elems[0], prev
}

// Merge merges the sorted list other into the sorted list l. Both lists must
// be sorted by cmp. Afterwards other is empty. For equal elements, elements of
// l precede elements of other.
func (l *List[T]) Merge(other *List[T], cmp func(a, b T) int) {
	if other == nil || other == l || other.n == 0 {
		return
	}
	elems := make([]*Element[T], 0, l.n+other.n)
	a, b := l.head, other.head
	for a != nil && b != nil {
		if cmp(b.Value, a.Value) < 0 {
			elems = append(elems, b)
			b = b.next
		} else {
			elems = append(elems, a)
			a = a.next
		}
	}
	for ; a != nil; a = a.next {
		elems = append(elems, a)
	}
	for ; b != nil; b = b.next {
		elems = append(elems, b)
	}
	l.n += other.n
	other.head, other.tail, other.n = nil, nil, 0
	l.relink(elems)
	l.adopt()
}

// Splice moves all elements of other right before mark (nil meaning the
// end of l). Afterwards other is empty.
func (l *List[T]) Splice(mark *Element[T], other *List[T]) {
	if other == nil || other == l || other.n == 0 {
		return
	}
	if mark != nil && mark.list != l {
		return
	}
	for e := other.head; e != nil; {
		next := e.next
		l.insertBefore(mark, e)
		e = next
	}
	other.head, other.tail, other.n = nil, nil, 0
}

// All returns an iterator over the values from first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from last to first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values of l as a slice.
func (l *List[T]) Values() []T {
	return slices.Collect(l.All())
}
