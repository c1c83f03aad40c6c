// Package queue implements a FIFO queue on singly linked nodes.
package queue

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/containers"
)

// Queue is a FIFO container. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head, tail *link[T]
	n          int
}

type link[T any] struct {
	value T
	next  *link[T]
}

// New creates a queue and pushes values in order.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Push(values...)
	return q
}

// Push appends values at the back of the queue.
func (q *Queue[T]) Push(values ...T) {
	for _, v := range values {
		l := &link[T]{value: v}
		if q.tail == nil {
			q.head = l
		} else {
			q.tail.next = l
		}
		q.tail = l
		q.n++
	}
}

// Pop removes the front element and returns it.
func (q *Queue[T]) Pop() (T, error) {
	if q.head == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	l := q.head
	q.head = l.next
	if q.head == nil {
		q.tail = nil
	}
	l.next = nil
	q.n--
	return l.value, nil
}

// Front returns the element which will be popped next.
func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return q.head.value, nil
}

// Back returns the element pushed last.
func (q *Queue[T]) Back() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return q.tail.value, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.n
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == nil
}

// Clear drops all elements.
func (q *Queue[T]) Clear() {
	for q.head != nil {
		l := q.head
		q.head = l.next
		l.next = nil
	}
	q.tail, q.n = nil, 0
}

// Swap exchanges the contents of two queues.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.head, other.head = other.head, q.head
	q.tail, other.tail = other.tail, q.tail
	q.n, other.n = other.n, q.n
}

// All returns an iterator from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for l := q.head; l != nil; l = l.next {
			if !yield(l.value) {
				return
			}
		}
	}
}
