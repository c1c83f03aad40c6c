/*
Package stack implements a LIFO stack on singly linked nodes.

The order-statistics tree uses it as the explicit auxiliary stack for
clearing, copying and walking trees of arbitrary depth.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stack

import (
	"iter"

	"github.com/npillmayer/containers"
)

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top *link[T]
	n   int
}

type link[T any] struct {
	value T
	next  *link[T]
}

// New creates a stack and pushes values in order, i.e. the last value
// will be on top.
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	s.Push(values...)
	return s
}

// Push puts values onto the stack, one after the other.
func (s *Stack[T]) Push(values ...T) {
	for _, v := range values {
		s.top = &link[T]{value: v, next: s.top}
		s.n++
	}
}

// Pop removes the top element and returns it.
// Popping an empty stack returns containers.ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	l := s.top
	s.top = l.next
	l.next = nil
	s.n--
	return l.value, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.top == nil {
		var zero T
		return zero, containers.ErrEmpty
	}
	return s.top.value, nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.top == nil
}

// Clear drops all elements.
func (s *Stack[T]) Clear() {
	for s.top != nil {
		l := s.top
		s.top = l.next
		l.next = nil
	}
	s.n = 0
}

// Swap exchanges the contents of two stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.top, other.top = other.top, s.top
	s.n, other.n = other.n, s.n
}

// All returns an iterator from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for l := s.top; l != nil; l = l.next {
			if !yield(l.value) {
				return
			}
		}
	}
}
