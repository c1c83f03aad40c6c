// Package array implements a fixed-length array with bounds-checked access.
//
// Go's built-in arrays fix their length at compile time. Array fixes it at
// construction time instead, so generic code can size it from a value.
package array

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/containers"
)

// Array is a sequence of values whose length never changes.
type Array[T any] struct {
	data []T
}

// New creates an array of n zero values.
func New[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}
	return &Array[T]{data: make([]T, n)}
}

// Of creates an array holding a copy of values.
func Of[T any](values ...T) *Array[T] {
	return &Array[T]{data: slices.Clone(values)}
}

// At returns the element at position i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, fmt.Errorf("array index %d with length %d: %w", i, len(a.data), containers.ErrOutOfRange)
	}
	return a.data[i], nil
}

// Set replaces the element at position i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("array index %d with length %d: %w", i, len(a.data), containers.ErrOutOfRange)
	}
	a.data[i] = v
	return nil
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	return a.data[0], nil
}

// Back returns the last element.
func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	return a.data[len(a.data)-1], nil
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Len returns the fixed length.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Empty reports whether the array has length 0.
func (a *Array[T]) Empty() bool {
	return len(a.data) == 0
}

// Swap exchanges the contents of two arrays of equal length.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return containers.ErrLengthMismatch
	}
	a.data, other.data = other.data, a.data
	return nil
}

// All returns an iterator over index/value pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.data)
}

// Data returns the underlying slice. It is shared with the array.
func (a *Array[T]) Data() []T {
	return a.data
}
