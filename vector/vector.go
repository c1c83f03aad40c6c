/*
Package vector implements a dynamic array with bounds-checked access.

Growth is left to Go's append, which grows capacity geometrically.
Reserve and ShrinkToFit let clients control capacity explicitly.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/containers"
)

// Vector is a growable sequence of values. The zero value is an empty vector.
type Vector[T any] struct {
	data []T
}

// New creates a vector holding a copy of values.
func New[T any](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// WithLen creates a vector of n zero values.
func WithLen[T any](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{data: make([]T, n)}
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("vector index %d with length %d: %w", i, len(v.data), containers.ErrOutOfRange)
	}
	return nil
}

// At returns the element at position i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Ref returns a pointer to the element at position i. The pointer is valid
// until the vector is resized.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.data[i], nil
}

// Set replaces the element at position i.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	return v.data[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	return v.data[len(v.data)-1], nil
}

// PushBack appends values.
func (v *Vector[T]) PushBack(values ...T) {
	v.data = append(v.data, values...)
}

// PopBack removes the last element and returns it.
func (v *Vector[T]) PopBack() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	last := v.data[len(v.data)-1]
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return last, nil
}

// Insert inserts values before position i. i == Len() appends.
func (v *Vector[T]) Insert(i int, values ...T) error {
	if i < 0 || i > len(v.data) {
		return fmt.Errorf("vector insert at %d with length %d: %w", i, len(v.data), containers.ErrOutOfRange)
	}
	v.data = slices.Insert(v.data, i, values...)
	return nil
}

// Erase removes the element at position i.
func (v *Vector[T]) Erase(i int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data = slices.Delete(v.data, i, i+1)
	return nil
}

// Reserve makes sure the vector can hold at least n elements without
// reallocation. A negative n is flagged as containers.ErrIllegalArguments.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("vector reserve %d: %w", n, containers.ErrIllegalArguments)
	}
	if n > cap(v.data) {
		v.data = slices.Grow(v.data, n-len(v.data))
	}
	return nil
}

// Capacity returns the number of elements the vector can hold without
// reallocation.
func (v *Vector[T]) Capacity() int {
	return cap(v.data)
}

// ShrinkToFit releases unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	v.data = slices.Clip(slices.Clone(v.data))
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return len(v.data) == 0
}

// Clear removes all elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Swap exchanges the contents of two vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// All returns an iterator over index/value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

// Data returns the underlying slice. It is shared with the vector.
func (v *Vector[T]) Data() []T {
	return v.data
}
