// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"zein.dev/zein/shape"
)

// Tensor is a view over a data slice plus the shape.Shape describing
// how to read it. Tensor never owns data -- its lifetime belongs to
// whoever allocated it (the caller, or a factory.Factory). Permutate
// and Swap never copy the underlying buffer.
//
// Permutate itself takes a pre-parsed axes plan; callers working from a
// string expression go through expr.ParsePermutation first (package
// tensor does not depend on package expr).
type Tensor[T Numeric] struct {
	data  []T
	shape *shape.Shape
}

// New builds a Tensor over data with the given sizes and order. A nil
// data slice yields an uninitialized-capacity view, used when the
// caller intends to bind data later (e.g. from a factory).
func New[T Numeric](data []T, sizes []shape.S, order shape.Order) (*Tensor[T], error) {
	sh, err := shape.New(order, sizes)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: data, shape: sh}, nil
}

// NewFromShape builds a Tensor by value-copying an existing Shape,
// optionally binding an existing data slice (shared, not copied).
func NewFromShape[T Numeric](data []T, sh *shape.Shape) *Tensor[T] {
	return &Tensor[T]{data: data, shape: sh.Clone()}
}

// Shape returns the tensor's Shape.
func (t *Tensor[T]) Shape() *shape.Shape { return t.shape }

// Data returns the backing data slice. Not a copy.
func (t *Tensor[T]) Data() []T { return t.data }

// IsValid reports whether data.len == product(sizes) and data.len > 0.
func (t *Tensor[T]) IsValid() bool {
	cap := t.shape.Len()
	return cap > 0 && len(t.data) == cap
}

// ValueSize returns len(data).
func (t *Tensor[T]) ValueSize() int { return len(t.data) }

// ValueCapacity returns the product of sizes.
func (t *Tensor[T]) ValueCapacity() int { return t.shape.Len() }

// GetValue is unchecked: coord must have Rank() entries, each below
// its axis size, and the tensor must be IsValid(). Bounds-checking
// here would make expression-driven kernel loops intolerably slow.
func (t *Tensor[T]) GetValue(coord []shape.S) T {
	return t.data[t.shape.Index(coord)]
}

// SetValue is the unchecked sibling of GetValue.
func (t *Tensor[T]) SetValue(v T, coord []shape.S) {
	t.data[t.shape.Index(coord)] = v
}

// GetValueChecked validates IsValid() and coord bounds before reading.
func (t *Tensor[T]) GetValueChecked(coord []shape.S) (T, error) {
	if !t.IsValid() {
		var zero T
		return zero, ErrInvalidTensorLayout
	}
	off, err := t.shape.IndexChecked(coord)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[off], nil
}

// SetValueChecked is the checked sibling of SetValue.
func (t *Tensor[T]) SetValueChecked(v T, coord []shape.S) error {
	if !t.IsValid() {
		return ErrInvalidTensorLayout
	}
	off, err := t.shape.IndexChecked(coord)
	if err != nil {
		return err
	}
	t.data[off] = v
	return nil
}

// Permutate takes an axes plan produced by expr.ParsePermutation and
// returns a new view sharing the same data slice with the permuted
// shape. Requires IsValid(). No allocation beyond the new Shape's
// arrays.
func (t *Tensor[T]) Permutate(axes []shape.S) (*Tensor[T], error) {
	if !t.IsValid() {
		return nil, ErrInvalidTensorLayout
	}
	newShape, err := t.shape.Permuted(axes)
	if err != nil {
		return nil, ErrInvalidPermutation
	}
	return &Tensor[T]{data: t.data, shape: newShape}, nil
}

// Swap exchanges data slices and shapes between two views in place.
// Both must be valid.
func (t *Tensor[T]) Swap(other *Tensor[T]) error {
	if !t.IsValid() || !other.IsValid() {
		return ErrInvalidTensorLayout
	}
	t.data, other.data = other.data, t.data
	t.shape, other.shape = other.shape, t.shape
	return nil
}

// Bind attaches data to a shape-only view (one built with nil data, e.g.
// by a factory reserving the shape ahead of the allocation). Fails if
// the view already has backing data.
func (t *Tensor[T]) Bind(data []T) error {
	if t.data != nil {
		return ErrAlreadyBound
	}
	t.data = data
	return nil
}

// Unbind detaches the view's data slice and returns it, leaving the
// view shape-only again. The caller becomes responsible for it (e.g. to
// return it to an allocator).
func (t *Tensor[T]) Unbind() []T {
	data := t.data
	t.data = nil
	return data
}

// Rank is shorthand for Shape().Rank().
func (t *Tensor[T]) Rank() int { return t.shape.Rank() }

// Sizes is shorthand for Shape().Sizes().
func (t *Tensor[T]) Sizes() []shape.S { return t.shape.Sizes() }
