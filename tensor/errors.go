// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor implements the rank- and order-parameterized tensor
// view: a data slice paired with a shape.Shape, with zero-copy
// permutation and swap.
package tensor

import "errors"

var (
	// ErrInvalidTensorLayout is returned when data.len disagrees with
	// the product of sizes, per the Tensor validity invariant.
	ErrInvalidTensorLayout = errors.New("tensor: data length does not match declared capacity")

	// ErrInvalidPermutation is returned by Permutate when axes is not a
	// bijection on the view's axes.
	ErrInvalidPermutation = errors.New("tensor: invalid permutation expression")

	// ErrRankMismatch is returned when a tensor's rank does not fit the
	// operation, e.g. AsGonumMatrix on a tensor of rank below 2.
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrCapacityMismatch names a data slice whose length does not match
	// the capacity implied by sizes. No function in this package returns
	// it: New and Bind accept data of any length, and IsValid reports the
	// disagreement.
	ErrCapacityMismatch = errors.New("tensor: capacity mismatch")

	// ErrAlreadyBound is returned by Bind when the view already has a
	// backing data slice.
	ErrAlreadyBound = errors.New("tensor: view already has backing data")
)
