// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the fixed-rank (sizes, strides, permutation)
// layout algebra that every tensor view is built on.
package shape

import "errors"

// Sentinel errors returned by shape construction and mutation. Callers
// match these with errors.Is; IndexChecked is the one place in this
// package that wraps one (ErrInvalidRank) with coordinate context.
var (
	// ErrInvalidRank is returned when a requested rank falls outside [1,63].
	// IndexChecked also returns it, wrapped, for a coordinate component
	// that is not below its axis size.
	ErrInvalidRank = errors.New("shape: rank must be in [1,63]")

	// ErrSizeLenMismatch is returned by IndexChecked when a coordinate
	// does not have exactly Rank() entries.
	ErrSizeLenMismatch = errors.New("shape: sizes length does not match rank")

	// ErrCapacityOverflow is returned when the product of sizes would
	// overflow the S (uint32) size type.
	ErrCapacityOverflow = errors.New("shape: size product overflows uint32")

	// ErrInvalidPermutation is returned when a permutation array is not a
	// bijection on [0,rank).
	ErrInvalidPermutation = errors.New("shape: not a valid permutation")
)
