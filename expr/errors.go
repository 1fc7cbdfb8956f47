// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr parses einsum-style index strings ("ijk->jk",
// "ij,jk->ik") into reusable execution plans: ContractionPlan,
// PermutationPlan and InnerProductPlan.
package expr

import "errors"

var (
	// ErrMalformedExpression is returned when the "->" separator is
	// missing, duplicated, or operand counts don't match a comma split.
	ErrMalformedExpression = errors.New("expr: malformed index expression")

	// ErrNonAlphabeticIndex is returned when a character outside A-Z/a-z
	// appears where an index is expected.
	ErrNonAlphabeticIndex = errors.New("expr: index characters must be alphabetic")

	// ErrRankLenMismatch is returned when an operand string's length
	// does not match the declared rank for that operand.
	ErrRankLenMismatch = errors.New("expr: operand length does not match declared rank")

	// ErrRankOrder is returned when a contraction is requested with
	// lRank < rRank -- the engine only contracts from larger to smaller.
	ErrRankOrder = errors.New("expr: lhs rank must be >= rhs rank")

	// ErrUnmatchedResultAxis is returned when a result-side character
	// has no corresponding match on the left-hand side.
	ErrUnmatchedResultAxis = errors.New("expr: result axis has no matching operand axis")

	// ErrInvalidPermutation is returned when a permute expression's
	// right side is not a permutation of its left side.
	ErrInvalidPermutation = errors.New("expr: not a valid permutation expression")

	// ErrFreeAxisUnbound is returned when inner/outer product output
	// characters do not all appear in at least one input operand.
	ErrFreeAxisUnbound = errors.New("expr: output axis not bound by either operand")
)
