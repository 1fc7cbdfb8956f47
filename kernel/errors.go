// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the plan-driven walkers (contraction,
// inner/outer product) and the SIMD-chunked primitives
// (reductions, elementwise arithmetic, scalar broadcast, quantization)
// that the tensor views are pushed through. It has no permutation
// walker: tensor.Tensor.Permutate reorders a view's shape without
// moving any data.
package kernel

import "errors"

var (
	// ErrInvalidTensorLayout mirrors tensor.ErrInvalidTensorLayout. No
	// kernel in this package returns it: kernels do not check IsValid()
	// on their operands before walking them.
	ErrInvalidTensorLayout = errors.New("kernel: invalid tensor layout")

	// ErrUnequalSize is returned when elementwise operands don't share
	// an element count.
	ErrUnequalSize = errors.New("kernel: operands have unequal size")

	// ErrInvalidSizes is returned when a contraction/inner-product plan
	// disagrees with the ranks or axis sizes of the tensors it is applied
	// to, and by GonumMatMul for non-rank-2 operands or mismatched inner
	// dimensions.
	ErrInvalidSizes = errors.New("kernel: plan is incompatible with operand sizes")

	// ErrInvalidDimensions is returned when an output tensor's shape
	// does not match the shape a kernel computes.
	ErrInvalidDimensions = errors.New("kernel: invalid output dimensions")

	// ErrSizeZeroTensor is returned by reductions over an empty tensor.
	ErrSizeZeroTensor = errors.New("kernel: reduction over zero-size tensor")

	// ErrIntegerOverflow is returned by the checked abs() on a signed
	// integer's minimum value.
	ErrIntegerOverflow = errors.New("kernel: integer overflow in abs(MIN)")
)
