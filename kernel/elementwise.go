// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "zein.dev/zein/tensor"

func sameSize[T tensor.Numeric](x, y, z *tensor.Tensor[T]) error {
	n := x.ValueSize()
	if y.ValueSize() != n || z.ValueSize() != n {
		return ErrUnequalSize
	}
	return nil
}

// Add computes z[i] = x[i] + y[i] over every element, in chunkedFold-
// style width passes matching the reduction kernels.
func Add[T tensor.Numeric](x, y, z *tensor.Tensor[T]) error {
	return elementwiseBinary(x, y, z, func(a, b T) T { return a + b })
}

// Sub computes z[i] = x[i] - y[i].
func Sub[T tensor.Numeric](x, y, z *tensor.Tensor[T]) error {
	return elementwiseBinary(x, y, z, func(a, b T) T { return a - b })
}

// Mul computes the Hadamard product z[i] = x[i] * y[i].
func Mul[T tensor.Numeric](x, y, z *tensor.Tensor[T]) error {
	return elementwiseBinary(x, y, z, func(a, b T) T { return a * b })
}

func elementwiseBinary[T tensor.Numeric](x, y, z *tensor.Tensor[T], op func(a, b T) T) error {
	if err := sameSize(x, y, z); err != nil {
		return err
	}
	xd, yd, zd := x.Data(), y.Data(), z.Data()
	width := simdWidth[T]()
	n := len(xd)
	i := 0
	if n >= simdThreshold && width > 1 {
		for ; i+width <= n; i += width {
			for l := 0; l < width; l++ {
				zd[i+l] = op(xd[i+l], yd[i+l])
			}
		}
	}
	for ; i < n; i++ {
		zd[i] = op(xd[i], yd[i])
	}
	return nil
}

// Scale computes y[i] = x[i] * s.
func Scale[T tensor.Numeric](x *tensor.Tensor[T], s T, y *tensor.Tensor[T]) error {
	return scalarBroadcast(x, y, func(v T) T { return v * s })
}

// Bias computes y[i] = x[i] + s.
func Bias[T tensor.Numeric](x *tensor.Tensor[T], s T, y *tensor.Tensor[T]) error {
	return scalarBroadcast(x, y, func(v T) T { return v + s })
}

func scalarBroadcast[T tensor.Numeric](x, y *tensor.Tensor[T], op func(v T) T) error {
	if x.ValueSize() != y.ValueSize() {
		return ErrUnequalSize
	}
	xd, yd := x.Data(), y.Data()
	width := simdWidth[T]()
	n := len(xd)
	i := 0
	if n >= simdThreshold && width > 1 {
		for ; i+width <= n; i += width {
			for l := 0; l < width; l++ {
				yd[i+l] = op(xd[i+l])
			}
		}
	}
	for ; i < n; i++ {
		yd[i] = op(xd[i])
	}
	return nil
}

// Abs computes the bit-twiddled absolute value of a signed integer:
// (x + (x >> (bits-1))) ^ (x >> (bits-1)). Undefined at T's minimum
// value -- use AbsChecked for a validated variant.
func Abs[T tensor.SignedInteger](x T) T {
	bits := bitWidth(x)
	shift := x >> (bits - 1)
	return (x + shift) ^ shift
}

// AbsChecked is the checked sibling of Abs: it fails with
// ErrIntegerOverflow on T's minimum value instead of returning it
// unchanged (the bit trick's only failure mode).
func AbsChecked[T tensor.SignedInteger](x T) (T, error) {
	lo, _ := minMaxFinite[T]()
	if x == lo {
		var zero T
		return zero, ErrIntegerOverflow
	}
	return Abs(x), nil
}

func bitWidth[T tensor.SignedInteger](x T) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	case int64, int:
		return 64
	}
	return 64
}
