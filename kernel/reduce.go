// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"gonum.org/v1/gonum/floats"

	"zein.dev/zein/tensor"
)

// chunkedFold walks data in simdWidth[T]()-sized chunks, applying step
// to each element and merge to combine per-chunk partials -- the
// SIMD-chunked reduction shape described in the engine's design: a
// fixed-width vector pass plus a scalar tail for the remainder. Chunk
// order is fixed by the chosen width, so floating-point reductions are
// associative only up to that chunking, not a strict left-fold; this
// is intentional and documented, not a bug.
func chunkedFold[T tensor.Numeric](data []T, init T, step func(acc, v T) T) T {
	width := simdWidth[T]()
	acc := init
	n := len(data)
	if n < simdThreshold || width <= 1 {
		for _, v := range data {
			acc = step(acc, v)
		}
		return acc
	}

	lanes := make([]T, width)
	for i := range lanes {
		lanes[i] = init
	}
	i := 0
	for ; i+width <= n; i += width {
		chunk := data[i : i+width]
		for l := 0; l < width; l++ {
			lanes[l] = step(lanes[l], chunk[l])
		}
	}
	acc = lanes[0]
	for l := 1; l < width; l++ {
		acc = step(acc, lanes[l])
	}
	for ; i < n; i++ {
		acc = step(acc, data[i])
	}
	return acc
}

// Sum returns the sum of all elements. Fails on an empty tensor.
func Sum[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	var zero T
	if x.ValueSize() == 0 {
		return zero, ErrSizeZeroTensor
	}
	if d, ok := any(x.Data()).([]float64); ok && len(d) >= simdThreshold {
		return any(floats.Sum(d)).(T), nil
	}
	return chunkedFold(x.Data(), zero, func(acc, v T) T { return acc + v }), nil
}

// Product returns the product of all elements. Fails on an empty tensor.
func Product[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	one := T(1)
	if x.ValueSize() == 0 {
		var zero T
		return zero, ErrSizeZeroTensor
	}
	return chunkedFold(x.Data(), one, func(acc, v T) T { return acc * v }), nil
}

// Max returns the maximum element. Fails on an empty tensor.
func Max[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	if x.ValueSize() == 0 {
		var zero T
		return zero, ErrSizeZeroTensor
	}
	if d, ok := any(x.Data()).([]float64); ok && len(d) >= simdThreshold {
		return any(floats.Max(d)).(T), nil
	}
	lo, _ := minMaxFinite[T]()
	return chunkedFold(x.Data(), lo, func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	}), nil
}

// Min returns the minimum element. Fails on an empty tensor.
func Min[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	if x.ValueSize() == 0 {
		var zero T
		return zero, ErrSizeZeroTensor
	}
	if d, ok := any(x.Data()).([]float64); ok && len(d) >= simdThreshold {
		return any(floats.Min(d)).(T), nil
	}
	_, hi := minMaxFinite[T]()
	return chunkedFold(x.Data(), hi, func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	}), nil
}

// AbsMax returns max(|x|) over all elements -- named absmax in the
// source but, per its own design notes, the implementation (and this
// one) computes the max of the absolute values, not abs(max(x)).
func AbsMax[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	if x.ValueSize() == 0 {
		var zero T
		return zero, ErrSizeZeroTensor
	}
	if d, ok := any(x.Data()).([]float32); ok {
		return any(absMaxFloat32(d)).(T), nil
	}
	var zero T
	return chunkedFold(x.Data(), zero, func(acc, v T) T {
		a := absValue(v)
		if a > acc {
			return a
		}
		return acc
	}), nil
}

// AbsMin returns min(|x|) over all elements.
func AbsMin[T tensor.Numeric](x *tensor.Tensor[T]) (T, error) {
	if x.ValueSize() == 0 {
		var zero T
		return zero, ErrSizeZeroTensor
	}
	if d, ok := any(x.Data()).([]float32); ok {
		return any(absMinFloat32(d)).(T), nil
	}
	_, hi := minMaxFinite[T]()
	return chunkedFold(x.Data(), hi, func(acc, v T) T {
		a := absValue(v)
		if a < acc {
			return a
		}
		return acc
	}), nil
}

func absValue[T tensor.Numeric](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
