// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"zein.dev/zein/tensor"
)

// Quantize computes m = AbsMax(x), scales x by 1/max(m,1), rounds into
// y's integer range, and returns m. Quantize/Unquantize iterate the
// full buffer -- the source's stale "while i < 100" fallback bound is
// not reproduced here.
func Quantize[TIn tensor.Float, TOut tensor.Integer](x *tensor.Tensor[TIn], y *tensor.Tensor[TOut]) (TIn, error) {
	if x.ValueSize() != y.ValueSize() {
		var zero TIn
		return zero, ErrUnequalSize
	}
	if x.ValueSize() == 0 {
		var zero TIn
		return zero, ErrSizeZeroTensor
	}
	m, err := AbsMax(x)
	if err != nil {
		return m, err
	}
	scale := m
	if scale < 1 {
		scale = 1
	}
	maxInt := float64(maxIntValue[TOut]())
	xd, yd := x.Data(), y.Data()
	for i := range xd {
		v := float64(xd[i]) / float64(scale) * maxInt
		yd[i] = TOut(math.Round(v))
	}
	return m, nil
}

// Unquantize is the inverse of Quantize given the saved scale (the m
// Quantize returned). It iterates the full buffer, mirroring Quantize.
func Unquantize[TIn tensor.Integer, TOut tensor.Float](x *tensor.Tensor[TIn], scale TOut, y *tensor.Tensor[TOut]) error {
	if x.ValueSize() != y.ValueSize() {
		return ErrUnequalSize
	}
	s := scale
	if s < 1 {
		s = 1
	}
	maxInt := float64(maxIntValue[TIn]())
	xd, yd := x.Data(), y.Data()
	for i := range xd {
		yd[i] = TOut(float64(xd[i]) / maxInt * float64(s))
	}
	return nil
}
