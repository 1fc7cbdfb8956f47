// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/apache/arrow/go/arrow/array"
	"github.com/apache/arrow/go/arrow/memory"
	arrowtensor "github.com/apache/arrow/go/arrow/tensor"

	"zein.dev/zein/shape"
)

// ToArrowFloat64 converts a row-major float64 Tensor into an Apache
// Arrow tensor.Float64, the way emer-etable's Float64.ToArrow does --
// the Shape's stride convention is documented as Arrow-tensor-compatible
// and this is the one place that actually exercises it.
func ToArrowFloat64(t *Tensor[float64]) *arrowtensor.Float64 {
	bld := array.NewFloat64Builder(memory.DefaultAllocator)
	bld.AppendValues(t.Data(), nil)
	vec := bld.NewFloat64Array()
	return arrowtensor.NewFloat64(vec.Data(), shape64(t.Shape().Sizes()), shape64(t.Shape().Strides()), nil)
}

// FromArrowFloat64 builds a Tensor by copying the values out of an
// Arrow tensor.Float64. Only row-major or col-major Arrow tensors are
// representable -- a mismatched stride layout is a caller error.
func FromArrowFloat64(arw *arrowtensor.Float64, order shape.Order) (*Tensor[float64], error) {
	sizes := make([]shape.S, arw.NumDims())
	for i := range sizes {
		sizes[i] = shape.S(arw.Shape()[i])
	}
	vals := arw.Float64Values()
	data := make([]float64, len(vals))
	copy(data, vals)
	return New(data, sizes, order)
}

func shape64(s []shape.S) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}
