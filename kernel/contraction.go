// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"zein.dev/zein/expr"
	"zein.dev/zein/shape"
	"zein.dev/zein/tensor"
)

// Contraction walks x per plan, summing over the axes plan marks as
// remainder (plan.Lhs[len(plan.Rhs):]) and writing the surviving axes
// into z per plan.Rhs. z is zeroed before the walk, matching the
// source's "output buffer is zeroed before entering the walker".
func Contraction[T tensor.Numeric](plan expr.ContractionPlan, x, z *tensor.Tensor[T]) error {
	if x.Rank() != plan.SourceRank() || z.Rank() != plan.ResultRank() {
		return ErrInvalidSizes
	}
	xSizes := x.Shape().Sizes()
	zSizes := z.Shape().Sizes()

	// axisDest[i] = destination axis in z that source axis i binds to,
	// or -1 if axis i is summed over.
	axisDest := make([]int, plan.SourceRank())
	for i := range axisDest {
		axisDest[i] = -1
	}
	for m := 0; m < plan.ResultRank(); m++ {
		srcAxis := plan.Lhs[m]
		dstAxis := plan.Rhs[m]
		if xSizes[srcAxis] != zSizes[dstAxis] {
			return ErrInvalidSizes
		}
		axisDest[srcAxis] = int(dstAxis)
	}

	zd := z.Data()
	for i := range zd {
		zd[i] = 0
	}

	xCoord := make([]shape.S, x.Rank())
	zCoord := make([]shape.S, z.Rank())
	walkContraction(x, z, xSizes, axisDest, xCoord, zCoord, 0)
	return nil
}

func walkContraction[T tensor.Numeric](x, z *tensor.Tensor[T], sizes []shape.S, axisDest []int, xCoord, zCoord []shape.S, depth int) {
	if depth == len(sizes) {
		v := x.GetValue(xCoord)
		off := z.Shape().Index(zCoord)
		z.Data()[off] += v
		return
	}
	dst := axisDest[depth]
	for i := shape.S(0); i < sizes[depth]; i++ {
		xCoord[depth] = i
		if dst >= 0 {
			zCoord[dst] = i
		}
		walkContraction(x, z, sizes, axisDest, xCoord, zCoord, depth+1)
	}
}
