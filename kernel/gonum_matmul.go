// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"gonum.org/v1/gonum/mat"

	"zein.dev/zein/tensor"
)

// GonumMatMul is an opt-in fast path for the common rank-2 "ij,jk->ik"
// inner product over float64: it hands the operands to gonum/mat's
// BLAS-backed Mul instead of walking expr.InnerProductPlan by hand.
// Callers that want the plan-driven walker for float64 matrices should
// use InnerProduct directly; this exists for the case where gonum's
// native matrix multiply is preferable.
func GonumMatMul(x, y, z *tensor.Tensor[float64]) error {
	if x.Rank() != 2 || y.Rank() != 2 || z.Rank() != 2 {
		return ErrInvalidSizes
	}
	xm, err := tensor.AsGonumMatrix(x)
	if err != nil {
		return err
	}
	ym, err := tensor.AsGonumMatrix(y)
	if err != nil {
		return err
	}
	xr, xc := xm.Dims()
	yr, yc := ym.Dims()
	if xc != yr {
		return ErrInvalidSizes
	}
	zSizes := z.Sizes()
	if int(zSizes[0]) != xr || int(zSizes[1]) != yc {
		return ErrInvalidDimensions
	}

	dst := mat.NewDense(xr, yc, z.Data())
	dst.Mul(xm, ym)
	return nil
}
