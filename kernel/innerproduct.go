// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"zein.dev/zein/expr"
	"zein.dev/zein/shape"
	"zein.dev/zein/tensor"
)

// InnerProduct walks x and y per plan, multiply-accumulating into z.
// Loop levels whose plan entry is expr.Pass leave that operand's index
// vector unchanged at that depth -- contracted axes are simply never
// reflected into z's coordinate, so repeated passes over them land on
// and accumulate into the same z cell.
func InnerProduct[T tensor.Numeric](plan expr.InnerProductPlan, x, y, z *tensor.Tensor[T]) error {
	if err := checkPlanRanks(plan, x, y, z); err != nil {
		return err
	}
	zd := z.Data()
	for i := range zd {
		zd[i] = 0
	}
	tripCounts, err := levelTripCounts(plan, x, y)
	if err != nil {
		return err
	}
	xCoord := make([]shape.S, x.Rank())
	yCoord := make([]shape.S, y.Rank())
	zCoord := make([]shape.S, z.Rank())
	walkInner(plan, tripCounts, x, y, z, xCoord, yCoord, zCoord, 0)
	return nil
}

// OuterProduct has the identical walking shape as InnerProduct -- the
// structural difference (no contracted axes) lives entirely in how
// expr.ParseInnerProduct built the plan, not in how the walker drives it.
func OuterProduct[T tensor.Numeric](plan expr.InnerProductPlan, x, y, z *tensor.Tensor[T]) error {
	if err := checkPlanRanks(plan, x, y, z); err != nil {
		return err
	}
	zd := z.Data()
	for i := range zd {
		zd[i] = 0
	}
	tripCounts, err := levelTripCounts(plan, x, y)
	if err != nil {
		return err
	}
	xCoord := make([]shape.S, x.Rank())
	yCoord := make([]shape.S, y.Rank())
	zCoord := make([]shape.S, z.Rank())
	walkInner(plan, tripCounts, x, y, z, xCoord, yCoord, zCoord, 0)
	return nil
}

func checkPlanRanks[T tensor.Numeric](plan expr.InnerProductPlan, x, y, z *tensor.Tensor[T]) error {
	if plan.Total != len(plan.XPerm) || plan.Total != len(plan.YPerm) || plan.Total != len(plan.ZPerm) || plan.Total != len(plan.SCtrl) {
		return ErrInvalidSizes
	}
	return nil
}

func levelTripCounts[T tensor.Numeric](plan expr.InnerProductPlan, x, y *tensor.Tensor[T]) ([]shape.S, error) {
	xSizes := x.Shape().Sizes()
	ySizes := y.Shape().Sizes()
	counts := make([]shape.S, plan.Total)
	for i := 0; i < plan.Total; i++ {
		xBound := plan.XPerm[i] != expr.Pass
		yBound := plan.YPerm[i] != expr.Pass
		if xBound && int(plan.XPerm[i]) >= len(xSizes) {
			return nil, ErrInvalidSizes
		}
		if yBound && int(plan.YPerm[i]) >= len(ySizes) {
			return nil, ErrInvalidSizes
		}
		if xBound && yBound && xSizes[plan.XPerm[i]] != ySizes[plan.YPerm[i]] {
			return nil, ErrInvalidSizes
		}
		if plan.SCtrl[i] == 0 {
			counts[i] = xSizes[plan.XPerm[i]]
		} else {
			counts[i] = ySizes[plan.YPerm[i]]
		}
	}
	return counts, nil
}

func walkInner[T tensor.Numeric](plan expr.InnerProductPlan, counts []shape.S, x, y, z *tensor.Tensor[T], xCoord, yCoord, zCoord []shape.S, depth int) {
	if depth == plan.Total {
		result := x.GetValue(xCoord) * y.GetValue(yCoord)
		off := z.Shape().Index(zCoord)
		z.Data()[off] += result
		return
	}
	xAxis, yAxis, zAxis := plan.XPerm[depth], plan.YPerm[depth], plan.ZPerm[depth]
	for i := shape.S(0); i < counts[depth]; i++ {
		if xAxis != expr.Pass {
			xCoord[xAxis] = i
		}
		if yAxis != expr.Pass {
			yCoord[yAxis] = i
		}
		if zAxis != expr.Pass {
			zCoord[zAxis] = i
		}
		walkInner(plan, counts, x, y, z, xCoord, yCoord, zCoord, depth+1)
	}
}
