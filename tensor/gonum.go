// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"
)

// GonumMatrix adapts the inner-most 2-D subspace of a float64 Tensor to
// gonum's mat.Matrix, the way emer-etable's Float64 tensor implements
// Dims/At/T directly. Here it is a thin wrapper rather than embedded
// methods, since Tensor is generic and mat.Matrix is float64-only.
type GonumMatrix struct {
	t *Tensor[float64]
}

// AsGonumMatrix wraps a rank>=2 float64 Tensor for use with gonum/mat
// routines. It operates on the last two axes, matching the teacher's
// convention for higher-rank tensors.
func AsGonumMatrix(t *Tensor[float64]) (*GonumMatrix, error) {
	if t.Rank() < 2 {
		return nil, ErrRankMismatch
	}
	return &GonumMatrix{t: t}, nil
}

func (g *GonumMatrix) Dims() (r, c int) {
	nd := g.t.Rank()
	sizes := g.t.Sizes()
	return int(sizes[nd-2]), int(sizes[nd-1])
}

func (g *GonumMatrix) At(i, j int) float64 {
	nd := g.t.Rank()
	coord := make([]uint32, nd)
	coord[nd-2] = uint32(i)
	coord[nd-1] = uint32(j)
	return g.t.GetValue(coord)
}

func (g *GonumMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: g}
}
