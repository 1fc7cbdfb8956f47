// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/chewxy/math32"

// absMaxFloat32 is the float32 path for AbsMax: a plain loop over
// math32.Abs, used for float32 inputs of every length in place of the
// generic chunkedFold reduction.
func absMaxFloat32(data []float32) float32 {
	var m float32
	for _, v := range data {
		a := math32.Abs(v)
		if a > m {
			m = a
		}
	}
	return m
}

// absMinFloat32 is the float32 fast path for AbsMin.
func absMinFloat32(data []float32) float32 {
	m := math32.MaxFloat32
	for _, v := range data {
		a := math32.Abs(v)
		if a < m {
			m = a
		}
	}
	return m
}
