// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// S is the size/stride/permutation element type used throughout the
// layout algebra. All capacity and offset arithmetic is done in this
// width; ranks are bounded to keep products from overflowing it.
type S = uint32

// MaxRank is the largest rank a Shape may have. Rank 0 is disallowed --
// a Shape always describes at least one axis.
const MaxRank = 63

// Order is the storage convention a Shape was built with. For the same
// sizes, row-major and col-major Shapes address the same number of
// elements in one contiguous buffer but give them different offsets:
// they differ in which axis index varies fastest.
type Order int

const (
	// RowMajor: the right-most (last) axis has unit stride.
	RowMajor Order = iota
	// ColMajor: the left-most (first) axis has unit stride.
	ColMajor
)

func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Shape is the fixed-rank (sizes, strides, permutation) triple described
// in the layout algebra. All three arrays always have the same length
// (the rank). Permutation starts as the identity and records the last
// axis permutation applied via ApplyPermutation.
type Shape struct {
	order       Order
	sizes       []S
	strides     []S
	permutation []S
}

// New builds a Shape of the given order from sizes. Strides are inferred
// per the row/col-major invariant and permutation is set to identity.
func New(order Order, sizes []S) (*Shape, error) {
	r := len(sizes)
	if r < 1 || r > MaxRank {
		return nil, ErrInvalidRank
	}
	sh := &Shape{
		order:       order,
		sizes:       append([]S(nil), sizes...),
		strides:     make([]S, r),
		permutation: identity(r),
	}
	if err := sh.recomputeStrides(); err != nil {
		return nil, err
	}
	return sh, nil
}

// Empty builds a rank-r Shape with zero-initialized sizes and strides --
// inert until sizes are filled in via SetSizeAndStride. permutation is
// identity.
func Empty(order Order, rank int) (*Shape, error) {
	if rank < 1 || rank > MaxRank {
		return nil, ErrInvalidRank
	}
	return &Shape{
		order:       order,
		sizes:       make([]S, rank),
		strides:     make([]S, rank),
		permutation: identity(rank),
	}, nil
}

func identity(r int) []S {
	p := make([]S, r)
	for i := range p {
		p[i] = S(i)
	}
	return p
}

func (sh *Shape) recomputeStrides() error {
	r := len(sh.sizes)
	var total uint64 = 1
	for _, v := range sh.sizes {
		total *= uint64(v)
		if total > uint64(^S(0)) {
			return ErrCapacityOverflow
		}
	}
	switch sh.order {
	case RowMajor:
		sh.strides[r-1] = 1
		for k := r - 2; k >= 0; k-- {
			sh.strides[k] = sh.sizes[k+1] * sh.strides[k+1]
		}
	case ColMajor:
		sh.strides[0] = 1
		for k := 1; k < r; k++ {
			sh.strides[k] = sh.sizes[k-1] * sh.strides[k-1]
		}
	}
	return nil
}

// Order returns the storage convention this Shape was built with.
func (sh *Shape) Order() Order { return sh.order }

// Rank returns the number of axes.
func (sh *Shape) Rank() int { return len(sh.sizes) }

// Sizes returns the backing sizes slice. Not a copy.
func (sh *Shape) Sizes() []S { return sh.sizes }

// Strides returns the backing strides slice. Not a copy.
func (sh *Shape) Strides() []S { return sh.strides }

// Permutation returns the backing permutation slice. Not a copy.
func (sh *Shape) Permutation() []S { return sh.permutation }

// GetSize returns the extent of axis i.
func (sh *Shape) GetSize(i int) S { return sh.sizes[i] }

// GetStride returns the stride of axis i.
func (sh *Shape) GetStride(i int) S { return sh.strides[i] }

// GetSizeAndStride returns both the extent and stride of axis i.
func (sh *Shape) GetSizeAndStride(i int) (size, stride S) {
	return sh.sizes[i], sh.strides[i]
}

// SetSizeAndStride bypasses the row/col-major invariant entirely --
// the caller is responsible for restoring it across the whole Shape if
// that matters to later operations.
func (sh *Shape) SetSizeAndStride(i int, size, stride S) {
	sh.sizes[i] = size
	sh.strides[i] = stride
}

// Len returns the total element count: the product of sizes.
func (sh *Shape) Len() int {
	n := 1
	for _, v := range sh.sizes {
		n *= int(v)
	}
	return n
}

// ApplyPermutation reorders sizes, strides and permutation together per
// s'.sizes[i] = s.sizes[p[i]], s'.strides[i] = s.strides[p[i]],
// s'.permutation[i] = p[i]. No strides are recomputed. p must be a
// bijection on [0,Rank()).
func (sh *Shape) ApplyPermutation(p []S) error {
	r := sh.Rank()
	if len(p) != r {
		return ErrInvalidPermutation
	}
	seen := make([]bool, r)
	for _, v := range p {
		if int(v) < 0 || int(v) >= r || seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}
	newSizes := make([]S, r)
	newStrides := make([]S, r)
	newPerm := make([]S, r)
	for i, src := range p {
		newSizes[i] = sh.sizes[src]
		newStrides[i] = sh.strides[src]
		newPerm[i] = src
	}
	sh.sizes = newSizes
	sh.strides = newStrides
	sh.permutation = newPerm
	return nil
}

// Permuted returns a new Shape with p applied, leaving the receiver
// untouched -- this is the value-copy counterpart used by tensor views
// when producing a new view over the same data.
func (sh *Shape) Permuted(p []S) (*Shape, error) {
	cp := sh.Clone()
	if err := cp.ApplyPermutation(p); err != nil {
		return nil, err
	}
	return cp, nil
}

// Clone returns a deep copy of the Shape.
func (sh *Shape) Clone() *Shape {
	return &Shape{
		order:       sh.order,
		sizes:       append([]S(nil), sh.sizes...),
		strides:     append([]S(nil), sh.strides...),
		permutation: append([]S(nil), sh.permutation...),
	}
}

// Index reduces a coordinate to a linear offset via an inner product
// against the stride vector: offset = sum(c[k] * strides[k]).
// Unchecked: coord must have Rank() entries each below its axis size.
func (sh *Shape) Index(coord []S) S {
	var offset S
	for k, c := range coord {
		offset += c * sh.strides[k]
	}
	return offset
}

// IndexChecked is the checked sibling of Index: it validates coord's
// length and bounds before reducing.
func (sh *Shape) IndexChecked(coord []S) (S, error) {
	if len(coord) != sh.Rank() {
		return 0, ErrSizeLenMismatch
	}
	for k, c := range coord {
		if c >= sh.sizes[k] {
			return 0, fmt.Errorf("shape: coordinate %d out of range for axis %d (size %d): %w", c, k, sh.sizes[k], ErrInvalidRank)
		}
	}
	return sh.Index(coord), nil
}

// IsRowMajor reports whether strides currently satisfy the row-major
// invariant (independent of the Order the Shape was tagged with).
func (sh *Shape) IsRowMajor() bool {
	r := sh.Rank()
	if sh.strides[r-1] != 1 {
		return false
	}
	for k := r - 2; k >= 0; k-- {
		if sh.strides[k] != sh.sizes[k+1]*sh.strides[k+1] {
			return false
		}
	}
	return true
}

// IsColMajor reports whether strides currently satisfy the col-major
// invariant.
func (sh *Shape) IsColMajor() bool {
	r := sh.Rank()
	if sh.strides[0] != 1 {
		return false
	}
	for k := 1; k < r; k++ {
		if sh.strides[k] != sh.sizes[k-1]*sh.strides[k-1] {
			return false
		}
	}
	return true
}

func (sh *Shape) String() string {
	return fmt.Sprintf("Shape{order:%v, sizes:%v, strides:%v, perm:%v}", sh.order, sh.sizes, sh.strides, sh.permutation)
}
