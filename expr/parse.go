// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"strings"

	"zein.dev/zein/shape"
)

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func checkAlpha(s string) error {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return ErrNonAlphabeticIndex
		}
	}
	return nil
}

// splitArrow splits "<lhs>-><rhs>" on exactly one literal "->".
func splitArrow(expr string) (lhs, rhs string, err error) {
	parts := strings.Split(expr, "->")
	if len(parts) != 2 {
		return "", "", ErrMalformedExpression
	}
	return parts[0], parts[1], nil
}

// ParseContraction parses "<lhs>-><rhs>" (no whitespace, single operand
// each side) into a ContractionPlan. Requires lRank >= rRank, lhs.len
// == lRank, rhs.len == rRank, and every character alphabetic.
func ParseContraction(lRank, rRank int, expr string) (ContractionPlan, error) {
	lhs, rhs, err := splitArrow(expr)
	if err != nil {
		return ContractionPlan{}, err
	}
	if len(lhs) != lRank || len(rhs) != rRank {
		return ContractionPlan{}, ErrRankLenMismatch
	}
	if err := checkAlpha(lhs); err != nil {
		return ContractionPlan{}, err
	}
	if err := checkAlpha(rhs); err != nil {
		return ContractionPlan{}, err
	}
	if lRank < rRank {
		return ContractionPlan{}, ErrRankOrder
	}

	matchedLhs := make([]S, 0, rRank)
	matchedRhs := make([]S, 0, rRank)
	var remainder []S

	used := make([]bool, rRank)
	for i := 0; i < len(lhs); i++ {
		c := lhs[i]
		j := -1
		for k := 0; k < len(rhs); k++ {
			if !used[k] && rhs[k] == c {
				j = k
				break
			}
		}
		if j >= 0 {
			used[j] = true
			matchedLhs = append(matchedLhs, S(i))
			matchedRhs = append(matchedRhs, S(j))
		} else {
			remainder = append(remainder, S(i))
		}
	}

	if len(matchedLhs) != rRank {
		return ContractionPlan{}, ErrUnmatchedResultAxis
	}

	plan := ContractionPlan{
		Lhs: append(append([]S(nil), matchedLhs...), remainder...),
		Rhs: matchedRhs,
	}
	return plan, nil
}

// ContractedRank returns the result rank of a contraction expression:
// the length of its right-hand side.
func ContractedRank(expr string) (int, error) {
	_, rhs, err := splitArrow(expr)
	if err != nil {
		return 0, err
	}
	if err := checkAlpha(rhs); err != nil {
		return 0, err
	}
	return len(rhs), nil
}

// ParsePermutation parses "<lhs>-><rhs>" where both sides have length
// rank and rhs is a permutation of lhs. Produces p such that
// p[i] = index_in_lhs_of(rhs[i]).
func ParsePermutation(rank int, expr string) (PermutationPlan, error) {
	lhs, rhs, err := splitArrow(expr)
	if err != nil {
		return nil, err
	}
	if len(lhs) != rank || len(rhs) != rank {
		return nil, ErrRankLenMismatch
	}
	if err := checkAlpha(lhs); err != nil {
		return nil, err
	}
	if err := checkAlpha(rhs); err != nil {
		return nil, err
	}

	if rank > shape.MaxRank {
		return nil, ErrInvalidPermutation
	}
	var lhsMask, rhsMask uint64
	full := uint64(1)<<uint(rank) - 1

	p := make(PermutationPlan, rank)
	used := make([]bool, rank)
	for i := 0; i < rank; i++ {
		c := rhs[i]
		j := -1
		for k := 0; k < rank; k++ {
			if !used[k] && lhs[k] == c {
				j = k
				break
			}
		}
		if j < 0 {
			return nil, ErrInvalidPermutation
		}
		used[j] = true
		p[i] = S(j)
		lhsMask |= 1 << uint(j)
		rhsMask |= 1 << uint(i)
	}
	if lhsMask != full || rhsMask != full {
		return nil, ErrInvalidPermutation
	}
	return p, nil
}

// ParseInnerProduct parses "<x>,<y>-><z>" into an InnerProductPlan. Every
// distinct character across x, y becomes one loop level; z's characters
// must each be bound by x or y.
func ParseInnerProduct(xRank, yRank, zRank int, expr string) (InnerProductPlan, error) {
	lhs, z, err := splitArrow(expr)
	if err != nil {
		return InnerProductPlan{}, err
	}
	operands := strings.Split(lhs, ",")
	if len(operands) != 2 {
		return InnerProductPlan{}, ErrMalformedExpression
	}
	x, y := operands[0], operands[1]
	if len(x) != xRank || len(y) != yRank || len(z) != zRank {
		return InnerProductPlan{}, ErrRankLenMismatch
	}
	for _, s := range [...]string{x, y, z} {
		if err := checkAlpha(s); err != nil {
			return InnerProductPlan{}, err
		}
	}

	var levels []byte
	seen := make(map[byte]bool)
	for i := 0; i < len(x); i++ {
		if !seen[x[i]] {
			seen[x[i]] = true
			levels = append(levels, x[i])
		}
	}
	for i := 0; i < len(y); i++ {
		if !seen[y[i]] {
			seen[y[i]] = true
			levels = append(levels, y[i])
		}
	}
	for i := 0; i < len(z); i++ {
		if !seen[z[i]] {
			return InnerProductPlan{}, ErrFreeAxisUnbound
		}
	}

	plan := InnerProductPlan{
		XPerm: make([]S, len(levels)),
		YPerm: make([]S, len(levels)),
		ZPerm: make([]S, len(levels)),
		SCtrl: make([]S, len(levels)),
		Total: len(levels),
	}
	for i, c := range levels {
		plan.XPerm[i] = indexOf(x, c)
		plan.YPerm[i] = indexOf(y, c)
		plan.ZPerm[i] = indexOf(z, c)
		if strings.IndexByte(x, c) >= 0 {
			plan.SCtrl[i] = 0
		} else {
			plan.SCtrl[i] = 1
		}
	}
	return plan, nil
}

func indexOf(s string, c byte) S {
	i := strings.IndexByte(s, c)
	if i < 0 {
		return Pass
	}
	return S(i)
}
