package expr

// S is the plan index/size element type, matching shape.S.
type S = uint32

// Pass is the sentinel meaning "this operand does not vary at this
// loop level" in an InnerProductPlan (S::MAX in the source).
const Pass S = ^S(0)

// ContractionPlan drives the contraction walker. Lhs has length lRank;
// Lhs[i] for i<len(Rhs) is the source axis of X bound to result axis
// Rhs[i]; Lhs[len(Rhs):] enumerates the axes summed over, in lhs order.
type ContractionPlan struct {
	Lhs []S
	Rhs []S
}

// ResultRank is the rank of the contraction's output: len(Rhs).
func (p ContractionPlan) ResultRank() int { return len(p.Rhs) }

// SourceRank is the rank of the contraction's input: len(Lhs).
func (p ContractionPlan) SourceRank() int { return len(p.Lhs) }

// OutputSizes derives the result's per-axis sizes from the source's
// sizes, for callers that must allocate z before calling
// kernel.Contraction.
func (p ContractionPlan) OutputSizes(xSizes []S) []S {
	out := make([]S, p.ResultRank())
	for m := 0; m < p.ResultRank(); m++ {
		out[p.Rhs[m]] = xSizes[p.Lhs[m]]
	}
	return out
}

// PermutationPlan is p such that p[i] is the source axis to place at
// destination position i.
type PermutationPlan []S

// InnerProductPlan drives the inner/outer product walker. Each loop
// level i is one distinct index character; XPerm[i]/YPerm[i]/ZPerm[i]
// give the axis each operand advances at that level (or Pass if that
// operand does not vary along it); SCtrl[i] selects which operand's
// extent supplies the trip count (0 = X, 1 = Y).
type InnerProductPlan struct {
	XPerm []S
	YPerm []S
	ZPerm []S
	SCtrl []S
	Total int
}

// ResultRank returns the rank of the produced (z) operand: the count of
// loop levels that bind to a z axis.
func (p InnerProductPlan) ResultRank() int {
	n := 0
	for _, v := range p.ZPerm {
		if v != Pass {
			n++
		}
	}
	return n
}

// OutputSizes derives z's per-axis sizes from x/y's sizes and the plan,
// for callers (e.g. factory.Factory) that must allocate z before calling
// kernel.InnerProduct/OuterProduct.
func (p InnerProductPlan) OutputSizes(xSizes, ySizes []S) []S {
	out := make([]S, p.ResultRank())
	for i := 0; i < p.Total; i++ {
		var extent S
		if p.SCtrl[i] == 0 {
			extent = xSizes[p.XPerm[i]]
		} else {
			extent = ySizes[p.YPerm[i]]
		}
		if p.ZPerm[i] != Pass {
			out[p.ZPerm[i]] = extent
		}
	}
	return out
}
