package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zein.dev/zein/expr"
)

func TestParseContractionBasic(t *testing.T) {
	t.Parallel()

	plan, err := expr.ParseContraction(3, 2, "ijk->ij")
	require.NoError(t, err)
	require.Equal(t, []expr.S{0, 1, 2}, plan.Lhs)
	require.Equal(t, []expr.S{0, 1}, plan.Rhs)
}

func TestParseContractionTranspose(t *testing.T) {
	t.Parallel()

	plan, err := expr.ParseContraction(3, 2, "ijk->ji")
	require.NoError(t, err)
	require.Equal(t, []expr.S{0, 1, 2}, plan.Lhs)
	require.Equal(t, []expr.S{1, 0}, plan.Rhs)
}

func TestContractedRank(t *testing.T) {
	t.Parallel()

	r, err := expr.ContractedRank("ijk->ij")
	require.NoError(t, err)
	require.Equal(t, 2, r)
}

func TestParseContractionRejectsRankOrder(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseContraction(2, 3, "ij->ijk")
	require.ErrorIs(t, err, expr.ErrRankOrder)
}

func TestParseContractionRejectsUnmatchedResultAxis(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseContraction(2, 2, "ij->ik")
	require.ErrorIs(t, err, expr.ErrUnmatchedResultAxis)
}

func TestParseContractionRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseContraction(2, 1, "ij-i")
	require.ErrorIs(t, err, expr.ErrMalformedExpression)

	_, err = expr.ParseContraction(2, 1, "i1->i")
	require.ErrorIs(t, err, expr.ErrNonAlphabeticIndex)
}

func TestParsePermutationSelfInverse(t *testing.T) {
	t.Parallel()

	p, err := expr.ParsePermutation(2, "ij->ji")
	require.NoError(t, err)
	require.Equal(t, expr.PermutationPlan{1, 0}, p)
}

func TestParsePermutationRejectsNonPermutation(t *testing.T) {
	t.Parallel()

	_, err := expr.ParsePermutation(2, "ij->ii")
	require.ErrorIs(t, err, expr.ErrInvalidPermutation)
}

func TestParseInnerProductLevels(t *testing.T) {
	t.Parallel()

	plan, err := expr.ParseInnerProduct(2, 2, 2, "ij,jk->ik")
	require.NoError(t, err)
	require.Equal(t, 3, plan.Total)

	// level order is i, j (from x), then k (from y).
	require.Equal(t, []expr.S{0, 1, expr.Pass}, plan.XPerm)
	require.Equal(t, []expr.S{expr.Pass, 0, 1}, plan.YPerm)
	require.Equal(t, []expr.S{0, expr.Pass, 1}, plan.ZPerm)
	require.Equal(t, []expr.S{0, 0, 1}, plan.SCtrl)
}

func TestParseInnerProductRejectsUnboundOutputAxis(t *testing.T) {
	t.Parallel()

	_, err := expr.ParseInnerProduct(2, 2, 2, "ij,jk->il")
	require.ErrorIs(t, err, expr.ErrFreeAxisUnbound)
}

func TestParseOuterProduct(t *testing.T) {
	t.Parallel()

	plan, err := expr.ParseInnerProduct(1, 1, 2, "i,j->ij")
	require.NoError(t, err)
	require.Equal(t, 2, plan.Total)
	require.Equal(t, []expr.S{0, expr.Pass}, plan.XPerm)
	require.Equal(t, []expr.S{expr.Pass, 0}, plan.YPerm)
}
