package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zein.dev/zein/shape"
	"zein.dev/zein/tensor"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	tn, err := tensor.New([]int32{1, 2, 3, 4, 5, 6}, []shape.S{2, 3}, shape.RowMajor)
	require.NoError(t, err)
	require.True(t, tn.IsValid())
	require.Equal(t, 6, tn.ValueCapacity())

	bad, err := tensor.New([]int32{1, 2, 3}, []shape.S{2, 3}, shape.RowMajor)
	require.NoError(t, err)
	require.False(t, bad.IsValid())

	empty, err := tensor.New([]int32{}, []shape.S{0}, shape.RowMajor)
	require.NoError(t, err)
	require.False(t, empty.IsValid()) // zero capacity is never valid
}

func TestGetSetValue(t *testing.T) {
	t.Parallel()

	data := make([]int32, 9)
	for i := range data {
		data[i] = int32(i + 1)
	}
	tn, err := tensor.New(data, []shape.S{3, 3}, shape.RowMajor)
	require.NoError(t, err)

	require.Equal(t, int32(3), tn.GetValue([]shape.S{0, 2}))
	require.Equal(t, int32(4), tn.GetValue([]shape.S{1, 0}))

	tn.SetValue(99, []shape.S{2, 2})
	require.Equal(t, int32(99), tn.GetValue([]shape.S{2, 2}))
}

func TestPermutateAliasesSameData(t *testing.T) {
	t.Parallel()

	data := make([]int32, 9)
	for i := range data {
		data[i] = int32(i + 1)
	}
	x, err := tensor.New(data, []shape.S{3, 3}, shape.RowMajor)
	require.NoError(t, err)

	y, err := x.Permutate([]shape.S{1, 0}) // ij->ji
	require.NoError(t, err)
	require.Equal(t, y.GetValue([]shape.S{0, 1}), int32(4))
	require.Equal(t, y.GetValue([]shape.S{2, 0}), int32(3))

	// writing through x is visible in y -- same underlying buffer.
	x.SetValue(777, []shape.S{0, 1})
	require.Equal(t, int32(777), y.GetValue([]shape.S{1, 0}))
}

func TestSwapExchangesDataAndShape(t *testing.T) {
	t.Parallel()

	a, err := tensor.New([]int32{1, 2, 3, 4}, []shape.S{2, 2}, shape.RowMajor)
	require.NoError(t, err)
	b, err := tensor.New([]int32{5, 6, 7, 8, 9, 10}, []shape.S{2, 3}, shape.RowMajor)
	require.NoError(t, err)

	require.NoError(t, a.Swap(b))
	require.Equal(t, []shape.S{2, 3}, a.Sizes())
	require.Equal(t, int32(5), a.GetValue([]shape.S{0, 0}))
	require.Equal(t, []shape.S{2, 2}, b.Sizes())
	require.Equal(t, int32(1), b.GetValue([]shape.S{0, 0}))
}

func TestGetValueCheckedErrors(t *testing.T) {
	t.Parallel()

	bad, err := tensor.New([]int32{1, 2}, []shape.S{2, 2}, shape.RowMajor)
	require.NoError(t, err)
	_, err = bad.GetValueChecked([]shape.S{0, 0})
	require.ErrorIs(t, err, tensor.ErrInvalidTensorLayout)
}
