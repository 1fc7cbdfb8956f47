package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zein.dev/zein/alloc"
	"zein.dev/zein/expr"
	"zein.dev/zein/factory"
	"zein.dev/zein/kernel"
	"zein.dev/zein/shape"
	"zein.dev/zein/tensor"
)

// TestScenario1Permutate: X = Tensor<i32,2,row>([1..9], [3,3]); Y =
// X.permutate("ij->ji") shares data and reads through the transposed map.
func TestScenario1Permutate(t *testing.T) {
	t.Parallel()

	x, err := tensor.New([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9}, []shape.S{3, 3}, shape.RowMajor)
	require.NoError(t, err)
	require.Equal(t, int32(3), x.GetValue([]shape.S{0, 2}))
	require.Equal(t, int32(4), x.GetValue([]shape.S{1, 0}))

	axes, err := expr.ParsePermutation(2, "ij->ji")
	require.NoError(t, err)
	y, err := x.Permutate(axes)
	require.NoError(t, err)

	require.Equal(t, int32(4), y.GetValue([]shape.S{0, 1}))
	require.Equal(t, int32(3), y.GetValue([]shape.S{2, 0}))
}

// TestScenario2ContractionRowSums mirrors kernel/contraction_test.go's
// scenario 2 but driven through the factory's auto-allocating form.
func TestScenario2ContractionRowSums(t *testing.T) {
	t.Parallel()

	f := factory.New[int32](alloc.NewCachingAllocator[int32]())
	x, err := f.AllocTensor([]shape.S{3, 4, 3}, shape.RowMajor)
	require.NoError(t, err)
	for i := range x.Data() {
		x.Data()[i] = int32(i + 1)
	}

	plan, err := expr.ParseContraction(3, 2, "ijk->ij")
	require.NoError(t, err)

	z, err := f.Contraction(plan, x)
	require.NoError(t, err)
	require.Equal(t, []int32{6, 15, 24, 33, 42, 51, 60, 69, 78, 87, 96, 105}, z.Data())
}

// TestScenario3InnerProduct mirrors kernel/contraction_test.go's scenario
// 3 through the factory's auto-allocating inner product.
func TestScenario3InnerProduct(t *testing.T) {
	t.Parallel()

	f := factory.New[int32](alloc.NewCachingAllocator[int32]())
	x, err := f.AllocTensor([]shape.S{2, 2}, shape.RowMajor)
	require.NoError(t, err)
	copy(x.Data(), []int32{1, 1, 1, 1})
	y, err := f.AllocTensor([]shape.S{2, 2}, shape.RowMajor)
	require.NoError(t, err)
	copy(y.Data(), []int32{1, 2, 3, 4})

	planIK, err := expr.ParseInnerProduct(2, 2, 2, "ij,jk->ik")
	require.NoError(t, err)
	zIK, err := f.InnerProduct(planIK, x, y)
	require.NoError(t, err)
	require.Equal(t, []int32{4, 6, 4, 6}, zIK.Data())

	planKI, err := expr.ParseInnerProduct(2, 2, 2, "ij,jk->ki")
	require.NoError(t, err)
	zKI, err := f.InnerProduct(planKI, x, y)
	require.NoError(t, err)
	require.Equal(t, []int32{4, 4, 6, 6}, zKI.Data())
}

// TestScenario4FactoryArithmetic: 100000-element constant tensors run
// through factory.Add/Sub/Bias/Scale, each followed by kernel.Sum.
func TestScenario4FactoryArithmetic(t *testing.T) {
	t.Parallel()

	const n = 100000
	f := factory.New[int64](alloc.NewCachingAllocator[int64]())
	x, err := f.AllocTensor([]shape.S{n}, shape.RowMajor)
	require.NoError(t, err)
	y, err := f.AllocTensor([]shape.S{n}, shape.RowMajor)
	require.NoError(t, err)
	for i := range x.Data() {
		x.Data()[i] = 1
		y.Data()[i] = 2
	}

	added, err := f.Add(x, y)
	require.NoError(t, err)
	sum, err := kernel.Sum(added)
	require.NoError(t, err)
	require.Equal(t, int64(300000), sum)

	subbed, err := f.Sub(x, y)
	require.NoError(t, err)
	sum, err = kernel.Sum(subbed)
	require.NoError(t, err)
	require.Equal(t, int64(-100000), sum)

	biased, err := f.Bias(x, 4)
	require.NoError(t, err)
	sum, err = kernel.Sum(biased)
	require.NoError(t, err)
	require.Equal(t, int64(500000), sum)

	scaled, err := f.Scale(x, 4)
	require.NoError(t, err)
	sum, err = kernel.Sum(scaled)
	require.NoError(t, err)
	require.Equal(t, int64(400000), sum)
}

// TestScenario5MinMaxSumProduct mirrors kernel/reduce_test.go's scenario
// 5 using factory-allocated storage.
func TestScenario5MinMaxSumProduct(t *testing.T) {
	t.Parallel()

	f := factory.New[int32](alloc.NewCachingAllocator[int32]())
	x, err := f.AllocTensor([]shape.S{100, 100}, shape.RowMajor)
	require.NoError(t, err)
	for i := range x.Data() {
		x.Data()[i] = 1
	}

	sum, err := kernel.Sum(x)
	require.NoError(t, err)
	require.Equal(t, int32(10000), sum)

	prod, err := kernel.Product(x)
	require.NoError(t, err)
	require.Equal(t, int32(1), prod)

	x.SetValue(999, []shape.S{24, 62})
	mx, err := kernel.Max(x)
	require.NoError(t, err)
	require.Equal(t, int32(999), mx)

	x.SetValue(-999, []shape.S{92, 10})
	mn, err := kernel.Min(x)
	require.NoError(t, err)
	require.Equal(t, int32(-999), mn)
}

// TestScenario6CacheReuse: allocate [100,300], free both, then request
// [100,100,300]. After all frees the cache holds block sizes
// {100,100,300}.
func TestScenario6CacheReuse(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	f := factory.New[int32](a)

	first, err := f.AllocTensor([]shape.S{100}, shape.RowMajor)
	require.NoError(t, err)
	second, err := f.AllocTensor([]shape.S{300}, shape.RowMajor)
	require.NoError(t, err)

	require.NoError(t, f.FreeFromTensor(first))
	require.NoError(t, f.FreeFromTensor(second))

	third, err := f.AllocTensor([]shape.S{100}, shape.RowMajor)
	require.NoError(t, err)
	fourth, err := f.AllocTensor([]shape.S{100}, shape.RowMajor)
	require.NoError(t, err)
	fifth, err := f.AllocTensor([]shape.S{300}, shape.RowMajor)
	require.NoError(t, err)

	require.NoError(t, f.FreeFromTensor(third))
	require.NoError(t, f.FreeFromTensor(fourth))
	require.NoError(t, f.FreeFromTensor(fifth))

	require.Equal(t, []int{100, 100, 300}, a.Sizes())
}
