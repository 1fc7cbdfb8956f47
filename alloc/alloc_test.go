package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zein.dev/zein/alloc"
)

func TestAllocReusesFreedBlockOfSameSize(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[float64]()
	first, err := a.Alloc(100)
	require.NoError(t, err)

	require.NoError(t, a.Free(first))

	second, err := a.Alloc(100)
	require.NoError(t, err)
	require.Same(t, &first[0], &second[0])
}

func TestAllocRejectsZeroSize(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	_, err := a.Alloc(0)
	require.ErrorIs(t, err, alloc.ErrTensorSizeZero)
}

func TestFreeUnknownBlockDeposits(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	external := make([]int32, 42)
	require.NoError(t, a.Free(external))
	require.Equal(t, []int{42}, a.Sizes())
}

func TestFreeAlreadyFreedBlockFails(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	data, err := a.Alloc(10)
	require.NoError(t, err)
	require.NoError(t, a.Free(data))
	require.ErrorIs(t, a.Free(data), alloc.ErrIndexAlreadyFreed)
}

func TestCacheWeakOrdering(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	a.AddToCache([]int{50, 10, 30})

	sizes := a.Sizes()
	for i := 1; i < len(sizes); i++ {
		require.LessOrEqual(t, sizes[i-1], sizes[i])
	}
}

func TestCacheScenario6(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	first, err := a.Alloc(100)
	require.NoError(t, err)
	second, err := a.Alloc(300)
	require.NoError(t, err)

	require.NoError(t, a.Free(first))
	require.NoError(t, a.Free(second))

	_, err = a.Alloc(100)
	require.NoError(t, err)
	_, err = a.Alloc(100)
	require.NoError(t, err)
	_, err = a.Alloc(300)
	require.NoError(t, err)

	require.Equal(t, []int{100, 100, 300}, a.Sizes())
}

func TestAllocOversizedReuseShrinksBlockForLaterFree(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	a.AddToCache([]int{80})

	hit, err := a.Alloc(50)
	require.NoError(t, err)
	require.Len(t, hit, 50)
	require.Equal(t, []int{50}, a.Sizes())

	require.NoError(t, a.Free(hit))
	require.Equal(t, []int{50}, a.Sizes())

	again, err := a.Alloc(50)
	require.NoError(t, err)
	require.Same(t, &hit[0], &again[0])
}

func TestResizeWithinCapacitySucceeds(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	data, err := a.Alloc(4)
	require.NoError(t, err)
	grown := make([]int32, 4, 16)
	copy(grown, data)
	require.NoError(t, a.Free(grown))

	resized, ok := a.Resize(grown, 12)
	require.True(t, ok)
	require.Len(t, resized, 12)
}

func TestResizeBeyondCapacityFails(t *testing.T) {
	t.Parallel()

	a := alloc.NewCachingAllocator[int32]()
	data, err := a.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, a.Free(data))

	_, ok := a.Resize(data, 1000)
	require.False(t, ok)
}

func TestRegistryExhaustion(t *testing.T) {
	t.Parallel()

	r := alloc.NewRegistry[int32](2)
	a1, err := r.Acquire()
	require.NoError(t, err)
	_, err = r.Acquire()
	require.NoError(t, err)

	_, err = r.Acquire()
	require.ErrorIs(t, err, alloc.ErrRegistryExhausted)

	r.Release(a1)
	_, err = r.Acquire()
	require.NoError(t, err)
}
