// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
)

// block is one cached slice and whether it is currently on loan.
type block[T any] struct {
	data []T
	used bool
}

// CachingAllocator maintains a size-ordered free list of data blocks in
// front of Go's runtime allocator. It is the tensor_allocator slot a
// factory.Factory is built on: Alloc reuses a same-or-larger idle block
// within a 2x size heuristic before falling back to make(); Free returns
// a block to the cache instead of dropping it for the garbage collector.
//
// All methods serialize on a single mutex -- this is the one concurrent
// object in the module (see kernel and tensor, which are synchronous).
type CachingAllocator[T any] struct {
	mu     sync.Mutex
	blocks []block[T]
	log    zerolog.Logger
}

// NewCachingAllocator returns an empty allocator with a disabled logger;
// use WithLogger to attach diagnostics.
func NewCachingAllocator[T any]() *CachingAllocator[T] {
	return &CachingAllocator[T]{log: zerolog.Nop()}
}

// WithLogger attaches a zerolog.Logger for allocator diagnostics
// (cache hits and misses) and returns the receiver.
func (a *CachingAllocator[T]) WithLogger(l zerolog.Logger) *CachingAllocator[T] {
	a.log = l
	return a
}

// Alloc returns a block of length n, reusing a cached idle block whose
// size is within [n, 2n] when one exists, or making a fresh one.
func (a *CachingAllocator[T]) Alloc(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrTensorSizeZero
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	start := sort.Search(len(a.blocks), func(i int) bool { return len(a.blocks[i].data) >= n })
	for i := start; i < len(a.blocks) && len(a.blocks[i].data) <= 2*n; i++ {
		if !a.blocks[i].used {
			blk := a.blocks[i]
			a.log.Debug().Int("requested", n).Int("block", len(blk.data)).Msg("alloc: cache hit")
			a.blocks = append(a.blocks[:i], a.blocks[i+1:]...)
			blk.data = blk.data[:n]
			blk.used = true
			a.insertLocked(blk)
			return blk.data, nil
		}
	}

	data := make([]T, n)
	a.insertLocked(block[T]{data: data, used: true})
	a.log.Debug().Int("requested", n).Msg("alloc: cache miss")
	return data, nil
}

// Free returns data to the cache. If data was not produced by this
// allocator it is inserted fresh, growing the cache by one block, per
// the source's "deposit unknown pointers" rule.
func (a *CachingAllocator[T]) Free(data []T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if idx, ok := a.locateLocked(data); ok {
		if !a.blocks[idx].used {
			return ErrIndexAlreadyFreed
		}
		a.blocks[idx].used = false
		return nil
	}
	a.insertLocked(block[T]{data: data, used: false})
	return nil
}

// Resize attempts to grow data in place to newSize by reslicing within
// its existing capacity. It never reallocates -- on failure the caller
// must Free the old block and Alloc a new one. On success the block is
// re-inserted at its new size-ordered position.
func (a *CachingAllocator[T]) Resize(data []T, newSize int) ([]T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, ok := a.locateLocked(data)
	if !ok || cap(a.blocks[idx].data) < newSize {
		return nil, false
	}
	blk := a.blocks[idx]
	a.blocks = append(a.blocks[:idx], a.blocks[idx+1:]...)
	blk.data = blk.data[:newSize]
	a.insertLocked(blk)
	return blk.data, true
}

// Clear drops every cached block, releasing them to the garbage
// collector -- the Go analog of returning them to the backing allocator.
func (a *CachingAllocator[T]) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blocks = nil
}

// AddToCache prewarms the cache with unused blocks of the given sizes.
func (a *CachingAllocator[T]) AddToCache(sizes []int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, n := range sizes {
		a.insertLocked(block[T]{data: make([]T, n), used: false})
	}
}

// Sizes returns the cached block sizes in their current (size-sorted)
// order -- exposed for testing the weak-ordering invariant.
func (a *CachingAllocator[T]) Sizes() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int, len(a.blocks))
	for i, b := range a.blocks {
		out[i] = len(b.data)
	}
	return out
}

// insertLocked inserts blk keeping a.blocks weakly sorted by size.
// Caller must hold a.mu.
func (a *CachingAllocator[T]) insertLocked(blk block[T]) {
	idx := sort.Search(len(a.blocks), func(i int) bool { return len(a.blocks[i].data) >= len(blk.data) })
	a.blocks = append(a.blocks, block[T]{})
	copy(a.blocks[idx+1:], a.blocks[idx:])
	a.blocks[idx] = blk
}

// locateLocked finds data by comparing the address of its first element
// against cached blocks of the same length -- slices aren't otherwise
// comparable, and this mirrors the source's "locate by pointer" rule.
// Caller must hold a.mu.
func (a *CachingAllocator[T]) locateLocked(data []T) (int, bool) {
	n := len(data)
	start := sort.Search(len(a.blocks), func(i int) bool { return len(a.blocks[i].data) >= n })
	for i := start; i < len(a.blocks) && len(a.blocks[i].data) == n; i++ {
		if slicePointer(a.blocks[i].data) == slicePointer(data) {
			return i, true
		}
	}
	return 0, false
}

func slicePointer[T any](s []T) uintptr {
	if cap(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[:1][0]))
}
