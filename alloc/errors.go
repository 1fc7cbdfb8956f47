// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alloc implements the size-bucketed caching allocator that
// backs factory.Factory, plus a bounded registry of allocator instances.
package alloc

import "errors"

var (
	// ErrTensorSizeZero is returned when a zero-length allocation is
	// requested; a caching allocator has nothing to bucket a zero-size
	// block under.
	ErrTensorSizeZero = errors.New("alloc: requested size is zero")

	// ErrTensorHasAlloc is returned by factory binding operations that
	// require a view with no backing data yet, when one is already bound.
	ErrTensorHasAlloc = errors.New("alloc: view already has a backing allocation")

	// ErrIndexAlreadyFreed is returned by Free when the located block is
	// already marked unused.
	ErrIndexAlreadyFreed = errors.New("alloc: block already freed")

	// ErrInvalidIndex is returned by factory.Factory.FreeFromTensor when
	// the view has no backing data to release. CachingAllocator.Free does
	// not return it: a slice it cannot locate is deposited as a new block.
	ErrInvalidIndex = errors.New("alloc: slice not tracked by this allocator")

	// ErrRegistryExhausted is returned by Registry.Acquire once its
	// configured capacity of live allocator instances is reached. The
	// source panics here; a library call returning an error is preferred.
	ErrRegistryExhausted = errors.New("alloc: registry has no free allocator slots")
)
