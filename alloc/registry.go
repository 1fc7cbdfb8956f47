// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"sync"

	"github.com/rs/zerolog"
)

// Registry is a bounded pool of CachingAllocator instances. The source
// keeps a fixed-size static array of 100 allocators and panics once it
// is full; Registry takes its capacity as a constructor argument and
// returns ErrRegistryExhausted instead of panicking.
type Registry[T any] struct {
	mu        sync.Mutex
	capacity  int
	instances []*CachingAllocator[T]
	log       zerolog.Logger
}

// NewRegistry returns a Registry bounded to capacity live allocators.
func NewRegistry[T any](capacity int) *Registry[T] {
	return &Registry[T]{capacity: capacity, log: zerolog.Nop()}
}

// WithLogger attaches a zerolog.Logger and returns the receiver.
func (r *Registry[T]) WithLogger(l zerolog.Logger) *Registry[T] {
	r.log = l
	return r
}

// Acquire hands out a fresh CachingAllocator, or ErrRegistryExhausted
// once capacity live instances have been acquired.
func (r *Registry[T]) Acquire() (*CachingAllocator[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.instances) >= r.capacity {
		r.log.Warn().Int("capacity", r.capacity).Msg("alloc: registry exhausted")
		return nil, ErrRegistryExhausted
	}
	a := NewCachingAllocator[T]().WithLogger(r.log)
	r.instances = append(r.instances, a)
	return a, nil
}

// Release removes a previously acquired allocator from the registry,
// freeing its slot for a future Acquire.
func (r *Registry[T]) Release(a *CachingAllocator[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inst := range r.instances {
		if inst == a {
			r.instances = append(r.instances[:i], r.instances[i+1:]...)
			return
		}
	}
}

// Len reports the number of currently acquired allocators.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}
