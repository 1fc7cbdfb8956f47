// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory implements Factory, the typed tensor factory that
// allocates tensor.Tensor views through an alloc.Allocator and composes
// kernel operations with automatic result allocation.
package factory

import (
	"github.com/rs/zerolog"

	"zein.dev/zein/alloc"
	"zein.dev/zein/shape"
	"zein.dev/zein/tensor"
)

// Mode is the factory's tracking-list state.
type Mode int

const (
	// ModeFree: not recording; no tracked slices.
	ModeFree Mode = iota
	// ModeStart: every allocation is appended to the tracking list.
	ModeStart
	// ModeStop: recording paused; existing tracked slices are kept.
	ModeStop
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeStop:
		return "stop"
	default:
		return "free"
	}
}

// Factory allocates tensor data through a tensor allocator, optionally
// tracking every slice it produces so they can be released together.
// The tracking list is not safe for concurrent use -- it is meant for a
// single owner thread, per the source's design; alloc.CachingAllocator
// underneath it is the only concurrent object in this module.
type Factory[T tensor.Numeric] struct {
	system   alloc.Allocator[T]
	tensor   alloc.Allocator[T]
	tracking [][]T
	mode     Mode
	log      zerolog.Logger
}

// New builds a Factory whose tensor_allocator slot is tensorAlloc. The
// system_allocator slot is always a plain alloc.SystemAllocator.
func New[T tensor.Numeric](tensorAlloc alloc.Allocator[T]) *Factory[T] {
	return &Factory[T]{
		system: alloc.NewSystemAllocator[T](),
		tensor: tensorAlloc,
		mode:   ModeFree,
		log:    zerolog.Nop(),
	}
}

// WithLogger attaches a zerolog.Logger for the diagnostics emitted while
// releasing tracked tensors, and returns the receiver.
func (f *Factory[T]) WithLogger(l zerolog.Logger) *Factory[T] {
	f.log = l
	return f
}

// Mode returns the current tracking mode.
func (f *Factory[T]) Mode() Mode { return f.mode }

// SetMode applies the documented mode transition table: free->stop is
// the one transition that is a pure no-op (stays free); every path into
// free releases and clears the tracking list; every other path just
// changes mode.
func (f *Factory[T]) SetMode(target Mode) {
	switch {
	case f.mode == target:
		return
	case f.mode == ModeFree && target == ModeStop:
		return
	case target == ModeFree:
		f.releaseTracked()
		f.mode = ModeFree
	default:
		f.mode = target
	}
}

// Close transitions to ModeFree, releasing every tracked tensor -- the
// Go analog of the source's deinit.
func (f *Factory[T]) Close() {
	f.SetMode(ModeFree)
}

func (f *Factory[T]) releaseTracked() {
	for _, d := range f.tracking {
		if err := f.tensor.Free(d); err != nil {
			f.log.Warn().Err(err).Msg("factory: error releasing tracked tensor")
		}
	}
	f.tracking = nil
	f.log.Debug().Msg("factory: released tracked tensors")
}

func (f *Factory[T]) track(data []T) {
	if f.mode == ModeStart {
		f.tracking = append(f.tracking, data)
	}
}

func (f *Factory[T]) untrack(data []T) {
	if len(data) == 0 {
		return
	}
	for i, d := range f.tracking {
		if len(d) > 0 && &d[0] == &data[0] {
			f.tracking = append(f.tracking[:i], f.tracking[i+1:]...)
			return
		}
	}
}

// AllocTensor allocates a backing slice through the tensor allocator and
// wraps it as a Tensor of the given sizes and order.
func (f *Factory[T]) AllocTensor(sizes []shape.S, order shape.Order) (*tensor.Tensor[T], error) {
	sh, err := shape.New(order, sizes)
	if err != nil {
		return nil, err
	}
	if sh.Len() == 0 {
		return nil, alloc.ErrTensorSizeZero
	}
	data, err := f.tensor.Alloc(sh.Len())
	if err != nil {
		return nil, err
	}
	f.track(data)
	return tensor.NewFromShape(data, sh), nil
}

// AllocToTensor binds a freshly allocated data slice into view, which
// must not already have backing data.
func (f *Factory[T]) AllocToTensor(view *tensor.Tensor[T]) error {
	if view.Data() != nil {
		return alloc.ErrTensorHasAlloc
	}
	data, err := f.tensor.Alloc(view.ValueCapacity())
	if err != nil {
		return err
	}
	if err := view.Bind(data); err != nil {
		_ = f.tensor.Free(data)
		return err
	}
	f.track(data)
	return nil
}

// FreeFromTensor returns view's backing data to the tensor allocator and
// detaches it, leaving view shape-only.
func (f *Factory[T]) FreeFromTensor(view *tensor.Tensor[T]) error {
	data := view.Data()
	if data == nil {
		return alloc.ErrInvalidIndex
	}
	if err := f.tensor.Free(data); err != nil {
		return err
	}
	f.untrack(data)
	view.Unbind()
	return nil
}

// CopyTensor allocates a new tensor of view's shape and copies its data.
func (f *Factory[T]) CopyTensor(view *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	out, err := f.AllocTensor(view.Shape().Sizes(), view.Shape().Order())
	if err != nil {
		return nil, err
	}
	copy(out.Data(), view.Data())
	return out, nil
}
