// Copyright (c) 2019, The Goki Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"zein.dev/zein/expr"
	"zein.dev/zein/kernel"
	"zein.dev/zein/tensor"
)

// elementwiseResult allocates a tensor shaped like x and delegates to op.
func elementwiseResult[T tensor.Numeric](f *Factory[T], x, y *tensor.Tensor[T], op func(x, y, z *tensor.Tensor[T]) error) (*tensor.Tensor[T], error) {
	z, err := f.AllocTensor(x.Shape().Sizes(), x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := op(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

// Add allocates z shaped like x and computes z = x + y.
func (f *Factory[T]) Add(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return elementwiseResult(f, x, y, kernel.Add[T])
}

// Sub allocates z shaped like x and computes z = x - y.
func (f *Factory[T]) Sub(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return elementwiseResult(f, x, y, kernel.Sub[T])
}

// Mul allocates z shaped like x and computes the Hadamard product x*y.
func (f *Factory[T]) Mul(x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return elementwiseResult(f, x, y, kernel.Mul[T])
}

// Scale allocates y shaped like x and computes y = x * s.
func (f *Factory[T]) Scale(x *tensor.Tensor[T], s T) (*tensor.Tensor[T], error) {
	y, err := f.AllocTensor(x.Shape().Sizes(), x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := kernel.Scale(x, s, y); err != nil {
		return nil, err
	}
	return y, nil
}

// Bias allocates y shaped like x and computes y = x + s.
func (f *Factory[T]) Bias(x *tensor.Tensor[T], s T) (*tensor.Tensor[T], error) {
	y, err := f.AllocTensor(x.Shape().Sizes(), x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := kernel.Bias(x, s, y); err != nil {
		return nil, err
	}
	return y, nil
}

// Contraction allocates the result tensor per plan.OutputSizes and
// delegates to kernel.Contraction.
func (f *Factory[T]) Contraction(plan expr.ContractionPlan, x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	sizes := plan.OutputSizes(x.Shape().Sizes())
	z, err := f.AllocTensor(sizes, x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := kernel.Contraction(plan, x, z); err != nil {
		return nil, err
	}
	return z, nil
}

// InnerProduct allocates the result tensor per plan.OutputSizes and
// delegates to kernel.InnerProduct.
func (f *Factory[T]) InnerProduct(plan expr.InnerProductPlan, x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	sizes := plan.OutputSizes(x.Shape().Sizes(), y.Shape().Sizes())
	z, err := f.AllocTensor(sizes, x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := kernel.InnerProduct(plan, x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

// OuterProduct allocates the result tensor per plan.OutputSizes and
// delegates to kernel.OuterProduct.
func (f *Factory[T]) OuterProduct(plan expr.InnerProductPlan, x, y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	sizes := plan.OutputSizes(x.Shape().Sizes(), y.Shape().Sizes())
	z, err := f.AllocTensor(sizes, x.Shape().Order())
	if err != nil {
		return nil, err
	}
	if err := kernel.OuterProduct(plan, x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}
