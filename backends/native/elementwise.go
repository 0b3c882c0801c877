// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/tensors"
)

// This file implements the element-wise execution engine: it applies a per-element function to
// every logical index of the output exactly once.
//
// Inputs and output are already cast to the same dtype when the executors are called, and have the
// same dimensions, but each may have its own offset and strides (e.g. transposed or broadcast views).
// When all of them are contiguous the flat slices are traversed directly, otherwise the positions
// come from strided iterators.

// opImpl holds the executors of one operation, instantiated for one dtype.
type opImpl struct {
	binary      func(b *Backend, x1, x2, out *tensors.Tensor)
	arrayScalar func(b *Backend, x1 *tensors.Tensor, x2 scalar.Scalar, out *tensors.Tensor)
	scalarArray func(b *Backend, x1 scalar.Scalar, x2, out *tensors.Tensor)
}

// newOpImpl creates the executors for op. The scalar operand is converted to T once per call,
// and bound in the per-element function.
func newOpImpl[T dtypes.Supported](op func(a, b T) T) opImpl {
	return opImpl{
		binary: func(b *Backend, x1, x2, out *tensors.Tensor) {
			execBinaryGeneric(b, op, x1, x2, out)
		},
		arrayScalar: func(b *Backend, x1 *tensors.Tensor, x2 scalar.Scalar, out *tensors.Tensor) {
			c := scalar.ConvertTo[T](x2)
			execUnaryGeneric(b, func(a T) T { return op(a, c) }, x1, out)
		},
		scalarArray: func(b *Backend, x1 scalar.Scalar, x2, out *tensors.Tensor) {
			c := scalar.ConvertTo[T](x1)
			execUnaryGeneric(b, func(a T) T { return op(c, a) }, x2, out)
		},
	}
}

// execBinaryGeneric sets out[i] = op(x1[i], x2[i]) for every logical index i.
func execBinaryGeneric[T dtypes.Supported](b *Backend, op func(a, b T) T, x1, x2, out *tensors.Tensor) {
	x1Flat, x2Flat, outFlat := tensors.FlatData[T](x1), tensors.FlatData[T](x2), tensors.FlatData[T](out)
	if x1.IsContiguous() && x2.IsContiguous() && out.IsContiguous() {
		x1Offset, x2Offset, outOffset := x1.Offset(), x2.Offset(), out.Offset()
		b.parallelFor(out.Size(), func(start, end int) {
			lhs := x1Flat[x1Offset+start : x1Offset+end]
			rhs := x2Flat[x2Offset+start : x2Offset+end]
			output := outFlat[outOffset+start : outOffset+end]
			for ii := range output {
				output[ii] = op(lhs[ii], rhs[ii])
			}
		})
		return
	}
	b.parallelFor(out.Size(), func(start, end int) {
		x1Iter, x2Iter, outIter := x1.IterFrom(start), x2.IterFrom(start), out.IterFrom(start)
		for range end - start {
			outFlat[outIter.Next()] = op(x1Flat[x1Iter.Next()], x2Flat[x2Iter.Next()])
		}
	})
}

// execUnaryGeneric sets out[i] = op(x[i]) for every logical index i.
func execUnaryGeneric[T dtypes.Supported](b *Backend, op func(a T) T, x, out *tensors.Tensor) {
	xFlat, outFlat := tensors.FlatData[T](x), tensors.FlatData[T](out)
	if x.IsContiguous() && out.IsContiguous() {
		xOffset, outOffset := x.Offset(), out.Offset()
		b.parallelFor(out.Size(), func(start, end int) {
			input := xFlat[xOffset+start : xOffset+end]
			output := outFlat[outOffset+start : outOffset+end]
			for ii := range output {
				output[ii] = op(input[ii])
			}
		})
		return
	}
	b.parallelFor(out.Size(), func(start, end int) {
		xIter, outIter := x.IterFrom(start), out.IterFrom(start)
		for range end - start {
			outFlat[outIter.Next()] = op(xFlat[xIter.Next()])
		}
	})
}
