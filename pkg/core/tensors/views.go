// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"slices"

	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/exceptions"
)

// view returns a shallow copy of t, sharing its flat storage.
func (t *Tensor) view() *Tensor {
	v := *t
	v.shape = t.shape.Clone()
	v.strides = slices.Clone(t.strides)
	return &v
}

// BroadcastTo returns a view of t with the given dimensions, following the usual alignment of axes
// from the right: missing leading axes are added, and axes of dimension 1 are repeated (stride 0).
//
// It panics if t's dimensions are not broadcastable to dimensions.
func (t *Tensor) BroadcastTo(dimensions ...int) *Tensor {
	rank := len(dimensions)
	if t.Rank() > rank {
		exceptions.Panicf("BroadcastTo(%v): tensor %s has a larger rank", dimensions, t)
	}
	v := t.view()
	v.shape = shapes.Make(t.DType(), dimensions...)
	v.strides = make([]int, rank)
	shift := rank - t.Rank()
	for axis := range rank {
		if axis < shift {
			continue
		}
		fromDim := t.shape.Dimensions[axis-shift]
		switch fromDim {
		case dimensions[axis]:
			v.strides[axis] = t.strides[axis-shift]
		case 1:
			v.strides[axis] = 0
		default:
			exceptions.Panicf("BroadcastTo(%v): axis %d of tensor %s has dimension %d", dimensions, axis-shift, t, fromDim)
		}
	}
	return v
}

// Transpose returns a view of t with the axes permuted: axis i of the result is axis permutation[i] of t.
func (t *Tensor) Transpose(permutation ...int) *Tensor {
	if len(permutation) != t.Rank() {
		exceptions.Panicf("Transpose(%v): tensor %s has rank %d", permutation, t, t.Rank())
	}
	seen := make([]bool, t.Rank())
	dims := make([]int, t.Rank())
	v := t.view()
	for axis, from := range permutation {
		if from < 0 || from >= t.Rank() || seen[from] {
			exceptions.Panicf("Transpose(%v): invalid permutation for tensor %s", permutation, t)
		}
		seen[from] = true
		dims[axis] = t.shape.Dimensions[from]
		v.strides[axis] = t.strides[from]
	}
	v.shape = shapes.Make(t.DType(), dims...)
	return v
}

// OnDevice returns a view of t tagged as residing on device. The data is shared.
//
// It's used by backends that hold their buffers in host memory but account for them on a separate device.
func (t *Tensor) OnDevice(device devices.Device) *Tensor {
	v := t.view()
	v.device = device
	return v
}
