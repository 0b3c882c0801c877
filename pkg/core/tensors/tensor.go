// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tensors implement a `Tensor`, a strided view over a flat Go slice of one of the dtypes
// in the catalog, placed on a device.
//
// There are various ways to construct a Tensor from local data:
//
//   - FromShape(shape shapes.Shape): creates a tensor with the given shape, and zero values.
//
//   - FromFlatDataAndDimensions[T dtypes.Supported](data []T, dimensions ...int): creates a Tensor with the
//     given dimensions and a copy of the flattened values. Example:
//
//     t := FromFlatDataAndDimensions([]int8{1, 2, 3, 4}, 2, 2) // Tensor with [[1,2], [3,4]]
//
//   - FromScalar[T dtypes.Supported](value T): creates a scalar (rank 0) Tensor.
//
// Views share the data of the tensor they are created from, but iterate over it differently:
// BroadcastTo (axes with stride 0), Transpose (permuted strides) and OnDevice (same data, another device tag).
//
// The logical order of the elements is always row-major over the tensor's dimensions. The physical position
// of each logical element is given by the tensor's offset and strides, see Tensor.IterFrom.
package tensors

import (
	"fmt"
	"slices"

	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/exceptions"
)

// Tensor is a multidimensional array of one of the catalog's dtypes.
//
// It's not safe to mutate the same Tensor (or views sharing its data) concurrently from different goroutines.
type Tensor struct {
	shape shapes.Shape

	// flat is always a slice of the underlying data type (shape.DType).
	flat any

	// offset and strides (in elements, not bytes) map logical indices to positions in flat.
	offset  int
	strides []int

	device devices.Device
}

// FromShape returns a zero-initialized contiguous Tensor with the given shape, on the native device.
func FromShape(shape shapes.Shape) *Tensor {
	if !shape.Ok() {
		exceptions.Panicf("tensors.FromShape(%s): invalid shape", shape)
	}
	return &Tensor{
		shape:   shape.Clone(),
		flat:    makeFlatDTypeMap.Get(shape.DType)(shape.Size()),
		strides: shape.Strides(),
		device:  devices.Native,
	}
}

// FromFlatDataAndDimensions creates a contiguous Tensor with the given dimensions, holding a copy of data.
//
// It panics if len(data) doesn't match the product of the dimensions.
func FromFlatDataAndDimensions[T dtypes.Supported](data []T, dimensions ...int) *Tensor {
	shape := shapes.Make(dtypes.FromGenericsType[T](), dimensions...)
	if len(data) != shape.Size() {
		exceptions.Panicf("tensors.FromFlatDataAndDimensions: len(data)=%d doesn't match shape %s", len(data), shape)
	}
	return &Tensor{
		shape:   shape,
		flat:    slices.Clone(data),
		strides: shape.Strides(),
		device:  devices.Native,
	}
}

// FromScalar creates a rank-0 Tensor holding value.
func FromScalar[T dtypes.Supported](value T) *Tensor {
	return FromFlatDataAndDimensions([]T{value})
}

// Shape of the tensor.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor's elements.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank of the tensor, the number of axes.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Size is the number of logical elements of the tensor.
func (t *Tensor) Size() int { return t.shape.Size() }

// Device implements devices.Resident.
func (t *Tensor) Device() devices.Device { return t.device }

// Offset is the position in the flat storage of the first logical element.
func (t *Tensor) Offset() int { return t.offset }

// Strides for each axis, in elements. Axes with stride 0 are broadcast.
func (t *Tensor) Strides() []int { return t.strides }

// IsContiguous returns whether the logical elements are laid out sequentially in the flat storage,
// starting at Offset.
func (t *Tensor) IsContiguous() bool {
	for axis, dim := range t.shape.Dimensions {
		if dim == 1 {
			continue
		}
		want := 1
		for _, d := range t.shape.Dimensions[axis+1:] {
			want *= d
		}
		if t.strides[axis] != want {
			return false
		}
	}
	return true
}

// HasBroadcastAxes returns whether more than one logical element maps to the same physical position.
func (t *Tensor) HasBroadcastAxes() bool {
	for axis, dim := range t.shape.Dimensions {
		if dim > 1 && t.strides[axis] == 0 {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("%s@%s", t.shape, t.device)
}

// FlatData returns the flat storage of the tensor. It must be indexed through the tensor's
// offset and strides (see IterFrom), it may hold more elements than the tensor's size.
//
// It panics if T doesn't match the tensor's dtype.
func FlatData[T dtypes.Supported](t *Tensor) []T {
	flat, ok := t.flat.([]T)
	if !ok {
		var zero T
		exceptions.Panicf("tensors.FlatData[%T] called for tensor %s", zero, t)
	}
	return flat
}

// MustCopyFlatData returns a copy of the tensor's elements, in logical (row-major) order.
//
// It panics if T doesn't match the tensor's dtype.
func MustCopyFlatData[T dtypes.Supported](t *Tensor) []T {
	flat := FlatData[T](t)
	size := t.Size()
	if t.IsContiguous() {
		return slices.Clone(flat[t.offset : t.offset+size])
	}
	result := make([]T, size)
	it := t.IterFrom(0)
	for ii := range result {
		result[ii] = flat[it.Next()]
	}
	return result
}

// ToScalar returns the only element of a tensor with size 1.
func ToScalar[T dtypes.Supported](t *Tensor) T {
	if t.Size() != 1 {
		exceptions.Panicf("tensors.ToScalar(%s): tensor must have exactly one element", t)
	}
	return FlatData[T](t)[t.offset]
}

type makeFlatFn func(size int) any

var makeFlatDTypeMap = dtypes.NewMap[makeFlatFn]("MakeFlat", dtypes.CategoryAll)

func makeFlatGeneric[T dtypes.Supported](size int) any {
	return make([]T, size)
}
