// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/x448/float16"
)

//go:generate go run ../../../internal/cmd/eltwise_dispatcher -package=tensors

// AsType returns the tensor converted to dtype, following Go's numeric conversion rules
// (floats converted to integers are truncated toward zero, integers wrap). Float16 values
// are converted through float32.
//
// If t already has the requested dtype, t itself is returned, no copy is made.
// Otherwise, the result is a new contiguous tensor on the same device.
func (t *Tensor) AsType(dtype dtypes.DType) *Tensor {
	if t.DType() == dtype {
		return t
	}
	convertFn := convertDTypePairMap.Get(t.DType(), dtype)
	output := FromShape(t.shape.WithDType(dtype))
	output.device = t.device
	convertFn(t, output)
	return output
}

// convertFn converts the elements of src into dst, a contiguous tensor with the same dimensions.
type convertFn func(src, dst *Tensor)

var convertDTypePairMap = dtypes.NewPairMap[convertFn]("AsType")

// forEachElement calls fn with each element of t in logical order.
func forEachElement[T dtypes.Supported](t *Tensor, fn func(idx int, value T)) {
	flat := FlatData[T](t)
	if t.IsContiguous() {
		for idx, value := range flat[t.offset : t.offset+t.Size()] {
			fn(idx, value)
		}
		return
	}
	it := t.IterFrom(0)
	for idx := range t.Size() {
		fn(idx, flat[it.Next()])
	}
}

func convertGeneric[FromT, ToT dtypes.PODNumber](src, dst *Tensor) {
	dstFlat := FlatData[ToT](dst)
	forEachElement(src, func(idx int, value FromT) {
		dstFlat[idx] = ToT(value)
	})
}

func convertFromFloat16[_ float16.Float16, ToT dtypes.PODNumber](src, dst *Tensor) {
	dstFlat := FlatData[ToT](dst)
	forEachElement(src, func(idx int, value float16.Float16) {
		dstFlat[idx] = ToT(value.Float32())
	})
}

func convertToFloat16[FromT dtypes.PODNumber, _ float16.Float16](src, dst *Tensor) {
	dstFlat := FlatData[float16.Float16](dst)
	forEachElement(src, func(idx int, value FromT) {
		dstFlat[idx] = float16.Fromfloat32(float32(value))
	})
}
