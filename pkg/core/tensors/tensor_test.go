// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"math"
	"testing"

	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromShape(t *testing.T) {
	for _, dtype := range dtypes.All() {
		tensor := FromShape(shapes.Make(dtype, 2, 3))
		assert.Equal(t, dtype, tensor.DType())
		assert.Equal(t, 6, tensor.Size())
		assert.True(t, tensor.IsContiguous())
		assert.Equal(t, devices.Native, tensor.Device())
	}
	f := FromShape(shapes.Make(dtypes.Float16, 3))
	assert.Equal(t, make([]float16.Float16, 3), MustCopyFlatData[float16.Float16](f))
	require.Panics(t, func() { FromShape(shapes.Shape{}) })
}

func TestFromFlatDataAndDimensions(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	tensor := FromFlatDataAndDimensions(data, 2, 3)
	data[0] = 100 // Tensor holds a copy.
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, MustCopyFlatData[int32](tensor))
	assert.Equal(t, "(Int32)[2 3]@native:0", tensor.String())
	require.Panics(t, func() { FromFlatDataAndDimensions([]int32{1, 2}, 3) })
	require.Panics(t, func() { MustCopyFlatData[float32](tensor) })

	s := FromScalar(uint8(7))
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, uint8(7), ToScalar[uint8](s))
}

func TestViews(t *testing.T) {
	tensor := FromFlatDataAndDimensions([]int8{1, 2, 3, 4, 5, 6}, 2, 3)

	transposed := tensor.Transpose(1, 0)
	assert.Equal(t, []int{3, 2}, transposed.Shape().Dimensions)
	assert.False(t, transposed.IsContiguous())
	assert.Equal(t, []int8{1, 4, 2, 5, 3, 6}, MustCopyFlatData[int8](transposed))
	require.Panics(t, func() { tensor.Transpose(0, 0) })

	row := FromFlatDataAndDimensions([]int8{10, 20, 30}, 3)
	broadcast := row.BroadcastTo(2, 3)
	assert.True(t, broadcast.HasBroadcastAxes())
	assert.Equal(t, []int{0, 1}, broadcast.Strides())
	assert.Equal(t, []int8{10, 20, 30, 10, 20, 30}, MustCopyFlatData[int8](broadcast))

	column := FromFlatDataAndDimensions([]int8{1, 2}, 2, 1)
	assert.Equal(t, []int8{1, 1, 1, 2, 2, 2}, MustCopyFlatData[int8](column.BroadcastTo(2, 3)))
	require.Panics(t, func() { row.BroadcastTo(2, 4) })

	scalarView := FromScalar(int8(5)).BroadcastTo(4)
	assert.Equal(t, []int8{5, 5, 5, 5}, MustCopyFlatData[int8](scalarView))

	other := devices.Device{Backend: "native", Num: 1}
	moved := tensor.OnDevice(other)
	assert.Equal(t, other, moved.Device())
	assert.Equal(t, devices.Native, tensor.Device())
}

func TestIterFrom(t *testing.T) {
	tensor := FromFlatDataAndDimensions([]int16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 2, 3, 2)
	transposed := tensor.Transpose(2, 0, 1) // dims [2, 2, 3], strides [1, 6, 2]
	want := MustCopyFlatData[int16](transposed)
	require.Equal(t, []int16{0, 2, 4, 6, 8, 10, 1, 3, 5, 7, 9, 11}, want)
	flat := FlatData[int16](transposed)
	for start := range transposed.Size() {
		it := transposed.IterFrom(start)
		for idx := start; idx < transposed.Size(); idx++ {
			require.Equalf(t, want[idx], flat[it.Next()], "start=%d, idx=%d", start, idx)
		}
	}
}

func TestAsType(t *testing.T) {
	ints := FromFlatDataAndDimensions([]int32{-3, 0, 300}, 3)
	assert.Same(t, ints, ints.AsType(dtypes.Int32), "AsType to the same dtype must not copy")

	assert.Equal(t, []uint8{253, 0, 44}, MustCopyFlatData[uint8](ints.AsType(dtypes.Uint8)))
	assert.Equal(t, []float64{-3, 0, 300}, MustCopyFlatData[float64](ints.AsType(dtypes.Float64)))
	assert.Equal(t,
		[]float16.Float16{float16.Fromfloat32(-3), 0, float16.Fromfloat32(300)},
		MustCopyFlatData[float16.Float16](ints.AsType(dtypes.Float16)))

	floats := FromFlatDataAndDimensions([]float64{-2.7, 0.5, 7.9}, 3)
	assert.Equal(t, []int64{-2, 0, 7}, MustCopyFlatData[int64](floats.AsType(dtypes.Int64)))

	halves := FromFlatDataAndDimensions([]float16.Float16{float16.Fromfloat32(1.5), float16.Inf(-1)}, 2)
	asFloat32 := MustCopyFlatData[float32](halves.AsType(dtypes.Float32))
	assert.Equal(t, float32(1.5), asFloat32[0])
	assert.True(t, math.IsInf(float64(asFloat32[1]), -1))

	// Non-contiguous source: the result is contiguous, in logical order.
	matrix := FromFlatDataAndDimensions([]int8{1, 2, 3, 4}, 2, 2).Transpose(1, 0)
	converted := matrix.AsType(dtypes.Float32)
	assert.True(t, converted.IsContiguous())
	assert.Equal(t, []float32{1, 3, 2, 4}, MustCopyFlatData[float32](converted))

	other := devices.Device{Backend: "native", Num: 1}
	assert.Equal(t, other, ints.OnDevice(other).AsType(dtypes.Int8).Device())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Int32(7)", FromScalar(int32(7)).Summary(3))
	assert.Equal(t, "[3]Float32{1.5, -2, 0.333}",
		FromFlatDataAndDimensions([]float32{1.5, -2, 1.0 / 3}, 3).Summary(3))
	assert.Equal(t, "[2][2]Uint8{\n {1, 2},\n {3, 4}}",
		FromFlatDataAndDimensions([]uint8{1, 2, 3, 4}, 2, 2).Summary(3))
	assert.Equal(t, "[8]Int64{0, 1, 2, ..., 5, 6, 7}",
		FromFlatDataAndDimensions([]int64{0, 1, 2, 3, 4, 5, 6, 7}, 8).Summary(3))
	assert.Equal(t, "(Int8)[0 2]", FromShape(shapes.Make(dtypes.Int8, 0, 2)).Summary(3))

	// Negative precision: shortest representation for the tensor's dtype.
	assert.Equal(t, []string{"1.5", "-2", "+Inf", "NaN", "0.33333334"},
		FromFlatDataAndDimensions([]float32{1.5, -2, float32(math.Inf(1)), float32(math.NaN()), 1.0 / 3}, 5).
			FormatElements(-1))
	assert.Equal(t, "[2]Float64{0.3333333333333333, -Inf}",
		FromFlatDataAndDimensions([]float64{1.0 / 3, math.Inf(-1)}, 2).Summary(-1))

	rows := make([]int16, 8)
	for ii := range rows {
		rows[ii] = int16(ii)
	}
	assert.Equal(t, "[8][1]Int16{\n {0},\n {1},\n {2},\n ...,\n {5},\n {6},\n {7}}",
		FromFlatDataAndDimensions(rows, 8, 1).Summary(3))
}
