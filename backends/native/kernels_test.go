// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"fmt"
	"math"
	"testing"

	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestKernels_AllDTypes(t *testing.T) {
	x1 := tensors.FromFlatDataAndDimensions([]int64{6, 9, 12, 20}, 2, 2)
	x2 := tensors.FromFlatDataAndDimensions([]int64{3, 2, 5, 4}, 2, 2)
	testCases := []struct {
		op                kernels.OpType
		wantInt, wantReal []float64
	}{
		{kernels.OpTypeAdd, []float64{9, 11, 17, 24}, nil},
		{kernels.OpTypeSubtract, []float64{3, 7, 7, 16}, nil},
		{kernels.OpTypeMultiply, []float64{18, 18, 60, 80}, nil},
		{kernels.OpTypeDivide, []float64{2, 4, 2, 5}, []float64{2, 4.5, 2.4, 5}},
		{kernels.OpTypeFloorDivide, []float64{2, 4, 2, 5}, nil},
		{kernels.OpTypeBitwiseAnd, []float64{2, 0, 4, 4}, nil},
		{kernels.OpTypeBitwiseOr, []float64{7, 11, 13, 20}, nil},
		{kernels.OpTypeBitwiseXor, []float64{5, 11, 9, 16}, nil},
	}
	for _, tc := range testCases {
		for _, dtype := range tc.op.Category().DTypes() {
			t.Run(fmt.Sprintf("%s/%s", tc.op, dtype), func(t *testing.T) {
				want := tc.wantInt
				if dtype.IsFloat() && tc.wantReal != nil {
					want = tc.wantReal
				}
				// Inputs are cast to the output's dtype.
				out := tensors.FromShape(shapes.Make(dtype, 2, 2))
				backend.Kernels().Binary(tc.op).Call(x1, x2, out)
				assert.InDeltaSlice(t, want, toFloat64s(out), 1e-2)

				// Inputs already with the output's dtype.
				out = tensors.FromShape(shapes.Make(dtype, 2, 2))
				backend.Kernels().Binary(tc.op).Call(x1.AsType(dtype), x2.AsType(dtype), out)
				assert.InDeltaSlice(t, want, toFloat64s(out), 1e-2)
			})
		}
	}
}

func TestKernels_FloorDivide(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int32{7, -7, 7, -7}, 4)
	out := backend.Apply(kernels.OpTypeFloorDivide, x, scalar.Int(2))
	assert.Equal(t, []int32{3, -4, 3, -4}, tensors.MustCopyFlatData[int32](out))

	out = backend.Apply(kernels.OpTypeFloorDivide, x, tensors.FromFlatDataAndDimensions([]int32{2, 2, -2, -2}, 4))
	assert.Equal(t, []int32{3, -4, -4, 3}, tensors.MustCopyFlatData[int32](out))

	out = backend.Apply(kernels.OpTypeFloorDivide, scalar.Int(-7), tensors.FromFlatDataAndDimensions([]int64{2, -2, 0}, 3))
	assert.Equal(t, []int64{-4, 3, 0}, tensors.MustCopyFlatData[int64](out))

	u := tensors.FromFlatDataAndDimensions([]uint8{5}, 1)
	out = backend.Apply(kernels.OpTypeFloorDivide, u, scalar.Int(0))
	assert.Equal(t, []uint8{0}, tensors.MustCopyFlatData[uint8](out))

	f := tensors.FromFlatDataAndDimensions([]float64{7.5, -7.5}, 2)
	out = backend.Apply(kernels.OpTypeFloorDivide, f, tensors.FromFlatDataAndDimensions([]float64{-2, 2}, 2))
	assert.Equal(t, []float64{-4, -4}, tensors.MustCopyFlatData[float64](out))

	h := tensors.FromFlatDataAndDimensions([]float16.Float16{float16.Fromfloat32(-7.5)}, 1)
	out = backend.Apply(kernels.OpTypeFloorDivide, h, scalar.Float(2))
	assert.Equal(t, float32(-4), tensors.MustCopyFlatData[float16.Float16](out)[0].Float32())

	// Integer division by zero returns 0 for every integer dtype.
	for _, dtype := range dtypes.CategoryIntegral.DTypes() {
		ints := tensors.FromFlatDataAndDimensions([]int64{1, 5, 100}, 3).AsType(dtype)
		for _, op := range []kernels.OpType{kernels.OpTypeFloorDivide, kernels.OpTypeDivide} {
			out = backend.Apply(op, ints, scalar.Int(0))
			assert.Equalf(t, []float64{0, 0, 0}, toFloat64s(out), "%s(%s, 0)", op, dtype)
			out = backend.Apply(op, ints, tensors.FromFlatDataAndDimensions([]int64{0, 0, 0}, 3))
			assert.Equalf(t, []float64{0, 0, 0}, toFloat64s(out), "%s(%s, 0)", op, dtype)
		}
	}
}

func TestKernels_Divide(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]float64{1, 2}, 2)
	out := backend.Apply(kernels.OpTypeDivide, x, scalar.Float(0))
	got := tensors.MustCopyFlatData[float64](out)
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], 1))

	out = backend.Apply(kernels.OpTypeDivide, scalar.Float(1), tensors.FromFlatDataAndDimensions([]float32{4, -0.5}, 2))
	assert.Equal(t, []float32{0.25, -2}, tensors.MustCopyFlatData[float32](out))

	out = backend.Apply(kernels.OpTypeDivide, scalar.Int(7), tensors.FromFlatDataAndDimensions([]int32{0, 2}, 2))
	assert.Equal(t, []int32{0, 3}, tensors.MustCopyFlatData[int32](out))
}

func TestKernels_Overflow(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int8{127, -128}, 2)
	out := backend.Apply(kernels.OpTypeAdd, x, scalar.Int(1))
	assert.Equal(t, []int8{-128, -127}, tensors.MustCopyFlatData[int8](out))

	u := tensors.FromFlatDataAndDimensions([]uint8{0, 200}, 2)
	out = backend.Apply(kernels.OpTypeSubtract, u, scalar.Int(1))
	assert.Equal(t, []uint8{255, 199}, tensors.MustCopyFlatData[uint8](out))
	out = backend.Apply(kernels.OpTypeMultiply, u, scalar.Int(2))
	assert.Equal(t, []uint8{0, 144}, tensors.MustCopyFlatData[uint8](out))

	f := tensors.FromFlatDataAndDimensions([]float32{math.MaxFloat32}, 1)
	out = backend.Apply(kernels.OpTypeMultiply, f, scalar.Int(2))
	assert.True(t, math.IsInf(float64(tensors.MustCopyFlatData[float32](out)[0]), 1))
}

func TestKernels_Float16(t *testing.T) {
	h := func(values ...float32) *tensors.Tensor {
		data := make([]float16.Float16, len(values))
		for ii, v := range values {
			data[ii] = float16.Fromfloat32(v)
		}
		return tensors.FromFlatDataAndDimensions(data, len(data))
	}
	out := backend.Apply(kernels.OpTypeAdd, h(1.5, 2.25), h(0.5, 0.25))
	assert.Equal(t, []float64{2, 2.5}, toFloat64s(out))
	out = backend.Apply(kernels.OpTypeDivide, h(1, 3), scalar.Int(2))
	assert.Equal(t, []float64{0.5, 1.5}, toFloat64s(out))
	out = backend.Apply(kernels.OpTypeSubtract, h(1), scalar.Float(0.25))
	assert.Equal(t, []float64{0.75}, toFloat64s(out))
}

func TestKernels_BitwiseOnFloatPanics(t *testing.T) {
	for _, dtype := range []dtypes.DType{dtypes.Float16, dtypes.Float32, dtypes.Float64} {
		x := tensors.FromShape(shapes.Make(dtype, 3))
		for _, op := range []kernels.OpType{kernels.OpTypeBitwiseAnd, kernels.OpTypeBitwiseOr, kernels.OpTypeBitwiseXor} {
			require.Panicsf(t, func() { backend.Apply(op, x, x) }, "%s on %s", op, dtype)
			require.Panicsf(t, func() { backend.Apply(op, x, scalar.Int(1)) }, "%s on %s", op, dtype)
		}
	}

	// Integer inputs don't help: the output dtype selects the execution type.
	ints := tensors.FromFlatDataAndDimensions([]int32{1, 2, 3}, 3)
	out := tensors.FromShape(shapes.Make(dtypes.Float32, 3))
	require.Panics(t, func() { backend.Kernels().Binary(kernels.OpTypeBitwiseAnd).Call(ints, ints, out) })
}

// TestKernels_ScalarMatchesBroadcast checks that the scalar variants give the same results as the
// Array-Array kernel with the scalar broadcast to the shape of the other operand.
func TestKernels_ScalarMatchesBroadcast(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int64{-9, -4, -1, 2, 3, 8, 11, 100}, 2, 4)
	for op, variants := range SupportedVariants {
		for _, dtype := range op.Category().DTypes() {
			input := x
			if dtype.IsUnsigned() {
				input = tensors.FromFlatDataAndDimensions([]int64{9, 4, 1, 2, 3, 8, 11, 100}, 2, 4)
			}
			for _, s := range []scalar.Scalar{scalar.Int(3), scalar.Float(-2.5)} {
				if dtype.IsUnsigned() && s.Float64() < 0 {
					continue
				}
				var broadcast *tensors.Tensor
				if s.IsInt() {
					broadcast = tensors.FromScalar(s.Int64()).BroadcastTo(2, 4)
				} else {
					broadcast = tensors.FromScalar(s.Float64()).BroadcastTo(2, 4)
				}
				for _, variant := range variants {
					if variant == kernels.VariantArrayArray {
						continue
					}
					got := tensors.FromShape(shapes.Make(dtype, 2, 4))
					want := tensors.FromShape(shapes.Make(dtype, 2, 4))
					if variant == kernels.VariantArrayScalar {
						backend.Kernels().ArrayScalar(op).Call(input, s, got)
						backend.Kernels().Binary(op).Call(input, broadcast, want)
					} else {
						backend.Kernels().ScalarArray(op).Call(s, input, got)
						backend.Kernels().Binary(op).Call(broadcast, input, want)
					}
					assert.Equalf(t, toFloat64s(want), toFloat64s(got), "%s/%s with %s, dtype %s", op, variant, s, dtype)
				}
			}
		}
	}
}

func TestKernels_Strided(t *testing.T) {
	// x is [[0, 1, 2], [3, 4, 5]] transposed to [[0, 3], [1, 4], [2, 5]].
	x := tensors.FromFlatDataAndDimensions([]float32{0, 1, 2, 3, 4, 5}, 2, 3).Transpose(1, 0)
	row := tensors.FromFlatDataAndDimensions([]float32{10, 20}, 2).BroadcastTo(3, 2)
	out := backend.Apply(kernels.OpTypeAdd, x, row)
	assert.Equal(t, []float32{10, 23, 11, 24, 12, 25}, tensors.MustCopyFlatData[float32](out))

	// Transposed output.
	base := tensors.FromShape(shapes.Make(dtypes.Int32, 2, 3))
	outT := base.Transpose(1, 0)
	ints := tensors.FromFlatDataAndDimensions([]int32{1, 2, 3, 4, 5, 6}, 3, 2)
	backend.Kernels().ArrayScalar(kernels.OpTypeMultiply).Call(ints, scalar.Int(10), outT)
	assert.Equal(t, []int32{10, 20, 30, 40, 50, 60}, tensors.MustCopyFlatData[int32](outT))
	assert.Equal(t, []int32{10, 30, 50, 20, 40, 60}, tensors.MustCopyFlatData[int32](base))

	// Empty tensors are a no-op.
	empty := tensors.FromShape(shapes.Make(dtypes.Int8, 0, 3))
	out = backend.Apply(kernels.OpTypeAdd, empty, empty)
	assert.Equal(t, 0, out.Size())
}

func TestKernels_Parallel(t *testing.T) {
	const size = 100_003
	a := make([]int64, size)
	b := make([]int64, size)
	for ii := range size {
		a[ii] = int64(ii*7 - size)
		b[ii] = int64(ii%13 + 1)
	}
	x1 := tensors.FromFlatDataAndDimensions(a, size)
	x2 := tensors.FromFlatDataAndDimensions(b, size)
	for _, p := range []string{"parallelism=0", "parallelism=3,min_chunk=1000", "parallelism=-1,min_chunk=100"} {
		b2 := MustNew(p)
		got := tensors.MustCopyFlatData[int64](b2.Apply(kernels.OpTypeFloorDivide, x1, x2))
		for ii := range size {
			require.Equalf(t, floorDivideInt64(a[ii], b[ii]), got[ii], "config %q, index %d", p, ii)
		}

		// Non-contiguous path: a column of a transposed matrix.
		m := tensors.FromFlatDataAndDimensions(a[:100_000], 1000, 100).Transpose(1, 0)
		gotT := tensors.MustCopyFlatData[int64](b2.Apply(kernels.OpTypeSubtract, m, scalar.Int(1)))
		wantT := tensors.MustCopyFlatData[int64](m)
		for ii := range wantT {
			wantT[ii]--
		}
		require.Equal(t, wantT, gotT)
	}
}

func TestKernels_ContractViolations(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int32{1, 2, 3}, 3)
	add := backend.Kernels().Binary(kernels.OpTypeAdd)

	// Devices.
	other := x.OnDevice(devices.Device{Backend: BackendName, Num: 1})
	require.Panics(t, func() { add.Call(x, other, tensors.FromShape(x.Shape())) })
	require.Panics(t, func() { add.Call(x, x, tensors.FromShape(x.Shape()).OnDevice(other.Device())) })

	b1 := MustNew("device=1")
	out := tensors.FromShape(x.Shape()).OnDevice(b1.Device())
	require.Panics(t, func() { b1.Kernels().Binary(kernels.OpTypeAdd).Call(x, x, out) })
	b1.Kernels().Binary(kernels.OpTypeAdd).Call(other, other, out)
	assert.Equal(t, []int32{2, 4, 6}, tensors.MustCopyFlatData[int32](out))

	// Dimensions.
	require.Panics(t, func() { add.Call(x, tensors.FromFlatDataAndDimensions([]int32{1, 2}, 2), tensors.FromShape(x.Shape())) })
	require.Panics(t, func() { add.Call(x, x, tensors.FromShape(shapes.Make(dtypes.Int32, 1, 3))) })

	// Output with broadcast axes would write the same element more than once.
	broadcastOut := tensors.FromShape(shapes.Make(dtypes.Int32, 1)).BroadcastTo(3)
	require.Panics(t, func() { add.Call(x, x, broadcastOut) })
}

func TestCastTo(t *testing.T) {
	x := tensors.FromFlatDataAndDimensions([]int16{1, -2}, 2)
	assert.Same(t, x, castTo(x, dtypes.Int16))
	converted := castTo(x, dtypes.Float64)
	assert.Equal(t, []float64{1, -2}, tensors.MustCopyFlatData[float64](converted))
	assert.Equal(t, []int16{1, -2}, tensors.MustCopyFlatData[int16](x), "input must not be modified")
}
