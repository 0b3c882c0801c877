// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s := Make(dtypes.Int32, 2, 3)
	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, 24, s.Memory())
	assert.Equal(t, "(Int32)[2 3]", s.String())
	assert.True(t, s.Equal(Make(dtypes.Int32, 2, 3)))
	assert.False(t, s.Equal(Make(dtypes.Float32, 2, 3)))
	assert.True(t, s.EqualDimensions(Make(dtypes.Float32, 2, 3)))
	assert.True(t, s.WithDType(dtypes.Float16).Equal(Make(dtypes.Float16, 2, 3)))

	scalar := Make(dtypes.Float64)
	assert.True(t, scalar.IsScalar())
	assert.Equal(t, 1, scalar.Size())
	assert.Equal(t, "(Float64)", scalar.String())

	assert.False(t, Shape{}.Ok())
	assert.Equal(t, 0, Make(dtypes.Uint8, 3, 0).Size())
	require.Panics(t, func() { Make(dtypes.Uint8, -1) })
}

func TestStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Make(dtypes.Float32, 2, 3, 4).Strides())
	assert.Nil(t, Make(dtypes.Float32).Strides())
}

func TestIter(t *testing.T) {
	s := Make(dtypes.Int8, 2, 3)
	var got [][]int
	indices := make([]int, s.Rank())
	for flatIdx, axesIndices := range s.Iter() {
		require.Equal(t, len(got), flatIdx)
		got = append(got, append([]int(nil), axesIndices...))
		s.UnflattenIndex(flatIdx, indices)
		require.Equal(t, axesIndices, indices)
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)

	count := 0
	for range Make(dtypes.Int8).Iter() {
		count++
	}
	assert.Equal(t, 1, count, "scalars iterate exactly once")
}
