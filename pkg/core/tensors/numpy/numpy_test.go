// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package numpy

import (
	"bytes"
	"encoding/binary"
	"path"
	"testing"

	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestNpy(t *testing.T) {
	values := []*tensors.Tensor{
		tensors.FromFlatDataAndDimensions([]int8{-1, 2, -3}, 3),
		tensors.FromFlatDataAndDimensions([]int32{1, 2, 3, 4, 5, 6}, 2, 3),
		tensors.FromFlatDataAndDimensions([]float16.Float16{float16.Fromfloat32(1.5)}, 1, 1),
		tensors.FromScalar(float64(3.25)),
		tensors.FromFlatDataAndDimensions([]uint8{7, 8, 9, 10}, 2, 2).Transpose(1, 0),
	}
	dir := t.TempDir()
	for ii, want := range values {
		var buf bytes.Buffer
		require.NoError(t, ToNpyWriter(want, &buf))
		assert.Zero(t, (buf.Len()-want.Shape().Memory())%64, "header must be aligned to 64 bytes")
		got, err := FromNpyReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, want.Shape().Dimensions, got.Shape().Dimensions)
		assert.Equal(t, want.FormatElements(-1), got.FormatElements(-1))

		filePath := path.Join(dir, "x.npy")
		require.NoErrorf(t, ToNpyFile(want, filePath), "value #%d", ii)
		got, err = FromNpyFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, want.DType(), got.DType())
		assert.Equal(t, want.FormatElements(-1), got.FormatElements(-1))
	}
}

// npyBytes builds a .npy content with the given header and data.
func npyBytes(header string, data any) []byte {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	_ = binary.Write(&buf, binary.LittleEndian, data)
	return buf.Bytes()
}

func TestFromNpyReader(t *testing.T) {
	// Fortran order: columns stored first.
	content := npyBytes("{'descr': '<i2', 'fortran_order': True, 'shape': (2, 3), }\n", []int16{1, 4, 2, 5, 3, 6})
	got, err := FromNpyReader(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got.Shape().Dimensions)
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6}, tensors.MustCopyFlatData[int16](got))

	// Rank-0 arrays read back as scalars, regardless of the order flag.
	for _, order := range []string{"False", "True"} {
		content = npyBytes("{'descr': '<f8', 'fortran_order': "+order+", 'shape': (), }\n", []float64{-0.5})
		got, err = FromNpyReader(bytes.NewReader(content))
		require.NoError(t, err)
		assert.Nil(t, got.Shape().Dimensions)
		assert.True(t, got.Shape().IsScalar())
		assert.Equal(t, -0.5, tensors.ToScalar[float64](got))
	}

	// Big-endian.
	var buf bytes.Buffer
	header := "{'descr': '>i4', 'fortran_order': False, 'shape': (2,), }\n"
	buf.WriteString(magic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	_ = binary.Write(&buf, binary.BigEndian, []int32{258, -1})
	got, err = FromNpyReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, dtypes.Int32, got.DType())
	assert.Equal(t, []int32{258, -1}, tensors.MustCopyFlatData[int32](got))

	// Errors.
	_, err = FromNpyReader(bytes.NewReader([]byte("not a npy file")))
	require.Error(t, err)
	_, err = FromNpyReader(bytes.NewReader(npyBytes("{'descr': '<c8', 'fortran_order': False, 'shape': (1,), }\n", []float32{0, 0})))
	require.Error(t, err)
	_, err = FromNpyReader(bytes.NewReader(npyBytes("{'descr': '<f4', 'fortran_order': False, 'shape': (3,), }\n", []float32{1})))
	require.Error(t, err, "truncated data")
}
