// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

/***** File generated by ./internal/cmd/eltwise_dispatcher. Don't edit it directly. *****/

package tensors

import (
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/x448/float16"
)

func init() {
	// makeFlatDTypeMap
	makeFlatDTypeMap.Register(dtypes.Int8, makeFlatGeneric[int8])
	makeFlatDTypeMap.Register(dtypes.Int16, makeFlatGeneric[int16])
	makeFlatDTypeMap.Register(dtypes.Int32, makeFlatGeneric[int32])
	makeFlatDTypeMap.Register(dtypes.Int64, makeFlatGeneric[int64])
	makeFlatDTypeMap.Register(dtypes.Uint8, makeFlatGeneric[uint8])
	makeFlatDTypeMap.Register(dtypes.Float32, makeFlatGeneric[float32])
	makeFlatDTypeMap.Register(dtypes.Float64, makeFlatGeneric[float64])
	makeFlatDTypeMap.Register(dtypes.Float16, makeFlatGeneric[float16.Float16])

	// convertDTypePairMap
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Int8, convertGeneric[int8, int8])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Int16, convertGeneric[int8, int16])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Int32, convertGeneric[int8, int32])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Int64, convertGeneric[int8, int64])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Uint8, convertGeneric[int8, uint8])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Float32, convertGeneric[int8, float32])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Float64, convertGeneric[int8, float64])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Int8, convertGeneric[int16, int8])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Int16, convertGeneric[int16, int16])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Int32, convertGeneric[int16, int32])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Int64, convertGeneric[int16, int64])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Uint8, convertGeneric[int16, uint8])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Float32, convertGeneric[int16, float32])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Float64, convertGeneric[int16, float64])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Int8, convertGeneric[int32, int8])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Int16, convertGeneric[int32, int16])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Int32, convertGeneric[int32, int32])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Int64, convertGeneric[int32, int64])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Uint8, convertGeneric[int32, uint8])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Float32, convertGeneric[int32, float32])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Float64, convertGeneric[int32, float64])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Int8, convertGeneric[int64, int8])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Int16, convertGeneric[int64, int16])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Int32, convertGeneric[int64, int32])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Int64, convertGeneric[int64, int64])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Uint8, convertGeneric[int64, uint8])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Float32, convertGeneric[int64, float32])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Float64, convertGeneric[int64, float64])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Int8, convertGeneric[uint8, int8])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Int16, convertGeneric[uint8, int16])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Int32, convertGeneric[uint8, int32])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Int64, convertGeneric[uint8, int64])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Uint8, convertGeneric[uint8, uint8])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Float32, convertGeneric[uint8, float32])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Float64, convertGeneric[uint8, float64])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Int8, convertGeneric[float32, int8])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Int16, convertGeneric[float32, int16])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Int32, convertGeneric[float32, int32])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Int64, convertGeneric[float32, int64])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Uint8, convertGeneric[float32, uint8])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Float32, convertGeneric[float32, float32])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Float64, convertGeneric[float32, float64])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Int8, convertGeneric[float64, int8])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Int16, convertGeneric[float64, int16])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Int32, convertGeneric[float64, int32])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Int64, convertGeneric[float64, int64])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Uint8, convertGeneric[float64, uint8])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Float32, convertGeneric[float64, float32])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Float64, convertGeneric[float64, float64])
	convertDTypePairMap.Register(dtypes.Int8, dtypes.Float16, convertToFloat16[int8, float16.Float16])
	convertDTypePairMap.Register(dtypes.Int16, dtypes.Float16, convertToFloat16[int16, float16.Float16])
	convertDTypePairMap.Register(dtypes.Int32, dtypes.Float16, convertToFloat16[int32, float16.Float16])
	convertDTypePairMap.Register(dtypes.Int64, dtypes.Float16, convertToFloat16[int64, float16.Float16])
	convertDTypePairMap.Register(dtypes.Uint8, dtypes.Float16, convertToFloat16[uint8, float16.Float16])
	convertDTypePairMap.Register(dtypes.Float32, dtypes.Float16, convertToFloat16[float32, float16.Float16])
	convertDTypePairMap.Register(dtypes.Float64, dtypes.Float16, convertToFloat16[float64, float16.Float16])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Int8, convertFromFloat16[float16.Float16, int8])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Int16, convertFromFloat16[float16.Float16, int16])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Int32, convertFromFloat16[float16.Float16, int32])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Int64, convertFromFloat16[float16.Float16, int64])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Uint8, convertFromFloat16[float16.Float16, uint8])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Float32, convertFromFloat16[float16.Float16, float32])
	convertDTypePairMap.Register(dtypes.Float16, dtypes.Float64, convertFromFloat16[float16.Float16, float64])
}
