// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

/***** File generated by ./internal/cmd/eltwise_dispatcher. Don't edit it directly. *****/

package native

import (
	"github.com/gomlx/eltwise/pkg/core/dtypes"
)

func init() {
	// addDTypeMap
	addDTypeMap.Register(dtypes.Int8, newOpImpl(addOp[int8]))
	addDTypeMap.Register(dtypes.Int16, newOpImpl(addOp[int16]))
	addDTypeMap.Register(dtypes.Int32, newOpImpl(addOp[int32]))
	addDTypeMap.Register(dtypes.Int64, newOpImpl(addOp[int64]))
	addDTypeMap.Register(dtypes.Uint8, newOpImpl(addOp[uint8]))
	addDTypeMap.Register(dtypes.Float32, newOpImpl(addOp[float32]))
	addDTypeMap.Register(dtypes.Float64, newOpImpl(addOp[float64]))
	addDTypeMap.Register(dtypes.Float16, newOpImpl(promoteFloat16(addOp[float32])))

	// subtractDTypeMap
	subtractDTypeMap.Register(dtypes.Int8, newOpImpl(subtractOp[int8]))
	subtractDTypeMap.Register(dtypes.Int16, newOpImpl(subtractOp[int16]))
	subtractDTypeMap.Register(dtypes.Int32, newOpImpl(subtractOp[int32]))
	subtractDTypeMap.Register(dtypes.Int64, newOpImpl(subtractOp[int64]))
	subtractDTypeMap.Register(dtypes.Uint8, newOpImpl(subtractOp[uint8]))
	subtractDTypeMap.Register(dtypes.Float32, newOpImpl(subtractOp[float32]))
	subtractDTypeMap.Register(dtypes.Float64, newOpImpl(subtractOp[float64]))
	subtractDTypeMap.Register(dtypes.Float16, newOpImpl(promoteFloat16(subtractOp[float32])))

	// multiplyDTypeMap
	multiplyDTypeMap.Register(dtypes.Int8, newOpImpl(multiplyOp[int8]))
	multiplyDTypeMap.Register(dtypes.Int16, newOpImpl(multiplyOp[int16]))
	multiplyDTypeMap.Register(dtypes.Int32, newOpImpl(multiplyOp[int32]))
	multiplyDTypeMap.Register(dtypes.Int64, newOpImpl(multiplyOp[int64]))
	multiplyDTypeMap.Register(dtypes.Uint8, newOpImpl(multiplyOp[uint8]))
	multiplyDTypeMap.Register(dtypes.Float32, newOpImpl(multiplyOp[float32]))
	multiplyDTypeMap.Register(dtypes.Float64, newOpImpl(multiplyOp[float64]))
	multiplyDTypeMap.Register(dtypes.Float16, newOpImpl(promoteFloat16(multiplyOp[float32])))

	// divideDTypeMap
	divideDTypeMap.Register(dtypes.Int8, newOpImpl(divideIntOp[int8]))
	divideDTypeMap.Register(dtypes.Int16, newOpImpl(divideIntOp[int16]))
	divideDTypeMap.Register(dtypes.Int32, newOpImpl(divideIntOp[int32]))
	divideDTypeMap.Register(dtypes.Int64, newOpImpl(divideIntOp[int64]))
	divideDTypeMap.Register(dtypes.Uint8, newOpImpl(divideIntOp[uint8]))
	divideDTypeMap.Register(dtypes.Float32, newOpImpl(divideFloatOp[float32]))
	divideDTypeMap.Register(dtypes.Float64, newOpImpl(divideFloatOp[float64]))
	divideDTypeMap.Register(dtypes.Float16, newOpImpl(promoteFloat16(divideFloatOp[float32])))

	// floorDivideDTypeMap
	floorDivideDTypeMap.Register(dtypes.Int8, newOpImpl(floorDivideInt8))
	floorDivideDTypeMap.Register(dtypes.Int16, newOpImpl(floorDivideInt16))
	floorDivideDTypeMap.Register(dtypes.Int32, newOpImpl(floorDivideInt32))
	floorDivideDTypeMap.Register(dtypes.Int64, newOpImpl(floorDivideInt64))
	floorDivideDTypeMap.Register(dtypes.Uint8, newOpImpl(floorDivideUint8))
	floorDivideDTypeMap.Register(dtypes.Float32, newOpImpl(floorDivideFloat32))
	floorDivideDTypeMap.Register(dtypes.Float64, newOpImpl(floorDivideFloat64))
	floorDivideDTypeMap.Register(dtypes.Float16, newOpImpl(floorDivideFloat16))

	// bitwiseAndDTypeMap
	bitwiseAndDTypeMap.Register(dtypes.Int8, newOpImpl(bitwiseAndOp[int8]))
	bitwiseAndDTypeMap.Register(dtypes.Int16, newOpImpl(bitwiseAndOp[int16]))
	bitwiseAndDTypeMap.Register(dtypes.Int32, newOpImpl(bitwiseAndOp[int32]))
	bitwiseAndDTypeMap.Register(dtypes.Int64, newOpImpl(bitwiseAndOp[int64]))
	bitwiseAndDTypeMap.Register(dtypes.Uint8, newOpImpl(bitwiseAndOp[uint8]))

	// bitwiseOrDTypeMap
	bitwiseOrDTypeMap.Register(dtypes.Int8, newOpImpl(bitwiseOrOp[int8]))
	bitwiseOrDTypeMap.Register(dtypes.Int16, newOpImpl(bitwiseOrOp[int16]))
	bitwiseOrDTypeMap.Register(dtypes.Int32, newOpImpl(bitwiseOrOp[int32]))
	bitwiseOrDTypeMap.Register(dtypes.Int64, newOpImpl(bitwiseOrOp[int64]))
	bitwiseOrDTypeMap.Register(dtypes.Uint8, newOpImpl(bitwiseOrOp[uint8]))

	// bitwiseXorDTypeMap
	bitwiseXorDTypeMap.Register(dtypes.Int8, newOpImpl(bitwiseXorOp[int8]))
	bitwiseXorDTypeMap.Register(dtypes.Int16, newOpImpl(bitwiseXorOp[int16]))
	bitwiseXorDTypeMap.Register(dtypes.Int32, newOpImpl(bitwiseXorOp[int32]))
	bitwiseXorDTypeMap.Register(dtypes.Int64, newOpImpl(bitwiseXorOp[int64]))
	bitwiseXorDTypeMap.Register(dtypes.Uint8, newOpImpl(bitwiseXorOp[uint8]))
}
