// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/x448/float16"
)

//go:generate go run ../../internal/cmd/eltwise_dispatcher -package=native

// Per-operation tables of implementations, one per dtype accepted by the operation.
// They are populated by gen_register_dtypes.go.
var (
	addDTypeMap         = dtypes.NewMap[opImpl]("Add", kernels.OpTypeAdd.Category())
	subtractDTypeMap    = dtypes.NewMap[opImpl]("Subtract", kernels.OpTypeSubtract.Category())
	multiplyDTypeMap    = dtypes.NewMap[opImpl]("Multiply", kernels.OpTypeMultiply.Category())
	divideDTypeMap      = dtypes.NewMap[opImpl]("Divide", kernels.OpTypeDivide.Category())
	floorDivideDTypeMap = dtypes.NewMap[opImpl]("FloorDivide", kernels.OpTypeFloorDivide.Category())
	bitwiseAndDTypeMap  = dtypes.NewMap[opImpl]("BitwiseAnd", kernels.OpTypeBitwiseAnd.Category())
	bitwiseOrDTypeMap   = dtypes.NewMap[opImpl]("BitwiseOr", kernels.OpTypeBitwiseOr.Category())
	bitwiseXorDTypeMap  = dtypes.NewMap[opImpl]("BitwiseXor", kernels.OpTypeBitwiseXor.Category())
)

// opDTypeMaps maps each operation to its table of implementations.
var opDTypeMaps = map[kernels.OpType]*dtypes.Map[opImpl]{
	kernels.OpTypeAdd:         addDTypeMap,
	kernels.OpTypeSubtract:    subtractDTypeMap,
	kernels.OpTypeMultiply:    multiplyDTypeMap,
	kernels.OpTypeDivide:      divideDTypeMap,
	kernels.OpTypeFloorDivide: floorDivideDTypeMap,
	kernels.OpTypeBitwiseAnd:  bitwiseAndDTypeMap,
	kernels.OpTypeBitwiseOr:   bitwiseOrDTypeMap,
	kernels.OpTypeBitwiseXor:  bitwiseXorDTypeMap,
}

func addOp[T dtypes.PODNumber](a, b T) T      { return a + b }
func subtractOp[T dtypes.PODNumber](a, b T) T { return a - b }
func multiplyOp[T dtypes.PODNumber](a, b T) T { return a * b }

// divideIntOp returns 0 when dividing by zero, instead of panicking.
func divideIntOp[T dtypes.PODInteger](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}

// divideFloatOp follows IEEE-754: x/0 is ±Inf, and 0/0 is NaN.
func divideFloatOp[T dtypes.PODFloat](a, b T) T { return a / b }

func bitwiseAndOp[T dtypes.PODInteger](a, b T) T { return a & b }
func bitwiseOrOp[T dtypes.PODInteger](a, b T) T  { return a | b }
func bitwiseXorOp[T dtypes.PODInteger](a, b T) T { return a ^ b }

// promoteFloat16 converts a float32 operation into a Float16 one: operands are promoted to float32,
// and the result is narrowed back to Float16.
func promoteFloat16(op func(a, b float32) float32) func(a, b float16.Float16) float16.Float16 {
	return func(a, b float16.Float16) float16.Float16 {
		return float16.Fromfloat32(op(a.Float32(), b.Float32()))
	}
}
