// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "github.com/gomlx/eltwise/pkg/core/dtypes"

// OpType is an enum of the element-wise binary operations a backend can register kernels for.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -transform=snake -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota
	OpTypeAdd
	OpTypeSubtract
	OpTypeMultiply
	OpTypeDivide
	OpTypeFloorDivide
	OpTypeBitwiseAnd
	OpTypeBitwiseOr
	OpTypeBitwiseXor

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)

// Category returns the dtypes accepted by the operation.
//
// Add, Multiply and Divide accept all dtypes, Subtract and FloorDivide accept the numeric ones,
// and the bitwise operations only the integral ones.
func (op OpType) Category() dtypes.Category {
	switch op {
	case OpTypeAdd, OpTypeMultiply, OpTypeDivide:
		return dtypes.CategoryAll
	case OpTypeSubtract, OpTypeFloorDivide:
		return dtypes.CategoryNumeric
	case OpTypeBitwiseAnd, OpTypeBitwiseOr, OpTypeBitwiseXor:
		return dtypes.CategoryIntegral
	}
	return dtypes.CategoryAll
}

// Ops returns all valid operations, in enum order.
func Ops() []OpType {
	ops := make([]OpType, 0, OpTypeLast-1)
	for op := OpTypeInvalid + 1; op < OpTypeLast; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Variant is the combination of operand kinds a kernel accepts.
type Variant int

const (
	// VariantArrayArray kernels take two tensors: BinaryKernel.
	VariantArrayArray Variant = iota

	// VariantArrayScalar kernels take a tensor and a scalar: ArrayScalarKernel.
	VariantArrayScalar

	// VariantScalarArray kernels take a scalar and a tensor: ScalarArrayKernel.
	VariantScalarArray
)

// Variants lists all variants.
var Variants = []Variant{VariantArrayArray, VariantArrayScalar, VariantScalarArray}

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantArrayArray:
		return "AA"
	case VariantArrayScalar:
		return "AS"
	case VariantScalarArray:
		return "SA"
	}
	return "InvalidVariant"
}

// Key identifies a kernel in a Registry.
type Key struct {
	Op      OpType
	Variant Variant
}

// String implements fmt.Stringer, e.g. "floor_divide/AS".
func (k Key) String() string {
	return k.Op.String() + "/" + k.Variant.String()
}
