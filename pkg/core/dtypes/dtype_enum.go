// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

// DType is an enum that represents the element type of a tensor or a scalar.
//
// Only the types the native kernels know how to execute are listed. The values are kept
// aligned with the XLA/PJRT numbering, so they can be exchanged with other GoMLX components.
type DType int32

const (
	// InvalidDType is the zero value, and it is never accepted by any kernel.
	InvalidDType DType = 0

	// Int8 is a signed 8-bit integer.
	Int8 DType = 2

	// Int16 is a signed 16-bit integer.
	Int16 DType = 3

	// Int32 is a signed 32-bit integer.
	Int32 DType = 4

	// Int64 is a signed 64-bit integer.
	Int64 DType = 5

	// Uint8 is an unsigned 8-bit integer.
	Uint8 DType = 6

	// Float16 is the IEEE 754 half-precision float, represented in Go by float16.Float16.
	Float16 DType = 10

	// Float32 is the IEEE 754 single-precision float.
	Float32 DType = 11

	// Float64 is the IEEE 754 double-precision float.
	Float64 DType = 12

	// MaxDType is one past the largest DType value, used to size dispatch tables.
	MaxDType DType = 13
)

// Aliases from the PJRT C API.
const (
	S8  = Int8
	S16 = Int16
	S32 = Int32
	S64 = Int64
	U8  = Uint8
	F16 = Float16
	F32 = Float32
	F64 = Float64
)

// MapOfNames to their dtypes. It includes also aliases to the various dtypes.
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Int8":         Int8,
	"S8":           Int8,
	"Int16":        Int16,
	"S16":          Int16,
	"Int32":        Int32,
	"S32":          Int32,
	"Int64":        Int64,
	"S64":          Int64,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Float16":      Float16,
	"F16":          Float16,
	"Half":         Float16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
}

var dtypeNames = [MaxDType]string{
	InvalidDType: "InvalidDType",
	Int8:         "Int8",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	Uint8:        "Uint8",
	Float16:      "Float16",
	Float32:      "Float32",
	Float64:      "Float64",
}
