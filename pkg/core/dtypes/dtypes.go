// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes is the catalog of element types supported by the element-wise kernels.
//
// It includes the DType enum, the acceptance categories operators declare (All, Numeric, Integral),
// the constraint interfaces used with generics, and Map / PairMap: typed tables that resolve a runtime
// DType into a function instantiated for the corresponding Go type.
package dtypes

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if dtype >= 0 && dtype < MaxDType && dtypeNames[dtype] != "" {
		return dtypeNames[dtype]
	}
	return fmt.Sprintf("DType(%d)", int32(dtype))
}

// Parse returns the DType for the given name or alias (e.g.: "float32", "F32", "int8").
func Parse(name string) (DType, error) {
	dtype, found := MapOfNames[name]
	if !found {
		dtype, found = MapOfNames[strings.ToLower(name)]
	}
	if !found || dtype == InvalidDType {
		return InvalidDType, errors.Errorf("unknown dtype %q", name)
	}
	return dtype, nil
}

// All returns all the valid dtypes of the catalog, in enum order.
func All() []DType {
	return []DType{Int8, Int16, Int32, Int64, Uint8, Float16, Float32, Float64}
}

// IsSupported returns whether dtype is part of the catalog.
func (dtype DType) IsSupported() bool {
	switch dtype {
	case Int8, Int16, Int32, Int64, Uint8, Float16, Float32, Float64:
		return true
	}
	return false
}

// Size returns the number of bytes for the given DType.
func (dtype DType) Size() int {
	switch dtype {
	case Int8, Uint8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	}
	panicf("unknown dtype %s in DType.Size", dtype)
	return 0
}

// Bits returns the number of bits for the given DType.
func (dtype DType) Bits() int {
	return dtype.Size() * 8
}

// IsFloat returns whether dtype is a floating point type, including Float16.
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == Float32 || dtype == Float64
}

// IsHalf returns whether dtype is the 16 bits Float16, which is computed by promoting to Float32.
func (dtype DType) IsHalf() bool {
	return dtype == Float16
}

// IsInt returns whether dtype is an integral type, signed or unsigned.
func (dtype DType) IsInt() bool {
	return dtype == Int8 || dtype == Int16 || dtype == Int32 || dtype == Int64 || dtype == Uint8
}

// IsUnsigned returns whether dtype is an unsigned integer.
func (dtype DType) IsUnsigned() bool {
	return dtype == Uint8
}

// IsSigned returns whether dtype holds signed values: signed integers and all floats.
func (dtype DType) IsSigned() bool {
	return dtype.IsSupported() && !dtype.IsUnsigned()
}

// FromGenericsType returns the DType enum for the given Go type.
func FromGenericsType[T Supported]() DType {
	var t T
	switch any(t).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return InvalidDType
}

// Supported lists the Go types of the catalog. Used as traits for generics.
type Supported interface {
	int8 | int16 | int32 | int64 | uint8 | float16.Float16 | float32 | float64
}

// PODNumber are the plain-old-data Go numeric types of the catalog: all but float16.Float16, which
// is not a native Go number and must be promoted to float32 for arithmetic.
type PODNumber interface {
	int8 | int16 | int32 | int64 | uint8 | float32 | float64
}

// PODInteger are the integral types of the catalog.
type PODInteger interface {
	int8 | int16 | int32 | int64 | uint8
}

// PODSignedInteger are the signed integral types of the catalog.
type PODSignedInteger interface {
	int8 | int16 | int32 | int64
}

// PODFloat are the native Go float types of the catalog.
type PODFloat interface {
	float32 | float64
}
