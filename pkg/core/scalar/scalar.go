// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scalar implements Scalar, a single value with a nominal numeric type that can be converted
// to any dtype of the catalog on demand.
package scalar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Kind is the nominal type of a Scalar.
type Kind int

const (
	// KindInt scalars hold an int64.
	KindInt Kind = iota

	// KindFloat scalars hold a float64.
	KindFloat
)

// Scalar is a single numeric value. The zero value is the integer 0.
type Scalar struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer Scalar.
func Int(v int64) Scalar { return Scalar{kind: KindInt, i: v} }

// Float returns a floating point Scalar.
func Float(v float64) Scalar { return Scalar{kind: KindFloat, f: v} }

// New creates a Scalar from any Go type of the catalog (or int): integers become KindInt,
// floats (including float16.Float16) become KindFloat.
func New[T dtypes.Supported | int](v T) Scalar {
	switch x := any(v).(type) {
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint8:
		return Int(int64(x))
	case float16.Float16:
		return Float(float64(x.Float32()))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	}
	return Scalar{}
}

// Parse a Scalar from its text representation: values with a decimal point, an exponent,
// or "inf"/"nan" are floats, everything else must be an integer.
func Parse(text string) (Scalar, error) {
	text = strings.TrimSpace(text)
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Scalar{}, errors.Wrapf(err, "failed to parse scalar %q", text)
	}
	return Float(f), nil
}

// Kind returns the nominal type of the scalar.
func (s Scalar) Kind() Kind { return s.kind }

// IsInt returns whether the scalar holds an integer.
func (s Scalar) IsInt() bool { return s.kind == KindInt }

// DType returns the nominal dtype of the scalar: Int64 or Float64.
func (s Scalar) DType() dtypes.DType {
	if s.kind == KindInt {
		return dtypes.Int64
	}
	return dtypes.Float64
}

// Int64 returns the value converted to int64. Floats are truncated toward zero.
func (s Scalar) Int64() int64 {
	if s.kind == KindInt {
		return s.i
	}
	return int64(s.f)
}

// Float64 returns the value converted to float64.
func (s Scalar) Float64() float64 {
	if s.kind == KindInt {
		return float64(s.i)
	}
	return s.f
}

// String implements fmt.Stringer.
func (s Scalar) String() string {
	if s.kind == KindInt {
		return strconv.FormatInt(s.i, 10)
	}
	return fmt.Sprintf("%g", s.f)
}

// ConvertTo converts the scalar to the Go type T, following Go's numeric conversion rules:
// floats converted to integers are truncated, integers converted to narrower integers wrap.
// Float16 values are converted through float32.
func ConvertTo[T dtypes.Supported](s Scalar) T {
	var zero T
	if _, isHalf := any(zero).(float16.Float16); isHalf {
		return any(float16.Fromfloat32(float32(s.Float64()))).(T)
	}
	if s.kind == KindInt {
		return T(s.i)
	}
	return T(s.f)
}
