// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"math"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Floor division rounds the quotient toward negative infinity: FloorDivide(-7, 2) = -4.
// Integer division by zero returns 0. Floating-point division by zero follows IEEE-754 and yields NaN.

// floorDivideSigned uses the truncated quotient and remainder, and subtracts one when the remainder
// is non-zero and its sign differs from the divisor's.
func floorDivideSigned[T constraints.Signed](x, y T) T {
	if y == 0 {
		return 0
	}
	quot, rem := x/y, x%y
	if rem != 0 && (rem < 0) != (y < 0) {
		quot--
	}
	return quot
}

// floorDivideInt8 is computed in int32.
func floorDivideInt8(x, y int8) int8 {
	return int8(floorDivideSigned(int32(x), int32(y)))
}

// floorDivideInt16 is computed in int32.
func floorDivideInt16(x, y int16) int16 {
	return int16(floorDivideSigned(int32(x), int32(y)))
}

func floorDivideInt32(x, y int32) int32 { return floorDivideSigned(x, y) }
func floorDivideInt64(x, y int64) int64 { return floorDivideSigned(x, y) }

// floorDivideUint8: for unsigned values the truncated quotient is already the floor.
func floorDivideUint8(x, y uint8) uint8 {
	if y == 0 {
		return 0
	}
	return x / y
}

// floorDivideFloat computes (x - fmod(x, y)) / y, minus one when the remainder and the
// divisor have opposite signs.
func floorDivideFloat[T float32 | float64](x, y T) T {
	rem := T(math.Mod(float64(x), float64(y)))
	div := (x - rem) / y
	if (rem < 0 && y > 0) || (rem > 0 && y < 0) {
		div--
	}
	return div
}

func floorDivideFloat32(x, y float32) float32 { return floorDivideFloat(x, y) }
func floorDivideFloat64(x, y float64) float64 { return floorDivideFloat(x, y) }

// floorDivideFloat16 is computed in float32.
func floorDivideFloat16(x, y float16.Float16) float16.Float16 {
	return float16.Fromfloat32(floorDivideFloat32(x.Float32(), y.Float32()))
}
