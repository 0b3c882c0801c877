// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package kernels defines the element-wise binary kernels a backend implements, and the Registry
// where they are looked up by operation and variant.
//
// Kernels are stateless: they write the result of the operation into the output tensor given by the
// caller. The output's dtype is the execution type: inputs with a different dtype are converted first.
// Contract violations (incompatible devices, unsupported dtypes, mismatched dimensions) panic,
// see github.com/gomlx/exceptions.
package kernels

import (
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/tensors"
)

// BinaryKernel computes out[i] = op(x1[i], x2[i]).
type BinaryKernel interface {
	Call(x1, x2, out *tensors.Tensor)
}

// ArrayScalarKernel computes out[i] = op(x1[i], x2).
type ArrayScalarKernel interface {
	Call(x1 *tensors.Tensor, x2 scalar.Scalar, out *tensors.Tensor)
}

// ScalarArrayKernel computes out[i] = op(x1, x2[i]).
type ScalarArrayKernel interface {
	Call(x1 scalar.Scalar, x2 *tensors.Tensor, out *tensors.Tensor)
}

// implementsVariant returns whether kernel implements the interface required by variant.
func implementsVariant(variant Variant, kernel any) bool {
	switch variant {
	case VariantArrayArray:
		_, ok := kernel.(BinaryKernel)
		return ok
	case VariantArrayScalar:
		_, ok := kernel.(ArrayScalarKernel)
		return ok
	case VariantScalarArray:
		_, ok := kernel.(ScalarArrayKernel)
		return ok
	}
	return false
}
