// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/exceptions"
)

// SupportedVariants lists, for each operation, the variants the native backend registers kernels for.
//
// Every operation accepts a scalar on the right. Only the non-commutative divisions also accept a
// scalar on the left.
var SupportedVariants = map[kernels.OpType][]kernels.Variant{
	kernels.OpTypeAdd:         {kernels.VariantArrayArray, kernels.VariantArrayScalar},
	kernels.OpTypeSubtract:    {kernels.VariantArrayArray, kernels.VariantArrayScalar},
	kernels.OpTypeMultiply:    {kernels.VariantArrayArray, kernels.VariantArrayScalar},
	kernels.OpTypeDivide:      {kernels.VariantArrayArray, kernels.VariantArrayScalar, kernels.VariantScalarArray},
	kernels.OpTypeFloorDivide: {kernels.VariantArrayArray, kernels.VariantArrayScalar, kernels.VariantScalarArray},
	kernels.OpTypeBitwiseAnd:  {kernels.VariantArrayArray, kernels.VariantArrayScalar},
	kernels.OpTypeBitwiseOr:   {kernels.VariantArrayArray, kernels.VariantArrayScalar},
	kernels.OpTypeBitwiseXor:  {kernels.VariantArrayArray, kernels.VariantArrayScalar},
}

// registerKernels populates the backend's registry with one kernel per supported operation and variant,
// and freezes it.
func (b *Backend) registerKernels() {
	for _, op := range kernels.Ops() {
		impls, found := opDTypeMaps[op]
		if !found {
			exceptions.Panicf("native backend: no implementations for %s", op)
		}
		k := kernel{backend: b, op: op, impls: impls}
		for _, variant := range SupportedVariants[op] {
			switch variant {
			case kernels.VariantArrayArray:
				b.kernels.Register(op, variant, &binaryKernel{k})
			case kernels.VariantArrayScalar:
				b.kernels.Register(op, variant, &arrayScalarKernel{k})
			case kernels.VariantScalarArray:
				b.kernels.Register(op, variant, &scalarArrayKernel{k})
			}
		}
	}
	b.kernels.Freeze()
}
