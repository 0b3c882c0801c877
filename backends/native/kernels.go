// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"slices"

	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// kernel holds what is common to the three variants of an operation's kernel.
type kernel struct {
	backend *Backend
	op      kernels.OpType
	impls   *dtypes.Map[opImpl]
}

// prepare checks the operands and returns the implementation for the output's dtype.
//
// The devices are checked first. Then the output must be writable element by element (no broadcast
// axes), and the tensor inputs must have the output's dimensions.
func (k *kernel) prepare(out *tensors.Tensor, inputs ...*tensors.Tensor) opImpl {
	residents := make([]devices.Resident, 0, len(inputs)+1)
	for _, input := range inputs {
		residents = append(residents, input)
	}
	residents = append(residents, out)
	k.backend.device.CheckCompatible(residents...)

	if out.HasBroadcastAxes() {
		exceptions.Panicf("%s: output %s has broadcast axes, it cannot be written element-wise", k.op, out)
	}
	for ii, input := range inputs {
		if !slices.Equal(input.Shape().Dimensions, out.Shape().Dimensions) {
			exceptions.Panicf("%s: input #%d %s doesn't have the dimensions of the output %s", k.op, ii, input, out)
		}
	}
	return k.impls.Get(out.DType())
}

// castTo returns t converted to dtype. If t already has the dtype, t itself is returned.
func castTo(t *tensors.Tensor, dtype dtypes.DType) *tensors.Tensor {
	if t.DType() != dtype && klog.V(3).Enabled() {
		klog.Infof("casting %s to %s", t, dtype)
	}
	return t.AsType(dtype)
}

type binaryKernel struct{ kernel }

// Call implements kernels.BinaryKernel.
func (k *binaryKernel) Call(x1, x2, out *tensors.Tensor) {
	impl := k.prepare(out, x1, x2)
	dtype := out.DType()
	impl.binary(k.backend, castTo(x1, dtype), castTo(x2, dtype), out)
}

type arrayScalarKernel struct{ kernel }

// Call implements kernels.ArrayScalarKernel.
func (k *arrayScalarKernel) Call(x1 *tensors.Tensor, x2 scalar.Scalar, out *tensors.Tensor) {
	impl := k.prepare(out, x1)
	impl.arrayScalar(k.backend, castTo(x1, out.DType()), x2, out)
}

type scalarArrayKernel struct{ kernel }

// Call implements kernels.ScalarArrayKernel.
func (k *scalarArrayKernel) Call(x1 scalar.Scalar, x2 *tensors.Tensor, out *tensors.Tensor) {
	impl := k.prepare(out, x2)
	impl.scalarArray(k.backend, x1, castTo(x2, out.DType()), out)
}

var (
	_ kernels.BinaryKernel      = (*binaryKernel)(nil)
	_ kernels.ArrayScalarKernel = (*arrayScalarKernel)(nil)
	_ kernels.ScalarArrayKernel = (*scalarArrayKernel)(nil)
)
