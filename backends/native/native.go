// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package native implements a portable CPU backend of element-wise binary kernels, written in pure Go.
//
// It supports Add, Subtract, Multiply, Divide, FloorDivide, BitwiseAnd, BitwiseOr and BitwiseXor over
// the dtypes Int8, Int16, Int32, Int64, Uint8, Float16, Float32 and Float64. The bitwise operations
// only accept integer dtypes.
//
// The output tensor's dtype selects the execution type: inputs of other dtypes are converted first.
// Float16 values are computed in float32.
//
// Integer division (Divide and FloorDivide) by zero returns 0.
package native

import (
	"fmt"
	"sync"

	"github.com/gomlx/eltwise/backends"
	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/internal/workerspool"
	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// BackendName to be used in ELTWISE_BACKEND to specify this backend.
const BackendName = "native"

// Registers New() as the default constructor for "native" backend.
func init() {
	backends.Register(BackendName, New)
}

// New constructs a new native Backend, see ParseConfig for the configuration options.
func New(config string) (backends.Backend, error) {
	return NewBackend(config)
}

// NewBackend constructs a new native Backend, and returns the concrete type.
func NewBackend(config string) (*Backend, error) {
	c, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(c), nil
}

// NewWithConfig constructs a new native Backend from an already parsed Config.
func NewWithConfig(c Config) *Backend {
	b := &Backend{
		config:  c,
		device:  devices.Device{Backend: BackendName, Num: c.DeviceNum},
		workers: workerspool.NewWithParallelism(c.Parallelism),
		kernels: kernels.NewRegistry(BackendName),
	}
	b.registerKernels()
	klog.V(1).Infof("created %s", b.Description())
	return b
}

// MustNew constructs a new native Backend, and panics on error.
func MustNew(config string) *Backend {
	return must.M1(NewBackend(config))
}

var (
	defaultBackend     *Backend
	defaultBackendOnce sync.Once
)

// Default returns a shared native Backend with the default configuration.
func Default() *Backend {
	defaultBackendOnce.Do(func() {
		defaultBackend = NewWithConfig(DefaultConfig())
	})
	return defaultBackend
}

// Backend implements the backends.Backend interface.
type Backend struct {
	config  Config
	device  devices.Device
	workers *workerspool.Pool
	kernels *kernels.Registry
}

// Compile-time check that native.Backend implements backends.Backend.
var _ backends.Backend = &Backend{}

// Name returns the short name of the backend.
func (b *Backend) Name() string { return BackendName }

// String implements fmt.Stringer.
func (b *Backend) String() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	return fmt.Sprintf("Native Go CPU backend (device %s, parallelism=%d, min_chunk=%d)",
		b.device, b.config.Parallelism, b.config.MinChunk)
}

// Config returns the configuration of the backend.
func (b *Backend) Config() Config { return b.config }

// Device implements backends.Backend.
func (b *Backend) Device() devices.Device { return b.device }

// Kernels implements backends.Backend.
func (b *Backend) Kernels() *kernels.Registry { return b.kernels }

// Finalize implements backends.Backend. The native backend holds no resources.
func (b *Backend) Finalize() {}

// parallelFor calls fn over disjoint ranges covering [0, n), possibly in parallel.
func (b *Backend) parallelFor(n int, fn func(start, end int)) {
	b.workers.RunChunks(n, b.config.MinChunk, fn)
}

// Apply executes op on x1 and x2, each either a *tensors.Tensor or a scalar.Scalar, and returns a
// new tensor with the result, on the backend's device.
//
// The output has the dtype and dimensions of the tensor operand (of x1 if both are tensors).
// It panics if op has no kernel for the combination of operands.
func (b *Backend) Apply(op kernels.OpType, x1, x2 any) *tensors.Tensor {
	switch lhs := x1.(type) {
	case *tensors.Tensor:
		out := b.newOutputLike(lhs)
		switch rhs := x2.(type) {
		case *tensors.Tensor:
			b.kernels.Binary(op).Call(lhs, rhs, out)
		case scalar.Scalar:
			b.kernels.ArrayScalar(op).Call(lhs, rhs, out)
		default:
			exceptions.Panicf("%s: unsupported second operand type %T", op, x2)
		}
		return out
	case scalar.Scalar:
		rhs, ok := x2.(*tensors.Tensor)
		if !ok {
			exceptions.Panicf("%s: at least one operand must be a tensor, got %T and %T", op, x1, x2)
		}
		out := b.newOutputLike(rhs)
		b.kernels.ScalarArray(op).Call(lhs, rhs, out)
		return out
	}
	exceptions.Panicf("%s: unsupported first operand type %T", op, x1)
	return nil
}

// newOutputLike allocates a zero tensor with the dtype and dimensions of t, on the backend's device.
func (b *Backend) newOutputLike(t *tensors.Tensor) *tensors.Tensor {
	return tensors.FromShape(t.Shape()).OnDevice(b.device)
}
