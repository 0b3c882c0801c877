// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"cmp"
	"slices"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Registry maps a Key (operation and variant) to its kernel.
//
// It is populated once, while its backend is constructed, and then frozen. After Freeze it's
// read-only and safe for concurrent use without locks.
type Registry struct {
	name    string
	kernels map[Key]any
	frozen  bool
}

// NewRegistry creates an empty Registry. The name is used in error messages and logs.
func NewRegistry(name string) *Registry {
	return &Registry{name: name, kernels: make(map[Key]any)}
}

// Name of the registry.
func (r *Registry) Name() string { return r.name }

// Register the kernel for the given op and variant.
//
// It panics if the key is already registered, if the kernel doesn't implement the interface
// of the variant (BinaryKernel, ArrayScalarKernel or ScalarArrayKernel), or if the registry is frozen.
func (r *Registry) Register(op OpType, variant Variant, kernel any) {
	key := Key{Op: op, Variant: variant}
	if r.frozen {
		exceptions.Panicf("%s: cannot register kernel %s, registry is frozen", r.name, key)
	}
	if !op.IsAOpType() || op == OpTypeInvalid || op == OpTypeLast {
		exceptions.Panicf("%s: cannot register kernel for invalid op %s", r.name, op)
	}
	if _, found := r.kernels[key]; found {
		exceptions.Panicf("%s: kernel %s registered more than once", r.name, key)
	}
	if !implementsVariant(variant, kernel) {
		exceptions.Panicf("%s: kernel %s of type %T doesn't implement the interface for variant %s",
			r.name, key, kernel, variant)
	}
	r.kernels[key] = kernel
	klog.V(2).Infof("%s: registered kernel %s", r.name, key)
}

// Freeze the registry: further calls to Register panic.
func (r *Registry) Freeze() {
	r.frozen = true
	klog.V(2).Infof("%s: frozen with %d kernels", r.name, len(r.kernels))
}

// IsFrozen returns whether Freeze was called.
func (r *Registry) IsFrozen() bool { return r.frozen }

// Has returns whether a kernel is registered for op and variant.
func (r *Registry) Has(op OpType, variant Variant) bool {
	_, found := r.kernels[Key{Op: op, Variant: variant}]
	return found
}

// Lookup returns the kernel registered for op and variant. It panics if there is none.
func (r *Registry) Lookup(op OpType, variant Variant) any {
	key := Key{Op: op, Variant: variant}
	kernel, found := r.kernels[key]
	if !found {
		exceptions.Panicf("%s: no kernel registered for %s", r.name, key)
	}
	return kernel
}

// Binary returns the Array-Array kernel for op. It panics if there is none.
func (r *Registry) Binary(op OpType) BinaryKernel {
	return r.Lookup(op, VariantArrayArray).(BinaryKernel)
}

// ArrayScalar returns the Array-Scalar kernel for op. It panics if there is none.
func (r *Registry) ArrayScalar(op OpType) ArrayScalarKernel {
	return r.Lookup(op, VariantArrayScalar).(ArrayScalarKernel)
}

// ScalarArray returns the Scalar-Array kernel for op. It panics if there is none.
func (r *Registry) ScalarArray(op OpType) ScalarArrayKernel {
	return r.Lookup(op, VariantScalarArray).(ScalarArrayKernel)
}

// Keys returns the registered keys, sorted by op and then variant.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.kernels))
	for key := range r.kernels {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		if c := cmp.Compare(a.Op, b.Op); c != 0 {
			return c
		}
		return cmp.Compare(a.Variant, b.Variant)
	})
	return keys
}
