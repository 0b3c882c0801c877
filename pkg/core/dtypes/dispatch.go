// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import "github.com/gomlx/exceptions"

// Map resolves a DType known only at runtime into a function instantiated for the corresponding
// Go type. Fn is usually a generic function type instantiated once per dtype by generated code.
//
// Registrations happen during package initialization. Afterward, Get is safe for concurrent use.
type Map[Fn any] struct {
	Name     string
	Category Category
	fns      [MaxDType]Fn
	set      [MaxDType]bool
}

// NewMap creates a new Map with the given name (used in error messages), accepting only the
// dtypes in category.
func NewMap[Fn any](name string, category Category) *Map[Fn] {
	return &Map[Fn]{Name: name, Category: category}
}

// Register fn to handle dtype. It overwrites any previous registration for the same dtype.
//
// It panics if dtype is not part of the map's category.
func (m *Map[Fn]) Register(dtype DType, fn Fn) {
	if !m.Category.Contains(dtype) {
		exceptions.Panicf("%s: cannot register dtype %s, it is not in category %s", m.Name, dtype, m.Category)
	}
	m.fns[dtype] = fn
	m.set[dtype] = true
}

// Has returns whether there is a function registered for dtype.
func (m *Map[Fn]) Has(dtype DType) bool {
	return dtype >= 0 && dtype < MaxDType && m.set[dtype]
}

// Get returns the function registered for dtype.
//
// It panics if dtype is outside the map's category, or if nothing was registered for it:
// both are contract violations, dtype checking is expected to happen before reaching the kernels.
func (m *Map[Fn]) Get(dtype DType) Fn {
	if !m.Category.Contains(dtype) {
		exceptions.Panicf("%s: dtype %s not supported, it only accepts %s dtypes", m.Name, dtype, m.Category)
	}
	if !m.set[dtype] {
		exceptions.Panicf("%s: no implementation registered for dtype %s", m.Name, dtype)
	}
	return m.fns[dtype]
}

// PairMap resolves a pair of runtime DTypes, e.g. source and target of a conversion, into a function
// instantiated for the corresponding pair of Go types.
type PairMap[Fn any] struct {
	Name string
	fns  [MaxDType][MaxDType]Fn
	set  [MaxDType][MaxDType]bool
}

// NewPairMap creates a new PairMap with the given name, used in error messages.
func NewPairMap[Fn any](name string) *PairMap[Fn] {
	return &PairMap[Fn]{Name: name}
}

// Register fn to handle the pair (dtype1, dtype2).
func (m *PairMap[Fn]) Register(dtype1, dtype2 DType, fn Fn) {
	if !dtype1.IsSupported() || !dtype2.IsSupported() {
		exceptions.Panicf("%s: cannot register dtypes (%s, %s)", m.Name, dtype1, dtype2)
	}
	m.fns[dtype1][dtype2] = fn
	m.set[dtype1][dtype2] = true
}

// Get returns the function registered for the pair (dtype1, dtype2). It panics if none was registered.
func (m *PairMap[Fn]) Get(dtype1, dtype2 DType) Fn {
	if !dtype1.IsSupported() || !dtype2.IsSupported() || !m.set[dtype1][dtype2] {
		exceptions.Panicf("%s: dtypes (%s, %s) not supported", m.Name, dtype1, dtype2)
	}
	return m.fns[dtype1][dtype2]
}
