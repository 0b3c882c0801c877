// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

// Category is the subset of the catalog an operator accepts.
type Category int

const (
	// CategoryAll accepts every dtype of the catalog.
	CategoryAll Category = iota

	// CategoryNumeric accepts the numeric dtypes.
	//
	// The catalog only holds numeric types, so it accepts the same dtypes as CategoryAll. Operators
	// still declare it to state they are not defined for non-numeric element types.
	CategoryNumeric

	// CategoryIntegral accepts only integer dtypes, signed or unsigned.
	CategoryIntegral
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryAll:
		return "All"
	case CategoryNumeric:
		return "Numeric"
	case CategoryIntegral:
		return "Integral"
	}
	return "Category(?)"
}

// Contains returns whether dtype belongs to the category.
func (c Category) Contains(dtype DType) bool {
	switch c {
	case CategoryAll, CategoryNumeric:
		return dtype.IsSupported()
	case CategoryIntegral:
		return dtype.IsInt()
	}
	return false
}

// DTypes lists the dtypes of the category, in enum order.
func (c Category) DTypes() []DType {
	var list []DType
	for _, dtype := range All() {
		if c.Contains(dtype) {
			list = append(list, dtype)
		}
	}
	return list
}
