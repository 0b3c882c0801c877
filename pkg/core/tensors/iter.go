// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

// StridedIter yields the physical positions in the flat storage of a tensor's logical elements,
// in row-major order.
type StridedIter struct {
	dims, strides, indices []int
	pos                    int
}

// IterFrom returns an iterator starting at the logical (row-major) index start.
//
// It's used by the element-wise kernels: each worker creates its own iterators for the range of
// logical indices it handles.
func (t *Tensor) IterFrom(start int) *StridedIter {
	rank := t.Rank()
	it := &StridedIter{
		dims:    t.shape.Dimensions,
		strides: t.strides,
		indices: make([]int, rank),
		pos:     t.offset,
	}
	if start > 0 {
		t.shape.UnflattenIndex(start, it.indices)
		for axis, idx := range it.indices {
			it.pos += idx * it.strides[axis]
		}
	}
	return it
}

// Next returns the current physical position and advances to the next logical element.
func (it *StridedIter) Next() (pos int) {
	pos = it.pos
	for axis := len(it.indices) - 1; axis >= 0; axis-- {
		it.indices[axis]++
		it.pos += it.strides[axis]
		if it.indices[axis] < it.dims[axis] {
			return
		}
		// Carry over to the previous axis.
		it.pos -= it.strides[axis] * it.indices[axis]
		it.indices[axis] = 0
	}
	return
}
