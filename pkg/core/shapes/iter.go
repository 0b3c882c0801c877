// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout
// in memory.
//
// Notice the strides are **not in bytes**, but in indices.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// UnflattenIndex converts a flat (row-major) index into per-axis indices, written into indices.
//
// It expects len(indices) == s.Rank().
func (s Shape) UnflattenIndex(flatIdx int, indices []int) {
	if len(indices) != s.Rank() {
		exceptions.Panicf("Shape.UnflattenIndex given len(indices) == %d, want it to be equal to the rank %d", len(indices), s.Rank())
	}
	for axis := s.Rank() - 1; axis >= 0; axis-- {
		dim := s.Dimensions[axis]
		if dim == 0 {
			indices[axis] = 0
			continue
		}
		indices[axis] = flatIdx % dim
		flatIdx /= dim
	}
}

// Iter iterates sequentially over all possible indices of the given shape.
//
// It yields the flat index (counter) and a slice of indices for each axis.
// The yielded slice is owned by Iter: don't change it inside the loop.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		size := s.Size()
		indices := make([]int, s.Rank())
		rank := s.Rank()
		for flatIdx := range size {
			if !yield(flatIdx, indices) {
				return
			}
			for axis := rank - 1; axis >= 0; axis-- {
				indices[axis]++
				if indices[axis] < s.Dimensions[axis] {
					break
				}
				indices[axis] = 0
			}
		}
	}
}
