// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/eltwise/pkg/core/dtypes"
)

// FormatElements returns the elements of the tensor as strings, in logical order.
//
// Floats are formatted in the 'g' format with the given precision. A negative precision uses the
// shortest representation that reads back to the same value in the tensor's dtype.
func (t *Tensor) FormatElements(precision int) []string {
	formatted := make([]string, t.Size())
	if t.DType().IsFloat() {
		bitSize := 32
		if t.DType() == dtypes.Float64 {
			bitSize = 64
		}
		for ii, v := range MustCopyFlatData[float64](t.AsType(dtypes.Float64)) {
			formatted[ii] = strconv.FormatFloat(v, 'g', precision, bitSize)
		}
		return formatted
	}
	for ii, v := range MustCopyFlatData[int64](t.AsType(dtypes.Int64)) {
		formatted[ii] = strconv.FormatInt(v, 10)
	}
	return formatted
}

// Summary returns a multi-line summary of the Tensor's content.
// Inspired by numpy output: rows with more than 6 elements, and axes with more than 6 rows,
// are abbreviated with an ellipsis.
func (t *Tensor) Summary(precision int) string {
	if t.Size() == 0 {
		return t.shape.String()
	}
	values := t.FormatElements(precision)
	dims := t.shape.Dimensions

	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }
	for _, dim := range dims {
		w("[%d]", dim)
	}
	w("%s", t.DType())
	if len(dims) == 0 {
		w("(%s)", values[0])
		return buf.String()
	}

	var printElements func(index, indent int, currentDims []int)
	printElements = func(index, indent int, currentDims []int) {
		if len(currentDims) == 1 {
			w("{")
			row := values[index : index+currentDims[0]]
			if len(row) > 6 {
				w("%s, ..., %s", strings.Join(row[:3], ", "), strings.Join(row[len(row)-3:], ", "))
			} else {
				w("%s", strings.Join(row, ", "))
			}
			w("}")
			return
		}

		stride := 1
		for _, dim := range currentDims[1:] {
			stride *= dim
		}
		w("{")
		if indent == -1 {
			w("\n ")
			indent = 1
		}
		indentStr := strings.Repeat(" ", indent)
		numRows := currentDims[0]
		for ii := 0; ii < numRows; ii++ {
			if numRows > 6 && ii == 3 {
				w(",\n%s...", indentStr)
				ii = numRows - 3
			}
			if ii > 0 {
				w(",\n%s", indentStr)
			}
			printElements(index+ii*stride, indent+1, currentDims[1:])
		}
		w("}")
	}
	printElements(0, -1, dims)
	return buf.String()
}
