// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/eltwise/backends"
	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/gomlx/eltwise/pkg/core/tensors/numpy"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func runEval(args []string) error {
	fs, common := newFlagSet("eval")
	opName := fs.String("op", "add", fmt.Sprintf("Operation to evaluate, one of %v.", kernels.Ops()))
	dtypeName := fs.String("dtype", "float32", "DType of the output: the operation is executed in this dtype.")
	x1Text := fs.String("x1", "", "First operand: comma-separated values, or @<path> to load a NumPy .npy file.")
	x2Text := fs.String("x2", "", "Second operand: comma-separated values, or @<path> to load a NumPy .npy file.")
	scalarSide := fs.String("scalar", "none",
		"Which operand is passed as a scalar: \"left\" (x1), \"right\" (x2) or \"none\". "+
			"With \"none\" the operands are broadcast to a common shape.")
	savePath := fs.String("save", "", "If set, the result of each operation is saved in NumPy .npy format to this path. "+
		"With more than one operation, the operation name is appended to the file name.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	backend, err := common.setup()
	if err != nil {
		return err
	}
	ops, err := parseOps(*opName)
	if err != nil {
		return err
	}
	dtype, err := dtypes.Parse(*dtypeName)
	if err != nil {
		return err
	}
	x1, err := parseOperand(*x1Text)
	if err != nil {
		return errors.WithMessage(err, "-x1")
	}
	x2, err := parseOperand(*x2Text)
	if err != nil {
		return errors.WithMessage(err, "-x2")
	}

	var results []evalResult
	for _, op := range ops {
		result, err := evaluate(backend, op, dtype, x1, x2, *scalarSide)
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	printEvalResults(x1, x2, results)
	if *savePath != "" {
		for _, result := range results {
			filePath := *savePath
			if len(results) > 1 {
				filePath = fmt.Sprintf("%s_%s.npy", strings.TrimSuffix(filePath, ".npy"), result.op)
			}
			if err := numpy.ToNpyFile(result.out, filePath); err != nil {
				return err
			}
			klog.Infof("saved %s result to %q", result.op, filePath)
		}
	}
	return nil
}

type evalResult struct {
	op     kernels.OpType
	out    *tensors.Tensor
	values []string
}

// parseOperand parses the value of -x1 or -x2: either "@" followed by the path to a .npy file,
// or a comma-separated list of values.
func parseOperand(text string) (*tensors.Tensor, error) {
	if filePath, found := strings.CutPrefix(strings.TrimSpace(text), "@"); found {
		t, err := numpy.FromNpyFile(filePath)
		if err != nil {
			return nil, err
		}
		klog.V(1).Infof("loaded %s from %q", t.Shape(), filePath)
		return t, nil
	}
	values, err := parseScalars(text)
	if err != nil {
		return nil, err
	}
	return tensorFromScalars(values), nil
}

// parseScalars parses a comma-separated list of values.
func parseScalars(text string) ([]scalar.Scalar, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("no values given")
	}
	parts := strings.Split(text, ",")
	values := make([]scalar.Scalar, 0, len(parts))
	for _, part := range parts {
		s, err := scalar.Parse(part)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	return values, nil
}

// tensorFromScalars creates a rank-1 tensor: Int64 if all values are integers, Float64 otherwise.
// The kernels cast it to the output dtype.
func tensorFromScalars(values []scalar.Scalar) *tensors.Tensor {
	allInts := true
	for _, v := range values {
		allInts = allInts && v.IsInt()
	}
	if allInts {
		data := make([]int64, len(values))
		for ii, v := range values {
			data[ii] = v.Int64()
		}
		return tensors.FromFlatDataAndDimensions(data, len(data))
	}
	data := make([]float64, len(values))
	for ii, v := range values {
		data[ii] = v.Float64()
	}
	return tensors.FromFlatDataAndDimensions(data, len(data))
}

// scalarFromTensor returns the only value of t as a Scalar.
func scalarFromTensor(t *tensors.Tensor) scalar.Scalar {
	if t.DType().IsFloat() {
		return scalar.Float(tensors.ToScalar[float64](t.AsType(dtypes.Float64)))
	}
	return scalar.Int(tensors.ToScalar[int64](t.AsType(dtypes.Int64)))
}

// broadcastDimensions returns the dimensions both operands broadcast to, aligning axes from the right.
func broadcastDimensions(s1, s2 shapes.Shape) []int {
	rank := max(s1.Rank(), s2.Rank())
	dims := make([]int, rank)
	for axis := range rank {
		d1, d2 := 1, 1
		if idx := axis - (rank - s1.Rank()); idx >= 0 {
			d1 = s1.Dimensions[idx]
		}
		if idx := axis - (rank - s2.Rank()); idx >= 0 {
			d2 = s2.Dimensions[idx]
		}
		switch {
		case d1 == d2 || d2 == 1:
			dims[axis] = d1
		case d1 == 1:
			dims[axis] = d2
		default:
			exceptions.Panicf("operands with shapes %s and %s can't be broadcast together", s1, s2)
		}
	}
	return dims
}

// evaluate runs op on x1 and x2 with the output of the given dtype.
// Contract violations raised by the kernels (e.g. bitwise operations on floats) are returned as errors.
func evaluate(backend backends.Backend, op kernels.OpType, dtype dtypes.DType, x1, x2 *tensors.Tensor, scalarSide string) (
	result evalResult, err error) {
	result.op = op
	registry := backend.Kernels()
	var out *tensors.Tensor
	newOutput := func(dims []int) *tensors.Tensor {
		return tensors.FromShape(shapes.Make(dtype, dims...)).OnDevice(backend.Device())
	}
	device := backend.Device()

	err = exceptions.TryCatch[error](func() {
		switch scalarSide {
		case "right":
			if x2.Size() != 1 {
				exceptions.Panicf("-scalar=right requires exactly one value in -x2, got shape %s", x2.Shape())
			}
			out = newOutput(x1.Shape().Dimensions)
			registry.ArrayScalar(op).Call(x1.OnDevice(device), scalarFromTensor(x2), out)
		case "left":
			if x1.Size() != 1 {
				exceptions.Panicf("-scalar=left requires exactly one value in -x1, got shape %s", x1.Shape())
			}
			out = newOutput(x2.Shape().Dimensions)
			registry.ScalarArray(op).Call(scalarFromTensor(x1), x2.OnDevice(device), out)
		case "none":
			dims := broadcastDimensions(x1.Shape(), x2.Shape())
			out = newOutput(dims)
			registry.Binary(op).Call(x1.BroadcastTo(dims...).OnDevice(device), x2.BroadcastTo(dims...).OnDevice(device), out)
		default:
			exceptions.Panicf("invalid -scalar=%q, valid values are \"left\", \"right\" or \"none\"", scalarSide)
		}
	})
	if err != nil {
		return result, errors.WithMessagef(err, "failed to evaluate %s", op)
	}
	klog.V(1).Infof("%s: %s", op, out.Summary(6))
	result.out = out
	result.values = out.FormatElements(-1)
	return result, nil
}

// operandValues formats the values of an operand for each element of the output shape.
func operandValues(x *tensors.Tensor, shape shapes.Shape) []string {
	if x.Size() == 1 {
		value := x.FormatElements(-1)[0]
		values := make([]string, shape.Size())
		for ii := range values {
			values[ii] = value
		}
		return values
	}
	return x.BroadcastTo(shape.Dimensions...).FormatElements(-1)
}

func printEvalResults(x1, x2 *tensors.Tensor, results []evalResult) {
	if len(results) == 0 {
		return
	}
	shape := results[0].out.Shape()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Results %s", shape)))
	table := newPlainTable(true, lipgloss.Left, lipgloss.Right)
	headers := []string{"index", "x1", "x2"}
	for _, result := range results {
		headers = append(headers, result.op.String())
	}
	table.Headers(headers...)
	x1Values, x2Values := operandValues(x1, shape), operandValues(x2, shape)
	for flatIdx, indices := range shape.Iter() {
		row := []string{fmt.Sprint(indices), x1Values[flatIdx], x2Values[flatIdx]}
		for _, result := range results {
			row = append(row, result.values[flatIdx])
		}
		table.Row(row...)
	}
	fmt.Println(table.Render())
}
