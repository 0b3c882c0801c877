// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/eltwise/backends"
	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/scalar"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// benchCase is one kernel (operation and variant) for one dtype.
type benchCase struct {
	op      kernels.OpType
	variant kernels.Variant
	dtype   dtypes.DType
}

type benchResult struct {
	benchCase
	perCall time.Duration
	bytes   int
}

func runBench(args []string) error {
	fs, common := newFlagSet("bench")
	size := fs.Int("size", 1_000_000, "Number of elements of the tensors.")
	dtypeList := fs.String("dtype", "all", "Comma-separated list of dtypes to benchmark, or \"all\".")
	opList := fs.String("op", "all", "Comma-separated list of operations to benchmark, or \"all\".")
	repeats := fs.Int("repeats", 20, "Number of calls to each kernel.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size <= 0 || *repeats <= 0 {
		return errors.Errorf("-size and -repeats must be positive, got %d and %d", *size, *repeats)
	}
	backend, err := common.setup()
	if err != nil {
		return err
	}
	ops, err := parseOps(*opList)
	if err != nil {
		return err
	}
	dtypesList, err := parseDTypes(*dtypeList)
	if err != nil {
		return err
	}
	cases := listBenchCases(backend.Kernels(), ops, dtypesList)
	if len(cases) == 0 {
		return errors.Errorf("no kernel supports the given operations and dtypes")
	}
	klog.V(1).Infof("benchmarking %d kernels on %s", len(cases), backend.Description())

	bar := progressbar.NewOptions(len(cases)*(*repeats),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish())
	results := make([]benchResult, 0, len(cases))
	for _, c := range cases {
		results = append(results, benchKernel(backend, c, *size, *repeats, func() { _ = bar.Add(1) }))
	}
	_ = bar.Finish()
	printBenchResults(backend, *size, results)
	return nil
}

// listBenchCases returns the kernels registered for ops that accept each of the dtypes.
func listBenchCases(registry *kernels.Registry, ops []kernels.OpType, dtypesList []dtypes.DType) []benchCase {
	var cases []benchCase
	for _, op := range ops {
		for _, dtype := range dtypesList {
			if !op.Category().Contains(dtype) {
				continue
			}
			for _, variant := range kernels.Variants {
				if registry.Has(op, variant) {
					cases = append(cases, benchCase{op: op, variant: variant, dtype: dtype})
				}
			}
		}
	}
	return cases
}

// benchKernel calls the kernel repeats times on tensors of the given size, and returns the mean time per call.
func benchKernel(backend backends.Backend, c benchCase, size, repeats int, step func()) benchResult {
	shape := shapes.Make(c.dtype, size)
	x1 := tensors.FromShape(shape).OnDevice(backend.Device())
	x2 := tensors.FromShape(shape).OnDevice(backend.Device())
	out := tensors.FromShape(shape).OnDevice(backend.Device())
	s := scalar.Int(3)
	registry := backend.Kernels()
	call := func() {}
	numOperands := 3
	switch c.variant {
	case kernels.VariantArrayArray:
		kernel := registry.Binary(c.op)
		call = func() { kernel.Call(x1, x2, out) }
	case kernels.VariantArrayScalar:
		kernel := registry.ArrayScalar(c.op)
		call = func() { kernel.Call(x1, s, out) }
		numOperands = 2
	case kernels.VariantScalarArray:
		kernel := registry.ScalarArray(c.op)
		call = func() { kernel.Call(s, x2, out) }
		numOperands = 2
	}
	call() // Warm-up.
	start := time.Now()
	for range repeats {
		call()
		step()
	}
	return benchResult{
		benchCase: c,
		perCall:   time.Since(start) / time.Duration(repeats),
		bytes:     numOperands * shape.Memory(),
	}
}

func printBenchResults(backend backends.Backend, size int, results []benchResult) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %s elements", backend.Description(), humanize.Comma(int64(size)))))
	table := newPlainTable(true, lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Right)
	table.Headers("op", "variant", "dtype", "time/call", "throughput", "elements/s")
	for _, r := range results {
		seconds := r.perCall.Seconds()
		if seconds <= 0 {
			seconds = 1e-9
		}
		table.Row(
			r.op.String(),
			r.variant.String(),
			r.dtype.String(),
			r.perCall.String(),
			humanize.Bytes(uint64(float64(r.bytes)/seconds))+"/s",
			humanize.SIWithDigits(float64(size)/seconds, 2, ""),
		)
	}
	fmt.Println(table.Render())
}
