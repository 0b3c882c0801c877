// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// eltwise evaluates or benchmarks the element-wise kernels of a backend.
//
// Usage:
//
//	eltwise eval -op=floor_divide -dtype=int32 -x1=7,-7 -x2=2 -scalar=right
//	eltwise bench -size=1000000 -dtype=float32,int32
//
// The backend is selected with -backend, or with the ELTWISE_BACKEND environment variable.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/eltwise/backends"
	"github.com/gomlx/eltwise/backends/kernels"
	_ "github.com/gomlx/eltwise/backends/native"
	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type command struct {
	name, usage string
	run         func(args []string) error
}

var commands = []command{
	{"eval", "evaluates a kernel on literal values", runEval},
	{"bench", "benchmarks the kernels on tensors of the given size", runBench},
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: eltwise <command> [flags]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", cmd.name, cmd.usage)
	}
	fmt.Fprintf(os.Stderr, "\nRun 'eltwise <command> -help' for the flags of each command.\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.name == name {
			if err := cmd.run(os.Args[2:]); err != nil {
				klog.Errorf("eltwise %s: %+v", name, err)
				os.Exit(1)
			}
			return
		}
	}
	klog.Errorf("Unknown command %q. See 'eltwise -help'.", name)
	usage()
	os.Exit(1)
}

// commonFlags are registered in every command's flag set.
type commonFlags struct {
	backend *string
	noColor *bool
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	klog.InitFlags(fs)
	common := &commonFlags{
		backend: fs.String("backend", "", fmt.Sprintf(
			"Backend configuration, formatted as \"<backend>:<config>\". If empty, $%s is used, "+
				"and if not set, the first registered backend.", backends.ConfigEnvVar)),
		noColor: fs.Bool("no_color", false, "Disable colors in the output."),
	}
	return fs, common
}

// setup applies the common flags and returns the selected backend.
func (c *commonFlags) setup() (backends.Backend, error) {
	if *c.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if *c.backend != "" {
		return backends.NewWithConfig(*c.backend)
	}
	return backends.New()
}

// parseOps parses a comma-separated list of operation names, "all" returns all operations.
func parseOps(list string) ([]kernels.OpType, error) {
	if list == "" || list == "all" {
		return kernels.Ops(), nil
	}
	var ops []kernels.OpType
	for _, name := range strings.Split(list, ",") {
		op, err := kernels.OpTypeString(strings.TrimSpace(name))
		if err != nil || op == kernels.OpTypeInvalid || op == kernels.OpTypeLast {
			return nil, errors.Errorf("unknown operation %q, valid operations: %v", name, kernels.Ops())
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// parseDTypes parses a comma-separated list of dtype names, "all" returns all dtypes.
func parseDTypes(list string) ([]dtypes.DType, error) {
	if list == "" || list == "all" {
		return dtypes.All(), nil
	}
	var result []dtypes.DType
	for _, name := range strings.Split(list, ",") {
		dtype, err := dtypes.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		result = append(result, dtype)
	}
	return result, nil
}
