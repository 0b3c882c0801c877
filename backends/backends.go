// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package backends defines the interface a backend of element-wise kernels implements, and a registry
// of backend constructors, so users can select one with a configuration string.
//
// Contract violations (e.g. calling a kernel with incompatible tensors) panic with a stack trace,
// see package github.com/gomlx/exceptions. Errors that depend on user input, like a malformed
// configuration, are returned.
package backends

import (
	"os"
	"slices"
	"strings"

	"github.com/gomlx/eltwise/backends/kernels"
	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backend is the API that needs to be implemented by a backend.
type Backend interface {
	// Name returns the short name of the backend. E.g.: "native".
	Name() string

	// Description is a longer description of the Backend that can be used to pretty-print.
	Description() string

	// Device where the backend's kernels execute. Tensors given to the kernels must reside on it.
	Device() devices.Device

	// Kernels returns the backend's frozen registry of kernels.
	Kernels() *kernels.Registry

	// Finalize releases all the associated resources immediately, and makes the backend invalid.
	Finalize()
}

// Constructor takes a config string (optionally empty) and returns a Backend.
type Constructor func(config string) (Backend, error)

var (
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// Register backend with the given name, and a default constructor that takes as input a configuration string that is
// passed along to the backend constructor.
//
// To be safe, call Register during initialization of a package.
func Register(name string, constructor Constructor) {
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	registeredConstructors[name] = constructor
}

// List the names of the registered backends, sorted.
func List() []string {
	names := make([]string, 0, len(registeredConstructors))
	for name := range registeredConstructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultConfig is the name of the default backend configuration to use if specified.
//
// See NewWithConfig for the format of the configuration string.
var DefaultConfig string

// ConfigEnvVar is the environment variable with the default backend configuration to use.
//
// The format of config is "<backend_name>:<backend_configuration>".
// The "<backend_name>" is the name of a registered backend (e.g.: "native") and
// "<backend_configuration>" is backend specific (e.g.: "parallelism=4,min_chunk=1024").
const ConfigEnvVar = "ELTWISE_BACKEND"

// New returns a new default Backend.
//
// The default is:
//
// 1. The environment ELTWISE_BACKEND is used as a configuration if defined.
// 2. Next the variable DefaultConfig is used as a configuration if defined.
// 3. The first registered backend is used with an empty configuration.
func New() (Backend, error) {
	config, found := os.LookupEnv(ConfigEnvVar)
	if found {
		return NewWithConfig(config)
	}
	if DefaultConfig != "" {
		return NewWithConfig(DefaultConfig)
	}
	return NewWithConfig("")
}

// MustNew returns a new default Backend, see New. It panics on error.
func MustNew() Backend {
	return must.M1(New())
}

// NewWithConfig takes a configuration string formatted as "<backend_name>:<backend_configuration>".
//
// If "<backend_name>" is omitted (no ":" in config), the first registered backend is used, and
// the whole string is taken as its configuration.
func NewWithConfig(config string) (Backend, error) {
	if len(registeredConstructors) == 0 {
		return nil, errors.Errorf(`no registered backends -- maybe import the native one with import _ "github.com/gomlx/eltwise/backends/native"?`)
	}
	backendName := firstRegistered
	backendConfig := config
	if idx := strings.Index(config, ":"); idx != -1 {
		backendName = config[:idx]
		backendConfig = config[idx+1:]
	}
	constructor, found := registeredConstructors[backendName]
	if !found {
		return nil, errors.Errorf("can't find backend %q for configuration %q given, registered backends: %v",
			backendName, config, List())
	}
	klog.V(1).Infof("creating backend %q with config %q", backendName, backendConfig)
	backend, err := constructor(backendConfig)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create backend %q", backendName)
	}
	return backend, nil
}
