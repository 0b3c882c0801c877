// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/gomlx/eltwise/pkg/core/devices"
	"github.com/pkg/errors"
)

// DefaultMinChunk is the default minimum number of elements handled by each worker.
const DefaultMinChunk = 4096

// Config of the native backend, parsed from the configuration string given to New.
type Config struct {
	// Parallelism is the maximum number of workers used by a kernel call:
	// 0 disables parallelism, -1 makes it unlimited. Defaults to runtime.NumCPU().
	Parallelism int

	// MinChunk is the minimum number of elements processed by a worker.
	MinChunk int

	// DeviceNum of the device the backend executes on. Tensors are created on device 0.
	DeviceNum devices.DeviceNum
}

// DefaultConfig returns the configuration used for an empty configuration string.
func DefaultConfig() Config {
	return Config{
		Parallelism: runtime.NumCPU(),
		MinChunk:    DefaultMinChunk,
	}
}

// ParseConfig parses a comma-separated list of options, starting from DefaultConfig:
//
//   - "parallelism=<n>": maximum number of workers, 0 disables parallelism and -1 makes it unlimited.
//   - "min_chunk=<n>": minimum number of elements per worker, it must be positive.
//   - "device=<n>": device number of the backend.
//
// Example: "parallelism=4,min_chunk=1024".
func ParseConfig(config string) (Config, error) {
	c := DefaultConfig()
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return c, errors.Errorf("invalid configuration option %q for %s backend, options must be formatted as \"key=value\"", part, BackendName)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return c, errors.Wrapf(err, "invalid value for option %q of %s backend", key, BackendName)
		}
		switch strings.TrimSpace(key) {
		case "parallelism":
			if n < -1 {
				return c, errors.Errorf("parallelism must be -1 (unlimited), 0 (disabled) or positive, got %d", n)
			}
			c.Parallelism = n
		case "min_chunk":
			if n <= 0 {
				return c, errors.Errorf("min_chunk must be positive, got %d", n)
			}
			c.MinChunk = n
		case "device":
			if n < 0 {
				return c, errors.Errorf("device must be non-negative, got %d", n)
			}
			c.DeviceNum = devices.DeviceNum(n)
		default:
			return c, errors.Errorf("unknown configuration option %q for %s backend", key, BackendName)
		}
	}
	return c, nil
}
