// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package devices identifies where a tensor's data lives, and checks that operands of a kernel
// can be used together.
package devices

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// DeviceNum represents which device of a backend holds a buffer.
type DeviceNum int

// Device identifies an execution context: a backend and one of its devices.
type Device struct {
	Backend string
	Num     DeviceNum
}

// Native is the default CPU device of the native backend.
var Native = Device{Backend: "native", Num: 0}

// String implements fmt.Stringer.
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Backend, d.Num)
}

// Resident is anything whose data lives on a Device, e.g. a tensor.
type Resident interface {
	Device() Device
}

// IsCompatible returns whether the resident can be used in a computation executed on d.
func (d Device) IsCompatible(r Resident) bool {
	return r.Device() == d
}

// CheckCompatible panics if any of the residents doesn't live on d.
//
// Incompatible devices are a contract violation: the dispatching layer is expected to move data
// before calling a kernel.
func (d Device) CheckCompatible(residents ...Resident) {
	var incompatible []string
	for ii, r := range residents {
		if !d.IsCompatible(r) {
			incompatible = append(incompatible, fmt.Sprintf("#%d on %s", ii, r.Device()))
		}
	}
	if len(incompatible) > 0 {
		exceptions.Panicf("devices not compatible with %s: %s", d, strings.Join(incompatible, ", "))
	}
}
