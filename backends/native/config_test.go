// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package native

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig("")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), c.Parallelism)
	assert.Equal(t, DefaultMinChunk, c.MinChunk)

	c, err = ParseConfig(" parallelism = -1 , min_chunk=128,device=3 ")
	require.NoError(t, err)
	assert.Equal(t, Config{Parallelism: -1, MinChunk: 128, DeviceNum: 3}, c)

	for _, config := range []string{
		"parallelism",
		"parallelism=two",
		"parallelism=-2",
		"min_chunk=0",
		"device=-1",
		"threads=4",
	} {
		_, err = ParseConfig(config)
		assert.Errorf(t, err, "config %q should fail", config)
	}
}
