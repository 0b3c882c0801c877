// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool implements a soft-limited pool of goroutines used by the native backend
// to split element-wise work across CPUs.
package workerspool

import (
	"runtime"
	"sync"

	"k8s.io/klog/v2"
)

// Pool keeps tabs on the number of goroutines running tasks.
type Pool struct {
	// maxParallelism is a soft target on the limit of parallel work to do.
	// 0 disables parallelism, negative values make it unlimited.
	maxParallelism int
	mu             sync.Mutex
	numRunning     int
}

// New returns a new Pool of workers with the default parallelism (runtime.NumCPU()).
func New() *Pool {
	return NewWithParallelism(runtime.NumCPU())
}

// NewWithParallelism returns a new Pool with the given maxParallelism.
// If set to 0 parallelism is disabled. If set to -1 parallelism is unlimited.
func NewWithParallelism(maxParallelism int) *Pool {
	return &Pool{maxParallelism: maxParallelism}
}

// IsEnabled returns whether parallelism is enabled (maxParallelism is != 0)
func (w *Pool) IsEnabled() bool {
	return w.maxParallelism != 0
}

// IsUnlimited returns whether parallelism is unlimited (maxParallelism < 0)
func (w *Pool) IsUnlimited() bool {
	return w.maxParallelism < 0
}

// MaxParallelism is a soft-target for parallelism.
func (w *Pool) MaxParallelism() int {
	return w.maxParallelism
}

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with w.mu acquired.
func (w *Pool) lockedIsFull() bool {
	if w.maxParallelism == 0 {
		return true
	} else if w.maxParallelism < 0 {
		return false
	}
	return w.numRunning >= w.maxParallelism
}

// lockedRunTaskInGoroutine and keep tabs on w.numRunning.
//
// It must be called with w.mu acquired.
func (w *Pool) lockedRunTaskInGoroutine(task func()) {
	w.numRunning++
	go func() {
		task()
		w.mu.Lock()
		w.numRunning--
		w.mu.Unlock()
	}()
}

// StartIfAvailable runs the task in a separate goroutine, if there are enough workers left.
// It returns true if it found workers to run the function, false otherwise.
//
// It's up to the client to synchronize the end of the function execution.
func (w *Pool) StartIfAvailable(task func()) bool {
	if w.IsUnlimited() {
		go task()
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lockedIsFull() {
		return false
	}
	w.lockedRunTaskInGoroutine(task)
	return true
}

// RunChunks splits the range [0, n) into disjoint chunks of at least minChunk elements and calls
// fn(start, end) once for each of them. It returns when all chunks are done.
//
// Chunks are started in the pool if workers are available, otherwise they are run inline by the caller,
// so RunChunks never blocks waiting for workers. The last chunk always runs in the calling goroutine.
func (w *Pool) RunChunks(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk = max(minChunk, 1)
	numChunks := 1
	if w.IsEnabled() && n >= 2*minChunk {
		numChunks = n / minChunk
		if !w.IsUnlimited() {
			numChunks = min(numChunks, w.maxParallelism)
		} else {
			numChunks = min(numChunks, runtime.NumCPU())
		}
	}
	if numChunks <= 1 {
		fn(0, n)
		return
	}
	chunkSize := (n + numChunks - 1) / numChunks
	klog.V(3).Infof("workerspool: running %d elements in chunks of %d", n, chunkSize)

	var wg sync.WaitGroup
	start := 0
	for ; start+chunkSize < n; start += chunkSize {
		chunkStart, chunkEnd := start, start+chunkSize
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(chunkStart, chunkEnd)
		}
		if !w.StartIfAvailable(task) {
			task()
		}
	}
	fn(start, n)
	wg.Wait()
}
