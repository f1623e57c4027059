// Copyright 2025 The Rescale Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for Rescale operations.
package cpu

import (
	internalcpu "github.com/rescale-ml/rescale/internal/backend/cpu"
	"github.com/rescale-ml/rescale/internal/parallel"
	"github.com/rescale-ml/rescale/tensor"
)

// Backend represents the CPU backend implementation.
//
// All operations are pure Go (no CGO). Independent (batch, channel) planes
// are processed concurrently when profitable; results do not depend on the
// traversal order.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how work is split across goroutines.
type ParallelConfig = parallel.Config

// WithParallel overrides the backend's parallel execution config.
// Use Sequential() to force single-threaded execution:
//
//	backend := cpu.New(cpu.WithParallel(cpu.Sequential()))
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// Sequential returns a parallel config that disables parallelism.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}

// New creates a new CPU backend.
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}
