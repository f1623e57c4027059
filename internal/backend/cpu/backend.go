// Package cpu implements the CPU backend for Rescale tensor operations.
package cpu

import (
	"github.com/rescale-ml/rescale/internal/parallel"
	"github.com/rescale-ml/rescale/internal/tensor"
)

// CPUBackend implements tensor operations in pure Go, parallelized across
// independent (batch, channel) planes.
type CPUBackend struct {
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel overrides the parallel execution config.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		parallel: parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// compile-time interface check
var _ tensor.Backend = (*CPUBackend)(nil)
