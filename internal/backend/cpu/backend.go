// Package cpu implements the CPU backend for axis concatenation and split.
package cpu

import (
	"github.com/born-ml/layout/internal/layout"
	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/internal/tensor"
)

// Verify that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend runs layout operations on the CPU in pure Go.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// New creates a new CPU backend using the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		cfg:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Config returns the parallel configuration used for copies.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.cfg
}

// context builds the execution context handed to the layout engine.
func (cpu *CPUBackend) context() layout.Context {
	return layout.Context{Device: cpu.device, Parallel: cpu.cfg}
}
