// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/layout/internal/backend/cpu"
	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend performs concatenation and split as strided row copies
// in pure Go, optionally spreading disjoint row ranges over goroutines.
type Backend = internalcpu.CPUBackend

// Config controls how copies are spread over goroutines.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/layout/backend/cpu"
//	    "github.com/born-ml/layout/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the parallel configuration used by New.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
