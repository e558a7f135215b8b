// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor layout operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Cat, Split, Chunk, CatInto and SplitInto for every supported dtype
//   - Negative dimension indexing (-1 = last dimension)
//   - Parallel row-range copies for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/layout/backend/cpu"
//	    "github.com/born-ml/layout/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Arange[float32](tensor.Shape{2, 3, 6}, backend)
//	    parts, err := x.Chunk(3, -1) // three [2, 3, 2] tensors
//	}
package cpu
