// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types used by the layout operations.
//
// # Overview
//
// Tensors are contiguous row-major arrays. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Untyped RawTensor storage with lazy allocation and copy-on-write clones
//   - Typed views (View[T]) that plug into the layout engine
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
//	    x := tensor.Arange[float32](tensor.Shape{4, 6}, backend)
//	    parts, err := x.Split([]int{2, 4}, 1) // [4, 2] and [4, 4]
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    y, err := tensor.Cat(parts, 1) // back to [4, 6]
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - float16.Float16, BFloat16 (half precision, moved as raw bits)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
package tensor
