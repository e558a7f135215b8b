// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/layout/internal/tensor"
)

// DType is a constraint for supported tensor element types.
type DType = tensor.DType

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32      = tensor.Float32
	Float64      = tensor.Float64
	Int32        = tensor.Int32
	Int64        = tensor.Int64
	Uint8        = tensor.Uint8
	Bool         = tensor.Bool
	Float16      = tensor.Float16
	BFloat16Type = tensor.BFloat16Type
)

// BFloat16 holds the raw bits of a brain floating point value.
type BFloat16 = tensor.BFloat16

// Device represents the compute device for tensor operations.
type Device = tensor.Device

// Supported compute devices.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Vulkan = tensor.Vulkan
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
//
// Example:
//
//	shape := tensor.Shape{2, 3, 4} // 2x3x4 tensor
type Shape = tensor.Shape

// Tensor is a generic tensor with type T and backend B.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// View is a typed window onto a RawTensor.
type View[T DType] = tensor.View[T]

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Empty creates a tensor whose storage is allocated on first write.
func Empty[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Empty[T, B](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange[T ~float32 | ~float64 | ~int32 | ~int64 | ~uint8, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](shape, b)
}

// FromSlice creates a tensor from a Go slice.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New wraps a RawTensor as a typed tensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Cat concatenates tensors along dim (negative dim counts from the end).
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	return tensor.Cat[T, B](tensors, dim)
}

// ViewOf returns a typed view of raw. It fails if raw does not hold T.
func ViewOf[T DType](raw *RawTensor) (View[T], error) {
	return tensor.ViewOf[T](raw)
}

// NormalizeAxis maps a possibly negative axis (-1 = last dimension) into
// [0, rank). The second return value is false when the axis is out of range.
func NormalizeAxis(axis, rank int) (int, bool) {
	return tensor.NormalizeAxis(axis, rank)
}
