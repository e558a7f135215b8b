// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout concatenates and splits contiguous row-major arrays along an axis.
//
// Any type with Shape, NumElements and Data (a Source) or MutableData (a
// Sink) can take part, so callers can run the engine over their own buffers
// as well as over tensor.RawTensor values.
//
// Example:
//
//	a, _ := tensor.ViewOf[float32](rawA) // shape [2, 3]
//	b, _ := tensor.ViewOf[float32](rawB) // shape [2, 2]
//	out, _ := tensor.ViewOf[float32](rawOut) // shape [2, 5]
//	err := layout.Concat(layout.DefaultContext(), []layout.Source[float32]{a, b}, 1, out)
//	if errors.Is(err, layout.ErrShapeMismatch) {
//	    // out was not touched
//	}
package layout

import (
	"github.com/born-ml/layout/internal/layout"
	"github.com/born-ml/layout/tensor"
)

// Source is a read-only contiguous row-major array.
type Source[T tensor.DType] = layout.Source[T]

// Sink is a writable contiguous row-major array.
type Sink[T tensor.DType] = layout.Sink[T]

// Slot is one output position of Split; see Present and Absent.
type Slot[T tensor.DType] = layout.Slot[T]

// Context selects where and how an operation runs.
type Context = layout.Context

// Partition is the rows-by-columns view shared by the arrays of one operation.
type Partition = layout.Partition

// LayoutError describes which array failed validation and why.
type LayoutError = layout.LayoutError

// Validation failures; every returned error wraps one of these.
var (
	ErrShapeMismatch     = layout.ErrShapeMismatch
	ErrAxisOutOfRange    = layout.ErrAxisOutOfRange
	ErrNonDivisible      = layout.ErrNonDivisible
	ErrSlotCount         = layout.ErrSlotCount
	ErrNoInputs          = layout.ErrNoInputs
	ErrDTypeMismatch     = layout.ErrDTypeMismatch
	ErrUnallocated       = layout.ErrUnallocated
	ErrUnsupportedDevice = layout.ErrUnsupportedDevice
)

// DefaultContext runs on the CPU with the default parallel configuration.
func DefaultContext() Context {
	return layout.DefaultContext()
}

// SequentialContext runs on the CPU on the calling goroutine only.
func SequentialContext() Context {
	return layout.SequentialContext()
}

// Concat copies inputs, in order, into out along axis.
func Concat[T tensor.DType](c Context, inputs []Source[T], axis int, out Sink[T]) error {
	return layout.Concat[T](c, inputs, axis, out)
}

// Split copies consecutive slices of in along axis into outs, with widths
// taken from refs. Absent slots are skipped but keep their width.
func Split[T tensor.DType](c Context, in Source[T], axis int, refs []tensor.Shape, outs []Slot[T]) error {
	return layout.Split[T](c, in, axis, refs, outs)
}

// Present returns a slot that receives its slice of the input.
func Present[T tensor.DType](sink Sink[T]) Slot[T] {
	return layout.Present[T](sink)
}

// Absent returns a slot whose slice of the input is skipped.
func Absent[T tensor.DType]() Slot[T] {
	return layout.Absent[T]()
}

// ConcatRaw is Concat for untyped tensors sharing one element type.
func ConcatRaw(c Context, inputs []*tensor.RawTensor, axis int, out *tensor.RawTensor) error {
	return layout.ConcatRaw(c, inputs, axis, out)
}

// SplitRaw is Split for untyped tensors; nil outputs are absent slots.
func SplitRaw(c Context, in *tensor.RawTensor, axis int, refs []tensor.Shape, outs []*tensor.RawTensor) error {
	return layout.SplitRaw(c, in, axis, refs, outs)
}

// Flatten returns the product of the dimensions of shape before axis.
func Flatten(shape tensor.Shape, axis int) (int, error) {
	return layout.Flatten(shape, axis)
}

// NewPartition derives the partition for arrays holding counts elements.
func NewPartition(ref tensor.Shape, axis int, counts []int) (Partition, error) {
	return layout.NewPartition(ref, axis, counts)
}
