package layout

import (
	"github.com/born-ml/layout/internal/tensor"
)

// array is a slice-backed Source and Sink that records mutable access.
type array[T tensor.DType] struct {
	shape   tensor.Shape
	data    []T
	mutable int
}

func newArray[T tensor.DType](shape tensor.Shape, data []T) *array[T] {
	return &array[T]{shape: shape, data: data}
}

// seq fills a new array with 0, 1, 2, ... offset by base.
func seq(shape tensor.Shape, base int32) *array[int32] {
	data := make([]int32, shape.NumElements())
	for i := range data {
		data[i] = base + int32(i)
	}
	return newArray(shape, data)
}

// empty returns an array without storage.
func empty[T tensor.DType](shape tensor.Shape) *array[T] {
	return &array[T]{shape: shape}
}

func (a *array[T]) Shape() tensor.Shape { return a.shape }

func (a *array[T]) NumElements() int { return a.shape.NumElements() }

func (a *array[T]) Data() []T { return a.data }

func (a *array[T]) MutableData() []T {
	a.mutable++
	if a.data == nil {
		a.data = make([]T, a.shape.NumElements())
	}
	return a.data
}

func sources[T tensor.DType](arrays ...*array[T]) []Source[T] {
	out := make([]Source[T], len(arrays))
	for i, a := range arrays {
		out[i] = a
	}
	return out
}

// at reads a rank-2 element.
func at[T tensor.DType](a *array[T], r, c int) T {
	return a.data[r*a.shape[1]+c]
}
