package tensor

import "fmt"

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a := tensor.Arange[float32](Shape{2, 3}, backend)
//	b := tensor.Arange[float32](Shape{2, 5}, backend)
//	c, err := tensor.Cat([]*Tensor[float32, B]{a, b}, 1) // Shape: [2, 8]
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("cat: at least one tensor required")
	}

	rawTensors := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		rawTensors[i] = t.raw
	}

	result, err := backend.Cat(rawTensors, dim)
	if err != nil {
		return nil, err
	}
	return New[T, B](result, backend), nil
}

// Cat concatenates t with others along dim, t first.
func (t *Tensor[T, B]) Cat(dim int, others ...*Tensor[T, B]) (*Tensor[T, B], error) {
	return Cat(append([]*Tensor[T, B]{t}, others...), dim)
}

// Split partitions the tensor along dim into pieces of the given sizes.
// The sizes must add up to the dimension size; zero sizes yield empty pieces.
//
// Example:
//
//	x := tensor.Arange[float32](Shape{4, 6}, backend)
//	parts, err := x.Split([]int{2, 4}, 1) // shapes [4, 2] and [4, 4]
func (t *Tensor[T, B]) Split(sizes []int, dim int) ([]*Tensor[T, B], error) {
	rawParts, err := t.backend.Split(t.raw, sizes, dim)
	if err != nil {
		return nil, err
	}
	return wrap[T](rawParts, t.backend), nil
}

// Chunk splits the tensor into n equal parts along the specified dimension.
//
// The dimension size must be divisible by n.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 3, 6}, backend)
//	parts, err := x.Chunk(3, -1) // 3 tensors of shape [2, 3, 2]
func (t *Tensor[T, B]) Chunk(n, dim int) ([]*Tensor[T, B], error) {
	rawParts, err := t.backend.Chunk(t.raw, n, dim)
	if err != nil {
		return nil, err
	}
	return wrap[T](rawParts, t.backend), nil
}

func wrap[T DType, B Backend](raws []*RawTensor, b B) []*Tensor[T, B] {
	parts := make([]*Tensor[T, B], len(raws))
	for i, raw := range raws {
		parts[i] = New[T, B](raw, b)
	}
	return parts
}
