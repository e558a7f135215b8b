package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// A dimension of size zero makes the whole tensor empty.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
// Zero-sized dimensions are legal and describe empty segments along an axis.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// EqualExcept reports whether two shapes have the same rank and agree on
// every dimension other than axis. It returns the first differing dimension,
// or -1 when the shapes agree.
func (s Shape) EqualExcept(other Shape, axis int) (bool, int) {
	if len(s) != len(other) {
		return false, -1
	}
	for d := range s {
		if d != axis && s[d] != other[d] {
			return false, d
		}
	}
	return true, -1
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// WithDim returns a copy of the shape with dimension axis set to size.
func (s Shape) WithDim(axis, size int) Shape {
	out := s.Clone()
	out[axis] = size
	return out
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeAxis maps a possibly negative axis (-1 = last dimension) into
// [0, rank). The second return value is false when the axis is out of range.
func NormalizeAxis(axis, rank int) (int, bool) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return axis, false
	}
	return axis, true
}
