package tensor

import "fmt"

// View is a typed window onto a RawTensor. It satisfies the source and sink
// interfaces of the layout engine without copying.
type View[T DType] struct {
	raw *RawTensor
}

// ViewOf returns a typed view of raw. It fails if raw does not hold T.
func ViewOf[T DType](raw *RawTensor) (View[T], error) {
	if raw == nil {
		return View[T]{}, fmt.Errorf("view: nil tensor")
	}
	want := DataTypeOf[T]()
	if raw.DType() != want {
		return View[T]{}, fmt.Errorf("view: tensor dtype is %s, not %s", raw.DType(), want)
	}
	return View[T]{raw: raw}, nil
}

// Raw returns the viewed tensor.
func (v View[T]) Raw() *RawTensor {
	return v.raw
}

// Shape returns the tensor's shape.
func (v View[T]) Shape() Shape {
	return v.raw.Shape()
}

// NumElements returns the total number of elements.
func (v View[T]) NumElements() int {
	return v.raw.NumElements()
}

// Data returns the elements read-only, or nil if storage is unallocated.
func (v View[T]) Data() []T {
	return asSlice[T](v.raw.Data(), v.raw.NumElements())
}

// MutableData returns writable elements, allocating storage if needed.
func (v View[T]) MutableData() []T {
	return asSlice[T](v.raw.MutableBytes(), v.raw.NumElements())
}
