package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Empty creates a tensor whose storage is allocated on first write.
// Use it for outputs handed to Cat or Split so the copy allocates exactly once.
func Empty[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := NewEmpty(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.MutableData()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
// Useful for checking where elements land after a layout change.
//
// Example:
//
//	t := tensor.Arange[int32](Shape{2, 3}, backend) // [[0 1 2] [3 4 5]]
func Arange[T ~float32 | ~float64 | ~int32 | ~int64 | ~uint8, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.MutableData()
	for i := range data {
		data[i] = T(i)
	}
	return t
}
