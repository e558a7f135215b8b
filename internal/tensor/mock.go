package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It moves elements one at a time through full coordinate arithmetic,
// which makes it slow but an independent oracle for the strided engine.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Cat concatenates tensors element by element.
func (m *MockBackend) Cat(tensors []*RawTensor, dim int) (*RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("cat: at least one tensor required")
	}
	shape := tensors[0].Shape()
	dim, ok := NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, fmt.Errorf("cat: dimension %d out of range for %dD tensor", dim, len(shape))
	}

	total := 0
	for i, t := range tensors {
		if same, d := shape.EqualExcept(t.Shape(), dim); !same {
			return nil, fmt.Errorf("cat: tensor %d differs at dimension %d", i, d)
		}
		total += t.Shape()[dim]
	}

	result, err := NewRaw(shape.WithDim(dim, total), tensors[0].DType(), m.Device())
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, t := range tensors {
		moveElements(t, result, dim, offset, true)
		offset += t.Shape()[dim]
	}
	return result, nil
}

// Split partitions x element by element.
func (m *MockBackend) Split(x *RawTensor, sizes []int, dim int) ([]*RawTensor, error) {
	dim, ok := NormalizeAxis(dim, len(x.Shape()))
	if !ok {
		return nil, fmt.Errorf("split: dimension %d out of range for %dD tensor", dim, len(x.Shape()))
	}

	total := 0
	for _, s := range sizes {
		total += s
	}
	if total != x.Shape()[dim] {
		return nil, fmt.Errorf("split: sizes %v do not add up to %d", sizes, x.Shape()[dim])
	}

	results := make([]*RawTensor, len(sizes))
	offset := 0
	for i, s := range sizes {
		part, err := NewRaw(x.Shape().WithDim(dim, s), x.DType(), m.Device())
		if err != nil {
			return nil, err
		}
		moveElements(part, x, dim, offset, false)
		results[i] = part
		offset += s
	}
	return results, nil
}

// Chunk splits x into n equal parts.
func (m *MockBackend) Chunk(x *RawTensor, n, dim int) ([]*RawTensor, error) {
	if n <= 0 {
		return nil, fmt.Errorf("chunk: n must be positive, got %d", n)
	}
	dim, ok := NormalizeAxis(dim, len(x.Shape()))
	if !ok {
		return nil, fmt.Errorf("chunk: dimension %d out of range for %dD tensor", dim, len(x.Shape()))
	}
	if x.Shape()[dim]%n != 0 {
		return nil, fmt.Errorf("chunk: dimension %d size %d not divisible by %d", dim, x.Shape()[dim], n)
	}
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = x.Shape()[dim] / n
	}
	return m.Split(x, sizes, dim)
}

// moveElements walks every element of part and maps it to whole, shifted by
// offset along dim. toWhole selects the copy direction.
func moveElements(part, whole *RawTensor, dim, offset int, toWhole bool) {
	shape := part.Shape()
	strides := shape.ComputeStrides()
	wholeStrides := whole.Shape().ComputeStrides()
	size := part.DType().Size()

	var partBytes, wholeBytes []byte
	if toWhole {
		partBytes, wholeBytes = part.Data(), whole.MutableBytes()
	} else {
		partBytes, wholeBytes = part.MutableBytes(), whole.Data()
	}

	for i := 0; i < shape.NumElements(); i++ {
		wholeIdx := 0
		temp := i
		for d := 0; d < len(shape); d++ {
			coord := temp / strides[d]
			temp %= strides[d]
			if d == dim {
				coord += offset
			}
			wholeIdx += coord * wholeStrides[d]
		}

		p := partBytes[i*size : (i+1)*size]
		w := wholeBytes[wholeIdx*size : (wholeIdx+1)*size]
		if toWhole {
			copy(w, p)
		} else {
			copy(p, w)
		}
	}
}
