package tensor

// Backend defines the interface that compute backends implement for the
// data-movement operations of this module.
//
// Implementations:
//   - CPU: Pure Go strided copies (internal/backend/cpu)
type Backend interface {
	// Cat concatenates tensors along dim. Input order is output order.
	Cat(tensors []*RawTensor, dim int) (*RawTensor, error)

	// Split partitions x along dim into pieces of the given sizes.
	Split(x *RawTensor, sizes []int, dim int) ([]*RawTensor, error)

	// Chunk splits x into n equal parts along dim.
	Chunk(x *RawTensor, n, dim int) ([]*RawTensor, error)

	// Metadata
	Name() string
	Device() Device
}
