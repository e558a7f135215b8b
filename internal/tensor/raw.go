package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/x448/float16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer for Copy-on-Write semantics.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level tensor representation.
//
// Storage is either allocated up front (NewRaw) or on the first mutable
// access (NewEmpty). Clones share the buffer until one of them asks for
// mutable data, at which point that clone detaches a private copy.
type RawTensor struct {
	buffer *tensorBuffer // nil until allocated
	shape  Shape
	stride []int
	dtype  DataType
	device Device
	mu     sync.Mutex // guards lazy allocation and detach
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated immediately and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	r, err := NewEmpty(shape, dtype, device)
	if err != nil {
		return nil, err
	}
	r.buffer = newTensorBuffer(r.ByteSize())
	return r, nil
}

// NewEmpty creates a RawTensor whose storage is allocated on the first call
// to MutableBytes (or a typed mutable accessor). Until then Data returns nil.
func NewEmpty(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsAllocated reports whether the tensor has backing storage.
func (r *RawTensor) IsAllocated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffer != nil && r.buffer.data != nil
}

// Data returns the raw byte slice, or nil if storage was never allocated.
// WARNING: Direct access to underlying memory. Do not write through it;
// use MutableBytes so shared buffers are detached first.
func (r *RawTensor) Data() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buffer == nil {
		return nil
	}
	return r.buffer.data
}

// MutableBytes returns a writable byte slice sized to the declared shape,
// allocating storage on first use and detaching a shared buffer.
func (r *RawTensor) MutableBytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.buffer == nil || r.buffer.data == nil:
		r.buffer = newTensorBuffer(r.ByteSize())
	case !r.buffer.isUnique():
		detached := newTensorBuffer(len(r.buffer.data))
		copy(detached.data, r.buffer.data)
		r.buffer.release()
		r.buffer = detached
	}
	return r.buffer.data
}

// asSlice reinterprets a byte buffer as n elements of T.
func asSlice[T DType](data []byte, n int) []T {
	if data == nil {
		return nil
	}
	if n == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

func (r *RawTensor) mustBe(dt DataType) {
	if r.dtype != dt {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustBe(Float32)
	return asSlice[float32](r.Data(), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustBe(Float64)
	return asSlice[float64](r.Data(), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.mustBe(Int32)
	return asSlice[int32](r.Data(), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	r.mustBe(Int64)
	return asSlice[int64](r.Data(), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustBe(Uint8)
	return asSlice[uint8](r.Data(), r.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	r.mustBe(Bool)
	return asSlice[bool](r.Data(), r.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	r.mustBe(Float16)
	return asSlice[float16.Float16](r.Data(), r.NumElements())
}

// AsBFloat16 interprets the data as []BFloat16.
// Panics if the tensor's dtype is not BFloat16Type.
func (r *RawTensor) AsBFloat16() []BFloat16 {
	r.mustBe(BFloat16Type)
	return asSlice[BFloat16](r.Data(), r.NumElements())
}

// Clone creates a shallow copy of the RawTensor (shares buffer with reference counting).
// The buffer is copied only when one of the sharers asks for mutable data.
func (r *RawTensor) Clone() *RawTensor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buffer != nil {
		r.buffer.addRef()
	}
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.buffer != nil {
		r.buffer.release()
		r.buffer = nil
	}
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffer == nil || r.buffer.isUnique()
}
