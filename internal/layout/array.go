package layout

import (
	"reflect"

	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/internal/tensor"
)

// Source is a read-only contiguous row-major array.
type Source[T tensor.DType] interface {
	Shape() tensor.Shape
	NumElements() int
	// Data returns the elements, or nil if the array has no storage.
	Data() []T
}

// Sink is a writable contiguous row-major array.
type Sink[T tensor.DType] interface {
	Shape() tensor.Shape
	NumElements() int
	// MutableData returns NumElements writable elements, allocating storage
	// sized to Shape on first call.
	MutableData() []T
}

// Slot is one output position of Split. An absent slot receives nothing but
// still occupies its reference width along the axis. Build slots with
// Present or Absent; a nil sink, including a typed nil pointer, is absent.
type Slot[T tensor.DType] struct {
	sink    Sink[T]
	present bool
}

// Present returns a slot that receives its slice of the input.
// A nil sink yields an absent slot.
func Present[T tensor.DType](sink Sink[T]) Slot[T] {
	if isNil(sink) {
		return Slot[T]{}
	}
	return Slot[T]{sink: sink, present: true}
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Absent returns a slot whose slice of the input is skipped.
func Absent[T tensor.DType]() Slot[T] {
	return Slot[T]{}
}

// IsPresent reports whether the slot has a sink.
func (s Slot[T]) IsPresent() bool {
	return s.present
}

// Sink returns the slot's sink, or nil for an absent slot.
func (s Slot[T]) Sink() Sink[T] {
	return s.sink
}

// Context selects where and how a layout operation runs.
// Only CPU execution is implemented.
type Context struct {
	Device   tensor.Device
	Parallel parallel.Config
}

// DefaultContext runs on the CPU with the default parallel configuration.
func DefaultContext() Context {
	return Context{Device: tensor.CPU, Parallel: parallel.DefaultConfig()}
}

// SequentialContext runs on the CPU on the calling goroutine only.
func SequentialContext() Context {
	return Context{Device: tensor.CPU, Parallel: parallel.Sequential()}
}

func (c Context) check(op string) error {
	if c.Device != tensor.CPU {
		return fail(op, -1, ErrUnsupportedDevice, "%s", c.Device)
	}
	return nil
}
