// Package tensor provides the core tensor types consumed by the layout engine.
package tensor

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// BFloat16 holds the raw bits of a brain floating point value.
// The layout engine only moves these bits; use BFloat16ToFloat32 for math.
type BFloat16 uint16

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool | float16.Float16 | BFloat16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Float16
	BFloat16Type
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16, BFloat16Type:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	case BFloat16Type:
		return "bfloat16"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the runtime DataType for the element type T.
func DataTypeOf[T DType]() DataType {
	var dummy T
	return inferDataType(dummy)
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	case float16.Float16:
		return Float16
	case BFloat16:
		return BFloat16Type
	default:
		panic("unsupported type")
	}
}

// BFloat16FromFloat32 converts float32 values to bfloat16 bits (truncating the mantissa).
func BFloat16FromFloat32(values []float32) []BFloat16 {
	encoded := bfloat16.EncodeFloat32(values)
	out := make([]BFloat16, len(values))
	for i := range out {
		out[i] = BFloat16(uint16(encoded[2*i]) | uint16(encoded[2*i+1])<<8)
	}
	return out
}

// BFloat16ToFloat32 widens bfloat16 bits to float32 values.
func BFloat16ToFloat32(values []BFloat16) []float32 {
	encoded := make([]byte, 2*len(values))
	for i, v := range values {
		encoded[2*i] = byte(v)
		encoded[2*i+1] = byte(v >> 8)
	}
	return bfloat16.DecodeFloat32(encoded)
}

// Float16FromFloat32 converts float32 values to IEEE 754 half precision.
func Float16FromFloat32(values []float32) []float16.Float16 {
	out := make([]float16.Float16, len(values))
	for i, v := range values {
		out[i] = float16.Fromfloat32(v)
	}
	return out
}

// Float16ToFloat32 widens half precision values to float32.
func Float16ToFloat32(values []float16.Float16) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = v.Float32()
	}
	return out
}
