package layout

import (
	"github.com/x448/float16"

	"github.com/born-ml/layout/internal/tensor"
)

// ConcatRaw is Concat for untyped tensors. All tensors must share out's
// element type; the copy runs through the generic engine for that type.
func ConcatRaw(c Context, inputs []*tensor.RawTensor, axis int, out *tensor.RawTensor) error {
	const op = "concat"

	if len(inputs) == 0 {
		return fail(op, -1, ErrNoInputs, "no inputs")
	}
	if out == nil {
		return fail(op, -1, ErrShapeMismatch, "nil output")
	}
	dt := out.DType()
	for i, in := range inputs {
		if in == nil {
			return fail(op, i, ErrShapeMismatch, "nil input")
		}
		if in.DType() != dt {
			return fail(op, i, ErrDTypeMismatch, "%s, output is %s", in.DType(), dt)
		}
	}

	switch dt {
	case tensor.Float32:
		return concatRaw[float32](c, inputs, axis, out)
	case tensor.Float64:
		return concatRaw[float64](c, inputs, axis, out)
	case tensor.Int32:
		return concatRaw[int32](c, inputs, axis, out)
	case tensor.Int64:
		return concatRaw[int64](c, inputs, axis, out)
	case tensor.Uint8:
		return concatRaw[uint8](c, inputs, axis, out)
	case tensor.Bool:
		return concatRaw[bool](c, inputs, axis, out)
	case tensor.Float16:
		return concatRaw[float16.Float16](c, inputs, axis, out)
	case tensor.BFloat16Type:
		return concatRaw[tensor.BFloat16](c, inputs, axis, out)
	default:
		return fail(op, -1, ErrDTypeMismatch, "unsupported dtype %s", dt)
	}
}

func concatRaw[T tensor.DType](c Context, inputs []*tensor.RawTensor, axis int, out *tensor.RawTensor) error {
	srcs := make([]Source[T], len(inputs))
	for i, in := range inputs {
		v, err := tensor.ViewOf[T](in)
		if err != nil {
			return fail("concat", i, ErrDTypeMismatch, "%v", err)
		}
		srcs[i] = v
	}
	dst, err := tensor.ViewOf[T](out)
	if err != nil {
		return fail("concat", -1, ErrDTypeMismatch, "%v", err)
	}
	return Concat[T](c, srcs, axis, dst)
}

// SplitRaw is Split for untyped tensors. A nil entry in outs is an absent
// slot. Present outputs must share in's element type.
func SplitRaw(c Context, in *tensor.RawTensor, axis int, refs []tensor.Shape, outs []*tensor.RawTensor) error {
	const op = "split"

	if in == nil {
		return fail(op, -1, ErrShapeMismatch, "nil input")
	}
	dt := in.DType()
	for j, out := range outs {
		if out != nil && out.DType() != dt {
			return fail(op, j, ErrDTypeMismatch, "%s, input is %s", out.DType(), dt)
		}
	}

	switch dt {
	case tensor.Float32:
		return splitRaw[float32](c, in, axis, refs, outs)
	case tensor.Float64:
		return splitRaw[float64](c, in, axis, refs, outs)
	case tensor.Int32:
		return splitRaw[int32](c, in, axis, refs, outs)
	case tensor.Int64:
		return splitRaw[int64](c, in, axis, refs, outs)
	case tensor.Uint8:
		return splitRaw[uint8](c, in, axis, refs, outs)
	case tensor.Bool:
		return splitRaw[bool](c, in, axis, refs, outs)
	case tensor.Float16:
		return splitRaw[float16.Float16](c, in, axis, refs, outs)
	case tensor.BFloat16Type:
		return splitRaw[tensor.BFloat16](c, in, axis, refs, outs)
	default:
		return fail(op, -1, ErrDTypeMismatch, "unsupported dtype %s", dt)
	}
}

func splitRaw[T tensor.DType](c Context, in *tensor.RawTensor, axis int, refs []tensor.Shape, outs []*tensor.RawTensor) error {
	src, err := tensor.ViewOf[T](in)
	if err != nil {
		return fail("split", -1, ErrDTypeMismatch, "%v", err)
	}
	slots := make([]Slot[T], len(outs))
	for j, out := range outs {
		if out == nil {
			slots[j] = Absent[T]()
			continue
		}
		v, err := tensor.ViewOf[T](out)
		if err != nil {
			return fail("split", j, ErrDTypeMismatch, "%v", err)
		}
		slots[j] = Present[T](v)
	}
	return Split[T](c, src, axis, refs, slots)
}
