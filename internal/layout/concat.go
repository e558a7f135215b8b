package layout

import (
	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/internal/tensor"
)

// Concat copies inputs, in order, into out along axis.
//
// All inputs must share rank and every dimension except axis; out must have
// the same shape with out.Shape()[axis] equal to the sum of the inputs'
// sizes along axis. Nothing is written unless every check passes.
//
// Example:
//
//	// (2,3) ++ (2,2) along axis 1 -> (2,5);
//	// each output row is the input rows joined left to right.
//	err := layout.Concat(layout.DefaultContext(), []layout.Source[float32]{a, b}, 1, out)
func Concat[T tensor.DType](c Context, inputs []Source[T], axis int, out Sink[T]) error {
	const op = "concat"

	if err := c.check(op); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fail(op, -1, ErrNoInputs, "no inputs")
	}
	if out == nil {
		return fail(op, -1, ErrShapeMismatch, "nil output")
	}
	for i, in := range inputs {
		if in == nil {
			return fail(op, i, ErrShapeMismatch, "nil input")
		}
	}

	first := inputs[0].Shape()
	if axis < 0 || axis >= len(first) {
		return fail(op, -1, ErrAxisOutOfRange, "axis %d for rank %d", axis, len(first))
	}

	total := 0
	for i, in := range inputs {
		shape := in.Shape()
		if err := shape.Validate(); err != nil {
			return fail(op, i, ErrShapeMismatch, "%v", err)
		}
		if len(shape) != len(first) {
			return fail(op, i, ErrShapeMismatch, "rank %d, expected %d", len(shape), len(first))
		}
		if ok, d := first.EqualExcept(shape, axis); !ok {
			return fail(op, i, ErrShapeMismatch, "dimension %d is %d, expected %d", d, shape[d], first[d])
		}
		total += shape[axis]
	}

	if err := out.Shape().Validate(); err != nil {
		return fail(op, -1, ErrShapeMismatch, "output: %v", err)
	}
	if want := first.WithDim(axis, total); !out.Shape().Equal(want) {
		return fail(op, -1, ErrShapeMismatch, "output shape %v, expected %v", out.Shape(), want)
	}

	rows, err := Flatten(first, axis)
	if err != nil {
		return fail(op, -1, ErrAxisOutOfRange, "%v", err)
	}

	p := Partition{Rows: rows, Cols: make([]int, len(inputs))}
	srcs := make([][]T, len(inputs))
	for i, in := range inputs {
		n := in.NumElements()
		cols, err := ColumnWidth(n, rows)
		if err != nil {
			return fail(op, i, ErrNonDivisible, "%d elements over %d rows", n, rows)
		}
		p.Cols[i] = cols
		p.Width += cols

		srcs[i] = in.Data()
		if len(srcs[i]) < n {
			return fail(op, i, ErrUnallocated, "%d of %d elements", len(srcs[i]), n)
		}
	}

	outCols, err := ColumnWidth(out.NumElements(), rows)
	if err != nil {
		return fail(op, -1, ErrNonDivisible, "output: %d elements over %d rows", out.NumElements(), rows)
	}
	if outCols != p.Width {
		return fail(op, -1, ErrShapeMismatch, "output has %d columns, inputs sum to %d", outCols, p.Width)
	}

	dst := out.MutableData()
	if len(dst) < out.NumElements() {
		return fail(op, -1, ErrUnallocated, "output: %d of %d elements", len(dst), out.NumElements())
	}

	concatRows(c.Parallel, p, srcs, dst)
	return nil
}

// concatRows copies each input's rows into its column band of dst.
// Bands are disjoint, so row ranges of one input may be copied concurrently.
func concatRows[T tensor.DType](cfg parallel.Config, p Partition, srcs [][]T, dst []T) {
	col := 0
	for i, src := range srcs {
		cols := p.Cols[i]
		if cols == 0 {
			continue
		}
		offset := col
		parallel.ForRange(p.Rows, func(start, end int) {
			for k := start; k < end; k++ {
				at := k*p.Width + offset
				copy(dst[at:at+cols], src[k*cols:(k+1)*cols])
			}
		}, cfg)
		col += cols
	}
}
