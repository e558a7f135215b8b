package layout

import (
	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/internal/tensor"
)

// Split copies consecutive slices of in along axis into outs.
//
// refs[j] is the shape slot j covers; it determines the slice width even
// when outs[j] is Absent. The refs must match in on every dimension except
// axis, and their sizes along axis must add up to in.Shape()[axis]. A
// present output must have exactly its reference shape. Nothing is written
// unless every check passes.
func Split[T tensor.DType](c Context, in Source[T], axis int, refs []tensor.Shape, outs []Slot[T]) error {
	const op = "split"

	if err := c.check(op); err != nil {
		return err
	}
	if len(refs) != len(outs) {
		return fail(op, -1, ErrSlotCount, "%d reference shapes, %d outputs", len(refs), len(outs))
	}
	if len(refs) == 0 {
		return fail(op, -1, ErrNoInputs, "no reference shapes")
	}
	if in == nil {
		return fail(op, -1, ErrShapeMismatch, "nil input")
	}

	shape := in.Shape()
	if axis < 0 || axis >= len(shape) {
		return fail(op, -1, ErrAxisOutOfRange, "axis %d for rank %d", axis, len(shape))
	}

	total := 0
	for j, ref := range refs {
		if err := ref.Validate(); err != nil {
			return fail(op, j, ErrShapeMismatch, "%v", err)
		}
		if len(ref) != len(shape) {
			return fail(op, j, ErrShapeMismatch, "reference rank %d, input rank %d", len(ref), len(shape))
		}
		if ok, d := shape.EqualExcept(ref, axis); !ok {
			return fail(op, j, ErrShapeMismatch, "reference dimension %d is %d, input has %d", d, ref[d], shape[d])
		}
		total += ref[axis]

		if sink := outs[j].Sink(); outs[j].IsPresent() {
			if !sink.Shape().Equal(ref) {
				return fail(op, j, ErrShapeMismatch, "output shape %v, reference %v", sink.Shape(), ref)
			}
			if sink.NumElements() != ref.NumElements() {
				return fail(op, j, ErrShapeMismatch, "output holds %d elements, reference %d", sink.NumElements(), ref.NumElements())
			}
		}
	}
	if total != shape[axis] {
		return fail(op, -1, ErrShapeMismatch, "references cover %d along axis %d, input has %d", total, axis, shape[axis])
	}

	rows, err := Flatten(refs[0], axis)
	if err != nil {
		return fail(op, -1, ErrAxisOutOfRange, "%v", err)
	}

	p := Partition{Rows: rows, Cols: make([]int, len(refs))}
	for j, ref := range refs {
		cols, err := ColumnWidth(ref.NumElements(), rows)
		if err != nil {
			return fail(op, j, ErrNonDivisible, "%d elements over %d rows", ref.NumElements(), rows)
		}
		p.Cols[j] = cols
		p.Width += cols
	}

	inCols, err := ColumnWidth(in.NumElements(), rows)
	if err != nil {
		return fail(op, -1, ErrNonDivisible, "input: %d elements over %d rows", in.NumElements(), rows)
	}
	if inCols != p.Width {
		return fail(op, -1, ErrShapeMismatch, "input has %d columns, references sum to %d", inCols, p.Width)
	}

	src := in.Data()
	if len(src) < in.NumElements() {
		return fail(op, -1, ErrUnallocated, "input: %d of %d elements", len(src), in.NumElements())
	}

	dsts := make([][]T, len(outs))
	for j, slot := range outs {
		if !slot.IsPresent() {
			continue
		}
		dsts[j] = slot.Sink().MutableData()
		if len(dsts[j]) < p.Rows*p.Cols[j] {
			return fail(op, j, ErrUnallocated, "%d of %d elements", len(dsts[j]), p.Rows*p.Cols[j])
		}
	}

	splitRows(c.Parallel, p, src, dsts)
	return nil
}

// splitRows walks the input row by row, handing each slot its column band.
// A nil destination is an absent slot: its band is skipped, not removed.
func splitRows[T tensor.DType](cfg parallel.Config, p Partition, src []T, dsts [][]T) {
	if p.Width == 0 {
		return
	}
	parallel.ForRange(p.Rows, func(start, end int) {
		for k := start; k < end; k++ {
			col := k * p.Width
			for j, cols := range p.Cols {
				if dst := dsts[j]; dst != nil {
					copy(dst[k*cols:(k+1)*cols], src[col:col+cols])
				}
				col += cols
			}
		}
	}, cfg)
}
