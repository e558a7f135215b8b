// Package interop runs the layout engine over gonum matrices.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/layout/internal/layout"
	"github.com/born-ml/layout/internal/tensor"
)

// denseArray exposes a row-major gonum matrix as a layout source and sink.
// Matrices with a row stride wider than their column count are compacted
// on construction, so Data is always contiguous.
type denseArray struct {
	m    *mat.Dense
	data []float64
}

func newDenseArray(m *mat.Dense) *denseArray {
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		m = mat.DenseCopyOf(m)
		raw = m.RawMatrix()
	}
	return &denseArray{m: m, data: raw.Data[:raw.Rows*raw.Cols]}
}

func (d *denseArray) Shape() tensor.Shape {
	r, c := d.m.Dims()
	return tensor.Shape{r, c}
}

func (d *denseArray) NumElements() int {
	r, c := d.m.Dims()
	return r * c
}

func (d *denseArray) Data() []float64 { return d.data }

func (d *denseArray) MutableData() []float64 { return d.data }

// ConcatDense joins matrices along axis 0 (stacking rows) or axis 1 (joining
// columns). A single matrix is returned as a copy.
func ConcatDense(c layout.Context, axis int, ms ...*mat.Dense) (*mat.Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("concat dense: %w", layout.ErrNoInputs)
	}
	if axis != 0 && axis != 1 {
		return nil, fmt.Errorf("concat dense: axis %d for a matrix: %w", axis, layout.ErrAxisOutOfRange)
	}

	srcs := make([]layout.Source[float64], len(ms))
	var rows, cols, total int
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("concat dense: matrix %d is nil: %w", i, layout.ErrShapeMismatch)
		}
		srcs[i] = newDenseArray(m)
		r, c := m.Dims()
		if i == 0 {
			rows, cols = r, c
		}
		if axis == 0 {
			total += r
		} else {
			total += c
		}
	}
	if axis == 0 {
		rows = total
	} else {
		cols = total
	}

	out := newDenseArray(mat.NewDense(rows, cols, nil))
	if err := layout.Concat[float64](c, srcs, axis, out); err != nil {
		return nil, err
	}
	return out.m, nil
}

// SplitDense cuts m along axis into pieces of the given sizes. gonum has no
// empty matrices, so every size must be positive.
func SplitDense(c layout.Context, m *mat.Dense, axis int, sizes []int) ([]*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("split dense: nil matrix: %w", layout.ErrShapeMismatch)
	}
	if axis != 0 && axis != 1 {
		return nil, fmt.Errorf("split dense: axis %d for a matrix: %w", axis, layout.ErrAxisOutOfRange)
	}

	in := newDenseArray(m)
	shape := in.Shape()

	refs := make([]tensor.Shape, len(sizes))
	total := 0
	for j, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("split dense: size %d is %d: %w", j, size, layout.ErrShapeMismatch)
		}
		refs[j] = shape.WithDim(axis, size)
		total += size
	}
	// Validate before gonum allocates, since NewDense panics on bad sizes.
	if len(sizes) > 0 && total != shape[axis] {
		return nil, fmt.Errorf("split dense: sizes add up to %d, axis %d has %d: %w", total, axis, shape[axis], layout.ErrShapeMismatch)
	}

	outs := make([]*denseArray, len(sizes))
	slots := make([]layout.Slot[float64], len(sizes))
	for j, ref := range refs {
		outs[j] = newDenseArray(mat.NewDense(ref[0], ref[1], nil))
		slots[j] = layout.Present[float64](outs[j])
	}

	if err := layout.Split[float64](c, in, axis, refs, slots); err != nil {
		return nil, err
	}

	result := make([]*mat.Dense, len(outs))
	for j, o := range outs {
		result[j] = o.m
	}
	return result, nil
}
