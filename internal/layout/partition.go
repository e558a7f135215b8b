package layout

import (
	"fmt"

	"github.com/born-ml/layout/internal/tensor"
)

// Flatten returns the number of rows of the two-dimensional view of shape
// relative to axis: the product of the dimensions before axis (1 when axis
// is 0). axis may equal len(shape), in which case every element is its own row.
func Flatten(shape tensor.Shape, axis int) (int, error) {
	if axis < 0 || axis > len(shape) {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrAxisOutOfRange, axis, len(shape))
	}
	rows := 1
	for _, dim := range shape[:axis] {
		rows *= dim
	}
	return rows, nil
}

// ColumnWidth returns numElements / rows. With zero rows every width is zero.
func ColumnWidth(numElements, rows int) (int, error) {
	if rows == 0 {
		if numElements != 0 {
			return 0, fmt.Errorf("%w: %d elements over 0 rows", ErrNonDivisible, numElements)
		}
		return 0, nil
	}
	if numElements%rows != 0 {
		return 0, fmt.Errorf("%w: %d elements over %d rows", ErrNonDivisible, numElements, rows)
	}
	return numElements / rows, nil
}

// Partition is the two-dimensional view shared by the arrays of one
// concat or split: every array has Rows rows, array i has Cols[i] columns,
// and the combined array has Width columns.
type Partition struct {
	Rows  int
	Cols  []int
	Width int
}

// NewPartition derives the partition for arrays holding counts elements,
// with rows taken from ref and axis.
func NewPartition(ref tensor.Shape, axis int, counts []int) (Partition, error) {
	rows, err := Flatten(ref, axis)
	if err != nil {
		return Partition{}, err
	}

	p := Partition{Rows: rows, Cols: make([]int, len(counts))}
	for i, n := range counts {
		cols, err := ColumnWidth(n, rows)
		if err != nil {
			return Partition{}, fmt.Errorf("array %d: %w", i, err)
		}
		p.Cols[i] = cols
		p.Width += cols
	}
	return p, nil
}

// Offsets returns the starting column of each array within the combined width.
func (p Partition) Offsets() []int {
	offsets := make([]int, len(p.Cols))
	col := 0
	for i, c := range p.Cols {
		offsets[i] = col
		col += c
	}
	return offsets
}
