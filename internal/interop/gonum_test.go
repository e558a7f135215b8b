package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/layout/internal/layout"
)

func TestConcatDenseColumns(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(2, 2, []float64{7, 8, 9, 10})

	got, err := ConcatDense(layout.SequentialContext(), 1, a, b)
	require.NoError(t, err)

	want := mat.NewDense(2, 5, []float64{
		1, 2, 3, 7, 8,
		4, 5, 6, 9, 10,
	})
	assert.True(t, mat.Equal(want, got), "got\n%v", mat.Formatted(got))
}

func TestConcatDenseRows(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 2})
	b := mat.NewDense(2, 2, []float64{3, 4, 5, 6})

	got, err := ConcatDense(layout.SequentialContext(), 0, a, b)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}), got))
}

func TestConcatDenseStridedView(t *testing.T) {
	base := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	// A 3x2 view has stride 4, so it must be compacted before copying.
	view := base.Slice(0, 3, 1, 3).(*mat.Dense)
	other := mat.NewDense(3, 1, []float64{-1, -2, -3})

	got, err := ConcatDense(layout.SequentialContext(), 1, view, other)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 3, []float64{1, 2, -1, 5, 6, -2, 9, 10, -3}), got))
}

func TestConcatDenseErrors(t *testing.T) {
	a := mat.NewDense(2, 2, nil)
	b := mat.NewDense(3, 2, nil)

	_, err := ConcatDense(layout.SequentialContext(), 0)
	assert.ErrorIs(t, err, layout.ErrNoInputs)

	_, err = ConcatDense(layout.SequentialContext(), 2, a)
	assert.ErrorIs(t, err, layout.ErrAxisOutOfRange)

	_, err = ConcatDense(layout.SequentialContext(), 1, a, b)
	assert.ErrorIs(t, err, layout.ErrShapeMismatch)
}

func TestSplitDenseRoundTrip(t *testing.T) {
	m := mat.NewDense(4, 6, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 6; c++ {
			m.Set(r, c, float64(10*r+c))
		}
	}

	for axis, sizes := range [][]int{{1, 3}, {2, 4}} {
		parts, err := SplitDense(layout.SequentialContext(), m, axis, sizes)
		require.NoError(t, err)
		require.Len(t, parts, 2)

		back, err := ConcatDense(layout.SequentialContext(), axis, parts...)
		require.NoError(t, err)
		assert.True(t, mat.Equal(m, back), "axis %d", axis)
	}

	parts, err := SplitDense(layout.SequentialContext(), m, 1, []int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, 12.0, parts[1].At(1, 0))
}

func TestSplitDenseErrors(t *testing.T) {
	m := mat.NewDense(2, 3, nil)

	_, err := SplitDense(layout.SequentialContext(), m, 1, []int{0, 3})
	assert.ErrorIs(t, err, layout.ErrShapeMismatch)

	_, err = SplitDense(layout.SequentialContext(), m, 1, []int{1, 1})
	assert.ErrorIs(t, err, layout.ErrShapeMismatch)

	_, err = SplitDense(layout.SequentialContext(), m, 1, nil)
	assert.ErrorIs(t, err, layout.ErrNoInputs)

	_, err = SplitDense(layout.SequentialContext(), nil, 0, []int{1})
	assert.ErrorIs(t, err, layout.ErrShapeMismatch)
}
