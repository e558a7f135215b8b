package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/layout/internal/tensor"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		shape tensor.Shape
		axis  int
		rows  int
	}{
		{"axis 0 is empty product", tensor.Shape{4, 5}, 0, 1},
		{"axis 1", tensor.Shape{4, 5}, 1, 4},
		{"middle axis", tensor.Shape{2, 3, 4}, 2, 6},
		{"rank 1", tensor.Shape{7}, 0, 1},
		{"axis equals rank", tensor.Shape{2, 3}, 2, 6},
		{"zero leading dim", tensor.Shape{0, 3}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Flatten(tt.shape, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestFlattenAxisOutOfRange(t *testing.T) {
	for _, axis := range []int{-1, 3} {
		_, err := Flatten(tensor.Shape{2, 3}, axis)
		assert.ErrorIs(t, err, ErrAxisOutOfRange, "axis %d", axis)
	}
}

func TestColumnWidth(t *testing.T) {
	cols, err := ColumnWidth(12, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, cols)

	cols, err = ColumnWidth(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cols)

	_, err = ColumnWidth(10, 4)
	assert.True(t, errors.Is(err, ErrNonDivisible))

	_, err = ColumnWidth(3, 0)
	assert.ErrorIs(t, err, ErrNonDivisible)
}

func TestNewPartition(t *testing.T) {
	// (2,3) and (2,2) along axis 1.
	p, err := NewPartition(tensor.Shape{2, 3}, 1, []int{6, 4})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Rows)
	assert.Equal(t, 5, p.Width)
	if diff := cmp.Diff([]int{3, 2}, p.Cols); diff != "" {
		t.Errorf("Cols mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 3}, p.Offsets()); diff != "" {
		t.Errorf("Offsets mismatch (-want +got):\n%s", diff)
	}

	_, err = NewPartition(tensor.Shape{2, 3}, 1, []int{6, 5})
	assert.ErrorIs(t, err, ErrNonDivisible)
}
