package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/layout/internal/parallel"
	"github.com/born-ml/layout/internal/tensor"
)

func TestConcatRowsJoinedAlongLastAxis(t *testing.T) {
	a := newArray(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
	b := newArray(tensor.Shape{2, 2}, []int32{7, 8, 9, 10})
	out := empty[int32](tensor.Shape{2, 5})

	err := Concat(SequentialContext(), sources(a, b), 1, out)
	require.NoError(t, err)

	want := []int32{
		1, 2, 3, 7, 8,
		4, 5, 6, 9, 10,
	}
	if diff := cmp.Diff(want, out.data); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, out.mutable, "output buffer requested exactly once")
}

func TestConcatOrderSensitivity(t *testing.T) {
	a := seq(tensor.Shape{2, 2}, 0)
	b := seq(tensor.Shape{3, 2}, 100)

	ab := empty[int32](tensor.Shape{5, 2})
	require.NoError(t, Concat(SequentialContext(), sources(a, b), 0, ab))
	ba := empty[int32](tensor.Shape{5, 2})
	require.NoError(t, Concat(SequentialContext(), sources(b, a), 0, ba))

	assert.NotEqual(t, ab.data, ba.data)

	// The axis-0 boundary sits exactly at a.Shape()[0].
	assert.Equal(t, a.data, ab.data[:4])
	assert.Equal(t, b.data, ab.data[4:])
	assert.Equal(t, b.data, ba.data[:6])
}

func TestConcatSingleInputIsIdentity(t *testing.T) {
	a := seq(tensor.Shape{3, 4, 2}, 1)

	for axis := 0; axis < 3; axis++ {
		out := empty[int32](a.shape)
		require.NoError(t, Concat(SequentialContext(), sources(a), axis, out))
		assert.Equal(t, a.data, out.data, "axis %d", axis)
	}
}

func TestConcatZeroWidthInput(t *testing.T) {
	a := seq(tensor.Shape{2, 2}, 0)
	gap := newArray(tensor.Shape{2, 0}, []int32{})
	b := seq(tensor.Shape{2, 1}, 10)

	withGap := empty[int32](tensor.Shape{2, 3})
	require.NoError(t, Concat(SequentialContext(), sources(a, gap, b), 1, withGap))

	without := empty[int32](tensor.Shape{2, 3})
	require.NoError(t, Concat(SequentialContext(), sources(a, b), 1, without))

	assert.Equal(t, []int32{0, 1, 10, 2, 3, 11}, withGap.data)
	assert.Equal(t, without.data, withGap.data)
}

func TestConcatEmptyRows(t *testing.T) {
	a := newArray(tensor.Shape{0, 3}, []int32{})
	b := newArray(tensor.Shape{0, 2}, []int32{})
	out := empty[int32](tensor.Shape{0, 5})

	require.NoError(t, Concat(SequentialContext(), sources(a, b), 1, out))
	assert.Empty(t, out.data)
}

func TestConcatMiddleAxisMatchesElementwise(t *testing.T) {
	backend := tensor.NewMockBackend()
	shapes := []tensor.Shape{{2, 1, 3}, {2, 4, 3}, {2, 2, 3}}

	raws := make([]*tensor.RawTensor, len(shapes))
	arrays := make([]*array[int32], len(shapes))
	base := int32(0)
	for i, s := range shapes {
		arrays[i] = seq(s, base)
		base += int32(s.NumElements())

		raw, err := tensor.NewRaw(s, tensor.Int32, tensor.CPU)
		require.NoError(t, err)
		copy(raw.AsInt32(), arrays[i].data)
		raws[i] = raw
	}

	want, err := backend.Cat(raws, 1)
	require.NoError(t, err)

	out := empty[int32](tensor.Shape{2, 7, 3})
	require.NoError(t, Concat(SequentialContext(), sources(arrays...), 1, out))

	if diff := cmp.Diff(want.AsInt32(), out.data); diff != "" {
		t.Errorf("Concat differs from element-wise oracle (-want +got):\n%s", diff)
	}
}

func TestConcatParallelMatchesSequential(t *testing.T) {
	a := seq(tensor.Shape{512, 3, 5}, 0)
	b := seq(tensor.Shape{512, 3, 2}, 1_000_000)

	seqOut := empty[int32](tensor.Shape{512, 3, 7})
	require.NoError(t, Concat(SequentialContext(), sources(a, b), 2, seqOut))

	c := Context{Device: tensor.CPU, Parallel: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}}
	parOut := empty[int32](tensor.Shape{512, 3, 7})
	require.NoError(t, Concat(c, sources(a, b), 2, parOut))

	assert.Equal(t, seqOut.data, parOut.data)
}

func TestConcatValidation(t *testing.T) {
	tests := []struct {
		name   string
		inputs []*array[int32]
		axis   int
		out    tensor.Shape
		want   error
	}{
		{
			name: "no inputs",
			axis: 0,
			out:  tensor.Shape{1},
			want: ErrNoInputs,
		},
		{
			name:   "axis equals rank",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0)},
			axis:   2,
			out:    tensor.Shape{2, 2},
			want:   ErrAxisOutOfRange,
		},
		{
			name:   "negative axis",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0)},
			axis:   -1,
			out:    tensor.Shape{2, 2},
			want:   ErrAxisOutOfRange,
		},
		{
			name:   "rank mismatch",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0), seq(tensor.Shape{2, 2, 1}, 0)},
			axis:   1,
			out:    tensor.Shape{2, 4},
			want:   ErrShapeMismatch,
		},
		{
			name:   "non-axis dimension mismatch",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0), seq(tensor.Shape{3, 2}, 0)},
			axis:   1,
			out:    tensor.Shape{2, 4},
			want:   ErrShapeMismatch,
		},
		{
			name:   "output axis size wrong",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0), seq(tensor.Shape{2, 2}, 0)},
			axis:   1,
			out:    tensor.Shape{2, 5},
			want:   ErrShapeMismatch,
		},
		{
			name:   "negative input dimension",
			inputs: []*array[int32]{seq(tensor.Shape{2, 3}, 0), newArray(tensor.Shape{2, -1}, []int32{})},
			axis:   1,
			out:    tensor.Shape{2, 2},
			want:   ErrShapeMismatch,
		},
		{
			name:   "unallocated input",
			inputs: []*array[int32]{seq(tensor.Shape{2, 2}, 0), empty[int32](tensor.Shape{2, 2})},
			axis:   0,
			out:    tensor.Shape{4, 2},
			want:   ErrUnallocated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := empty[int32](tt.out)
			err := Concat(SequentialContext(), sources(tt.inputs...), tt.axis, out)
			require.ErrorIs(t, err, tt.want)

			var le *LayoutError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, "concat", le.Op)
			assert.Zero(t, out.mutable, "output must not be touched on failure")
			assert.Nil(t, out.data)
		})
	}
}

// lyingArray reports an element count that disagrees with its shape.
type lyingArray struct {
	*array[int32]
	n int
}

func (l lyingArray) NumElements() int { return l.n }

func TestConcatNonDivisibleElementCount(t *testing.T) {
	a := seq(tensor.Shape{2, 2}, 0)
	odd := lyingArray{array: seq(tensor.Shape{2, 2}, 0), n: 3}
	out := empty[int32](tensor.Shape{2, 4})

	err := Concat(SequentialContext(), []Source[int32]{a, odd}, 1, out)
	require.ErrorIs(t, err, ErrNonDivisible)

	var le *LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Index)
	assert.Zero(t, out.mutable)
}

func TestConcatUnsupportedDevice(t *testing.T) {
	a := seq(tensor.Shape{2}, 0)
	out := empty[int32](tensor.Shape{2})

	err := Concat(Context{Device: tensor.WebGPU}, sources(a), 0, out)
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.Zero(t, out.mutable)
}

func TestLayoutErrorMessage(t *testing.T) {
	err := fail("split", 2, ErrShapeMismatch, "output shape %v", tensor.Shape{1, 2})
	assert.Equal(t, "split: array 2: shape mismatch: output shape [1 2]", err.Error())

	err = fail("concat", -1, ErrNoInputs, "no inputs")
	assert.Equal(t, "concat: at least one array required: no inputs", err.Error())
}

func BenchmarkConcat(b *testing.B) {
	x := seq(tensor.Shape{256, 64, 32}, 0)
	y := seq(tensor.Shape{256, 64, 32}, 0)

	for _, bc := range []struct {
		name string
		c    Context
	}{
		{"sequential", SequentialContext()},
		{"parallel", DefaultContext()},
	} {
		b.Run(bc.name, func(b *testing.B) {
			out := empty[int32](tensor.Shape{256, 64, 64})
			for i := 0; i < b.N; i++ {
				if err := Concat(bc.c, sources(x, y), 2, out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
