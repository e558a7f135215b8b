package cpu

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/born-ml/layout/internal/layout"
	"github.com/born-ml/layout/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	b, _ := tensor.NewRaw(tensor.Shape{2, 5}, tensor.Float32, tensor.CPU)
//	c, err := backend.Cat([]*tensor.RawTensor{a, b}, 1) // Shape: [2, 8]
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("cat: %w", layout.ErrNoInputs)
	}
	if tensors[0] == nil {
		return nil, fmt.Errorf("cat: tensor 0: %w", layout.ErrShapeMismatch)
	}

	shape := tensors[0].Shape()
	axis, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, fmt.Errorf("cat: dimension %d for %dD tensor: %w", dim, len(shape), layout.ErrAxisOutOfRange)
	}

	// The output shape only needs the axis total; the engine checks the rest.
	total := 0
	for i, t := range tensors {
		if t == nil || len(t.Shape()) != len(shape) {
			return nil, fmt.Errorf("cat: tensor %d: %w", i, layout.ErrShapeMismatch)
		}
		total += t.Shape()[axis]
	}

	result, err := tensor.NewEmpty(shape.WithDim(axis, total), tensors[0].DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("cat: %w", err)
	}

	if err := layout.ConcatRaw(cpu.context(), tensors, axis, result); err != nil {
		return nil, err
	}

	klog.V(4).InfoS("cat", "inputs", len(tensors), "dim", axis, "dtype", result.DType(), "shape", result.Shape())
	return result, nil
}

// Split partitions x along dim into consecutive pieces of the given sizes.
//
// The sizes must add up to x's size along dim. A zero size yields an empty
// piece. Supports negative dim indexing.
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{4, 6}, tensor.Float32, tensor.CPU)
//	parts, err := backend.Split(x, []int{2, 4}, 1) // [4, 2] and [4, 4]
func (cpu *CPUBackend) Split(x *tensor.RawTensor, sizes []int, dim int) ([]*tensor.RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("split: %w", layout.ErrShapeMismatch)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("split: no sizes: %w", layout.ErrNoInputs)
	}

	shape := x.Shape()
	axis, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, fmt.Errorf("split: dimension %d for %dD tensor: %w", dim, len(shape), layout.ErrAxisOutOfRange)
	}

	refs := make([]tensor.Shape, len(sizes))
	results := make([]*tensor.RawTensor, len(sizes))
	for i, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("split: size %d is %d: %w", i, size, layout.ErrShapeMismatch)
		}
		refs[i] = shape.WithDim(axis, size)

		part, err := tensor.NewEmpty(refs[i], x.DType(), cpu.device)
		if err != nil {
			return nil, fmt.Errorf("split: %w", err)
		}
		results[i] = part
	}

	if err := layout.SplitRaw(cpu.context(), x, axis, refs, results); err != nil {
		return nil, err
	}

	klog.V(4).InfoS("split", "outputs", len(sizes), "dim", axis, "dtype", x.DType(), "shape", shape)
	return results, nil
}

// Chunk splits tensor into n equal parts along the specified dimension.
//
// The dimension size must be divisible by n.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3, 6}, tensor.Float32, tensor.CPU)
//	parts, err := backend.Chunk(x, 3, -1) // 3 tensors of shape [2, 3, 2]
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) ([]*tensor.RawTensor, error) {
	if n <= 0 {
		return nil, fmt.Errorf("chunk: n must be positive, got %d: %w", n, layout.ErrNoInputs)
	}
	if x == nil {
		return nil, fmt.Errorf("chunk: %w", layout.ErrShapeMismatch)
	}

	shape := x.Shape()
	axis, ok := tensor.NormalizeAxis(dim, len(shape))
	if !ok {
		return nil, fmt.Errorf("chunk: dimension %d for %dD tensor: %w", dim, len(shape), layout.ErrAxisOutOfRange)
	}

	dimSize := shape[axis]
	if dimSize%n != 0 {
		return nil, fmt.Errorf("chunk: dimension %d size %d not divisible by %d: %w", axis, dimSize, n, layout.ErrNonDivisible)
	}

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = dimSize / n
	}
	return cpu.Split(x, sizes, axis)
}

// SplitInto copies slices of x into caller-supplied outputs.
//
// refs[j] is the shape of slice j. outs[j] may be nil to skip that slice;
// otherwise it must have shape refs[j] and x's dtype, and is allocated on
// first write if it has no storage yet. Supports negative dim indexing.
func (cpu *CPUBackend) SplitInto(x *tensor.RawTensor, dim int, refs []tensor.Shape, outs []*tensor.RawTensor) error {
	if x == nil {
		return fmt.Errorf("split: %w", layout.ErrShapeMismatch)
	}
	axis, ok := tensor.NormalizeAxis(dim, len(x.Shape()))
	if !ok {
		return fmt.Errorf("split: dimension %d for %dD tensor: %w", dim, len(x.Shape()), layout.ErrAxisOutOfRange)
	}

	if err := layout.SplitRaw(cpu.context(), x, axis, refs, outs); err != nil {
		return err
	}

	if klogV := klog.V(4); klogV.Enabled() {
		skipped := 0
		for _, out := range outs {
			if out == nil {
				skipped++
			}
		}
		klogV.InfoS("split into", "outputs", len(outs), "skipped", skipped, "dim", axis, "dtype", x.DType())
	}
	return nil
}

// CatInto concatenates tensors into a caller-supplied output along dim.
// Supports negative dim indexing relative to out's rank.
func (cpu *CPUBackend) CatInto(tensors []*tensor.RawTensor, dim int, out *tensor.RawTensor) error {
	if out == nil {
		return fmt.Errorf("cat: %w", layout.ErrShapeMismatch)
	}
	axis, ok := tensor.NormalizeAxis(dim, len(out.Shape()))
	if !ok {
		return fmt.Errorf("cat: dimension %d for %dD tensor: %w", dim, len(out.Shape()), layout.ErrAxisOutOfRange)
	}

	if err := layout.ConcatRaw(cpu.context(), tensors, axis, out); err != nil {
		return err
	}

	klog.V(4).InfoS("cat into", "inputs", len(tensors), "dim", axis, "dtype", out.DType(), "shape", out.Shape())
	return nil
}
