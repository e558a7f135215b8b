// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/layout/backend/cpu"
	"github.com/born-ml/layout/layout"
	"github.com/born-ml/layout/tensor"
)

type benchOptions struct {
	shape      string
	axis       int
	parts      int
	iterations int
	sequential bool
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Time chunk and concatenation round trips on the CPU backend",
		Example: "  born bench --shape 256,64,128 --axis 1 --parts 4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "shape", "256,64,128", "shape of the input tensor")
	cmd.Flags().IntVar(&opts.axis, "axis", 1, "axis to split and concatenate along")
	cmd.Flags().IntVar(&opts.parts, "parts", 4, "number of equal chunks")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 100, "round trips to time")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "copy on the calling goroutine only")
	return cmd
}

type benchResult struct {
	op    string
	total time.Duration
	bytes int
}

func runBench(w io.Writer, opts benchOptions) error {
	if opts.iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", opts.iterations)
	}

	shape, err := parseShape(opts.shape)
	if err != nil {
		return err
	}

	cfg := cpu.DefaultConfig()
	if opts.sequential {
		cfg.Enabled = false
	}
	backend := cpu.NewWithConfig(cfg)

	ranges, err := rowRanges(cfg, shape, opts.axis)
	if err != nil {
		return err
	}

	x := tensor.Arange[float32](shape, backend)
	klog.V(2).InfoS("Benchmark input", "shape", shape, "axis", opts.axis, "parts", opts.parts, "parallel", cfg.Enabled, "rowRanges", ranges)

	var split, concat benchResult
	split.op, concat.op = "chunk", "cat"
	for range opts.iterations {
		start := time.Now()
		parts, err := x.Chunk(opts.parts, opts.axis)
		if err != nil {
			return err
		}
		split.total += time.Since(start)

		start = time.Now()
		y, err := tensor.Cat(parts, opts.axis)
		if err != nil {
			return err
		}
		concat.total += time.Since(start)

		if !y.Shape().Equal(x.Shape()) {
			return fmt.Errorf("round trip changed shape %v to %v", x.Shape(), y.Shape())
		}
	}
	split.bytes = x.Raw().ByteSize()
	concat.bytes = split.bytes

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"OP", "ITERATIONS", "ROW RANGES", "AVG", "THROUGHPUT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, r := range []benchResult{split, concat} {
		avg := r.total / time.Duration(opts.iterations)
		table.Append([]string{
			r.op,
			fmt.Sprint(opts.iterations),
			fmt.Sprint(ranges),
			avg.String(),
			throughput(r.bytes, avg),
		})
	}
	table.Render()
	return nil
}

// rowRanges reports how many row ranges cfg spreads one copy over for a
// tensor of the given shape split along axis.
func rowRanges(cfg cpu.Config, shape tensor.Shape, axis int) (int, error) {
	dim, ok := tensor.NormalizeAxis(axis, len(shape))
	if !ok {
		return 0, fmt.Errorf("%w: axis %d for rank %d", layout.ErrAxisOutOfRange, axis, len(shape))
	}
	rows, err := layout.Flatten(shape, dim)
	if err != nil {
		return 0, err
	}
	return cfg.Splits(rows), nil
}

func throughput(bytes int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	mb := float64(bytes) / (1 << 20)
	return fmt.Sprintf("%.1f MiB/s", mb/d.Seconds())
}
