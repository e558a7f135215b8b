// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/layout/layout"
	"github.com/born-ml/layout/tensor"
)

func newPlanCmd() *cobra.Command {
	var (
		axis   int
		shapes []string
	)

	cmd := &cobra.Command{
		Use:   "plan --axis N --shape D0,D1,... [--shape ...]",
		Short: "Show how arrays partition into rows and columns along an axis",
		Example: "  born plan --axis 1 --shape 2,3 --shape 2,2\n" +
			"  born plan --axis -1 --shape 4,2,6 --shape 4,2,1",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseShapes(shapes)
			if err != nil {
				return err
			}
			return showPlan(cmd.OutOrStdout(), parsed, axis)
		},
	}

	cmd.Flags().IntVar(&axis, "axis", 0, "axis to concatenate along (negative counts from the end)")
	cmd.Flags().StringArrayVar(&shapes, "shape", nil, "shape of one array, repeatable")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

// planShapes checks that shapes can be concatenated along axis and returns
// the normalized axis, the combined shape and the partition.
func planShapes(shapes []tensor.Shape, axis int) (int, tensor.Shape, layout.Partition, error) {
	if len(shapes) == 0 {
		return 0, nil, layout.Partition{}, layout.ErrNoInputs
	}

	ref := shapes[0]
	dim, ok := tensor.NormalizeAxis(axis, len(ref))
	if !ok {
		return 0, nil, layout.Partition{}, fmt.Errorf("%w: axis %d for rank %d", layout.ErrAxisOutOfRange, axis, len(ref))
	}

	combined := ref.Clone()
	combined[dim] = 0
	counts := make([]int, len(shapes))
	for i, s := range shapes {
		if same, d := ref.EqualExcept(s, dim); !same {
			if d < 0 {
				return 0, nil, layout.Partition{}, fmt.Errorf("%w: array %d has rank %d, want %d", layout.ErrShapeMismatch, i, len(s), len(ref))
			}
			return 0, nil, layout.Partition{}, fmt.Errorf("%w: array %d dimension %d is %d, want %d", layout.ErrShapeMismatch, i, d, s[d], ref[d])
		}
		combined[dim] += s[dim]
		counts[i] = s.NumElements()
	}

	p, err := layout.NewPartition(ref, dim, counts)
	if err != nil {
		return 0, nil, layout.Partition{}, err
	}
	return dim, combined, p, nil
}

func showPlan(w io.Writer, shapes []tensor.Shape, axis int) error {
	dim, combined, p, err := planShapes(shapes, axis)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "axis %d, %d rows, output %s (%d columns)\n\n", dim, p.Rows, formatShape(combined), p.Width)

	offsets := p.Offsets()
	data := make([][]string, len(shapes))
	for i, s := range shapes {
		data[i] = []string{
			strconv.Itoa(i),
			formatShape(s),
			strconv.Itoa(p.Cols[i]),
			strconv.Itoa(offsets[i]),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INDEX", "SHAPE", "COLUMNS", "OFFSET"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}
