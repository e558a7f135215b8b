// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop concatenates and splits gonum matrices with the layout engine.
//
// Matrices are treated as rank-2 row-major arrays: axis 0 stacks rows and
// axis 1 joins columns. Strided views (for example from Slice) are accepted.
//
// Example:
//
//	a := mat.NewDense(2, 3, nil)
//	b := mat.NewDense(2, 2, nil)
//	ab, err := interop.ConcatDense(layout.DefaultContext(), 1, a, b) // 2x5
package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/layout/internal/interop"
	"github.com/born-ml/layout/layout"
)

// ConcatDense joins matrices along axis 0 (rows) or 1 (columns) into a new matrix.
func ConcatDense(c layout.Context, axis int, ms ...*mat.Dense) (*mat.Dense, error) {
	return interop.ConcatDense(c, axis, ms...)
}

// SplitDense cuts m along axis into new matrices of the given positive sizes.
func SplitDense(c layout.Context, m *mat.Dense, axis int, sizes []int) ([]*mat.Dense, error) {
	return interop.SplitDense(c, m, axis, sizes)
}
