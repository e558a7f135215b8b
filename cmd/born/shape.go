// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/layout/tensor"
)

// parseShape parses a comma separated list of dimensions such as "2,3,4".
// An empty string is a scalar.
func parseShape(s string) (tensor.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tensor.Shape{}, nil
	}

	fields := strings.Split(s, ",")
	shape := make(tensor.Shape, len(fields))
	for i, f := range fields {
		dim, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("shape %q: dimension %d: %w", s, i, err)
		}
		if dim < 0 {
			return nil, fmt.Errorf("shape %q: dimension %d is negative", s, i)
		}
		shape[i] = dim
	}
	return shape, nil
}

func parseShapes(values []string) ([]tensor.Shape, error) {
	shapes := make([]tensor.Shape, len(values))
	for i, v := range values {
		shape, err := parseShape(v)
		if err != nil {
			return nil, err
		}
		shapes[i] = shape
	}
	return shapes, nil
}

func formatShape(s tensor.Shape) string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
