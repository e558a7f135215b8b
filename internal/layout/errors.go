package layout

import (
	"errors"
	"fmt"
)

// Validation failures. Every error returned by Concat and Split wraps one of
// these, and is returned before any output element is written.
var (
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrAxisOutOfRange    = errors.New("axis out of range")
	ErrNonDivisible      = errors.New("element count not divisible by rows")
	ErrSlotCount         = errors.New("reference shape count does not match output count")
	ErrNoInputs          = errors.New("at least one array required")
	ErrDTypeMismatch     = errors.New("element type mismatch")
	ErrUnallocated       = errors.New("buffer shorter than element count")
	ErrUnsupportedDevice = errors.New("unsupported device")
)

// LayoutError describes which array failed validation and why.
type LayoutError struct {
	Op      string // "concat" or "split"
	Index   int    // Position of the offending input/output, -1 if not array specific
	Details string
	Err     error // One of the sentinel errors above
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: array %d: %v: %s", e.Op, e.Index, e.Err, e.Details)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the sentinel error.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

func fail(op string, index int, err error, format string, args ...any) error {
	return &LayoutError{Op: op, Index: index, Err: err, Details: fmt.Sprintf(format, args...)}
}
