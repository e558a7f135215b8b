// Package layout implements axis concatenation and split for contiguous
// row-major arrays.
//
// Both operations view every array as a two-dimensional matrix relative to
// the axis: rows is the product of the dimensions before the axis, and an
// array's column width is its element count divided by rows. Concatenation
// then writes each input into its own band of columns of the output, and
// split reads each output's band out of the input. Row k of every array
// lines up with row k of every other, so the N-dimensional problem becomes
// a strided copy of contiguous row segments.
//
// Concat and Split are generic over the element type; ConcatRaw and SplitRaw
// dispatch untyped tensors by their runtime DataType. All shape checks run
// before the first element is written, and failures wrap one of the Err*
// sentinels.
package layout
