// SPDX-License-Identifier: MIT

// Package matrix: public interface and small enums shared by Dense and RowView.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Both *Dense and *RowView implement it, so arithmetic and comparison accept
// either operand kind.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j). Negative indices count
	// from the end. Returns ErrOutOfRange for invalid indices.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf for
	// non-finite values.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy as a *Dense.
	Clone() *Dense
}

// Orientation states whether a flat sequence becomes a column (n×1) or a
// row (1×n) when passed to FromSlice.
type Orientation uint8

const (
	// AsColumn lays the values out as an n×1 column vector.
	AsColumn Orientation = iota
	// AsRow lays the values out as a 1×n row vector.
	AsRow
)

// String returns "column" or "row".
func (o Orientation) String() string {
	if o == AsRow {
		return "row"
	}
	return "column"
}
