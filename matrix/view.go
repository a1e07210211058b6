// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// RowView is a non-owning alias of one row of a Dense (shared storage).
// It behaves as a 1×Cols matrix: writes go straight through to the base,
// and Equal treats it as interchangeable with an equivalent 1×N Dense.
type RowView struct {
	base *Dense // underlying storage owner
	i    int    // row index in base
}

var _ Matrix = (*RowView)(nil)

// Rows is always 1.
func (v *RowView) Rows() int { return 1 }

// Cols returns the width of the underlying row.
func (v *RowView) Cols() int { return v.base.c }

// Len returns the number of elements in the row.
func (v *RowView) Len() int { return v.base.c }

// Index returns the row number in the base matrix.
func (v *RowView) Index() int { return v.i }

// offset validates (i,j) against the 1×c shape and returns the base offset.
func (v *RowView) offset(i, j int) (int, error) {
	var ok bool
	if _, ok = normalizeIndex(i, 1); !ok {
		return 0, ErrOutOfRange
	}
	if j, ok = normalizeIndex(j, v.base.c); !ok {
		return 0, ErrOutOfRange
	}

	return v.i*v.base.c + j, nil
}

// At reads element (0,j). Row index must be 0 (or -1).
func (v *RowView) At(i, j int) (float64, error) {
	off, err := v.offset(i, j)
	if err != nil {
		return 0, fmt.Errorf("RowView.At(%d,%d): %w", i, j, err)
	}

	return v.base.data[off], nil
}

// Set writes element (0,j) through to the base matrix.
func (v *RowView) Set(i, j int, val float64) error {
	off, err := v.offset(i, j)
	if err != nil {
		return fmt.Errorf("RowView.Set(%d,%d): %w", i, j, err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("RowView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[off] = val

	return nil
}

// AtIndex reads element j of the row.
func (v *RowView) AtIndex(j int) (float64, error) { return v.At(0, j) }

// SetIndex writes element j of the row.
func (v *RowView) SetIndex(j int, val float64) error { return v.Set(0, j, val) }

// Assign overwrites the whole row with src, which must be 1×Cols.
func (v *RowView) Assign(src Matrix) error {
	if src == nil {
		return fmt.Errorf("RowView.Assign: %w", ErrNilMatrix)
	}
	if src.Rows() != 1 || src.Cols() != v.base.c {
		return fmt.Errorf("RowView.Assign: got %dx%d, want 1x%d: %w", src.Rows(), src.Cols(), v.base.c, ErrDimensionMismatch)
	}
	vals := make([]float64, v.base.c)
	for j := range vals {
		x, err := src.At(0, j)
		if err != nil {
			return fmt.Errorf("RowView.Assign: %w", err)
		}
		vals[j] = x
	}
	copy(v.base.data[v.i*v.base.c:], vals)

	return nil
}

// Values copies the row into a new slice.
func (v *RowView) Values() []float64 {
	out := make([]float64, v.base.c)
	copy(out, v.base.data[v.i*v.base.c:(v.i+1)*v.base.c])

	return out
}

// Clone materialises the row as an independent 1×N Dense.
func (v *RowView) Clone() *Dense {
	return &Dense{r: 1, c: v.base.c, data: v.Values()}
}

// String renders the row like a 1×N Dense.
func (v *RowView) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for j, x := range v.Values() {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}
