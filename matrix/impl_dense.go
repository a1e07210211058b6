// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Normalise negative indices (-1 is the last row/column) before bounds checks.
//   - Offer flat single-index access for row and column vectors.
//   - Provide in-place row kernels (AddRow, ScaleRow) used by elimination in matrix/ops.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(1); AddRow/ScaleRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAddAt    = "AddAt"
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
	ctxRow      = "Row"
	ctxAddRow   = "AddRow"
	ctxScaleRow = "ScaleRow"
	ctxApply    = "Apply"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
func NewFilled(rows, cols int, fill float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if fill != 0 {
		for k := range m.data {
			m.data[k] = fill
		}
	}

	return m, nil
}

// NewSquare creates an n×n matrix with every element set to fill.
func NewSquare(n int, fill float64) (*Dense, error) {
	return NewFilled(n, n, fill)
}

// Diag returns an n×n matrix with v on the main diagonal and zeros elsewhere.
func Diag(n int, v float64) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = v
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) { return Diag(n, 1) }

// FromRows copies a nested slice into a new Dense.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows (ErrBadShape).
//   - Stage 2: copy row by row into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromSlice copies a flat sequence into a column (AsColumn) or row (AsRow) vector.
func FromSlice(vals []float64, o Orientation) (*Dense, error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	var m *Dense
	var err error
	if o == AsRow {
		m, err = NewDense(1, len(vals))
	} else {
		m, err = NewDense(len(vals), 1)
	}
	if err != nil {
		return nil, err
	}
	copy(m.data, vals)

	return m, nil
}

// Column is shorthand for FromSlice(vals, AsColumn).
func Column(vals ...float64) (*Dense, error) { return FromSlice(vals, AsColumn) }

// RowVector is shorthand for FromSlice(vals, AsRow).
func RowVector(vals ...float64) (*Dense, error) { return FromSlice(vals, AsRow) }

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the total number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// IsVector reports whether the matrix has a single row or a single column.
func (m *Dense) IsVector() bool { return m.r == 1 || m.c == 1 }

// normalizeIndex maps a possibly negative index into [0,n) and reports validity.
func normalizeIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return i, false
	}

	return i, true
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: normalise negative row/col against r and c.
//   - Stage 2: validate 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 3: compute row*c + col.
func (m *Dense) indexOf(row, col int) (int, error) {
	var ok bool
	if row, ok = normalizeIndex(row, m.r); !ok {
		return 0, ErrOutOfRange
	}
	if col, ok = normalizeIndex(col, m.c); !ok {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or NaN/Inf).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AddAt accumulates v into (row, col): m[row,col] += v.
// Assembly uses it so contributions from several elements sum rather than overwrite.
func (m *Dense) AddAt(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	nv := m.data[off] + v
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return denseErrorf(ctxAddAt, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// flatIndex validates a single index on a vector-shaped matrix.
func (m *Dense) flatIndex(k int) (int, error) {
	if !m.IsVector() {
		return 0, ErrNotVector
	}
	k, ok := normalizeIndex(k, len(m.data))
	if !ok {
		return 0, ErrOutOfRange
	}

	return k, nil
}

// AtIndex reads element k of a row or column vector.
// Returns ErrNotVector when both dimensions exceed one.
func (m *Dense) AtIndex(k int) (float64, error) {
	off, err := m.flatIndex(k)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxAtIndex, k, err)
	}

	return m.data[off], nil
}

// SetIndex writes element k of a row or column vector.
func (m *Dense) SetIndex(k int, v float64) error {
	off, err := m.flatIndex(k)
	if err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a write-through view of row i. Negative i counts from the end.
func (m *Dense) Row(i int) (*RowView, error) {
	ni, ok := normalizeIndex(i, m.r)
	if !ok {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return &RowView{base: m, i: ni}, nil
}

// AddRow performs the in-place row operation row[dst] += alpha * row[src].
//
// Implementation:
//   - Stage 1: normalise and bounds-check both row indices.
//   - Stage 2: single pass over the columns of the two rows.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddRow(dst, src int, alpha float64) error {
	d, ok := normalizeIndex(dst, m.r)
	if !ok {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	s, ok := normalizeIndex(src, m.r)
	if !ok {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	db, sb := d*m.c, s*m.c
	for j := 0; j < m.c; j++ {
		m.data[db+j] += alpha * m.data[sb+j]
	}

	return nil
}

// ScaleRow multiplies every element of row i by alpha in place.
func (m *Dense) ScaleRow(i int, alpha float64) error {
	ni, ok := normalizeIndex(i, m.r)
	if !ok {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	base := ni * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= alpha
	}

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows copies the matrix into a freshly allocated nested slice.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Values returns a copy of the flat row-major buffer.
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Elements written before a NaN/Inf result remain updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if math.IsNaN(nv) || math.IsInf(nv, 0) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String renders rows as lines with comma-separated values. Intended for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
