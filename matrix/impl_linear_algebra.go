// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction (with single-row broadcasting),
// matrix multiplication, outer products, transpose and scalar scaling.
// All functions validate up front and return wrapped sentinels on mismatch.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - Operands are read through denseOf, so *Dense and *RowView take the same flat path.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opOuter     = "Outer"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNeg       = "Neg"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns m itself when it is a *Dense, otherwise a materialised copy.
// The result must be treated as read-only by callers.
func denseOf(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}

	return m.Clone()
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil operands and broadcastable shapes.
//   - Stage 2: equal shapes walk the flat buffers once; a 1×c b is reused for every row of a.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateBroadcastable(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	da, db := denseOf(a), denseOf(b)
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if db.r == da.r {
		for k := range res.data {
			res.data[k] = da.data[k] + sign*db.data[k]
		}

		return res, nil
	}

	// Broadcast: b is a single row of width c.
	var i, j, base int
	for i = 0; i < da.r; i++ {
		base = i * da.c
		for j = 0; j < da.c; j++ {
			res.data[base+j] = da.data[base+j] + sign*db.data[j]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// B must have A's shape, or be a single row of A's width (added to every row).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B with the same shape rules as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: i→k→j loop over row-major buffers, skipping zero A[i,k].
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, db := denseOf(a), denseOf(b)
	r, n, c := da.r, da.c, db.c
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				res.data[i*c+j] += aik * db.data[k*c+j]
			}
		}
	}

	return res, nil
}

// Outer returns the outer product u·vᵀ as a len(u)×len(v) matrix.
func Outer(u, v []float64) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	var i, j int
	for i = range u {
		for j = range v {
			res.data[i*res.c+j] = u[i] * v[j]
		}
	}

	return res, nil
}

// MatVec computes y = A·x for a plain slice x.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	d := denseOf(m)
	y := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		sum = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns a new matrix Aᵀ with shape (c×r).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	d := denseOf(m)
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·A.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Neg returns -A.
func Neg(m Matrix) (*Dense, error) {
	res, err := Scale(m, -1)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}
