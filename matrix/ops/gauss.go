// SPDX-License-Identifier: MIT
// Package ops provides the elimination machinery for the matrix package:
// Gaussian solves with zero-pivot repair, inversion and Doolittle LU.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linefem/matrix"
)

// ErrSingular is returned when a column has no usable pivot anywhere.
var ErrSingular = errors.New("ops: singular matrix")

// relPivotTol scales with the largest |A[i][j]| to decide when a pivot is zero.
const relPivotTol = 1e-12

// checkSystem validates that A is square and B has A's row count.
func checkSystem(tag string, a, b matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if b.Rows() != a.Rows() {
		return fmt.Errorf("%s: rhs has %d rows, want %d: %w", tag, b.Rows(), a.Rows(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// pivotTolerance returns relPivotTol·max|A|, or an error for an all-zero A.
func pivotTolerance(a *matrix.Dense) (float64, error) {
	maxAbs := 0.0
	a.Do(func(_, _ int, v float64) bool {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
		return true
	})
	if maxAbs == 0 {
		return 0, ErrSingular
	}

	return relPivotTol * maxAbs, nil
}

// addRows performs row[dst] += row[src] on both sides of the system.
func addRows(a, b *matrix.Dense, dst, src int) {
	_ = a.AddRow(dst, src, 1)
	_ = b.AddRow(dst, src, 1)
}

// findRow returns the first row in [from,to) whose entry in column col
// exceeds tol in magnitude, or -1.
func findRow(a *matrix.Dense, col, from, to int, tol float64) int {
	for r := from; r < to; r++ {
		if v, _ := a.At(r, col); math.Abs(v) > tol {
			return r
		}
	}

	return -1
}

// repairDiagonal makes every diagonal entry non-zero before elimination by
// adding into row i another row with a non-zero entry in column i. Later rows
// are preferred; earlier rows are the fallback.
func repairDiagonal(a, b *matrix.Dense, tol float64) error {
	n := a.Rows()
	for i := 0; i < n; i++ {
		if v, _ := a.At(i, i); math.Abs(v) > tol {
			continue
		}
		r := findRow(a, i, i+1, n, tol)
		if r < 0 {
			r = findRow(a, i, 0, i, tol)
		}
		if r < 0 {
			return fmt.Errorf("column %d has no non-zero entry: %w", i, ErrSingular)
		}
		addRows(a, b, i, r)
	}

	return nil
}

// eliminate reduces [A|B] to upper unit-triangular form in place and
// back-substitutes, returning X with A·X = B.
//
// Implementation:
//   - Stage 1: derive the zero tolerance from max|A| and repair zero diagonals.
//   - Stage 2: for each pivot k, repair from a later row if elimination zeroed it,
//     normalise row k, then subtract the right multiple of row k from every row below.
//   - Stage 3: back-substitute from the last row upward, column by column of B.
//
// Complexity:
//   - Time O(n²·(n+m)), Space O(n·m) for X.
func eliminate(a, b *matrix.Dense) (*matrix.Dense, error) {
	tol, err := pivotTolerance(a)
	if err != nil {
		return nil, err
	}
	if err = repairDiagonal(a, b, tol); err != nil {
		return nil, err
	}

	n, m := a.Rows(), b.Cols()
	var (
		k, r       int
		pivot, fac float64
	)
	for k = 0; k < n; k++ {
		pivot, _ = a.At(k, k)
		if math.Abs(pivot) <= tol {
			src := findRow(a, k, k+1, n, tol)
			if src < 0 {
				return nil, fmt.Errorf("zero pivot at %d: %w", k, ErrSingular)
			}
			addRows(a, b, k, src)
			pivot, _ = a.At(k, k)
		}
		_ = a.ScaleRow(k, 1/pivot)
		_ = b.ScaleRow(k, 1/pivot)
		for r = k + 1; r < n; r++ {
			fac, _ = a.At(r, k)
			if fac == 0 {
				continue
			}
			_ = a.AddRow(r, k, -fac)
			_ = b.AddRow(r, k, -fac)
		}
	}

	x, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	var (
		i, j, col int
		sum, aij  float64
		xj, bi    float64
	)
	for col = 0; col < m; col++ {
		for i = n - 1; i >= 0; i-- {
			bi, _ = b.At(i, col)
			sum = bi
			for j = i + 1; j < n; j++ {
				aij, _ = a.At(i, j)
				xj, _ = x.At(j, col)
				sum -= aij * xj
			}
			if err = x.Set(i, col, sum); err != nil {
				return nil, fmt.Errorf("back substitution: %w", err)
			}
		}
	}

	return x, nil
}

// SolveGauss solves A·X = B by Gaussian elimination with zero-pivot repair.
// B may hold several right-hand sides as columns. Neither operand is mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for bad operands.
//   - ErrSingular when some column has no usable pivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveGauss(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := checkSystem("SolveGauss", a, b); err != nil {
		return nil, err
	}
	x, err := eliminate(a.Clone(), b.Clone())
	if err != nil {
		return nil, fmt.Errorf("SolveGauss: %w", err)
	}

	return x, nil
}
