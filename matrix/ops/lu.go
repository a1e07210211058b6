// SPDX-License-Identifier: MIT
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linefem/matrix"
)

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with m = L·U.
// No pivoting is performed; a zero U[i][i] yields ErrSingular.
// Time Complexity: O(n³), where n = m.Rows(); Memory: O(n²) for L and U.
func LU(m matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	// Stage 1: Validate input is square
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()
	a := m.Clone()
	tol, err := pivotTolerance(a)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 2: Prepare L and U matrices
	L, err := matrix.Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k    int
		sum        float64
		lVal, uVal float64
		aVal       float64
		uDiag      float64
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = a.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}
		uDiag, _ = U.At(i, i)
		if math.Abs(uDiag) <= tol {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}
		// L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = a.At(j, i)
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	// Stage 4: Finalize and return
	return L, U, nil
}

// SolveLU solves A·X = B via Doolittle LU and forward/backward substitution.
// Symmetric positive definite systems, such as a constrained stiffness matrix,
// never need pivoting; other systems may fail with ErrSingular where
// SolveGauss would succeed.
func SolveLU(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := checkSystem("SolveLU", a, b); err != nil {
		return nil, err
	}
	L, U, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("SolveLU: %w", err)
	}

	n, cols := a.Rows(), b.Cols()
	x, err := matrix.NewDense(n, cols)
	if err != nil {
		return nil, fmt.Errorf("SolveLU: %w", err)
	}
	y := make([]float64, n)

	var (
		col, i, k int
		sum, v    float64
		xk, pivot float64
	)
	for col = 0; col < cols; col++ {
		// Forward substitution: L·y = b[:,col]
		for i = 0; i < n; i++ {
			sum, _ = b.At(i, col)
			for k = 0; k < i; k++ {
				v, _ = L.At(i, k)
				sum -= v * y[k]
			}
			y[i] = sum
		}
		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				v, _ = U.At(i, k)
				xk, _ = x.At(k, col)
				sum -= v * xk
			}
			pivot, _ = U.At(i, i)
			if err = x.Set(i, col, sum/pivot); err != nil {
				return nil, fmt.Errorf("SolveLU: %w", err)
			}
		}
	}

	return x, nil
}
