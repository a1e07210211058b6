// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the stiffness solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (negative indices count from the end, -1 is the last row/column).
//   - RowView, a write-through alias of one row that behaves as a 1×N matrix.
//   - Kernels Add, Sub (with single-row broadcasting), Mul, Outer, MatVec,
//     Transpose, Scale and Neg; each allocates a fresh result.
//   - Row operations AddRow and ScaleRow used by elimination in matrix/ops.
//   - Equal, EqualApprox and Format for comparison and display.
//
// Every failure is a wrapped sentinel from errors.go; test with errors.Is.
// Nothing in this package panics on bad input.
//
// See matrix/ops for Gaussian elimination, inversion and LU decomposition.
package matrix
