// SPDX-License-Identifier: MIT
package ops

import (
	"fmt"

	"github.com/katalvlaran/linefem/matrix"
)

// Inverse returns A⁻¹ for a square matrix A by running the Gaussian
// elimination of SolveGauss against the identity as right-hand side.
//
// Implementation:
//   - Stage 1: validate A is square and non-nil.
//   - Stage 2: build Iₙ and eliminate [A|Iₙ] on private copies.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	id, err := matrix.Identity(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	inv, err := eliminate(a.Clone(), id)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return inv, nil
}
