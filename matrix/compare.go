// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// Equal reports whether a and b have the same shape and identical elements.
// The concrete kinds do not matter: a *RowView equals a 1×N *Dense holding
// the same values. Two nil operands are equal; one nil operand is not.
//
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, db := denseOf(a), denseOf(b)
	for k := range da.data {
		if da.data[k] != db.data[k] {
			return false
		}
	}

	return true
}

// EqualApprox is Equal with an absolute-or-relative tolerance per element,
// delegating the comparison to gonum's floats.EqualApprox.
func EqualApprox(a, b Matrix, tol float64) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	return floats.EqualApprox(denseOf(a).data, denseOf(b).data, tol)
}
