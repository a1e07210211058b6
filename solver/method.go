// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/linefem/matrix"
	"github.com/katalvlaran/linefem/matrix/ops"
)

// Sentinel errors of the solver package.
var (
	// ErrInvalidMethod is returned for a method name or value the solver does not know.
	ErrInvalidMethod = errors.New("solver: invalid method")

	// ErrNilStructure is returned by New for a nil structure.
	ErrNilStructure = errors.New("solver: nil structure")

	// ErrEmptyStructure is returned by New for a structure without nodes.
	ErrEmptyStructure = errors.New("solver: structure has no degrees of freedom")

	// ErrSingular re-exports ops.ErrSingular so callers need not import matrix/ops.
	ErrSingular = ops.ErrSingular
)

// Method selects the linear solve strategy.
type Method int

const (
	// Gauss solves K·u = f by Gaussian elimination with zero-pivot repair.
	Gauss Method = iota
	// InverseMatrix computes K⁻¹ by the same elimination and returns K⁻¹·f.
	InverseMatrix
	// LU solves through a Doolittle factorisation.
	LU
)

var methodNames = map[Method]string{
	Gauss:         "gauss",
	InverseMatrix: "inverse",
	LU:            "lu",
}

// String returns the canonical lower-case name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// ParseMethod maps "gauss", "inv"/"inverse" and "lu" (case-insensitive) to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gauss":
		return Gauss, nil
	case "inv", "inverse":
		return InverseMatrix, nil
	case "lu":
		return LU, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", name, ErrInvalidMethod)
	}
}

// solveWith dispatches one linear solve K·u = f.
func solveWith(m Method, K, f *matrix.Dense) (*matrix.Dense, error) {
	switch m {
	case Gauss:
		return ops.SolveGauss(K, f)
	case InverseMatrix:
		inv, err := ops.Inverse(K)
		if err != nil {
			return nil, err
		}
		return matrix.Mul(inv, f)
	case LU:
		return ops.SolveLU(K, f)
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrInvalidMethod)
	}
}
