// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/linefem/matrix"
	"github.com/katalvlaran/linefem/structure"
)

// Solver owns a private copy of a structure together with its assembled
// system. Raw K and f are kept for reporting; boundary conditions are applied
// to separate working copies, so the caller's structure is never touched.
// A Solver is not safe for concurrent use.
type Solver struct {
	s      *structure.Structure
	rawK   *matrix.Dense
	rawF   *matrix.Dense
	k      *matrix.Dense
	f      *matrix.Dense
	pinned []int

	applied bool
	result  *matrix.Dense
	solved  Method

	method Method
	log    *zap.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMethod sets the default method used by Displacements.
func WithMethod(m Method) Option {
	return func(s *Solver) { s.method = m }
}

// New clones st and assembles its stiffness matrix and load vector.
//
// Implementation:
//   - Stage 1: reject nil or empty structures and unknown default methods.
//   - Stage 2: deep-copy the structure, assemble raw K and f.
//   - Stage 3: take working copies for boundary elimination.
func New(st *structure.Structure, opts ...Option) (*Solver, error) {
	if st == nil {
		return nil, ErrNilStructure
	}
	if st.DOF() == 0 {
		return nil, ErrEmptyStructure
	}

	sv := &Solver{method: Gauss, log: zap.NewNop()}
	for _, opt := range opts {
		opt(sv)
	}
	if !sv.method.Valid() {
		return nil, fmt.Errorf("New: %w", ErrInvalidMethod)
	}

	sv.s = st.Clone()
	var err error
	if sv.rawK, err = sv.s.GlobalStiffness(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if sv.rawF, err = sv.s.LoadVector(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	sv.k, sv.f = sv.rawK.Clone(), sv.rawF.Clone()
	sv.pinned = sv.s.PinnedDOFs()

	sv.log.Debug("system assembled",
		zap.Int("nodes", sv.s.NodeCount()),
		zap.Int("elements", sv.s.ElementCount()),
		zap.Int("dof", sv.s.DOF()),
		zap.Int("pinned", len(sv.pinned)),
	)

	return sv, nil
}

// Eliminate applies zero-displacement supports to copies of K and f: for each
// pinned DOF i, row i and column i of K are zeroed, K[i][i] = 1 and f[i] = 0.
// The inputs are left unchanged. Applying it twice gives the same result.
//
// Complexity: O(p·n) for p pinned DOFs on an n×n system.
func Eliminate(K, f matrix.Matrix, pinned []int) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(K); err != nil {
		return nil, nil, fmt.Errorf("Eliminate: %w", err)
	}
	if err := matrix.ValidateNotNil(f); err != nil {
		return nil, nil, fmt.Errorf("Eliminate: %w", err)
	}
	n := K.Rows()
	if f.Rows() != n {
		return nil, nil, fmt.Errorf("Eliminate: f has %d rows, want %d: %w", f.Rows(), n, matrix.ErrDimensionMismatch)
	}

	k, rhs := K.Clone(), f.Clone()
	var (
		i, j int
		err  error
	)
	for _, i = range pinned {
		if i < 0 || i >= n {
			return nil, nil, fmt.Errorf("Eliminate: dof %d: %w", i, matrix.ErrOutOfRange)
		}
		for j = 0; j < n; j++ {
			_ = k.Set(i, j, 0)
			_ = k.Set(j, i, 0)
		}
		_ = k.Set(i, i, 1)
		for j = 0; j < rhs.Cols(); j++ {
			if err = rhs.Set(i, j, 0); err != nil {
				return nil, nil, fmt.Errorf("Eliminate: %w", err)
			}
		}
	}

	return k, rhs, nil
}

// ApplyBoundaryConditions eliminates every pinned DOF from the working copies
// of K and f. Repeated calls are no-ops.
func (sv *Solver) ApplyBoundaryConditions() error {
	if sv.applied {
		return nil
	}
	k, f, err := Eliminate(sv.k, sv.f, sv.pinned)
	if err != nil {
		return fmt.Errorf("ApplyBoundaryConditions: %w", err)
	}
	sv.k, sv.f, sv.applied = k, f, true
	sv.log.Debug("boundary conditions applied", zap.Ints("dofs", sv.pinned))

	return nil
}

// Solve returns the displacement vector u (DOF×1) of K·u = f using method m,
// applying boundary conditions first when needed. The result is cached:
// later calls return a copy of it without recomputing, whatever the method,
// unless recalculate is true.
//
// Errors:
//   - ErrInvalidMethod for an unknown m.
//   - ErrSingular when the constrained system has no unique solution
//     (e.g. a mechanism or missing supports).
func (sv *Solver) Solve(m Method, recalculate bool) (*matrix.Dense, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("Solve: %w", ErrInvalidMethod)
	}
	if sv.result != nil && !recalculate {
		return sv.result.Clone(), nil
	}
	if err := sv.ApplyBoundaryConditions(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	u, err := solveWith(m, sv.k, sv.f)
	if err != nil {
		sv.log.Debug("solve failed", zap.Stringer("method", m), zap.Error(err))
		return nil, fmt.Errorf("Solve(%s): %w", m, err)
	}
	sv.result, sv.solved = u, m
	sv.log.Debug("system solved", zap.Stringer("method", m), zap.Int("dof", u.Rows()))

	return u.Clone(), nil
}

// Displacements solves with the default method (cached), writes the result
// onto the private structure copy and returns that solved copy.
func (sv *Solver) Displacements() (*structure.Structure, error) {
	u, err := sv.Solve(sv.method, false)
	if err != nil {
		return nil, fmt.Errorf("Displacements: %w", err)
	}
	if err = sv.s.ApplyDisplacements(u.Values()); err != nil {
		return nil, fmt.Errorf("Displacements: %w", err)
	}

	return sv.s, nil
}

// Structure returns the solver's private structure copy.
func (sv *Solver) Structure() *structure.Structure { return sv.s }

// Method returns the default method.
func (sv *Solver) Method() Method { return sv.method }

// SolvedWith returns the method of the cached result and whether one exists.
func (sv *Solver) SolvedWith() (Method, bool) { return sv.solved, sv.result != nil }

// RawStiffness returns a copy of K as assembled, before boundary conditions.
func (sv *Solver) RawStiffness() *matrix.Dense { return sv.rawK.Clone() }

// RawLoads returns a copy of f as assembled, before boundary conditions.
func (sv *Solver) RawLoads() *matrix.Dense { return sv.rawF.Clone() }

// Stiffness returns a copy of the working K (constrained once applied).
func (sv *Solver) Stiffness() *matrix.Dense { return sv.k.Clone() }

// Loads returns a copy of the working f (constrained once applied).
func (sv *Solver) Loads() *matrix.Dense { return sv.f.Clone() }

// Unknowns returns the symbolic displacement vector of the structure.
func (sv *Solver) Unknowns() []structure.Unknown { return sv.s.Unknowns() }

// Applied reports whether boundary conditions have been applied.
func (sv *Solver) Applied() bool { return sv.applied }
