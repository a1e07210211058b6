// SPDX-License-Identifier: MIT

package postproc

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linefem/structure"
)

// Sentinel errors of the postproc package.
var (
	// ErrOutOfRange indicates a local coordinate outside [0, 1].
	ErrOutOfRange = errors.New("postproc: local coordinate out of range")

	// ErrInvalidStep indicates a sampling step outside (0, 1).
	ErrInvalidStep = errors.New("postproc: invalid sampling step")

	// ErrNotSolved indicates a structure without applied displacements.
	ErrNotSolved = errors.New("postproc: structure is not solved")
)

// sampleEps absorbs rounding when stepping towards x = 1.
const sampleEps = 1e-9

// Sample is one row of a displacement table.
type Sample struct {
	X float64          // local coordinate in [0, 1]
	U structure.Vector // interpolated displacement
}

// Force is the axial force of one element.
type Force struct {
	Element int
	Kind    structure.Kind
	N       float64
}

func element(s *structure.Structure, idx int) (*structure.Element, error) {
	if s == nil || !s.Solved() {
		return nil, ErrNotSolved
	}
	return s.Element(idx)
}

func nodal(n *structure.Node) structure.Vector {
	return structure.Vector{X: n.U(), Y: n.V()}
}

// Displacement interpolates the displacement at local coordinate x of
// element elemIdx: u(x) = u1·(1−x) + u2·x on each axis.
func Displacement(s *structure.Structure, elemIdx int, x float64) (structure.Vector, error) {
	el, err := element(s, elemIdx)
	if err != nil {
		return structure.Vector{}, fmt.Errorf("Displacement(%d): %w", elemIdx, err)
	}
	if math.IsNaN(x) || x < 0 || x > 1 {
		return structure.Vector{}, fmt.Errorf("Displacement(%d, %g): %w", elemIdx, x, ErrOutOfRange)
	}

	return interpolate(el, x), nil
}

func interpolate(el *structure.Element, x float64) structure.Vector {
	u1, u2 := nodal(el.Start()), nodal(el.End())
	return structure.Vector{
		X: u1.X*(1-x) + u2.X*x,
		Y: u1.Y*(1-x) + u2.Y*x,
	}
}

// AxialForce returns N = EA·δ/L for element elemIdx, where EA is E·A for
// rods and C·L for springs. In 1D δ = u2 - u1 taken from start to end node,
// independent of which way the element points; in 2D δ is the elongation
// along the element axis (c·Δu + s·Δv) and tension is positive.
func AxialForce(s *structure.Structure, elemIdx int) (float64, error) {
	el, err := element(s, elemIdx)
	if err != nil {
		return 0, fmt.Errorf("AxialForce(%d): %w", elemIdx, err)
	}

	return axial(el, s.Dim()), nil
}

func axial(el *structure.Element, dim structure.Dim) float64 {
	L := el.Length()
	u1, u2 := nodal(el.Start()), nodal(el.End())
	elong := u2.X - u1.X
	if dim == structure.Dim2 {
		elong = (el.Lx()*(u2.X-u1.X) + el.Ly()*(u2.Y-u1.Y)) / L
	}

	return el.EquivalentEA() * elong / L
}

// SampleDisplacements tabulates the displacement of element elemIdx at
// x = 0, step, 2·step, … and always ends at x = 1.
//
// Complexity: O(1/step).
func SampleDisplacements(s *structure.Structure, elemIdx int, step float64) ([]Sample, error) {
	el, err := element(s, elemIdx)
	if err != nil {
		return nil, fmt.Errorf("SampleDisplacements(%d): %w", elemIdx, err)
	}
	if !(step > 0 && step < 1) {
		return nil, fmt.Errorf("SampleDisplacements(%d, %g): %w", elemIdx, step, ErrInvalidStep)
	}

	out := make([]Sample, 0, int(1/step)+2)
	for k := 0; ; k++ {
		x := float64(k) * step
		if x >= 1-sampleEps {
			break
		}
		out = append(out, Sample{X: x, U: interpolate(el, x)})
	}
	out = append(out, Sample{X: 1, U: interpolate(el, 1)})

	return out, nil
}

// Forces returns the axial force of every element in arena order.
func Forces(s *structure.Structure) ([]Force, error) {
	if s == nil || !s.Solved() {
		return nil, fmt.Errorf("Forces: %w", ErrNotSolved)
	}
	els := s.Elements()
	out := make([]Force, len(els))
	for i, el := range els {
		out[i] = Force{Element: el.Index(), Kind: el.Kind(), N: axial(el, s.Dim())}
	}

	return out, nil
}
