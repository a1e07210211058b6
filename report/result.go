// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linefem/matrix"
	"github.com/katalvlaran/linefem/postproc"
	"github.com/katalvlaran/linefem/solver"
	"github.com/katalvlaran/linefem/structure"
)

var (
	// ErrNilResult is returned by the renderers for a nil Result.
	ErrNilResult = errors.New("report: nil result")

	// ErrNilSolver is returned by Collect for a nil solver.
	ErrNilSolver = errors.New("report: nil solver")
)

// DefaultStep is the sampling step used for displacement fields.
const DefaultStep = 0.25

// ElementResult holds the post-processed values of one element.
type ElementResult struct {
	Index   int
	Kind    structure.Kind
	Length  float64
	N       float64
	Samples []postproc.Sample
}

// Result is a snapshot of one solved model.
type Result struct {
	Dim      structure.Dim
	Method   solver.Method
	Unknowns []structure.Unknown

	RawK, RawF *matrix.Dense // assembled
	K, F       *matrix.Dense // after boundary elimination
	U          *matrix.Dense // solved displacements, DOF×1

	Elements []ElementResult
}

// Collect solves sv with its default method and gathers the system before
// and after boundary elimination, the displacements, and per-element fields
// sampled every step.
func Collect(sv *solver.Solver, step float64) (*Result, error) {
	if sv == nil {
		return nil, ErrNilSolver
	}
	s, err := sv.Displacements()
	if err != nil {
		return nil, fmt.Errorf("Collect: %w", err)
	}
	u, err := sv.Solve(sv.Method(), false)
	if err != nil {
		return nil, fmt.Errorf("Collect: %w", err)
	}
	method, _ := sv.SolvedWith()

	res := &Result{
		Dim:      s.Dim(),
		Method:   method,
		Unknowns: sv.Unknowns(),
		RawK:     sv.RawStiffness(),
		RawF:     sv.RawLoads(),
		K:        sv.Stiffness(),
		F:        sv.Loads(),
		U:        u,
		Elements: make([]ElementResult, 0, s.ElementCount()),
	}
	for _, el := range s.Elements() {
		n, err := postproc.AxialForce(s, el.Index())
		if err != nil {
			return nil, fmt.Errorf("Collect: %w", err)
		}
		samples, err := postproc.SampleDisplacements(s, el.Index(), step)
		if err != nil {
			return nil, fmt.Errorf("Collect: %w", err)
		}
		res.Elements = append(res.Elements, ElementResult{
			Index:   el.Index(),
			Kind:    el.Kind(),
			Length:  el.Length(),
			N:       n,
			Samples: samples,
		})
	}

	return res, nil
}
