// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// impl_loads.go - supports and loads on existing nodes/elements.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linefem/structure"
)

const (
	methodPinEnds     = "PinEnds"
	methodPinNodes    = "PinNodes"
	methodPointForce  = "PointForce"
	methodLinearLoad  = "LinearLoad"
	methodUniformLoad = "UniformLoad"
)

// PinEnds pins the first and the last node.
func PinEnds() Constructor {
	return func(s *structure.Structure, _ builderConfig) error {
		if s.NodeCount() < 2 {
			return builderErrorf(methodPinEnds, fmt.Errorf("%d nodes: %w", s.NodeCount(), ErrTooFewElements))
		}
		for _, i := range []int{0, -1} {
			n, err := nodeAt(s, i)
			if err != nil {
				return builderErrorf(methodPinEnds, err)
			}
			if err = s.Pin(n); err != nil {
				return builderErrorf(methodPinEnds, err)
			}
		}

		return nil
	}
}

// PinNodes pins every listed node.
func PinNodes(idx ...int) Constructor {
	return func(s *structure.Structure, _ builderConfig) error {
		for _, i := range idx {
			n, err := nodeAt(s, i)
			if err != nil {
				return builderErrorf(methodPinNodes, err)
			}
			if err = s.Pin(n); err != nil {
				return builderErrorf(methodPinNodes, err)
			}
		}

		return nil
	}
}

// PointLoad applies an axial force fx at node i.
func PointLoad(i int, fx float64) Constructor {
	return PointForce(i, structure.Vector{X: fx})
}

// PointForce applies a force vector at node i.
func PointForce(i int, f structure.Vector) Constructor {
	return func(s *structure.Structure, _ builderConfig) error {
		n, err := nodeAt(s, i)
		if err != nil {
			return builderErrorf(methodPointForce, err)
		}
		if err = s.AddPointForce(n, f); err != nil {
			return builderErrorf(methodPointForce, err)
		}

		return nil
	}
}

// LinearLoad applies an axial distributed load varying from q1 to q2 on element e.
func LinearLoad(e int, q1, q2 float64) Constructor {
	return func(s *structure.Structure, _ builderConfig) error {
		el, err := elementAt(s, e)
		if err != nil {
			return builderErrorf(methodLinearLoad, err)
		}
		if err = s.AddDistributedLoad(el, structure.Vector{X: q1}, structure.Vector{X: q2}); err != nil {
			return builderErrorf(methodLinearLoad, err)
		}

		return nil
	}
}

// UniformLoad applies a constant axial distributed load q on element e.
func UniformLoad(e int, q float64) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		if err := LinearLoad(e, q, q)(s, cfg); err != nil {
			return builderErrorf(methodUniformLoad, err)
		}

		return nil
	}
}
