// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"

	"github.com/katalvlaran/linefem/matrix"
)

// GlobalStiffness assembles K (DOF×DOF) by scatter-adding every element's
// local stiffness at its DOF indices. Shared nodes accumulate contributions.
//
// Implementation:
//   - Stage 1: allocate a zero DOF×DOF matrix.
//   - Stage 2: for each element, AddAt local[a][b] into K[dofs[a]][dofs[b]].
//
// Complexity:
//   - Time O(DOF² + E·(2·Dim)²), Space O(DOF²).
func (s *Structure) GlobalStiffness() (*matrix.Dense, error) {
	n := s.DOF()
	K, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("GlobalStiffness: %w", err)
	}

	var (
		local *matrix.Dense
		dofs  []int
		a, b  int
		v     float64
	)
	for _, el := range s.elems {
		if local, err = el.Stiffness(); err != nil {
			return nil, fmt.Errorf("GlobalStiffness: %w", err)
		}
		dofs = el.DOFs()
		for a = range dofs {
			for b = range dofs {
				v, _ = local.At(a, b)
				if err = K.AddAt(dofs[a], dofs[b], v); err != nil {
					return nil, fmt.Errorf("GlobalStiffness: element %d: %w", el.idx, err)
				}
			}
		}
	}

	return K, nil
}

// LoadVector assembles f (DOF×1): the resultant point force of every node
// plus the nodal equivalents of every distributed load, all added.
func (s *Structure) LoadVector() (*matrix.Dense, error) {
	n := s.DOF()
	f, err := matrix.NewDense(n, 1)
	if err != nil {
		return nil, fmt.Errorf("LoadVector: %w", err)
	}
	d := int(s.dim)

	add := func(node int, v Vector) error {
		for ax := 0; ax < d; ax++ {
			if err := f.AddAt(node*d+ax, 0, v.Component(Axis(ax))); err != nil {
				return fmt.Errorf("LoadVector: node %d: %w", node, err)
			}
		}
		return nil
	}

	for _, nd := range s.nodes {
		if err = add(nd.idx, nd.Resultant()); err != nil {
			return nil, err
		}
	}
	for _, el := range s.elems {
		if len(el.loads) == 0 {
			continue
		}
		near, far := el.EquivalentLoads()
		if err = add(el.n1, near); err != nil {
			return nil, err
		}
		if err = add(el.n2, far); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Unknowns returns the symbolic displacement vector: one entry per DOF,
// labelled u<k>/v<k> (1-based node number) when free, or known zero when pinned.
func (s *Structure) Unknowns() []Unknown {
	d := int(s.dim)
	out := make([]Unknown, 0, s.DOF())
	prefix := [2]string{"u", "v"}
	for _, n := range s.nodes {
		for ax := 0; ax < d; ax++ {
			if n.disp[ax].Known {
				out = append(out, Unknown{Known: true})
				continue
			}
			out = append(out, Unknown{Label: fmt.Sprintf("%s%d", prefix[ax], n.idx+1)})
		}
	}

	return out
}
