// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linefem/matrix"
)

// Element is a two-node line element (rod or spring). Endpoints are arena
// indices into the owning structure and never change once the element exists,
// so every geometric quantity is derived and read-only.
type Element struct {
	owner  *Structure
	idx    int
	kind   Kind
	n1, n2 int
	e, a   float64 // rod material and section
	c      float64 // spring rate
	loads  []DistributedLoad

	shape *matrix.Dense // memoised material-independent stiffness pattern
}

// Index returns the element's position in the structure's element arena.
func (el *Element) Index() int { return el.idx }

// Kind reports whether the element is a Rod or a Spring.
func (el *Element) Kind() Kind { return el.kind }

// Start returns the start node.
func (el *Element) Start() *Node { return el.owner.nodes[el.n1] }

// End returns the end node.
func (el *Element) End() *Node { return el.owner.nodes[el.n2] }

// E returns Young's modulus (0 for springs).
func (el *Element) E() float64 { return el.e }

// A returns the cross-section area (0 for springs).
func (el *Element) A() float64 { return el.a }

// C returns the spring rate (0 for rods).
func (el *Element) C() float64 { return el.c }

// Lx returns the x projection end-minus-start.
func (el *Element) Lx() float64 { return el.End().pos.X - el.Start().pos.X }

// Ly returns the y projection end-minus-start.
func (el *Element) Ly() float64 { return el.End().pos.Y - el.Start().pos.Y }

// Length returns the distance between the endpoints.
func (el *Element) Length() float64 { return math.Hypot(el.Lx(), el.Ly()) }

// Alpha returns the inclination to the x axis in radians, within [0, 2π).
func (el *Element) Alpha() float64 { return Vector{X: el.Lx(), Y: el.Ly()}.Angle() }

// Coefficient returns the scalar in front of the shape matrix:
// EA/L for rods and C for springs.
func (el *Element) Coefficient() float64 {
	if el.kind == Spring {
		return el.c
	}
	return el.e * el.a / el.Length()
}

// EquivalentEA returns the axial rigidity used for internal forces:
// E·A for rods and C·L for springs.
func (el *Element) EquivalentEA() float64 {
	if el.kind == Spring {
		return el.c * el.Length()
	}
	return el.e * el.a
}

// Loads returns a copy of the distributed loads on the element.
func (el *Element) Loads() []DistributedLoad {
	out := make([]DistributedLoad, len(el.loads))
	copy(out, el.loads)

	return out
}

// DOFs returns the global DOF indices of the element in local order
// (u1 [v1] u2 [v2]).
func (el *Element) DOFs() []int {
	d := int(el.owner.dim)
	out := make([]int, 0, 2*d)
	for _, n := range [2]int{el.n1, el.n2} {
		for ax := 0; ax < d; ax++ {
			out = append(out, n*d+ax)
		}
	}

	return out
}

// shapeMatrix returns the memoised unit stiffness pattern.
//
// Implementation:
//   - Dim1: [[1,-1],[-1,1]].
//   - Dim2: d·dᵀ with d = [c, s, -c, -s] for the element's direction cosines.
func (el *Element) shapeMatrix() (*matrix.Dense, error) {
	if el.shape != nil {
		return el.shape, nil
	}
	var d []float64
	if el.owner.dim == Dim1 {
		d = []float64{1, -1}
	} else {
		L := el.Length()
		c, s := el.Lx()/L, el.Ly()/L
		d = []float64{c, s, -c, -s}
	}
	shape, err := matrix.Outer(d, d)
	if err != nil {
		return nil, fmt.Errorf("Element.shape(%d): %w", el.idx, err)
	}
	el.shape = shape

	return shape, nil
}

// Stiffness returns the local stiffness matrix: Coefficient() times the
// shape matrix, 2×2 in one dimension and 4×4 in two. The result is a fresh copy.
func (el *Element) Stiffness() (*matrix.Dense, error) {
	shape, err := el.shapeMatrix()
	if err != nil {
		return nil, err
	}
	k, err := matrix.Scale(shape, el.Coefficient())
	if err != nil {
		return nil, fmt.Errorf("Element.Stiffness(%d): %w", el.idx, err)
	}

	return k, nil
}

// EquivalentLoads converts the element's distributed loads into nodal forces
// at the start and end nodes. Each load contributes
// near = (L/2)(2·q1/3 + q2/3) and far = (L/2)(q1/3 + 2·q2/3) per component.
func (el *Element) EquivalentLoads() (near, far Vector) {
	half := el.Length() / 2
	for _, q := range el.loads {
		near.X += half * (q.Q1.X*2/3 + q.Q2.X/3)
		near.Y += half * (q.Q1.Y*2/3 + q.Q2.Y/3)
		far.X += half * (q.Q1.X/3 + q.Q2.X*2/3)
		far.Y += half * (q.Q1.Y/3 + q.Q2.Y*2/3)
	}

	return near, far
}

// clone copies the element into a new owner. The memoised shape is shared
// because it is never mutated after creation.
func (el *Element) clone(owner *Structure) *Element {
	cp := *el
	cp.owner = owner
	cp.loads = el.Loads()

	return &cp
}
