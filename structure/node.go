// SPDX-License-Identifier: MIT

package structure

// Node is a point of the structure. Its position is fixed at creation;
// supports, point forces and solved displacements are attached through
// the owning Structure.
type Node struct {
	owner  *Structure
	idx    int
	pos    Vector
	disp   [2]Displacement
	forces []Vector
}

// Index returns the node's position in the structure's node arena.
func (n *Node) Index() int { return n.idx }

// X returns the x coordinate.
func (n *Node) X() float64 { return n.pos.X }

// Y returns the y coordinate (always 0 in one-dimensional models).
func (n *Node) Y() float64 { return n.pos.Y }

// Position returns the coordinates as a Vector.
func (n *Node) Position() Vector { return n.pos }

// Forces returns a copy of the point forces applied at the node.
func (n *Node) Forces() []Vector {
	out := make([]Vector, len(n.forces))
	copy(out, n.forces)

	return out
}

// Resultant returns the sum of all point forces at the node.
func (n *Node) Resultant() Vector {
	var sum Vector
	for _, f := range n.forces {
		sum = sum.Add(f)
	}

	return sum
}

// Displacement returns the DOF state along axis.
func (n *Node) Displacement(axis Axis) Displacement {
	if axis != AxisX && axis != AxisY {
		return Displacement{}
	}
	return n.disp[axis]
}

// U is shorthand for Displacement(AxisX).Value.
func (n *Node) U() float64 { return n.disp[AxisX].Value }

// V is shorthand for Displacement(AxisY).Value.
func (n *Node) V() float64 { return n.disp[AxisY].Value }

// Pinned reports whether axis is a zero-displacement support.
func (n *Node) Pinned(axis Axis) bool { return n.Displacement(axis).Known }

// DOF returns the global degree-of-freedom index of axis for this node.
func (n *Node) DOF(axis Axis) int { return n.idx*int(n.owner.dim) + int(axis) }

// clone copies the node into a new owner.
func (n *Node) clone(owner *Structure) *Node {
	return &Node{
		owner:  owner,
		idx:    n.idx,
		pos:    n.pos,
		disp:   n.disp,
		forces: n.Forces(),
	}
}
