// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"
)

// Structure is the aggregate root of a model: append-only arenas of nodes
// and elements plus the number of DOF per node. It is not safe for
// concurrent mutation; the solver works on a Clone.
type Structure struct {
	dim    Dim
	nodes  []*Node
	elems  []*Element
	solved bool
}

// Option configures a Structure before creation.
type Option func(*Structure)

// WithPlanar selects two DOF per node (planar truss).
func WithPlanar() Option {
	return func(s *Structure) { s.dim = Dim2 }
}

// WithDim selects the DOF count per node explicitly.
func WithDim(d Dim) Option {
	return func(s *Structure) { s.dim = d }
}

// New creates an empty structure. By default it is one-dimensional.
func New(opts ...Option) *Structure {
	s := &Structure{dim: Dim1}
	for _, opt := range opts {
		opt(s)
	}
	if s.dim != Dim2 {
		s.dim = Dim1
	}

	return s
}

// Dim returns the DOF count per node.
func (s *Structure) Dim() Dim { return s.dim }

// DOF returns the total number of degrees of freedom (nodes × Dim).
func (s *Structure) DOF() int { return len(s.nodes) * int(s.dim) }

// NodeCount returns the number of nodes.
func (s *Structure) NodeCount() int { return len(s.nodes) }

// ElementCount returns the number of elements.
func (s *Structure) ElementCount() int { return len(s.elems) }

// Nodes returns the node handles in index order. The slice is a copy.
func (s *Structure) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// Elements returns the element handles in index order. The slice is a copy.
func (s *Structure) Elements() []*Element {
	out := make([]*Element, len(s.elems))
	copy(out, s.elems)

	return out
}

// Node returns node i or ErrNotFound.
func (s *Structure) Node(i int) (*Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return nil, fmt.Errorf("Structure.Node(%d): %w", i, ErrNotFound)
	}
	return s.nodes[i], nil
}

// Element returns element i or ErrNotFound.
func (s *Structure) Element(i int) (*Element, error) {
	if i < 0 || i >= len(s.elems) {
		return nil, fmt.Errorf("Structure.Element(%d): %w", i, ErrNotFound)
	}
	return s.elems[i], nil
}

// AddNode appends a node at pos. One-dimensional structures reject a non-zero Y.
func (s *Structure) AddNode(pos Vector) (*Node, error) {
	if !finite(pos) {
		return nil, fmt.Errorf("AddNode: non-finite position: %w", ErrInvalidParameter)
	}
	if s.dim == Dim1 && pos.Y != 0 {
		return nil, fmt.Errorf("AddNode: y=%g in a 1D structure: %w", pos.Y, ErrInvalidParameter)
	}

	return s.appendNode(pos), nil
}

func finite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// appendNode skips validation; callers check pos first.
func (s *Structure) appendNode(pos Vector) *Node {
	n := &Node{owner: s, idx: len(s.nodes), pos: pos}
	s.nodes = append(s.nodes, n)

	return n
}

// owns reports whether n is a node of this structure.
func (s *Structure) owns(n *Node) bool {
	return n != nil && n.owner == s && n.idx < len(s.nodes) && s.nodes[n.idx] == n
}

func (s *Structure) ownsElement(el *Element) bool {
	return el != nil && el.owner == s && el.idx < len(s.elems) && s.elems[el.idx] == el
}

// elementConfig collects ElementOption values.
type elementConfig struct {
	from, to  *Node
	offset    Vector
	hasOffset bool
	byLength  bool
}

// ElementOption configures the topology of a new element.
type ElementOption func(*elementConfig)

// From sets the start node.
func From(n *Node) ElementOption {
	return func(c *elementConfig) { c.from = n }
}

// To sets the end node.
func To(n *Node) ElementOption {
	return func(c *elementConfig) { c.to = n }
}

// WithLength creates the end node at start + (l, 0). Used when To is absent.
func WithLength(l float64) ElementOption {
	return func(c *elementConfig) { c.offset, c.hasOffset, c.byLength = Vector{X: l}, true, true }
}

// WithOffset creates the end node at start + v. Used when To is absent.
func WithOffset(v Vector) ElementOption {
	return func(c *elementConfig) { c.offset, c.hasOffset, c.byLength = v, true, false }
}

// AddRod appends a rod with Young's modulus e and area a.
// See addElement for the topology rules.
func (s *Structure) AddRod(e, a float64, opts ...ElementOption) (*Element, error) {
	if !(e > 0) || !(a > 0) || math.IsInf(e, 0) || math.IsInf(a, 0) {
		return nil, fmt.Errorf("AddRod: E=%g A=%g: %w", e, a, ErrInvalidParameter)
	}
	el, err := s.addElement(Rod, opts)
	if err != nil {
		return nil, fmt.Errorf("AddRod: %w", err)
	}
	el.e, el.a = e, a

	return el, nil
}

// AddSpring appends a spring with rate c.
func (s *Structure) AddSpring(c float64, opts ...ElementOption) (*Element, error) {
	if !(c > 0) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("AddSpring: C=%g: %w", c, ErrInvalidParameter)
	}
	el, err := s.addElement(Spring, opts)
	if err != nil {
		return nil, fmt.Errorf("AddSpring: %w", err)
	}
	el.c = c

	return el, nil
}

// addElement resolves both endpoints and appends the element.
//
// Implementation:
//   - Stage 1: start node is From, else a new origin node when the structure
//     has no nodes yet, else ErrMissingTopology.
//   - Stage 2: end node is To, else start + offset, else ErrMissingLength.
//   - Stage 3: reject foreign handles and zero-length elements.
//
// Nodes are created only after every check passed, so a failed call leaves
// the structure unchanged.
func (s *Structure) addElement(kind Kind, opts []ElementOption) (*Element, error) {
	var cfg elementConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: start node
	if cfg.from != nil && !s.owns(cfg.from) {
		return nil, ErrForeignHandle
	}
	if cfg.from == nil && len(s.nodes) > 0 {
		return nil, ErrMissingTopology
	}
	var start Vector
	if cfg.from != nil {
		start = cfg.from.pos
	}

	// Stage 2: end node
	if cfg.to != nil && !s.owns(cfg.to) {
		return nil, ErrForeignHandle
	}
	var end Vector
	switch {
	case cfg.to != nil:
		end = cfg.to.pos
	case cfg.hasOffset:
		if !finite(cfg.offset) {
			return nil, fmt.Errorf("offset %v: %w", cfg.offset, ErrInvalidParameter)
		}
		if s.dim == Dim1 && cfg.offset.Y != 0 {
			return nil, fmt.Errorf("offset y=%g in a 1D structure: %w", cfg.offset.Y, ErrInvalidParameter)
		}
		if cfg.byLength && !(cfg.offset.X > 0) {
			return nil, fmt.Errorf("length %g: %w", cfg.offset.X, ErrInvalidParameter)
		}
		end = start.Add(cfg.offset)
		if !finite(end) {
			return nil, fmt.Errorf("end node %v: %w", end, ErrInvalidParameter)
		}
	default:
		return nil, ErrMissingLength
	}

	// Stage 3: geometry
	if math.Hypot(end.X-start.X, end.Y-start.Y) == 0 {
		return nil, fmt.Errorf("zero-length element: %w", ErrInvalidParameter)
	}

	from, to := cfg.from, cfg.to
	if from == nil {
		from = s.appendNode(Vector{})
	}
	if to == nil {
		to = s.appendNode(end)
	}
	el := &Element{owner: s, idx: len(s.elems), kind: kind, n1: from.idx, n2: to.idx}
	s.elems = append(s.elems, el)

	return el, nil
}

// AddPointForce adds f to the node's point loads. In 1D, f.Y must be zero.
func (s *Structure) AddPointForce(n *Node, f Vector) error {
	if !s.owns(n) {
		return fmt.Errorf("AddPointForce: %w", ErrForeignHandle)
	}
	if s.dim == Dim1 && f.Y != 0 {
		return fmt.Errorf("AddPointForce: Fy=%g in a 1D structure: %w", f.Y, ErrInvalidParameter)
	}
	n.forces = append(n.forces, f)

	return nil
}

// Pin fixes every DOF of the node at zero displacement.
func (s *Structure) Pin(n *Node) error {
	if !s.owns(n) {
		return fmt.Errorf("Pin: %w", ErrForeignHandle)
	}
	for ax := 0; ax < int(s.dim); ax++ {
		n.disp[ax] = Displacement{Known: true}
	}

	return nil
}

// PinAxis fixes a single DOF of the node at zero displacement.
// AxisY is rejected in one-dimensional structures.
func (s *Structure) PinAxis(n *Node, axis Axis) error {
	if !s.owns(n) {
		return fmt.Errorf("PinAxis: %w", ErrForeignHandle)
	}
	if axis < AxisX || int(axis) >= int(s.dim) {
		return fmt.Errorf("PinAxis: axis %s in a %dD structure: %w", axis, s.dim, ErrInvalidParameter)
	}
	n.disp[axis] = Displacement{Known: true}

	return nil
}

// AddDistributedLoad adds a linear distributed load from q1 (start) to q2 (end).
func (s *Structure) AddDistributedLoad(el *Element, q1, q2 Vector) error {
	if !s.ownsElement(el) {
		return fmt.Errorf("AddDistributedLoad: %w", ErrForeignHandle)
	}
	if s.dim == Dim1 && (q1.Y != 0 || q2.Y != 0) {
		return fmt.Errorf("AddDistributedLoad: y intensity in a 1D structure: %w", ErrInvalidParameter)
	}
	el.loads = append(el.loads, DistributedLoad{Q1: q1, Q2: q2})

	return nil
}

// PinnedDOFs returns the global indices of every pinned DOF in ascending order.
func (s *Structure) PinnedDOFs() []int {
	var out []int
	d := int(s.dim)
	for _, n := range s.nodes {
		for ax := 0; ax < d; ax++ {
			if n.disp[ax].Known {
				out = append(out, n.idx*d+ax)
			}
		}
	}

	return out
}

// Clone returns a deep copy: nodes, elements, supports, loads and any
// applied displacements. Handles of the original are foreign to the copy.
func (s *Structure) Clone() *Structure {
	cp := &Structure{
		dim:    s.dim,
		nodes:  make([]*Node, len(s.nodes)),
		elems:  make([]*Element, len(s.elems)),
		solved: s.solved,
	}
	for i, n := range s.nodes {
		cp.nodes[i] = n.clone(cp)
	}
	for i, el := range s.elems {
		cp.elems[i] = el.clone(cp)
	}

	return cp
}

// ApplyDisplacements writes a solved displacement vector (length DOF) onto
// the free DOFs. A pinned DOF only accepts zero; anything else is ErrImmutable.
func (s *Structure) ApplyDisplacements(u []float64) error {
	if len(u) != s.DOF() {
		return fmt.Errorf("ApplyDisplacements: len %d, want %d: %w", len(u), s.DOF(), ErrInvalidParameter)
	}
	d := int(s.dim)
	// Validate first so a rejected vector leaves the structure untouched.
	for _, n := range s.nodes {
		for ax := 0; ax < d; ax++ {
			if n.disp[ax].Known && math.Abs(u[n.idx*d+ax]) > pinnedTol {
				return fmt.Errorf("ApplyDisplacements: node %d axis %s = %g: %w",
					n.idx, Axis(ax), u[n.idx*d+ax], ErrImmutable)
			}
		}
	}
	for _, n := range s.nodes {
		for ax := 0; ax < d; ax++ {
			if !n.disp[ax].Known {
				n.disp[ax].Value = u[n.idx*d+ax]
			}
		}
	}
	s.solved = true

	return nil
}

// pinnedTol is the largest magnitude accepted as "zero" on a pinned DOF.
const pinnedTol = 1e-9

// Solved reports whether ApplyDisplacements has succeeded on this structure.
func (s *Structure) Solved() bool { return s.solved }
