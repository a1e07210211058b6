// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"
)

// Dim is the number of degrees of freedom per node.
type Dim int

const (
	// Dim1 models collinear chains: one axial DOF (u) per node.
	Dim1 Dim = 1
	// Dim2 models planar trusses: two DOF (u, v) per node.
	Dim2 Dim = 2
)

// Axis selects one translational DOF of a node.
type Axis int

const (
	// AxisX is the u displacement.
	AxisX Axis = 0
	// AxisY is the v displacement. Only valid in Dim2.
	AxisY Axis = 1
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Kind is the closed set of line element variants.
type Kind int

const (
	// Rod is an axial bar with Young's modulus E and cross-section area A.
	Rod Kind = iota
	// Spring is a linear spring with rate C.
	Spring
)

// String returns "rod" or "spring".
func (k Kind) String() string {
	switch k {
	case Rod:
		return "rod"
	case Spring:
		return "spring"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Vector is a planar vector used for forces, distributed load intensities
// and node offsets. In one-dimensional models only X is meaningful.
type Vector struct {
	X, Y float64
}

// VectorPolar builds a vector from a magnitude and an angle in degrees
// measured counter-clockwise from the x axis. The angle is reduced mod 360.
func VectorPolar(val, angleDeg float64) Vector {
	rad := math.Mod(angleDeg, 360) * math.Pi / 180
	x, y := val*math.Cos(rad), val*math.Sin(rad)
	// Snap round-off so that axis-aligned inputs stay axis-aligned.
	if math.Abs(x) < 1e-12*math.Abs(val) {
		x = 0
	}
	if math.Abs(y) < 1e-12*math.Abs(val) {
		y = 0
	}

	return Vector{X: x, Y: y}
}

// Magnitude returns the Euclidean length.
func (v Vector) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction in radians within [0, 2π). The zero vector has angle 0.
func (v Vector) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }

// Component returns the coordinate selected by axis.
func (v Vector) Component(axis Axis) float64 {
	if axis == AxisY {
		return v.Y
	}
	return v.X
}

// Displacement is the state of one DOF. Known displacements are pinned
// (always zero); unknown ones carry the solved value once a solution was applied.
type Displacement struct {
	Value float64
	Known bool
}

// DistributedLoad is a linearly varying load along an element: intensity Q1
// at the start node and Q2 at the end node, both per unit length.
type DistributedLoad struct {
	Q1, Q2 Vector
}

// Unknown is one entry of the symbolic displacement vector.
// Label is "u<n>" or "v<n>" (1-based node number) for free DOFs and empty for known ones.
type Unknown struct {
	Label string
	Known bool
	Value float64
}

// String renders the label, or the known value for pinned DOFs.
func (u Unknown) String() string {
	if u.Known {
		return fmt.Sprintf("%g", u.Value)
	}
	return u.Label
}
