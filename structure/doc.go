// SPDX-License-Identifier: MIT

// Package structure defines the finite-element model of a skeletal structure:
// nodes, two-node line elements (rods and springs) and the Structure that owns
// them, together with assembly of the global stiffness matrix K and load vector f.
//
// Nodes and elements live in append-only arenas; a node's index is its
// insertion position, and elements refer to their endpoints by index, so
// handles stay valid for the structure's lifetime. Derived quantities
// (length, inclination, local stiffness) have accessors but no setters.
//
// A structure is one-dimensional by default (one axial DOF per node). Pass
// WithPlanar to New for two DOF per node; 1D is then the special case of a
// truss whose elements all lie on the x axis.
//
// Errors:
//
//	ErrMissingTopology  - element without start node in a non-empty structure.
//	ErrMissingLength    - element without end node and without length/offset.
//	ErrInvalidParameter - non-positive E, A, C or length; zero-length element.
//	ErrForeignHandle    - node/element handle from another structure.
//	ErrImmutable        - non-zero displacement written onto a pinned DOF.
//	ErrNotFound         - node/element index outside the arena.
package structure
