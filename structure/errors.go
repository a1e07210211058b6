// SPDX-License-Identifier: MIT

package structure

import "errors"

// Sentinel errors for model construction and assembly.
var (
	// ErrMissingTopology indicates an element was added without a start node
	// to a structure that already has nodes.
	ErrMissingTopology = errors.New("structure: missing start node")

	// ErrMissingLength indicates an element has neither an end node nor a length/offset.
	ErrMissingLength = errors.New("structure: missing end node and length")

	// ErrInvalidParameter indicates a non-positive E, A, C or length, a
	// zero-length element, or a coordinate the structure's dimension cannot hold.
	ErrInvalidParameter = errors.New("structure: invalid parameter")

	// ErrForeignHandle indicates a node or element handle that belongs to another structure.
	ErrForeignHandle = errors.New("structure: handle belongs to another structure")

	// ErrImmutable indicates an attempt to change fixed state, such as writing
	// a non-zero displacement onto a pinned degree of freedom.
	ErrImmutable = errors.New("structure: attribute is immutable")

	// ErrNotFound indicates a node or element index outside the arena.
	ErrNotFound = errors.New("structure: index not found")
)
