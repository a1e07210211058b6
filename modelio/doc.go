// SPDX-License-Identifier: MIT

// Package modelio reads and writes structures in the line-oriented text
// model format:
//
//	# optional comment
//	# Structure model made of finite elements
//
//	Nodes:
//		1 0.00 [0.00]
//	Elements:
//		1 1 2 2.00          (spring: C)
//		2 2 3 1.00 1.00     (rod: E A)
//	Pinning:
//		1 [x|y]
//	Point_Forces:
//		2 1.00 [0.00]
//	Distributed_Forces:
//		1 0.00 [0.00] 1.00 [0.00]
//
// Bracketed columns exist only in planar models; Load infers the dimension
// from the width of the node records. All indices are 1-based. Records may
// appear in any order within a block and are sorted by their leading index.
// Save followed by Load and Save reproduces the file byte for byte.
package modelio
