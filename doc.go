// SPDX-License-Identifier: MIT

// Package linefem is a small direct-stiffness finite element solver for
// structures made of rods and springs, either along one axis or in a plane.
//
// 🚀 What is linefem?
//
//	A pure-Go toolkit that takes a structure from model to answer:
//		• Matrix primitives: dense row-major matrices, row views, Gauss, LU, inverse
//		• Structural model: nodes, rods, springs, supports, point and linear loads
//		• Assembly: global stiffness K, load vector f, symbolic unknowns
//		• Solving: boundary elimination and three interchangeable methods
//		• Post-processing: displacement fields and axial forces
//		• I/O: a plain-text model format, text/XLSX/PDF reports, a CLI
//
// Under the hood the work is split into subpackages:
//
//	matrix/     - Dense, RowView, arithmetic, validators
//	matrix/ops/ - Gaussian elimination with pivot repair, LU, inverse
//	structure/  - Node, Element, Structure; assembly of K and f
//	builder/    - functional constructors for chains and sample models
//	solver/     - boundary conditions, method dispatch, cached solution
//	postproc/   - interpolation, axial force, sampled tables
//	modelio/    - text model load/save
//	report/     - text, XLSX and PDF reports
//	cmd/linefem - solve, check and watch commands
//
// Quick ASCII example, two rods between walls with a load at the middle:
//
//	|▒───────●───────▒|
//	 1   E,A  2  E,A  3
//	         → F
//
//	u2 = F·L / (2·E·A)
//
//	go install github.com/katalvlaran/linefem/cmd/linefem@latest
package linefem
