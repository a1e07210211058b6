// SPDX-License-Identifier: MIT

// Package postproc derives element-level results from a solved structure:
// linear displacement interpolation along an element, the constant axial
// force, and sampled displacement tables for reports.
//
// Every function expects a structure on which ApplyDisplacements succeeded
// (see solver.Solver.Displacements) and returns ErrNotSolved otherwise.
package postproc
