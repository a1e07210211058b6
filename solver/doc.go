// SPDX-License-Identifier: MIT

// Package solver turns an assembled structure into nodal displacements.
//
// New deep-copies the structure and assembles K and f. Supports are then
// imposed by elimination (Eliminate / ApplyBoundaryConditions) on private
// working copies, and Solve runs one of three interchangeable strategies:
//
//	Gauss         Gaussian elimination with zero-pivot repair
//	InverseMatrix K⁻¹ by the same elimination, then K⁻¹·f
//	LU            Doolittle factorisation and substitution
//
// For a well-posed system all three agree to rounding. The solution is cached
// and recomputed only on request. Displacements writes it back onto the
// solver's structure copy for post-processing.
//
// Logging goes through an optional *zap.Logger (WithLogger); the default is a
// no-op logger.
package solver
