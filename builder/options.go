// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLength sets the element length used by chain constructors.
// Panics if l <= 0.
func WithLength(l float64) BuilderOption {
	if !(l > 0) {
		panic("builder: WithLength(l<=0)")
	}
	return func(c *builderConfig) { c.length = l }
}

// WithMaterial sets Young's modulus and cross-section area for rods.
// Panics if either is not positive.
func WithMaterial(e, a float64) BuilderOption {
	if !(e > 0) || !(a > 0) {
		panic("builder: WithMaterial(E<=0 || A<=0)")
	}
	return func(c *builderConfig) { c.e, c.a = e, a }
}

// WithSpringRate sets the rate C for springs. Panics if C <= 0.
func WithSpringRate(rate float64) BuilderOption {
	if !(rate > 0) {
		panic("builder: WithSpringRate(C<=0)")
	}
	return func(c *builderConfig) { c.c = rate }
}
