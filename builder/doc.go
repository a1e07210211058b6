// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style building blocks
// for structure fixtures. It keeps test models, examples and CLI samples
// declarative: a Build call composes Constructors in order over a fresh
// structure.Structure.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  element length, rod material/section, spring rate.
//   - Topology constructors:
//     – Chain(n):       n rods in series along +x.
//     – SpringChain(n): n springs in series along +x.
//     – Rods(n, from):  n rods continuing from an existing node.
//     – Spring(from, to) / SpringTo(from, offset): one spring between or beyond nodes.
//   - Support and load constructors:
//     – PinEnds, PinNodes, PointLoad, UniformLoad, LinearLoad.
//   - Reference models used throughout the tests and the CLI:
//     – BranchedChain, BackSpringChain, SpringSupportedChain.
//
// Guarantees:
//
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//   - Deterministic: the same options and constructor order build the same model.
//
// Node arguments accept negative indices (-1 is the last node), matching the
// matrix package's index normalisation.
package builder
