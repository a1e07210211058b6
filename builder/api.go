// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(sopts, bopts, cons...). Creates s, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical structures.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linefem/structure"
)

// Constructor applies a deterministic mutation to a structure using the
// resolved builderConfig. Constructors MUST validate parameters early and
// return sentinel errors (no panics).
type Constructor func(s *structure.Structure, cfg builderConfig) error

// Build creates a new structure.Structure with options sopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "Build: %w" and returned
// immediately; the partially built structure is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(sopts []structure.Option, bopts []BuilderOption, cons ...Constructor) (*structure.Structure, error) {
	s := structure.New(sopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// Apply resolves bopts and runs the constructors against an existing structure.
func Apply(s *structure.Structure, bopts []BuilderOption, cons ...Constructor) error {
	if s == nil {
		return fmt.Errorf("Apply: nil structure: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// nodeAt resolves a possibly negative node index.
func nodeAt(s *structure.Structure, i int) (*structure.Node, error) {
	n := s.NodeCount()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("node %d of %d: %w", i, n, ErrNodeIndex)
	}
	node, err := s.Node(i)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// elementAt resolves a possibly negative element index.
func elementAt(s *structure.Structure, i int) (*structure.Element, error) {
	n := s.ElementCount()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("element %d of %d: %w", i, n, ErrElementIndex)
	}
	el, err := s.Element(i)
	if err != nil {
		return nil, err
	}

	return el, nil
}
