// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// impl_chain.go - series topologies along +x.
//
// Emission order:
//   • Elements are appended start→end; element k joins node k and k+1 of the run.
//   • A chain on an empty structure starts at a synthesised origin node; on a
//     non-empty one it continues from the last node.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linefem/structure"
)

const (
	methodChain       = "Chain"
	methodSpringChain = "SpringChain"
	methodRods        = "Rods"
	methodSpring      = "Spring"
	methodSpringTo    = "SpringTo"
)

// minChainElements is the smallest accepted element count.
const minChainElements = 1

// series appends n elements one after another starting at from (nil = origin).
func series(s *structure.Structure, n int, from *structure.Node, add func(opts ...structure.ElementOption) (*structure.Element, error), length float64) error {
	for k := 0; k < n; k++ {
		opts := []structure.ElementOption{structure.WithLength(length)}
		if from != nil {
			opts = append(opts, structure.From(from))
		}
		el, err := add(opts...)
		if err != nil {
			return fmt.Errorf("element %d: %w", k, err)
		}
		from = el.End()
	}

	return nil
}

// lastNode returns the last node, or nil on an empty structure.
func lastNode(s *structure.Structure) *structure.Node {
	if s.NodeCount() == 0 {
		return nil
	}
	n, _ := s.Node(s.NodeCount() - 1)

	return n
}

// Chain builds n rods (cfg E, A, length) in series.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		if n < minChainElements {
			return builderErrorf(methodChain, fmt.Errorf("n=%d: %w", n, ErrTooFewElements))
		}
		add := func(opts ...structure.ElementOption) (*structure.Element, error) {
			return s.AddRod(cfg.e, cfg.a, opts...)
		}
		if err := series(s, n, lastNode(s), add, cfg.length); err != nil {
			return builderErrorf(methodChain, err)
		}

		return nil
	}
}

// SpringChain builds n springs (cfg C, length) in series.
// Complexity: O(n).
func SpringChain(n int) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		if n < minChainElements {
			return builderErrorf(methodSpringChain, fmt.Errorf("n=%d: %w", n, ErrTooFewElements))
		}
		add := func(opts ...structure.ElementOption) (*structure.Element, error) {
			return s.AddSpring(cfg.c, opts...)
		}
		if err := series(s, n, lastNode(s), add, cfg.length); err != nil {
			return builderErrorf(methodSpringChain, err)
		}

		return nil
	}
}

// Rods appends n rods in series starting at existing node from.
func Rods(n, from int) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		if n < minChainElements {
			return builderErrorf(methodRods, fmt.Errorf("n=%d: %w", n, ErrTooFewElements))
		}
		start, err := nodeAt(s, from)
		if err != nil {
			return builderErrorf(methodRods, err)
		}
		add := func(opts ...structure.ElementOption) (*structure.Element, error) {
			return s.AddRod(cfg.e, cfg.a, opts...)
		}
		if err = series(s, n, start, add, cfg.length); err != nil {
			return builderErrorf(methodRods, err)
		}

		return nil
	}
}

// Spring joins two existing nodes with a spring of rate scale·cfg.C.
func Spring(from, to int, scale float64) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		a, err := nodeAt(s, from)
		if err != nil {
			return builderErrorf(methodSpring, err)
		}
		b, err := nodeAt(s, to)
		if err != nil {
			return builderErrorf(methodSpring, err)
		}
		if _, err = s.AddSpring(scale*cfg.c, structure.From(a), structure.To(b)); err != nil {
			return builderErrorf(methodSpring, err)
		}

		return nil
	}
}

// SpringTo adds a spring of rate scale·cfg.C from an existing node to a new
// node at dx along x. dx may be negative to branch backwards.
func SpringTo(from int, dx, scale float64) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		a, err := nodeAt(s, from)
		if err != nil {
			return builderErrorf(methodSpringTo, err)
		}
		_, err = s.AddSpring(scale*cfg.c, structure.From(a), structure.WithOffset(structure.Vector{X: dx}))
		if err != nil {
			return builderErrorf(methodSpringTo, err)
		}

		return nil
	}
}
