// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// impl_samples.go - reference models shared by tests, examples and the CLI.
// Each one composes the primitive constructors; lengths, rod material and the
// base spring rate come from the resolved config.

package builder

import (
	"github.com/katalvlaran/linefem/structure"
)

// compose runs several constructors as one.
func compose(cons ...Constructor) Constructor {
	return func(s *structure.Structure, cfg builderConfig) error {
		for _, fn := range cons {
			if err := fn(s, cfg); err != nil {
				return err
			}
		}
		return nil
	}
}

// BranchedChain: three rods 0-1-2-3 from the origin, plus a spring of rate C
// branching from node 2 to a new node 4 one length further along x.
// Nodes 0 and 4 are pinned; -f1 acts at node 1 and +f2 at node 3.
func BranchedChain(f1, f2 float64) Constructor {
	return compose(
		Chain(3),
		func(s *structure.Structure, cfg builderConfig) error {
			return SpringTo(2, cfg.length, 1)(s, cfg)
		},
		PinNodes(0, 4),
		PointLoad(1, -f1),
		PointLoad(3, f2),
	)
}

// BackSpringChain: three rods 0-1-2-3 from the origin, plus a spring of
// rate C from node 1 back to a new node 4 one length behind it.
// Nodes 4 and 3 are pinned; +f1 acts at node 0 and +f2 at node 2.
func BackSpringChain(f1, f2 float64) Constructor {
	return compose(
		Chain(3),
		func(s *structure.Structure, cfg builderConfig) error {
			return SpringTo(1, -cfg.length, 1)(s, cfg)
		},
		PinNodes(4, 3),
		PointLoad(0, f1),
		PointLoad(2, f2),
	)
}

// SpringSupportedChain: a spring of rate 2C, three rods and a spring of rate
// C in series (nodes 0..5), both ends pinned. -f1 acts at node 2 and a linear
// load rising from 0 to q is applied on the middle rod (element 2).
func SpringSupportedChain(f1, q float64) Constructor {
	return compose(
		func(s *structure.Structure, cfg builderConfig) error {
			scaled := cfg
			scaled.c = 2 * cfg.c
			return SpringChain(1)(s, scaled)
		},
		Chain(3),
		SpringChain(1),
		PinEnds(),
		PointLoad(2, -f1),
		LinearLoad(2, 0, q),
	)
}
