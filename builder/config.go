// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • length  = 1.0  (element length along +x)
//   • E, A    = 1.0, 1.0
//   • C       = 1.0

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	length float64 // element length for chain constructors (>0)
	e, a   float64 // rod Young's modulus and area (>0)
	c      float64 // spring rate (>0)
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLength = 1.0
	defaultE      = 1.0
	defaultA      = 1.0
	defaultC      = 1.0
)

// newBuilderConfig resolves options over the documented defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		length: defaultLength,
		e:      defaultE,
		a:      defaultA,
		c:      defaultC,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
