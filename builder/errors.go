// SPDX-License-Identifier: MIT
// Package: linefem/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewElements indicates that a count parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrNodeIndex indicates that a node index does not exist in the structure
// after negative-index normalisation.
var ErrNodeIndex = errors.New("builder: node index out of range")

// ErrElementIndex indicates that an element index does not exist in the structure.
var ErrElementIndex = errors.New("builder: element index out of range")

// ErrConstructFailed indicates that a constructor could not complete, for
// example a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with a method tag: "builder.<method>: <err>".
func builderErrorf(method string, err error) error {
	return fmt.Errorf("builder.%s: %w", method, err)
}
