// SPDX-License-Identifier: MIT

package modelio

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a malformed model file. The wrapping error names the line.
var ErrSyntax = errors.New("modelio: syntax error")

// ErrPrecision indicates a model that would not load back at the chosen
// number of decimals.
var ErrPrecision = errors.New("modelio: value lost at save precision")

func syntaxErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrSyntax)
}
