// SPDX-License-Identifier: MIT
// Package importer: sentinel errors. Option validation reuses
// core.ErrInvalidConfiguration.

package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an image grid cell that does not fit inside the image.
	ErrOutOfBounds = errors.New("importer: cell outside image bounds")

	// ErrBadFont indicates font data that the TrueType parser rejected.
	ErrBadFont = errors.New("importer: cannot parse font")

	// ErrBadLiteral indicates a pasted token that is not a byte literal (0..255).
	ErrBadLiteral = errors.New("importer: bad byte literal")
)

// importerErrorf wraps an underlying error with operation context.
func importerErrorf(op string, err error) error {
	return fmt.Errorf("importer.%s: %w", op, err)
}
