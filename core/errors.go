// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every chargen package.
// Codec, transform and importer code return (or wrap) these sentinels and
// tests match them with errors.Is. Nothing in the engine panics on user
// input; panics are reserved for programmer errors in option constructors.

package core

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ...". Callers add context with
// fmt.Errorf("Op: %w", ErrX); errors.Is still matches the sentinel.

var (
	// ErrInvalidConfiguration is returned when a Configuration or requested
	// shape has a zero or negative dimension, or an unknown direction value.
	// It is raised at construction time, never deferred to encode/decode.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrMalformedInput is returned when a byte buffer length is not a
	// multiple of the glyph size. Buffers are never silently truncated.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrShapeMismatch signals a Character whose matrix shape disagrees with
	// the stated width/height (or with its Configuration). It indicates a
	// caller bug.
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrOutOfRange indicates a row, column or glyph index outside valid bounds.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrNilCharacter indicates that a nil *Character was passed where a
	// glyph is required.
	ErrNilCharacter = errors.New("core: nil character")
)

// IndexError reports the position of the first failing element of a
// sequence operation (batch transform, encode of many glyphs, set validation).
// It unwraps to the underlying sentinel so errors.Is keeps working.
type IndexError struct {
	Index int   // position of the first failure
	Err   error // underlying cause
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("glyph %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *IndexError) Unwrap() error { return e.Err }

// AtIndex wraps err with its sequence position. A nil err stays nil.
func AtIndex(index int, err error) error {
	if err == nil {
		return nil
	}

	return &IndexError{Index: index, Err: err}
}

// coreErrorf wraps an underlying error with method context,
// mirroring the "Type.Method(args): cause" shape used across packages.
func coreErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
