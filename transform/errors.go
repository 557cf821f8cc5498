// SPDX-License-Identifier: MIT
// Package transform: sentinel errors specific to transforms.
// Shape, range and configuration failures reuse the core sentinels.

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

var (
	// ErrEmptySelection is returned by batch helpers given zero glyphs.
	ErrEmptySelection = errors.New("transform: empty selection")

	// ErrUnknownTransform is returned by Lookup for an unregistered name.
	ErrUnknownTransform = errors.New("transform: unknown transform")
)

// transformErrorf wraps an underlying error with operation context.
func transformErrorf(op string, err error) error {
	return fmt.Errorf("transform.%s: %w", op, err)
}

// source validates c and returns its shape and a private copy of its pixels.
func source(op string, c *core.Character) (w, h int, bits []bool, err error) {
	if err = c.Validate(); err != nil {
		return 0, 0, nil, transformErrorf(op, err)
	}

	return c.Width(), c.Height(), c.Bits(), nil
}

// build wraps core.CharacterFromBits; the shape is always valid here.
func build(op string, w, h int, bits []bool) (*core.Character, error) {
	out, err := core.CharacterFromBits(w, h, bits)
	if err != nil {
		return nil, transformErrorf(op, err)
	}

	return out, nil
}
