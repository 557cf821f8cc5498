// SPDX-License-Identifier: MIT
// Package core: Configuration value describing how glyphs are laid out in a
// character-generator ROM image.
//
// Contract:
//   - Width ≥ 1 and Height ≥ 1, enforced by NewConfig (ErrInvalidConfiguration).
//   - BytesPerRow = ceil(Width/8); BytesPerGlyph = BytesPerRow*Height.
//   - Immutable: fields are unexported; With* derivations return new values.
//     Changing a Configuration never touches glyphs already decoded, it only
//     changes how later encode/decode calls interpret bytes.

package core

import (
	"fmt"
	"strings"
)

// BitDirection selects which bit of a byte maps to the leftmost pixel.
type BitDirection int

const (
	// LeftToRight reads the most-significant bit first (bit 7 → leftmost pixel).
	LeftToRight BitDirection = iota

	// RightToLeft reads the least-significant bit first (bit 0 → leftmost pixel).
	RightToLeft
)

// String returns the short wire name ("ltr" / "rtl").
func (b BitDirection) String() string {
	switch b {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return fmt.Sprintf("BitDirection(%d)", int(b))
	}
}

// Valid reports whether b is one of the declared directions.
func (b BitDirection) Valid() bool {
	return b == LeftToRight || b == RightToLeft
}

// MarshalText implements encoding.TextMarshaler.
func (b BitDirection) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, coreErrorf("BitDirection.MarshalText", ErrInvalidConfiguration)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BitDirection) UnmarshalText(text []byte) error {
	v, err := ParseBitDirection(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// ParseBitDirection accepts "ltr"/"msb" and "rtl"/"lsb" (case-insensitive).
func ParseBitDirection(s string) (BitDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr", "msb", "lefttoright":
		return LeftToRight, nil
	case "rtl", "lsb", "righttoleft":
		return RightToLeft, nil
	}

	return 0, fmt.Errorf("ParseBitDirection(%q): %w", s, ErrInvalidConfiguration)
}

// PaddingDirection selects which side of a byte row holds unused bits when
// Width is not a multiple of 8.
type PaddingDirection int

const (
	// PaddingRight puts the padding bits after the pixels of a row's last
	// byte, in reading order; the row's pixels start at its first bit.
	PaddingRight PaddingDirection = iota

	// PaddingLeft puts the padding bits before the pixels of a row's last
	// byte, in reading order. Which physical bits that is depends on the
	// BitDirection: the high bits for LeftToRight, the low bits for RightToLeft.
	PaddingLeft
)

// String returns the short wire name ("left" / "right").
func (p PaddingDirection) String() string {
	switch p {
	case PaddingRight:
		return "right"
	case PaddingLeft:
		return "left"
	default:
		return fmt.Sprintf("PaddingDirection(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared directions.
func (p PaddingDirection) Valid() bool {
	return p == PaddingRight || p == PaddingLeft
}

// MarshalText implements encoding.TextMarshaler.
func (p PaddingDirection) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, coreErrorf("PaddingDirection.MarshalText", ErrInvalidConfiguration)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PaddingDirection) UnmarshalText(text []byte) error {
	v, err := ParsePaddingDirection(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// ParsePaddingDirection accepts "left" and "right" (case-insensitive).
func ParsePaddingDirection(s string) (PaddingDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return PaddingRight, nil
	case "left", "l":
		return PaddingLeft, nil
	}

	return 0, fmt.Errorf("ParsePaddingDirection(%q): %w", s, ErrInvalidConfiguration)
}

// Config is the immutable description of one glyph slot in a ROM image.
// The zero value is invalid; build one with NewConfig.
type Config struct {
	width, height int
	bit           BitDirection
	padding       PaddingDirection
}

// NewConfig validates and returns a Configuration.
// Stage 1 (Validate): width, height ≥ 1 and known direction values.
// Stage 2 (Finalize): return the immutable value.
// Complexity: O(1).
func NewConfig(width, height int, bit BitDirection, padding PaddingDirection) (Config, error) {
	if width < 1 || height < 1 {
		return Config{}, fmt.Errorf("NewConfig(%d,%d): %w", width, height, ErrInvalidConfiguration)
	}
	if !bit.Valid() || !padding.Valid() {
		return Config{}, fmt.Errorf("NewConfig(%v,%v): %w", bit, padding, ErrInvalidConfiguration)
	}

	return Config{width: width, height: height, bit: bit, padding: padding}, nil
}

// Width returns the glyph width in pixels.
func (c Config) Width() int { return c.width }

// Height returns the glyph height in pixels.
func (c Config) Height() int { return c.height }

// BitDirection returns the bit-to-column order.
func (c Config) BitDirection() BitDirection { return c.bit }

// PaddingDirection returns the side holding unused bits.
func (c Config) PaddingDirection() PaddingDirection { return c.padding }

// BytesPerRow returns ceil(Width/8).
func (c Config) BytesPerRow() int { return (c.width + 7) / 8 }

// BytesPerGlyph returns BytesPerRow*Height.
func (c Config) BytesPerGlyph() int { return c.BytesPerRow() * c.height }

// PaddingBits returns the number of unused bits per row.
func (c Config) PaddingBits() int { return c.BytesPerRow()*8 - c.width }

// Validate re-checks the construction invariants. It exists for values that
// arrive by other routes than NewConfig (zero values, decoded JSON).
func (c Config) Validate() error {
	_, err := NewConfig(c.width, c.height, c.bit, c.padding)

	return err
}

// WithBitDirection returns a copy of c using bit. Dimensions are unchanged.
func (c Config) WithBitDirection(bit BitDirection) (Config, error) {
	return NewConfig(c.width, c.height, bit, c.padding)
}

// WithPaddingDirection returns a copy of c using padding.
func (c Config) WithPaddingDirection(padding PaddingDirection) (Config, error) {
	return NewConfig(c.width, c.height, c.bit, padding)
}

// WithSize returns a copy of c with new glyph dimensions.
func (c Config) WithSize(width, height int) (Config, error) {
	return NewConfig(width, height, c.bit, c.padding)
}

// SameShape reports whether two configurations describe equally sized glyphs.
func (c Config) SameShape(other Config) bool {
	return c.width == other.width && c.height == other.height
}

// Fits reports whether ch has exactly this configuration's dimensions.
func (c Config) Fits(ch *Character) bool {
	return ch != nil && ch.Width() == c.width && ch.Height() == c.height
}

// String implements fmt.Stringer, e.g. "8x8 ltr/right".
func (c Config) String() string {
	return fmt.Sprintf("%dx%d %v/%v", c.width, c.height, c.bit, c.padding)
}
