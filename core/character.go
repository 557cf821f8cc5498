// SPDX-License-Identifier: MIT
// Package core: Character, a row-major boolean pixel matrix.
// Character follows the same storage model as a dense matrix: width and
// height plus one flat slice of length width*height, cell (r, c) at r*width+c.

package core

import (
	"fmt"
	"strings"
)

// Pixel glyphs used by String and ParseCharacter.
const (
	PixelOnRune  = '#'
	PixelOffRune = '.'
)

// characterErrorf wraps an underlying error with Character method context.
func characterErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Character.%s(%d,%d): %w", method, row, col, err)
}

// Character is one fixed-size monochrome glyph.
// The shape is fixed at creation; reshaping transforms return a new Character.
type Character struct {
	w, h int    // number of columns and rows
	pix  []bool // flat backing storage, length == w*h, row-major
}

// NewCharacter creates a w×h Character with every pixel off.
// Stage 1 (Validate): ensure w, h ≥ 1.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(w*h) time and memory.
func NewCharacter(width, height int) (*Character, error) {
	if width < 1 || height < 1 {
		return nil, characterErrorf("New", height, width, ErrInvalidConfiguration)
	}

	return &Character{w: width, h: height, pix: make([]bool, width*height)}, nil
}

// CharacterFromBits builds a Character from a flat row-major slice.
// The slice is copied; len(bits) must equal width*height.
// Complexity: O(w*h).
func CharacterFromBits(width, height int, bits []bool) (*Character, error) {
	if width < 1 || height < 1 {
		return nil, characterErrorf("FromBits", height, width, ErrInvalidConfiguration)
	}
	if len(bits) != width*height {
		return nil, characterErrorf("FromBits", height, width, ErrShapeMismatch)
	}
	pix := make([]bool, len(bits))
	copy(pix, bits)

	return &Character{w: width, h: height, pix: pix}, nil
}

// CharacterFromRows builds a Character from a [row][col] matrix.
// Returns ErrInvalidConfiguration for an empty matrix and ErrShapeMismatch
// when rows have differing lengths.
// Complexity: O(w*h).
func CharacterFromRows(rows [][]bool) (*Character, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, characterErrorf("FromRows", len(rows), 0, ErrInvalidConfiguration)
	}
	h, w := len(rows), len(rows[0])
	pix := make([]bool, 0, w*h)
	for r, row := range rows {
		if len(row) != w {
			return nil, characterErrorf("FromRows", r, len(row), ErrShapeMismatch)
		}
		pix = append(pix, row...)
	}

	return &Character{w: w, h: h, pix: pix}, nil
}

// ParseCharacter reads the textual form produced by String: one line per row,
// '#', 'X', 'x', '1' or '*' for on and anything else for off.
// Blank leading/trailing lines and surrounding spaces are ignored.
func ParseCharacter(s string) (*Character, error) {
	var rows [][]bool
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == PixelOnRune || r == 'X' || r == 'x' || r == '1' || r == '*')
		}
		rows = append(rows, row)
	}

	return CharacterFromRows(rows)
}

// Width returns the number of columns.
func (c *Character) Width() int { return c.w }

// Height returns the number of rows.
func (c *Character) Height() int { return c.h }

// Validate reports ErrNilCharacter for nil and ErrShapeMismatch when the
// backing storage disagrees with the declared dimensions.
func (c *Character) Validate() error {
	if c == nil {
		return ErrNilCharacter
	}
	if c.w < 1 || c.h < 1 || len(c.pix) != c.w*c.h {
		return characterErrorf("Validate", c.h, c.w, ErrShapeMismatch)
	}

	return nil
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (c *Character) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= c.h || col < 0 || col >= c.w {
		return 0, characterErrorf(method, row, col, ErrOutOfRange)
	}

	return row*c.w + col, nil
}

// At reports whether the pixel at (row, col) is on.
// Complexity: O(1).
func (c *Character) At(row, col int) (bool, error) {
	idx, err := c.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	return c.pix[idx], nil
}

// Set assigns the pixel at (row, col). This is the only mutating method;
// transforms never call it on their inputs.
// Complexity: O(1).
func (c *Character) Set(row, col int, on bool) error {
	idx, err := c.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	c.pix[idx] = on

	return nil
}

// Bits returns a copy of the flat row-major pixel slice.
func (c *Character) Bits() []bool {
	out := make([]bool, len(c.pix))
	copy(out, c.pix)

	return out
}

// Rows returns a fresh [row][col] copy of the pixels.
func (c *Character) Rows() [][]bool {
	rows := make([][]bool, c.h)
	for r := 0; r < c.h; r++ {
		rows[r] = make([]bool, c.w)
		copy(rows[r], c.pix[r*c.w:(r+1)*c.w])
	}

	return rows
}

// Count returns the number of pixels that are on.
func (c *Character) Count() int {
	n := 0
	for _, on := range c.pix {
		if on {
			n++
		}
	}

	return n
}

// Clone returns a deep copy that shares no storage with c.
// Complexity: O(w*h).
func (c *Character) Clone() *Character {
	pix := make([]bool, len(c.pix))
	copy(pix, c.pix)

	return &Character{w: c.w, h: c.h, pix: pix}
}

// Equal reports whether both characters have the same shape and pixels.
func (c *Character) Equal(other *Character) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.w != other.w || c.h != other.h || len(c.pix) != len(other.pix) {
		return false
	}
	for i := range c.pix {
		if c.pix[i] != other.pix[i] {
			return false
		}
	}

	return true
}

// String renders one line per row using '#' for on and '.' for off.
func (c *Character) String() string {
	var b strings.Builder
	b.Grow((c.w + 1) * c.h)
	for r := 0; r < c.h; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, on := range c.pix[r*c.w : (r+1)*c.w] {
			if on {
				b.WriteRune(PixelOnRune)
			} else {
				b.WriteRune(PixelOffRune)
			}
		}
	}

	return b.String()
}
