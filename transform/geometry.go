// SPDX-License-Identifier: MIT
// Package transform: rotations, mirrors and toroidal shifts.
// All functions index the flat row-major pixel slice directly: cell (r, c)
// of a W-wide glyph lives at r*W+c.

package transform

import "github.com/katalvlaran/chargen/core"

// RotateCW rotates c a quarter turn clockwise.
// Pixel (r, col) moves to (col, H-1-r); the result is H wide and W tall.
// Complexity: O(W×H).
func RotateCW(c *core.Character) (*core.Character, error) {
	w, h, in, err := source("RotateCW", c)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(in))
	// output width is h
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			out[col*h+(h-1-r)] = in[r*w+col]
		}
	}

	return build("RotateCW", h, w, out)
}

// RotateCCW rotates c a quarter turn counter-clockwise.
// Pixel (r, col) moves to (W-1-col, r); the result is H wide and W tall.
// Complexity: O(W×H).
func RotateCCW(c *core.Character) (*core.Character, error) {
	w, h, in, err := source("RotateCCW", c)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(in))
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			out[(w-1-col)*h+r] = in[r*w+col]
		}
	}

	return build("RotateCCW", h, w, out)
}

// Rotate180 rotates c a half turn; equal to RotateCW applied twice.
// Complexity: O(W×H).
func Rotate180(c *core.Character) (*core.Character, error) {
	w, h, in, err := source("Rotate180", c)
	if err != nil {
		return nil, err
	}
	// a half turn reverses the flat row-major order
	n := len(in)
	out := make([]bool, n)
	for i, v := range in {
		out[n-1-i] = v
	}

	return build("Rotate180", w, h, out)
}

// FlipHorizontal mirrors c left to right.
// Complexity: O(W×H).
func FlipHorizontal(c *core.Character) (*core.Character, error) {
	w, h, in, err := source("FlipHorizontal", c)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		row := in[r*w : (r+1)*w]
		for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}

	return build("FlipHorizontal", w, h, in)
}

// FlipVertical mirrors c top to bottom.
// Complexity: O(W×H).
func FlipVertical(c *core.Character) (*core.Character, error) {
	w, h, in, err := source("FlipVertical", c)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(in))
	for r := 0; r < h; r++ {
		copy(out[(h-1-r)*w:(h-r)*w], in[r*w:(r+1)*w])
	}

	return build("FlipVertical", w, h, out)
}

// Shift moves every pixel dx columns right and dy rows down, wrapping around
// the edges. Negative offsets move left/up; offsets of any magnitude are
// reduced modulo the glyph size.
// Complexity: O(W×H).
func Shift(c *core.Character, dx, dy int) (*core.Character, error) {
	w, h, in, err := source("Shift", c)
	if err != nil {
		return nil, err
	}
	dx, dy = wrap(dx, w), wrap(dy, h)
	out := make([]bool, len(in))
	for r := 0; r < h; r++ {
		tr := (r + dy) % h
		for col := 0; col < w; col++ {
			out[tr*w+(col+dx)%w] = in[r*w+col]
		}
	}

	return build("Shift", w, h, out)
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
