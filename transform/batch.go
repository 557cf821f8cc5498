// SPDX-License-Identifier: MIT
// Package transform: operations over a selection of glyphs.
// A selection is a slice of glyphs edited together; failures name the first
// offending glyph through *core.IndexError.

package transform

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// ApplyAll runs fn over every glyph and returns the results in order.
// It stops at the first failure and returns a *core.IndexError holding its
// index; no partial result is returned.
// Complexity: O(n × cost(fn)).
func ApplyAll(chars []*core.Character, fn Func) ([]*core.Character, error) {
	if fn == nil {
		return nil, fmt.Errorf("transform.ApplyAll: nil transform: %w", core.ErrInvalidConfiguration)
	}
	out := make([]*core.Character, len(chars))
	for i, ch := range chars {
		res, err := fn(ch)
		if err != nil {
			return nil, core.AtIndex(i, err)
		}
		out[i] = res
	}

	return out, nil
}

// ApplyAt runs fn over the glyphs at the given indices and returns a new
// slice where only those positions are transformed; every other glyph is a
// fresh copy, so the result never aliases chars. Duplicate indices are
// transformed once. Indices outside chars fail with core.ErrOutOfRange.
func ApplyAt(chars []*core.Character, indices []int, fn Func) ([]*core.Character, error) {
	if fn == nil {
		return nil, fmt.Errorf("transform.ApplyAt: nil transform: %w", core.ErrInvalidConfiguration)
	}
	out := make([]*core.Character, len(chars))
	done := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(chars) {
			return nil, core.AtIndex(i, core.ErrOutOfRange)
		}
		if done[i] {
			continue
		}
		res, err := fn(chars[i])
		if err != nil {
			return nil, core.AtIndex(i, err)
		}
		out[i] = res
		done[i] = true
	}
	for j, ch := range chars {
		if !done[j] && ch != nil {
			out[j] = ch.Clone()
		}
	}

	return out, nil
}

// ReadPixel aggregates the pixel at (row, col) across the selection.
// Returns SameOn or SameOff when every glyph agrees, Mixed otherwise.
func ReadPixel(chars []*core.Character, row, col int) (PixelState, error) {
	if len(chars) == 0 {
		return SameOff, transformErrorf("ReadPixel", ErrEmptySelection)
	}
	var on, off bool
	for i, ch := range chars {
		if err := ch.Validate(); err != nil {
			return SameOff, core.AtIndex(i, err)
		}
		v, err := ch.At(row, col)
		if err != nil {
			return SameOff, core.AtIndex(i, err)
		}
		if v {
			on = true
		} else {
			off = true
		}
	}

	return state(on, off), nil
}

// ReadGrid returns the aggregate PixelState of every cell, indexed [row][col].
// All glyphs must share the first glyph's shape.
// Complexity: O(n×W×H).
func ReadGrid(chars []*core.Character) ([][]PixelState, error) {
	w, h, err := selectionShape("ReadGrid", chars)
	if err != nil {
		return nil, err
	}
	on := make([]bool, w*h)
	off := make([]bool, w*h)
	for _, ch := range chars {
		for i, v := range ch.Bits() {
			if v {
				on[i] = true
			} else {
				off[i] = true
			}
		}
	}

	grid := make([][]PixelState, h)
	for r := range grid {
		grid[r] = make([]PixelState, w)
		for col := range grid[r] {
			grid[r][col] = state(on[r*w+col], off[r*w+col])
		}
	}

	return grid, nil
}

// PaintPixel sets (row, col) to on in a copy of every selected glyph.
// The inputs are left untouched.
func PaintPixel(chars []*core.Character, row, col int, on bool) ([]*core.Character, error) {
	if len(chars) == 0 {
		return nil, transformErrorf("PaintPixel", ErrEmptySelection)
	}
	out := make([]*core.Character, len(chars))
	for i, ch := range chars {
		if err := ch.Validate(); err != nil {
			return nil, core.AtIndex(i, err)
		}
		cp := ch.Clone()
		if err := cp.Set(row, col, on); err != nil {
			return nil, core.AtIndex(i, err)
		}
		out[i] = cp
	}

	return out, nil
}

// selectionShape validates a non-empty, uniformly shaped selection.
func selectionShape(op string, chars []*core.Character) (w, h int, err error) {
	if len(chars) == 0 {
		return 0, 0, transformErrorf(op, ErrEmptySelection)
	}
	for i, ch := range chars {
		if err = ch.Validate(); err != nil {
			return 0, 0, core.AtIndex(i, err)
		}
		if i == 0 {
			w, h = ch.Width(), ch.Height()
			continue
		}
		if ch.Width() != w || ch.Height() != h {
			return 0, 0, core.AtIndex(i, core.ErrShapeMismatch)
		}
	}

	return w, h, nil
}

func state(on, off bool) PixelState {
	switch {
	case on && off:
		return Mixed
	case on:
		return SameOn
	default:
		return SameOff
	}
}
