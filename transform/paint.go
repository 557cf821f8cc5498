// SPDX-License-Identifier: MIT
// Package transform: whole-glyph painting and region fills.

package transform

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// Invert toggles every pixel of c.
// Complexity: O(W×H).
func Invert(c *core.Character) (*core.Character, error) {
	w, h, bits, err := source("Invert", c)
	if err != nil {
		return nil, err
	}
	for i := range bits {
		bits[i] = !bits[i]
	}

	return build("Invert", w, h, bits)
}

// Clear returns a glyph of c's shape with every pixel off.
func Clear(c *core.Character) (*core.Character, error) {
	return paintAll("Clear", c, false)
}

// Fill returns a glyph of c's shape with every pixel on.
func Fill(c *core.Character) (*core.Character, error) {
	return paintAll("Fill", c, true)
}

func paintAll(op string, c *core.Character, on bool) (*core.Character, error) {
	w, h, bits, err := source(op, c)
	if err != nil {
		return nil, err
	}
	for i := range bits {
		bits[i] = on
	}

	return build(op, w, h, bits)
}

// FloodFill sets every pixel connected to (row, col) that shares the seed's
// value to on. Connectivity follows conn. When the seed already equals on the
// result is an unchanged copy.
//
// Stage 1 (Validate): glyph, connectivity and seed bounds.
// Stage 2 (Execute): breadth-first walk over the flat index space.
// Complexity: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
func FloodFill(c *core.Character, row, col int, on bool, conn Connectivity) (*core.Character, error) {
	w, h, bits, err := source("FloodFill", c)
	if err != nil {
		return nil, err
	}
	offsets := conn.offsets()
	if offsets == nil {
		return nil, fmt.Errorf("transform.FloodFill: connectivity %d: %w", int(conn), core.ErrInvalidConfiguration)
	}
	if row < 0 || row >= h || col < 0 || col >= w {
		return nil, fmt.Errorf("transform.FloodFill(%d,%d): %w", row, col, core.ErrOutOfRange)
	}

	seed := bits[row*w+col]
	if seed != on {
		for _, i := range region(bits, w, h, row*w+col, offsets) {
			bits[i] = on
		}
	}

	return build("FloodFill", w, h, bits)
}

// Components returns the connected regions of lit pixels in c. Each region
// is a slice of row-major pixel indices in breadth-first order; regions are
// ordered by their first pixel in reading order.
// Complexity: O(W×H×d) time, O(W×H) memory.
func Components(c *core.Character, conn Connectivity) ([][]int, error) {
	w, h, bits, err := source("Components", c)
	if err != nil {
		return nil, err
	}
	offsets := conn.offsets()
	if offsets == nil {
		return nil, fmt.Errorf("transform.Components: connectivity %d: %w", int(conn), core.ErrInvalidConfiguration)
	}

	seen := make([]bool, len(bits))
	var comps [][]int
	for i, lit := range bits {
		if !lit || seen[i] {
			continue
		}
		comp := region(bits, w, h, i, offsets)
		for _, j := range comp {
			seen[j] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// region collects the indices reachable from start through cells holding
// the same value as start.
func region(bits []bool, w, h, start int, offsets [][2]int) []int {
	want := bits[start]
	seen := make([]bool, len(bits))
	seen[start] = true
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := u%w, u/w
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vx >= w || vy < 0 || vy >= h {
				continue
			}
			v := vy*w + vx
			if seen[v] || bits[v] != want {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
