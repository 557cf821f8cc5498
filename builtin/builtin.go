// SPDX-License-Identifier: MIT

package builtin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/chargen/core"
)

// ErrNoGlyph is returned by Glyph for a rune outside the built-in set.
var ErrNoGlyph = errors.New("builtin: no glyph for rune")

// rasterized holds every skeleton drawn once, in set order.
var rasterized = sync.OnceValue(func() []*core.Character {
	out := make([]*core.Character, 0, len(order))
	for _, r := range order {
		out = append(out, rasterize(skeletons[r]))
	}

	return out
})

// Runes returns the runes of the built-in set in set order (A–Z, 0–9).
func Runes() []rune { return []rune(order) }

// Glyph returns a fresh copy of the 5×7 glyph for r.
func Glyph(r rune) (*core.Character, error) {
	for i, o := range order {
		if o == r {
			return rasterized()[i].Clone(), nil
		}
	}

	return nil, fmt.Errorf("builtin.Glyph(%q): %w", r, ErrNoGlyph)
}

// Letters5x7 returns the built-in set as a CharacterSet laid out MSB-first
// with right padding. Every call returns an independent deep copy.
func Letters5x7() *core.CharacterSet {
	cfg, err := core.NewConfig(Width, Height, core.LeftToRight, core.PaddingRight)
	if err != nil {
		panic(err) // constant shape
	}
	src := rasterized()
	set := &core.CharacterSet{Config: cfg, Characters: make([]*core.Character, len(src))}
	for i, ch := range src {
		set.Characters[i] = ch.Clone()
	}

	return set
}

// rasterize draws every stroke segment onto a blank 5×7 grid.
func rasterize(strokes []stroke) *core.Character {
	bits := make([]bool, Width*Height)
	for _, st := range strokes {
		if len(st) == 1 {
			bits[st[0][1]*Width+st[0][0]] = true
		}
		for i := 1; i < len(st); i++ {
			line(bits, st[i-1], st[i])
		}
	}
	ch, err := core.CharacterFromBits(Width, Height, bits)
	if err != nil {
		panic(err) // constant shape
	}

	return ch
}

// line plots the integer segment a→b (both ends included) using the
// all-octant error-accumulation form of Bresenham's algorithm.
func line(bits []bool, a, b point) {
	x0, y0, x1, y1 := a[0], a[1], b[0], b[1]
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		bits[y0*Width+x0] = true
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}

	return 1
}
