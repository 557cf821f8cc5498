// SPDX-License-Identifier: MIT
// Package transform: name lookup and parameterised Func constructors,
// used by command-line and interactive front ends.

package transform

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chargen/core"
)

var registry = map[string]Func{
	"rotate-cw":  RotateCW,
	"rotate-ccw": RotateCCW,
	"rotate-180": Rotate180,
	"flip-h":     FlipHorizontal,
	"flip-v":     FlipVertical,
	"invert":     Invert,
	"clear":      Clear,
	"fill":       Fill,
}

// Names lists the parameterless transforms known to Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the parameterless transform registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("transform.Lookup(%q): %w", name, ErrUnknownTransform)
	}

	return fn, nil
}

// ShiftBy binds Shift to fixed offsets.
func ShiftBy(dx, dy int) Func {
	return func(c *core.Character) (*core.Character, error) { return Shift(c, dx, dy) }
}

// ResizeTo binds Resize to a fixed size and anchor.
func ResizeTo(width, height int, anchor Anchor) Func {
	return func(c *core.Character) (*core.Character, error) { return Resize(c, width, height, anchor) }
}

// ScaleTo binds Scale to a fixed size and algorithm.
func ScaleTo(width, height int, alg ScaleAlgorithm) Func {
	return func(c *core.Character) (*core.Character, error) { return Scale(c, width, height, alg) }
}

// FloodFillAt binds FloodFill to a seed, value and connectivity.
func FloodFillAt(row, col int, on bool, conn Connectivity) Func {
	return func(c *core.Character) (*core.Character, error) { return FloodFill(c, row, col, on, conn) }
}

// Chain composes fns left to right: Chain(a, b)(c) == b(a(c)).
func Chain(fns ...Func) Func {
	return func(c *core.Character) (*core.Character, error) {
		if err := c.Validate(); err != nil {
			return nil, transformErrorf("Chain", err)
		}
		cur := c
		for i, fn := range fns {
			next, err := fn(cur)
			if err != nil {
				return nil, fmt.Errorf("transform.Chain step %d: %w", i, err)
			}
			cur = next
		}
		if cur == c {
			return c.Clone(), nil
		}

		return cur, nil
	}
}
