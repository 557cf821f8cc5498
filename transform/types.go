// SPDX-License-Identifier: MIT
// Package transform: enums and the Func signature.

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chargen/core"
)

// Func is a single-glyph transform. Implementations must not mutate the input.
type Func func(c *core.Character) (*core.Character, error)

// Anchor selects which part of a glyph stays fixed when Resize changes its shape.
type Anchor int

const (
	// TopLeft keeps the top-left corner fixed.
	TopLeft Anchor = iota
	// TopCenter keeps the top edge fixed and centers horizontally.
	TopCenter
	// TopRight keeps the top-right corner fixed.
	TopRight
	// MiddleLeft keeps the left edge fixed and centers vertically.
	MiddleLeft
	// Center centers on both axes.
	Center
	// MiddleRight keeps the right edge fixed and centers vertically.
	MiddleRight
	// BottomLeft keeps the bottom-left corner fixed.
	BottomLeft
	// BottomCenter keeps the bottom edge fixed and centers horizontally.
	BottomCenter
	// BottomRight keeps the bottom-right corner fixed.
	BottomRight
)

var anchorNames = [...]string{
	"top-left", "top", "top-right",
	"left", "center", "right",
	"bottom-left", "bottom", "bottom-right",
}

// String returns the kebab-case anchor name.
func (a Anchor) String() string {
	if a < TopLeft || a > BottomRight {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}

	return anchorNames[a]
}

// Valid reports whether a is one of the nine anchors.
func (a Anchor) Valid() bool { return a >= TopLeft && a <= BottomRight }

// ParseAnchor accepts the names produced by Anchor.String, case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}

	return TopLeft, fmt.Errorf("transform.ParseAnchor(%q): %w", s, core.ErrInvalidConfiguration)
}

// alignment splits an anchor into per-axis alignments: 0 start, 1 center, 2 end.
func (a Anchor) alignment() (horizontal, vertical int) {
	return int(a) % 3, int(a) / 3
}

// ScaleAlgorithm selects the resampling method used by Scale.
type ScaleAlgorithm int

const (
	// NearestNeighbor maps each output pixel to src = floor(out*in/outSize).
	NearestNeighbor ScaleAlgorithm = iota
	// BoxSampling turns an output pixel on when lit source pixels cover at
	// least half of its footprint.
	BoxSampling
)

// String returns "nearest" or "box".
func (s ScaleAlgorithm) String() string {
	switch s {
	case NearestNeighbor:
		return "nearest"
	case BoxSampling:
		return "box"
	default:
		return fmt.Sprintf("ScaleAlgorithm(%d)", int(s))
	}
}

// ParseScaleAlgorithm accepts "nearest"/"nn" and "box"/"area".
func ParseScaleAlgorithm(s string) (ScaleAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "nn", "nearest-neighbor":
		return NearestNeighbor, nil
	case "box", "area", "box-sampling":
		return BoxSampling, nil
	}

	return NearestNeighbor, fmt.Errorf("transform.ParseScaleAlgorithm(%q): %w", s, core.ErrInvalidConfiguration)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the {dx, dy} neighbor table for conn, or nil if conn is unknown.
func (conn Connectivity) offsets() [][2]int {
	switch conn {
	case Conn4:
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	case Conn8:
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	default:
		return nil
	}
}

// PixelState is the aggregate value of one cell across a glyph selection.
// The set of values is closed: SameOff, SameOn, Mixed.
type PixelState int

const (
	// SameOff: the pixel is off in every selected glyph.
	SameOff PixelState = iota
	// SameOn: the pixel is on in every selected glyph.
	SameOn
	// Mixed: the selection disagrees.
	Mixed
)

// String returns "off", "on" or "mixed".
func (p PixelState) String() string {
	switch p {
	case SameOff:
		return "off"
	case SameOn:
		return "on"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("PixelState(%d)", int(p))
	}
}

// Rune renders the state for text grids: '.', '#' or '?'.
func (p PixelState) Rune() rune {
	switch p {
	case SameOn:
		return core.PixelOnRune
	case Mixed:
		return '?'
	default:
		return core.PixelOffRune
	}
}
