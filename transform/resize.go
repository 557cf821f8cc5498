// SPDX-License-Identifier: MIT
// Package transform: reshaping by crop/pad (Resize) and resampling (Scale).

package transform

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// Resize changes the canvas of c to width×height without resampling.
// Growing pads with off pixels, shrinking crops away from the anchor.
//
// Per axis the source is placed at offset 0 (start), delta/2 (center) or
// delta (end), where delta = new - old. The center offset truncates toward
// zero so that growing then shrinking by the same amount restores c exactly.
//
// Stage 1 (Validate): glyph, target size ≥ 1, known anchor.
// Stage 2 (Execute): copy the overlapping window.
// Complexity: O(width×height).
func Resize(c *core.Character, width, height int, anchor Anchor) (*core.Character, error) {
	w, h, in, err := source("Resize", c)
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("transform.Resize(%d,%d): %w", width, height, core.ErrInvalidConfiguration)
	}
	if !anchor.Valid() {
		return nil, fmt.Errorf("transform.Resize: %v: %w", anchor, core.ErrInvalidConfiguration)
	}

	ax, ay := anchor.alignment()
	offX, offY := offset(width-w, ax), offset(height-h, ay)
	out := make([]bool, width*height)
	for r := 0; r < height; r++ {
		sr := r - offY
		if sr < 0 || sr >= h {
			continue
		}
		for col := 0; col < width; col++ {
			sc := col - offX
			if sc < 0 || sc >= w {
				continue
			}
			out[r*width+col] = in[sr*w+sc]
		}
	}

	return build("Resize", width, height, out)
}

// offset returns where the source starts on one axis for an alignment
// (0 start, 1 center, 2 end) and size delta.
func offset(delta, align int) int {
	switch align {
	case 1:
		return delta / 2
	case 2:
		return delta
	default:
		return 0
	}
}

// Scale resamples c to width×height using alg.
//
// NearestNeighbor: output pixel (r, col) copies source (r*H/height, col*W/width).
// BoxSampling: each output pixel covers a W/width × H/height source box; it is
// on when lit source pixels cover at least half the box area. Coverage is
// computed in exact integer units (source coordinates scaled by the output
// size), so results do not depend on floating-point rounding.
//
// Complexity: O(width×height) for NearestNeighbor; BoxSampling adds the box size.
func Scale(c *core.Character, width, height int, alg ScaleAlgorithm) (*core.Character, error) {
	w, h, in, err := source("Scale", c)
	if err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("transform.Scale(%d,%d): %w", width, height, core.ErrInvalidConfiguration)
	}

	out := make([]bool, width*height)
	switch alg {
	case NearestNeighbor:
		for r := 0; r < height; r++ {
			sr := r * h / height
			for col := 0; col < width; col++ {
				out[r*width+col] = in[sr*w+col*w/width]
			}
		}
	case BoxSampling:
		// Scaled units: source pixel x spans [x*width, (x+1)*width), output
		// pixel col spans [col*w, (col+1)*w); the same for rows.
		area := w * h
		for r := 0; r < height; r++ {
			y0, y1 := r*h, (r+1)*h
			for col := 0; col < width; col++ {
				x0, x1 := col*w, (col+1)*w
				lit := 0
				for sy := y0 / height; sy*height < y1; sy++ {
					oy := overlap(y0, y1, sy*height, (sy+1)*height)
					for sx := x0 / width; sx*width < x1; sx++ {
						if in[sy*w+sx] {
							lit += oy * overlap(x0, x1, sx*width, (sx+1)*width)
						}
					}
				}
				out[r*width+col] = 2*lit >= area
			}
		}
	default:
		return nil, fmt.Errorf("transform.Scale: %v: %w", alg, core.ErrInvalidConfiguration)
	}

	return build("Scale", width, height, out)
}

// overlap returns the length of [a0, a1) ∩ [b0, b1).
func overlap(a0, a1, b0, b1 int) int {
	lo, hi := max(a0, b0), min(a1, b1)
	if hi <= lo {
		return 0
	}

	return hi - lo
}
