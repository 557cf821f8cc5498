// SPDX-License-Identifier: MIT

package importer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/chargen/core"
)

// FromImage cuts img into a grid of cells and thresholds each into a glyph.
// Glyphs are returned in reading order (left to right, top to bottom).
//
// Stage 1 (Validate): options, then grid size (auto-fit when Columns or Rows is 0).
// Stage 2 (Execute): sample every cell pixel through the gray color model.
// Complexity: O(Columns×Rows×CellWidth×CellHeight).
func FromImage(img image.Image, opts ImageGridOptions) (*core.CharacterSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, importerErrorf("FromImage", fmt.Errorf("nil image: %w", core.ErrInvalidConfiguration))
	}
	cfg, err := core.NewConfig(opts.CellWidth, opts.CellHeight, opts.BitDirection, opts.PaddingDirection)
	if err != nil {
		return nil, importerErrorf("FromImage", err)
	}

	b := img.Bounds()
	stepX, stepY := opts.CellWidth+opts.GapX, opts.CellHeight+opts.GapY
	cols, rows := opts.Columns, opts.Rows
	if cols == 0 {
		cols = fit(b.Dx()-opts.OffsetX, opts.CellWidth, stepX)
	}
	if rows == 0 {
		rows = fit(b.Dy()-opts.OffsetY, opts.CellHeight, stepY)
	}

	set := &core.CharacterSet{Config: cfg, Characters: make([]*core.Character, 0, cols*rows)}
	bits := make([]bool, opts.CellWidth*opts.CellHeight)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + opts.OffsetX + col*stepX
			y0 := b.Min.Y + opts.OffsetY + row*stepY
			cell := image.Rect(x0, y0, x0+opts.CellWidth, y0+opts.CellHeight)
			if !cell.In(b) {
				return nil, importerErrorf("FromImage",
					fmt.Errorf("cell (%d,%d) at %v not in %v: %w", col, row, cell, b, ErrOutOfBounds))
			}
			for y := 0; y < opts.CellHeight; y++ {
				for x := 0; x < opts.CellWidth; x++ {
					bits[y*opts.CellWidth+x] = isInk(img.At(x0+x, y0+y), opts)
				}
			}
			ch, err := core.CharacterFromBits(opts.CellWidth, opts.CellHeight, bits)
			if err != nil {
				return nil, importerErrorf("FromImage", err)
			}
			set.Characters = append(set.Characters, ch)
		}
	}

	return set, nil
}

// fit returns how many cells of size cell spaced by step fit into span.
func fit(span, cell, step int) int {
	if span < cell {
		return 0
	}

	return (span-cell)/step + 1
}

// isInk classifies one pixel. Pixels with less than half alpha are background.
func isInk(c color.Color, opts ImageGridOptions) bool {
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	y := color.GrayModel.Convert(c).(color.Gray).Y
	if opts.InvertInk {
		return y >= opts.Threshold
	}

	return y < opts.Threshold
}
