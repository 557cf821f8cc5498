// SPDX-License-Identifier: MIT
// Package importer: per-source option structs and their documented defaults.

package importer

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// ---------- Defaults (single source of truth) ----------

// Image grid defaults.
const (
	// DefaultCellWidth and DefaultCellHeight describe an 8×8 sheet cell.
	DefaultCellWidth  = 8
	DefaultCellHeight = 8

	// DefaultThreshold splits 8-bit luminance (image sheets) or coverage
	// (font rasterization) into off and on.
	DefaultThreshold = 128
)

// Font defaults.
const (
	DefaultFontSize = 8.0  // points
	DefaultFontDPI  = 72.0 // one point per pixel
)

// Paste defaults.
const (
	// DefaultBareBase is the base of numbers written without a prefix or suffix.
	DefaultBareBase = 10

	// DefaultPerLine is the number of bytes FormatPaste writes per line.
	DefaultPerLine = 8

	// DefaultArrayName names the C array / assembler label FormatPaste emits.
	DefaultArrayName = "font"
)

// ImageGridOptions describes how a sheet image is cut into glyph cells.
// Cells are read row by row; cell (col, row) starts at
// (OffsetX + col*(CellWidth+GapX), OffsetY + row*(CellHeight+GapY)) relative
// to the image's top-left corner.
type ImageGridOptions struct {
	CellWidth, CellHeight int // glyph size in pixels
	Columns, Rows         int // grid size; 0 fits as many whole cells as the image holds
	OffsetX, OffsetY      int // top-left of the first cell
	GapX, GapY            int // spacing between cells

	// Threshold: a pixel is ink when its luminance is below Threshold,
	// or at/above it when InvertInk is set. Mostly transparent pixels are never ink.
	Threshold uint8
	InvertInk bool

	// Byte layout of the resulting set.
	BitDirection     core.BitDirection
	PaddingDirection core.PaddingDirection
}

// DefaultImageGridOptions returns 8×8 cells, auto-sized grid, no offsets,
// dark ink on a light background, MSB-first with right padding.
func DefaultImageGridOptions() ImageGridOptions {
	return ImageGridOptions{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Threshold:  DefaultThreshold,
	}
}

// Validate reports core.ErrInvalidConfiguration for impossible geometry.
func (o ImageGridOptions) Validate() error {
	switch {
	case o.CellWidth < 1 || o.CellHeight < 1:
		return optionsErrorf("ImageGridOptions", "cell %dx%d", o.CellWidth, o.CellHeight)
	case o.Threshold == 0:
		return optionsErrorf("ImageGridOptions", "threshold 0 classifies every pixel the same way")
	case o.Columns < 0 || o.Rows < 0:
		return optionsErrorf("ImageGridOptions", "grid %dx%d", o.Columns, o.Rows)
	case o.OffsetX < 0 || o.OffsetY < 0 || o.GapX < 0 || o.GapY < 0:
		return optionsErrorf("ImageGridOptions", "negative offset or gap")
	case !o.BitDirection.Valid() || !o.PaddingDirection.Valid():
		return optionsErrorf("ImageGridOptions", "byte layout %v/%v", o.BitDirection, o.PaddingDirection)
	}

	return nil
}

// FontOptions controls TrueType rasterization.
type FontOptions struct {
	Size float64 // em size in points
	DPI  float64 // resolution; 72 makes one point one pixel

	Width, Height int // cell size in pixels

	// Baseline is the baseline row measured from the top of the cell.
	// 0 places it so that the font's descent fits at the bottom.
	Baseline int

	// Threshold: a pixel is on when its coverage (0..255) is at least Threshold.
	Threshold uint8

	// Center places each glyph's advance box in the middle of the cell;
	// otherwise glyphs start at x = 0.
	Center bool

	BitDirection     core.BitDirection
	PaddingDirection core.PaddingDirection
}

// DefaultFontOptions returns an 8-point face at 72 DPI in 8×8 centered cells.
func DefaultFontOptions() FontOptions {
	return FontOptions{
		Size:      DefaultFontSize,
		DPI:       DefaultFontDPI,
		Width:     DefaultCellWidth,
		Height:    DefaultCellHeight,
		Threshold: DefaultThreshold,
		Center:    true,
	}
}

// Validate reports core.ErrInvalidConfiguration for impossible sizes.
func (o FontOptions) Validate() error {
	switch {
	case o.Size <= 0 || o.DPI <= 0:
		return optionsErrorf("FontOptions", "size %g at %g dpi", o.Size, o.DPI)
	case o.Width < 1 || o.Height < 1:
		return optionsErrorf("FontOptions", "cell %dx%d", o.Width, o.Height)
	case o.Threshold == 0:
		return optionsErrorf("FontOptions", "threshold 0 turns every pixel on")
	case o.Baseline < 0 || o.Baseline > o.Height:
		return optionsErrorf("FontOptions", "baseline %d outside cell height %d", o.Baseline, o.Height)
	case !o.BitDirection.Valid() || !o.PaddingDirection.Valid():
		return optionsErrorf("FontOptions", "byte layout %v/%v", o.BitDirection, o.PaddingDirection)
	}

	return nil
}

// PasteOptions controls ParsePaste.
type PasteOptions struct {
	// BareBase is the base (10 or 16) of tokens without a prefix or suffix,
	// so that raw hex dumps ("3C 42 81") can be read with BareBase = 16.
	BareBase int
}

// DefaultPasteOptions reads bare numbers as decimal, like a C compiler.
func DefaultPasteOptions() PasteOptions {
	return PasteOptions{BareBase: DefaultBareBase}
}

// Validate reports core.ErrInvalidConfiguration for an unsupported base.
func (o PasteOptions) Validate() error {
	if o.BareBase != 10 && o.BareBase != 16 {
		return optionsErrorf("PasteOptions", "bare base %d", o.BareBase)
	}

	return nil
}

// Style selects the text form written by FormatPaste.
type Style int

const (
	// StyleC writes a C array initialiser.
	StyleC Style = iota
	// StyleAsm writes assembler db lines with $-prefixed hex.
	StyleAsm
	// StyleHex writes bare two-digit hex separated by spaces.
	StyleHex
)

// String returns "c", "asm" or "hex".
func (s Style) String() string {
	switch s {
	case StyleC:
		return "c"
	case StyleAsm:
		return "asm"
	case StyleHex:
		return "hex"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle accepts the names produced by Style.String.
func ParseStyle(s string) (Style, error) {
	for _, st := range []Style{StyleC, StyleAsm, StyleHex} {
		if st.String() == s {
			return st, nil
		}
	}

	return StyleC, optionsErrorf("ParseStyle", "unknown style %q", s)
}

// FormatOptions controls FormatPaste.
type FormatOptions struct {
	Style   Style
	Name    string // array or label name (StyleC, StyleAsm)
	PerLine int    // bytes per output line
}

// DefaultFormatOptions writes a C array named "font", eight bytes per line.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Style: StyleC, Name: DefaultArrayName, PerLine: DefaultPerLine}
}

// Validate reports core.ErrInvalidConfiguration for unusable settings.
func (o FormatOptions) Validate() error {
	switch {
	case o.Style < StyleC || o.Style > StyleHex:
		return optionsErrorf("FormatOptions", "style %v", o.Style)
	case o.PerLine < 1:
		return optionsErrorf("FormatOptions", "per line %d", o.PerLine)
	case o.Style != StyleHex && !isIdentifier(o.Name):
		return optionsErrorf("FormatOptions", "name %q", o.Name)
	}

	return nil
}

func optionsErrorf(typ, format string, args ...any) error {
	return fmt.Errorf("importer.%s: %s: %w", typ, fmt.Sprintf(format, args...), core.ErrInvalidConfiguration)
}

// isIdentifier reports whether s is a C-style identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
