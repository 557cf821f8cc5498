// SPDX-License-Identifier: MIT

// Package importer turns external artwork into glyph sets and renders ROM
// bytes back into source text.
//
// What:
//
//   - FromImage:   slice a bitmap sheet (PNG, GIF, anything image.Image) into a
//     grid of cells and threshold each cell into a glyph.
//   - FromFont:    rasterize runes of a TrueType font into fixed-size cells.
//   - ParsePaste:  read byte literals pasted from C arrays, assembler listings
//     or hex dumps.
//   - FormatPaste: write bytes as a C array, assembler db lines or plain hex.
//
// Options:
//
// Each source has its own options struct with a Default* constructor and a
// Validate method; invalid options fail with core.ErrInvalidConfiguration
// before any work is done.
//
// Errors:
//
//   - ErrOutOfBounds: an image grid cell lies outside the image.
//   - ErrBadFont:     font bytes could not be parsed.
//   - ErrBadLiteral:  a pasted token is not a byte literal.
package importer
