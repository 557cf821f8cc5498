// Package chargen is a toolkit for character-generator ROM fonts: the
// fixed-size bitmap glyphs that 8-bit computers, terminals and LCD
// controllers read straight out of memory.
//
// What is in the box?
//
//	• A bit-exact codec between ROM bytes and pixel grids, for either bit
//	  order (MSB or LSB = leftmost pixel) and either padding side
//	• Glyph transforms: rotate, flip, shift, invert, flood fill, resize
//	  on an anchor, nearest/box scaling, selection-wide pixel editing
//	• A generic undo/redo history for any document type
//	• Importers from TrueType fonts, bitmap sheets and pasted source text
//	• A built-in 5×7 A–Z/0–9 set and the chargen command with a terminal editor
//
// Packages:
//
//	core/      — Character, CharacterSet, Config and the shared error sentinels
//	codec/     — Decode / Encode / Convert between ROM bytes and glyphs
//	transform/ — pure glyph→glyph operations and multi-glyph selections
//	history/   — History[T]: past / present / future stacks with a cap
//	importer/  — FromFont, FromImage, ParsePaste, FormatPaste
//	builtin/   — the ready-made 5×7 set
//	cmd/chargen — CLI: info, convert, transform, show, export, import-*, view
//
// Quick example (5-pixel rows, MSB first, padding on the right):
//
//	0x70 → .###.
//	0x88 → #...#
//
//	go install github.com/katalvlaran/chargen/cmd/chargen@latest
package chargen
