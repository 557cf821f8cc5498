// SPDX-License-Identifier: MIT

// Package builtin ships a ready-made 5×7 character set (A–Z, 0–9).
//
// Glyphs are stored as stroke skeletons over a symbolic 5×7 grid and
// rasterized once on first use. Letters5x7 and Glyph always hand out deep
// copies, so callers may edit the results freely.
//
// The set is useful as a starting template, as a fixture for codec and
// transform tests, and as the default document of the interactive viewer.
package builtin
