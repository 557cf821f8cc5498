// SPDX-License-Identifier: MIT
// Package builtin: stroke skeletons on the 5×7 grid (data only).
//
// Each glyph is one or more polylines through named grid points. Points use
// symbolic column and row tokens so the data reads like the drawing:
//
//	columns: L LC C RC R        (leftmost … rightmost)
//	rows:    T PT UM M PM UB B  (topmost … bottommost)
//
// Rasterization (see builtin.go) draws each polyline segment with integer
// line stepping, so a glyph's bitmap is a pure function of this table.
// Keep changes append-only: existing skeletons are pinned by tests.

package builtin

// Columns (leftmost … rightmost).
const (
	L  = iota // Leftmost
	LC        // LeftCenter
	C         // Center
	RC        // RightCenter
	R         // Rightmost
)

// Rows (topmost … bottommost).
const (
	T  = iota // Topmost
	PT        // PreTop
	UM        // UpperMedium
	M         // Medium
	PM        // PreMedium
	UB        // UpperBottom
	B         // Bottommost
)

// Grid size of every skeleton.
const (
	Width  = 5
	Height = 7
)

// point is a grid position {column, row}.
type point [2]int

// stroke is a polyline; a single point draws one pixel.
type stroke []point

// order lists the glyphs in set order: A–Z then 0–9.
const order = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var skeletons = map[rune][]stroke{
	// ===== LETTERS =====

	// .###.
	// #...#
	// #...#
	// #####
	// #...#
	// #...#
	// #...#
	'A': {{{L, B}, {L, PT}, {LC, T}, {RC, T}, {R, PT}, {R, B}}, {{L, M}, {R, M}}},
	'B': {{{L, B}, {L, T}, {RC, T}, {R, PT}, {R, UM}, {RC, M}, {R, PM}, {R, UB}, {RC, B}, {L, B}}, {{L, M}, {RC, M}}},
	'C': {{{R, PT}, {RC, T}, {LC, T}, {L, PT}, {L, UB}, {LC, B}, {RC, B}, {R, UB}}},
	'D': {{{L, B}, {L, T}, {RC, T}, {R, PT}, {R, UB}, {RC, B}, {L, B}}},
	'E': {{{R, B}, {L, B}, {L, T}, {R, T}}, {{L, M}, {RC, M}}},
	'F': {{{L, B}, {L, T}, {R, T}}, {{L, M}, {RC, M}}},
	'G': {{{R, PT}, {RC, T}, {LC, T}, {L, PT}, {L, UB}, {LC, B}, {RC, B}, {R, UB}, {R, PM}, {C, PM}}},
	'H': {{{L, B}, {L, T}}, {{R, B}, {R, T}}, {{L, M}, {R, M}}},
	'I': {{{LC, T}, {RC, T}}, {{LC, B}, {RC, B}}, {{C, T}, {C, B}}},
	'J': {{{C, T}, {R, T}}, {{RC, T}, {RC, UB}, {C, B}, {LC, B}, {L, UB}}},

	// #...#
	// #..#.
	// #.#..
	// ##...
	// #.#..
	// #..#.
	// #...#
	'K': {{{L, T}, {L, B}}, {{R, T}, {LC, M}, {L, M}}, {{LC, M}, {R, B}}},
	'L': {{{L, T}, {L, B}, {R, B}}},
	'M': {{{L, B}, {L, T}, {C, UM}, {R, T}, {R, B}}, {{C, UM}, {C, M}}},
	'N': {{{L, B}, {L, T}}, {{L, PT}, {R, UB}}, {{R, T}, {R, B}}},
	'O': {{{LC, T}, {RC, T}, {R, PT}, {R, UB}, {RC, B}, {LC, B}, {L, UB}, {L, PT}, {LC, T}}},
	'P': {{{L, B}, {L, T}, {RC, T}, {R, PT}, {R, UM}, {RC, M}, {L, M}}},
	'Q': {{{LC, T}, {RC, T}, {R, PT}, {R, PM}, {RC, UB}, {LC, B}, {L, UB}, {L, PT}, {LC, T}}, {{C, PM}, {R, B}}},
	'R': {{{L, B}, {L, T}, {RC, T}, {R, PT}, {R, UM}, {RC, M}, {L, M}}, {{C, M}, {R, B}}},
	'S': {{{R, PT}, {RC, T}, {LC, T}, {L, PT}, {L, UM}, {LC, M}, {RC, M}, {R, PM}, {R, UB}, {RC, B}, {LC, B}, {L, UB}}},
	'T': {{{L, T}, {R, T}}, {{C, T}, {C, B}}},
	'U': {{{L, T}, {L, UB}, {LC, B}, {RC, B}, {R, UB}, {R, T}}},
	'V': {{{L, T}, {L, M}, {C, B}, {R, M}, {R, T}}},
	'W': {{{L, T}, {L, B}, {C, PM}, {R, B}, {R, T}}, {{C, M}, {C, PM}}},
	'X': {{{L, T}, {L, PT}, {R, UB}, {R, B}}, {{R, T}, {R, PT}, {L, UB}, {L, B}}},
	'Y': {{{L, T}, {L, PT}, {C, M}, {R, PT}, {R, T}}, {{C, M}, {C, B}}},

	// #####
	// ....#
	// ...#.
	// ..#..
	// .#...
	// #....
	// #####
	'Z': {{{L, T}, {R, T}, {R, PT}, {L, UB}, {L, B}, {R, B}}},

	// ===== DIGITS =====

	// .###.
	// #...#
	// #..##
	// #.#.#
	// ##..#
	// #...#
	// .###.
	'0': {{{LC, T}, {RC, T}, {R, PT}, {R, UB}, {RC, B}, {LC, B}, {L, UB}, {L, PT}, {LC, T}}, {{L, UB}, {R, PT}}},
	'1': {{{LC, PT}, {C, T}, {C, B}}, {{LC, B}, {RC, B}}},
	'2': {{{L, PT}, {LC, T}, {RC, T}, {R, PT}, {R, UM}, {L, UB}, {L, B}, {R, B}}},
	'3': {{{L, PT}, {LC, T}, {RC, T}, {R, PT}, {R, UM}, {RC, M}, {R, PM}, {R, UB}, {RC, B}, {LC, B}, {L, UB}}, {{C, M}, {RC, M}}},
	'4': {{{RC, B}, {RC, T}, {L, PM}, {R, PM}}},
	'5': {{{R, T}, {L, T}, {L, M}, {RC, M}, {R, PM}, {R, UB}, {RC, B}, {LC, B}, {L, UB}}},
	'6': {{{RC, T}, {LC, T}, {L, PT}, {L, UB}, {LC, B}, {RC, B}, {R, UB}, {R, PM}, {RC, M}, {L, M}}},
	'7': {{{L, T}, {R, T}, {R, PT}, {C, PM}, {C, B}}},
	'8': {
		{{LC, T}, {RC, T}, {R, PT}, {R, UM}, {RC, M}, {LC, M}, {L, UM}, {L, PT}, {LC, T}},
		{{RC, M}, {R, PM}, {R, UB}, {RC, B}, {LC, B}, {L, UB}, {L, PM}, {LC, M}},
	},
	'9': {{{R, M}, {LC, M}, {L, UM}, {L, PT}, {LC, T}, {RC, T}, {R, PT}, {R, UB}, {RC, B}, {LC, B}}},
}
