// SPDX-License-Identifier: MIT

// Package transform applies pure geometric and pixel operations to glyphs.
//
// What:
//
//   - Rotation:  RotateCW, RotateCCW, Rotate180 (width and height swap for quarter turns).
//   - Mirrors:   FlipHorizontal, FlipVertical.
//   - Movement:  Shift (toroidal wrap, negative offsets allowed).
//   - Painting:  Invert, Clear, Fill, FloodFill (Conn4 or Conn8 regions).
//   - Reshaping: Resize (crop or pad around one of nine anchors) and Scale
//     (NearestNeighbor or BoxSampling resampling).
//   - Batches:   ApplyAll, ApplyAt, ReadPixel, ReadGrid, PaintPixel operate on a
//     selection of glyphs that share one pixel grid.
//
// Contract:
//
//   - Every function returns a new *core.Character; inputs are never mutated.
//   - Rotate180 == RotateCW∘RotateCW; four RotateCW are the identity.
//   - FlipHorizontal and FlipVertical are involutions.
//   - Shift(c, W, 0) and Shift(c, 0, H) are the identity.
//   - Resize(Resize(c, W+a, H+b, k), W, H, k) == c for any anchor k.
//   - Rotation and flips do not commute in general.
//
// Complexity:
//
//   - Every single-glyph operation: O(W×H) time and memory.
//   - Scale with BoxSampling: O(outW×outH×⌈inW/outW⌉×⌈inH/outH⌉).
//   - Batch helpers: O(n×W×H) for n glyphs.
//
// Errors:
//
//   - core.ErrNilCharacter / core.ErrShapeMismatch: the input glyph is nil or corrupt.
//   - core.ErrInvalidConfiguration: a requested size is below 1, or an
//     unknown Anchor, ScaleAlgorithm or Connectivity was given.
//   - core.ErrOutOfRange: a pixel coordinate lies outside the glyph.
//   - ErrEmptySelection: a batch helper got no glyphs.
//   - ErrUnknownTransform: Lookup got a name it does not know.
//
// Batch failures are reported as *core.IndexError naming the first failing glyph.
package transform
