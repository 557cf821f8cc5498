// Package codec converts between raw character-generator ROM images and
// glyph sequences.
//
// What:
//
//   - Decode / Encode:   []byte ⇄ []*core.Character under a core.Config.
//   - DecodeSet / EncodeSet: the same for *core.CharacterSet.
//   - Convert:           re-encode a ROM under another bit/padding convention.
//   - Layout:            the column → (byte, bit) table shared by both directions.
//
// Bit order:
//
//	LeftToRight: bit 7 of a byte is the leftmost pixel (MSB first).
//	RightToLeft: bit 0 of a byte is the leftmost pixel (LSB first).
//
// Padding (width not a multiple of 8) always occupies the last byte of each
// row. PaddingRight leaves the byte's pixels at the start of reading order,
// PaddingLeft shifts them past the padding. For 6 pixels in one byte:
//
//	LeftToRight + PaddingRight:  [p0 p1 p2 p3 p4 p5  0  0]   (bit 7 … bit 0)
//	LeftToRight + PaddingLeft:   [ 0  0 p0 p1 p2 p3 p4 p5]
//	RightToLeft + PaddingRight:  [ 0  0 p5 p4 p3 p2 p1 p0]
//	RightToLeft + PaddingLeft:   [p5 p4 p3 p2 p1 p0  0  0]
//
// Round-trip law:
//
//	Decode(Encode(cs, cfg), cfg) == cs for every glyph sequence shaped by cfg.
//
// Errors:
//
//   - core.ErrInvalidConfiguration: invalid cfg.
//   - core.ErrMalformedInput: len(data) is not a multiple of BytesPerGlyph
//     (a non-empty buffer shorter than one glyph included). Use TrimPartial to
//     opt in to dropping a trailing partial glyph.
//   - core.ErrShapeMismatch: an encoded glyph does not fit cfg, reported as a
//     *core.IndexError naming the first offending glyph.
//
// All functions are pure and safe for concurrent use.
package codec
