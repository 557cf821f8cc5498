// Package core defines the value types shared by every chargen package:
// the glyph Configuration, the Character pixel matrix and the ordered
// CharacterSet, plus the sentinel error taxonomy.
//
// What:
//
//   - Config: immutable {width, height, bit direction, padding direction}.
//     BytesPerRow = ceil(width/8); BytesPerGlyph = BytesPerRow*height.
//   - Character: height×width booleans, row-major, shape fixed at creation.
//   - CharacterSet: Config + ordered []*Character (order = ROM glyph index).
//
// Why:
//
//   - Character-generator ROMs of vintage machines store fixed-size
//     monochrome glyphs back to back; the same pixels can be laid out MSB-first
//     or LSB-first, with the unused bits of a row padded on either side.
//     Keeping the pixels in a plain matrix separates "what the glyph looks
//     like" from "how a particular ROM stores it".
//
// Errors:
//
//   - ErrInvalidConfiguration: zero/negative dimension or unknown direction.
//   - ErrMalformedInput:       byte length not a multiple of the glyph size.
//   - ErrShapeMismatch:        a Character disagrees with its stated shape.
//   - ErrOutOfRange:           row/column/glyph index outside bounds.
//   - ErrNilCharacter:         nil *Character where a glyph is required.
//
// Sequence operations wrap the failing element's position in *IndexError,
// which unwraps to the sentinel.
//
// Concurrency:
//
//	Values are not synchronized. Config is immutable and safe to share.
//	Characters returned by chargen functions are always fresh; treat a
//	Character as owned by whoever holds it and Clone before sharing.
package core
