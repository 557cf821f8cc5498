// SPDX-License-Identifier: MIT
// Package: codec
//
// Purpose:
//   - Compute, once per Configuration, where every pixel column lives inside a
//     packed byte row: (byte index, bit mask).
//   - Be the single source of truth for both Decode and Encode, so the two
//     directions can never disagree on bit order or padding.
//
// Mapping:
//   - p = BytesPerRow*8 - Width padding bits, all in the last byte of a row.
//   - byte = c / 8; reading-order slot k = c % 8, plus p when c falls in the
//     last byte and padding is PaddingLeft.
//   - bit = 7 - k (LeftToRight) or k (RightToLeft).
//
// Complexity:
//   - NewLayout: O(Width). Position: O(1).

package codec

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// codecErrorf wraps an underlying error with the codec entry-point name.
func codecErrorf(op string, err error) error {
	return fmt.Errorf("codec.%s: %w", op, err)
}

// Layout is the precomputed column → (byte, bit) mapping for one Configuration.
// A Layout is immutable and safe for concurrent use.
type Layout struct {
	cfg       core.Config
	byteIndex []int  // byteIndex[c] = byte offset of column c within a row
	bitIndex  []int  // bitIndex[c] = physical bit (0 = LSB, 7 = MSB)
	mask      []byte // mask[c] = 1 << bitIndex[c]
}

// NewLayout validates cfg and precomputes its column mapping.
// Stage 1 (Validate): reject invalid configurations.
// Stage 2 (Prepare): allocate per-column tables.
// Stage 3 (Execute): fill tables using the padding offset and bit direction.
func NewLayout(cfg core.Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, codecErrorf("NewLayout", err)
	}
	w := cfg.Width()
	l := &Layout{
		cfg:       cfg,
		byteIndex: make([]int, w),
		bitIndex:  make([]int, w),
		mask:      make([]byte, w),
	}

	last, pad := cfg.BytesPerRow()-1, cfg.PaddingBits()
	for c := 0; c < w; c++ {
		byteIdx, k := c/8, c%8
		if byteIdx == last && cfg.PaddingDirection() == core.PaddingLeft {
			k += pad // pixels of the last byte start after the padding
		}
		bit := 7 - k
		if cfg.BitDirection() == core.RightToLeft {
			bit = k
		}
		l.byteIndex[c] = byteIdx
		l.bitIndex[c] = bit
		l.mask[c] = 1 << uint(bit)
	}

	return l, nil
}

// Config returns the Configuration this layout was built for.
func (l *Layout) Config() core.Config { return l.cfg }

// Position returns the byte offset within a row and the physical bit
// (0 = least significant) holding column col.
func (l *Layout) Position(col int) (byteIndex, bit int, err error) {
	if col < 0 || col >= len(l.byteIndex) {
		return 0, 0, fmt.Errorf("Layout.Position(%d): %w", col, core.ErrOutOfRange)
	}

	return l.byteIndex[col], l.bitIndex[col], nil
}

// PaddingMask returns, for each byte of a row, the bits that carry no pixel.
// Encode leaves these bits zero; Decode ignores them.
func (l *Layout) PaddingMask() []byte {
	used := make([]byte, l.cfg.BytesPerRow())
	for c := range l.mask {
		used[l.byteIndex[c]] |= l.mask[c]
	}
	for i := range used {
		used[i] = ^used[i]
	}

	return used
}

// decodeGlyph unpacks exactly BytesPerGlyph bytes into a new Character.
func (l *Layout) decodeGlyph(src []byte) (*core.Character, error) {
	w, h, stride := l.cfg.Width(), l.cfg.Height(), l.cfg.BytesPerRow()
	bits := make([]bool, w*h)
	for r := 0; r < h; r++ {
		row := src[r*stride : (r+1)*stride]
		base := r * w
		for c := 0; c < w; c++ {
			bits[base+c] = row[l.byteIndex[c]]&l.mask[c] != 0
		}
	}

	return core.CharacterFromBits(w, h, bits)
}

// encodeGlyph packs ch into dst (len BytesPerGlyph, zeroed by the caller).
func (l *Layout) encodeGlyph(dst []byte, ch *core.Character) {
	w, h, stride := l.cfg.Width(), l.cfg.Height(), l.cfg.BytesPerRow()
	bits := ch.Bits()
	for r := 0; r < h; r++ {
		row := dst[r*stride : (r+1)*stride]
		base := r * w
		for c := 0; c < w; c++ {
			if bits[base+c] {
				row[l.byteIndex[c]] |= l.mask[c]
			}
		}
	}
}
