// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/chargen/core"
)

// GlyphCount returns how many whole glyphs a buffer of n bytes holds.
// Returns ErrMalformedInput when n is not a multiple of BytesPerGlyph.
func GlyphCount(n int, cfg core.Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, codecErrorf("GlyphCount", err)
	}
	stride := cfg.BytesPerGlyph()
	if n < 0 || n%stride != 0 {
		return 0, fmt.Errorf("codec.GlyphCount: %d bytes is not a multiple of %d: %w", n, stride, core.ErrMalformedInput)
	}

	return n / stride, nil
}

// TrimPartial returns the prefix of data that holds whole glyphs and the
// number of trailing bytes cut off. Decode never truncates on its own;
// callers that accept a damaged dump opt in by pre-slicing with this.
func TrimPartial(data []byte, cfg core.Config) (whole []byte, dropped int, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, 0, codecErrorf("TrimPartial", err)
	}
	dropped = len(data) % cfg.BytesPerGlyph()

	return data[:len(data)-dropped], dropped, nil
}

// Decode converts a ROM image into glyphs.
//
// Implementation:
//   - Stage 1: build the Layout (validates cfg).
//   - Stage 2: reject buffers whose length is not a multiple of
//     BytesPerGlyph, including a non-empty buffer shorter than one glyph.
//   - Stage 3: unpack each glyph slot independently.
//
// An empty buffer decodes to zero glyphs.
// Complexity: O(len(data)*8) time, O(glyphs*w*h) memory.
func Decode(data []byte, cfg core.Config) ([]*core.Character, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}

	return layout.Decode(data)
}

// Decode is the Layout-bound form of Decode, for callers decoding many
// buffers under one Configuration.
func (l *Layout) Decode(data []byte) ([]*core.Character, error) {
	n, err := GlyphCount(len(data), l.cfg)
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}
	stride := l.cfg.BytesPerGlyph()
	out := make([]*core.Character, n)
	for i := 0; i < n; i++ {
		ch, err := l.decodeGlyph(data[i*stride : (i+1)*stride])
		if err != nil {
			return nil, codecErrorf("Decode", core.AtIndex(i, err))
		}
		out[i] = ch
	}

	return out, nil
}

// DecodeGlyph decodes only glyph slot index from a full ROM image.
func DecodeGlyph(data []byte, index int, cfg core.Config) (*core.Character, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, codecErrorf("DecodeGlyph", err)
	}
	n, err := GlyphCount(len(data), cfg)
	if err != nil {
		return nil, codecErrorf("DecodeGlyph", err)
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("codec.DecodeGlyph(%d): %w", index, core.ErrOutOfRange)
	}
	stride := cfg.BytesPerGlyph()

	ch, err := layout.decodeGlyph(data[index*stride : (index+1)*stride])
	if err != nil {
		return nil, codecErrorf("DecodeGlyph", err)
	}

	return ch, nil
}

// DecodeSet decodes data into a CharacterSet carrying cfg.
func DecodeSet(data []byte, cfg core.Config) (*core.CharacterSet, error) {
	chars, err := Decode(data, cfg)
	if err != nil {
		return nil, err
	}

	return &core.CharacterSet{Config: cfg, Characters: chars}, nil
}

// Encode packs glyphs into a ROM image of exactly len(chars)*BytesPerGlyph
// bytes. Padding bits are always zero.
//
// Errors:
//   - ErrInvalidConfiguration for an invalid cfg.
//   - *core.IndexError wrapping ErrNilCharacter or ErrShapeMismatch for the
//     first glyph that does not fit cfg.
//
// Complexity: O(glyphs*w*h).
func Encode(chars []*core.Character, cfg core.Config) ([]byte, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return nil, codecErrorf("Encode", err)
	}

	return layout.Encode(chars)
}

// Encode is the Layout-bound form of Encode.
func (l *Layout) Encode(chars []*core.Character) ([]byte, error) {
	for i, ch := range chars {
		if err := ch.Validate(); err != nil {
			return nil, codecErrorf("Encode", core.AtIndex(i, err))
		}
		if !l.cfg.Fits(ch) {
			return nil, codecErrorf("Encode", core.AtIndex(i,
				fmt.Errorf("%dx%d glyph for %v: %w", ch.Width(), ch.Height(), l.cfg, core.ErrShapeMismatch)))
		}
	}
	stride := l.cfg.BytesPerGlyph()
	out := make([]byte, len(chars)*stride)
	for i, ch := range chars {
		l.encodeGlyph(out[i*stride:(i+1)*stride], ch)
	}

	return out, nil
}

// EncodeSet encodes a CharacterSet under its own Configuration.
func EncodeSet(set *core.CharacterSet) ([]byte, error) {
	if set == nil {
		return nil, codecErrorf("EncodeSet", core.ErrNilCharacter)
	}

	return Encode(set.Characters, set.Config)
}

// Convert re-encodes a ROM image from one bit/padding convention to another.
// Glyph dimensions must match (ErrShapeMismatch otherwise); the conversion is
// decode-then-encode through the same Layout code, never a separate path.
func Convert(data []byte, from, to core.Config) ([]byte, error) {
	if err := from.Validate(); err != nil {
		return nil, codecErrorf("Convert", err)
	}
	if err := to.Validate(); err != nil {
		return nil, codecErrorf("Convert", err)
	}
	if !from.SameShape(to) {
		return nil, fmt.Errorf("codec.Convert: %v to %v: %w", from, to, core.ErrShapeMismatch)
	}
	chars, err := Decode(data, from)
	if err != nil {
		return nil, err
	}

	return Encode(chars, to)
}
