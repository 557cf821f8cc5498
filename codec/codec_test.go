package codec_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chargen/codec"
	"github.com/katalvlaran/chargen/core"
	"github.com/stretchr/testify/require"
)

// randomGlyphs builds n deterministic pseudo-random glyphs shaped by cfg.
func randomGlyphs(t testing.TB, rng *rand.Rand, cfg core.Config, n int) []*core.Character {
	t.Helper()
	out := make([]*core.Character, n)
	for i := range out {
		bits := make([]bool, cfg.Width()*cfg.Height())
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		ch, err := core.CharacterFromBits(cfg.Width(), cfg.Height(), bits)
		require.NoError(t, err)
		out[i] = ch
	}

	return out
}

// TestDecodeScenarioMSBFirst: 8×8, LeftToRight, PaddingRight; the row byte
// 0b10110000 yields pixels [1,0,1,1,0,0,0,0].
func TestDecodeScenarioMSBFirst(t *testing.T) {
	cfg := mustConfig(t, 8, 8, core.LeftToRight, core.PaddingRight)
	data := make([]byte, 8)
	data[0] = 0b10110000

	chars, err := codec.Decode(data, cfg)
	require.NoError(t, err)
	require.Len(t, chars, 1)
	require.Equal(t, []bool{true, false, true, true, false, false, false, false}, chars[0].Rows()[0])
	require.Equal(t, 3, chars[0].Count())
}

// TestEncodeAllOn: a full 8×8 glyph encodes to eight 0xFF bytes.
func TestEncodeAllOn(t *testing.T) {
	cfg := mustConfig(t, 8, 8, core.LeftToRight, core.PaddingRight)
	bits := make([]bool, 64)
	for i := range bits {
		bits[i] = true
	}
	ch, err := core.CharacterFromBits(8, 8, bits)
	require.NoError(t, err)

	data, err := codec.Encode([]*core.Character{ch}, cfg)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, data)
}

// TestDecodeRightToLeft reads bit 0 as the leftmost pixel.
func TestDecodeRightToLeft(t *testing.T) {
	cfg := mustConfig(t, 8, 1, core.RightToLeft, core.PaddingRight)
	chars, err := codec.Decode([]byte{0b10110000}, cfg)
	require.NoError(t, err)
	require.Equal(t, "....##.#", chars[0].String())
}

// TestEncodePaddingIsZero packs a full 5-pixel row and checks the unused bits.
func TestEncodePaddingIsZero(t *testing.T) {
	full, err := core.ParseCharacter("#####")
	require.NoError(t, err)

	cases := []struct {
		bit  core.BitDirection
		pad  core.PaddingDirection
		want byte
	}{
		{core.LeftToRight, core.PaddingRight, 0b11111000},
		{core.LeftToRight, core.PaddingLeft, 0b00011111},
		{core.RightToLeft, core.PaddingRight, 0b00011111},
		{core.RightToLeft, core.PaddingLeft, 0b11111000},
	}
	for _, tc := range cases {
		data, err := codec.Encode([]*core.Character{full}, mustConfig(t, 5, 1, tc.bit, tc.pad))
		require.NoError(t, err)
		require.Equal(t, []byte{tc.want}, data, "%v/%v", tc.bit, tc.pad)
	}
}

// TestDecodeIgnoresPaddingBits: garbage in padding positions never reaches pixels.
func TestDecodeIgnoresPaddingBits(t *testing.T) {
	cfg := mustConfig(t, 5, 1, core.LeftToRight, core.PaddingRight)
	chars, err := codec.Decode([]byte{0b10100111}, cfg)
	require.NoError(t, err)
	require.Equal(t, "#.#..", chars[0].String())

	back, err := codec.Encode(chars, cfg)
	require.NoError(t, err)
	require.Equal(t, []byte{0b10100000}, back) // padding cleared on re-encode
}

// TestRoundTrip checks Decode(Encode(cs)) == cs for every convention and a
// range of widths, including multi-byte padded rows.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, bit := range allBits {
		for _, pad := range allPaddings {
			for _, w := range []int{1, 3, 5, 7, 8, 9, 12, 15, 16, 17} {
				cfg := mustConfig(t, w, 1+w%5+3, bit, pad)
				chars := randomGlyphs(t, rng, cfg, 4)

				data, err := codec.Encode(chars, cfg)
				require.NoError(t, err)
				require.Len(t, data, 4*cfg.BytesPerGlyph())

				back, err := codec.Decode(data, cfg)
				require.NoError(t, err)
				require.Len(t, back, len(chars))
				for i := range chars {
					require.True(t, chars[i].Equal(back[i]), "%v glyph %d", cfg, i)
				}
			}
		}
	}
}

// TestDecodeMalformed covers lengths that are not a multiple of the glyph size.
func TestDecodeMalformed(t *testing.T) {
	cfg := mustConfig(t, 8, 8, core.LeftToRight, core.PaddingRight)

	_, err := codec.Decode(make([]byte, 7), cfg) // shorter than one glyph
	require.ErrorIs(t, err, core.ErrMalformedInput)
	_, err = codec.Decode(make([]byte, 17), cfg)
	require.ErrorIs(t, err, core.ErrMalformedInput)

	chars, err := codec.Decode(nil, cfg) // empty buffer = zero glyphs
	require.NoError(t, err)
	require.Empty(t, chars)

	_, err = codec.Decode(make([]byte, 8), core.Config{})
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

// TestTrimPartial drops only the trailing partial glyph.
func TestTrimPartial(t *testing.T) {
	cfg := mustConfig(t, 8, 8, core.LeftToRight, core.PaddingRight)
	whole, dropped, err := codec.TrimPartial(make([]byte, 21), cfg)
	require.NoError(t, err)
	require.Len(t, whole, 16)
	require.Equal(t, 5, dropped)

	n, err := codec.GlyphCount(len(whole), cfg)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestEncodeShapeMismatchReportsIndex ensures the first bad glyph is named.
func TestEncodeShapeMismatchReportsIndex(t *testing.T) {
	cfg := mustConfig(t, 4, 2, core.LeftToRight, core.PaddingRight)
	good, _ := core.NewCharacter(4, 2)
	bad, _ := core.NewCharacter(3, 2)

	_, err := codec.Encode([]*core.Character{good, good, bad, bad}, cfg)
	require.ErrorIs(t, err, core.ErrShapeMismatch)
	var ie *core.IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 2, ie.Index)

	_, err = codec.Encode([]*core.Character{good, nil}, cfg)
	require.ErrorIs(t, err, core.ErrNilCharacter)
}

// TestConvert re-encodes MSB-first data as LSB-first and back.
func TestConvert(t *testing.T) {
	from := mustConfig(t, 8, 2, core.LeftToRight, core.PaddingRight)
	to := mustConfig(t, 8, 2, core.RightToLeft, core.PaddingRight)

	out, err := codec.Convert([]byte{0b10110000, 0x01}, from, to)
	require.NoError(t, err)
	require.Equal(t, []byte{0b00001101, 0x80}, out)

	back, err := codec.Convert(out, to, from)
	require.NoError(t, err)
	require.Equal(t, []byte{0b10110000, 0x01}, back)

	// padding change on a 6-pixel glyph moves the pixels inside the byte
	six := mustConfig(t, 6, 1, core.LeftToRight, core.PaddingRight)
	sixLeft, err := six.WithPaddingDirection(core.PaddingLeft)
	require.NoError(t, err)
	out, err = codec.Convert([]byte{0b10000100}, six, sixLeft)
	require.NoError(t, err)
	require.Equal(t, []byte{0b00100001}, out)

	other := mustConfig(t, 7, 2, core.LeftToRight, core.PaddingRight)
	_, err = codec.Convert([]byte{0, 0}, from, other)
	require.ErrorIs(t, err, core.ErrShapeMismatch)
	_, err = codec.Convert([]byte{0, 0, 0}, from, to)
	require.ErrorIs(t, err, core.ErrMalformedInput)
}

// TestDecodeGlyph reads one slot without decoding the whole image.
func TestDecodeGlyph(t *testing.T) {
	cfg := mustConfig(t, 8, 1, core.LeftToRight, core.PaddingRight)
	data := []byte{0x00, 0xF0, 0x0F}

	ch, err := codec.DecodeGlyph(data, 1, cfg)
	require.NoError(t, err)
	require.Equal(t, "####....", ch.String())

	_, err = codec.DecodeGlyph(data, 3, cfg)
	require.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = codec.DecodeGlyph(data[:2], -1, mustConfig(t, 8, 3, core.LeftToRight, core.PaddingRight))
	require.ErrorIs(t, err, core.ErrMalformedInput)
}

// TestSetRoundTrip goes through DecodeSet and EncodeSet.
func TestSetRoundTrip(t *testing.T) {
	cfg := mustConfig(t, 12, 3, core.RightToLeft, core.PaddingLeft)
	data := []byte{0xA5, 0x05, 0xFF, 0x0F, 0x00, 0x00}

	set, err := codec.DecodeSet(data, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	require.NoError(t, set.Validate())

	back, err := codec.EncodeSet(set)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA5, 0x00, 0xFF, 0x00, 0x00, 0x00}, back) // low nibble of byte 1 is padding
	_, err = codec.EncodeSet(nil)
	require.Error(t, err)
}
