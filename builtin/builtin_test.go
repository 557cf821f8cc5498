package builtin_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/chargen/builtin"
	"github.com/katalvlaran/chargen/codec"
	"github.com/katalvlaran/chargen/core"
	"github.com/stretchr/testify/require"
)

// rows joins bitmap lines the way Character.String renders them.
func rows(lines ...string) string { return strings.Join(lines, "\n") }

// TestGlyphBitmaps pins a few rasterized skeletons.
func TestGlyphBitmaps(t *testing.T) {
	cases := map[rune]string{
		'A': rows(".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"),
		'K': rows("#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"),
		'R': rows("####.", "#...#", "#...#", "####.", "#..#.", "#..#.", "#...#"),
		'Z': rows("#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"),
		'0': rows(".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."),
		'4': rows("...#.", "..##.", ".#.#.", ".#.#.", "#####", "...#.", "...#."),
	}
	for r, want := range cases {
		t.Run(string(r), func(t *testing.T) {
			g, err := builtin.Glyph(r)
			require.NoError(t, err)
			require.Equal(t, want, g.String())
		})
	}
}

// TestSetIsComplete: 36 distinct, non-blank 5×7 glyphs in A–Z, 0–9 order.
func TestSetIsComplete(t *testing.T) {
	set := builtin.Letters5x7()
	require.NoError(t, set.Validate())
	require.Equal(t, 36, set.Len())
	require.Equal(t, "5x7 ltr/right", set.Config.String())

	runes := builtin.Runes()
	require.Equal(t, 'A', runes[0])
	require.Equal(t, '9', runes[len(runes)-1])
	require.Len(t, runes, set.Len())

	seen := make(map[string]rune, set.Len())
	for i, ch := range set.Characters {
		require.Positive(t, ch.Count(), "%q is blank", runes[i])
		key := ch.String()
		prev, dup := seen[key]
		require.False(t, dup, "%q duplicates %q", runes[i], prev)
		seen[key] = runes[i]
	}
}

// TestGlyphIsACopy: callers cannot corrupt the shared table.
func TestGlyphIsACopy(t *testing.T) {
	g, err := builtin.Glyph('H')
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 2, true))

	again, err := builtin.Glyph('H')
	require.NoError(t, err)
	on, err := again.At(0, 2)
	require.NoError(t, err)
	require.False(t, on)

	set := builtin.Letters5x7()
	set.Characters[0] = nil
	require.NoError(t, builtin.Letters5x7().Validate())

	_, err = builtin.Glyph('a')
	require.ErrorIs(t, err, builtin.ErrNoGlyph)
}

// TestEncodes: the set encodes to one byte per row, MSB first.
func TestEncodes(t *testing.T) {
	set := builtin.Letters5x7()
	data, err := codec.EncodeSet(set)
	require.NoError(t, err)
	require.Len(t, data, 36*7)
	// 'A' rows: .###. #...# #...# ##### ...
	require.Equal(t, []byte{0x70, 0x88, 0x88, 0xF8, 0x88, 0x88, 0x88}, data[:7])

	back, err := codec.DecodeSet(data, set.Config)
	require.NoError(t, err)
	require.True(t, set.Equal(back))

	rtl, err := set.Config.WithBitDirection(core.RightToLeft)
	require.NoError(t, err)
	flipped, err := codec.Convert(data[:7], set.Config, rtl)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, flipped)
}
