package importer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/chargen/core"
	"github.com/katalvlaran/chargen/importer"
)

// monoOptions renders Go Mono at 16 px into 16×16 cells.
func monoOptions() importer.FontOptions {
	opts := importer.DefaultFontOptions()
	opts.Size = 16
	opts.Width, opts.Height = 16, 16

	return opts
}

// litRows returns the first and last row holding a lit pixel, or -1, -1.
func litRows(c *core.Character) (first, last int) {
	first, last = -1, -1
	for r, row := range c.Rows() {
		for _, on := range row {
			if on {
				if first < 0 {
					first = r
				}
				last = r
				break
			}
		}
	}

	return first, last
}

func TestFromFont(t *testing.T) {
	runes := []rune{'A', ' ', '.', '\U0001F600'}
	set, err := importer.FromFont(gomono.TTF, runes, monoOptions())
	require.NoError(t, err)
	require.Equal(t, len(runes), set.Len())
	require.NoError(t, set.Validate())
	require.Equal(t, 16, set.Config.Width())
	require.Equal(t, 16, set.Config.Height())

	require.Positive(t, set.Characters[0].Count(), "A has ink")
	require.Zero(t, set.Characters[1].Count(), "space is blank")
	require.Zero(t, set.Characters[3].Count(), "missing glyph is blank")

	// a capital reaches the upper part of the cell, a period sits low
	aTop, _ := litRows(set.Characters[0])
	require.GreaterOrEqual(t, aTop, 0)
	require.Less(t, aTop, 6)

	dotTop, dotBottom := litRows(set.Characters[2])
	require.Greater(t, dotTop, 6)
	require.Less(t, dotBottom, 16)
}

// TestFromFontBaseline moves glyphs with an explicit baseline.
func TestFromFontBaseline(t *testing.T) {
	opts := monoOptions()
	low, err := importer.FromFont(gomono.TTF, []rune{'A'}, opts)
	require.NoError(t, err)

	opts.Baseline = 8
	high, err := importer.FromFont(gomono.TTF, []rune{'A'}, opts)
	require.NoError(t, err)

	_, lowBottom := litRows(low.Characters[0])
	_, highBottom := litRows(high.Characters[0])
	require.Less(t, highBottom, lowBottom)
	require.Less(t, highBottom, 8)
}

func TestFromFontErrors(t *testing.T) {
	_, err := importer.FromFont([]byte("not a font"), []rune{'A'}, monoOptions())
	require.ErrorIs(t, err, importer.ErrBadFont)

	opts := monoOptions()
	opts.Baseline = 17
	_, err = importer.FromFont(gomono.TTF, []rune{'A'}, opts)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)

	opts = monoOptions()
	opts.Size = 0
	require.ErrorIs(t, opts.Validate(), core.ErrInvalidConfiguration)
	opts = monoOptions()
	opts.Threshold = 0
	require.ErrorIs(t, opts.Validate(), core.ErrInvalidConfiguration)
}
