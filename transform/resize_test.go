package transform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chargen/core"
	"github.com/katalvlaran/chargen/transform"
	"github.com/stretchr/testify/require"
)

var allAnchors = []transform.Anchor{
	transform.TopLeft, transform.TopCenter, transform.TopRight,
	transform.MiddleLeft, transform.Center, transform.MiddleRight,
	transform.BottomLeft, transform.BottomCenter, transform.BottomRight,
}

// TestResizeGrow places a 2×2 glyph inside a 4×4 canvas per anchor.
func TestResizeGrow(t *testing.T) {
	c := glyph(t, "##\n#.")
	cases := []struct {
		anchor transform.Anchor
		want   string
	}{
		{transform.TopLeft, "##..\n#...\n....\n...."},
		{transform.Center, "....\n.##.\n.#..\n...."},
		{transform.BottomRight, "....\n....\n..##\n..#."},
		{transform.TopCenter, ".##.\n.#..\n....\n...."},
		{transform.MiddleRight, "....\n..##\n..#.\n...."},
	}
	for _, tc := range cases {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			out, err := transform.Resize(c, 4, 4, tc.anchor)
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}

// TestResizeShrinkCrops keeps the part of the glyph nearest the anchor.
func TestResizeShrinkCrops(t *testing.T) {
	c := glyph(t, "###\n#.#\n###")

	out, err := transform.Resize(c, 1, 1, transform.Center)
	require.NoError(t, err)
	require.Equal(t, ".", out.String())

	out, err = transform.Resize(c, 1, 1, transform.TopLeft)
	require.NoError(t, err)
	require.Equal(t, "#", out.String())

	out, err = transform.Resize(c, 2, 3, transform.MiddleRight)
	require.NoError(t, err)
	require.Equal(t, "##\n.#\n##", out.String())
}

// TestResizeRestores: growing then shrinking back with the same anchor is the identity.
func TestResizeRestores(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, anchor := range allAnchors {
		for a := 0; a <= 3; a++ {
			for b := 0; b <= 3; b++ {
				c := randomGlyph(t, rng, 5, 7)
				big, err := transform.Resize(c, 5+a, 7+b, anchor)
				require.NoError(t, err)
				require.Equal(t, c.Count(), big.Count(), "%v +%d+%d", anchor, a, b)

				back, err := transform.Resize(big, 5, 7, anchor)
				require.NoError(t, err)
				require.True(t, c.Equal(back), "%v +%d+%d", anchor, a, b)
			}
		}
	}
}

// TestResizeInvalid rejects empty targets and unknown anchors.
func TestResizeInvalid(t *testing.T) {
	c := glyph(t, "#")
	_, err := transform.Resize(c, 0, 3, transform.Center)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = transform.Resize(c, 3, -1, transform.Center)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = transform.Resize(c, 3, 3, transform.Anchor(42))
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

// TestScaleNearest doubles and halves a diagonal.
func TestScaleNearest(t *testing.T) {
	c := glyph(t, "#.\n.#")
	up, err := transform.Scale(c, 4, 4, transform.NearestNeighbor)
	require.NoError(t, err)
	require.Equal(t, "##..\n##..\n..##\n..##", up.String())

	down, err := transform.Scale(up, 2, 2, transform.NearestNeighbor)
	require.NoError(t, err)
	require.True(t, c.Equal(down))

	// 1×1 samples the top-left source pixel
	one, err := transform.Scale(glyph(t, "#.\n.."), 1, 1, transform.NearestNeighbor)
	require.NoError(t, err)
	require.Equal(t, "#", one.String())
}

// TestScaleBox checks the half-coverage rule.
func TestScaleBox(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#.\n.#", "#"}, // exactly 50%
		{"#.\n..", "."}, // 25%
		{"##\n#.", "#"}, // 75%
	}
	for _, tc := range cases {
		out, err := transform.Scale(glyph(t, tc.in), 1, 1, transform.BoxSampling)
		require.NoError(t, err)
		require.Equal(t, tc.want, out.String(), tc.in)
	}

	// 3 → 2 columns: the middle source column is split between both outputs
	out, err := transform.Scale(glyph(t, ".#."), 2, 1, transform.BoxSampling)
	require.NoError(t, err)
	require.Equal(t, "..", out.String())
	out, err = transform.Scale(glyph(t, "##."), 2, 1, transform.BoxSampling)
	require.NoError(t, err)
	require.Equal(t, "#.", out.String())
}

// TestScaleBoxMatchesNearestOnIntegerUpscale: integer factors need no averaging.
func TestScaleBoxMatchesNearestOnIntegerUpscale(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, k := range []int{1, 2, 3} {
		c := randomGlyph(t, rng, 5, 7)
		nn, err := transform.Scale(c, 5*k, 7*k, transform.NearestNeighbor)
		require.NoError(t, err)
		box, err := transform.Scale(c, 5*k, 7*k, transform.BoxSampling)
		require.NoError(t, err)
		require.True(t, nn.Equal(box), "factor %d", k)
	}
}

// TestScaleInvalid rejects empty targets and unknown algorithms.
func TestScaleInvalid(t *testing.T) {
	c := glyph(t, "#")
	_, err := transform.Scale(c, 0, 1, transform.NearestNeighbor)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = transform.Scale(c, 1, 1, transform.ScaleAlgorithm(9))
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

// TestParseEnums round-trips anchor and algorithm names.
func TestParseEnums(t *testing.T) {
	for _, a := range allAnchors {
		got, err := transform.ParseAnchor(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	got, err := transform.ParseAnchor(" Bottom-Right ")
	require.NoError(t, err)
	require.Equal(t, transform.BottomRight, got)
	_, err = transform.ParseAnchor("middle")
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)

	alg, err := transform.ParseScaleAlgorithm("box")
	require.NoError(t, err)
	require.Equal(t, transform.BoxSampling, alg)
	alg, err = transform.ParseScaleAlgorithm("NN")
	require.NoError(t, err)
	require.Equal(t, transform.NearestNeighbor, alg)
	_, err = transform.ParseScaleAlgorithm("bicubic")
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)

	require.Equal(t, "Anchor(42)", transform.Anchor(42).String())
	require.Equal(t, "nearest", transform.NearestNeighbor.String())
}
