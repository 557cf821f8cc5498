// SPDX-License-Identifier: MIT

package importer

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/chargen/core"
)

// FromFont rasterizes runes from a TrueType font into Width×Height glyphs,
// one per rune, in the given order. Runes the font has no glyph for
// produce blank cells.
//
// Stage 1 (Validate): options, then parse the font.
// Stage 2 (Prepare): build a hinted face and locate the baseline.
// Stage 3 (Execute): draw each rune into an alpha mask and threshold it.
// Complexity: O(len(runes)×Width×Height) plus rasterization.
func FromFont(ttf []byte, runes []rune, opts FontOptions) (*core.CharacterSet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, importerErrorf("FromFont", fmt.Errorf("%w: %v", ErrBadFont, err))
	}
	cfg, err := core.NewConfig(opts.Width, opts.Height, opts.BitDirection, opts.PaddingDirection)
	if err != nil {
		return nil, importerErrorf("FromFont", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	baseline := fixed.I(opts.Baseline)
	if opts.Baseline == 0 {
		baseline = fixed.I(opts.Height) - fixed.I(face.Metrics().Descent.Ceil())
	}

	set := &core.CharacterSet{Config: cfg, Characters: make([]*core.Character, 0, len(runes))}
	bits := make([]bool, opts.Width*opts.Height)
	for _, r := range runes {
		mask := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
		if f.Index(r) != 0 {
			d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
			x := fixed.Int26_6(0)
			if opts.Center {
				adv, _ := face.GlyphAdvance(r)
				x = (fixed.I(opts.Width) - adv) / 2
			}
			d.Dot = fixed.Point26_6{X: x, Y: baseline}
			d.DrawString(string(r))
		}
		for y := 0; y < opts.Height; y++ {
			for x := 0; x < opts.Width; x++ {
				bits[y*opts.Width+x] = mask.AlphaAt(x, y).A >= opts.Threshold
			}
		}
		ch, err := core.CharacterFromBits(opts.Width, opts.Height, bits)
		if err != nil {
			return nil, importerErrorf("FromFont", err)
		}
		set.Characters = append(set.Characters, ch)
	}

	return set, nil
}
