// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/chargen/builtin"
	"github.com/katalvlaran/chargen/codec"
	"github.com/katalvlaran/chargen/core"
	"github.com/katalvlaran/chargen/importer"
	"github.com/katalvlaran/chargen/transform"
)

// runInfo prints the layout and glyph count of a ROM.
func runInfo(e *env, args []string) error {
	var (
		lf   layoutFlags
		in   string
		trim bool
	)
	fs := newFlagSet(e, "info")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (- for stdin)")
	fs.BoolVar(&trim, "trim", false, "ignore a trailing partial glyph")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	set, err := e.loadSet(in, cfg, trim)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "layout:     %s\n", cfg)
	fmt.Fprintf(e.stdout, "row bytes:  %d (%d padding bits)\n", cfg.BytesPerRow(), cfg.PaddingBits())
	fmt.Fprintf(e.stdout, "glyph size: %d bytes\n", cfg.BytesPerGlyph())
	fmt.Fprintf(e.stdout, "glyphs:     %d\n", set.Len())

	return nil
}

// runConvert re-encodes a ROM under another bit order and/or padding side.
func runConvert(e *env, args []string) error {
	var (
		lf           layoutFlags
		in, out      string
		toBit, toPad string
	)
	fs := newFlagSet(e, "convert")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (- for stdin)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.StringVar(&toBit, "to-bit", "", "target bit order (default: unchanged)")
	fs.StringVar(&toPad, "to-pad", "", "target padding side (default: unchanged)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	from, err := lf.config()
	if err != nil {
		return err
	}
	to := from
	if toBit != "" {
		bit, err := core.ParseBitDirection(toBit)
		if err != nil {
			return err
		}
		if to, err = to.WithBitDirection(bit); err != nil {
			return err
		}
	}
	if toPad != "" {
		pad, err := core.ParsePaddingDirection(toPad)
		if err != nil {
			return err
		}
		if to, err = to.WithPaddingDirection(pad); err != nil {
			return err
		}
	}

	data, err := e.readInput(in)
	if err != nil {
		return err
	}
	converted, err := codec.Convert(data, from, to)
	if err != nil {
		return err
	}

	return e.writeOutput(out, converted)
}

// runTransform applies one transform to a glyph selection and re-encodes.
func runTransform(e *env, args []string) error {
	var (
		lf             layoutFlags
		in, out, sel   string
		op, shift      string
		resize, anchor string
		scale, alg     string
	)
	fs := newFlagSet(e, "transform")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (- for stdin)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.StringVar(&sel, "glyphs", "", "glyph selection, e.g. 0,3,5-7 (default: all)")
	fs.StringVar(&op, "op", "", "named transform: "+strings.Join(transform.Names(), ", "))
	fs.StringVar(&shift, "shift", "", "cyclic shift dx,dy")
	fs.StringVar(&resize, "resize", "", "resize canvas to WxH")
	fs.StringVar(&anchor, "anchor", "center", "resize anchor")
	fs.StringVar(&scale, "scale", "", "scale content to WxH")
	fs.StringVar(&alg, "alg", "nearest", "scale algorithm: nearest or box")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fn, err := pickTransform(op, shift, resize, anchor, scale, alg)
	if err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	set, err := e.loadSet(in, cfg, false)
	if err != nil {
		return err
	}
	indices, err := parseSelection(sel, set.Len())
	if err != nil {
		return err
	}

	chars, err := transform.ApplyAt(set.Characters, indices, fn)
	if err != nil {
		return err
	}
	outSet, err := reshape(cfg, chars)
	if err != nil {
		return err
	}
	data, err := codec.EncodeSet(outSet)
	if err != nil {
		return err
	}

	return e.writeOutput(out, data)
}

// pickTransform turns exactly one of the transform flags into a Func.
func pickTransform(op, shift, resize, anchor, scale, alg string) (transform.Func, error) {
	var (
		picked []transform.Func
		err    error
	)
	if op != "" {
		fn, err := transform.Lookup(op)
		if err != nil {
			return nil, err
		}
		picked = append(picked, fn)
	}
	if shift != "" {
		var dx, dy int
		if _, err = fmt.Sscanf(shift, "%d,%d", &dx, &dy); err != nil {
			return nil, fmt.Errorf("shift %q: want dx,dy: %w", shift, errUsage)
		}
		picked = append(picked, transform.ShiftBy(dx, dy))
	}
	if resize != "" {
		w, h, err := parseSize(resize)
		if err != nil {
			return nil, err
		}
		a, err := transform.ParseAnchor(anchor)
		if err != nil {
			return nil, err
		}
		picked = append(picked, transform.ResizeTo(w, h, a))
	}
	if scale != "" {
		w, h, err := parseSize(scale)
		if err != nil {
			return nil, err
		}
		a, err := transform.ParseScaleAlgorithm(alg)
		if err != nil {
			return nil, err
		}
		picked = append(picked, transform.ScaleTo(w, h, a))
	}
	if len(picked) != 1 {
		return nil, fmt.Errorf("want exactly one of -op, -shift, -resize, -scale: %w", errUsage)
	}

	return picked[0], nil
}

// reshape wraps transformed glyphs into a set. A transform that changes the
// glyph shape must have been applied to every glyph.
func reshape(cfg core.Config, chars []*core.Character) (*core.CharacterSet, error) {
	if len(chars) > 0 {
		w, h := chars[0].Width(), chars[0].Height()
		next, err := cfg.WithSize(w, h)
		if err != nil {
			return nil, err
		}
		cfg = next
	}
	set := &core.CharacterSet{Config: cfg, Characters: chars}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("mixed glyph sizes; select every glyph when changing shape: %w", err)
	}

	return set, nil
}

// parseSelection reads "0,3,5-7" into sorted unique indices below n.
// An empty selection means every glyph.
func parseSelection(s string, n int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		a, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", part, errUsage)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(hi); err != nil || b < a {
				return nil, fmt.Errorf("selection %q: %w", part, errUsage)
			}
		}
		if a < 0 || b >= n {
			return nil, fmt.Errorf("selection %q with %d glyphs: %w", part, n, core.ErrOutOfRange)
		}
		for i := a; i <= b; i++ {
			seen[i] = true
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)

	return out, nil
}

// runShow prints selected glyphs as '#'/'.' grids.
func runShow(e *env, args []string) error {
	var (
		lf      layoutFlags
		in, sel string
		grid    bool
	)
	fs := newFlagSet(e, "show")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (- for stdin)")
	fs.StringVar(&sel, "glyphs", "", "glyph selection, e.g. 0,3,5-7 (default: all)")
	fs.BoolVar(&grid, "merged", false, "print one merged grid: # all on, . all off, ? mixed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	set, err := e.loadSet(in, cfg, false)
	if err != nil {
		return err
	}
	indices, err := parseSelection(sel, set.Len())
	if err != nil {
		return err
	}

	if grid {
		chosen := make([]*core.Character, len(indices))
		for k, i := range indices {
			chosen[k] = set.Characters[i]
		}
		states, err := transform.ReadGrid(chosen)
		if err != nil {
			return err
		}
		for _, row := range states {
			line := make([]rune, len(row))
			for c, st := range row {
				line[c] = st.Rune()
			}
			fmt.Fprintln(e.stdout, string(line))
		}
		return nil
	}

	for k, i := range indices {
		if k > 0 {
			fmt.Fprintln(e.stdout)
		}
		fmt.Fprintf(e.stdout, "glyph %d\n%s\n", i, set.Characters[i])
	}

	return nil
}

// runExport writes a ROM as source text or JSON.
func runExport(e *env, args []string) error {
	var (
		lf             layoutFlags
		in, out, style string
		name           string
		perLine        int
	)
	fs := newFlagSet(e, "export")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (- for stdin)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.StringVar(&style, "style", "c", "output style: c, asm, hex or json")
	fs.StringVar(&name, "name", importer.DefaultArrayName, "array or label name")
	fs.IntVar(&perLine, "per-line", importer.DefaultPerLine, "bytes per line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	set, err := e.loadSet(in, cfg, false)
	if err != nil {
		return err
	}

	if style == "json" {
		doc, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}
		return e.writeOutput(out, append(doc, '\n'))
	}

	st, err := importer.ParseStyle(style)
	if err != nil {
		return err
	}
	data, err := codec.EncodeSet(set)
	if err != nil {
		return err
	}
	text, err := importer.FormatPaste(data, importer.FormatOptions{Style: st, Name: name, PerLine: perLine})
	if err != nil {
		return err
	}

	return e.writeOutput(out, []byte(text))
}

// runImportFont rasterizes runes from a TrueType font into a ROM.
func runImportFont(e *env, args []string) error {
	var (
		lf            layoutFlags
		fontPath, out string
		runes         string
		size, dpi     float64
		baseline      int
		threshold     uint
		left          bool
	)
	def := importer.DefaultFontOptions()
	fs := newFlagSet(e, "import-font")
	lf.register(fs)
	fs.StringVar(&fontPath, "font", "", "TrueType file (default: built-in Go Mono)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.StringVar(&runes, "runes", string(builtin.Runes()), "characters to rasterize, in ROM order")
	fs.Float64Var(&size, "size", def.Size, "em size in points")
	fs.Float64Var(&dpi, "dpi", def.DPI, "resolution")
	fs.IntVar(&baseline, "baseline", 0, "baseline row from the top (0: automatic)")
	fs.UintVar(&threshold, "threshold", uint(def.Threshold), "coverage (1-255) at which a pixel is on")
	fs.BoolVar(&left, "left", false, "start glyphs at x=0 instead of centering")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	if threshold > 255 {
		return fmt.Errorf("threshold %d: %w", threshold, core.ErrInvalidConfiguration)
	}

	ttf := gomono.TTF
	if fontPath != "" {
		if ttf, err = e.readInput(fontPath); err != nil {
			return err
		}
	}
	opts := importer.FontOptions{
		Size:             size,
		DPI:              dpi,
		Width:            cfg.Width(),
		Height:           cfg.Height(),
		Baseline:         baseline,
		Threshold:        uint8(threshold),
		Center:           !left,
		BitDirection:     cfg.BitDirection(),
		PaddingDirection: cfg.PaddingDirection(),
	}
	set, err := importer.FromFont(ttf, []rune(runes), opts)
	if err != nil {
		return err
	}
	data, err := codec.EncodeSet(set)
	if err != nil {
		return err
	}

	return e.writeOutput(out, data)
}

// runImportImage cuts a PNG or GIF sheet into glyph cells.
func runImportImage(e *env, args []string) error {
	var (
		lf         layoutFlags
		in, out    string
		cols, rows int
		offX, offY int
		gapX, gapY int
		threshold  uint
		invert     bool
	)
	fs := newFlagSet(e, "import-image")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "PNG or GIF sheet (- for stdin)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.IntVar(&cols, "cols", 0, "cells per row (0: fit the image)")
	fs.IntVar(&rows, "rows", 0, "cell rows (0: fit the image)")
	fs.IntVar(&offX, "offset-x", 0, "x of the first cell")
	fs.IntVar(&offY, "offset-y", 0, "y of the first cell")
	fs.IntVar(&gapX, "gap-x", 0, "horizontal gap between cells")
	fs.IntVar(&gapY, "gap-y", 0, "vertical gap between cells")
	fs.UintVar(&threshold, "threshold", importer.DefaultThreshold, "luminance (1-255) splitting ink from paper")
	fs.BoolVar(&invert, "invert", false, "light ink on dark paper")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	if threshold > 255 {
		return fmt.Errorf("threshold %d: %w", threshold, core.ErrInvalidConfiguration)
	}
	raw, err := e.readInput(in)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	set, err := importer.FromImage(img, importer.ImageGridOptions{
		CellWidth:        cfg.Width(),
		CellHeight:       cfg.Height(),
		Columns:          cols,
		Rows:             rows,
		OffsetX:          offX,
		OffsetY:          offY,
		GapX:             gapX,
		GapY:             gapY,
		Threshold:        uint8(threshold),
		InvertInk:        invert,
		BitDirection:     cfg.BitDirection(),
		PaddingDirection: cfg.PaddingDirection(),
	})
	if err != nil {
		return err
	}
	data, err := codec.EncodeSet(set)
	if err != nil {
		return err
	}

	return e.writeOutput(out, data)
}

// runImportPaste reads byte literals (C, assembler or hex dump text) into a ROM.
func runImportPaste(e *env, args []string) error {
	var (
		lf      layoutFlags
		in, out string
		base    int
	)
	fs := newFlagSet(e, "import-paste")
	lf.register(fs)
	fs.StringVar(&in, "in", "-", "text file (- for stdin)")
	fs.StringVar(&out, "out", "-", "output file (- for stdout)")
	fs.IntVar(&base, "base", importer.DefaultBareBase, "base of unprefixed numbers: 10 or 16")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := lf.config()
	if err != nil {
		return err
	}
	text, err := e.readInput(in)
	if err != nil {
		return err
	}
	data, err := importer.ParsePaste(string(text), importer.PasteOptions{BareBase: base})
	if err != nil {
		return err
	}
	if _, err = codec.GlyphCount(len(data), cfg); err != nil {
		return err
	}

	return e.writeOutput(out, data)
}
