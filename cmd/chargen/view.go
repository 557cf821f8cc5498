// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/chargen/builtin"
	"github.com/katalvlaran/chargen/codec"
	"github.com/katalvlaran/chargen/core"
	"github.com/katalvlaran/chargen/history"
	"github.com/katalvlaran/chargen/transform"
)

// Screen placement of the pixel grid; every pixel is two cells wide.
const (
	gridX = 2
	gridY = 2

	pixelOn  = '#'
	pixelOff = '.'
)

const viewHelp = "arrows move  space toggle  n/p glyph  r/R rotate  h/v flip  i invert  " +
	"c clear  F fill  f flood  u/U undo/redo  w save  q quit"

// viewer is an interactive single-glyph editor over a CharacterSet.
// Every edit is committed to hist, so undo/redo spans glyph boundaries.
type viewer struct {
	screen tcell.Screen
	hist   *history.History[*core.CharacterSet]
	path   string // save target; empty disables saving

	glyph    int // current glyph index
	row, col int // cursor
	status   string
}

// newViewer wraps set in an undo history capped at maxHistory steps
// (0 keeps every step).
func newViewer(screen tcell.Screen, set *core.CharacterSet, path string, maxHistory int) *viewer {
	hist := history.New(set,
		history.WithClone((*core.CharacterSet).Clone),
		history.WithMaxHistory[*core.CharacterSet](maxHistory),
	)

	return &viewer{screen: screen, hist: hist, path: path}
}

// current returns a copy of the document and its selected glyph.
func (v *viewer) current() (*core.CharacterSet, *core.Character) {
	set := v.hist.State()
	if set.Len() == 0 {
		return set, nil
	}

	return set, set.Characters[v.glyph]
}

// draw repaints the whole screen.
func (v *viewer) draw() {
	v.screen.Clear()
	set, ch := v.current()

	title := fmt.Sprintf("glyph %d/%d  %s  undo %d  redo %d",
		v.glyph, set.Len(), set.Config, v.hist.HistoryLength(), v.hist.FutureLength())
	v.text(0, 0, title, tcell.StyleDefault.Bold(true))

	if ch == nil {
		v.text(0, gridY, "empty set", tcell.StyleDefault)
	} else {
		for r := 0; r < ch.Height(); r++ {
			for c := 0; c < ch.Width(); c++ {
				on, _ := ch.At(r, c)
				mark := pixelOff
				if on {
					mark = pixelOn
				}
				style := tcell.StyleDefault
				if r == v.row && c == v.col {
					style = style.Reverse(true)
				}
				x := gridX + 2*c
				v.screen.SetContent(x, gridY+r, mark, nil, style)
				v.screen.SetContent(x+1, gridY+r, mark, nil, style)
			}
		}
	}

	bottom := gridY + set.Config.Height() + 1
	v.text(0, bottom, v.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.text(0, bottom+1, viewHelp, tcell.StyleDefault.Dim(true))
	v.screen.Show()
}

func (v *viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// handleKey applies one key press. It returns false when the viewer should exit.
func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	v.status = ""
	set := v.hist.State()
	cfg := set.Config

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.row = (v.row + cfg.Height() - 1) % cfg.Height()
	case tcell.KeyDown:
		v.row = (v.row + 1) % cfg.Height()
	case tcell.KeyLeft:
		v.col = (v.col + cfg.Width() - 1) % cfg.Width()
	case tcell.KeyRight:
		v.col = (v.col + 1) % cfg.Width()
	case tcell.KeyPgDn:
		v.step(set.Len(), 1)
	case tcell.KeyPgUp:
		v.step(set.Len(), -1)
	case tcell.KeyCtrlZ:
		v.undo()
	case tcell.KeyCtrlY:
		v.redo()
	case tcell.KeyRune:
		return v.handleRune(set, r)
	}

	return true
}

func (v *viewer) handleRune(set *core.CharacterSet, r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.toggle(set)
	case 'n':
		v.step(set.Len(), 1)
	case 'p':
		v.step(set.Len(), -1)
	case 'r':
		v.apply(set, "rotate", transform.RotateCW)
	case 'R':
		v.apply(set, "rotate", transform.RotateCCW)
	case 'h':
		v.apply(set, "flip", transform.FlipHorizontal)
	case 'v':
		v.apply(set, "flip", transform.FlipVertical)
	case 'i':
		v.apply(set, "invert", transform.Invert)
	case 'c':
		v.apply(set, "clear", transform.Clear)
	case 'F':
		v.apply(set, "fill", transform.Fill)
	case 'f':
		if set.Len() == 0 {
			break
		}
		on, err :=set.Characters[v.glyph].At(v.row, v.col)
		if err != nil {
			v.status = err.Error()
			break
		}
		v.apply(set, "flood", transform.FloodFillAt(v.row, v.col, !on, transform.Conn4))
	case 'u':
		v.undo()
	case 'U':
		v.redo()
	case 'w':
		v.save(set)
	}

	return true
}

func (v *viewer) step(n, d int) {
	if n == 0 {
		return
	}
	v.glyph = (v.glyph + d + n) % n
}

// toggle flips the pixel under the cursor.
func (v *viewer) toggle(set *core.CharacterSet) {
	if set.Len() == 0 {
		return
	}
	sel := []*core.Character{set.Characters[v.glyph]}
	state, err := transform.ReadPixel(sel, v.row, v.col)
	if err != nil {
		v.status = err.Error()
		return
	}
	painted, err := transform.PaintPixel(sel, v.row, v.col, state != transform.SameOn)
	if err != nil {
		v.status = err.Error()
		return
	}
	set.Characters[v.glyph] = painted[0]
	v.hist.SetState(set)
}

// apply runs fn on the current glyph and commits the result. Results that
// no longer fit the set's layout (a non-square rotation) are rejected.
func (v *viewer) apply(set *core.CharacterSet, what string, fn transform.Func) {
	if set.Len() == 0 {
		return
	}
	chars, err := transform.ApplyAt(set.Characters, []int{v.glyph}, fn)
	if err != nil {
		v.status = err.Error()
		return
	}
	if !set.Config.Fits(chars[v.glyph]) {
		v.status = fmt.Sprintf("%s needs a square glyph; %s is not", what, set.Config)
		return
	}
	set.Characters = chars
	v.hist.SetState(set)
}

func (v *viewer) undo() {
	if !v.hist.Undo() {
		v.status = "nothing to undo"
	}
}

func (v *viewer) redo() {
	if !v.hist.Redo() {
		v.status = "nothing to redo"
	}
}

func (v *viewer) save(set *core.CharacterSet) {
	if v.path == "" {
		v.status = "no -out file to save to"
		return
	}
	data, err := codec.EncodeSet(set)
	if err == nil {
		err = os.WriteFile(v.path, data, 0o644)
	}
	if err != nil {
		v.status = err.Error()
		return
	}
	v.status = fmt.Sprintf("wrote %d bytes to %s", len(data), v.path)
}

// loop draws and dispatches events until quit or the screen is finalized.
func (v *viewer) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		}
	}
}

// runView opens the interactive editor. Without -in it edits the built-in
// 5×7 set.
func runView(e *env, args []string) error {
	var (
		lf         layoutFlags
		in, out    string
		maxHistory int
	)
	fs := newFlagSet(e, "view")
	lf.register(fs)
	fs.StringVar(&in, "in", "", "ROM file (default: built-in 5x7 letters)")
	fs.StringVar(&out, "out", "", "save target for 'w' (default: -in)")
	fs.IntVar(&maxHistory, "max-history", 200, "undo steps kept (0: unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if maxHistory < 0 {
		return fmt.Errorf("max-history %d: %w", maxHistory, core.ErrInvalidConfiguration)
	}

	set := builtin.Letters5x7()
	if in != "" {
		cfg, err := lf.config()
		if err != nil {
			return err
		}
		if set, err = e.loadSet(in, cfg, false); err != nil {
			return err
		}
		if out == "" && in != "-" {
			out = in
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newViewer(screen, set, out, maxHistory).loop()

	return nil
}
