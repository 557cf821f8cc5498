// SPDX-License-Identifier: MIT

// Command chargen inspects, converts, edits and exports character-generator
// ROM images.
//
// Usage:
//
//	chargen <command> [flags]
//
// Commands:
//
//	info          glyph count and byte layout of a ROM
//	convert       re-encode a ROM under another bit order / padding
//	transform     apply a transform to every or selected glyphs
//	show          ASCII preview of glyphs
//	export        write a ROM as C, assembler, hex or JSON text
//	import-font   rasterize a TrueType font into a ROM
//	import-image  cut a bitmap sheet into a ROM
//	import-paste  read pasted byte literals into a ROM
//	view          interactive terminal editor with undo/redo
//
// Every command that reads a ROM takes -in, -width, -height, -bit and -pad.
// "-" means standard input or output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/chargen/codec"
	"github.com/katalvlaran/chargen/core"
)

// command is one subcommand; run receives the arguments after its name.
type command struct {
	summary string
	run     func(env *env, args []string) error
}

var commands = map[string]command{
	"info":         {"glyph count and byte layout of a ROM", runInfo},
	"convert":      {"re-encode a ROM under another bit order / padding", runConvert},
	"transform":    {"apply a transform to every or selected glyphs", runTransform},
	"show":         {"ASCII preview of glyphs", runShow},
	"export":       {"write a ROM as C, assembler, hex or JSON text", runExport},
	"import-font":  {"rasterize a TrueType font into a ROM", runImportFont},
	"import-image": {"cut a bitmap sheet into a ROM", runImportImage},
	"import-paste": {"read pasted byte literals into a ROM", runImportPaste},
	"view":         {"interactive terminal editor with undo/redo", runView},
}

// errUsage is returned when the command line cannot be understood.
var errUsage = errors.New("usage")

// env carries the process streams so commands can be exercised in tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("chargen: ")

	e := &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(e, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run dispatches args[0] to its subcommand.
func run(e *env, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(e.stderr)
		if len(args) == 0 {
			return errUsage
		}
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(e.stderr)
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	return cmd.run(e, args[1:])
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: chargen <command> [flags]")
	fmt.Fprintln(w)
	for _, n := range names {
		fmt.Fprintf(w, "  %-13s %s\n", n, commands[n].summary)
	}
}

// layoutFlags are the ROM layout flags shared by most commands.
type layoutFlags struct {
	width, height int
	bit, pad      string
}

func (lf *layoutFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&lf.width, "width", 8, "glyph width in pixels")
	fs.IntVar(&lf.height, "height", 8, "glyph height in pixels")
	fs.StringVar(&lf.bit, "bit", "ltr", "bit order: ltr (MSB first) or rtl (LSB first)")
	fs.StringVar(&lf.pad, "pad", "right", "padding side: right or left")
}

// config validates the flags into a core.Config.
func (lf *layoutFlags) config() (core.Config, error) {
	bit, err := core.ParseBitDirection(lf.bit)
	if err != nil {
		return core.Config{}, err
	}
	pad, err := core.ParsePaddingDirection(lf.pad)
	if err != nil {
		return core.Config{}, err
	}

	return core.NewConfig(lf.width, lf.height, bit, pad)
}

// newFlagSet builds a FlagSet that reports errors instead of exiting.
func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet("chargen "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	return fs
}

// readInput reads a whole file, or standard input for "-".
func (e *env) readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -in: %w", errUsage)
	}
	if path == "-" {
		return io.ReadAll(e.stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes data to a file, or standard output for "-" or "".
func (e *env) writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := e.stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// loadSet reads and decodes a ROM. With trim, a trailing partial glyph is
// dropped and reported instead of failing.
func (e *env) loadSet(path string, cfg core.Config, trim bool) (*core.CharacterSet, error) {
	data, err := e.readInput(path)
	if err != nil {
		return nil, err
	}
	if trim {
		whole, dropped, err := codec.TrimPartial(data, cfg)
		if err != nil {
			return nil, err
		}
		if dropped > 0 {
			log.Printf("ignoring %d trailing bytes of %s", dropped, path)
		}
		data = whole
	}

	return codec.DecodeSet(data, cfg)
}

// parseSize reads "WxH".
func parseSize(s string) (w, h int, err error) {
	if _, err = fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("size %q: want WxH: %w", s, errUsage)
	}

	return w, h, nil
}
