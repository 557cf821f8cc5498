package importer_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/chargen/core"
	"github.com/katalvlaran/chargen/importer"
	"github.com/stretchr/testify/require"
)

// TestParsePasteLiterals covers every accepted literal form.
func TestParsePasteLiterals(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []byte
	}{
		{"c hex", "0x3C, 0x42,0x81", []byte{0x3C, 0x42, 0x81}},
		{"dollar", "$3c $FF", []byte{0x3C, 0xFF}},
		{"hash", "#3C #$42", []byte{0x3C, 0x42}},
		{"basic", "&H3C,&hff", []byte{0x3C, 0xFF}},
		{"suffix", "3Ch 0FFh", []byte{0x3C, 0xFF}},
		{"binary", "0b00111100 %01000010 #%10000001", []byte{0x3C, 0x42, 0x81}},
		{"decimal", "60 66 129 0", []byte{60, 66, 129, 0}},
		{"empty", "  \n\t ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := importer.ParsePaste(tc.text, importer.DefaultPasteOptions())
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestParsePasteSource reads a realistic C fragment and an assembler listing.
func TestParsePasteSource(t *testing.T) {
	c := `
#include <stdint.h>
#define GLYPH_H 4
/* letter A,
   four rows */
const uint8_t font[GLYPH_H] PROGMEM = {
	0x18, 0x24, // top
	0x7E, 0x42  /* bottom */
};`
	got, err := importer.ParsePaste(c, importer.DefaultPasteOptions())
	require.NoError(t, err)
	require.Equal(t, []byte{0x18, 0x24, 0x7E, 0x42}, got)

	asm := `
charset:
	.byte $18,$24 ; A top
	DB    %01111110, 66`
	got, err = importer.ParsePaste(asm, importer.DefaultPasteOptions())
	require.NoError(t, err)
	require.Equal(t, []byte{0x18, 0x24, 0x7E, 0x42}, got)

	dump := "18 24 7E 42\n0B 0b"
	got, err = importer.ParsePaste(dump, importer.PasteOptions{BareBase: 16})
	require.NoError(t, err)
	require.Equal(t, []byte{0x18, 0x24, 0x7E, 0x42, 0x0B, 0x0B}, got)
}

// TestParsePasteHexDirectiveNames: in a hex dump, bytes spelled like
// directives ("DB") are data, wherever they appear on the line.
func TestParsePasteHexDirectiveNames(t *testing.T) {
	hex := importer.PasteOptions{BareBase: 16}
	cases := []struct {
		name string
		text string
		want []byte
	}{
		{"middle", "3C DB 81", []byte{0x3C, 0xDB, 0x81}},
		{"first", "DB 81\ndb 3C", []byte{0xDB, 0x81, 0xDB, 0x3C}},
		{"last", "00 db", []byte{0x00, 0xDB}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := importer.ParsePaste(tc.text, hex)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	// A directive that is not a byte is still skipped at the start of a line.
	got, err := importer.ParsePaste("font: .byte 3C DB", hex)
	require.NoError(t, err)
	require.Equal(t, []byte{0x3C, 0xDB}, got)

	// Past the first field a directive name is an ordinary (bad) literal.
	_, err = importer.ParsePaste("3C DB 81 FCB", hex)
	require.ErrorIs(t, err, importer.ErrBadLiteral)

	// Decimal input keeps reading "db" as the directive.
	got, err = importer.ParsePaste("\tdb 60, 66", importer.DefaultPasteOptions())
	require.NoError(t, err)
	require.Equal(t, []byte{60, 66}, got)
}

// TestParsePasteErrors names the offending line and token.
func TestParsePasteErrors(t *testing.T) {
	_, err := importer.ParsePaste("0x01,\n0x1FF", importer.DefaultPasteOptions())
	require.ErrorIs(t, err, importer.ErrBadLiteral)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), "0x1FF")

	for _, bad := range []string{"0x", "$", "%2", "256", "zz", "3C"} {
		_, err = importer.ParsePaste(bad, importer.DefaultPasteOptions())
		require.ErrorIs(t, err, importer.ErrBadLiteral, bad)
	}

	_, err = importer.ParsePaste("1", importer.PasteOptions{BareBase: 8})
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

// TestFormatPasteRoundTrip: every style parses back to the same bytes.
func TestFormatPasteRoundTrip(t *testing.T) {
	data := make([]byte, 21)
	for i := range data {
		data[i] = byte(i * 13)
	}

	for _, style := range []importer.Style{importer.StyleC, importer.StyleAsm, importer.StyleHex} {
		t.Run(style.String(), func(t *testing.T) {
			opts := importer.DefaultFormatOptions()
			opts.Style = style
			text, err := importer.FormatPaste(data, opts)
			require.NoError(t, err)

			popts := importer.DefaultPasteOptions()
			if style == importer.StyleHex {
				popts.BareBase = 16
			}
			back, err := importer.ParsePaste(text, popts)
			require.NoError(t, err)
			require.Equal(t, data, back)
		})
	}
}

// TestFormatPasteC pins the C layout.
func TestFormatPasteC(t *testing.T) {
	opts := importer.DefaultFormatOptions()
	opts.PerLine = 2
	text, err := importer.FormatPaste([]byte{0x18, 0x24, 0x7E}, opts)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"const unsigned char font[3] = {",
		"\t0x18, 0x24,",
		"\t0x7E",
		"};",
		"",
	}, "\n"), text)

	opts.Style = importer.StyleAsm
	opts.Name = "glyphs"
	text, err = importer.FormatPaste([]byte{0x18, 0x24, 0x7E}, opts)
	require.NoError(t, err)
	require.Equal(t, "glyphs:\n\tdb $18,$24\n\tdb $7E\n", text)

	opts.Name = "1bad"
	_, err = importer.FormatPaste(nil, opts)
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)

	style, err := importer.ParseStyle("hex")
	require.NoError(t, err)
	require.Equal(t, importer.StyleHex, style)
	_, err = importer.ParseStyle("json")
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
}
