// SPDX-License-Identifier: MIT

package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// asmDirectives are data directives skipped by ParsePaste.
var asmDirectives = map[string]bool{
	"db": true, ".db": true, "defb": true, ".byte": true, "byte": true,
	"dc.b": true, "fcb": true, ".data": true, "data": true,
}

// ParsePaste extracts byte values from pasted source text.
//
// Accepted literals: 0x3C, $3C, #3C, #$3C, &H3C and 3Ch (hex); 0b00111100,
// %00111100 and #%00111100 (binary); other numbers use opts.BareBase.
// Ignored: /* */, // and ; comments, preprocessor lines, everything left of
// '=' on a line (array declarations), braces and brackets, leading labels
// and the assembler data directive that follows them. Tokens are separated by commas or whitespace.
//
// Complexity: O(len(text)).
func ParsePaste(text string, opts PasteOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var out []byte
	for n, line := range strings.Split(stripBlockComments(text), "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		if i := strings.LastIndexByte(line, '='); i >= 0 {
			line = line[i+1:]
		}
		line = strings.Map(func(r rune) rune {
			switch r {
			case '{', '}', '[', ']', '(', ')', ',':
				return ' '
			}
			return r
		}, line)

		fields := strings.Fields(line)
		if len(fields) > 0 && isDirectiveLine(fields[0]) {
			continue
		}
		for _, tok := range dataFields(fields, opts.BareBase) {
			v, err := parseLiteral(tok, opts.BareBase)
			if err != nil {
				return nil, importerErrorf("ParsePaste", fmt.Errorf("line %d: %q: %w", n+1, tok, err))
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// dataFields drops the leading labels and the data directive of an
// assembler line. Only the first field after the labels can be a directive,
// and under base 16 a field that reads as a byte ("DB") is data.
func dataFields(fields []string, bareBase int) []string {
	for len(fields) > 0 && strings.HasSuffix(fields[0], ":") {
		fields = fields[1:]
	}
	if len(fields) == 0 || !asmDirectives[strings.ToLower(fields[0])] {
		return fields
	}
	if bareBase == 16 {
		if _, err := parseLiteral(fields[0], bareBase); err == nil {
			return fields
		}
	}

	return fields[1:]
}

// stripBlockComments replaces /* ... */ with a space, keeping line breaks
// so that error line numbers stay accurate.
func stripBlockComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteByte(' ')
		rest := s[i+2:]
		j := strings.Index(rest, "*/")
		if j < 0 {
			b.WriteString(strings.Repeat("\n", strings.Count(rest, "\n")))
			return b.String()
		}
		b.WriteString(strings.Repeat("\n", strings.Count(rest[:j], "\n")))
		s = rest[j+2:]
	}
}

// isDirectiveLine reports a C preprocessor line such as "#define W 8".
func isDirectiveLine(first string) bool {
	if !strings.HasPrefix(first, "#") || len(first) < 2 {
		return false
	}
	_, err := strconv.ParseUint(strings.TrimPrefix(first[1:], "$"), 16, 8)

	return err != nil && isIdentifier(first[1:])
}

// parseLiteral reads one byte literal.
func parseLiteral(tok string, bareBase int) (byte, error) {
	s := strings.ToLower(tok)
	base := bareBase
	switch {
	case strings.HasPrefix(s, "0x"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "#$"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "&h"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "#%"):
		s, base = s[2:], 2
	case strings.HasPrefix(s, "$"), strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case len(s) > 2 && strings.HasPrefix(s, "0b"):
		s, base = s[2:], 2
	case strings.HasPrefix(s, "%"):
		s, base = s[1:], 2
	case len(s) > 1 && strings.HasSuffix(s, "h"):
		s, base = s[:len(s)-1], 16
	}
	if s == "" {
		return 0, ErrBadLiteral
	}
	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, ErrBadLiteral
	}

	return byte(v), nil
}

// FormatPaste renders data as source text that ParsePaste reads back.
// StyleHex output needs PasteOptions.BareBase = 16.
func FormatPaste(data []byte, opts FormatOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	switch opts.Style {
	case StyleC:
		fmt.Fprintf(&b, "const unsigned char %s[%d] = {\n", opts.Name, len(data))
		for i := 0; i < len(data); i += opts.PerLine {
			line := data[i:min(i+opts.PerLine, len(data))]
			b.WriteByte('\t')
			for j, v := range line {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "0x%02X", v)
				if i+j < len(data)-1 {
					b.WriteByte(',')
				}
			}
			b.WriteByte('\n')
		}
		b.WriteString("};\n")
	case StyleAsm:
		fmt.Fprintf(&b, "%s:\n", opts.Name)
		for i := 0; i < len(data); i += opts.PerLine {
			b.WriteString("\tdb ")
			for j, v := range data[i:min(i+opts.PerLine, len(data))] {
				if j > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "$%02X", v)
			}
			b.WriteByte('\n')
		}
	case StyleHex:
		for i := 0; i < len(data); i += opts.PerLine {
			for j, v := range data[i:min(i+opts.PerLine, len(data))] {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%02X", v)
			}
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}
