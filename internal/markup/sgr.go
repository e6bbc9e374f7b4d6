// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"strconv"
	"strings"
)

// =============================================================================
// ESCAPE-SEQUENCE PARSER
// =============================================================================

// parser holds the conversion state for a single Convert call: the active
// style attributes, the text of the open run, and the completed runs and
// lines. There is deliberately no package-level state.
type parser struct {
	style Style
	text  strings.Builder
	runs  []Run
	lines []Line
}

// flushRun closes the open run, if any.
func (p *parser) flushRun() {
	if p.text.Len() == 0 {
		return
	}
	p.runs = append(p.runs, Run{Style: p.style, Text: p.text.String()})
	p.text.Reset()
}

// endLine closes the open run and emits the line. Lines start
// attribute-clean: no style persists across a line break.
func (p *parser) endLine() {
	p.flushRun()
	p.lines = append(p.lines, Line{Runs: p.runs})
	p.runs = nil
	p.style = Style{}
}

// setStyle switches the active style, closing the open run at the
// attribute boundary.
func (p *parser) setStyle(s Style) {
	if s == p.style {
		return
	}
	p.flushRun()
	p.style = s
}

// consumeEscape handles the escape sequence starting at raw[i] and returns
// the index of the first byte after it. Unrecognized or truncated sequences
// are swallowed without touching the style state.
func (p *parser) consumeEscape(raw string, i int) int {
	if i+1 >= len(raw) {
		return len(raw)
	}

	switch raw[i+1] {
	case '[':
		// CSI: parameter bytes 0x30-0x3f, intermediate bytes 0x20-0x2f,
		// final byte 0x40-0x7e.
		j := i + 2
		for j < len(raw) && raw[j] >= 0x20 && raw[j] <= 0x3f {
			j++
		}
		if j >= len(raw) {
			return len(raw)
		}
		final := raw[j]
		if final < 0x40 || final > 0x7e {
			// Not a valid final byte; treat the sequence as inert and
			// resume at the offending byte so its text survives.
			return j
		}
		if final == 'm' {
			p.applySGR(raw[i+2 : j])
		}
		return j + 1

	case ']':
		// OSC: terminated by BEL or ST (ESC \).
		j := i + 2
		for j < len(raw) {
			if raw[j] == 0x07 {
				return j + 1
			}
			if raw[j] == 0x1b && j+1 < len(raw) && raw[j+1] == '\\' {
				return j + 2
			}
			j++
		}
		return len(raw)

	default:
		// Two-byte escape or stray ESC; drop the ESC alone and let the
		// following byte pass through as text.
		return i + 1
	}
}

// =============================================================================
// SGR INTERPRETATION
// =============================================================================

// applySGR interprets one SGR parameter list. Malformed parameter lists
// leave the active style untouched; partially valid lists apply up to the
// first malformed element.
func (p *parser) applySGR(params string) {
	codes, ok := parseParams(params)
	if !ok {
		return
	}

	style := p.style
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			style = Style{}
		case c == 1:
			style.Bold = true
		case c == 2:
			style.Faint = true
		case c == 3:
			style.Italic = true
		case c == 4:
			style.Underline = true
		case c == 21 || c == 22:
			style.Bold = false
			style.Faint = false
		case c == 23:
			style.Italic = false
		case c == 24:
			style.Underline = false
		case c >= 30 && c <= 37:
			style.Fg = ansi16[c-30]
		case c == 39:
			style.Fg = ""
		case c >= 40 && c <= 47:
			style.Bg = ansi16[c-40]
		case c == 49:
			style.Bg = ""
		case c >= 90 && c <= 97:
			style.Fg = ansi16[c-90+8]
		case c >= 100 && c <= 107:
			style.Bg = ansi16[c-100+8]
		case c == 38 || c == 48:
			color, consumed := parseExtendedColor(codes[i+1:])
			if consumed == 0 {
				// Truncated extended color; stop interpreting the rest.
				p.setStyle(style)
				return
			}
			if c == 38 {
				style.Fg = color
			} else {
				style.Bg = color
			}
			i += consumed
		default:
			// Unknown attribute: inert.
		}
	}
	p.setStyle(style)
}

// parseExtendedColor parses the tail of a 38/48 extended color spec and
// returns the color plus the number of codes consumed (0 when malformed).
func parseExtendedColor(codes []int) (string, int) {
	if len(codes) == 0 {
		return "", 0
	}
	switch codes[0] {
	case 5:
		if len(codes) < 2 {
			return "", 0
		}
		return xterm256(codes[1]), 2
	case 2:
		if len(codes) < 4 {
			return "", 0
		}
		return rgbHex(codes[1], codes[2], codes[3]), 4
	default:
		return "", 0
	}
}

// parseParams splits an SGR parameter string into integer codes. Both ';'
// and ':' separate parameters; an empty list means reset.
func parseParams(params string) ([]int, bool) {
	if params == "" {
		return []int{0}, true
	}
	fields := strings.FieldsFunc(params, func(r rune) bool {
		return r == ';' || r == ':'
	})
	if len(fields) == 0 {
		return []int{0}, true
	}
	codes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, false
		}
		codes = append(codes, n)
	}
	return codes, true
}
