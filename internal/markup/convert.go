// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"strings"

	"github.com/muesli/termenv"
)

// =============================================================================
// DOCUMENT MODEL
// =============================================================================

// Run is a maximal stretch of text sharing a single style. Text holds the
// raw characters; escaping happens at render time.
type Run struct {
	Style Style
	Text  string
}

// Line is one converted output line.
type Line struct {
	Runs []Run
}

// Text returns the line's plain text with all styling stripped.
func (l Line) Text() string {
	var sb strings.Builder
	for _, r := range l.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is the converted form of one raw stream.
type Document struct {
	Lines []Line
}

// RowCount returns the number of rendered rows.
func (d *Document) RowCount() int {
	return len(d.Lines)
}

// Plain returns the whole document as unstyled text.
func (d *Document) Plain() string {
	lines := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = l.Text()
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert runs the escape-sequence state machine over a raw stream and
// returns the structured document. Parser state lives entirely in this call;
// an unterminated trailing style is closed implicitly at end of stream.
func Convert(raw string) *Document {
	p := &parser{}

	i := 0
	for i < len(raw) {
		c := raw[i]
		switch c {
		case 0x1b:
			i = p.consumeEscape(raw, i)
		case '\n':
			p.endLine()
			i++
		case '\r':
			// CRLF normalization; a bare CR is dropped too.
			i++
		default:
			p.text.WriteByte(c)
			i++
		}
	}
	p.flushRun()
	if len(p.runs) > 0 {
		p.lines = append(p.lines, Line{Runs: p.runs})
	}

	return &Document{Lines: p.lines}
}

// =============================================================================
// RENDERING
// =============================================================================

// HTML renders the document as nested markup in the shape the original
// viewer consumes: one div per line, spans per styled run. All
// markup-significant characters in the text are escaped.
func (d *Document) HTML() string {
	var sb strings.Builder
	sb.WriteString(`<div class="diff-output">`)
	sb.WriteString("\n")
	for _, line := range d.Lines {
		sb.WriteString(`<div class="diff-line"><span class="line-content">`)
		for _, run := range line.Runs {
			writeRunHTML(&sb, run)
		}
		sb.WriteString("\n</span></div>\n")
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func writeRunHTML(sb *strings.Builder, run Run) {
	if run.Style.IsZero() {
		sb.WriteString(escapeHTML(run.Text))
		return
	}
	sb.WriteString(`<span style="`)
	if run.Style.Fg != "" {
		sb.WriteString("color:")
		sb.WriteString(run.Style.Fg)
		sb.WriteString(";")
	}
	if run.Style.Bg != "" {
		sb.WriteString("background-color:")
		sb.WriteString(run.Style.Bg)
		sb.WriteString(";")
	}
	if run.Style.Bold {
		sb.WriteString("font-weight:bold;")
	}
	if run.Style.Faint {
		sb.WriteString("opacity:0.7;")
	}
	if run.Style.Italic {
		sb.WriteString("font-style:italic;")
	}
	if run.Style.Underline {
		sb.WriteString("text-decoration:underline;")
	}
	sb.WriteString(`">`)
	sb.WriteString(escapeHTML(run.Text))
	sb.WriteString(`</span>`)
}

// escapeHTML escapes markup-significant characters so text renders as data.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// ANSI re-renders the document as terminal output using the given color
// profile, degrading colors to what the terminal supports.
func (d *Document) ANSI(profile termenv.Profile) string {
	var sb strings.Builder
	for i, line := range d.Lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, run := range line.Runs {
			if run.Style.IsZero() {
				sb.WriteString(run.Text)
				continue
			}
			styled := termenv.String(run.Text)
			if run.Style.Fg != "" {
				styled = styled.Foreground(profile.Color(run.Style.Fg))
			}
			if run.Style.Bg != "" {
				styled = styled.Background(profile.Color(run.Style.Bg))
			}
			if run.Style.Bold {
				styled = styled.Bold()
			}
			if run.Style.Faint {
				styled = styled.Faint()
			}
			if run.Style.Italic {
				styled = styled.Italic()
			}
			if run.Style.Underline {
				styled = styled.Underline()
			}
			sb.WriteString(styled.String())
		}
	}
	return sb.String()
}
