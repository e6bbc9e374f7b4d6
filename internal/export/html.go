// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter renders a report as a standalone dark-theme HTML page. Diff
// bodies embed the converted markup's HTML form, so colors match what the
// terminal viewer showed.
type HTMLExporter struct{}

// NewHTMLExporter creates an HTML exporter.
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// FileExtension returns "html".
func (e *HTMLExporter) FileExtension() string { return "html" }

// MimeType returns the HTML MIME type.
func (e *HTMLExporter) MimeType() string { return "text/html" }

// Export renders the full page.
func (e *HTMLExporter) Export(report *Report) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>dirdiff: %s vs %s</title>\n",
		html.EscapeString(report.Left), html.EscapeString(report.Right))
	sb.WriteString("<style>\n")
	sb.WriteString(reportCSS)
	sb.WriteString("</style>\n</head>\n<body>\n")

	e.renderHeader(&sb, report)
	for i := range report.Files {
		e.renderFile(&sb, &report.Files[i])
	}

	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String()), nil
}

func (e *HTMLExporter) renderHeader(sb *strings.Builder, report *Report) {
	sb.WriteString("<header>\n")
	fmt.Fprintf(sb, "<h1>%s &harr; %s</h1>\n",
		html.EscapeString(report.Left), html.EscapeString(report.Right))
	fmt.Fprintf(sb, "<p class=\"meta\">generated %s</p>\n",
		report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(sb,
		"<p class=\"counts\"><span class=\"added\">+%d</span> "+
			"<span class=\"deleted\">-%d</span> "+
			"<span class=\"modified\">~%d</span>",
		report.Counts.Added, report.Counts.Deleted, report.Counts.Modified)
	if report.Counts.Renamed > 0 {
		fmt.Fprintf(sb, " <span class=\"renamed\">&gt;%d</span>", report.Counts.Renamed)
	}
	sb.WriteString("</p>\n</header>\n")
}

func (e *HTMLExporter) renderFile(sb *strings.Builder, f *FileReport) {
	fmt.Fprintf(sb, "<section class=\"file status-%s\">\n", f.Status)
	fmt.Fprintf(sb, "<h2>%s <span class=\"status\">%s</span></h2>\n",
		html.EscapeString(f.Path), f.Status)

	switch {
	case f.Binary && f.Identical:
		sb.WriteString("<p class=\"notice\">binary files are identical</p>\n")
	case f.Binary:
		sb.WriteString("<p class=\"notice\">binary files differ</p>\n")
	case f.Identical:
		sb.WriteString("<p class=\"notice\">files are identical</p>\n")
	case f.Doc != nil:
		sb.WriteString(f.Doc.HTML())
		sb.WriteString("\n")
	default:
		fmt.Fprintf(sb, "<pre>%s</pre>\n", html.EscapeString(f.Unified))
	}

	sb.WriteString("</section>\n")
}

// reportCSS styles the page to match the terminal viewer's dark palette.
const reportCSS = `
body {
  background: #1e1e2e;
  color: #cdd6f4;
  font-family: ui-monospace, "SF Mono", Menlo, Consolas, monospace;
  font-size: 13px;
  margin: 0;
  padding: 1.5rem;
}
header h1 { font-size: 1.1rem; margin: 0 0 0.25rem; }
.meta { color: #6c7086; margin: 0 0 0.5rem; }
.counts .added { color: #34d399; }
.counts .deleted { color: #fb7185; }
.counts .modified { color: #fbbf24; }
.counts .renamed { color: #22d3ee; }
section.file {
  border: 1px solid #313244;
  border-radius: 6px;
  margin: 1rem 0;
  overflow-x: auto;
}
section.file h2 {
  background: #181825;
  border-bottom: 1px solid #313244;
  font-size: 0.9rem;
  margin: 0;
  padding: 0.5rem 0.75rem;
}
section.file h2 .status { color: #6c7086; font-weight: normal; }
.notice { color: #6c7086; font-style: italic; padding: 0.5rem 0.75rem; }
.diff-output { padding: 0.5rem 0.75rem; }
.diff-line { white-space: pre; }
pre { margin: 0; padding: 0.5rem 0.75rem; white-space: pre; }
`
