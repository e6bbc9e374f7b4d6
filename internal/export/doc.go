// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package export writes comparison reports to files.

# Key Types

  - Report - One full comparison: the pair, counts, and per-file diffs
  - Exporter - Format backend (HTML, JSON, patch)
  - Options - Output directory and filename control

# Usage

	report, err := export.BuildReport(ctx, v, leftDir, rightDir)
	path, err := export.ToFile(report, export.NewHTMLExporter(), opts)

HTML output embeds the converted markup the same way the diff pane shows
it, so a report opened in a browser matches what the viewer displayed.
*/
package export
