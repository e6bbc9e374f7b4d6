// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import "strings"

// =============================================================================
// HUNK INDEX
// =============================================================================

// HunkMark records where a contiguous change region starts in the rendered
// output. Marks exist for navigation only and are never persisted.
type HunkMark struct {
	Row int // Starting row index in the document
}

// IndexHunks scans converted markup for change-run boundaries. A new hunk
// starts at the first changed row after unchanged rows or after an explicit
// separator the highlighter placed between non-adjacent regions; consecutive
// changed rows belong to the same hunk.
//
// This is a best-effort heuristic over rendered output, not over source
// line numbers: styled streams are classified by background paint, plain
// streams by their +/- prefixes.
func IndexHunks(doc *Document) []HunkMark {
	var marks []HunkMark

	inChange := false
	for row, line := range doc.Lines {
		if isSeparatorRow(line) {
			inChange = false
			continue
		}
		changed := isChangedRow(line)
		if changed && !inChange {
			marks = append(marks, HunkMark{Row: row})
		}
		inChange = changed
	}

	return marks
}

// isChangedRow reports whether a rendered row represents added or removed
// content. Plain unified rows announce themselves with a +/- prefix;
// highlighter output paints changed rows with a background color.
func isChangedRow(line Line) bool {
	text := line.Text()
	switch {
	case strings.HasPrefix(text, "---") || strings.HasPrefix(text, "+++"):
		return false
	case strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+"):
		return true
	}
	for _, run := range line.Runs {
		if run.Style.Bg != "" && strings.TrimSpace(run.Text) != "" {
			return true
		}
	}
	return false
}

// isSeparatorRow reports whether a row is an explicit hunk separator: a
// unified @@ header, or a rule of box-drawing characters.
func isSeparatorRow(line Line) bool {
	text := strings.TrimSpace(line.Text())
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "@@") {
		return true
	}
	for _, r := range text {
		switch r {
		case '─', '━', '┈', '┄', '╴', '╶', '┼', '├', '┤':
		default:
			return false
		}
	}
	return true
}
