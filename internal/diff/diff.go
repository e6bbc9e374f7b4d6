// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// =============================================================================
// DIFF TYPES
// =============================================================================

// LineType represents the type of a diff line.
type LineType int

const (
	// LineContext represents unchanged context lines
	LineContext LineType = iota
	// LineAdded represents added lines
	LineAdded
	// LineRemoved represents removed lines
	LineRemoved
)

// String returns the string representation of a diff line type.
func (t LineType) String() string {
	switch t {
	case LineContext:
		return "context"
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this line type.
func (t LineType) Prefix() string {
	switch t {
	case LineContext:
		return " "
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// =============================================================================
// DIFF LINE
// =============================================================================

// Line represents a single line in a diff.
type Line struct {
	Type    LineType // Type of line (added, removed, context)
	Content string   // The actual line content
	OldLine int      // Line number in old file (0 if added)
	NewLine int      // Line number in new file (0 if removed)
}

// =============================================================================
// DIFF HUNK
// =============================================================================

// Hunk represents a contiguous section of changes.
type Hunk struct {
	OldStart int    // Starting line in old file
	OldCount int    // Number of lines in old file
	NewStart int    // Starting line in new file
	NewCount int    // Number of lines in new file
	Lines    []Line // The actual diff lines
}

// =============================================================================
// DIFF STATS
// =============================================================================

// Stats holds statistics about a diff.
type Stats struct {
	Additions int    // Number of added lines
	Deletions int    // Number of removed lines
	FileMode  string // "new", "modified", "deleted"
}

// =============================================================================
// DIFF
// =============================================================================

// Diff represents a complete file diff.
type Diff struct {
	FilePath   string // Path to the file being diffed
	OldContent string // Original file content
	NewContent string // New file content
	Hunks      []Hunk // The diff hunks
	Stats      Stats  // Statistics
}

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// Compute creates a diff between old and new content. Line matching runs
// through diffmatchpatch in line mode; the result is grouped into hunks with
// contextLines of surrounding context (pass a very large value to keep the
// whole file in a single hunk).
func Compute(filePath, oldContent, newContent string, contextLines int) *Diff {
	d := &Diff{
		FilePath:   filePath,
		OldContent: oldContent,
		NewContent: newContent,
	}

	if oldContent == "" && newContent != "" {
		d.Stats.FileMode = "new"
	} else if oldContent != "" && newContent == "" {
		d.Stats.FileMode = "deleted"
	} else {
		d.Stats.FileMode = "modified"
	}

	lines := computeLineDiff(oldContent, newContent)

	d.Hunks = groupIntoHunks(lines, contextLines)

	for _, line := range lines {
		switch line.Type {
		case LineAdded:
			d.Stats.Additions++
		case LineRemoved:
			d.Stats.Deletions++
		}
	}

	return d
}

// computeLineDiff computes line-by-line differences. The line-mode trick
// maps every distinct line to a rune so the diff operates on whole lines,
// then maps back.
func computeLineDiff(oldContent, newContent string) []Line {
	if oldContent == "" && newContent == "" {
		return nil
	}

	// Line mode keys on whole lines including the newline, so a missing
	// final newline would make the last line unequal to its counterpart.
	if oldContent != "" && !strings.HasSuffix(oldContent, "\n") {
		oldContent += "\n"
	}
	if newContent != "" && !strings.HasSuffix(newContent, "\n") {
		newContent += "\n"
	}

	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lineArray := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffMain(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []Line
	oldNum, newNum := 1, 1

	for _, fragment := range diffs {
		for _, content := range splitLines(fragment.Text) {
			switch fragment.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, Line{
					Type:    LineContext,
					Content: content,
					OldLine: oldNum,
					NewLine: newNum,
				})
				oldNum++
				newNum++
			case diffmatchpatch.DiffDelete:
				result = append(result, Line{
					Type:    LineRemoved,
					Content: content,
					OldLine: oldNum,
				})
				oldNum++
			case diffmatchpatch.DiffInsert:
				result = append(result, Line{
					Type:    LineAdded,
					Content: content,
					NewLine: newNum,
				})
				newNum++
			}
		}
	}

	return result
}

// splitLines splits diff fragment text into lines, dropping the trailing
// empty element produced by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// groupIntoHunks groups diff lines into hunks, each padded with up to
// contextLines of unchanged context on both sides. Overlapping context
// windows merge into a single hunk.
func groupIntoHunks(diffLines []Line, contextLines int) []Hunk {
	if len(diffLines) == 0 {
		return nil
	}

	type span struct{ start, end int }
	var spans []span
	for i, line := range diffLines {
		if line.Type == LineContext {
			continue
		}
		start := max(0, i-contextLines)
		end := min(len(diffLines), i+contextLines+1)
		if n := len(spans); n > 0 && start <= spans[n-1].end {
			spans[n-1].end = end
		} else {
			spans = append(spans, span{start, end})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for _, sp := range spans {
		hunk := Hunk{}
		for _, line := range diffLines[sp.start:sp.end] {
			hunk.Lines = append(hunk.Lines, line)
			if line.OldLine > 0 {
				if hunk.OldStart == 0 {
					hunk.OldStart = line.OldLine
				}
				hunk.OldCount++
			}
			if line.NewLine > 0 {
				if hunk.NewStart == 0 {
					hunk.NewStart = line.NewLine
				}
				hunk.NewCount++
			}
		}
		hunks = append(hunks, hunk)
	}
	return hunks
}

// =============================================================================
// UNIFIED DIFF FORMAT
// =============================================================================

// FormatUnified returns the diff in standard unified diff format. Added and
// deleted files use /dev/null as the missing side's label, matching what
// external highlighters expect on stdin.
func FormatUnified(d *Diff) string {
	var sb strings.Builder

	oldLabel := "a/" + d.FilePath
	newLabel := "b/" + d.FilePath
	switch d.Stats.FileMode {
	case "new":
		oldLabel = "/dev/null"
	case "deleted":
		newLabel = "/dev/null"
	}
	sb.WriteString(fmt.Sprintf("--- %s\n", oldLabel))
	sb.WriteString(fmt.Sprintf("+++ %s\n", newLabel))

	for _, hunk := range d.Hunks {
		sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount,
			hunk.NewStart, hunk.NewCount))

		for _, line := range hunk.Lines {
			sb.WriteString(line.Type.Prefix())
			sb.WriteString(line.Content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// =============================================================================
// SUMMARY
// =============================================================================

// HasChanges reports whether the diff contains any added or removed lines.
func (d *Diff) HasChanges() bool {
	return d.Stats.Additions > 0 || d.Stats.Deletions > 0
}

// Summary returns a human-readable summary of the diff.
func (d *Diff) Summary() string {
	var parts []string

	switch d.Stats.FileMode {
	case "new":
		parts = append(parts, "New file")
	case "deleted":
		parts = append(parts, "File deleted")
	default:
		parts = append(parts, "Modified")
	}

	if d.Stats.Additions > 0 {
		parts = append(parts, fmt.Sprintf("+%d", d.Stats.Additions))
	}
	if d.Stats.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("-%d", d.Stats.Deletions))
	}

	return strings.Join(parts, " ")
}
