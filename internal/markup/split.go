// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// COLUMNS
// =============================================================================

// Columns is a row-aligned side-by-side split of a document. Both sides
// always hold the same number of rows; a side with nothing at a given row
// carries an empty placeholder line.
type Columns struct {
	Left  *Document
	Right *Document
}

// columnSeparator is the box-drawing bar external highlighters place
// between the two panes of side-by-side output.
const columnSeparator = '│'

// =============================================================================
// SIDE-BY-SIDE SPLIT
// =============================================================================

// SplitSideBySide splits a document whose lines already contain two panes
// (the highlighter's --side-by-side output) at the middle pane separator.
// The separator closest to the visible midpoint of each line wins; lines
// without a separator appear identically in both columns.
func SplitSideBySide(doc *Document) *Columns {
	cols := &Columns{Left: &Document{}, Right: &Document{}}

	for _, line := range doc.Lines {
		text := line.Text()
		sep := middleSeparator(text)
		if sep < 0 {
			cols.Left.Lines = append(cols.Left.Lines, line)
			cols.Right.Lines = append(cols.Right.Lines, line)
			continue
		}
		left, right := splitLineAt(line, sep)
		cols.Left.Lines = append(cols.Left.Lines, left)
		cols.Right.Lines = append(cols.Right.Lines, right)
	}

	return cols
}

// middleSeparator returns the rune index of the pane separator closest to
// the visible midpoint of the text, or -1 when the line has none.
func middleSeparator(text string) int {
	runes := []rune(text)

	var positions []int
	for i, r := range runes {
		if r == columnSeparator {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return -1
	}

	target := runewidth.StringWidth(text) / 2
	best := positions[0]
	bestDistance := -1
	for _, pos := range positions {
		width := runewidth.StringWidth(string(runes[:pos]))
		distance := width - target
		if distance < 0 {
			distance = -distance
		}
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			best = pos
		}
	}
	return best
}

// splitLineAt splits a line at the given plain-text rune index, dropping
// the rune at that index (the separator itself).
func splitLineAt(line Line, sep int) (Line, Line) {
	var left, right Line
	pos := 0
	for _, run := range line.Runs {
		runes := []rune(run.Text)
		start, end := pos, pos+len(runes)
		pos = end

		switch {
		case end <= sep:
			left.Runs = append(left.Runs, run)
		case start > sep:
			right.Runs = append(right.Runs, run)
		default:
			// The separator falls inside this run.
			if sep > start {
				left.Runs = append(left.Runs, Run{Style: run.Style, Text: string(runes[:sep-start])})
			}
			if sep+1 < end {
				right.Runs = append(right.Runs, Run{Style: run.Style, Text: string(runes[sep-start+1:])})
			}
		}
	}
	return left, right
}

// =============================================================================
// UNIFIED SPLIT
// =============================================================================

// SplitUnified derives a side-by-side layout from a unified (single-pane)
// stream. Context rows appear identically in both columns; a removed-only
// line fills the left column with an empty right placeholder and an added
// line mirrors that. Within one change run, removed and added lines pair up
// row-by-row so an edit reads as old-vs-new on the same row.
func SplitUnified(doc *Document) *Columns {
	cols := &Columns{Left: &Document{}, Right: &Document{}}

	i := 0
	for i < len(doc.Lines) {
		line := doc.Lines[i]
		kind := unifiedLineKind(line.Text())

		if kind == lineShared {
			cols.Left.Lines = append(cols.Left.Lines, line)
			cols.Right.Lines = append(cols.Right.Lines, line)
			i++
			continue
		}

		// Collect the full change run: consecutive removed lines followed
		// by consecutive added lines.
		var removed, added []Line
		for i < len(doc.Lines) && unifiedLineKind(doc.Lines[i].Text()) == lineRemoved {
			removed = append(removed, doc.Lines[i])
			i++
		}
		for i < len(doc.Lines) && unifiedLineKind(doc.Lines[i].Text()) == lineAdded {
			added = append(added, doc.Lines[i])
			i++
		}

		rows := max(len(removed), len(added))
		for r := 0; r < rows; r++ {
			if r < len(removed) {
				cols.Left.Lines = append(cols.Left.Lines, removed[r])
			} else {
				cols.Left.Lines = append(cols.Left.Lines, Line{})
			}
			if r < len(added) {
				cols.Right.Lines = append(cols.Right.Lines, added[r])
			} else {
				cols.Right.Lines = append(cols.Right.Lines, Line{})
			}
		}
	}

	return cols
}

// unified line classification
const (
	lineShared = iota
	lineRemoved
	lineAdded
)

// unifiedLineKind classifies one unified-diff line by its prefix. File
// headers count as shared rows, not changes.
func unifiedLineKind(text string) int {
	switch {
	case strings.HasPrefix(text, "---") || strings.HasPrefix(text, "+++"):
		return lineShared
	case strings.HasPrefix(text, "-"):
		return lineRemoved
	case strings.HasPrefix(text, "+"):
		return lineAdded
	default:
		return lineShared
	}
}
