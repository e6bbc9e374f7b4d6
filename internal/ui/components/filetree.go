// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
	"github.com/jeranaias/dirdiff-tui/internal/util"
)

// =============================================================================
// FILE TREE COMPONENT - Sidebar listing changed paths
// =============================================================================

// TreeRow is one visible line in the flattened tree.
type TreeRow struct {
	Node  *compare.TreeNode
	Depth int
}

// FileTree renders the merged change tree as a scrollable sidebar. The cursor
// moves over every row; only file rows are selectable for diffing.
type FileTree struct {
	rows    []TreeRow
	cursor  int
	offset  int
	width   int
	height  int
	focused bool

	counts string
}

// NewFileTree creates an empty file tree sidebar.
func NewFileTree() *FileTree {
	return &FileTree{width: 36, height: 20, focused: true}
}

// SetSize updates the sidebar dimensions (content area, excluding frame).
func (ft *FileTree) SetSize(width, height int) {
	ft.width = width
	ft.height = height
	ft.clampScroll()
}

// SetResult replaces the displayed tree with a fresh comparison.
func (ft *FileTree) SetResult(res *compare.Result) {
	ft.rows = ft.rows[:0]
	if res != nil {
		ft.flatten(res.Tree, 0)
		ft.counts = summarizeCounts(res)
	} else {
		ft.counts = ""
	}

	if ft.cursor >= len(ft.rows) {
		ft.cursor = len(ft.rows) - 1
	}
	if ft.cursor < 0 {
		ft.cursor = 0
	}
	ft.clampScroll()
}

func (ft *FileTree) flatten(nodes []*compare.TreeNode, depth int) {
	for _, n := range nodes {
		ft.rows = append(ft.rows, TreeRow{Node: n, Depth: depth})
		if n.IsDir {
			ft.flatten(n.Children, depth+1)
		}
	}
}

// Focus marks the sidebar as the active pane.
func (ft *FileTree) Focus() { ft.focused = true }

// Blur marks the sidebar as inactive.
func (ft *FileTree) Blur() { ft.focused = false }

// Focused reports whether the sidebar has focus.
func (ft *FileTree) Focused() bool { return ft.focused }

// RowCount returns the number of visible rows.
func (ft *FileTree) RowCount() int { return len(ft.rows) }

// =============================================================================
// CURSOR MOVEMENT
// =============================================================================

// CursorUp moves the cursor up one row.
func (ft *FileTree) CursorUp() {
	if ft.cursor > 0 {
		ft.cursor--
	}
	ft.clampScroll()
}

// CursorDown moves the cursor down one row.
func (ft *FileTree) CursorDown() {
	if ft.cursor < len(ft.rows)-1 {
		ft.cursor++
	}
	ft.clampScroll()
}

// PageUp moves the cursor up one page.
func (ft *FileTree) PageUp() {
	ft.cursor -= ft.height
	if ft.cursor < 0 {
		ft.cursor = 0
	}
	ft.clampScroll()
}

// PageDown moves the cursor down one page.
func (ft *FileTree) PageDown() {
	ft.cursor += ft.height
	if ft.cursor > len(ft.rows)-1 {
		ft.cursor = len(ft.rows) - 1
	}
	ft.clampScroll()
}

// GotoTop moves the cursor to the first row.
func (ft *FileTree) GotoTop() {
	ft.cursor = 0
	ft.clampScroll()
}

// GotoBottom moves the cursor to the last row.
func (ft *FileTree) GotoBottom() {
	ft.cursor = len(ft.rows) - 1
	if ft.cursor < 0 {
		ft.cursor = 0
	}
	ft.clampScroll()
}

// Selected returns the node under the cursor, or nil when the tree is empty.
func (ft *FileTree) Selected() *compare.TreeNode {
	if ft.cursor < 0 || ft.cursor >= len(ft.rows) {
		return nil
	}
	return ft.rows[ft.cursor].Node
}

// SelectedFile returns the file node under the cursor. Directory rows and an
// empty tree return nil.
func (ft *FileTree) SelectedFile() *compare.TreeNode {
	n := ft.Selected()
	if n == nil || n.IsDir {
		return nil
	}
	return n
}

// NextFile advances the cursor to the next file row, skipping directories.
// Returns the node it landed on, or nil when no file row follows.
func (ft *FileTree) NextFile() *compare.TreeNode {
	for i := ft.cursor + 1; i < len(ft.rows); i++ {
		if !ft.rows[i].Node.IsDir {
			ft.cursor = i
			ft.clampScroll()
			return ft.rows[i].Node
		}
	}
	return nil
}

// PrevFile moves the cursor to the previous file row, skipping directories.
// Returns the node it landed on, or nil when no file row precedes.
func (ft *FileTree) PrevFile() *compare.TreeNode {
	for i := ft.cursor - 1; i >= 0; i-- {
		if !ft.rows[i].Node.IsDir {
			ft.cursor = i
			ft.clampScroll()
			return ft.rows[i].Node
		}
	}
	return nil
}

// SelectPath moves the cursor to the row for a relative path, if present.
func (ft *FileTree) SelectPath(path string) bool {
	for i, row := range ft.rows {
		if row.Node.Path == path {
			ft.cursor = i
			ft.clampScroll()
			return true
		}
	}
	return false
}

// clampScroll keeps the cursor inside the visible window.
func (ft *FileTree) clampScroll() {
	if ft.height <= 0 {
		return
	}
	if ft.cursor < ft.offset {
		ft.offset = ft.cursor
	}
	if ft.cursor >= ft.offset+ft.height {
		ft.offset = ft.cursor - ft.height + 1
	}
	if ft.offset < 0 {
		ft.offset = 0
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the visible slice of the tree.
func (ft *FileTree) View() string {
	if len(ft.rows) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
		return empty.Render("no differences")
	}

	end := ft.offset + ft.height
	if end > len(ft.rows) {
		end = len(ft.rows)
	}

	var b strings.Builder
	for i := ft.offset; i < end; i++ {
		if i > ft.offset {
			b.WriteByte('\n')
		}
		b.WriteString(ft.renderRow(i))
	}
	return b.String()
}

// Header renders the sidebar title line with change counts.
func (ft *FileTree) Header() string {
	title := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true).
		Render("Changes")
	if ft.counts == "" {
		return title
	}
	counts := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(" " + ft.counts)
	return util.TruncateWidth(title+counts, ft.width)
}

func (ft *FileTree) renderRow(i int) string {
	row := ft.rows[i]
	n := row.Node

	indent := strings.Repeat("  ", row.Depth)

	symbol := " "
	if n.Status != nil {
		symbol = n.Status.Symbol()
	}

	name := n.Name
	if n.IsDir {
		name += "/"
	}
	if n.Err != "" {
		name += " !"
	}

	text := util.TruncateWidth(indent+symbol+" "+name, ft.width)

	if i == ft.cursor && ft.focused {
		return styles.Selection.Render(util.PadRight(text, ft.width))
	}

	// Styled symbol, neutral name. Unreadable subtrees surface in red.
	styled := indent + styles.StatusStyle(symbol).Render(symbol) + " "
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	switch {
	case n.Err != "":
		nameStyle = lipgloss.NewStyle().Foreground(styles.ErrorColor)
	case n.IsDir:
		nameStyle = lipgloss.NewStyle().Foreground(styles.TextSecondary)
	}
	remaining := ft.width - util.StringWidth(indent+symbol+" ")
	return styled + nameStyle.Render(util.TruncateWidth(name, remaining))
}

func summarizeCounts(res *compare.Result) string {
	var parts []string
	if res.Added > 0 {
		parts = append(parts, "+"+strconv.Itoa(res.Added))
	}
	if res.Deleted > 0 {
		parts = append(parts, "-"+strconv.Itoa(res.Deleted))
	}
	if res.Modified > 0 {
		parts = append(parts, "~"+strconv.Itoa(res.Modified))
	}
	if res.Renamed > 0 {
		parts = append(parts, ">"+strconv.Itoa(res.Renamed))
	}
	return strings.Join(parts, " ")
}
