// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/markup"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func statusPtr(s compare.FileStatus) *compare.FileStatus { return &s }

// testResult builds a small comparison with one directory and three files.
func testResult() *compare.Result {
	return &compare.Result{
		Tree: []*compare.TreeNode{
			{
				Name:  "src",
				Path:  "src",
				IsDir: true,
				Children: []*compare.TreeNode{
					{Name: "main.go", Path: "src/main.go", Status: statusPtr(compare.StatusModified)},
					{Name: "util.go", Path: "src/util.go", Status: statusPtr(compare.StatusAdded)},
				},
			},
			{Name: "README.md", Path: "README.md", Status: statusPtr(compare.StatusDeleted)},
		},
		Files: []compare.FileEntry{
			{Path: "README.md", Status: compare.StatusDeleted},
			{Path: "src/main.go", Status: compare.StatusModified},
			{Path: "src/util.go", Status: compare.StatusAdded},
		},
		TotalChanges: 3,
		Added:        1,
		Deleted:      1,
		Modified:     1,
	}
}

func testDiffResult() *viewer.DiffResult {
	unified := "--- a/main.go\n+++ b/main.go\n@@ -1,3 +1,3 @@\n context\n-old\n+new\n"
	doc := markup.Convert(unified)
	return &viewer.DiffResult{
		File:      "src/main.go",
		Markup:    doc,
		Hunks:     markup.IndexHunks(doc),
		HunkCount: 1,
		Unified:   unified,
		Tool:      "builtin",
		Plain:     true,
	}
}

// =============================================================================
// FILE TREE TESTS
// =============================================================================

func TestFileTree_FlattenAndNavigate(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(30, 10)
	ft.SetResult(testResult())

	// src, src/main.go, src/util.go, README.md
	if got := ft.RowCount(); got != 4 {
		t.Fatalf("RowCount() = %d, want 4", got)
	}

	// Cursor starts on the directory row; SelectedFile skips it.
	if ft.SelectedFile() != nil {
		t.Error("SelectedFile() on a directory row should be nil")
	}

	n := ft.NextFile()
	if n == nil || n.Path != "src/main.go" {
		t.Fatalf("NextFile() = %v, want src/main.go", n)
	}

	n = ft.NextFile()
	if n == nil || n.Path != "src/util.go" {
		t.Fatalf("NextFile() = %v, want src/util.go", n)
	}

	n = ft.PrevFile()
	if n == nil || n.Path != "src/main.go" {
		t.Fatalf("PrevFile() = %v, want src/main.go", n)
	}
}

func TestFileTree_NextFileAtEnd(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(30, 10)
	ft.SetResult(testResult())
	ft.GotoBottom()

	if n := ft.NextFile(); n != nil {
		t.Errorf("NextFile() past the last row = %v, want nil", n)
	}
	// Cursor stays on the last row.
	if sel := ft.Selected(); sel == nil || sel.Path != "README.md" {
		t.Errorf("Selected() = %v, want README.md", sel)
	}
}

func TestFileTree_SelectPath(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(30, 10)
	ft.SetResult(testResult())

	if !ft.SelectPath("src/util.go") {
		t.Fatal("SelectPath(src/util.go) = false, want true")
	}
	if sel := ft.SelectedFile(); sel == nil || sel.Path != "src/util.go" {
		t.Errorf("SelectedFile() = %v, want src/util.go", sel)
	}

	if ft.SelectPath("does/not/exist") {
		t.Error("SelectPath on a missing path should return false")
	}
}

func TestFileTree_ScrollFollowsCursor(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(30, 2) // Two visible rows
	ft.SetResult(testResult())

	ft.GotoBottom()
	view := ft.View()
	if !strings.Contains(view, "README.md") {
		t.Errorf("View() after GotoBottom should show the last row, got %q", view)
	}
	// Only two rows are visible.
	if lines := strings.Count(view, "\n") + 1; lines != 2 {
		t.Errorf("View() rendered %d lines, want 2", lines)
	}
}

func TestFileTree_EmptyResult(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(30, 10)
	ft.SetResult(&compare.Result{})

	if !strings.Contains(ft.View(), "no differences") {
		t.Errorf("View() of an empty tree = %q, want placeholder", ft.View())
	}
	if ft.Selected() != nil {
		t.Error("Selected() on an empty tree should be nil")
	}
}

func TestFileTree_HeaderCounts(t *testing.T) {
	ft := NewFileTree()
	ft.SetSize(40, 10)
	ft.SetResult(testResult())

	header := ft.Header()
	if !strings.Contains(header, "Changes") {
		t.Errorf("Header() = %q, want title", header)
	}
	if !strings.Contains(header, "+1") || !strings.Contains(header, "-1") || !strings.Contains(header, "~1") {
		t.Errorf("Header() = %q, want counts", header)
	}
}

// =============================================================================
// DIFF PANE TESTS
// =============================================================================

func TestDiffPane_EmptyShowsPlaceholder(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)

	if !strings.Contains(dp.View(), "select a file") {
		t.Errorf("View() = %q, want placeholder", dp.View())
	}
}

func TestDiffPane_SetResultRendersDiff(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)
	dp.SetResult(testDiffResult())

	view := dp.View()
	if !strings.Contains(view, "new") {
		t.Errorf("View() = %q, want diff content", view)
	}

	header := dp.Header()
	if !strings.Contains(header, "src/main.go") {
		t.Errorf("Header() = %q, want file path", header)
	}
	if !strings.Contains(header, "builtin") {
		t.Errorf("Header() = %q, want tool name", header)
	}
}

func TestDiffPane_HunkNavigation(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)
	dp.SetResult(testDiffResult())

	if dp.CurrentHunk() != 0 {
		t.Errorf("CurrentHunk() before any jump = %d, want 0", dp.CurrentHunk())
	}

	dp.NextHunk()
	if dp.CurrentHunk() != 1 {
		t.Errorf("CurrentHunk() after NextHunk = %d, want 1", dp.CurrentHunk())
	}

	// At the last hunk the cursor stays put.
	dp.NextHunk()
	if dp.CurrentHunk() != 1 {
		t.Errorf("CurrentHunk() at the end = %d, want 1", dp.CurrentHunk())
	}

	dp.PrevHunk()
	if dp.CurrentHunk() != 1 {
		t.Errorf("CurrentHunk() at the start = %d, want 1", dp.CurrentHunk())
	}
}

func TestDiffPane_BinaryNotice(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)
	dp.SetResult(&viewer.DiffResult{File: "data.bin", Binary: true, Tool: "builtin"})

	if !strings.Contains(dp.View(), "binary files differ") {
		t.Errorf("View() = %q, want binary notice", dp.View())
	}

	dp.SetResult(&viewer.DiffResult{File: "same.bin", Binary: true, Identical: true, Tool: "builtin"})
	if !strings.Contains(dp.View(), "identical") {
		t.Errorf("View() = %q, want identical notice", dp.View())
	}
}

func TestDiffPane_Message(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)
	dp.SetMessage("rendering...")

	if !strings.Contains(dp.View(), "rendering...") {
		t.Errorf("View() = %q, want message", dp.View())
	}
	if dp.Result() != nil {
		t.Error("Result() after SetMessage should be nil")
	}
}

func TestDiffPane_Advisory(t *testing.T) {
	dp := NewDiffPane()
	dp.SetSize(60, 10)

	res := testDiffResult()
	res.Advisory = "delta unavailable, using builtin renderer"
	dp.SetResult(res)

	if !strings.Contains(dp.Advisory(), "delta unavailable") {
		t.Errorf("Advisory() = %q, want notice", dp.Advisory())
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_WideShowsCountsAndOptions(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(120)
	sb.Counts = testResult()
	sb.Tool = "delta"
	sb.SideBySide = true
	sb.Collapsed = true

	view := sb.View()
	for _, want := range []string{"+1", "-1", "~1", "delta", "split", "collapsed", "Ready"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestStatusBar_NarrowLayout(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(50)
	sb.Counts = testResult()
	sb.Tool = "builtin"
	sb.ToolDegraded = true

	view := sb.View()
	if !strings.Contains(view, "builtin (fallback)") {
		t.Errorf("View() = %q, want degraded tool marker", view)
	}
	// Narrow layout drops the shortcut hints.
	if strings.Contains(view, "quit") {
		t.Error("narrow View() should not render shortcuts")
	}
}

func TestStatusBar_StatusStrings(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusComparing, "Comparing..."},
		{StatusRendering, "Rendering..."},
		{StatusWatching, "Watching"},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
