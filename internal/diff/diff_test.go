// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"strings"
	"testing"
)

func TestCompute_NewFile(t *testing.T) {
	d := Compute("test.txt", "", "line1\nline2\nline3", 3)

	if d.Stats.FileMode != "new" {
		t.Errorf("Expected FileMode 'new', got '%s'", d.Stats.FileMode)
	}

	if d.Stats.Additions != 3 {
		t.Errorf("Expected 3 additions, got %d", d.Stats.Additions)
	}

	if d.Stats.Deletions != 0 {
		t.Errorf("Expected 0 deletions, got %d", d.Stats.Deletions)
	}
}

func TestCompute_DeletedFile(t *testing.T) {
	d := Compute("test.txt", "line1\nline2\nline3", "", 3)

	if d.Stats.FileMode != "deleted" {
		t.Errorf("Expected FileMode 'deleted', got '%s'", d.Stats.FileMode)
	}

	if d.Stats.Additions != 0 {
		t.Errorf("Expected 0 additions, got %d", d.Stats.Additions)
	}

	if d.Stats.Deletions != 3 {
		t.Errorf("Expected 3 deletions, got %d", d.Stats.Deletions)
	}
}

func TestCompute_Modified(t *testing.T) {
	oldContent := "line1\nline2\nline3"
	newContent := "line1\nmodified\nline3\nline4"

	d := Compute("test.txt", oldContent, newContent, 3)

	if d.Stats.FileMode != "modified" {
		t.Errorf("Expected FileMode 'modified', got '%s'", d.Stats.FileMode)
	}

	if d.Stats.Additions != 2 {
		t.Errorf("Expected 2 additions, got %d", d.Stats.Additions)
	}

	if d.Stats.Deletions != 1 {
		t.Errorf("Expected 1 deletion, got %d", d.Stats.Deletions)
	}
}

func TestCompute_NoChanges(t *testing.T) {
	content := "line1\nline2\nline3"

	d := Compute("test.txt", content, content, 3)

	if d.Stats.Additions != 0 {
		t.Errorf("Expected 0 additions, got %d", d.Stats.Additions)
	}

	if d.Stats.Deletions != 0 {
		t.Errorf("Expected 0 deletions, got %d", d.Stats.Deletions)
	}

	if len(d.Hunks) != 0 {
		t.Errorf("Expected 0 hunks, got %d", len(d.Hunks))
	}

	if d.HasChanges() {
		t.Error("Expected HasChanges to be false")
	}
}

func TestCompute_SeparateHunks(t *testing.T) {
	// Two changes far enough apart for separate hunks at context 3.
	var oldLines, newLines []string
	for i := 1; i <= 20; i++ {
		oldLines = append(oldLines, "line")
		newLines = append(newLines, "line")
	}
	oldLines[1] = "old-first"
	newLines[1] = "new-first"
	oldLines[18] = "old-last"
	newLines[18] = "new-last"

	d := Compute("test.txt", strings.Join(oldLines, "\n"), strings.Join(newLines, "\n"), 3)

	if len(d.Hunks) != 2 {
		t.Fatalf("Expected 2 hunks, got %d", len(d.Hunks))
	}
}

func TestCompute_LargeContextSingleHunk(t *testing.T) {
	var oldLines, newLines []string
	for i := 1; i <= 20; i++ {
		oldLines = append(oldLines, "line")
		newLines = append(newLines, "line")
	}
	oldLines[1] = "old-first"
	newLines[1] = "new-first"
	oldLines[18] = "old-last"
	newLines[18] = "new-last"

	d := Compute("test.txt", strings.Join(oldLines, "\n"), strings.Join(newLines, "\n"), 99999)

	if len(d.Hunks) != 1 {
		t.Fatalf("Expected a single whole-file hunk, got %d", len(d.Hunks))
	}
	if len(d.Hunks[0].Lines) != 22 {
		t.Errorf("Expected 22 lines in whole-file hunk, got %d", len(d.Hunks[0].Lines))
	}
}

func TestLineType_String(t *testing.T) {
	tests := []struct {
		lineType LineType
		expected string
	}{
		{LineContext, "context"},
		{LineAdded, "added"},
		{LineRemoved, "removed"},
	}

	for _, tt := range tests {
		result := tt.lineType.String()
		if result != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, result)
		}
	}
}

func TestLineType_Prefix(t *testing.T) {
	tests := []struct {
		lineType LineType
		expected string
	}{
		{LineContext, " "},
		{LineAdded, "+"},
		{LineRemoved, "-"},
	}

	for _, tt := range tests {
		result := tt.lineType.Prefix()
		if result != tt.expected {
			t.Errorf("Expected '%s', got '%s'", tt.expected, result)
		}
	}
}

func TestFormatUnified(t *testing.T) {
	d := Compute("file.txt", "line1\nline2\nline3", "line1\nmodified\nline3", 3)

	unified := FormatUnified(d)

	if !strings.Contains(unified, "--- a/file.txt") {
		t.Error("Expected old file header")
	}
	if !strings.Contains(unified, "+++ b/file.txt") {
		t.Error("Expected new file header")
	}
	if !strings.Contains(unified, "@@ -1,3 +1,3 @@") {
		t.Errorf("Expected hunk header, got:\n%s", unified)
	}
	if !strings.Contains(unified, "-line2") {
		t.Error("Expected removed line")
	}
	if !strings.Contains(unified, "+modified") {
		t.Error("Expected added line")
	}
}

func TestFormatUnified_NewFileLabel(t *testing.T) {
	d := Compute("new.txt", "", "content", 3)

	unified := FormatUnified(d)

	if !strings.Contains(unified, "--- /dev/null") {
		t.Errorf("Expected /dev/null old label, got:\n%s", unified)
	}
}

func TestLineNumbers(t *testing.T) {
	d := Compute("file.txt", "a\nb\nc", "a\nx\nc", 3)

	if len(d.Hunks) != 1 {
		t.Fatalf("Expected 1 hunk, got %d", len(d.Hunks))
	}

	for _, line := range d.Hunks[0].Lines {
		switch {
		case line.Type == LineRemoved && line.Content == "b":
			if line.OldLine != 2 || line.NewLine != 0 {
				t.Errorf("Removed line numbers wrong: old=%d new=%d", line.OldLine, line.NewLine)
			}
		case line.Type == LineAdded && line.Content == "x":
			if line.NewLine != 2 || line.OldLine != 0 {
				t.Errorf("Added line numbers wrong: old=%d new=%d", line.OldLine, line.NewLine)
			}
		}
	}
}

func TestSummary(t *testing.T) {
	d := Compute("file.txt", "line1\nline2", "line1\nchanged", 3)

	summary := d.Summary()
	if !strings.Contains(summary, "Modified") {
		t.Errorf("Expected 'Modified' in summary, got %q", summary)
	}
	if !strings.Contains(summary, "+1") || !strings.Contains(summary, "-1") {
		t.Errorf("Expected +1 -1 in summary, got %q", summary)
	}
}
