// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markup

import "testing"

func TestIndexHunks_NoChanges(t *testing.T) {
	doc := Convert(" context one\n context two\n context three")

	marks := IndexHunks(doc)
	if len(marks) != 0 {
		t.Errorf("Expected no hunks for unchanged stream, got %d", len(marks))
	}
}

func TestIndexHunks_SingleRun(t *testing.T) {
	doc := Convert(" ctx\n-removed\n+added\n ctx")

	marks := IndexHunks(doc)
	if len(marks) != 1 {
		t.Fatalf("Expected 1 hunk, got %d", len(marks))
	}
	if marks[0].Row != 1 {
		t.Errorf("Expected hunk at row 1, got %d", marks[0].Row)
	}
}

func TestIndexHunks_TwoRunsSplitByContext(t *testing.T) {
	doc := Convert("-first\n ctx\n ctx\n+second")

	marks := IndexHunks(doc)
	if len(marks) != 2 {
		t.Fatalf("Expected 2 hunks, got %d", len(marks))
	}
	if marks[0].Row != 0 || marks[1].Row != 3 {
		t.Errorf("Unexpected hunk rows: %+v", marks)
	}
}

func TestIndexHunks_UnifiedHeadersSeparate(t *testing.T) {
	// Adjacent hunks with no context between them still split at the @@
	// separator line.
	doc := Convert("@@ -1,2 +1,2 @@\n-a\n+b\n@@ -10,2 +10,2 @@\n-c\n+d")

	marks := IndexHunks(doc)
	if len(marks) != 2 {
		t.Fatalf("Expected 2 hunks, got %d", len(marks))
	}
}

func TestIndexHunks_BoxDrawingSeparator(t *testing.T) {
	doc := Convert("-a\n────────\n-b")

	marks := IndexHunks(doc)
	if len(marks) != 2 {
		t.Fatalf("Expected separator to split hunks, got %d", len(marks))
	}
}

func TestIndexHunks_BackgroundPaintedRows(t *testing.T) {
	// Highlighter output without +/- markers: changed rows carry a
	// background color.
	raw := " plain context\n\x1b[48;2;60;20;20mold line\x1b[0m\n\x1b[48;2;20;60;20mnew line\x1b[0m\n plain context"
	doc := Convert(raw)

	marks := IndexHunks(doc)
	if len(marks) != 1 {
		t.Fatalf("Expected 1 hunk from painted rows, got %d", len(marks))
	}
	if marks[0].Row != 1 {
		t.Errorf("Expected hunk at row 1, got %d", marks[0].Row)
	}
}

func TestIsSeparatorRow(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"@@ -1,3 +1,3 @@", true},
		{"────────────", true},
		{"", false},
		{" normal text", false},
		{"── mixed text", false},
	}

	for _, tt := range tests {
		doc := Convert(tt.text)
		line := Line{}
		if len(doc.Lines) > 0 {
			line = doc.Lines[0]
		}
		if got := isSeparatorRow(line); got != tt.want {
			t.Errorf("isSeparatorRow(%q): expected %v, got %v", tt.text, tt.want, got)
		}
	}
}
