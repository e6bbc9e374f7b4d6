// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff_test

import (
	"fmt"

	"github.com/jeranaias/dirdiff-tui/internal/diff"
)

func ExampleCompute() {
	oldContent := "line1\nline2\nline3"
	newContent := "line1\nmodified\nline3"

	d := diff.Compute("file.txt", oldContent, newContent, 3)

	fmt.Println(d.Summary())

	// Output:
	// Modified +1 -1
}

func ExampleFormatUnified() {
	oldContent := "line1\nline2\nline3"
	newContent := "line1\nmodified\nline3"

	d := diff.Compute("file.txt", oldContent, newContent, 3)

	fmt.Println(diff.FormatUnified(d))

	// Output:
	// --- a/file.txt
	// +++ b/file.txt
	// @@ -1,3 +1,3 @@
	//  line1
	// -line2
	// +modified
	//  line3
}

func ExampleDiff_Summary_newFile() {
	d := diff.Compute("newfile.txt", "", "line1\nline2", 3)

	fmt.Println(d.Summary())
	fmt.Println("File mode:", d.Stats.FileMode)

	// Output:
	// New file +2
	// File mode: new
}

func ExampleLineType_Prefix() {
	fmt.Println("Added:", diff.LineAdded.Prefix())
	fmt.Println("Removed:", diff.LineRemoved.Prefix())

	// Output:
	// Added: +
	// Removed: -
}
