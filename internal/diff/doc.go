// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff provides the builtin line-diff engine.
//
// The engine backs two paths: it produces the unified diff text piped to the
// external highlighter's stdin, and it is the plain fallback when the
// highlighter is unavailable. Line matching runs through
// github.com/sergi/go-diff in line mode.
//
// # Key Types
//
//   - LineType: Type of diff line (context, added, removed)
//   - Line: Single line in a diff with type and line numbers
//   - Hunk: Group of related diff lines with line numbers
//   - Diff: Complete diff result with hunks and metadata
//
// # Usage
//
// Compute a diff between two strings with 3 lines of context:
//
//	d := diff.Compute("file.txt", oldContent, newContent, 3)
//	fmt.Println(diff.FormatUnified(d))
package diff
