// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewer is the facade the UI and CLI talk to.
//
// It wires tree comparison, diff rendering, and markup conversion into four
// operations: compare two roots into a tree, render one file pair into
// navigable markup, probe the external tool, and read a raw file for
// preview. A monotonically increasing generation counter lets callers
// discard render results that finished after the selection moved on.
//
// # Key Types
//
//   - Viewer: The facade itself
//   - DiffResult: One rendered file pair, with hunk index and column split
//
// # Usage
//
//	v := viewer.New(config.Global())
//	tree, err := v.FileTree(leftDir, rightDir)
//	res, err := v.Diff(ctx, leftPath, rightPath, v.DefaultOptions())
package viewer
