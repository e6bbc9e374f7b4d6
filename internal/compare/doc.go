// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compare walks two directory roots in lock-step and classifies
// every path as added, deleted, modified, renamed or unchanged.
//
// # Key Types
//
//   - FileStatus: Change classification for a single path
//   - FileEntry: Flat leaf view of one compared file
//   - TreeNode: One node of the merged directory tree
//   - Result: Merged tree, flat entries and aggregate counts
//
// # Usage
//
// Compare two directories and inspect the merged tree:
//
//	result, err := compare.Directories(leftDir, rightDir)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%d changed files\n", result.TotalChanges)
//
// The walk never aborts on a readable-subtree failure: the failing node is
// embedded in the tree with its error attached and excluded from counts.
package compare
