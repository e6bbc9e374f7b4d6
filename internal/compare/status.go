// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

// =============================================================================
// FILE STATUS
// =============================================================================

// FileStatus represents the change classification of a single path.
type FileStatus int

const (
	// StatusUnchanged means both sides exist with identical content
	StatusUnchanged FileStatus = iota
	// StatusAdded means the path exists only on the right side
	StatusAdded
	// StatusDeleted means the path exists only on the left side
	StatusDeleted
	// StatusModified means both sides exist with differing content
	StatusModified
	// StatusRenamed means a deleted and an added file paired by identical content
	StatusRenamed
)

// String returns the string representation of a file status.
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusModified:
		return "modified"
	case StatusRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Symbol returns the one-character marker used in tree listings.
func (s FileStatus) Symbol() string {
	switch s {
	case StatusAdded:
		return "+"
	case StatusDeleted:
		return "-"
	case StatusModified:
		return "~"
	case StatusRenamed:
		return ">"
	default:
		return " "
	}
}

// =============================================================================
// FILE ENTRY
// =============================================================================

// FileEntry is the flat leaf view of one compared file. Entries are derived
// from the walk and used for navigation ordering; they are never mutated
// independently of the tree.
type FileEntry struct {
	Path      string     // Relative path (for renames: "old → new")
	Name      string     // Base name
	Status    FileStatus // Change classification
	LeftPath  string     // Absolute path on the left side ("" when absent)
	RightPath string     // Absolute path on the right side ("" when absent)
}

// =============================================================================
// TREE NODE
// =============================================================================

// TreeNode is one filesystem path in the merged tree. Directories carry a nil
// Status: a directory surfaces in the tree only when a descendant changed, so
// its state is always derived, never set independently. Each node is owned by
// exactly one parent.
type TreeNode struct {
	Name      string      // Base name
	Path      string      // Relative path, stable sort key
	IsDir     bool        // Directory flag
	Status    *FileStatus // nil for directories
	Children  []*TreeNode // Directories first, then alphabetical
	LeftPath  string      // Absolute source path ("" when absent)
	RightPath string      // Absolute source path ("" when absent)
	Err       string      // Walk error for this subtree ("" when none)
}

// =============================================================================
// RESULT
// =============================================================================

// Result holds the outcome of one directory comparison. It is rebuilt
// wholesale on every comparison and treated as an immutable snapshot.
type Result struct {
	Tree         []*TreeNode // Merged tree of changed paths
	Files        []FileEntry // Flat changed entries, sorted by path
	TotalChanges int         // Added + Deleted + Modified
	Added        int         // Count of added files
	Deleted      int         // Count of deleted files
	Modified     int         // Count of modified files
	Renamed      int         // Count of renamed pairs
}

// FindNode returns the tree node for a relative path, or nil. Lookup walks
// the tree from the root; nodes hold no parent back-references.
func (r *Result) FindNode(path string) *TreeNode {
	return findNode(r.Tree, path)
}

func findNode(nodes []*TreeNode, path string) *TreeNode {
	for _, n := range nodes {
		if n.Path == path {
			return n
		}
		if found := findNode(n.Children, path); found != nil {
			return found
		}
	}
	return nil
}
