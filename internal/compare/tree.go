// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import (
	"sort"
	"strings"
)

// =============================================================================
// TREE CONSTRUCTION
// =============================================================================

// buildTree assembles the merged tree from the flat changed entries plus any
// walk errors. Unchanged files never enter the tree, so a directory appears
// only when a descendant changed (or failed to read).
func buildTree(entries []FileEntry, errs []walkError) []*TreeNode {
	var roots []*TreeNode

	for i := range entries {
		entry := &entries[i]
		// Renamed files sit in the tree at their new location.
		treePath := entry.Path
		if entry.Status == StatusRenamed {
			if idx := strings.Index(treePath, " → "); idx >= 0 {
				treePath = treePath[idx+len(" → "):]
			}
		}
		insertLeaf(&roots, strings.Split(treePath, "/"), "", entry)
	}

	for _, we := range errs {
		insertErr(&roots, we)
	}

	sortTree(roots)
	return roots
}

// insertLeaf walks the path parts, creating directory nodes as needed, and
// appends the leaf node for the entry. prefix is the relative path consumed
// so far.
func insertLeaf(nodes *[]*TreeNode, parts []string, prefix string, entry *FileEntry) {
	if len(parts) == 0 {
		return
	}
	name := parts[0]

	if len(parts) == 1 {
		status := entry.Status
		*nodes = append(*nodes, &TreeNode{
			Name:      name,
			Path:      entry.Path,
			Status:    &status,
			LeftPath:  entry.LeftPath,
			RightPath: entry.RightPath,
		})
		return
	}

	dirPath := joinRel(prefix, name)
	dir := findOrCreateDir(nodes, name, dirPath)
	insertLeaf(&dir.Children, parts[1:], dirPath, entry)
}

// insertErr attaches a walk error as its own node.
func insertErr(nodes *[]*TreeNode, we walkError) {
	if we.Path == "" {
		// Root-level read failure surfaces as a synthetic node.
		*nodes = append(*nodes, &TreeNode{Name: ".", Path: ".", IsDir: true, Err: we.Err})
		return
	}
	parts := strings.Split(we.Path, "/")
	insert := nodes
	for i := 0; i < len(parts)-1; i++ {
		prefix := strings.Join(parts[:i+1], "/")
		dir := findOrCreateDir(insert, parts[i], prefix)
		insert = &dir.Children
	}
	*insert = append(*insert, &TreeNode{
		Name:  parts[len(parts)-1],
		Path:  we.Path,
		IsDir: we.IsDir,
		Err:   we.Err,
	})
}

// findOrCreateDir locates a directory child by name, creating it if absent.
// Leaf nodes never match, so a file and a directory may share a name (the
// deleted-then-added type-mismatch case).
func findOrCreateDir(nodes *[]*TreeNode, name, relPath string) *TreeNode {
	for _, n := range *nodes {
		if n.IsDir && n.Name == name {
			return n
		}
	}
	dir := &TreeNode{Name: name, Path: relPath, IsDir: true}
	*nodes = append(*nodes, dir)
	return dir
}

// sortTree orders children recursively: directories before files, then
// alphabetical by name (case-sensitive).
func sortTree(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir != nodes[j].IsDir {
			return nodes[i].IsDir
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, n := range nodes {
		sortTree(n.Children)
	}
}
