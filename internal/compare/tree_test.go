// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import "testing"

func TestBuildTree_Ordering(t *testing.T) {
	entries := []FileEntry{
		{Path: "zebra.txt", Name: "zebra.txt", Status: StatusAdded},
		{Path: "alpha.txt", Name: "alpha.txt", Status: StatusModified},
		{Path: "sub/inner.txt", Name: "inner.txt", Status: StatusDeleted},
		{Path: "Beta.txt", Name: "Beta.txt", Status: StatusAdded},
	}

	tree := buildTree(entries, nil)

	// Directories first, then alphabetical (case-sensitive: uppercase before
	// lowercase).
	want := []string{"sub", "Beta.txt", "alpha.txt", "zebra.txt"}
	if len(tree) != len(want) {
		t.Fatalf("Expected %d roots, got %d", len(want), len(tree))
	}
	for i, name := range want {
		if tree[i].Name != name {
			t.Errorf("Root %d: expected %s, got %s", i, name, tree[i].Name)
		}
	}
	if !tree[0].IsDir {
		t.Error("Expected sub to be a directory")
	}
}

func TestBuildTree_SharedDirectories(t *testing.T) {
	entries := []FileEntry{
		{Path: "pkg/a.txt", Name: "a.txt", Status: StatusAdded},
		{Path: "pkg/b.txt", Name: "b.txt", Status: StatusDeleted},
	}

	tree := buildTree(entries, nil)

	if len(tree) != 1 {
		t.Fatalf("Expected a single shared pkg root, got %d", len(tree))
	}
	if len(tree[0].Children) != 2 {
		t.Errorf("Expected 2 children under pkg, got %d", len(tree[0].Children))
	}
	if tree[0].Path != "pkg" {
		t.Errorf("Expected directory path 'pkg', got %q", tree[0].Path)
	}
}

func TestBuildTree_ErrorNode(t *testing.T) {
	tree := buildTree(nil, []walkError{{Path: "locked/secret", IsDir: true, Err: "permission denied"}})

	if len(tree) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(tree))
	}
	locked := tree[0]
	if locked.Name != "locked" || !locked.IsDir {
		t.Fatalf("Expected locked directory root, got %+v", locked)
	}
	if len(locked.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(locked.Children))
	}
	if locked.Children[0].Err != "permission denied" {
		t.Errorf("Expected error attached to node, got %q", locked.Children[0].Err)
	}
}

func TestFindNode(t *testing.T) {
	entries := []FileEntry{
		{Path: "a/b/c.txt", Name: "c.txt", Status: StatusModified},
	}
	result := &Result{Tree: buildTree(entries, nil)}

	if node := result.FindNode("a/b/c.txt"); node == nil {
		t.Error("Expected to find leaf node")
	}
	if node := result.FindNode("a/b"); node == nil || !node.IsDir {
		t.Error("Expected to find directory node")
	}
	if node := result.FindNode("missing"); node != nil {
		t.Error("Expected nil for missing path")
	}
}
