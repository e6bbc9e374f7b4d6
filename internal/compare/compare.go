// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compare

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// =============================================================================
// PATH COMPARISON
// =============================================================================

// Exists reports whether a path exists.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// SameContent reports whether two files hold identical bytes. A size
// mismatch short-circuits without reading either file.
func SameContent(left, right string) (bool, error) {
	leftInfo, err := os.Stat(left)
	if err != nil {
		return false, err
	}
	rightInfo, err := os.Stat(right)
	if err != nil {
		return false, err
	}
	if leftInfo.Size() != rightInfo.Size() {
		return false, nil
	}

	leftData, err := os.ReadFile(left)
	if err != nil {
		return false, err
	}
	rightData, err := os.ReadFile(right)
	if err != nil {
		return false, err
	}
	return bytes.Equal(leftData, rightData), nil
}

// =============================================================================
// DIRECTORY COMPARISON
// =============================================================================

// Options tunes directory comparison.
type Options struct {
	// DetectRenames pairs deleted and added files with identical content.
	DetectRenames bool
}

// Directories compares two directory roots with rename detection enabled.
func Directories(leftDir, rightDir string) (*Result, error) {
	return DirectoriesWithOptions(leftDir, rightDir, Options{DetectRenames: true})
}

// DirectoriesWithOptions compares two directory roots and returns the
// merged tree, the flat changed-file entries and aggregate counts. It fails
// only when a root itself is unreadable; failures deeper in either tree are
// attached to the affected node and excluded from counts.
func DirectoriesWithOptions(leftDir, rightDir string, opts Options) (*Result, error) {
	leftInfo, err := os.Stat(leftDir)
	if err != nil {
		return nil, fmt.Errorf("left directory: %w", err)
	}
	rightInfo, err := os.Stat(rightDir)
	if err != nil {
		return nil, fmt.Errorf("right directory: %w", err)
	}
	if !leftInfo.IsDir() {
		return nil, fmt.Errorf("left path is not a directory: %s", leftDir)
	}
	if !rightInfo.IsDir() {
		return nil, fmt.Errorf("right path is not a directory: %s", rightDir)
	}

	w := &walker{leftRoot: leftDir, rightRoot: rightDir}
	w.walkPair("")

	entries := w.entries
	if opts.DetectRenames {
		entries = detectRenames(entries)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	result := &Result{}
	for _, e := range entries {
		switch e.Status {
		case StatusAdded:
			result.Added++
		case StatusDeleted:
			result.Deleted++
		case StatusModified:
			result.Modified++
		case StatusRenamed:
			result.Renamed++
		}
		if e.Status != StatusUnchanged {
			result.Files = append(result.Files, e)
		}
	}
	result.TotalChanges = result.Added + result.Deleted + result.Modified

	result.Tree = buildTree(result.Files, w.errs)
	return result, nil
}

// =============================================================================
// WALKER
// =============================================================================

// walkError records a subtree that could not be read.
type walkError struct {
	Path  string // Relative path of the failing node
	IsDir bool
	Err   string
}

type walker struct {
	leftRoot  string
	rightRoot string
	entries   []FileEntry
	errs      []walkError
}

// walkPair walks a directory level present on both sides, unioning the
// child-name sets.
func (w *walker) walkPair(relDir string) {
	leftChildren, lerr := readNames(filepath.Join(w.leftRoot, filepath.FromSlash(relDir)))
	if lerr != nil {
		w.errs = append(w.errs, walkError{Path: relDir, IsDir: true, Err: lerr.Error()})
		return
	}
	rightChildren, rerr := readNames(filepath.Join(w.rightRoot, filepath.FromSlash(relDir)))
	if rerr != nil {
		w.errs = append(w.errs, walkError{Path: relDir, IsDir: true, Err: rerr.Error()})
		return
	}

	names := unionNames(leftChildren, rightChildren)

	for _, name := range names {
		rel := joinRel(relDir, name)
		leftIsDir, onLeft := leftChildren[name]
		rightIsDir, onRight := rightChildren[name]

		switch {
		case onLeft && onRight:
			switch {
			case leftIsDir && rightIsDir:
				w.walkPair(rel)
			case !leftIsDir && !rightIsDir:
				w.compareFile(rel)
			default:
				// Type mismatch at the same name: the old entity is removed
				// and the new one added, never "modified".
				if leftIsDir {
					w.walkOneSide(rel, StatusDeleted)
				} else {
					w.addFile(rel, StatusDeleted)
				}
				if rightIsDir {
					w.walkOneSide(rel, StatusAdded)
				} else {
					w.addFile(rel, StatusAdded)
				}
			}
		case onLeft:
			if leftIsDir {
				w.walkOneSide(rel, StatusDeleted)
			} else {
				w.addFile(rel, StatusDeleted)
			}
		default:
			if rightIsDir {
				w.walkOneSide(rel, StatusAdded)
			} else {
				w.addFile(rel, StatusAdded)
			}
		}
	}
}

// walkOneSide marks an entire subtree as added or deleted.
func (w *walker) walkOneSide(relDir string, status FileStatus) {
	root := w.leftRoot
	if status == StatusAdded {
		root = w.rightRoot
	}
	children, err := readNames(filepath.Join(root, filepath.FromSlash(relDir)))
	if err != nil {
		w.errs = append(w.errs, walkError{Path: relDir, IsDir: true, Err: err.Error()})
		return
	}

	var names []string
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rel := joinRel(relDir, name)
		if children[name] {
			w.walkOneSide(rel, status)
		} else {
			w.addFile(rel, status)
		}
	}
}

// compareFile classifies a file present on both sides by content.
func (w *walker) compareFile(rel string) {
	left := filepath.Join(w.leftRoot, filepath.FromSlash(rel))
	right := filepath.Join(w.rightRoot, filepath.FromSlash(rel))

	same, err := SameContent(left, right)
	if err != nil {
		w.errs = append(w.errs, walkError{Path: rel, Err: err.Error()})
		return
	}

	status := StatusModified
	if same {
		status = StatusUnchanged
	}
	w.entries = append(w.entries, FileEntry{
		Path:      rel,
		Name:      path.Base(rel),
		Status:    status,
		LeftPath:  left,
		RightPath: right,
	})
}

// addFile records a file present on a single side.
func (w *walker) addFile(rel string, status FileStatus) {
	entry := FileEntry{
		Path:   rel,
		Name:   path.Base(rel),
		Status: status,
	}
	if status == StatusDeleted {
		entry.LeftPath = filepath.Join(w.leftRoot, filepath.FromSlash(rel))
	} else {
		entry.RightPath = filepath.Join(w.rightRoot, filepath.FromSlash(rel))
	}
	w.entries = append(w.entries, entry)
}

// =============================================================================
// RENAME DETECTION
// =============================================================================

// detectRenames pairs deleted files with added files holding identical
// content. There is no similarity threshold: only exact content matches
// become renames, everything else stays a separate add and delete.
func detectRenames(entries []FileEntry) []FileEntry {
	deletedByHash := make(map[string][]int)
	hasAdded := false
	for i, e := range entries {
		switch e.Status {
		case StatusDeleted:
			if h, ok := hashFile(e.LeftPath); ok {
				deletedByHash[h] = append(deletedByHash[h], i)
			}
		case StatusAdded:
			hasAdded = true
		}
	}
	if len(deletedByHash) == 0 || !hasAdded {
		return entries
	}

	consumed := make(map[int]bool)
	var result []FileEntry
	for _, e := range entries {
		if e.Status != StatusAdded {
			continue
		}
		h, ok := hashFile(e.RightPath)
		if !ok {
			continue
		}
		candidates := deletedByHash[h]
		for len(candidates) > 0 {
			idx := candidates[0]
			candidates = candidates[1:]
			deletedByHash[h] = candidates
			// Hash collisions are vanishingly unlikely but cheap to rule out.
			same, err := SameContent(entries[idx].LeftPath, e.RightPath)
			if err != nil || !same {
				continue
			}
			consumed[idx] = true
			result = append(result, FileEntry{
				Path:      entries[idx].Path + " → " + e.Path,
				Name:      e.Name,
				Status:    StatusRenamed,
				LeftPath:  entries[idx].LeftPath,
				RightPath: e.RightPath,
			})
			break
		}
	}
	if len(result) == 0 {
		return entries
	}

	renamedRight := make(map[string]bool)
	for _, r := range result {
		renamedRight[r.RightPath] = true
	}
	for i, e := range entries {
		if consumed[i] {
			continue
		}
		if e.Status == StatusAdded && renamedRight[e.RightPath] {
			continue
		}
		result = append(result, e)
	}
	return result
}

// hashFile returns the hex content hash of a file, or ok=false on read error.
func hashFile(p string) (string, bool) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum), true
}

// =============================================================================
// HELPERS
// =============================================================================

// readNames returns the immediate children of a directory as a
// name -> isDir map. Symlinks are not followed.
func readNames(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}
	return names, nil
}

// unionNames merges two child-name sets into a sorted slice.
func unionNames(a, b map[string]bool) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var names []string
	for name := range a {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range b {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// joinRel joins relative tree paths with forward slashes on every platform.
func joinRel(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
