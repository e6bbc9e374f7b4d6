// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/dirdiff-tui/internal/util"
)

// =============================================================================
// HISTORY ENTRIES
// =============================================================================

// Entry is one remembered directory pair.
type Entry struct {
	ID        string    `json:"id"`
	LeftPath  string    `json:"left_path"`
	RightPath string    `json:"right_path"`
	LastUsed  time.Time `json:"last_used"`
	UseCount  int       `json:"use_count"`
}

// =============================================================================
// STORE
// =============================================================================

// Store manages the recent-pair list on disk. All methods are safe for
// concurrent use.
type Store struct {
	path string
	max  int

	mu      sync.Mutex
	entries []Entry
}

// NewStore opens the history file at path, creating state for an empty list
// when the file does not exist yet. An empty path means the default
// ~/.dirdiff/history.json. maxEntries caps the list; older pairs fall off
// the end.
func NewStore(path string, maxEntries int) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".dirdiff", "history.json")
	}
	if maxEntries <= 0 {
		maxEntries = 20
	}

	s := &Store{path: path, max: maxEntries}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the history file. A missing file is an empty list; a corrupt
// file is discarded rather than blocking startup.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.entries = nil
		return nil
	}
	s.entries = entries
	return nil
}

// save writes the current list atomically.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFileWithDir(s.path, data, 0644, 0755)
}

// Record remembers a directory pair. A pair already present moves to the
// front with its use count bumped; a new pair pushes the oldest entry out
// once the cap is reached.
func (s *Store) Record(leftPath, rightPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	for i := range s.entries {
		if s.entries[i].LeftPath == leftPath && s.entries[i].RightPath == rightPath {
			s.entries[i].LastUsed = now
			s.entries[i].UseCount++
			s.sortLocked()
			return s.save()
		}
	}

	s.entries = append(s.entries, Entry{
		ID:        uuid.NewString(),
		LeftPath:  leftPath,
		RightPath: rightPath,
		LastUsed:  now,
		UseCount:  1,
	})
	s.sortLocked()

	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}

	return s.save()
}

// Recent returns the remembered pairs, most recently used first.
func (s *Store) Recent() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Remove drops one entry by ID. Removing an unknown ID is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Clear empties the history.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.save()
}

// sortLocked orders entries most recently used first. Callers hold s.mu.
func (s *Store) sortLocked() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].LastUsed.After(s.entries[j].LastUsed)
	})
}
