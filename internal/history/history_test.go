// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, max int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := NewStore(path, max)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := newTestStore(t, 20)

	if err := s.Record("/a/left", "/a/right"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := s.Record("/b/left", "/b/right"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	recent := s.Recent()
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}
	if recent[0].LeftPath != "/b/left" {
		t.Errorf("Expected most recent pair first, got %q", recent[0].LeftPath)
	}
	if recent[0].ID == "" {
		t.Error("Expected non-empty entry ID")
	}
}

func TestStore_DedupesPairs(t *testing.T) {
	s := newTestStore(t, 20)

	for i := 0; i < 3; i++ {
		if err := s.Record("/same/left", "/same/right"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent := s.Recent()
	if len(recent) != 1 {
		t.Fatalf("Expected deduplicated single entry, got %d", len(recent))
	}
	if recent[0].UseCount != 3 {
		t.Errorf("Expected use count 3, got %d", recent[0].UseCount)
	}
}

func TestStore_CapsEntries(t *testing.T) {
	s := newTestStore(t, 3)

	for i := 0; i < 5; i++ {
		if err := s.Record(fmt.Sprintf("/left/%d", i), fmt.Sprintf("/right/%d", i)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent := s.Recent()
	if len(recent) != 3 {
		t.Fatalf("Expected cap of 3 entries, got %d", len(recent))
	}
	if recent[0].LeftPath != "/left/4" {
		t.Errorf("Expected newest entry kept, got %q", recent[0].LeftPath)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s1, err := NewStore(path, 20)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := s1.Record("/p/left", "/p/right"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	s2, err := NewStore(path, 20)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	recent := s2.Recent()
	if len(recent) != 1 || recent[0].RightPath != "/p/right" {
		t.Errorf("Expected persisted entry, got %+v", recent)
	}
}

func TestStore_CorruptFileDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	s, err := NewStore(path, 20)
	if err != nil {
		t.Fatalf("Expected corrupt file tolerated, got: %v", err)
	}
	if len(s.Recent()) != 0 {
		t.Error("Expected empty list after corrupt file")
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	s := newTestStore(t, 20)

	_ = s.Record("/a", "/b")
	_ = s.Record("/c", "/d")

	recent := s.Recent()
	if err := s.Remove(recent[0].ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(s.Recent()) != 1 {
		t.Fatalf("Expected 1 entry after remove, got %d", len(s.Recent()))
	}

	if err := s.Remove("no-such-id"); err != nil {
		t.Errorf("Expected unknown ID to be a no-op, got: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if len(s.Recent()) != 0 {
		t.Error("Expected empty list after clear")
	}
}
