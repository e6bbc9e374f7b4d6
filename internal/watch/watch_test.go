// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForEvent(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case _, ok := <-w.Events():
		return ok
	case <-time.After(timeout):
		return false
	}
}

func TestWatcher_EmitsAfterChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !waitForEvent(t, w, 3*time.Second) {
		t.Fatal("Expected a change notification")
	}
}

func TestWatcher_CoalescesBurst(t *testing.T) {
	dir := t.TempDir()

	w, err := New(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "burst.txt")
		if err := os.WriteFile(name, []byte{byte(i)}, 0644); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if !waitForEvent(t, w, 3*time.Second) {
		t.Fatal("Expected a notification for the burst")
	}

	// The burst landed inside one debounce window; no second notification
	// should be waiting.
	select {
	case <-w.Events():
		t.Error("Expected burst to coalesce into one notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_WatchesNewSubdirectories(t *testing.T) {
	dir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if !waitForEvent(t, w, 3*time.Second) {
		t.Fatal("Expected notification for new directory")
	}

	// Give the watcher a moment to pick up the new directory.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(sub, "inner.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !waitForEvent(t, w, 3*time.Second) {
		t.Fatal("Expected notification for file inside new directory")
	}
}

func TestWatcher_CloseClosesChannel(t *testing.T) {
	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("Expected closed channel after Close")
		}
	case <-time.After(time.Second):
		t.Error("Expected events channel to close promptly")
	}
}
