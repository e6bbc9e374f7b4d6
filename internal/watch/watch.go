// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ignoredDirs are directory names never worth watching: their churn is
// constant and they are not interesting diff content.
var ignoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
}

// =============================================================================
// WATCHER
// =============================================================================

// Watcher observes directory trees and emits one coalesced notification per
// burst of filesystem activity.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	events   chan struct{}

	mu        sync.Mutex
	pending   bool
	lastEvent time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a watcher with the given debounce window. Roots are added
// with Add; nothing is watched until then.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fsw,
		debounce: debounce,
		events:   make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()

	return w, nil
}

// Add watches a root directory and all its subdirectories.
func (w *Watcher) Add(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable subtrees drop out of watching silently
		}
		if !info.IsDir() {
			return nil
		}
		if ignoredDirs[filepath.Base(path)] {
			return filepath.SkipDir
		}
		// Watch errors on individual directories are non-fatal.
		_ = w.watcher.Add(path)
		return nil
	})
}

// Events returns the notification channel. It is closed when the watcher
// closes. The channel has a buffer of one; notifications arriving while a
// re-compare is still running collapse into a single pending one.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and closes the event channel.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processEvents drains fsnotify and marks activity. New directories are
// added to the watch set so created subtrees keep reporting.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.Add(event.Name)
				}
			}

			w.mu.Lock()
			w.pending = true
			w.lastEvent = time.Now()
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// processPending owns the events channel: it emits once activity has been
// quiet for the debounce window and closes the channel on shutdown.
func (w *Watcher) processPending() {
	defer w.wg.Done()
	defer close(w.events)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			fire := w.pending && time.Since(w.lastEvent) >= w.debounce
			if fire {
				w.pending = false
			}
			w.mu.Unlock()

			if fire {
				select {
				case w.events <- struct{}{}:
				default:
					// A notification is already pending; coalesce.
				}
			}
		}
	}
}
