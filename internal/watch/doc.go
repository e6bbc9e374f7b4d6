// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch observes compared directory roots for filesystem changes.
//
// Events from fsnotify arrive per file and in bursts; the watcher coalesces
// them behind a debounce window and emits a single notification once the
// filesystem has been quiet long enough. Callers re-run the comparison on
// each notification rather than tracking individual paths.
//
// # Key Types
//
//   - Watcher: Recursive watcher over one or more roots
//
// # Usage
//
//	w, err := watch.New(300 * time.Millisecond)
//	if err == nil {
//	    w.Add(leftDir)
//	    w.Add(rightDir)
//	    for range w.Events() {
//	        // re-compare
//	    }
//	}
package watch
