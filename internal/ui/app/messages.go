// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// =============================================================================
// MESSAGES - Async command results delivered to Update
// =============================================================================

// treeMsg carries a finished directory comparison.
type treeMsg struct {
	res *compare.Result
	err error
}

// diffMsg carries a finished file render. Gen is the viewer generation the
// render was issued under; stale results are dropped in Update.
type diffMsg struct {
	res  *viewer.DiffResult
	err  error
	gen  uint64
	path string
}

// probeMsg reports whether the external render tool answered a version probe.
type probeMsg struct {
	ok      bool
	version string
}

// watchMsg fires when the filesystem watcher reports a settled change burst.
type watchMsg struct{}

// watchClosedMsg fires when the watcher shuts down.
type watchClosedMsg struct{}
