// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
)

// probeTimeout bounds the external tool version check at startup.
const probeTimeout = 3 * time.Second

// =============================================================================
// COMMANDS - Async work issued from Update
// =============================================================================

// compareCmd walks both roots and delivers the merged change tree.
func (m *Model) compareCmd() tea.Cmd {
	left, right := m.leftDir, m.rightDir
	return func() tea.Msg {
		res, err := m.viewer.FileTree(left, right)
		return treeMsg{res: res, err: err}
	}
}

// diffCmd renders one file pair under a fresh generation. Results from
// superseded generations are dropped on receipt.
func (m *Model) diffCmd(node *compare.TreeNode) tea.Cmd {
	gen := m.viewer.NextGeneration()
	leftPath, rightPath, path := node.LeftPath, node.RightPath, node.Path
	opts := m.opts
	return func() tea.Msg {
		res, err := m.viewer.DiffAt(context.Background(), gen, leftPath, rightPath, opts)
		return diffMsg{res: res, err: err, gen: gen, path: path}
	}
}

// probeCmd checks whether the external render tool answers a version probe.
func (m *Model) probeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		ok, version := m.viewer.ToolAvailable(ctx)
		return probeMsg{ok: ok, version: version}
	}
}

// watchCmd blocks on the watcher's event channel. Re-issued after each
// delivery so the loop keeps listening.
func (m *Model) watchCmd() tea.Cmd {
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watchClosedMsg{}
		}
		return watchMsg{}
	}
}
