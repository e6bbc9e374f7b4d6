// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/dirdiff-tui/internal/ui/components"
)

// =============================================================================
// UPDATE - Message routing
// =============================================================================

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case treeMsg:
		return m.handleTree(msg)

	case diffMsg:
		return m.handleDiff(msg)

	case probeMsg:
		m.toolOK = msg.ok
		if !msg.ok {
			m.status.Tool = "builtin"
			m.status.ToolDegraded = true
		}
		return m, nil

	case watchMsg:
		// Files changed under a root: recompare, keep the selection, and
		// keep listening.
		m.status.Status = components.StatusComparing
		return m, tea.Batch(m.compareCmd(), m.watchCmd())

	case watchClosedMsg:
		m.status.Watching = false
		return m, nil
	}

	// Mouse wheel and anything else flows to the diff viewport.
	var cmd tea.Cmd
	m.diff, cmd = m.diff.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, k.SwitchPane):
		if m.focus == paneTree {
			m.focus = paneDiff
		} else {
			m.focus = paneTree
		}
		m.applyFocus()
		return m, nil

	case key.Matches(msg, k.Refresh):
		m.status.Status = components.StatusComparing
		return m, m.compareCmd()

	case key.Matches(msg, k.Open):
		if node := m.tree.SelectedFile(); node != nil {
			return m, m.openDiff(node.Path)
		}
		return m, nil

	case key.Matches(msg, k.NextFile):
		if node := m.tree.NextFile(); node != nil {
			return m, m.openDiff(node.Path)
		}
		return m, nil

	case key.Matches(msg, k.PrevFile):
		if node := m.tree.PrevFile(); node != nil {
			return m, m.openDiff(node.Path)
		}
		return m, nil

	case key.Matches(msg, k.NextHunk):
		m.diff.NextHunk()
		return m, nil

	case key.Matches(msg, k.PrevHunk):
		m.diff.PrevHunk()
		return m, nil

	case key.Matches(msg, k.ToggleSplit):
		m.opts.SideBySide = !m.opts.SideBySide
		m.status.SideBySide = m.opts.SideBySide
		return m, m.rerenderCurrent()

	case key.Matches(msg, k.ToggleNumbers):
		m.opts.LineNumbers = !m.opts.LineNumbers
		return m, m.rerenderCurrent()

	case key.Matches(msg, k.ToggleContext):
		m.opts.Collapsed = !m.opts.Collapsed
		m.status.Collapsed = m.opts.Collapsed
		return m, m.rerenderCurrent()

	case key.Matches(msg, k.ToggleWhitespace):
		m.opts.ShowWhitespace = !m.opts.ShowWhitespace
		return m, m.rerenderCurrent()
	}

	if m.focus == paneTree {
		return m.handleTreeKey(msg)
	}
	return m.handleDiffKey(msg)
}

// handleTreeKey moves the sidebar cursor. Landing on a file row starts its
// render immediately so the right pane follows the selection.
func (m *Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Up):
		m.tree.CursorUp()
	case key.Matches(msg, k.Down):
		m.tree.CursorDown()
	case key.Matches(msg, k.PageUp):
		m.tree.PageUp()
	case key.Matches(msg, k.PageDown):
		m.tree.PageDown()
	case key.Matches(msg, k.Home):
		m.tree.GotoTop()
	case key.Matches(msg, k.End):
		m.tree.GotoBottom()
	default:
		return m, nil
	}

	if node := m.tree.SelectedFile(); node != nil && node.Path != m.selectedPath {
		return m, m.openDiff(node.Path)
	}
	return m, nil
}

func (m *Model) handleDiffKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Up):
		m.diff.ScrollUp(1)
	case key.Matches(msg, k.Down):
		m.diff.ScrollDown(1)
	case key.Matches(msg, k.PageUp):
		m.diff.PageUp()
	case key.Matches(msg, k.PageDown):
		m.diff.PageDown()
	case key.Matches(msg, k.Home):
		m.diff.GotoTop()
	case key.Matches(msg, k.End):
		m.diff.GotoBottom()
	}
	return m, nil
}

// =============================================================================
// ASYNC RESULT HANDLING
// =============================================================================

func (m *Model) handleTree(msg treeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status.Status = components.StatusError
		m.diff.SetMessage("comparison failed: " + msg.err.Error())
		return m, nil
	}

	m.tree.SetResult(msg.res)
	m.status.Counts = msg.res
	m.status.Status = components.StatusReady
	if m.watcher != nil {
		m.status.Status = components.StatusWatching
	}

	// Keep the previous selection across refreshes when it still exists,
	// otherwise land on the first file.
	if m.selectedPath != "" && m.tree.SelectPath(m.selectedPath) {
		if node := m.tree.SelectedFile(); node != nil {
			return m, m.openDiff(node.Path)
		}
	}
	if node := m.tree.SelectedFile(); node != nil {
		return m, m.openDiff(node.Path)
	}
	if node := m.tree.NextFile(); node != nil {
		return m, m.openDiff(node.Path)
	}

	m.selectedPath = ""
	m.diff.SetResult(nil)
	return m, nil
}

func (m *Model) handleDiff(msg diffMsg) (tea.Model, tea.Cmd) {
	if m.viewer.IsStale(msg.gen) {
		return m, nil
	}

	if msg.err != nil {
		m.status.Status = components.StatusError
		m.diff.SetMessage("render failed: " + msg.err.Error())
		return m, nil
	}

	m.diff.SetResult(msg.res)
	m.status.Tool = msg.res.Tool
	m.status.ToolDegraded = msg.res.Advisory != ""
	m.status.Advisory = msg.res.Advisory
	m.status.Status = components.StatusReady
	if m.watcher != nil {
		m.status.Status = components.StatusWatching
	}
	return m, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// openDiff starts rendering the file at a relative tree path.
func (m *Model) openDiff(path string) tea.Cmd {
	node := m.tree.SelectedFile()
	if node == nil || node.Path != path {
		if !m.tree.SelectPath(path) {
			return nil
		}
		node = m.tree.SelectedFile()
		if node == nil {
			return nil
		}
	}
	m.selectedPath = path
	m.status.Status = components.StatusRendering
	m.diff.SetMessage("rendering " + path + "...")
	return m.diffCmd(node)
}

// rerenderCurrent re-renders the selected file with the current options.
func (m *Model) rerenderCurrent() tea.Cmd {
	if m.selectedPath == "" {
		return nil
	}
	return m.openDiff(m.selectedPath)
}
