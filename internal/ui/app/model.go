// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/history"
	"github.com/jeranaias/dirdiff-tui/internal/render"
	"github.com/jeranaias/dirdiff-tui/internal/ui/components"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
	"github.com/jeranaias/dirdiff-tui/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// APP MODEL
// =============================================================================

// focusedPane identifies which pane receives navigation keys.
type focusedPane int

const (
	paneTree focusedPane = iota
	paneDiff
)

// Model is the root Bubble Tea model for the diff viewer.
type Model struct {
	cfg     *config.Config
	viewer  *viewer.Viewer
	hist    *history.Store
	watcher *watch.Watcher

	leftDir  string
	rightDir string

	keys   KeyMap
	tree   *components.FileTree
	diff   *components.DiffPane
	status *components.StatusBar

	opts  render.Options
	focus focusedPane

	width  int
	height int
	ready  bool

	selectedPath string
	toolOK       bool
}

// New builds the app model for one directory pair. The watcher and history
// store are optional per configuration; failures there degrade silently
// rather than blocking the viewer.
func New(cfg *config.Config, leftDir, rightDir string) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	v := viewer.New(cfg)

	var hist *history.Store
	if cfg.History.Enabled {
		if s, err := history.NewStore("", cfg.History.MaxEntries); err == nil {
			hist = s
			_ = hist.Record(leftDir, rightDir)
		}
	}

	var watcher *watch.Watcher
	if cfg.Watch.Enabled {
		if w, err := watch.New(cfg.Watch.Debounce()); err == nil {
			watcher = w
			_ = watcher.Add(leftDir)
			_ = watcher.Add(rightDir)
		}
	}

	sb := components.NewStatusBar()
	sb.Tool = cfg.Diff.Tool
	sb.SideBySide = cfg.Diff.SideBySide
	sb.Collapsed = cfg.Diff.Collapsed
	sb.Watching = watcher != nil
	sb.Status = components.StatusComparing

	return &Model{
		cfg:      cfg,
		viewer:   v,
		hist:     hist,
		watcher:  watcher,
		leftDir:  leftDir,
		rightDir: rightDir,
		keys:     DefaultKeyMap(),
		tree:     components.NewFileTree(),
		diff:     components.NewDiffPane(),
		status:   sb,
		opts:     v.DefaultOptions(),
		focus:    paneTree,
	}, nil
}

// Init starts the first comparison, the tool probe, and the watch loop.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.compareCmd(), m.probeCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.watchCmd())
	}
	return tea.Batch(cmds...)
}

// Close releases the watcher. Called once the program loop exits.
func (m *Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// layout recomputes pane sizes from the terminal dimensions. Each pane frame
// spends 2 columns on borders and 2 on padding, plus one header row inside.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	treeWidth := m.cfg.UI.TreeWidth
	if max := m.width/2 - 4; treeWidth > max {
		treeWidth = max
	}
	if treeWidth < 16 {
		treeWidth = 16
	}
	diffWidth := m.width - treeWidth - 8
	if diffWidth < 20 {
		diffWidth = 20
	}

	// Status bar takes one row, borders two, pane header one.
	contentHeight := m.height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	m.tree.SetSize(treeWidth, contentHeight)
	m.diff.SetSize(diffWidth, contentHeight)
	m.status.SetWidth(m.width)
	m.viewer.SetWidth(diffWidth)
	m.ready = true
}

// applyFocus syncs component focus flags with the model.
func (m *Model) applyFocus() {
	if m.focus == paneTree {
		m.tree.Focus()
		m.diff.Blur()
	} else {
		m.tree.Blur()
		m.diff.Focus()
	}
}
