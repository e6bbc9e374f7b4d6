// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/ui/components"
)

// testModel builds an app model over two temp roots with watching and
// history off, so tests stay deterministic and leave no state behind.
func testModel(t *testing.T) *Model {
	t.Helper()

	left := t.TempDir()
	right := t.TempDir()
	write := func(root, name, content string) {
		t.Helper()
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(left, "shared.txt", "old text\n")
	write(right, "shared.txt", "new text\n")
	write(right, "added.txt", "fresh\n")

	cfg := config.Default()
	cfg.Diff.Tool = "/nonexistent/bin/delta-for-tests"
	cfg.Watch.Enabled = false
	cfg.History.Enabled = false

	m, err := New(cfg, left, right)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

// drain runs a command chain to completion, feeding every produced message
// back into Update. Batch commands are expanded.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, bc := range batch {
				queue = append(queue, bc)
			}
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, next)
	}
}

func TestModel_InitialCompareAndRender(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	drain(t, m, m.Init())

	if m.status.Counts == nil {
		t.Fatal("status bar never received comparison counts")
	}
	if m.status.Counts.Modified != 1 || m.status.Counts.Added != 1 {
		t.Errorf("counts = +%d ~%d, want +1 ~1",
			m.status.Counts.Added, m.status.Counts.Modified)
	}

	// The first file is selected and rendered.
	if m.selectedPath == "" {
		t.Fatal("no file selected after initial compare")
	}
	if m.diff.Result() == nil {
		t.Fatal("diff pane has no result after initial render")
	}

	view := m.View()
	if !strings.Contains(view, "shared.txt") {
		t.Errorf("View() missing tree entry, got:\n%s", view)
	}
}

func TestModel_StaleDiffDropped(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, m, m.Init())

	before := m.diff.Result()

	// A render from a superseded generation must not replace the pane.
	m.viewer.NextGeneration()
	stale := diffMsg{res: before, gen: m.viewer.Generation() - 1, path: "shared.txt"}
	m.Update(stale)

	if m.diff.Result() != before {
		t.Error("stale diff result replaced the displayed one")
	}
}

func TestModel_ToggleOptionsRerenders(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, m, m.Init())

	wasSplit := m.opts.SideBySide
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if m.opts.SideBySide == wasSplit {
		t.Error("toggle did not flip the side-by-side option")
	}
	if cmd == nil {
		t.Fatal("toggle did not re-render the current file")
	}
	drain(t, m, cmd)

	if m.diff.Result() == nil {
		t.Fatal("no result after re-render")
	}
}

func TestModel_FileNavigationRendersSelection(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, m, m.Init())

	first := m.selectedPath
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'J'}})
	drain(t, m, cmd)

	if m.selectedPath == first {
		t.Errorf("selection did not advance past %q", first)
	}
	if res := m.diff.Result(); res == nil || !strings.Contains(res.File, m.selectedPath) {
		t.Errorf("diff pane shows %v, want %q", res, m.selectedPath)
	}
}

func TestModel_QuitClosesCleanly(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("quit command produced %v, want tea.QuitMsg", msg)
	}
}

func TestModel_ProbeFailureMarksDegraded(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(probeMsg{ok: false})
	if !m.status.ToolDegraded {
		t.Error("failed probe did not mark the tool degraded")
	}
	if m.status.Tool != "builtin" {
		t.Errorf("status tool = %q, want builtin", m.status.Tool)
	}
}

func TestModel_StatusAfterCompare(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(t, m, m.Init())

	if m.status.Status != components.StatusReady {
		t.Errorf("status = %v, want Ready", m.status.Status)
	}
}
