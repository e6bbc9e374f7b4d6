// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
)

// =============================================================================
// VIEW - Screen composition
// =============================================================================

// View renders the full screen: sidebar and diff pane side by side, status
// bar underneath.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	sidebarStyle := styles.Sidebar
	diffStyle := styles.DiffPane
	if m.focus == paneTree {
		sidebarStyle = styles.SidebarActive
	} else {
		diffStyle = styles.DiffPaneActive
	}

	sidebar := sidebarStyle.Render(m.tree.Header() + "\n" + m.tree.View())

	diffBody := m.diff.View()
	if adv := m.diff.Advisory(); adv != "" {
		diffBody = adv + "\n" + diffBody
	}
	diffHeader := m.diff.Header()
	if diffHeader == "" {
		diffHeader = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(m.leftDir + " <-> " + m.rightDir)
	}
	diffPane := diffStyle.Render(diffHeader + "\n" + diffBody)

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, diffPane)

	return main + "\n" + m.status.View()
}
