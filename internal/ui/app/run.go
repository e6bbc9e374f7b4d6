// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/dirdiff-tui/internal/config"
)

// Run starts the interactive viewer for one directory pair and blocks until
// the user quits.
func Run(cfg *config.Config, leftDir, rightDir string) error {
	m, err := New(cfg, leftDir, rightDir)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
