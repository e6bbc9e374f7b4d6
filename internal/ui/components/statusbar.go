// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status line
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusComparing
	StatusRendering
	StatusWatching
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusComparing:
		return "Comparing..."
	case StatusRendering:
		return "Rendering..."
	case StatusWatching:
		return "Watching"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar renders the bottom line: change counts, renderer state, view
// options, and key hints.
type StatusBar struct {
	Width         int
	Status        Status
	Counts        *compare.Result // nil before the first comparison
	Tool          string          // Active renderer name
	ToolDegraded  bool            // True when the external tool is unavailable
	SideBySide    bool
	Collapsed     bool
	Watching      bool
	Advisory      string // Transient notice, cleared by the app model
	ShowShortcuts bool
}

// NewStatusBar creates a status bar with shortcuts visible.
func NewStatusBar() *StatusBar {
	return &StatusBar{Width: 80, Status: StatusReady, ShowShortcuts: true}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact bar for narrow terminals.
// Format: counts | tool | status
func (s *StatusBar) viewNarrow() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	parts := []string{
		s.renderCounts(),
		s.renderTool(),
		s.renderStatus(),
	}

	return styles.StatusBar.Width(s.Width).Render(strings.Join(parts, sep))
}

// viewWide renders the full bar: counts and tool on the left, options in the
// middle, status and shortcuts on the right.
func (s *StatusBar) viewWide() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	leftParts := []string{s.renderCounts(), s.renderTool()}
	if s.Advisory != "" {
		leftParts = append(leftParts, styles.AdvisoryStyle.Render(s.Advisory))
	}
	left := strings.Join(leftParts, sep)

	center := s.renderOptions()

	rightParts := []string{s.renderStatus()}
	if s.ShowShortcuts {
		rightParts = append(rightParts, s.renderShortcuts())
	}
	right := strings.Join(rightParts, " ")

	// Pad the three sections apart.
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	leftPad := strings.Repeat(" ", gap/2)
	rightPad := strings.Repeat(" ", gap-gap/2)

	return styles.StatusBar.Width(s.Width).Render(left + leftPad + center + rightPad + right)
}

// ==========================================================================
// SECTION RENDERERS
// ==========================================================================

func (s *StatusBar) renderCounts() string {
	if s.Counts == nil {
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render("no comparison")
	}

	segs := []string{
		styles.StatusStyle("+").Render(fmt.Sprintf("+%d", s.Counts.Added)),
		styles.StatusStyle("-").Render(fmt.Sprintf("-%d", s.Counts.Deleted)),
		styles.StatusStyle("~").Render(fmt.Sprintf("~%d", s.Counts.Modified)),
	}
	if s.Counts.Renamed > 0 {
		segs = append(segs, styles.StatusStyle(">").Render(fmt.Sprintf(">%d", s.Counts.Renamed)))
	}
	return strings.Join(segs, " ")
}

func (s *StatusBar) renderTool() string {
	if s.Tool == "" {
		return ""
	}
	if s.ToolDegraded {
		return styles.AdvisoryStyle.Render(s.Tool + " (fallback)")
	}
	return lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(s.Tool)
}

func (s *StatusBar) renderOptions() string {
	flag := func(on bool, name string) string {
		if on {
			return lipgloss.NewStyle().Foreground(styles.Accent).Render(name)
		}
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(name)
	}

	opts := []string{
		flag(s.SideBySide, "split"),
		flag(s.Collapsed, "collapsed"),
	}
	if s.Watching {
		opts = append(opts, flag(true, "watch"))
	}
	return strings.Join(opts, " ")
}

func (s *StatusBar) renderStatus() string {
	style := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	switch s.Status {
	case StatusReady, StatusWatching:
		style = lipgloss.NewStyle().Foreground(styles.Added)
	case StatusComparing, StatusRendering:
		style = lipgloss.NewStyle().Foreground(styles.Modified)
	case StatusError:
		style = lipgloss.NewStyle().Foreground(styles.ErrorColor).Bold(true)
	}
	return style.Render(s.Status.String())
}

func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	shortcuts := []string{
		keyStyle.Render("j/k") + descStyle.Render("nav"),
		keyStyle.Render("n/p") + descStyle.Render("hunk"),
		keyStyle.Render("s") + descStyle.Render("split"),
		keyStyle.Render("c") + descStyle.Render("ctx"),
		keyStyle.Render("q") + descStyle.Render("quit"),
	}
	return strings.Join(shortcuts, " ")
}
