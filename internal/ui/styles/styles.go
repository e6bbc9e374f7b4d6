// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// CHANGE-STATUS COLORS
// =============================================================================

// Added - New files and added lines
var Added = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Deleted - Removed files and removed lines
var Deleted = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Modified - Changed files
var Modified = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Renamed - Moved files with identical content
var Renamed = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Accent - Selections, active borders
var Accent = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, counts, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// Warning - Advisories, degraded-mode notices
var Warning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// ErrorColor - Unreadable subtrees, failed renders
var ErrorColor = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FB7185"}

// =============================================================================
// PANE STYLES
// =============================================================================

// Sidebar frames the file tree pane.
var Sidebar = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Padding(0, 1)

// SidebarActive is the sidebar with focus.
var SidebarActive = Sidebar.BorderForeground(Accent)

// DiffPane frames the diff pane.
var DiffPane = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Padding(0, 1)

// DiffPaneActive is the diff pane with focus.
var DiffPaneActive = DiffPane.BorderForeground(Accent)

// StatusBar is the bottom status line.
var StatusBar = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(TextSecondary).
	Padding(0, 1)

// Selection highlights the cursor row in the tree.
var Selection = lipgloss.NewStyle().
	Background(Accent).
	Foreground(TextInverse).
	Bold(true)

// AdvisoryStyle renders fallback and degradation notices.
var AdvisoryStyle = lipgloss.NewStyle().
	Foreground(Warning).
	Italic(true)

// =============================================================================
// STATUS HELPERS
// =============================================================================

// StatusStyle returns the text style for a change-status symbol.
func StatusStyle(symbol string) lipgloss.Style {
	switch symbol {
	case "+":
		return lipgloss.NewStyle().Foreground(Added)
	case "-":
		return lipgloss.NewStyle().Foreground(Deleted)
	case "~":
		return lipgloss.NewStyle().Foreground(Modified)
	case ">":
		return lipgloss.NewStyle().Foreground(Renamed)
	default:
		return lipgloss.NewStyle().Foreground(TextMuted)
	}
}
