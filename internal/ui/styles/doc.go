// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the dirdiff TUI.

This package defines the color palette and pane container styles used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Change-Status Colors

  - Added - New files and added lines
  - Deleted - Removed files and removed lines
  - Modified - Changed files
  - Renamed - Moved files with identical content

# Pane Styles

  - Sidebar / SidebarActive - File tree frame
  - DiffPane / DiffPaneActive - Diff pane frame
  - StatusBar - Bottom status line
  - Selection - Cursor row highlight
*/
package styles
