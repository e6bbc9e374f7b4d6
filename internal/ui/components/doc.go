// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the dirdiff TUI.

# Key Types

  - FileTree - Scrollable sidebar listing changed paths with status markers
  - DiffPane - Viewport that displays one rendered file diff
  - StatusBar - Bottom line with change counts, tool state, and key hints

Components are plain view-state holders: the app model feeds them data and
sizes, they render strings. None of them talk to the filesystem or spawn
renders on their own.
*/
package components
