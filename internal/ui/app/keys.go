// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the dirdiff TUI together: file tree on the left, rendered
// diff on the right, status bar underneath.
//
// This file defines keyboard bindings. Bindings follow vim-like navigation
// plus standard terminal shortcuts, with help text for the status bar.
package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the diff viewer.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Open     key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	NextHunk key.Binding
	PrevHunk key.Binding

	ToggleSplit      key.Binding
	ToggleNumbers    key.Binding
	ToggleContext    key.Binding
	ToggleWhitespace key.Binding

	SwitchPane key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp/C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn/C-d", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open diff"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("J", "]"),
			key.WithHelp("J/]", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("K", "["),
			key.WithHelp("K/[", "previous file"),
		),
		NextHunk: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next hunk"),
		),
		PrevHunk: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous hunk"),
		),
		ToggleSplit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle side-by-side"),
		),
		ToggleNumbers: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle line numbers"),
		),
		ToggleContext: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle full context"),
		),
		ToggleWhitespace: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle whitespace markers"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch pane"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r/F5", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.NextHunk, k.Quit}
}

// FullHelp returns all bindings, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.NextFile, k.PrevFile, k.NextHunk, k.PrevHunk},
		{k.ToggleSplit, k.ToggleNumbers, k.ToggleContext, k.ToggleWhitespace},
		{k.SwitchPane, k.Refresh, k.Quit},
	}
}
