// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
	"github.com/jeranaias/dirdiff-tui/internal/util"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// =============================================================================
// DIFF PANE COMPONENT - Scrollable rendered diff
// =============================================================================

// DiffPane displays one rendered file diff in a scrollable viewport. The pane
// re-emits the converted markup as ANSI for the running terminal's profile,
// so output survives the round trip through the structured form.
type DiffPane struct {
	viewport viewport.Model
	result   *viewer.DiffResult
	message  string
	profile  termenv.Profile

	hunk    int // Index of the current hunk, -1 before any jump
	width   int
	height  int
	focused bool
}

// NewDiffPane creates an empty diff pane.
func NewDiffPane() *DiffPane {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()
	return &DiffPane{
		viewport: vp,
		profile:  termenv.ColorProfile(),
		hunk:     -1,
		width:    80,
		height:   20,
	}
}

// SetSize updates the pane dimensions (content area, excluding frame).
func (dp *DiffPane) SetSize(width, height int) {
	dp.width = width
	dp.height = height
	dp.viewport.Width = width
	dp.viewport.Height = height
}

// SetResult replaces the displayed diff and rewinds to the top.
func (dp *DiffPane) SetResult(res *viewer.DiffResult) {
	dp.result = res
	dp.message = ""
	dp.hunk = -1
	dp.viewport.SetContent(dp.renderContent())
	dp.viewport.GotoTop()
}

// SetMessage clears the diff and shows a status line instead, for loading
// states and render errors.
func (dp *DiffPane) SetMessage(msg string) {
	dp.result = nil
	dp.message = msg
	dp.hunk = -1
	dp.viewport.SetContent("")
	dp.viewport.GotoTop()
}

// Result returns the currently displayed diff, or nil.
func (dp *DiffPane) Result() *viewer.DiffResult { return dp.result }

// Focus marks the pane as active.
func (dp *DiffPane) Focus() { dp.focused = true }

// Blur marks the pane as inactive.
func (dp *DiffPane) Blur() { dp.focused = false }

// Focused reports whether the pane has focus.
func (dp *DiffPane) Focused() bool { return dp.focused }

// =============================================================================
// SCROLLING AND HUNK NAVIGATION
// =============================================================================

// ScrollUp scrolls up by the given number of lines.
func (dp *DiffPane) ScrollUp(lines int) {
	dp.viewport.SetYOffset(dp.viewport.YOffset - lines)
}

// ScrollDown scrolls down by the given number of lines.
func (dp *DiffPane) ScrollDown(lines int) {
	dp.viewport.SetYOffset(dp.viewport.YOffset + lines)
}

// PageUp scrolls up one page.
func (dp *DiffPane) PageUp() { dp.ScrollUp(dp.height) }

// PageDown scrolls down one page.
func (dp *DiffPane) PageDown() { dp.ScrollDown(dp.height) }

// GotoTop scrolls to the beginning of the diff.
func (dp *DiffPane) GotoTop() {
	dp.viewport.GotoTop()
	dp.hunk = -1
}

// GotoBottom scrolls to the end of the diff.
func (dp *DiffPane) GotoBottom() { dp.viewport.GotoBottom() }

// HunkCount returns the number of navigable hunks in the displayed diff.
func (dp *DiffPane) HunkCount() int {
	if dp.result == nil {
		return 0
	}
	return len(dp.result.Hunks)
}

// CurrentHunk returns the 1-based hunk the view last jumped to, 0 before any
// jump.
func (dp *DiffPane) CurrentHunk() int { return dp.hunk + 1 }

// NextHunk jumps to the start of the next hunk. At the last hunk it stays put.
func (dp *DiffPane) NextHunk() {
	if dp.HunkCount() == 0 {
		return
	}
	if dp.hunk < dp.HunkCount()-1 {
		dp.hunk++
	}
	dp.jumpToHunk(dp.hunk)
}

// PrevHunk jumps to the start of the previous hunk. At the first hunk it
// stays put.
func (dp *DiffPane) PrevHunk() {
	if dp.HunkCount() == 0 {
		return
	}
	if dp.hunk > 0 {
		dp.hunk--
	} else {
		dp.hunk = 0
	}
	dp.jumpToHunk(dp.hunk)
}

func (dp *DiffPane) jumpToHunk(i int) {
	if dp.result == nil || i < 0 || i >= len(dp.result.Hunks) {
		return
	}
	dp.viewport.SetYOffset(dp.result.Hunks[i].Row)
}

// Update forwards messages to the underlying viewport for mouse wheel and
// any keys the app model does not intercept.
func (dp *DiffPane) Update(msg tea.Msg) (*DiffPane, tea.Cmd) {
	var cmd tea.Cmd
	dp.viewport, cmd = dp.viewport.Update(msg)
	return dp, cmd
}

// ScrollPercent returns the scroll position as a fraction.
func (dp *DiffPane) ScrollPercent() float64 {
	return dp.viewport.ScrollPercent()
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the pane content.
func (dp *DiffPane) View() string {
	if dp.message != "" {
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render(dp.message)
	}
	if dp.result == nil {
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render("select a file to view its diff")
	}
	return dp.viewport.View()
}

// Header renders the pane title line: file path, renderer, and position.
func (dp *DiffPane) Header() string {
	if dp.result == nil {
		return ""
	}

	name := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true).
		Render(dp.result.File)

	var meta []string
	meta = append(meta, dp.result.Tool)
	if n := dp.HunkCount(); n > 0 {
		if dp.hunk >= 0 {
			meta = append(meta, fmt.Sprintf("hunk %d/%d", dp.hunk+1, n))
		} else {
			meta = append(meta, fmt.Sprintf("%d hunks", n))
		}
	}
	metaStr := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(" [" + strings.Join(meta, " | ") + "]")

	return util.TruncateWidth(name+metaStr, dp.width)
}

// Advisory renders the degradation notice for the current result, or "".
func (dp *DiffPane) Advisory() string {
	if dp.result == nil || dp.result.Advisory == "" {
		return ""
	}
	return styles.AdvisoryStyle.Render(dp.result.Advisory)
}

// renderContent turns the current result into viewport text.
func (dp *DiffPane) renderContent() string {
	res := dp.result
	if res == nil {
		return ""
	}

	switch {
	case res.Binary:
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render(binaryNotice(res))
	case res.Identical:
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render("files are identical")
	case res.Markup != nil:
		return res.Markup.ANSI(dp.profile)
	default:
		return res.Unified
	}
}

func binaryNotice(res *viewer.DiffResult) string {
	if res.Identical {
		return "binary files are identical"
	}
	return "binary files differ"
}
