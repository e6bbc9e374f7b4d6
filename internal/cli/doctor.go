// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// doctor.go - Environment diagnostics for dirdiff.
//
// Command: doctor
// Aliases: diag
//
// Health Checks Performed:
//   1. Render Tool     - The configured external highlighter is on PATH
//   2. Tool Probe      - The tool answers a version probe
//   3. Config Valid    - Configuration loads and validates
//   4. Config Writable - The config directory accepts writes
//   5. History Store   - The history file loads
//   6. Terminal        - Color output is available
//
// A missing external tool is a warning, not a failure: the builtin renderer
// covers for it.
//
// Exit Codes:
//   0   All checks passed (warnings allowed)
//   1   One or more checks failed
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/history"
	"github.com/jeranaias/dirdiff-tui/internal/render"
)

// =============================================================================
// DOCTOR STYLES
// =============================================================================

var (
	doctorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	checkPassStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	checkWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	checkFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	fixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// =============================================================================
// CHECK RESULTS
// =============================================================================

type checkStatus int

const (
	checkPass checkStatus = iota
	checkWarn
	checkFail
)

type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`

	status checkStatus
}

func newCheck(name string, status checkStatus, message, fix string) checkResult {
	statusStr := "pass"
	switch status {
	case checkWarn:
		statusStr = "warn"
	case checkFail:
		statusStr = "fail"
	}
	return checkResult{Name: name, Status: statusStr, Message: message, Fix: fix, status: status}
}

// =============================================================================
// DOCTOR COMMAND
// =============================================================================

// HandleDoctor runs all health checks. Returns an error when any check
// fails so main exits non-zero.
func HandleDoctor(cfg *config.Config, args Args) error {
	checks := []checkResult{
		checkRenderTool(cfg),
		checkToolProbe(cfg),
		checkConfig(),
		checkConfigDir(),
		checkHistory(cfg),
		checkTerminal(),
	}

	failed := 0
	for _, c := range checks {
		if c.status == checkFail {
			failed++
		}
	}

	if args.JSON {
		payload := map[string]interface{}{
			"checks": checks,
			"failed": failed,
		}
		if err := NewJSONResponse("doctor", payload).Print(); err != nil {
			return err
		}
	} else {
		fmt.Println(doctorTitleStyle.Render("dirdiff doctor"))
		for _, c := range checks {
			printCheck(c)
		}
		fmt.Println()
	}

	if failed > 0 {
		return &CommandError{Code: ExitGeneralError,
			Message: fmt.Sprintf("%d check(s) failed", failed)}
	}
	return nil
}

func printCheck(c checkResult) {
	var marker string
	switch c.status {
	case checkPass:
		marker = checkPassStyle.Render("[ok]")
	case checkWarn:
		marker = checkWarnStyle.Render("[!!]")
	case checkFail:
		marker = checkFailStyle.Render("[XX]")
	}
	fmt.Printf("  %s %-16s %s\n", marker, c.Name, c.Message)
	if c.Fix != "" {
		fmt.Printf("       %s\n", fixStyle.Render("fix: "+c.Fix))
	}
}

// =============================================================================
// INDIVIDUAL CHECKS
// =============================================================================

func checkRenderTool(cfg *config.Config) checkResult {
	r := render.NewDeltaRenderer(cfg.Diff.Tool, cfg.Diff.Timeout(), true)
	if r.Available() {
		return newCheck("render tool", checkPass, cfg.Diff.Tool+" found on PATH", "")
	}
	return newCheck("render tool", checkWarn,
		cfg.Diff.Tool+" not found, builtin renderer will be used",
		"install delta: https://dandavison.github.io/delta/")
}

func checkToolProbe(cfg *config.Config) checkResult {
	r := render.NewDeltaRenderer(cfg.Diff.Tool, cfg.Diff.Timeout(), true)
	if !r.Available() {
		return newCheck("tool probe", checkWarn, "skipped, tool not installed", "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	version, err := r.Probe(ctx)
	if err != nil {
		return newCheck("tool probe", checkFail,
			fmt.Sprintf("%s did not answer a version probe: %v", cfg.Diff.Tool, err),
			"run '"+cfg.Diff.Tool+" --version' manually")
	}
	return newCheck("tool probe", checkPass, version, "")
}

func checkConfig() checkResult {
	cfg, err := config.Load()
	if err != nil {
		return newCheck("config", checkFail, err.Error(), "dirdiff config reset")
	}
	if err := cfg.Validate(); err != nil {
		return newCheck("config", checkFail, err.Error(), "dirdiff config reset")
	}
	return newCheck("config", checkPass, "configuration valid", "")
}

func checkConfigDir() checkResult {
	dir, err := config.ConfigDir()
	if err != nil {
		return newCheck("config dir", checkFail, err.Error(), "")
	}
	if err := config.EnsureConfigDir(); err != nil {
		return newCheck("config dir", checkFail, err.Error(), "check permissions on "+dir)
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		return newCheck("config dir", checkFail, "not writable: "+dir,
			"check permissions on "+dir)
	}
	_ = os.Remove(probe)
	return newCheck("config dir", checkPass, dir, "")
}

func checkHistory(cfg *config.Config) checkResult {
	if !cfg.History.Enabled {
		return newCheck("history", checkPass, "disabled in configuration", "")
	}
	if _, err := history.NewStore("", cfg.History.MaxEntries); err != nil {
		return newCheck("history", checkWarn, err.Error(),
			"delete the history file and retry")
	}
	return newCheck("history", checkPass, "history store loads", "")
}

func checkTerminal() checkResult {
	if !IsStdoutTTY() {
		return newCheck("terminal", checkWarn, "stdout is not a terminal", "")
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return newCheck("terminal", checkWarn, "no color support detected",
			"unset NO_COLOR or use a color-capable terminal")
	}
	return newCheck("terminal", checkPass, "color output available", "")
}
