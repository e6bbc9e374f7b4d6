// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// =============================================================================
// DELTA RENDERER
// =============================================================================

// defaultTimeout bounds a single delta invocation. Diffs that take longer
// than this are pathological and get their process group killed.
const defaultTimeout = 10 * time.Second

// DeltaRenderer pipes unified diffs through the delta highlighter. The
// fields are fixed at construction; everything per-render arrives through
// Options, so one renderer serves concurrent callers.
type DeltaRenderer struct {
	// Command is the binary name or path, normally "delta".
	Command string
	// Timeout bounds each invocation; zero means defaultTimeout.
	Timeout time.Duration
	// Dark selects delta's dark color scheme.
	Dark bool
}

// NewDeltaRenderer returns a renderer for the delta binary found via PATH
// lookup or at an explicit path.
func NewDeltaRenderer(command string, timeout time.Duration, dark bool) *DeltaRenderer {
	if command == "" {
		command = "delta"
	}
	return &DeltaRenderer{Command: command, Timeout: timeout, Dark: dark}
}

func (r *DeltaRenderer) Name() string {
	return "delta"
}

// Available reports whether the delta binary resolves. This checks presence
// only; Probe verifies the binary actually runs.
func (r *DeltaRenderer) Available() bool {
	_, err := exec.LookPath(r.Command)
	return err == nil
}

// Probe runs `delta --version` and returns the reported version line. Used
// by doctor-style diagnostics, not by the render path.
func (r *DeltaRenderer) Probe(ctx context.Context) (string, error) {
	path, err := exec.LookPath(r.Command)
	if err != nil {
		return "", &Error{Type: ErrLaunch, Message: fmt.Sprintf("%s not found in PATH", r.Command), Cause: err}
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", &Error{Type: ErrLaunch, Message: fmt.Sprintf("%s --version failed", r.Command), Cause: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// args builds the delta command line for one render. File and hunk headers
// are suppressed so the stream carries only diff content; the viewer draws
// its own chrome.
func (r *DeltaRenderer) args(opts Options) []string {
	args := []string{
		"--paging=never",
		"--file-style", "omit",
		"--hunk-header-style", "omit",
	}
	if r.Dark {
		args = append(args, "--dark")
	}
	if opts.SideBySide {
		args = append(args, "--side-by-side")
	}
	if opts.LineNumbers {
		args = append(args, "--line-numbers")
	}
	if opts.Width > 0 {
		args = append(args, fmt.Sprintf("--width=%d", opts.Width))
	}
	return args
}

// Render feeds the unified diff to delta on stdin and captures the styled
// stream. The invocation runs in its own process group so a timeout can
// kill delta together with anything it spawned.
func (r *DeltaRenderer) Render(ctx context.Context, unified string, opts Options) (string, error) {
	path, err := exec.LookPath(r.Command)
	if err != nil {
		return "", &Error{Type: ErrLaunch, Message: fmt.Sprintf("%s not found in PATH", r.Command), Cause: err}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command(path, r.args(opts)...)
	cmd.Stdin = strings.NewReader(unified)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return "", &Error{Type: ErrLaunch, Message: fmt.Sprintf("failed to start %s", r.Command), Cause: err}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		killProcessGroup(cmd)
		<-done
		return "", &Error{
			Type:    ErrTimeout,
			Message: fmt.Sprintf("%s timed out after %s", r.Command, timeout),
			Cause:   ctx.Err(),
		}
	case err := <-done:
		if err != nil {
			// Exit status 1 is diff-tool convention for "differences
			// found" and carries valid output.
			if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 && stdout.Len() > 0 {
				return stdout.String(), nil
			}
			return "", &Error{
				Type:    ErrExit,
				Message: fmt.Sprintf("%s exited abnormally: %s", r.Command, strings.TrimSpace(stderr.String())),
				Cause:   err,
			}
		}
	}

	return stdout.String(), nil
}
