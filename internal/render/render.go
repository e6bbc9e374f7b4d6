// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/dirdiff-tui/internal/diff"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrorType classifies render failures for callers that branch on cause.
type ErrorType int

const (
	// ErrNotFound means a requested file does not exist
	ErrNotFound ErrorType = iota
	// ErrPermission means a file could not be read
	ErrPermission
	// ErrNoInput means neither side of the pair was given
	ErrNoInput
	// ErrLaunch means the external tool failed to start
	ErrLaunch
	// ErrTimeout means the external tool exceeded its deadline
	ErrTimeout
	// ErrExit means the external tool exited with an unexpected status
	ErrExit
	// ErrBinary means content was refused for text display: binary bytes,
	// invalid encoding, or an oversized file
	ErrBinary
)

// Error wraps a render failure with its classification.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options are the per-render knobs a viewer can toggle. Width rides along
// per call so renderers stay free of mutable shared state.
type Options struct {
	SideBySide     bool // Ask the external tool for a two-pane layout
	LineNumbers    bool // Include line number gutters
	Collapsed      bool // Limit hunks to a few context lines instead of the whole file
	ShowWhitespace bool // Mark trailing spaces and tabs with visible glyphs
	Width          int  // Total terminal width for side-by-side output; zero means unset
}

// contextExpanded stands in for "the whole file" when hunks are not
// collapsed. Any value larger than the longest file works.
const contextExpanded = 1 << 20

// collapsedDefault is the context width used when no explicit value is
// configured.
const collapsedDefault = 3

// =============================================================================
// RAW DIFF
// =============================================================================

// RawDiff is the captured output of one render plus the flags needed to
// present it honestly.
type RawDiff struct {
	Output     string // Raw stream: ANSI-styled or plain unified text
	Unified    string // The unified diff the stream was produced from
	Tool       string // Name of the renderer that produced Output
	Plain      bool   // True when the builtin fallback produced Output
	Binary     bool   // True when either side failed text detection
	HasChanges bool   // True when the pair's contents differ
	HunkCount  int    // Number of hunks in the underlying line diff
	Advisory   string // Non-empty when an external tool was skipped or degraded
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer turns a unified diff into a display stream. Implementations must
// be safe for concurrent use; the viewer renders from multiple goroutines.
type Renderer interface {
	// Name identifies the renderer in results and diagnostics.
	Name() string

	// Available reports whether the renderer can run right now.
	Available() bool

	// Render produces the display stream for a unified diff. The context
	// bounds the whole invocation.
	Render(ctx context.Context, unified string, opts Options) (string, error)
}

// FallbackRenderer emits the unified diff unchanged. It is always available
// and never fails, which makes it the floor every render can degrade to.
type FallbackRenderer struct{}

func (FallbackRenderer) Name() string { return "builtin" }

func (FallbackRenderer) Available() bool { return true }

func (FallbackRenderer) Render(_ context.Context, unified string, _ Options) (string, error) {
	return unified, nil
}

// =============================================================================
// INVOKER
// =============================================================================

// Invoker reads a file pair, computes its diff, and routes it through the
// preferred renderer with fallback to the builtin one.
type Invoker struct {
	external     Renderer
	fallback     Renderer
	contextLines int
}

// NewInvoker builds an invoker around an optional external renderer.
// external may be nil, in which case everything renders plain.
// contextLines controls collapsed-mode hunk context; zero or negative means
// the default of 3.
func NewInvoker(external Renderer, contextLines int) *Invoker {
	if contextLines <= 0 {
		contextLines = collapsedDefault
	}
	return &Invoker{
		external:     external,
		fallback:     FallbackRenderer{},
		contextLines: contextLines,
	}
}

// Render diffs the pair at leftPath/rightPath and produces a display stream.
// An empty path means that side does not exist (added or deleted file).
//
// Binary pairs short-circuit with Binary set and no stream. Identical pairs
// short-circuit with HasChanges false. External tool timeouts are reported
// as errors; launch and exit failures degrade to the builtin renderer with
// an advisory.
func (inv *Invoker) Render(ctx context.Context, leftPath, rightPath string, opts Options) (*RawDiff, error) {
	if leftPath == "" && rightPath == "" {
		return nil, &Error{Type: ErrNoInput, Message: "no file on either side"}
	}

	oldData, err := readSide(leftPath)
	if err != nil {
		return nil, err
	}
	newData, err := readSide(rightPath)
	if err != nil {
		return nil, err
	}

	if isBinary(oldData) || isBinary(newData) {
		return &RawDiff{
			Binary:     true,
			HasChanges: !bytes.Equal(oldData, newData),
		}, nil
	}

	contextLines := contextExpanded
	if opts.Collapsed {
		contextLines = inv.contextLines
	}

	d := diff.Compute(diffLabel(leftPath, rightPath), string(oldData), string(newData), contextLines)
	if !d.HasChanges() {
		return &RawDiff{Tool: inv.fallback.Name()}, nil
	}

	unified := diff.FormatUnified(d)
	if opts.ShowWhitespace {
		unified = markWhitespace(unified)
	}

	renderer := inv.fallback
	advisory := ""
	if inv.external != nil && inv.external.Available() {
		renderer = inv.external
	} else if inv.external != nil {
		advisory = fmt.Sprintf("%s not installed, using builtin renderer", inv.external.Name())
	}

	out, err := renderer.Render(ctx, unified, opts)
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) && rerr.Type == ErrTimeout {
			return nil, err
		}
		// Launch or exit failure: degrade rather than show nothing.
		advisory = fmt.Sprintf("%s failed (%v), using builtin renderer", renderer.Name(), err)
		renderer = inv.fallback
		out, _ = renderer.Render(ctx, unified, opts)
	}

	return &RawDiff{
		Output:     out,
		Unified:    unified,
		Tool:       renderer.Name(),
		Plain:      renderer == inv.fallback,
		HasChanges: true,
		HunkCount:  len(d.Hunks),
		Advisory:   advisory,
	}, nil
}

// readSide loads one side of the pair. An empty path is a legitimate missing
// side and yields nil content.
func readSide(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Type: ErrNotFound, Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		if os.IsPermission(err) {
			return nil, &Error{Type: ErrPermission, Message: fmt.Sprintf("cannot read %s", path), Cause: err}
		}
		return nil, &Error{Type: ErrPermission, Message: fmt.Sprintf("cannot read %s", path), Cause: err}
	}
	return data, nil
}

// diffLabel picks the path shown in unified headers. The right side wins
// because that is the file the user is moving toward.
func diffLabel(leftPath, rightPath string) string {
	if rightPath != "" {
		return rightPath
	}
	return leftPath
}

// binarySniffLen bounds how much of a file the text check inspects.
const binarySniffLen = 8000

// isBinary applies the classic NUL-byte sniff over the file head. Empty
// content is text.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// =============================================================================
// WHITESPACE MARKING
// =============================================================================

// markWhitespace rewrites changed lines of a unified diff so invisible
// differences become visible: trailing spaces render as middle dots and
// tabs as arrows. Context lines and headers pass through untouched.
func markWhitespace(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "@@") {
			continue
		}
		if line[0] != '+' && line[0] != '-' {
			continue
		}
		lines[i] = line[:1] + markLineWhitespace(line[1:])
	}
	return strings.Join(lines, "\n")
}

func markLineWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\t", "→   ")

	trimmed := strings.TrimRight(s, " ")
	if trailing := len(s) - len(trimmed); trailing > 0 {
		s = trimmed + strings.Repeat("·", trailing)
	}
	return s
}
