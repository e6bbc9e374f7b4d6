// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/markup"
	"github.com/jeranaias/dirdiff-tui/internal/render"
)

// maxRawFileSize bounds how much of a file the raw preview will load.
const maxRawFileSize = 10 << 20

// =============================================================================
// DIFF RESULT
// =============================================================================

// DiffResult is one rendered file pair, ready for display.
type DiffResult struct {
	// ID uniquely identifies this render.
	ID string
	// Generation is the counter value this render was started under.
	// Results whose generation no longer matches the viewer's are stale.
	Generation uint64

	// File is the display path for the pair.
	File string

	// Markup is the converted output stream. Nil for binary or identical
	// pairs.
	Markup *markup.Document
	// Columns is the two-pane split, when the render mode produces one.
	Columns *markup.Columns
	// Hunks indexes change regions in Markup for navigation.
	Hunks []markup.HunkMark
	// HunkCount always equals len(Hunks); it exists as a plain count for
	// status display and serialized reports.
	HunkCount int

	// Unified is the unified diff text the render was produced from.
	Unified string

	Tool      string
	Plain     bool
	Binary    bool
	Identical bool
	Advisory  string
}

// =============================================================================
// VIEWER
// =============================================================================

// Viewer bundles comparison and rendering behind one API. Safe for
// concurrent use.
type Viewer struct {
	cfg   *config.Config
	delta *render.DeltaRenderer
	inv   *render.Invoker

	generation atomic.Uint64
	width      atomic.Int64
}

// New creates a viewer from configuration.
func New(cfg *config.Config) *Viewer {
	if cfg == nil {
		cfg = config.Default()
	}

	delta := render.NewDeltaRenderer(
		cfg.Diff.Tool,
		cfg.Diff.Timeout(),
		cfg.UI.Theme != "light",
	)

	return &Viewer{
		cfg:   cfg,
		delta: delta,
		inv:   render.NewInvoker(delta, cfg.Diff.ContextLines),
	}
}

// DefaultOptions returns the render options the configuration asks for.
func (v *Viewer) DefaultOptions() render.Options {
	return render.Options{
		SideBySide:     v.cfg.Diff.SideBySide,
		LineNumbers:    v.cfg.Diff.LineNumbers,
		Collapsed:      v.cfg.Diff.Collapsed,
		ShowWhitespace: v.cfg.Diff.ShowWhitespace,
	}
}

// SetWidth records the current terminal width so side-by-side panes fill
// it. Renders pick the value up per call; resizes never touch a render in
// flight.
func (v *Viewer) SetWidth(width int) {
	v.width.Store(int64(width))
}

// =============================================================================
// OPERATIONS
// =============================================================================

// FileTree compares two directory roots and returns the merged change tree.
func (v *Viewer) FileTree(leftDir, rightDir string) (*compare.Result, error) {
	return compare.DirectoriesWithOptions(leftDir, rightDir, compare.Options{
		DetectRenames: v.cfg.Compare.DetectRenames,
	})
}

// Diff renders one file pair under the current generation. An empty path
// means that side of the pair does not exist.
func (v *Viewer) Diff(ctx context.Context, leftPath, rightPath string, opts render.Options) (*DiffResult, error) {
	return v.DiffAt(ctx, v.generation.Load(), leftPath, rightPath, opts)
}

// DiffAt renders one file pair under an explicit generation token. UI
// callers pass the value NextGeneration returned, so the result carries
// the token its request was issued under even when another request starts
// in between.
func (v *Viewer) DiffAt(ctx context.Context, gen uint64, leftPath, rightPath string, opts render.Options) (*DiffResult, error) {
	opts.Width = int(v.width.Load())

	raw, err := v.inv.Render(ctx, leftPath, rightPath, opts)
	if err != nil {
		return nil, err
	}

	res := &DiffResult{
		ID:         uuid.NewString(),
		Generation: gen,
		File:       displayPath(leftPath, rightPath),
		Unified:    raw.Unified,
		Tool:       raw.Tool,
		Plain:      raw.Plain,
		Binary:     raw.Binary,
		Identical:  !raw.HasChanges,
		HunkCount:  raw.HunkCount,
		Advisory:   raw.Advisory,
	}

	if raw.Binary || !raw.HasChanges {
		return res, nil
	}

	doc := markup.Convert(raw.Output)
	res.Markup = doc
	res.Hunks = markup.IndexHunks(doc)
	// The marks are what n/p navigates, so they are also what gets counted.
	// The line-diff count disagrees in expanded mode, where the wide context
	// merges separate edits into one unified hunk.
	res.HunkCount = len(res.Hunks)

	switch {
	case raw.Plain:
		res.Columns = markup.SplitUnified(doc)
	case opts.SideBySide:
		res.Columns = markup.SplitSideBySide(doc)
	}

	return res, nil
}

// ToolAvailable probes the external highlighter and reports its version
// line when it runs.
func (v *Viewer) ToolAvailable(ctx context.Context) (bool, string) {
	version, err := v.delta.Probe(ctx)
	if err != nil {
		return false, ""
	}
	return true, version
}

// RawFile reads a file for plain preview. Binary content and oversized
// files are refused rather than garbled. Failures carry the render error
// taxonomy so callers can classify them like any other pipeline error.
func (v *Viewer) RawFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &render.Error{Type: render.ErrNotFound, Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", &render.Error{Type: render.ErrPermission, Message: fmt.Sprintf("cannot stat %s", path), Cause: err}
	}
	if info.Size() > maxRawFileSize {
		return "", &render.Error{Type: render.ErrBinary, Message: fmt.Sprintf("file too large for preview: %s (%d bytes)", path, info.Size())}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &render.Error{Type: render.ErrPermission, Message: fmt.Sprintf("cannot read %s", path), Cause: err}
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", &render.Error{Type: render.ErrBinary, Message: fmt.Sprintf("not a text file: %s", path)}
	}
	return string(data), nil
}

// =============================================================================
// GENERATION GUARD
// =============================================================================

// Generation returns the current render generation.
func (v *Viewer) Generation() uint64 {
	return v.generation.Load()
}

// NextGeneration advances the counter, invalidating in-flight renders, and
// returns the new value.
func (v *Viewer) NextGeneration() uint64 {
	return v.generation.Add(1)
}

// IsStale reports whether a result from generation gen should be discarded.
func (v *Viewer) IsStale(gen uint64) bool {
	return gen != v.generation.Load()
}

// displayPath picks the path a result is labeled with. The right side wins
// because that is the tree the user is moving toward.
func displayPath(leftPath, rightPath string) string {
	if rightPath != "" {
		return rightPath
	}
	return leftPath
}
