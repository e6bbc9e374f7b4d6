// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/dirdiff-tui/internal/markup"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// =============================================================================
// REPORT MODEL
// =============================================================================

// Counts summarizes a comparison.
type Counts struct {
	Total    int `json:"total"`
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Modified int `json:"modified"`
	Renamed  int `json:"renamed"`
}

// FileReport is one rendered file pair inside a report.
type FileReport struct {
	Path      string `json:"path"`
	Status    string `json:"status"`
	Tool      string `json:"tool"`
	Binary    bool   `json:"binary"`
	Identical bool   `json:"identical"`
	HunkCount int    `json:"hunk_count"`
	Unified   string `json:"unified,omitempty"`

	// Doc is the converted render, nil for binary pairs.
	Doc *markup.Document `json:"-"`
}

// Report is one complete comparison ready for export.
type Report struct {
	Left        string       `json:"left"`
	Right       string       `json:"right"`
	GeneratedAt time.Time    `json:"generated_at"`
	Counts      Counts       `json:"counts"`
	Files       []FileReport `json:"files"`
}

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// Exporter renders a report in one output format.
type Exporter interface {
	// Export renders the report to bytes.
	Export(report *Report) ([]byte, error)

	// FileExtension returns the extension without the dot.
	FileExtension() string

	// MimeType returns the format's MIME type.
	MimeType() string
}

// Options controls where report files land.
type Options struct {
	// OutputDir is the destination directory. Empty means the working
	// directory.
	OutputDir string

	// Timestamp appends the generation time to the filename.
	Timestamp bool
}

// DefaultOptions returns options that write a timestamped file to the
// working directory.
func DefaultOptions() *Options {
	return &Options{Timestamp: true}
}

// =============================================================================
// REPORT BUILDING
// =============================================================================

// BuildReport compares a pair and renders every changed file through the
// viewer. Render failures on individual files abort the report; a report
// with silently missing files would be worse than no report.
func BuildReport(ctx context.Context, v *viewer.Viewer, leftDir, rightDir string) (*Report, error) {
	tree, err := v.FileTree(leftDir, rightDir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Left:        leftDir,
		Right:       rightDir,
		GeneratedAt: time.Now(),
		Counts: Counts{
			Total:    tree.TotalChanges,
			Added:    tree.Added,
			Deleted:  tree.Deleted,
			Modified: tree.Modified,
			Renamed:  tree.Renamed,
		},
	}

	opts := v.DefaultOptions()
	for _, f := range tree.Files {
		res, err := v.Diff(ctx, f.LeftPath, f.RightPath, opts)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.Path, err)
		}
		report.Files = append(report.Files, FileReport{
			Path:      f.Path,
			Status:    f.Status.String(),
			Tool:      res.Tool,
			Binary:    res.Binary,
			Identical: res.Identical,
			HunkCount: res.HunkCount,
			Unified:   res.Unified,
			Doc:       res.Markup,
		})
	}

	return report, nil
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// ToFile writes a rendered report and returns the path it wrote.
func ToFile(report *Report, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	data, err := exporter.Export(report)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	name := sanitizeFilename(filepath.Base(report.Left) + "-vs-" + filepath.Base(report.Right))
	if opts.Timestamp {
		name += report.GeneratedAt.Format("-20060102-150405")
	}
	name += "." + exporter.FileExtension()

	path := name
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		path = filepath.Join(opts.OutputDir, name)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// sanitizeFilename strips characters that are unsafe in filenames.
func sanitizeFilename(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	out := sb.String()
	if out == "" {
		return "dirdiff-report"
	}
	return out
}
