// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"
)

// =============================================================================
// PATCH EXPORTER
// =============================================================================

// PatchExporter concatenates the unified diffs of every text file into one
// patch stream. Binary pairs are noted the way git notes them.
type PatchExporter struct{}

// NewPatchExporter creates a patch exporter.
func NewPatchExporter() *PatchExporter {
	return &PatchExporter{}
}

// FileExtension returns "patch".
func (e *PatchExporter) FileExtension() string { return "patch" }

// MimeType returns the plain-text MIME type.
func (e *PatchExporter) MimeType() string { return "text/x-patch" }

// Export renders the patch stream.
func (e *PatchExporter) Export(report *Report) ([]byte, error) {
	var sb strings.Builder

	for _, f := range report.Files {
		switch {
		case f.Identical:
			continue
		case f.Binary:
			sb.WriteString("Binary files differ: ")
			sb.WriteString(f.Path)
			sb.WriteString("\n")
		default:
			sb.WriteString(strings.TrimRight(f.Unified, "\n"))
			sb.WriteString("\n")
		}
	}

	return []byte(sb.String()), nil
}
