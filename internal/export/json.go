// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders a report as indented JSON. Converted markup is not
// serialized; the unified text carries the diff content for machine use.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// FileExtension returns "json".
func (e *JSONExporter) FileExtension() string { return "json" }

// MimeType returns the JSON MIME type.
func (e *JSONExporter) MimeType() string { return "application/json" }

// Export marshals the report.
func (e *JSONExporter) Export(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return append(data, '\n'), nil
}
