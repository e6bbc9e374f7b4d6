// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup converts terminal escape-sequence streams into structured
// styled markup and derives presentation layouts from it.
//
// The converter is a single-pass state machine over the raw stream: SGR
// sequences update a flat set of active style attributes, plain text
// accumulates into runs, and every newline closes the open run. Styling is
// self-contained per line; no attribute persists across a line break unless
// the stream re-asserts it. Subprocess output is untrusted, so malformed or
// truncated sequences are absorbed as inert text and never fail conversion.
//
// # Key Types
//
//   - Style: Flat set of active SGR attributes
//   - Run: Maximal stretch of text sharing one style
//   - Line / Document: Converted per-line markup
//   - Columns: Row-aligned side-by-side split of a document
//   - HunkMark: Start row of a contiguous change region
//
// # Usage
//
// Convert captured highlighter output and index its hunks:
//
//	doc := markup.Convert(rawOutput)
//	marks := markup.IndexHunks(doc)
//	cols := markup.SplitUnified(doc)
package markup
