// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists the list of recently compared directory pairs.
//
// Entries live in a single JSON file under ~/.dirdiff and are written
// atomically so a crash mid-save never corrupts the list. Recording an
// existing pair bumps it to the front instead of duplicating it.
//
// # Key Types
//
//   - Entry: One remembered directory pair
//   - Store: Load/record/trim operations over the JSON file
//
// # Usage
//
//	store, err := history.NewStore("", 20)
//	if err == nil {
//	    store.Record(leftDir, rightDir)
//	}
package history
