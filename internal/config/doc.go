// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// dirdiff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - DiffConfig: External tool and rendering behavior
//   - CompareConfig: Tree comparison behavior
//   - UIConfig: Terminal UI settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DIRDIFF_*)
//   - ~/.dirdiff/config.toml
//   - ~/.dirdiff/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	tool := cfg.Diff.Tool
//	timeout := cfg.Diff.Timeout()
package config
