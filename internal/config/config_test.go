// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[diff]
tool = "delta"
timeout_secs = 30
side_by_side = false

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Diff.TimeoutSecs != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.Diff.TimeoutSecs)
	}
	if cfg.Diff.SideBySide {
		t.Error("Expected side_by_side disabled")
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Expected light theme, got %q", cfg.UI.Theme)
	}
	// Unspecified fields keep their defaults.
	if cfg.Diff.ContextLines != 3 {
		t.Errorf("Expected default context lines, got %d", cfg.Diff.ContextLines)
	}
	if cfg.Watch.DebounceMs != 300 {
		t.Errorf("Expected default debounce, got %d", cfg.Watch.DebounceMs)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"diff": {"tool": "delta", "timeout_secs": 5}, "history": {"max_entries": 50}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Diff.TimeoutSecs != 5 {
		t.Errorf("Expected timeout 5, got %d", cfg.Diff.TimeoutSecs)
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("Expected max entries 50, got %d", cfg.History.MaxEntries)
	}
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[diff]
timeout_secs = 9999
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatal("Expected validation error for out-of-range timeout")
	}
	if !strings.Contains(err.Error(), "timeout_secs") {
		t.Errorf("Expected error to name the field, got: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty tool", func(c *Config) { c.Diff.Tool = "" }, "diff.tool"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"debounce too low", func(c *Config) { c.Watch.DebounceMs = 1 }, "watch.debounce_ms"},
		{"tree too narrow", func(c *Config) { c.UI.TreeWidth = 2 }, "ui.tree_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error for %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DIRDIFF_TOOL", "/opt/bin/delta")
	t.Setenv("DIRDIFF_TIMEOUT_SECS", "42")
	t.Setenv("DIRDIFF_THEME", "light")
	t.Setenv("DIRDIFF_NO_WATCH", "1")
	t.Setenv("DIRDIFF_NO_RENAMES", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Diff.Tool != "/opt/bin/delta" {
		t.Errorf("Expected tool override, got %q", cfg.Diff.Tool)
	}
	if cfg.Diff.TimeoutSecs != 42 {
		t.Errorf("Expected timeout override, got %d", cfg.Diff.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Expected theme override, got %q", cfg.UI.Theme)
	}
	if cfg.Watch.Enabled {
		t.Error("Expected watching disabled by DIRDIFF_NO_WATCH")
	}
	if cfg.Compare.DetectRenames {
		t.Error("Expected rename detection disabled by DIRDIFF_NO_RENAMES")
	}
}

func TestGetSet_DotNotation(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("diff.tool")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "delta" {
		t.Errorf("Expected delta, got %v", val)
	}

	if err := cfg.Set("diff.timeout_secs", "25"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cfg.Diff.TimeoutSecs != 25 {
		t.Errorf("Expected 25, got %d", cfg.Diff.TimeoutSecs)
	}

	if err := cfg.Set("ui.compact_mode", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !cfg.UI.CompactMode {
		t.Error("Expected compact mode enabled")
	}

	if _, err := cfg.Get("nonsense.key"); err == nil {
		t.Error("Expected error for unknown key")
	}
	if err := cfg.Set("diff.nope", "x"); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestGetAllKeys_Resolvable(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Key %q does not resolve: %v", key, err)
		}
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	// Point the config dir at a temp home so Save does not touch the real one.
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Diff.TimeoutSecs = 77
	cfg.UI.Theme = "light"

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Diff.TimeoutSecs != 77 {
		t.Errorf("Expected timeout 77 after round trip, got %d", loaded.Diff.TimeoutSecs)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("Expected light theme after round trip, got %q", loaded.UI.Theme)
	}
}

// TestConfig_ConcurrentAccess verifies Global() and SetGlobal() are safe to
// call concurrently. Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	SetGlobal(Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if cfg := Global(); cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}
