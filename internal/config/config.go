// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// dirdiff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.dirdiff/config.toml
//   - ~/.dirdiff/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/dirdiff-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete dirdiff configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Diff rendering configuration
	Diff DiffConfig `toml:"diff" json:"diff"`

	// Tree comparison configuration
	Compare CompareConfig `toml:"compare" json:"compare"`

	// Filesystem watching configuration
	Watch WatchConfig `toml:"watch" json:"watch"`

	// Recent-pair history configuration
	History HistoryConfig `toml:"history" json:"history"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// DiffConfig controls the external highlighter and diff rendering.
type DiffConfig struct {
	// Tool is the external highlighter binary, name or full path.
	Tool string `toml:"tool" json:"tool"`
	// TimeoutSecs bounds a single tool invocation in seconds.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
	// ContextLines is the hunk context width in collapsed mode.
	ContextLines int `toml:"context_lines" json:"context_lines"`
	// SideBySide renders two panes instead of a unified stream.
	SideBySide bool `toml:"side_by_side" json:"side_by_side"`
	// LineNumbers includes line number gutters.
	LineNumbers bool `toml:"line_numbers" json:"line_numbers"`
	// Collapsed limits hunks to ContextLines of context.
	Collapsed bool `toml:"collapsed" json:"collapsed"`
	// ShowWhitespace marks trailing spaces and tabs with visible glyphs.
	ShowWhitespace bool `toml:"show_whitespace" json:"show_whitespace"`
}

// Timeout returns TimeoutSecs as a duration.
func (d DiffConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSecs) * time.Second
}

// CompareConfig controls directory tree comparison.
type CompareConfig struct {
	// DetectRenames pairs deleted and added files with identical content.
	DetectRenames bool `toml:"detect_renames" json:"detect_renames"`
}

// WatchConfig controls live filesystem watching.
type WatchConfig struct {
	// Enabled turns on automatic re-compare when watched roots change.
	Enabled bool `toml:"enabled" json:"enabled"`
	// DebounceMs is the quiet period after the last event before a
	// re-compare fires.
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// Debounce returns DebounceMs as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// HistoryConfig controls the recent directory-pair list.
type HistoryConfig struct {
	// Enabled turns recent-pair persistence on.
	Enabled bool `toml:"enabled" json:"enabled"`
	// MaxEntries caps how many pairs are remembered.
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// SyntaxHighlight enables syntax highlighting in the file preview.
	SyntaxHighlight bool `toml:"syntax_highlight" json:"syntax_highlight"`
	// TreeWidth is the sidebar width in columns.
	TreeWidth int `toml:"tree_width" json:"tree_width"`
	// CompactMode uses a more compact UI layout.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Diff: DiffConfig{
			Tool:         "delta",
			TimeoutSecs:  10,
			ContextLines: 3,
			SideBySide:   true,
			LineNumbers:  true,
			Collapsed:    true,
		},

		Compare: CompareConfig{
			DetectRenames: true,
		},

		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 300,
		},

		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 20,
		},

		UI: UIConfig{
			Theme:           "dark",
			SyntaxHighlight: true,
			TreeWidth:       36,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the dirdiff configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".dirdiff"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// finishLoad applies env overrides, defaults, and validation in order.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# dirdiff configuration file")
	fmt.Fprintln(file, "# Generated by dirdiff - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// Atomic write with fsync prevents data loss on crash.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Diff.Tool == "" {
		errs = append(errs, ValidationError{
			Field:   "diff.tool",
			Message: "must not be empty",
		})
	}
	if c.Diff.TimeoutSecs < 1 || c.Diff.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "diff.timeout_secs",
			Message: fmt.Sprintf("must be 1-300, got %d", c.Diff.TimeoutSecs),
		})
	}
	if c.Diff.ContextLines < 0 || c.Diff.ContextLines > 100 {
		errs = append(errs, ValidationError{
			Field:   "diff.context_lines",
			Message: fmt.Sprintf("must be 0-100, got %d", c.Diff.ContextLines),
		})
	}

	if c.Watch.DebounceMs < 10 || c.Watch.DebounceMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: fmt.Sprintf("must be 10-10000, got %d", c.Watch.DebounceMs),
		})
	}

	if c.History.MaxEntries < 1 || c.History.MaxEntries > 1000 {
		errs = append(errs, ValidationError{
			Field:   "history.max_entries",
			Message: fmt.Sprintf("must be 1-1000, got %d", c.History.MaxEntries),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}
	if c.UI.TreeWidth < 16 || c.UI.TreeWidth > 120 {
		errs = append(errs, ValidationError{
			Field:   "ui.tree_width",
			Message: fmt.Sprintf("must be 16-120, got %d", c.UI.TreeWidth),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value
// configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Diff.Tool == "" {
		c.Diff.Tool = defaults.Diff.Tool
	}
	if c.Diff.TimeoutSecs == 0 {
		c.Diff.TimeoutSecs = defaults.Diff.TimeoutSecs
	}
	if c.Diff.ContextLines == 0 {
		c.Diff.ContextLines = defaults.Diff.ContextLines
	}

	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = defaults.Watch.DebounceMs
	}

	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.TreeWidth == 0 {
		c.UI.TreeWidth = defaults.UI.TreeWidth
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DIRDIFF_TOOL: overrides diff.tool
//   - DIRDIFF_TIMEOUT_SECS: overrides diff.timeout_secs
//   - DIRDIFF_CONTEXT_LINES: overrides diff.context_lines
//   - DIRDIFF_THEME: overrides ui.theme
//   - DIRDIFF_NO_WATCH: set to "1" or "true" to disable watching
//   - DIRDIFF_NO_RENAMES: set to "1" or "true" to disable rename detection
func (c *Config) ApplyEnvOverrides() {
	if tool := os.Getenv("DIRDIFF_TOOL"); tool != "" {
		c.Diff.Tool = tool
	}

	if secs := os.Getenv("DIRDIFF_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.Diff.TimeoutSecs = n
		}
	}

	if lines := os.Getenv("DIRDIFF_CONTEXT_LINES"); lines != "" {
		if n, err := strconv.Atoi(lines); err == nil {
			c.Diff.ContextLines = n
		}
	}

	if theme := os.Getenv("DIRDIFF_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if noWatch := os.Getenv("DIRDIFF_NO_WATCH"); noWatch != "" {
		c.Watch.Enabled = !(noWatch == "1" || strings.ToLower(noWatch) == "true")
	}

	if noRenames := os.Getenv("DIRDIFF_NO_RENAMES"); noRenames != "" {
		c.Compare.DetectRenames = !(noRenames == "1" || strings.ToLower(noRenames) == "true")
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "diff.tool").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "diff.tool").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go
// field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type
// conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// CLI input arrives as strings; convert to the field's type.
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"diff.tool",
		"diff.timeout_secs",
		"diff.context_lines",
		"diff.side_by_side",
		"diff.line_numbers",
		"diff.collapsed",
		"diff.show_whitespace",
		"compare.detect_renames",
		"watch.enabled",
		"watch.debounce_ms",
		"history.enabled",
		"history.max_entries",
		"ui.theme",
		"ui.syntax_highlight",
		"ui.tree_width",
		"ui.compact_mode",
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
