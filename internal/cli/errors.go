// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for dirdiff CLI commands.
//
// Commands always return errors; main decides how to display them and which
// exit code to use.
package cli

import (
	"errors"
	"fmt"
	"os"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates a path was not found
	ExitNotFoundError = 7
	// ExitTimeoutError indicates the external tool timed out
	ExitTimeoutError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError is a CLI error carrying its exit code.
type CommandError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommandError) Unwrap() error { return e.Cause }

// UsageError builds an invalid-usage error.
func UsageError(format string, a ...interface{}) *CommandError {
	return &CommandError{Code: ExitUsageError, Message: fmt.Sprintf(format, a...)}
}

// NotFoundError builds a missing-path error.
func NotFoundError(path string) *CommandError {
	return &CommandError{Code: ExitNotFoundError, Message: "path not found: " + path}
}

// ConfigError wraps a configuration failure.
func ConfigError(cause error) *CommandError {
	return &CommandError{Code: ExitConfigError, Message: "configuration error", Cause: cause}
}

// ExitCode extracts the exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ExitGeneralError
}

// PrintError writes an error to stderr in a consistent format.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "dirdiff: %v\n", err)
}
