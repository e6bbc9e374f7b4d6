// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for dirdiff.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdTree
	CmdDiff
	CmdExport
	CmdConfig
	CmdHistory
	CmdDoctor
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	NoColor bool
	NoWatch bool

	// Directory pair for tui/tree/diff
	Left  string
	Right string

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Format     string
	Output     string

	// Raw args remaining after global flag parsing
	Raw []string
}

const usageText = `dirdiff - side-by-side directory diff for the terminal

Dirdiff compares two directory trees and shows per-file diffs, highlighted
by delta when it is installed and by a builtin renderer otherwise.

Usage:
  dirdiff <left> <right>           Open the interactive viewer (default)
  dirdiff tree <left> <right>      Print the change tree and exit
  dirdiff diff <left> <right>      Print rendered diffs and exit
  dirdiff export <left> <right>    Write a diff report file
  dirdiff config [show|get|set]    Configuration
  dirdiff history [list|clear]     Recently compared pairs
  dirdiff doctor                   Environment diagnostics
  dirdiff version                  Version information

Global Flags:
  --json          Machine-readable output (tree, doctor, history)
  --no-color      Disable colored output
  --no-watch      Do not watch the roots for changes
  --quiet, -q     Suppress non-essential output
  --verbose, -v   Verbose output

Examples:
  dirdiff ./v1 ./v2                Browse changes between two checkouts
  dirdiff tree ./v1 ./v2 --json    Change tree for scripts
  dirdiff diff ./v1 ./v2           Full diff to stdout (pipe to a pager)
  dirdiff export ./v1 ./v2 --format html
  dirdiff config set diff.tool delta
  dirdiff doctor                   Check that delta is reachable

Keys (interactive viewer):
  j/k move    Enter open    n/p hunk    Tab pane    s split    c context
  l numbers   w whitespace  r refresh   q quit
`

// PrintUsage writes the top-level usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion writes version information.
func PrintVersion() {
	fmt.Printf("dirdiff %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse reads os.Args and returns the command to run with its arguments.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

func parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdHelp, args
	}

	// Two bare paths mean "open the viewer on this pair".
	if len(remaining) == 2 && !isCommandWord(remaining[0]) {
		args.Left, args.Right = remaining[0], remaining[1]
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui", "view":
		takePair(&args, remaining)
		return CmdTUI, args

	case "tree", "ls":
		takePair(&args, remaining)
		return CmdTree, args

	case "diff":
		takePair(&args, remaining)
		// Optional third positional narrows the diff to one file.
		if p := positionals(remaining); len(p) > 2 {
			args.Subcommand = p[2]
		}
		return CmdDiff, args

	case "export":
		takePair(&args, parseValueFlags(&args, remaining))
		return CmdExport, args

	case "config":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "history":
		if len(remaining) > 0 {
			args.Subcommand = remaining[0]
		}
		return CmdHistory, args

	case "doctor", "diag":
		return CmdDoctor, args

	case "version", "--version", "-V":
		return CmdVersion, args

	case "help", "--help", "-h":
		return CmdHelp, args
	}

	// Unknown word: treat a lone path as a usage error rather than guessing.
	return CmdHelp, args
}

// parseGlobalFlags strips flags that apply to every command.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	for _, a := range argv {
		switch a {
		case "--json":
			args.JSON = true
		case "--no-color":
			args.NoColor = true
		case "--no-watch":
			args.NoWatch = true
		case "--quiet", "-q":
			args.Quiet = true
		case "--verbose", "-v":
			args.Verbose = true
		default:
			remaining = append(remaining, a)
		}
	}

	return remaining, args
}

// takePair pulls the first two positional arguments as the directory pair.
func takePair(args *Args, remaining []string) {
	positional := positionals(remaining)
	if len(positional) > 0 {
		args.Left = positional[0]
	}
	if len(positional) > 1 {
		args.Right = positional[1]
	}
}

// parseValueFlags reads --format/--out in both "--flag value" and
// "--flag=value" forms, returning the arguments left over.
func parseValueFlags(args *Args, remaining []string) []string {
	set := func(name, value string) bool {
		switch name {
		case "format":
			args.Format = value
		case "out":
			args.Output = value
		default:
			return false
		}
		return true
	}

	var rest []string
	for i := 0; i < len(remaining); i++ {
		a := remaining[i]
		if name, value, ok := strings.Cut(strings.TrimPrefix(a, "--"), "="); ok && strings.HasPrefix(a, "--") {
			if set(name, value) {
				continue
			}
		}
		if strings.HasPrefix(a, "--") && i+1 < len(remaining) {
			if set(strings.TrimPrefix(a, "--"), remaining[i+1]) {
				i++
				continue
			}
		}
		rest = append(rest, a)
	}
	return rest
}

func positionals(remaining []string) []string {
	var out []string
	for _, a := range remaining {
		if !strings.HasPrefix(a, "-") {
			out = append(out, a)
		}
	}
	return out
}

// parseConfigArgs handles "config [show|get|set|reset] [key] [value]".
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = remaining[0]
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}

func isCommandWord(s string) bool {
	switch strings.ToLower(s) {
	case "tui", "view", "tree", "ls", "diff", "config", "history",
		"doctor", "diag", "version", "help":
		return true
	}
	return false
}
