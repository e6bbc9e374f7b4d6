// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements command parsing and the one-shot commands for
dirdiff.

# Key Types

  - Command - Which top-level command to run
  - Args - Parsed global flags plus the directory pair
  - CommandError - Error carrying its process exit code

# Usage

	cmd, args := cli.Parse()
	switch cmd {
	case cli.CmdTree:
	        err = cli.HandleTree(cfg, args)
	...
	}

Handlers return errors; main maps them to exit codes with ExitCode and
prints them with PrintError. Interactive mode lives in internal/ui/app,
not here.
*/
package cli
