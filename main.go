// dirdiff - A side-by-side directory diff viewer for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/dirdiff-tui/internal/cli"
	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	// Config problems only block commands that need the values; a broken
	// file still lets doctor and help run on defaults.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	if args.NoWatch {
		cfg.Watch.Enabled = false
	}
	config.SetGlobal(cfg)

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(cfg, args, cfgErr)

	case cli.CmdTree:
		err = cli.HandleTree(cfg, args)

	case cli.CmdDiff:
		err = cli.HandleDiff(cfg, args)

	case cli.CmdExport:
		err = cli.HandleExport(cfg, args)

	case cli.CmdConfig:
		err = cli.HandleConfig(cfg, args)

	case cli.CmdHistory:
		err = cli.HandleHistory(cfg, args)

	case cli.CmdDoctor:
		err = cli.HandleDoctor(cfg, args)

	case cli.CmdVersion:
		cli.PrintVersion()

	case cli.CmdHelp:
		cli.PrintUsage()

	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}

	if err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}

// runTUI validates the directory pair and starts the interactive viewer.
func runTUI(cfg *config.Config, args cli.Args, cfgErr error) error {
	if args.Left == "" || args.Right == "" {
		return cli.UsageError("expected two directories: dirdiff <left> <right>")
	}
	for _, dir := range []string{args.Left, args.Right} {
		info, err := os.Stat(dir)
		if err != nil {
			return cli.NotFoundError(dir)
		}
		if !info.IsDir() {
			return cli.UsageError("not a directory: %s", dir)
		}
	}

	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "dirdiff: config ignored: %v\n", cfgErr)
	}

	return app.Run(cfg, args.Left, args.Right)
}
