// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Diff report file generation.
//
// Command: export <left> <right> [flags]
//
// Flags:
//   --format html|json|patch   Output format (default html)
//   --out <dir>                Destination directory (default cwd)
//
// Examples:
//   dirdiff export ./v1 ./v2
//   dirdiff export ./v1 ./v2 --format patch --out /tmp/reports
package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/export"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// HandleExport runs the export command.
func HandleExport(cfg *config.Config, args Args) error {
	if args.Left == "" || args.Right == "" {
		return UsageError("export requires two directories: dirdiff export <left> <right>")
	}

	var exporter export.Exporter
	switch args.Format {
	case "", "html":
		exporter = export.NewHTMLExporter()
	case "json":
		exporter = export.NewJSONExporter()
	case "patch":
		exporter = export.NewPatchExporter()
	default:
		return UsageError("unknown format %q (want html, json, or patch)", args.Format)
	}

	v := viewer.New(cfg)
	v.SetWidth(GetTerminalWidth())

	report, err := export.BuildReport(context.Background(), v, args.Left, args.Right)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.OutputDir = args.Output

	path, err := export.ToFile(report, exporter, opts)
	if err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Println("wrote", path)
	}
	return nil
}
