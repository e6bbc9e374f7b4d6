// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - One-shot diff rendering to stdout.
//
// Command: diff <left> <right>
//
// Compares the roots and prints every changed file's rendered diff in
// sequence, the way git shows a multi-file patch. A third argument narrows
// the output to one relative path. Output keeps delta's styling on a TTY
// and falls back to plain unified text when piped.
//
// Examples:
//   dirdiff diff ./v1 ./v2
//   dirdiff diff ./v1 ./v2 src/main.go
//   dirdiff diff ./v1 ./v2 | less -R
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
	"github.com/jeranaias/dirdiff-tui/internal/viewer"
)

// HandleDiff runs the diff command.
func HandleDiff(cfg *config.Config, args Args) error {
	if args.Left == "" || args.Right == "" {
		return UsageError("diff requires two directories: dirdiff diff <left> <right>")
	}

	v := viewer.New(cfg)
	v.SetWidth(GetTerminalWidth())

	tree, err := v.FileTree(args.Left, args.Right)
	if err != nil {
		return err
	}
	if tree.TotalChanges == 0 {
		if !args.Quiet {
			fmt.Println("no differences")
		}
		return nil
	}

	color := ColorEnabled(args.NoColor)
	profile := termenv.ColorProfile()
	if !color {
		profile = termenv.Ascii
	}

	opts := v.DefaultOptions()
	ctx := context.Background()

	files := tree.Files
	if args.Subcommand != "" {
		files = nil
		for _, f := range tree.Files {
			if f.Path == args.Subcommand {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			return NotFoundError(args.Subcommand)
		}
	}

	var advisoryShown bool
	for _, f := range files {
		res, err := v.Diff(ctx, f.LeftPath, f.RightPath, opts)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", f.Path, err)
		}

		printFileHeader(f, color)
		switch {
		case res.Binary && res.Identical:
			fmt.Println("binary files are identical")
		case res.Binary:
			fmt.Println("binary files differ")
		case res.Identical:
			fmt.Println("files are identical")
		case res.Markup != nil:
			fmt.Println(strings.TrimRight(res.Markup.ANSI(profile), "\n"))
		default:
			fmt.Println(strings.TrimRight(res.Unified, "\n"))
		}
		fmt.Println()

		if res.Advisory != "" && !advisoryShown && !args.Quiet {
			PrintError(fmt.Errorf("%s", res.Advisory))
			advisoryShown = true
		}
	}

	return nil
}

func printFileHeader(f compare.FileEntry, color bool) {
	symbol := f.Status.Symbol()
	header := fmt.Sprintf("%s %s", symbol, f.Path)
	rule := strings.Repeat("=", len(header))
	if color {
		header = styles.StatusStyle(symbol).Render(header)
	}
	fmt.Printf("%s\n%s\n", header, rule)
}
