// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tree_cmd.go - One-shot change tree listing.
//
// Command: tree <left> <right>
// Aliases: ls
//
// Prints the merged change tree with status markers and a summary line,
// then exits. With --json, emits the full comparison result instead.
//
// Examples:
//   dirdiff tree ./v1 ./v2
//   dirdiff tree ./v1 ./v2 --json | jq '.data.counts'
package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/dirdiff-tui/internal/compare"
	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/ui/styles"
)

// treeJSON is the --json payload for the tree command.
type treeJSON struct {
	Left   string           `json:"left"`
	Right  string           `json:"right"`
	Counts treeCounts       `json:"counts"`
	Files  []treeFileJSON   `json:"files"`
}

type treeCounts struct {
	Total    int `json:"total"`
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Modified int `json:"modified"`
	Renamed  int `json:"renamed"`
}

type treeFileJSON struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// HandleTree runs the tree command.
func HandleTree(cfg *config.Config, args Args) error {
	if args.Left == "" || args.Right == "" {
		return UsageError("tree requires two directories: dirdiff tree <left> <right>")
	}

	res, err := compare.DirectoriesWithOptions(args.Left, args.Right, compare.Options{
		DetectRenames: cfg.Compare.DetectRenames,
	})
	if err != nil {
		return err
	}

	if args.JSON {
		payload := treeJSON{
			Left:  args.Left,
			Right: args.Right,
			Counts: treeCounts{
				Total:    res.TotalChanges,
				Added:    res.Added,
				Deleted:  res.Deleted,
				Modified: res.Modified,
				Renamed:  res.Renamed,
			},
		}
		for _, f := range res.Files {
			payload.Files = append(payload.Files, treeFileJSON{
				Path:   f.Path,
				Status: f.Status.String(),
			})
		}
		return NewJSONResponse("tree", payload).Print()
	}

	color := ColorEnabled(args.NoColor)
	printTreeNodes(res.Tree, 0, color)

	if !args.Quiet {
		fmt.Println(summaryLine(res, color))
	}
	return nil
}

func printTreeNodes(nodes []*compare.TreeNode, depth int, color bool) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		symbol := " "
		if n.Status != nil {
			symbol = n.Status.Symbol()
		}
		if color && symbol != " " {
			symbol = styles.StatusStyle(symbol).Render(symbol)
		}

		name := n.Name
		if n.IsDir {
			name += "/"
		}
		if n.Err != "" {
			name += "  (" + n.Err + ")"
		}

		fmt.Printf("%s%s %s\n", indent, symbol, name)
		if n.IsDir {
			printTreeNodes(n.Children, depth+1, color)
		}
	}
}

func summaryLine(res *compare.Result, color bool) string {
	seg := func(symbol string, n int) string {
		s := fmt.Sprintf("%s%d", symbol, n)
		if color {
			return styles.StatusStyle(symbol).Render(s)
		}
		return s
	}

	parts := []string{
		seg("+", res.Added),
		seg("-", res.Deleted),
		seg("~", res.Modified),
	}
	if res.Renamed > 0 {
		parts = append(parts, seg(">", res.Renamed))
	}
	return fmt.Sprintf("\n%d changed: %s", res.TotalChanges, strings.Join(parts, " "))
}
