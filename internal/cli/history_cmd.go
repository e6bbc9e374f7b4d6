// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Recently compared directory pairs.
//
// Command: history [subcommand]
//
// Subcommands:
//   list (default)      Show recent pairs, most recent first
//   clear               Forget all recorded pairs
//
// Examples:
//   dirdiff history
//   dirdiff history --json
//   dirdiff history clear
package cli

import (
	"fmt"

	"github.com/jeranaias/dirdiff-tui/internal/config"
	"github.com/jeranaias/dirdiff-tui/internal/history"
)

// HandleHistory runs the history command.
func HandleHistory(cfg *config.Config, args Args) error {
	store, err := history.NewStore("", cfg.History.MaxEntries)
	if err != nil {
		return err
	}

	switch args.Subcommand {
	case "", "list", "show":
		return historyList(store, args)
	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		if !args.Quiet {
			fmt.Println("history cleared")
		}
		return nil
	default:
		return UsageError("unknown history subcommand %q (want list or clear)", args.Subcommand)
	}
}

func historyList(store *history.Store, args Args) error {
	entries := store.Recent()

	if args.JSON {
		return NewJSONResponse("history list", entries).Print()
	}

	if len(entries) == 0 {
		fmt.Println("no comparisons recorded")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s <-> %s  (%d uses)\n",
			e.LastUsed.Format("2006-01-02 15:04"),
			e.LeftPath, e.RightPath, e.UseCount)
	}
	return nil
}
