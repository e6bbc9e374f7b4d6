// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection and editing.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Print every key and its current value
//   get <key>           Print one value
//   set <key> <value>   Change a value and save
//   path                Print the config file location
//   reset               Rewrite the config file with defaults
//
// Examples:
//   dirdiff config show
//   dirdiff config get diff.tool
//   dirdiff config set diff.context_lines 5
//   dirdiff config set ui.theme light
package cli

import (
	"fmt"

	"github.com/jeranaias/dirdiff-tui/internal/config"
)

// HandleConfig runs the config command.
func HandleConfig(cfg *config.Config, args Args) error {
	switch args.Subcommand {
	case "", "show", "list":
		return configShow(cfg, args)
	case "get":
		return configGet(cfg, args)
	case "set":
		return configSet(cfg, args)
	case "path":
		return configPath()
	case "reset":
		return configReset()
	default:
		return UsageError("unknown config subcommand %q (want show, get, set, path, or reset)", args.Subcommand)
	}
}

func configShow(cfg *config.Config, args Args) error {
	keys := config.GetAllKeys()

	if args.JSON {
		values := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			v, err := cfg.Get(k)
			if err != nil {
				continue
			}
			values[k] = v
		}
		return NewJSONResponse("config show", values).Print()
	}

	for _, k := range keys {
		v, err := cfg.Get(k)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s = %v\n", k, v)
	}
	return nil
}

func configGet(cfg *config.Config, args Args) error {
	if args.ConfigKey == "" {
		return UsageError("config get requires a key, e.g. diff.tool")
	}
	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return ConfigError(err)
	}
	fmt.Printf("%v\n", v)
	return nil
}

func configSet(cfg *config.Config, args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return UsageError("config set requires a key and a value, e.g. diff.tool delta")
	}
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return ConfigError(err)
	}
	if err := cfg.Validate(); err != nil {
		return ConfigError(err)
	}
	if err := config.Save(cfg); err != nil {
		return ConfigError(err)
	}
	fmt.Printf("%s = %s\n", args.ConfigKey, args.ConfigVal)
	return nil
}

func configPath() error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return ConfigError(err)
	}
	fmt.Println(path)
	return nil
}

func configReset() error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return ConfigError(err)
	}
	if err := config.SaveTOML(config.Default(), path); err != nil {
		return ConfigError(err)
	}
	fmt.Println("configuration reset to defaults:", path)
	return nil
}
