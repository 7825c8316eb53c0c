// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The "config" command: show, path and init.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/taskmgr-tui/internal/config"
)

// HandleConfig runs a config subcommand, writing its output to w.
func HandleConfig(w io.Writer, args Args) error {
	switch args.Subcommand {
	case ConfigShow, "":
		return handleConfigShow(w, args)
	case ConfigPath:
		return handleConfigPath(w, args)
	case ConfigInit:
		return handleConfigInit(w, args)
	default:
		return NewValidationError("config subcommand", args.Subcommand, "must be show, path or init")
	}
}

// handleConfigShow prints the effective configuration: file, environment
// and flags combined.
func handleConfigShow(w io.Writer, args Args) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return NewCommandError("config", "show", "could not load config", err)
	}
	ApplyFlags(cfg, args)

	data, err := cfg.EncodeTOML()
	if err != nil {
		return NewCommandError("config", "show", "could not encode config", err)
	}
	_, err = w.Write(data)
	return err
}

// handleConfigPath prints the config file path and whether it exists.
func handleConfigPath(w io.Writer, args Args) error {
	path, err := ResolveConfigPath(args)
	if err != nil {
		return NewCommandError("config", "path", "could not resolve config path", err)
	}

	fmt.Fprintln(w, path)
	if _, statErr := os.Stat(path); statErr != nil {
		StderrPrint("%s\n", DimStyle.Render("(file does not exist; run `taskmgr config init`)"))
	}
	return nil
}

// handleConfigInit writes a default config file. An existing file is only
// replaced with --force.
func handleConfigInit(w io.Writer, args Args) error {
	path, err := ResolveConfigPath(args)
	if err != nil {
		return NewCommandError("config", "init", "could not resolve config path", err)
	}

	if _, statErr := os.Stat(path); statErr == nil && !args.Force {
		return NewCommandError("config", "init", "file already exists (use --force to overwrite)",
			fmt.Errorf("%s", path))
	}

	cfg := config.Default()
	if isJSONPath(path) {
		err = config.SaveJSON(cfg, path)
	} else {
		err = config.SaveTOML(cfg, path)
	}
	if err != nil {
		return NewCommandError("config", "init", "could not write config", err)
	}

	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("Wrote"), path)
	return nil
}

// isJSONPath reports whether path names a JSON config file.
func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
