// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for taskmgr.
//
// # Key Types
//
//   - Command: Enumeration of the CLI commands
//   - Args: Parsed command-line arguments
//   - ArgParser: Flag and positional argument splitting
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err)
//	    os.Exit(cli.GetExitCode(err))
//	}
//	switch cmd {
//	case cli.CmdVersion:
//	    err = cli.HandleVersion(os.Stdout, args)
//	case cli.CmdConfig:
//	    err = cli.HandleConfig(os.Stdout, args)
//	}
//
// # Commands
//
//   - tui: Run the task manager (default)
//   - version: Version information, optionally as JSON
//   - config: show, path and init
package cli
