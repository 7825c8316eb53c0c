// taskmgr - A task list in your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/cli"
	"github.com/jeranaias/taskmgr-tui/internal/config"
	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
	"github.com/jeranaias/taskmgr-tui/internal/ui/todo"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err != nil {
		cli.DisplayError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}

	switch cmd {
	case cli.CmdHelp:
		cli.HandleHelp(os.Stdout)
	case cli.CmdVersion:
		err = cli.HandleVersion(os.Stdout, args)
	case cli.CmdConfig:
		err = cli.HandleConfig(os.Stdout, args)
	default:
		err = runTUI(args)
	}

	if err != nil {
		if args.JSON {
			cli.NewJSONErrorResponse(cmd.String(), err).Write(os.Stdout)
		} else {
			cli.DisplayError(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

// runTUI starts the task manager.
func runTUI(args cli.Args) error {
	if err := cli.RequiresTerminal("start the task manager"); err != nil {
		return err
	}

	// A bad config file is reported and replaced by the defaults
	cfg, err := cli.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	cli.ApplyFlags(cfg, args)

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("APP_START | version=%s theme=%s ascii=%t alt_screen=%t",
		Version, cfg.UI.Theme, cfg.UI.ASCII, cfg.UI.AltScreen)

	theme := styles.NewThemeWithMode(cfg.UI.Theme)
	theme.SetASCII(cfg.UI.ASCII)
	theme.SetSize(cli.GetTerminalSize())
	m := todo.New(cfg, theme)

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	watchDone := startConfigWatcher(ctx, p, args)

	_, runErr := p.Run()

	cancel()
	<-watchDone

	if runErr != nil {
		return fmt.Errorf("error running taskmgr: %w", runErr)
	}
	log.Printf("APP_EXIT | ok=true")
	return nil
}

// setupLogging sends the standard logger to the configured file, or
// discards it. The TUI owns the terminal, so nothing is logged there.
func setupLogging(cfg *config.Config) (func(), error) {
	if !cfg.Log.Enabled {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := tea.LogToFile(path, "taskmgr")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// startConfigWatcher reloads the config file on change and forwards it to the
// program. The returned channel is closed once the watcher has stopped.
func startConfigWatcher(ctx context.Context, p *tea.Program, args cli.Args) <-chan struct{} {
	done := make(chan struct{})

	path, err := watchedConfigPath(args)
	if err != nil {
		log.Printf("CONFIG_WATCH_DISABLED | error=%v", err)
		close(done)
		return done
	}

	send := todo.ConfigReloadCallback(p.Send)
	w, err := config.NewWatcher(path, config.DefaultReloadDebounce, func(cfg *config.Config, err error) {
		if cfg != nil {
			// Flags keep winning over the file
			cli.ApplyFlags(cfg, args)
		}
		send(cfg, err)
	})
	if err != nil {
		log.Printf("CONFIG_WATCH_DISABLED | path=%s error=%v", path, err)
		close(done)
		return done
	}
	log.Printf("CONFIG_WATCH | path=%s", w.Path())

	go func() {
		defer close(done)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("CONFIG_WATCH_STOPPED | path=%s error=%v", w.Path(), err)
		}
	}()
	return done
}

// watchedConfigPath returns the config file to follow: --config, or the
// first existing default file, or the default TOML path.
func watchedConfigPath(args cli.Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	for _, pathFn := range []func() (string, error){config.ConfigPathTOML, config.ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			return "", err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return path, nil
		}
	}
	return config.ConfigPathTOML()
}
