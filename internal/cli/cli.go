// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for taskmgr.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/jeranaias/taskmgr-tui/internal/config"
	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdVersion
	CmdConfig
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdVersion:
		return "version"
	case CmdConfig:
		return "config"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Config subcommands.
const (
	ConfigShow = "show"
	ConfigPath = "path"
	ConfigInit = "init"
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string // --config: explicit config file
	Theme       string // --theme: auto, dark or light
	ASCII       bool   // --ascii: plain ASCII glyphs
	NoAltScreen bool   // --no-alt-screen: draw inline
	LogPath     string // --log: write the debug log here
	JSON        bool   // --json: machine-readable output for version

	// Command-specific
	Subcommand string
	Force      bool // --force: config init overwrites an existing file

	// Raw args (remaining after the command name)
	Raw []string
}

// boolFlags are the flags that never take a value.
var boolFlags = []string{"ascii", "no-alt-screen", "json", "force", "help", "h", "version"}

// valueFlags are the flags that take a value.
var valueFlags = []string{"config", "theme", "log"}

const usageText = `taskmgr - a task list in your terminal

Usage:
  taskmgr                    Start the task manager (default)
  taskmgr tui                Start the task manager
  taskmgr version            Show version information
  taskmgr config show        Print the effective configuration as TOML
  taskmgr config path        Print the configuration file path
  taskmgr config init        Write a default configuration file

Flags:
  --config PATH              Use this config file (.toml or .json)
  --theme auto|dark|light    Override the color theme
  --ascii                    Use plain ASCII glyphs
  --no-alt-screen            Draw inline instead of the alternate screen
  --log PATH                 Write the debug log to PATH
  --json                     JSON output (version)
  --force                    Overwrite an existing file (config init)
  -h, --help                 Show this help

Keys:
  enter                      Add the typed task
  tab / shift+tab            Move between input, Add button and list
  space, x / d, delete       Toggle / delete the selected task
  ? or f1                    Show all keys
  q, ctrl+c                  Quit

Environment:
  TASKMGR_THEME, TASKMGR_PLACEHOLDER, TASKMGR_ASCII, TASKMGR_LOG
  NO_COLOR disables colors.

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "taskmgr version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name).
func ParseArgs(argv []string) (Command, Args, error) {
	p := NewArgParser(argv, boolFlags...)

	if err := checkFlags(p); err != nil {
		return CmdHelp, Args{}, err
	}

	args := Args{
		ConfigPath:  p.Flag("config"),
		Theme:       strings.ToLower(p.Flag("theme")),
		ASCII:       p.BoolFlag("ascii"),
		NoAltScreen: p.BoolFlag("no-alt-screen"),
		LogPath:     p.Flag("log"),
		JSON:        p.BoolFlag("json"),
		Force:       p.BoolFlag("force"),
		Raw:         p.PositionalFrom(1),
	}

	if args.Theme != "" {
		switch args.Theme {
		case styles.ModeAuto, styles.ModeDark, styles.ModeLight:
		default:
			return CmdHelp, args, NewValidationErrorWithExample("theme", args.Theme,
				"must be auto, dark or light", "taskmgr --theme dark")
		}
	}

	if p.BoolFlag("help") || p.BoolFlag("h") {
		return CmdHelp, args, nil
	}
	if p.BoolFlag("version") {
		return CmdVersion, args, nil
	}

	cmd := strings.ToLower(p.Subcommand())
	switch cmd {
	case "", "tui":
		return CmdTUI, args, nil

	case "version":
		return CmdVersion, args, nil

	case "help":
		return CmdHelp, args, nil

	case "config":
		args.Subcommand = strings.ToLower(p.Positional(1))
		if args.Subcommand == "" {
			args.Subcommand = ConfigShow
		}
		switch args.Subcommand {
		case ConfigShow, ConfigPath, ConfigInit:
			return CmdConfig, args, nil
		}
		return CmdConfig, args, NewValidationErrorWithExample("config subcommand", args.Subcommand,
			"must be show, path or init", "taskmgr config show")

	default:
		return CmdHelp, args, NewValidationErrorWithExample("command", cmd,
			"unknown command", "taskmgr --help")
	}
}

// checkFlags rejects flags taskmgr does not know, and value flags given
// without a value.
func checkFlags(p *ArgParser) error {
	known := make(map[string]bool, len(boolFlags)+len(valueFlags))
	for _, name := range boolFlags {
		known[name] = true
	}
	for _, name := range valueFlags {
		known[name] = true
	}

	names := p.FlagNames()
	sort.Strings(names)
	for _, name := range names {
		if !known[name] {
			return NewValidationErrorWithExample("flag", "--"+name, "unknown flag", "taskmgr --help")
		}
	}
	for _, name := range valueFlags {
		if p.HasFlag(name) && p.Flag(name) == "" {
			return NewValidationError("flag", "--"+name, "requires a value")
		}
	}
	return nil
}

// =============================================================================
// CONFIG RESOLUTION
// =============================================================================

// LoadConfig loads the config named by --config, or the default config file.
// The returned config is always usable: on error it holds the defaults and
// the error describes what was skipped.
func LoadConfig(args Args) (*config.Config, error) {
	if args.ConfigPath == "" {
		return config.Load()
	}
	cfg, err := config.LoadFromPath(args.ConfigPath)
	if err != nil {
		fallback := config.Default()
		fallback.ApplyEnvOverrides()
		if fallback.Validate() != nil {
			fallback = config.Default()
		}
		return fallback, err
	}
	return cfg, nil
}

// ApplyFlags applies command-line overrides on top of cfg. Flags win over
// both the file and the environment.
func ApplyFlags(cfg *config.Config, args Args) {
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.ASCII {
		cfg.UI.ASCII = true
	}
	if args.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if args.LogPath != "" {
		cfg.Log.Enabled = true
		cfg.Log.Path = args.LogPath
	}
}

// ResolveConfigPath returns the file `config init` writes and the watcher
// follows: --config when given, otherwise the default TOML path.
func ResolveConfigPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// VersionData is the JSON payload of `taskmgr version --json`.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Write(w)
	}
	PrintVersion(w)
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp(w io.Writer) {
	PrintUsage(w)
}
