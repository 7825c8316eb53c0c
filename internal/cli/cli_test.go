// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/taskmgr-tui/internal/config"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		bools    []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"tui", "--theme", "dark"},
			wantSub: "tui",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("theme") != "dark" {
					t.Errorf("Flag(theme) = %q, want %q", p.Flag("theme"), "dark")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"--config=/tmp/a.toml"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("config") != "/tmp/a.toml" {
					t.Errorf("Flag(config) = %q, want %q", p.Flag("config"), "/tmp/a.toml")
				}
			},
		},
		{
			name:    "boolean flag does not take the next argument",
			args:    []string{"--ascii", "tui"},
			bools:   []string{"ascii"},
			wantSub: "tui",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("ascii") {
					t.Error("BoolFlag(ascii) should be true")
				}
			},
		},
		{
			name:    "explicit boolean value",
			args:    []string{"--ascii=false"},
			bools:   []string{"ascii"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("ascii") {
					t.Error("BoolFlag(ascii) should be false")
				}
				if !p.HasFlag("ascii") {
					t.Error("HasFlag(ascii) should be true")
				}
			},
		},
		{
			name:    "double dash ends flags",
			args:    []string{"config", "--", "--not-a-flag"},
			wantSub: "config",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(1) != "--not-a-flag" {
					t.Errorf("Positional(1) = %q, want %q", p.Positional(1), "--not-a-flag")
				}
				if p.HasFlag("not-a-flag") {
					t.Error("arguments after -- must not be flags")
				}
			},
		},
		{
			name:    "trailing flag without value is boolean",
			args:    []string{"config", "init", "--force"},
			wantSub: "config",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("force") {
					t.Error("BoolFlag(force) should be true")
				}
				if p.PositionalCount() != 2 {
					t.Errorf("PositionalCount() = %d, want 2", p.PositionalCount())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args, tt.bools...)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_PositionalBounds(t *testing.T) {
	p := NewArgParser([]string{"config", "show"})

	if p.Positional(-1) != "" || p.Positional(5) != "" {
		t.Error("out of range Positional() should return empty string")
	}
	if got := p.PositionalFrom(1); len(got) != 1 || got[0] != "show" {
		t.Errorf("PositionalFrom(1) = %v, want [show]", got)
	}
	if got := p.PositionalFrom(9); len(got) != 0 {
		t.Errorf("PositionalFrom(9) = %v, want empty", got)
	}
	if p.FlagOrDefault("theme", "auto") != "auto" {
		t.Error("FlagOrDefault should return the default for a missing flag")
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		if v, err := ParseBoolString(s); err != nil || !v {
			t.Errorf("ParseBoolString(%q) = %v, %v; want true", s, v, err)
		}
	}
	for _, s := range []string{"false", "No", "n", "0", "off"} {
		if v, err := ParseBoolString(s); err != nil || v {
			t.Errorf("ParseBoolString(%q) = %v, %v; want false", s, v, err)
		}
	}
	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("ParseBoolString(maybe) should fail")
	}
}

// =============================================================================
// COMMAND PARSING TESTS (cli.go)
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		args    []string
		wantCmd Command
		wantSub string
	}{
		{nil, CmdTUI, ""},
		{[]string{"tui"}, CmdTUI, ""},
		{[]string{"TUI"}, CmdTUI, ""},
		{[]string{"version"}, CmdVersion, ""},
		{[]string{"--version"}, CmdVersion, ""},
		{[]string{"help"}, CmdHelp, ""},
		{[]string{"-h"}, CmdHelp, ""},
		{[]string{"--help", "config"}, CmdHelp, ""},
		{[]string{"config"}, CmdConfig, ConfigShow},
		{[]string{"config", "path"}, CmdConfig, ConfigPath},
		{[]string{"config", "init", "--force"}, CmdConfig, ConfigInit},
	}

	for _, tt := range tests {
		cmd, args, err := ParseArgs(tt.args)
		if err != nil {
			t.Errorf("ParseArgs(%v) error: %v", tt.args, err)
			continue
		}
		if cmd != tt.wantCmd {
			t.Errorf("ParseArgs(%v) cmd = %v, want %v", tt.args, cmd, tt.wantCmd)
		}
		if args.Subcommand != tt.wantSub {
			t.Errorf("ParseArgs(%v) subcommand = %q, want %q", tt.args, args.Subcommand, tt.wantSub)
		}
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args, err := ParseArgs([]string{
		"--config", "/tmp/tasks.toml", "--theme", "DARK", "--ascii", "--no-alt-screen", "--log", "/tmp/t.log", "tui",
	})
	if err != nil {
		t.Fatalf("ParseArgs() error: %v", err)
	}
	if cmd != CmdTUI {
		t.Errorf("cmd = %v, want tui", cmd)
	}
	if args.ConfigPath != "/tmp/tasks.toml" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}
	if args.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", args.Theme)
	}
	if !args.ASCII || !args.NoAltScreen {
		t.Errorf("ASCII = %v, NoAltScreen = %v; want both true", args.ASCII, args.NoAltScreen)
	}
	if args.LogPath != "/tmp/t.log" {
		t.Errorf("LogPath = %q", args.LogPath)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := [][]string{
		{"bogus"},
		{"--bogus"},
		{"--theme", "neon"},
		{"--config"},
		{"config", "delete"},
	}

	for _, argv := range tests {
		_, _, err := ParseArgs(argv)
		if err == nil {
			t.Errorf("ParseArgs(%v) should fail", argv)
			continue
		}
		if GetExitCode(err) != ExitUsageError {
			t.Errorf("ParseArgs(%v) exit code = %d, want %d", argv, GetExitCode(err), ExitUsageError)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	ApplyFlags(cfg, Args{Theme: "light", ASCII: true, NoAltScreen: true, LogPath: "/tmp/x.log"})

	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	if !cfg.UI.ASCII {
		t.Error("ASCII should be true")
	}
	if cfg.UI.AltScreen {
		t.Error("AltScreen should be false")
	}
	if !cfg.Log.Enabled || cfg.Log.Path != "/tmp/x.log" {
		t.Errorf("Log = %+v, want enabled with path", cfg.Log)
	}

	untouched := config.Default()
	ApplyFlags(untouched, Args{})
	if untouched.UI.Theme != config.Default().UI.Theme || !untouched.UI.AltScreen {
		t.Error("empty Args should not change the config")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"TASKMGR_THEME", "TASKMGR_PLACEHOLDER", "TASKMGR_ASCII", "TASKMGR_LOG"} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_BadFileFallsBack(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is = = not toml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(Args{ConfigPath: path})
	if err == nil {
		t.Fatal("LoadConfig() should report the bad file")
	}
	if cfg == nil || cfg.UI.Placeholder != config.Default().UI.Placeholder {
		t.Errorf("LoadConfig() should fall back to defaults, got %+v", cfg)
	}
}

// =============================================================================
// COMMAND HANDLER TESTS
// =============================================================================

func TestHandleConfig_InitShowPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	args := Args{ConfigPath: path, Subcommand: ConfigInit}

	var out bytes.Buffer
	if err := HandleConfig(&out, args); err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("config init output = %q, want the path", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Second init refuses to overwrite
	if err := HandleConfig(&out, args); err == nil {
		t.Error("config init should refuse to overwrite without --force")
	}
	args.Force = true
	if err := HandleConfig(&out, args); err != nil {
		t.Errorf("config init --force error: %v", err)
	}

	out.Reset()
	if err := HandleConfig(&out, Args{ConfigPath: path, Subcommand: ConfigShow, Theme: "light"}); err != nil {
		t.Fatalf("config show error: %v", err)
	}
	shown := out.String()
	if !strings.Contains(shown, "# taskmgr configuration file") {
		t.Errorf("config show missing header:\n%s", shown)
	}
	if !strings.Contains(shown, `theme = "light"`) {
		t.Errorf("config show should include flag overrides:\n%s", shown)
	}

	out.Reset()
	if err := HandleConfig(&out, Args{ConfigPath: path, Subcommand: ConfigPath}); err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out.String()), path)
	}
}

func TestHandleConfig_InitJSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")

	var out bytes.Buffer
	if err := HandleConfig(&out, Args{ConfigPath: path, Subcommand: ConfigInit}); err != nil {
		t.Fatalf("config init error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("config.json is not JSON: %v", err)
	}
	if _, ok := decoded["ui"]; !ok {
		t.Error("config.json missing ui section")
	}
}

func TestHandleVersion(t *testing.T) {
	var out bytes.Buffer
	if err := HandleVersion(&out, Args{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "taskmgr version "+Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if err := HandleVersion(&out, Args{JSON: true}); err != nil {
		t.Fatal(err)
	}
	var resp struct {
		Success bool        `json:"success"`
		Data    VersionData `json:"data"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("version --json output is not JSON: %v", err)
	}
	if !resp.Success || resp.Data.Version != Version {
		t.Errorf("version --json = %+v", resp)
	}
}

func TestHandleHelp(t *testing.T) {
	var out bytes.Buffer
	HandleHelp(&out)

	for _, want := range []string{"taskmgr config init", "--theme", "Version: " + Version} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

// =============================================================================
// ERROR TESTS (errors.go)
// =============================================================================

func TestDisplayError(t *testing.T) {
	var out bytes.Buffer
	DisplayError(&out, errors.New("boom"))
	if !strings.Contains(out.String(), "Error:") || !strings.Contains(out.String(), "boom") {
		t.Errorf("DisplayError output = %q", out.String())
	}

	out.Reset()
	DisplayError(&out, nil)
	if out.Len() != 0 {
		t.Errorf("DisplayError(nil) wrote %q", out.String())
	}
}

func TestGetExitCode(t *testing.T) {
	if GetExitCode(nil) != ExitSuccess {
		t.Error("nil error should exit 0")
	}
	if GetExitCode(errors.New("x")) != ExitGeneralError {
		t.Error("plain error should exit 1")
	}
	wrapped := NewCommandError("config", "init", "bad", NewValidationError("flag", "--x", "unknown"))
	if GetExitCode(wrapped) != ExitUsageError {
		t.Error("wrapped validation error should exit 2")
	}
	if GetExitCode(&TTYRequiredError{Operation: "run"}) != ExitGeneralError {
		t.Error("TTY error should exit 1")
	}
}
