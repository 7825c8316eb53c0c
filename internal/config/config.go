// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/taskmgr-tui/internal/util"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config is the top-level configuration for taskmgr.
type Config struct {
	// Version of the configuration format
	Version string `toml:"version" json:"version"`

	UI   UIConfig   `toml:"ui" json:"ui"`
	Keys KeysConfig `toml:"keys" json:"keys"`
	Log  LogConfig  `toml:"log" json:"log"`
}

// UIConfig contains appearance settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme" json:"theme"`
	// Placeholder is shown in the empty input field
	Placeholder string `toml:"placeholder" json:"placeholder"`
	// CharLimit caps the length of a single task
	CharLimit int `toml:"char_limit" json:"char_limit"`
	// ASCII replaces Unicode glyphs with plain ASCII
	ASCII bool `toml:"ascii" json:"ascii"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// ShowHelp shows the one-line key help under the list
	ShowHelp bool `toml:"show_help" json:"show_help"`
}

// KeysConfig lists the keys bound to each list action. Key names follow
// Bubble Tea's KeyMsg.String() ("enter", "ctrl+d", " " for space). Submit
// keys are added to enter, which always commits the input.
type KeysConfig struct {
	Submit []string `toml:"submit" json:"submit"`
	Toggle []string `toml:"toggle" json:"toggle"`
	Remove []string `toml:"remove" json:"remove"`
	Quit   []string `toml:"quit" json:"quit"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so log lines
// only go to a file.
type LogConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		UI: UIConfig{
			Theme:       "auto",
			Placeholder: "What needs to be done?",
			CharLimit:   500,
			ASCII:       false,
			AltScreen:   true,
			ShowHelp:    true,
		},

		Keys: KeysConfig{
			Submit: []string{"enter"},
			Toggle: []string{" ", "x"},
			Remove: []string{"d", "delete"},
			Quit:   []string{"q"},
		},

		Log: LogConfig{
			Enabled: false,
			Path:    "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the taskmgr configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".taskmgr"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the configured log path, or taskmgr.log in the config
// directory when none is set.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskmgr.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default location.
// Tries TOML first, then JSON, and falls back to defaults. Environment
// overrides are applied last. When a file exists but cannot be used, the
// defaults are returned together with the error so the caller can warn.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			return finish(Default()), err
		}
		return cfg, nil
	}

	return finish(Default()), nil
}

// LoadFromPath loads configuration from a specific file with full
// validation. Files ending in .json are parsed as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// finish applies env overrides and defaults to a config that did not come
// from a file.
func finish(cfg *Config) *Config {
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		// A bad env value must not stop startup
		fallback := Default()
		fallback.Log = cfg.Log
		return fallback
	}
	return cfg
}

// LoadTOML decodes a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if strings.TrimSpace(c.UI.Theme) == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Placeholder == "" {
		c.UI.Placeholder = defaults.UI.Placeholder
	}
	if c.UI.CharLimit == 0 {
		c.UI.CharLimit = defaults.UI.CharLimit
	}

	if len(c.Keys.Submit) == 0 {
		c.Keys.Submit = defaults.Keys.Submit
	}
	if len(c.Keys.Toggle) == 0 {
		c.Keys.Toggle = defaults.Keys.Toggle
	}
	if len(c.Keys.Remove) == 0 {
		c.Keys.Remove = defaults.Keys.Remove
	}
	if len(c.Keys.Quit) == 0 {
		c.Keys.Quit = defaults.Keys.Quit
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration as TOML with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration as indented JSON with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFileAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders the configuration as a commented TOML document.
func (c *Config) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# taskmgr configuration file\n")
	buf.WriteString("# Generated by taskmgr - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// String returns the configuration as TOML, for `taskmgr config show`.
func (c *Config) String() string {
	data, err := c.EncodeTOML()
	if err != nil {
		return fmt.Sprintf("# error: %v\n", err)
	}
	return string(data)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// MaxCharLimit is the largest accepted ui.char_limit.
const MaxCharLimit = 10000

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.UI.CharLimit < 1 || c.UI.CharLimit > MaxCharLimit {
		errs = append(errs, ValidationError{
			Field:   "ui.char_limit",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxCharLimit, c.UI.CharLimit),
		})
	}

	bindings := []struct {
		field string
		keys  []string
	}{
		{"keys.submit", c.Keys.Submit},
		{"keys.toggle", c.Keys.Toggle},
		{"keys.remove", c.Keys.Remove},
		{"keys.quit", c.Keys.Quit},
	}
	for _, b := range bindings {
		for _, k := range b.keys {
			if k == "" {
				errs = append(errs, ValidationError{Field: b.field, Message: "empty key name"})
			}
		}
	}

	// The input field needs every printable key
	for _, k := range c.Keys.Submit {
		if IsTextKey(k) {
			errs = append(errs, ValidationError{
				Field:   "keys.submit",
				Message: fmt.Sprintf("key %s types into the input field", strconv.Quote(k)),
			})
		}
	}

	// Toggle, remove and quit share the list context, so they must not overlap
	owner := make(map[string]string)
	for _, b := range bindings[1:] {
		for _, k := range b.keys {
			if prev, ok := owner[k]; ok && prev != b.field {
				errs = append(errs, ValidationError{
					Field:   b.field,
					Message: fmt.Sprintf("key %s is already bound by %s", strconv.Quote(k), prev),
				})
				continue
			}
			owner[k] = b.field
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsTextKey reports whether k is a single printable character, which a text
// field consumes as input.
func IsTextKey(k string) bool {
	if utf8.RuneCountInString(k) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(k)
	return unicode.IsPrint(r)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - TASKMGR_THEME: overrides ui.theme
//   - TASKMGR_PLACEHOLDER: overrides ui.placeholder
//   - TASKMGR_ASCII: "1"/"true" enables ASCII symbols
//   - TASKMGR_LOG: log file path; setting it enables logging
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("TASKMGR_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if placeholder := os.Getenv("TASKMGR_PLACEHOLDER"); placeholder != "" {
		c.UI.Placeholder = placeholder
	}

	if ascii := os.Getenv("TASKMGR_ASCII"); ascii != "" {
		c.UI.ASCII = parseBool(ascii)
	}

	if logPath := os.Getenv("TASKMGR_LOG"); logPath != "" {
		c.Log.Enabled = true
		c.Log.Path = logPath
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
