// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Message types the task manager accepts from outside the program loop.

package todo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/config"
)

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a config re-read from disk by the config
// watcher. Err is set when the file could not be loaded; the model then
// keeps its current settings.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ConfigReloadCallback returns a config.ReloadFunc that forwards reloads to
// send, typically (*tea.Program).Send.
func ConfigReloadCallback(send func(tea.Msg)) config.ReloadFunc {
	return func(cfg *config.Config, err error) {
		send(ConfigReloadedMsg{Config: cfg, Err: err})
	}
}
