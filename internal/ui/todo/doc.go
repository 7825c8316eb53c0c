// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package todo provides the task manager view for the TUI.

The Model owns a single *tasks.List. Key presses are resolved to an Action by
KeyMap.Resolve using the current Focus, and only the Model mutates the list:

	FocusInput      typing edits the pending input; enter adds a task
	FocusAddButton  enter or space adds a task
	FocusList       up/down select, space/x/enter toggle, d/delete remove

Tab and shift+tab cycle the focus; the list is skipped while it is empty.
ctrl+t and ctrl+d act on the selected task from any focus.

# Files

keys.go - Focus, Action, KeyMap and key resolution.
messages.go - ConfigReloadedMsg delivered by the config watcher.
model.go - Model construction, focus ring, layout and config changes.
update.go - Update loop and task actions.
view.go - Screen composition.

# Usage

	m := todo.New(cfg, theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package todo
