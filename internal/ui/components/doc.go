// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components for the taskmgr TUI.

Each component renders with a *styles.Theme and reads task state straight
from a *tasks.List, so counts and the empty state are derived on every
render and never cached.

# Components

Header (header.go) - "Task Manager" title band with active/completed badges.
InputArea (input.go) - Text input bound to the pending input, plus the Add button.
TaskList (task_list.go) - Task rows with toggle, text and delete control, or the empty state.
HelpBar (help.go) - One-line key help for the focused control (bubbles/help).
HelpOverlay (help.go) - Full key reference rendered from Markdown with glamour.
NoticeLine (notice.go) - Short-lived message under the list, e.g. a config reload result.

# Usage

	theme := styles.NewTheme()
	list := tasks.NewList()
	header := components.NewHeader(list, theme)
	rows := components.NewTaskList(list, theme)
	view := lipgloss.JoinVertical(lipgloss.Left, header.View(), rows.View())
*/
package components
