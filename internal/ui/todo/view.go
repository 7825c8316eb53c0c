// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package todo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskmgr-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the task manager: header, input, task rows and key help. The
// help overlay replaces the screen while open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.overlay.Visible() {
		overlay := m.overlay.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	sections := []string{
		m.header.View(),
		m.input.View(),
		m.rows.View(),
	}
	if notice := m.notice.View(); notice != "" {
		sections = append(sections, notice)
	}
	if help := m.helpBar.View(m.keys.ForFocus(m.focus, m.toggleDesc())); help != "" {
		sections = append(sections, help)
	}

	return m.theme.App.Render(strings.Join(sections, "\n\n"))
}

// toggleDesc returns the toggle label of the selected task while the list
// has focus.
func (m Model) toggleDesc() string {
	if m.focus != FocusList {
		return ""
	}
	task, ok := m.rows.Selected()
	if !ok {
		return ""
	}
	return components.ToggleLabel(task)
}

// lineCount returns the number of lines in a rendered block.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
