// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskmgr-tui/internal/tasks"
	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title band with task count badges
// =============================================================================

// DefaultTitle is the header title.
const DefaultTitle = "Task Manager"

// Header renders the title band. Badges appear only while the list has tasks.
type Header struct {
	Title string
	Width int
	list  *tasks.List
	theme *styles.Theme
}

// NewHeader creates a Header for list.
func NewHeader(list *tasks.List, theme *styles.Theme) *Header {
	return &Header{
		Title: DefaultTitle,
		Width: 60,
		list:  list,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Badges returns the badge labels, e.g. ["2 active", "1 completed"], or nil
// when the list is empty.
func (h *Header) Badges() []string {
	if h.list == nil || h.list.IsEmpty() {
		return nil
	}
	return []string{
		fmt.Sprintf("%d active", h.list.ActiveCount()),
		fmt.Sprintf("%d completed", h.list.CompletedCount()),
	}
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	title := h.theme.HeaderTitle.Render(h.theme.Symbols.Clipboard + " " + h.Title)
	lines := []string{title}

	if badges := h.Badges(); badges != nil {
		rendered := make([]string, 0, len(badges)*2)
		for i, b := range badges {
			if i > 0 {
				rendered = append(rendered, " ")
			}
			rendered = append(rendered, h.theme.Badge.Render(b))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, rendered...))
	}

	// Width includes padding; lipgloss centres each line inside it
	return h.theme.Header.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
