// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskmgr-tui/internal/tasks"
	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
	"github.com/jeranaias/taskmgr-tui/internal/util"
)

// =============================================================================
// TASK LIST COMPONENT
// =============================================================================

// Labels shown by the list.
const (
	EmptyTitle      = "Your task list is empty"
	EmptyHint       = "Add a new task to get started"
	MarkComplete    = "Mark as complete"
	MarkIncomplete  = "Mark as incomplete"
	DeleteTaskLabel = "Delete task"
)

// TaskList renders the tasks of a list, newest first, with a movable
// selection. It never mutates the list; the caller applies actions to
// the task returned by Selected.
type TaskList struct {
	list   *tasks.List
	theme  *styles.Theme
	width  int
	height int

	cursor  int
	offset  int
	focused bool
}

// NewTaskList creates a new task list component.
func NewTaskList(list *tasks.List, theme *styles.Theme) *TaskList {
	return &TaskList{
		list:  list,
		theme: theme,
		width: 60,
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetSize sets the component dimensions. A height of zero shows every row.
func (tl *TaskList) SetSize(width, height int) {
	tl.width = width
	tl.height = height
	tl.Clamp()
}

// SetFocused marks the list as holding keyboard focus.
func (tl *TaskList) SetFocused(focused bool) {
	tl.focused = focused
	tl.Clamp()
}

// Focused returns whether the list holds keyboard focus.
func (tl *TaskList) Focused() bool {
	return tl.focused
}

// =============================================================================
// SELECTION
// =============================================================================

// Cursor returns the selected row index.
func (tl *TaskList) Cursor() int {
	return tl.cursor
}

// SetCursor selects row i, clamped to the list bounds.
func (tl *TaskList) SetCursor(i int) {
	tl.cursor = i
	tl.Clamp()
}

// MoveUp selects the previous row.
func (tl *TaskList) MoveUp() {
	tl.SetCursor(tl.cursor - 1)
}

// MoveDown selects the next row.
func (tl *TaskList) MoveDown() {
	tl.SetCursor(tl.cursor + 1)
}

// Clamp keeps the cursor inside the list after it grows or shrinks.
func (tl *TaskList) Clamp() {
	n := tl.list.Len()
	if tl.cursor >= n {
		tl.cursor = n - 1
	}
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.scrollToCursor()
}

// Selected returns the task under the cursor.
func (tl *TaskList) Selected() (tasks.Task, bool) {
	return tl.list.At(tl.cursor)
}

// Select moves the cursor to the task with the given ID.
func (tl *TaskList) Select(id string) bool {
	i := tl.list.IndexOf(id)
	if i < 0 {
		return false
	}
	tl.SetCursor(i)
	return true
}

// scrollToCursor adjusts the first visible row so the cursor stays on screen.
func (tl *TaskList) scrollToCursor() {
	rows := tl.visibleRows()
	if rows <= 0 {
		tl.offset = 0
		return
	}
	if tl.cursor < tl.offset {
		tl.offset = tl.cursor
	}
	if tl.cursor >= tl.offset+rows {
		tl.offset = tl.cursor - rows + 1
	}
	if last := tl.list.Len() - rows; tl.offset > last {
		tl.offset = last
	}
	if tl.offset < 0 {
		tl.offset = 0
	}
}

// visibleRows returns how many rows fit, or 0 for unlimited.
func (tl *TaskList) visibleRows() int {
	return tl.height
}

// =============================================================================
// PRESENTATION
// =============================================================================

// ToggleLabel returns the accessible label of a task's toggle control.
func ToggleLabel(task tasks.Task) string {
	if task.Completed {
		return MarkIncomplete
	}
	return MarkComplete
}

// TextStyle returns the style used for a task's text. Completed tasks are
// struck through.
func (tl *TaskList) TextStyle(task tasks.Task) lipgloss.Style {
	if task.Completed {
		return tl.theme.TaskDone
	}
	return tl.theme.TaskText
}

// IsStruck reports whether the task with the given ID renders struck through.
func (tl *TaskList) IsStruck(id string) bool {
	task, ok := tl.list.Get(id)
	if !ok {
		return false
	}
	return tl.TextStyle(task).GetStrikethrough()
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the list, or the empty state when there are no tasks.
func (tl *TaskList) View() string {
	if tl.list.IsEmpty() {
		return tl.renderEmpty()
	}

	all := tl.list.Tasks()
	start, end := 0, len(all)
	if rows := tl.visibleRows(); rows > 0 && rows < len(all) {
		start = tl.offset
		end = start + rows
		if end > len(all) {
			end = len(all)
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(tl.renderRow(all[i], i == tl.cursor && tl.focused))
	}
	return b.String()
}

// renderRow renders a single task: cursor, toggle, text and, when selected,
// the delete control.
func (tl *TaskList) renderRow(task tasks.Task, selected bool) string {
	sym := tl.theme.Symbols

	cursor := strings.Repeat(" ", util.StringWidth(sym.Cursor))
	if selected {
		cursor = tl.theme.Cursor.Render(sym.Cursor)
	}

	toggle := tl.theme.Toggle.Render(sym.ToggleOpen)
	if task.Completed {
		toggle = tl.theme.ToggleDone.Render(sym.ToggleDone)
	}

	deleteText := ""
	if selected {
		deleteText = sym.Delete + " " + DeleteTaskLabel
	}

	// Row padding, cursor, toggle and the gaps between them
	fixed := 2 + util.StringWidth(sym.Cursor) + 1 + util.StringWidth(sym.ToggleOpen) + 1
	if deleteText != "" {
		fixed += 1 + util.StringWidth(deleteText)
	}
	textWidth := tl.width - fixed
	if textWidth < 8 {
		textWidth = 8
	}

	text := util.TruncateWidth(task.Text, textWidth)
	parts := []string{cursor, " ", toggle, " ", tl.TextStyle(task).Render(util.PadRight(text, textWidth))}
	if deleteText != "" {
		parts = append(parts, " ", tl.theme.DeleteHint.Render(deleteText))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if selected {
		return tl.theme.TaskRowSelected.Render(row)
	}
	return tl.theme.TaskRow.Render(row)
}

// renderEmpty renders the empty state message.
func (tl *TaskList) renderEmpty() string {
	width := tl.width
	if width < 20 {
		width = 20
	}
	lines := []string{
		tl.theme.EmptyIcon.Width(width).Render(tl.theme.Symbols.Clipboard),
		tl.theme.EmptyTitle.Width(width).Render(EmptyTitle),
		tl.theme.EmptyHint.Width(width).Render(EmptyHint),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
