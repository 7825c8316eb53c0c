// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package todo

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/tasks"
	"github.com/jeranaias/taskmgr-tui/internal/ui/components"
	"github.com/jeranaias/taskmgr-tui/internal/util"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil || msg.Config == nil {
			log.Printf("CONFIG_KEPT | error=%v", msg.Err)
			return m, m.showNotice(components.NoticeFailure, configKeptNotice(msg.Err))
		}
		m.applyConfig(msg.Config)
		log.Printf("CONFIG_APPLIED | theme=%s ascii=%t", msg.Config.UI.Theme, msg.Config.UI.ASCII)
		return m, m.showNotice(components.NoticeSuccess, ConfigAppliedNotice)

	case components.NoticeExpiredMsg:
		if m.notice.Dismiss(msg.ID) {
			m.resize(m.width, m.height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other text field messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey resolves a key press and applies the resulting action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg, m.focus, m.overlay.Visible())

	switch action {
	case ActionQuit:
		m.quitting = true
		log.Printf("APP_QUIT | tasks=%d", m.list.Len())
		return m, tea.Quit

	case ActionHelp:
		m.overlay.Toggle()
	case ActionClose:
		m.overlay.Hide()

	case ActionFocusNext:
		return m, m.cycleFocus(1)
	case ActionFocusPrev:
		return m, m.cycleFocus(-1)

	case ActionSubmit:
		m.submit(msg.String())

	case ActionToggle, ActionToggleSelected:
		m.toggleSelected()
	case ActionRemove, ActionRemoveSelected:
		return m, m.removeSelected()

	case ActionUp:
		m.rows.MoveUp()
	case ActionDown:
		m.rows.MoveDown()

	case ActionNone:
		if m.focus == FocusInput && !m.overlay.Visible() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.list.SetPendingInput(m.input.Value())
			return m, cmd
		}
	}

	return m, nil
}

// =============================================================================
// TASK ACTIONS
// =============================================================================

// submit adds the pending input as a task. The commit key goes through
// SubmitOnEnter; other submit keys and the Add button call AddTask.
func (m *Model) submit(keyName string) {
	m.list.SetPendingInput(m.input.Value())

	var (
		task tasks.Task
		ok   bool
	)
	if keyName == tasks.CommitKey {
		if ok = m.list.SubmitOnEnter(keyName); ok {
			task, _ = m.list.At(0)
		}
	} else {
		task, ok = m.list.AddTask()
	}

	if !ok {
		log.Printf("ADD_REJECTED | reason=blank_input focus=%s", m.focus)
		return
	}

	log.Printf("TASK_ADDED | id=%s len=%d total=%d", task.ShortID(), util.StringWidth(task.Text), m.list.Len())
	m.input.Reset()
	// The header grows a badge line with the first task
	m.resize(m.width, m.height)
	m.rows.Select(task.ID)
}

// toggleSelected flips the task under the cursor.
func (m *Model) toggleSelected() {
	task, ok := m.rows.Selected()
	if !ok {
		return
	}
	if m.list.ToggleComplete(task.ID) {
		log.Printf("TASK_TOGGLED | id=%s completed=%t", task.ShortID(), !task.Completed)
	}
}

// removeSelected deletes the task under the cursor. Focus returns to the
// input once the list is empty.
func (m *Model) removeSelected() tea.Cmd {
	task, ok := m.rows.Selected()
	if !ok {
		return nil
	}
	if !m.list.RemoveTask(task.ID) {
		return nil
	}
	log.Printf("TASK_REMOVED | id=%s remaining=%d", task.ShortID(), m.list.Len())

	m.resize(m.width, m.height)
	if m.list.IsEmpty() && m.focus == FocusList {
		return m.setFocus(FocusInput)
	}
	return nil
}

// =============================================================================
// NOTICES
// =============================================================================

// ConfigAppliedNotice is shown after the config file was reloaded.
const ConfigAppliedNotice = "Settings reloaded"

// configKeptNotice describes a reload that was rejected.
func configKeptNotice(err error) string {
	if err == nil {
		return "Config not reloaded, keeping current settings"
	}
	// Validation errors span several lines
	reason := strings.Join(strings.Fields(err.Error()), " ")
	return "Config not reloaded, keeping current settings: " + reason
}

// showNotice puts a notice under the task list and makes room for it.
func (m *Model) showNotice(kind components.NoticeKind, message string) tea.Cmd {
	cmd := m.notice.Show(kind, message)
	m.resize(m.width, m.height)
	return cmd
}
