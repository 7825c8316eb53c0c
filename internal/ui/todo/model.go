// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package todo

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/config"
	"github.com/jeranaias/taskmgr-tui/internal/tasks"
	"github.com/jeranaias/taskmgr-tui/internal/ui/components"
	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
)

// HelpTitle heads the help overlay.
const HelpTitle = "Keyboard shortcuts"

// =============================================================================
// TODO MODEL
// =============================================================================

// Model is the Bubble Tea model for the task manager. It owns the task list;
// the components only read from it.
type Model struct {
	// Task state
	list *tasks.List

	// Styling and settings
	theme *styles.Theme
	cfg   *config.Config
	keys  KeyMap

	// Dimensions
	width  int
	height int

	// Keyboard focus
	focus Focus

	// UI Components
	header  *components.Header
	input   *components.InputArea
	rows    *components.TaskList
	helpBar *components.HelpBar
	overlay *components.HelpOverlay
	notice  *components.NoticeLine

	quitting bool
}

// New creates a task manager model with an empty list. A nil cfg uses the
// defaults; a nil theme is built from cfg.UI.
func New(cfg *config.Config, theme *styles.Theme, opts ...tasks.Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if theme == nil {
		theme = styles.NewThemeWithMode(cfg.UI.Theme)
		theme.SetASCII(cfg.UI.ASCII)
	}

	list := tasks.NewList(opts...)

	m := Model{
		list:    list,
		theme:   theme,
		cfg:     cfg,
		keys:    KeyMapFromConfig(cfg.Keys),
		header:  components.NewHeader(list, theme),
		input:   components.NewInputArea(theme),
		rows:    components.NewTaskList(list, theme),
		helpBar: components.NewHelpBar(theme),
		overlay: components.NewHelpOverlay(theme),
		notice:  components.NewNoticeLine(theme),
	}

	m.input.SetPlaceholder(cfg.UI.Placeholder)
	m.input.SetCharLimit(cfg.UI.CharLimit)
	m.helpBar.SetVisible(cfg.UI.ShowHelp)
	m.overlay.SetMarkdown(m.helpMarkdown())
	m.setFocus(FocusInput)
	m.resize(theme.Width, theme.Height)

	return m
}

// Init starts the cursor blink of the focused text field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// ACCESSORS
// =============================================================================

// List returns the task list owned by the model.
func (m Model) List() *tasks.List {
	return m.list
}

// Focus returns the control holding keyboard focus.
func (m Model) Focus() Focus {
	return m.focus
}

// HelpVisible returns whether the help overlay is open.
func (m Model) HelpVisible() bool {
	return m.overlay.Visible()
}

// InputValue returns the text in the input field.
func (m Model) InputValue() string {
	return m.input.Value()
}

// Rows returns the task list component.
func (m Model) Rows() *components.TaskList {
	return m.rows
}

// Config returns the settings currently applied.
func (m Model) Config() *config.Config {
	return m.cfg
}

// Notice returns the notice being shown, if any.
func (m Model) Notice() (components.Notice, bool) {
	return m.notice.Current()
}

// Quitting returns whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// =============================================================================
// FOCUS
// =============================================================================

// focusOrder returns the focus ring. The list is skipped while empty.
func (m *Model) focusOrder() []Focus {
	if m.list.IsEmpty() {
		return []Focus{FocusInput, FocusAddButton}
	}
	return []Focus{FocusInput, FocusAddButton, FocusList}
}

// cycleFocus moves focus dir steps around the focus ring.
func (m *Model) cycleFocus(dir int) tea.Cmd {
	order := m.focusOrder()
	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}
	next := (current + dir + len(order)) % len(order)
	return m.setFocus(order[next])
}

// setFocus gives keyboard focus to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	switch f {
	case FocusAddButton:
		m.input.FocusButton()
		m.rows.SetFocused(false)
		return nil
	case FocusList:
		m.input.Blur()
		m.rows.SetFocused(true)
		return nil
	default:
		m.focus = FocusInput
		m.rows.SetFocused(false)
		return m.input.Focus()
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// resize lays the components out for a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	cardWidth := m.theme.CardWidth()
	m.header.SetWidth(cardWidth)
	m.input.SetWidth(cardWidth)
	m.helpBar.SetWidth(cardWidth)
	m.notice.SetWidth(cardWidth)

	overlayWidth := cardWidth
	if overlayWidth > 70 {
		overlayWidth = 70
	}
	m.overlay.SetWidth(overlayWidth)

	m.rows.SetSize(cardWidth, m.listHeight())
}

// listHeight returns the rows left for tasks after the fixed components, or
// 0 when the terminal height is unknown.
func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	// App padding, spacers and the help bar
	reserved := 2 + 3 + 1
	reserved += lineCount(m.header.View()) + lineCount(m.input.View())
	if m.notice.Visible() {
		reserved += 2
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// =============================================================================
// CONFIG
// =============================================================================

// applyConfig switches to cfg without touching task state.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg

	width, height := m.theme.Width, m.theme.Height
	*m.theme = *styles.NewThemeWithMode(cfg.UI.Theme)
	m.theme.SetASCII(cfg.UI.ASCII)
	m.theme.SetSize(width, height)

	m.keys = KeyMapFromConfig(cfg.Keys)
	m.input.SetPlaceholder(cfg.UI.Placeholder)
	m.input.SetCharLimit(cfg.UI.CharLimit)

	// Both copy theme styles when built
	m.helpBar = components.NewHelpBar(m.theme)
	m.helpBar.SetVisible(cfg.UI.ShowHelp)
	visible := m.overlay.Visible()
	m.overlay = components.NewHelpOverlay(m.theme)
	m.overlay.SetMarkdown(m.helpMarkdown())
	if visible {
		m.overlay.Show()
	}

	m.resize(width, height)
}

// helpMarkdown builds the help overlay content from the current bindings.
func (m *Model) helpMarkdown() string {
	return components.HelpMarkdown(HelpTitle, HelpSections, m.keys.FullHelp())
}
