// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
)

// =============================================================================
// INPUT AREA COMPONENT - Task text input with the Add button
// =============================================================================

const (
	// DefaultPlaceholder is shown while the input is empty
	DefaultPlaceholder = "What needs to be done?"

	// AddButtonLabel is the accessible label of the submit control
	AddButtonLabel = "Add task"

	// DefaultCharLimit caps a single task's length
	DefaultCharLimit = 500
)

// InputArea is the text field bound to the pending input, next to the
// "Add task" button. Either the field or the button can hold focus.
type InputArea struct {
	input         textinput.Model
	width         int
	buttonFocused bool
	theme         *styles.Theme
}

// NewInputArea creates an InputArea with the default placeholder.
func NewInputArea(theme *styles.Theme) *InputArea {
	ti := textinput.New()
	ti.Placeholder = DefaultPlaceholder
	ti.CharLimit = DefaultCharLimit
	ti.Width = 40
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Violet).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Violet)

	return &InputArea{
		input: ti,
		width: 60,
		theme: theme,
	}
}

// Focus focuses the text field.
func (i *InputArea) Focus() tea.Cmd {
	i.buttonFocused = false
	return i.input.Focus()
}

// FocusButton moves focus to the Add button.
func (i *InputArea) FocusButton() {
	i.input.Blur()
	i.buttonFocused = true
}

// Blur removes focus from both the field and the button.
func (i *InputArea) Blur() {
	i.input.Blur()
	i.buttonFocused = false
}

// Focused returns whether the text field is focused.
func (i *InputArea) Focused() bool {
	return i.input.Focused()
}

// ButtonFocused returns whether the Add button is focused.
func (i *InputArea) ButtonFocused() bool {
	return i.buttonFocused
}

// SetWidth sets the total width of the field and button.
func (i *InputArea) SetWidth(width int) {
	i.width = width
	// Box border and padding, prompt, cursor, button and gap
	fieldWidth := width - lipgloss.Width(i.renderButton()) - 1 - 4 - len(i.input.Prompt) - 1
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	i.input.Width = fieldWidth
}

// SetPlaceholder sets the placeholder text.
func (i *InputArea) SetPlaceholder(placeholder string) {
	i.input.Placeholder = placeholder
}

// SetCharLimit sets the maximum number of characters.
func (i *InputArea) SetCharLimit(limit int) {
	i.input.CharLimit = limit
}

// Value returns the current field value.
func (i *InputArea) Value() string {
	return i.input.Value()
}

// Reset clears the field.
func (i *InputArea) Reset() {
	i.input.Reset()
}

// Update forwards a message to the text field.
func (i *InputArea) Update(msg tea.Msg) (*InputArea, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the field and the button side by side.
func (i *InputArea) View() string {
	box := i.theme.InputBox
	if i.input.Focused() {
		box = i.theme.InputBoxFocused
	}
	field := box.Render(i.input.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", i.renderButton())
}

// renderButton renders the "+ Add task" button.
func (i *InputArea) renderButton() string {
	style := i.theme.Button
	if i.buttonFocused {
		style = i.theme.ButtonFocused
	}
	return style.Render(i.theme.Symbols.Add + " " + AddButtonLabel)
}
