// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Keyboard bindings and the mapping from key presses to actions. This is
// the only place key strings are interpreted: Resolve turns a key press and
// the current focus into an Action, and the model acts on the Action.

package todo

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/config"
	"github.com/jeranaias/taskmgr-tui/internal/tasks"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the control that receives key presses.
type Focus int

const (
	FocusInput     Focus = iota // Text field
	FocusAddButton              // "Add task" button
	FocusList                   // Task rows
)

// String returns the focus name used in logs.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusAddButton:
		return "add_button"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// =============================================================================
// ACTIONS
// =============================================================================

// Action is what a key press asks the model to do.
type Action int

const (
	ActionNone           Action = iota // Not bound; typing keys go to the text field
	ActionSubmit                       // Add the pending input as a task
	ActionToggle                       // Toggle the task under the cursor
	ActionRemove                       // Remove the task under the cursor
	ActionToggleSelected               // Toggle the selected task from any focus
	ActionRemoveSelected               // Remove the selected task from any focus
	ActionUp                           // Move the cursor up
	ActionDown                         // Move the cursor down
	ActionFocusNext                    // Focus the next control
	ActionFocusPrev                    // Focus the previous control
	ActionHelp                         // Toggle the help overlay
	ActionClose                        // Close the help overlay
	ActionQuit                         // Exit the program
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSubmit:
		return "submit"
	case ActionToggle:
		return "toggle"
	case ActionRemove:
		return "remove"
	case ActionToggleSelected:
		return "toggle_selected"
	case ActionRemoveSelected:
		return "remove_selected"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionFocusNext:
		return "focus_next"
	case ActionFocusPrev:
		return "focus_prev"
	case ActionHelp:
		return "help"
	case ActionClose:
		return "close"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the task manager.
type KeyMap struct {
	Submit         key.Binding
	Press          key.Binding // Activates the focused Add button
	Toggle         key.Binding
	Select         key.Binding // Toggles the row under the cursor
	Remove         key.Binding
	ToggleSelected key.Binding
	RemoveSelected key.Binding
	Up             key.Binding
	Down           key.Binding
	Next           key.Binding
	Prev           key.Binding
	Help           key.Binding
	HelpAny        key.Binding // Opens help even while typing
	Close          key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
}

// DefaultKeyMap returns the key bindings for the default configuration.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(config.Default().Keys)
}

// KeyMapFromConfig builds the key bindings with the configurable actions
// taken from cfg. Empty lists keep the default keys. Enter always submits.
func KeyMapFromConfig(cfg config.KeysConfig) KeyMap {
	defaults := config.Default().Keys
	pick := func(keys, fallback []string) []string {
		if len(keys) == 0 {
			return fallback
		}
		return keys
	}

	submit := submitKeys(cfg.Submit)
	toggle := pick(cfg.Toggle, defaults.Toggle)
	remove := pick(cfg.Remove, defaults.Remove)
	quit := pick(cfg.Quit, defaults.Quit)

	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys(submit...),
			key.WithHelp(helpKeys(submit), "add task"),
		),
		Press: key.NewBinding(
			key.WithKeys(append([]string{" "}, submit...)...),
			key.WithHelp(helpKeys(append([]string{" "}, submit...)), "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(toggle...),
			key.WithHelp(helpKeys(toggle), "toggle"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle"),
		),
		Remove: key.NewBinding(
			key.WithKeys(remove...),
			key.WithHelp(helpKeys(remove), "delete task"),
		),
		ToggleSelected: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle selected"),
		),
		RemoveSelected: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete selected"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		HelpAny: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quit...),
			key.WithHelp(helpKeys(quit), "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// submitKeys returns the commit key followed by the configured submit keys.
// Printable keys are dropped since the input field types them.
func submitKeys(configured []string) []string {
	keys := []string{tasks.CommitKey}
	for _, k := range configured {
		if k == tasks.CommitKey || k == "" || config.IsTextKey(k) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// helpKeys joins key names for display, spelling out the space key.
func helpKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// =============================================================================
// KEY RESOLUTION
// =============================================================================

// Resolve maps a key press to an action for the given focus. While the help
// overlay is open only closing and quitting are honoured.
func (k KeyMap) Resolve(msg tea.KeyMsg, focus Focus, helpOpen bool) Action {
	if key.Matches(msg, k.ForceQuit) {
		return ActionQuit
	}

	if helpOpen {
		switch {
		case key.Matches(msg, k.Close, k.Help, k.HelpAny):
			return ActionClose
		case key.Matches(msg, k.Quit):
			return ActionQuit
		}
		return ActionNone
	}

	switch {
	case key.Matches(msg, k.HelpAny):
		return ActionHelp
	case key.Matches(msg, k.Next):
		return ActionFocusNext
	case key.Matches(msg, k.Prev):
		return ActionFocusPrev
	case key.Matches(msg, k.ToggleSelected):
		return ActionToggleSelected
	case key.Matches(msg, k.RemoveSelected):
		return ActionRemoveSelected
	}

	switch focus {
	case FocusInput:
		// Everything else is text for the input field
		if key.Matches(msg, k.Submit) {
			return ActionSubmit
		}
		return ActionNone

	case FocusAddButton:
		if key.Matches(msg, k.Press) {
			return ActionSubmit
		}

	case FocusList:
		switch {
		case key.Matches(msg, k.Up):
			return ActionUp
		case key.Matches(msg, k.Down):
			return ActionDown
		case key.Matches(msg, k.Toggle, k.Select):
			return ActionToggle
		case key.Matches(msg, k.Remove):
			return ActionRemove
		}
	}

	switch {
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Quit):
		return ActionQuit
	}
	return ActionNone
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the most commonly used shortcuts.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Remove, k.Next, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped as in HelpSections.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Input
		{k.Submit, k.Press},
		// List
		{k.Up, k.Down, k.Toggle, k.Select, k.Remove},
		// Anywhere
		{k.ToggleSelected, k.RemoveSelected, k.Next, k.Prev},
		// Application
		{k.Help, k.HelpAny, k.Close, k.Quit, k.ForceQuit},
	}
}

// HelpSections names the groups returned by FullHelp.
var HelpSections = []string{"Input", "Task list", "Anywhere", "Application"}

// focusHelp is a help.KeyMap limited to the bindings of one focus.
type focusHelp struct {
	short []key.Binding
}

func (f focusHelp) ShortHelp() []key.Binding  { return f.short }
func (f focusHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f.short} }

// ForFocus returns the short help for the given focus. toggleDesc labels the
// toggle binding with the selected task's action, e.g. "Mark as complete".
func (k KeyMap) ForFocus(focus Focus, toggleDesc string) help.KeyMap {
	switch focus {
	case FocusAddButton:
		return focusHelp{short: []key.Binding{k.Press, k.Next, k.Help, k.Quit}}
	case FocusList:
		toggle := k.Toggle
		if toggleDesc != "" {
			toggle.SetHelp(toggle.Help().Key, strings.ToLower(toggleDesc))
		}
		return focusHelp{short: []key.Binding{k.Up, k.Down, toggle, k.Remove, k.Next, k.Help, k.Quit}}
	default:
		return focusHelp{short: []key.Binding{k.Submit, k.Next, k.HelpAny, k.ForceQuit}}
	}
}
