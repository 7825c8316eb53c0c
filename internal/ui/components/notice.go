// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements the notice line: a single non-blocking message shown
// under the task list that dismisses itself after a few seconds.

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
	"github.com/jeranaias/taskmgr-tui/internal/util"
)

// =============================================================================
// NOTICE TYPES
// =============================================================================

// NoticeKind represents the type of notice.
type NoticeKind int

const (
	// NoticeInfo is an informational notice
	NoticeInfo NoticeKind = iota
	// NoticeSuccess reports a completed action
	NoticeSuccess
	// NoticeFailure reports an action that did not happen
	NoticeFailure
)

// String returns the kind name used in logs.
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeFailure:
		return "failure"
	default:
		return "info"
	}
}

// DefaultNoticeDuration is how long info and success notices stay up.
const DefaultNoticeDuration = 4 * time.Second

// FailureNoticeDuration is longer so there is time to read the reason.
const FailureNoticeDuration = 8 * time.Second

// Notice is one message on the notice line.
type Notice struct {
	ID       int
	Message  string
	Kind     NoticeKind
	Duration time.Duration
}

// NoticeExpiredMsg asks the owner to dismiss the notice with ID.
type NoticeExpiredMsg struct {
	ID int
}

// =============================================================================
// NOTICE LINE
// =============================================================================

// NoticeLine holds at most one notice. A newer notice replaces the current
// one; an expiry for a replaced notice is ignored.
type NoticeLine struct {
	current *Notice
	nextID  int
	width   int
	theme   *styles.Theme
}

// NewNoticeLine creates an empty notice line.
func NewNoticeLine(theme *styles.Theme) *NoticeLine {
	return &NoticeLine{
		nextID: 1,
		width:  60,
		theme:  theme,
	}
}

// SetWidth updates the line width.
func (n *NoticeLine) SetWidth(width int) {
	n.width = width
}

// Show replaces the current notice and returns the command that expires it.
func (n *NoticeLine) Show(kind NoticeKind, message string) tea.Cmd {
	duration := DefaultNoticeDuration
	if kind == NoticeFailure {
		duration = FailureNoticeDuration
	}

	notice := Notice{
		ID:       n.nextID,
		Message:  message,
		Kind:     kind,
		Duration: duration,
	}
	n.nextID++
	n.current = &notice

	return expireNotice(notice.ID, duration)
}

// Dismiss clears the notice with id. It returns false when that notice is no
// longer shown.
func (n *NoticeLine) Dismiss(id int) bool {
	if n.current == nil || n.current.ID != id {
		return false
	}
	n.current = nil
	return true
}

// Current returns the notice being shown.
func (n *NoticeLine) Current() (Notice, bool) {
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

// Visible returns whether a notice is shown.
func (n *NoticeLine) Visible() bool {
	return n.current != nil
}

// View renders the notice on one line, or "" when there is none.
func (n *NoticeLine) View() string {
	if n.current == nil {
		return ""
	}

	var icon string
	style := n.theme.NoticeInfo
	switch n.current.Kind {
	case NoticeSuccess:
		icon = n.theme.Symbols.Success
		style = n.theme.NoticeSuccess
	case NoticeFailure:
		icon = n.theme.Symbols.Failure
		style = n.theme.NoticeFailure
	default:
		icon = n.theme.Symbols.Info
	}

	text := icon + " " + n.current.Message
	if room := n.width - style.GetHorizontalFrameSize(); room > 0 {
		text = util.TruncateWidth(text, room)
	}
	return style.Render(text)
}

// expireNotice returns a command that reports the notice as expired after d.
func expireNotice(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
