// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"fmt"
	"time"
)

// CommitKey is the key name that commits the pending input as a new task.
const CommitKey = "enter"

// =============================================================================
// TASK LIST
// =============================================================================

// List is the task list manager. It holds the tasks (newest first) and the
// pending input, and exposes the operations that mutate them.
type List struct {
	// tasks is ordered newest first
	tasks []Task

	// pending is the text typed but not yet committed
	pending string

	ids IDGenerator
	now func() time.Time
}

// Option configures a List.
type Option func(*List)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(l *List) {
		if g != nil {
			l.ids = g
		}
	}
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(l *List) {
		if now != nil {
			l.now = now
		}
	}
}

// NewList creates an empty task list with empty pending input.
func NewList(opts ...Option) *List {
	l := &List{
		tasks: make([]Task, 0),
		ids:   UUIDs{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// =============================================================================
// PENDING INPUT
// =============================================================================

// SetPendingInput replaces the pending input verbatim. No validation.
func (l *List) SetPendingInput(text string) {
	l.pending = text
}

// PendingInput returns the text not yet committed as a task.
func (l *List) PendingInput() string {
	return l.pending
}

// =============================================================================
// MUTATIONS
// =============================================================================

// AddTask commits the pending input as a new active task at the front of the
// list and clears the pending input. Blank input (empty after trimming) is
// rejected silently: nothing changes and ok is false.
func (l *List) AddTask() (task Task, ok bool) {
	text := NormalizeText(l.pending)
	if text == "" {
		return Task{}, false
	}

	task = Task{
		ID:        l.nextID(),
		Text:      text,
		Completed: false,
		CreatedAt: l.now(),
	}

	l.tasks = append([]Task{task}, l.tasks...)
	l.pending = ""
	return task, true
}

// nextID returns a generator ID not already present in the list.
func (l *List) nextID() string {
	for {
		id := l.ids.NextID()
		if l.IndexOf(id) < 0 {
			return id
		}
	}
}

// ToggleComplete flips the completed flag of the task with the given ID.
// Unknown IDs are ignored and false is returned.
func (l *List) ToggleComplete(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return true
}

// RemoveTask deletes the task with the given ID. Unknown IDs are ignored and
// false is returned.
func (l *List) RemoveTask(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	return true
}

// SubmitOnEnter calls AddTask when key is the commit key and does nothing
// otherwise. It reports whether a task was added.
func (l *List) SubmitOnEnter(key string) bool {
	if key != CommitKey {
		return false
	}
	_, ok := l.AddTask()
	return ok
}

// =============================================================================
// QUERIES
// =============================================================================

// Tasks returns a copy of the tasks, newest first.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns the task with the given ID.
func (l *List) Get(id string) (Task, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// At returns the task at position i (0 is the newest).
func (l *List) At(i int) (Task, bool) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, false
	}
	return l.tasks[i], true
}

// IndexOf returns the position of the task with the given ID, or -1.
func (l *List) IndexOf(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// ActiveCount returns the number of tasks not yet completed.
func (l *List) ActiveCount() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed tasks.
func (l *List) CompletedCount() int {
	return l.Len() - l.ActiveCount()
}

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// Summary returns a one-line count summary, e.g. "2 active, 1 completed".
func (l *List) Summary() string {
	return fmt.Sprintf("%d active, %d completed", l.ActiveCount(), l.CompletedCount())
}
