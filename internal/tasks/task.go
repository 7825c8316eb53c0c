// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// TASK STATUS
// =============================================================================

// Status is the lifecycle state of a task. It is derived from Task.Completed
// and never stored. A removed task has no status; it is simply gone.
type Status string

const (
	// StatusActive is a task that still needs doing
	StatusActive Status = "Active"

	// StatusCompleted is a task the user has checked off
	StatusCompleted Status = "Completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task is a single to-do entry.
type Task struct {
	// ID is unique within the list that created the task
	ID string

	// Text is the trimmed, NFC-normalised display text (never empty)
	Text string

	// Completed is true once the user has checked the task off
	Completed bool

	// CreatedAt is when the task was added. Display and logging only.
	CreatedAt time.Time
}

// Status returns the derived lifecycle state of the task.
func (t Task) Status() Status {
	if t.Completed {
		return StatusCompleted
	}
	return StatusActive
}

// ShortID returns the first 8 characters of the ID for log lines.
func (t Task) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// NormalizeText trims surrounding whitespace and normalises the result to
// NFC so visually identical input produces identical task text.
// An empty return value means the input must be rejected.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// =============================================================================
// ID GENERATION
// =============================================================================

// IDGenerator produces task IDs. Implementations must never return the same
// value twice for the lifetime of a List.
type IDGenerator interface {
	NextID() string
}

// UUIDs generates random UUIDv4 task IDs.
type UUIDs struct{}

// NextID returns a new random UUID string.
func (UUIDs) NextID() string {
	return uuid.New().String()
}

// CounterIDs generates "1", "2", "3", ... Useful where IDs must be
// predictable, such as tests.
type CounterIDs struct {
	n atomic.Uint64
}

// NextID returns the next counter value as a string.
func (c *CounterIDs) NextID() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}
