// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestList() *List {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return NewList(
		WithIDGenerator(&CounterIDs{}),
		WithClock(func() time.Time { return fixed }),
	)
}

func add(t *testing.T, l *List, text string) Task {
	t.Helper()
	l.SetPendingInput(text)
	task, ok := l.AddTask()
	require.True(t, ok, "AddTask(%q) should succeed", text)
	return task
}

// =============================================================================
// TASK TESTS
// =============================================================================

func TestTaskStatus(t *testing.T) {
	task := Task{ID: "1", Text: "x"}
	if task.Status() != StatusActive {
		t.Errorf("Expected status Active, got %s", task.Status())
	}

	task.Completed = true
	if task.Status() != StatusCompleted {
		t.Errorf("Expected status Completed, got %s", task.Status())
	}
}

func TestTaskShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"1", "1"},
		{"12345678", "12345678"},
		{"0f8fad5b-d9cb-469f-a165-70867728950e", "0f8fad5b"},
	}

	for _, tc := range tests {
		got := Task{ID: tc.id}.ShortID()
		if got != tc.want {
			t.Errorf("ShortID(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Write unit tests", "Write unit tests"},
		{"surrounding spaces", "  Write unit tests  ", "Write unit tests"},
		{"tabs and newlines", "\t\nBuy milk\n", "Buy milk"},
		{"inner spaces kept", "a  b", "a  b"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"decomposed accent", "Cafe\u0301", "Caf\u00e9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(tc.in); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestUUIDsAreUnique(t *testing.T) {
	var g UUIDs
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		if seen[id] {
			t.Fatalf("duplicate id %s after %d ids", id, i)
		}
		seen[id] = true
	}
}

func TestCounterIDs(t *testing.T) {
	c := &CounterIDs{}
	require.Equal(t, "1", c.NextID())
	require.Equal(t, "2", c.NextID())
	require.Equal(t, "3", c.NextID())
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestNewListIsEmpty(t *testing.T) {
	l := NewList()

	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	require.Equal(t, "", l.PendingInput())
	require.Equal(t, 0, l.ActiveCount())
	require.Equal(t, 0, l.CompletedCount())
	require.Empty(t, l.Tasks())
}

func TestSetPendingInputIsVerbatim(t *testing.T) {
	l := newTestList()

	l.SetPendingInput("  spaced  ")
	require.Equal(t, "  spaced  ", l.PendingInput())

	l.SetPendingInput("")
	require.Equal(t, "", l.PendingInput())
}

func TestAddTaskTrimsAndPrepends(t *testing.T) {
	inputs := []string{"x", "  hello ", "\tBuy milk\n", "Write unit tests"}

	for _, in := range inputs {
		l := newTestList()
		add(t, l, "existing")
		before := l.Len()

		l.SetPendingInput(in)
		task, ok := l.AddTask()

		require.True(t, ok)
		require.Equal(t, before+1, l.Len())
		require.Equal(t, NormalizeText(in), task.Text)
		require.False(t, task.Completed)
		require.Equal(t, "", l.PendingInput(), "pending input should be cleared")

		first, _ := l.At(0)
		require.Equal(t, task, first, "new task should be at the front")
	}
}

func TestAddTaskRejectsBlank(t *testing.T) {
	blanks := []string{"", " ", "   ", "\t", "\n", " \t\r\n "}

	for _, in := range blanks {
		l := newTestList()
		add(t, l, "keep")

		l.SetPendingInput(in)
		task, ok := l.AddTask()

		require.False(t, ok, "blank input %q should be rejected", in)
		require.Equal(t, Task{}, task)
		require.Equal(t, 1, l.Len())
		require.Equal(t, in, l.PendingInput(), "rejected add must leave pending input untouched")
	}
}

func TestAddTaskUniqueIDs(t *testing.T) {
	l := NewList()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		task := add(t, l, "same text")
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

// repeatIDs cycles through a fixed set of IDs so collisions can be forced.
type repeatIDs struct {
	ids []string
	i   int
}

func (r *repeatIDs) NextID() string {
	id := r.ids[r.i%len(r.ids)]
	r.i++
	return id
}

func TestAddTaskSkipsCollidingIDs(t *testing.T) {
	l := NewList(WithIDGenerator(&repeatIDs{ids: []string{"a", "a", "b"}}))

	first := add(t, l, "one")
	second := add(t, l, "two")

	require.Equal(t, "a", first.ID)
	require.Equal(t, "b", second.ID)
}

func TestToggleCompleteTwiceRestores(t *testing.T) {
	l := newTestList()
	task := add(t, l, "toggle me")

	require.True(t, l.ToggleComplete(task.ID))
	got, _ := l.Get(task.ID)
	require.True(t, got.Completed)
	require.Equal(t, StatusCompleted, got.Status())

	require.True(t, l.ToggleComplete(task.ID))
	got, _ = l.Get(task.ID)
	require.False(t, got.Completed)
	require.Equal(t, StatusActive, got.Status())
}

func TestToggleCompleteUnknownID(t *testing.T) {
	l := newTestList()
	add(t, l, "a")
	before := l.Tasks()

	require.False(t, l.ToggleComplete("missing"))
	require.Equal(t, before, l.Tasks())
}

func TestRemoveTask(t *testing.T) {
	l := newTestList()
	a := add(t, l, "A")
	b := add(t, l, "B")
	c := add(t, l, "C")

	require.True(t, l.RemoveTask(b.ID))
	require.Equal(t, []Task{c, a}, l.Tasks())

	_, ok := l.Get(b.ID)
	require.False(t, ok)

	// Removed is terminal: the id is no longer addressable
	require.False(t, l.ToggleComplete(b.ID))
	require.False(t, l.RemoveTask(b.ID))
}

func TestRemoveTaskUnknownIDLeavesListUnchanged(t *testing.T) {
	l := newTestList()
	add(t, l, "A")
	add(t, l, "B")
	before := l.Tasks()

	require.False(t, l.RemoveTask("nope"))
	require.Equal(t, before, l.Tasks())
}

func TestTasksReturnsCopy(t *testing.T) {
	l := newTestList()
	add(t, l, "A")

	snapshot := l.Tasks()
	snapshot[0].Text = "mutated"

	got, _ := l.At(0)
	require.Equal(t, "A", got.Text)
}

func TestSubmitOnEnter(t *testing.T) {
	l := newTestList()

	l.SetPendingInput("via enter")
	require.False(t, l.SubmitOnEnter("a"))
	require.False(t, l.SubmitOnEnter("tab"))
	require.Equal(t, 0, l.Len())
	require.Equal(t, "via enter", l.PendingInput())

	require.True(t, l.SubmitOnEnter("enter"))
	require.Equal(t, 1, l.Len())

	l.SetPendingInput("   ")
	require.False(t, l.SubmitOnEnter("enter"))
	require.Equal(t, 1, l.Len())
}

func TestAtOutOfRange(t *testing.T) {
	l := newTestList()
	add(t, l, "A")

	for _, i := range []int{-1, 1, 99} {
		if _, ok := l.At(i); ok {
			t.Errorf("At(%d) should report not found", i)
		}
	}
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestScenarioAddThenToggle(t *testing.T) {
	l := newTestList()
	require.True(t, l.IsEmpty())

	task := add(t, l, "Write unit tests")
	require.Equal(t, 1, l.Len())
	require.Equal(t, "Write unit tests", task.Text)
	require.False(t, task.Completed)

	l.ToggleComplete(task.ID)
	got, _ := l.Get(task.ID)
	require.True(t, got.Completed)
}

func TestScenarioAddThenRemove(t *testing.T) {
	l := newTestList()

	task := add(t, l, "Remove me")
	require.False(t, l.IsEmpty())

	l.RemoveTask(task.ID)
	require.True(t, l.IsEmpty())
}

func TestScenarioNewestFirst(t *testing.T) {
	l := newTestList()
	add(t, l, "A")
	add(t, l, "B")

	got := l.Tasks()
	require.Len(t, got, 2)
	require.Equal(t, "B", got[0].Text)
	require.Equal(t, "A", got[1].Text)
}

func TestScenarioCounts(t *testing.T) {
	l := newTestList()
	a := add(t, l, "A")
	add(t, l, "B")

	l.ToggleComplete(a.ID)

	require.Equal(t, 1, l.ActiveCount())
	require.Equal(t, 1, l.CompletedCount())
	require.Equal(t, "1 active, 1 completed", l.Summary())
}
