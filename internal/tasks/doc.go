// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks holds the in-memory task list behind the taskmgr TUI.
//
// A List owns an ordered set of tasks (newest first) and the pending input
// text that has not been committed yet. Every operation is synchronous and
// none of them fail: adding blank input and referring to an unknown task ID
// are silent no-ops.
//
// # Key Types
//
//   - Task: A single to-do entry with ID, text and completion flag
//   - Status: Derived lifecycle state (Active, Completed)
//   - List: The task list manager
//   - IDGenerator: Source of task IDs (UUIDs by default, counters in tests)
//
// # Usage
//
//	list := tasks.NewList()
//	list.SetPendingInput("  Write unit tests ")
//	task, ok := list.AddTask() // ok == true, task.Text == "Write unit tests"
//	list.ToggleComplete(task.ID)
//	fmt.Println(list.Summary()) // "0 active, 1 completed"
//
// A List is not safe for concurrent use. The TUI only touches it from the
// Bubble Tea update loop, which handles one message at a time.
package tasks
