// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the taskmgr packages.
//
//   - TruncateWidth, StringWidth, PadRight: display-width aware string
//     handling for task text (wide CJK characters count as two columns)
//   - WriteFileAtomic: temp file + fsync + rename, used when saving config
package util
