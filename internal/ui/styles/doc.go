// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the taskmgr TUI.

All colors use Lip Gloss AdaptiveColor so the same palette works on light and
dark terminals.

# Color System (colors.go)

  - Violet - Primary accent: header, focused controls, completed toggles
  - Purple - Secondary accent: badges and selection
  - Rose - Delete hints
  - Surface / Overlay - Backgrounds and borders
  - TextPrimary / TextSecondary / TextMuted - Text hierarchy

# Theme (theme.go)

Theme holds every lipgloss.Style the components use. NewTheme detects the
terminal's color profile and background with termenv; NewThemeWithMode forces
"dark" or "light".

The TaskDone style carries the strikethrough marker for completed tasks.
Tests rely on it, so keep Strikethrough(true) on it.

# Symbols

Symbols holds the glyphs for toggles and buttons. ASCIISymbols is used when
the terminal cannot draw the Unicode check mark.
*/
package styles
