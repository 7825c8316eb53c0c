// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Violet - Primary accent, header band, focused controls
var Violet = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#8B5CF6"}

// VioletDeep - Darker violet for backgrounds
var VioletDeep = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#5B21B6"}

// Purple - Secondary accent, badges, selection
var Purple = lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#A78BFA"}

// Rose - Delete hint, destructive actions, failure notices
var Rose = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FB7185"}

// Emerald - Success notices
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Headers and footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#181825"}

// SurfaceBright - Selected row background
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}

// OverlayDim - Unfocused borders
var OverlayDim = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Active task text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#E5E7EB"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// TextMuted - Completed task text, hints, empty state
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

// TextInverse - Text on the violet header band and focused button
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// SYMBOLS
// =============================================================================

// Symbols contains the glyphs used for controls.
type Symbols struct {
	ToggleOpen string // Unchecked toggle
	ToggleDone string // Checked toggle
	Add        string // Add button icon
	Delete     string // Delete control icon
	Cursor     string // Selected row marker
	Clipboard  string // Header and empty state icon
	Info       string // Informational notice
	Success    string // Success notice
	Failure    string // Failure notice
}

// UnicodeSymbols is the default symbol set.
var UnicodeSymbols = Symbols{
	ToggleOpen: "( )",
	ToggleDone: "(✓)",
	Add:        "+",
	Delete:     "✗",
	Cursor:     "›",
	Clipboard:  "▤",
	Info:       "•",
	Success:    "✓",
	Failure:    "✗",
}

// ASCIISymbols is used when the terminal cannot render Unicode glyphs.
var ASCIISymbols = Symbols{
	ToggleOpen: "( )",
	ToggleDone: "(x)",
	Add:        "+",
	Delete:     "x",
	Cursor:     ">",
	Clipboard:  "#",
	Info:       "*",
	Success:    "+",
	Failure:    "!",
}
