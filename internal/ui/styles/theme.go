// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewThemeWithMode.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile
	Mode         string

	// Glyphs for toggles and buttons
	Symbols Symbols

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App  lipgloss.Style
	Card lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Badge       lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputBox         lipgloss.Style
	InputBoxFocused  lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Button           lipgloss.Style
	ButtonFocused    lipgloss.Style

	// ==========================================================================
	// TASK LIST STYLES
	// ==========================================================================

	TaskRow         lipgloss.Style
	TaskRowSelected lipgloss.Style
	TaskText        lipgloss.Style
	// TaskDone must keep Strikethrough(true); it is the completed marker.
	TaskDone   lipgloss.Style
	Toggle     lipgloss.Style
	ToggleDone lipgloss.Style
	DeleteHint lipgloss.Style
	Cursor     lipgloss.Style

	// ==========================================================================
	// EMPTY STATE STYLES
	// ==========================================================================

	EmptyIcon  lipgloss.Style
	EmptyTitle lipgloss.Style
	EmptyHint  lipgloss.Style

	// ==========================================================================
	// HELP STYLES
	// ==========================================================================

	HelpBar     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpOverlay lipgloss.Style

	// ==========================================================================
	// NOTICE STYLES
	// ==========================================================================

	NoticeInfo    lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeFailure lipgloss.Style
}

// NewTheme creates a new theme with the terminal background auto-detected.
func NewTheme() *Theme {
	return NewThemeWithMode(ModeAuto)
}

// NewThemeWithMode creates a theme for the given mode ("auto", "dark" or
// "light"). Unknown modes behave like "auto".
func NewThemeWithMode(mode string) *Theme {
	colorProfile := termenv.EnvColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	mode = strings.ToLower(strings.TrimSpace(mode))
	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}
	// AdaptiveColor resolves against the default renderer
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
		Mode:         mode,
		Symbols:      UnicodeSymbols,
		Width:        80,
		Height:       24,
	}

	t.initStyles()
	return t
}

// SetASCII switches between the Unicode and ASCII symbol sets.
func (t *Theme) SetASCII(ascii bool) {
	if ascii {
		t.Symbols = ASCIISymbols
	} else {
		t.Symbols = UnicodeSymbols
	}
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Violet).
		Padding(1, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse)

	t.Badge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(VioletDeep).
		Padding(0, 1)

	// Input area
	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.InputBoxFocused = t.InputBox.
		BorderForeground(Violet)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Button = lipgloss.NewStyle().
		Foreground(Violet).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.ButtonFocused = t.Button.
		Bold(true).
		Foreground(TextInverse).
		Background(Violet).
		BorderForeground(Violet)

	// Task list
	t.TaskRow = lipgloss.NewStyle().
		Padding(0, 1)

	t.TaskRowSelected = t.TaskRow.
		Background(SurfaceBright)

	t.TaskText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TaskDone = lipgloss.NewStyle().
		Foreground(TextMuted).
		Strikethrough(true)

	t.Toggle = lipgloss.NewStyle().
		Foreground(OverlayDim)

	t.ToggleDone = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)

	t.DeleteHint = lipgloss.NewStyle().
		Foreground(Rose)

	t.Cursor = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)

	// Empty state
	t.EmptyIcon = lipgloss.NewStyle().
		Foreground(OverlayDim).
		Align(lipgloss.Center)

	t.EmptyTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Align(lipgloss.Center)

	t.EmptyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)

	// Help
	t.HelpBar = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HelpOverlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Violet).
		Padding(1, 2)

	// Notices
	t.NoticeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.NoticeSuccess = lipgloss.NewStyle().
		Foreground(Emerald).
		Padding(0, 1)

	t.NoticeFailure = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Padding(0, 1)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// CardWidth returns the width of the main card: the full terminal on narrow
// screens, capped on wide ones.
func (t *Theme) CardWidth() int {
	const maxCard = 72
	w := t.Width - 4
	if w > maxCard {
		w = maxCard
	}
	if w < 30 {
		w = 30
	}
	return w
}
