// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestPaletteColorsAreHex(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"Violet", Violet},
		{"VioletDeep", VioletDeep},
		{"Purple", Purple},
		{"Rose", Rose},
		{"Emerald", Emerald},
		{"Surface", Surface},
		{"SurfaceDim", SurfaceDim},
		{"SurfaceBright", SurfaceBright},
		{"Overlay", Overlay},
		{"OverlayDim", OverlayDim},
		{"TextPrimary", TextPrimary},
		{"TextSecondary", TextSecondary},
		{"TextMuted", TextMuted},
		{"TextInverse", TextInverse},
	}

	for _, c := range colors {
		for variant, hex := range map[string]string{"Light": c.color.Light, "Dark": c.color.Dark} {
			if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
				t.Errorf("%s.%s = %q, want #RRGGBB", c.name, variant, hex)
			}
		}
	}
}

// =============================================================================
// SYMBOL TESTS
// =============================================================================

func TestASCIISymbolsArePlainASCII(t *testing.T) {
	symbols := []string{
		ASCIISymbols.ToggleOpen,
		ASCIISymbols.ToggleDone,
		ASCIISymbols.Add,
		ASCIISymbols.Delete,
		ASCIISymbols.Cursor,
		ASCIISymbols.Clipboard,
		ASCIISymbols.Info,
		ASCIISymbols.Success,
		ASCIISymbols.Failure,
	}

	for _, s := range symbols {
		for _, r := range s {
			if r > 127 {
				t.Errorf("ASCII symbol %q contains non-ASCII rune %q", s, r)
			}
		}
	}
}

func TestToggleSymbolsDiffer(t *testing.T) {
	for name, set := range map[string]Symbols{"unicode": UnicodeSymbols, "ascii": ASCIISymbols} {
		if set.ToggleOpen == set.ToggleDone {
			t.Errorf("%s: open and done toggles must differ", name)
		}
	}
}
