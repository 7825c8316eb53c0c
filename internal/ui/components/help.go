// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/taskmgr-tui/internal/ui/styles"
)

// =============================================================================
// HELP BAR COMPONENT - One-line key hints
// =============================================================================

// HelpBar renders the short key help for whatever currently has focus.
type HelpBar struct {
	model   help.Model
	theme   *styles.Theme
	visible bool
}

// NewHelpBar creates a visible help bar.
func NewHelpBar(theme *styles.Theme) *HelpBar {
	m := help.New()
	m.ShortSeparator = " • "
	if theme.Symbols.Cursor == styles.ASCIISymbols.Cursor {
		m.ShortSeparator = " | "
	}
	m.Styles.ShortKey = theme.HelpKey
	m.Styles.ShortDesc = theme.HelpDesc
	m.Styles.ShortSeparator = theme.HelpDesc
	m.Styles.FullKey = theme.HelpKey
	m.Styles.FullDesc = theme.HelpDesc
	m.Styles.FullSeparator = theme.HelpDesc
	m.Styles.Ellipsis = theme.HelpDesc

	return &HelpBar{
		model:   m,
		theme:   theme,
		visible: true,
	}
}

// SetWidth limits the bar width; bindings that do not fit are elided.
func (h *HelpBar) SetWidth(width int) {
	h.model.Width = width - h.theme.HelpBar.GetHorizontalFrameSize()
}

// SetVisible shows or hides the bar.
func (h *HelpBar) SetVisible(visible bool) {
	h.visible = visible
}

// Visible returns whether the bar is shown.
func (h *HelpBar) Visible() bool {
	return h.visible
}

// View renders the short help of keys, or nothing when hidden.
func (h *HelpBar) View(keys help.KeyMap) string {
	if !h.visible || keys == nil {
		return ""
	}
	return h.theme.HelpBar.Render(h.model.ShortHelpView(keys.ShortHelp()))
}

// =============================================================================
// HELP OVERLAY COMPONENT - Full key reference
// =============================================================================

// HelpOverlay renders the full key reference as Markdown through glamour.
type HelpOverlay struct {
	theme    *styles.Theme
	width    int
	visible  bool
	markdown string

	// Rendering is slow enough to cache between frames
	rendered      string
	renderedWidth int
}

// NewHelpOverlay creates a hidden overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	return &HelpOverlay{
		theme: theme,
		width: 60,
	}
}

// SetMarkdown replaces the overlay content.
func (o *HelpOverlay) SetMarkdown(md string) {
	if md != o.markdown {
		o.markdown = md
		o.rendered = ""
	}
}

// Markdown returns the raw overlay content.
func (o *HelpOverlay) Markdown() string {
	return o.markdown
}

// SetWidth sets the overlay width.
func (o *HelpOverlay) SetWidth(width int) {
	o.width = width
}

// Show opens the overlay.
func (o *HelpOverlay) Show() { o.visible = true }

// Hide closes the overlay.
func (o *HelpOverlay) Hide() { o.visible = false }

// Toggle flips the overlay between open and closed.
func (o *HelpOverlay) Toggle() { o.visible = !o.visible }

// Visible returns whether the overlay is open.
func (o *HelpOverlay) Visible() bool {
	return o.visible
}

// View renders the overlay, or nothing when it is closed.
func (o *HelpOverlay) View() string {
	if !o.visible {
		return ""
	}
	return o.theme.HelpOverlay.Render(o.render())
}

// render converts the Markdown for the current width, falling back to the
// raw text when glamour fails.
func (o *HelpOverlay) render() string {
	// Border and padding of the HelpOverlay style
	wrap := o.width - 6
	if wrap < 20 {
		wrap = 20
	}
	if o.rendered != "" && o.renderedWidth == wrap {
		return o.rendered
	}

	style := "light"
	if o.theme.IsDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return o.markdown
	}
	out, err := renderer.Render(o.markdown)
	if err != nil {
		return o.markdown
	}

	o.rendered = strings.Trim(out, "\n")
	o.renderedWidth = wrap
	return o.rendered
}

// HelpMarkdown builds a Markdown key reference: one table per group of
// bindings. Disabled bindings are left out.
func HelpMarkdown(title string, sections []string, groups [][]key.Binding) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n")

	for i, group := range groups {
		rows := make([]string, 0, len(group))
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			rows = append(rows, "| `"+h.Key+"` | "+h.Desc+" |")
		}
		if len(rows) == 0 {
			continue
		}

		b.WriteString("\n")
		if i < len(sections) && sections[i] != "" {
			b.WriteString("## " + sections[i] + "\n\n")
		}
		b.WriteString("| Key | Action |\n| --- | --- |\n")
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
