package ui

import (
	"fmt"
	"strings"

	"breathe.klederson.com/internal/preset"
	"github.com/charmbracelet/lipgloss"
)

// Cursor row style: dark text on the bright accent
var cursorRowSty = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#04141A")).
	Background(ColorBright).
	Bold(true)

// RenderPresetList renders the scrollable preset list. The header stays fixed
// at the top; entries scroll so the cursor is always visible. activeID marks
// the preset driving the session.
func RenderPresetList(presets []preset.Pattern, width, height, cursorIndex int, activeID string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("PRESETS [%d]", len(presets)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	space := innerH - len(headerLines)

	var lines []string
	if len(presets) == 0 {
		lines = append(lines, StyleHelp.Render(" No presets"))
	} else {
		const linesPerEntry = 2
		maxVisible := space / linesPerEntry
		if maxVisible < 1 {
			maxVisible = 1
		}
		viewStart := 0
		if cursorIndex >= maxVisible {
			viewStart = cursorIndex - maxVisible + 1
		}
		for i := viewStart; i < len(presets) && len(lines) < space; i++ {
			entry := renderPresetEntry(presets[i], innerW, i == cursorIndex, presets[i].ID == activeID)
			for _, l := range entry {
				if len(lines) >= space {
					break
				}
				lines = append(lines, l)
			}
		}
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := append(headerLines, lines...)
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; clamp to exactly height lines.
	out := strings.Split(rendered, "\n")
	if len(out) > height {
		out = out[:height]
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func renderPresetEntry(p preset.Pattern, maxW int, isCursor, isActive bool) []string {
	cursor := "  "
	if isCursor {
		cursor = "> "
	}
	active := " "
	if isActive {
		active = "*"
	}
	fav := " "
	if p.IsFavorite {
		fav = "♥"
	}

	raw1 := truncRaw(fmt.Sprintf("%s%s %s %s", cursor, active, fav, p.Name), maxW)
	raw2 := truncRaw(fmt.Sprintf("      %s  %s  %s", p.Shape, phaseSummary(p), p.Metadata.Difficulty), maxW)

	if isCursor {
		return []string{cursorRowSty.Render(raw1), cursorRowSty.Render(raw2)}
	}

	line1 := cursor + active + " " + StyleFavorite.Render(fav) + " " + StylePresetName.Render(truncRaw(p.Name, maxW-6))
	return []string{line1, StylePresetMeta.Render(raw2)}
}

// phaseSummary formats the phase durations in seconds, e.g. "4-4-4".
func phaseSummary(p preset.Pattern) string {
	parts := make([]string, len(p.Phases))
	for i, ph := range p.Phases {
		parts[i] = fmt.Sprintf("%g", float64(ph.Duration)/1000)
	}
	return strings.Join(parts, "-")
}

// truncRaw pads or truncates a string to exactly w runes.
func truncRaw(s string, w int) string {
	if w < 0 {
		w = 0
	}
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
