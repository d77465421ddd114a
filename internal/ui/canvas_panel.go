package ui

import (
	"fmt"
	"strings"

	"breathe.klederson.com/internal/animation"
	"github.com/charmbracelet/lipgloss"
)

// RenderCanvasPanel wraps the drawing with a styled border.
// The canvas itself is rendered by the caller to avoid import cycles.
func RenderCanvasPanel(width, height int, content, footer string) string {
	sty := StylePanelBorder
	return sty.Width(width - 2).Height(height - 2).Render(content + "\n" + footer)
}

// RenderPhaseLine shows the current phase label, its role and a progress bar.
func RenderPhaseLine(width int, f animation.Frame) string {
	label := lipgloss.NewStyle().Foreground(roleColor(f.Role)).Bold(true).
		Render(fmt.Sprintf(" %-12s", f.Label))
	role := StyleLabel.Render(fmt.Sprintf("%-11s", f.Role))

	barW := width - lipgloss.Width(label) - lipgloss.Width(role) - 4
	if barW < 4 {
		return label + role
	}
	return label + role + " " + progressBar(f.PhaseProgress, barW, roleColor(f.Role))
}

func progressBar(progress float64, width int, color lipgloss.Color) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	on := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled))
	off := StyleSeparator.Render(strings.Repeat("─", width-filled))
	return StyleHelp.Render("[") + on + off + StyleHelp.Render("]")
}
