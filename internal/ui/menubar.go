package ui

import (
	"fmt"
	"strings"

	"breathe.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar: title, key help, session state and
// the active preset.
func RenderMenuBar(width int, keyHelp string, running bool, presetName string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	status := StyleStatusPaused.Render("PAUSED")
	if running {
		status = StyleStatusRunning.Render("BREATHING")
	}
	right := status + "  " + StyleMenuLabel.Render(presetName) + " "

	left := StyleMenuKey.Render(title)
	room := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if room > 0 && keyHelp != "" && lipgloss.Width(keyHelp) <= room {
		left += "  " + keyHelp
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
