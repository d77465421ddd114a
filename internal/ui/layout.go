package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the canvas panel and side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, canvasPanel, side, statusBar string, width int) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, canvasPanel, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
