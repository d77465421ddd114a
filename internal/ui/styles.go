package ui

import (
	"breathe.klederson.com/internal/animation"
	"github.com/charmbracelet/lipgloss"
)

// Calm teal palette
var (
	ColorBright       = lipgloss.Color("#A8E6FF")
	ColorTeal         = lipgloss.Color("#5FA8D3")
	ColorMidTeal      = lipgloss.Color("#2E86AB")
	ColorDimTeal      = lipgloss.Color("#1F4E5F")
	ColorBarBg        = lipgloss.Color("#0B2530")
	ColorBorderBright = lipgloss.Color("#5FA8D3")
	ColorBorderNorm   = lipgloss.Color("#2E86AB")
	ColorFavorite     = lipgloss.Color("#FFD166")
	ColorError        = lipgloss.Color("#FF6B6B")
	ColorPaused       = lipgloss.Color("#F4A259")
	ColorInhale       = lipgloss.Color("#7FDBDA")
	ColorHold         = lipgloss.Color("#B8B8FF")
	ColorExhale       = lipgloss.Color("#F7B2AD")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorTeal)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorTeal).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorPaused).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StylePresetName = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StylePresetMeta = lipgloss.NewStyle().
			Foreground(ColorMidTeal)

	StyleFavorite = lipgloss.NewStyle().
			Foreground(ColorFavorite).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDimTeal)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMidTeal)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimTeal)
)

// roleColor colours a phase by its breathing role.
func roleColor(r animation.Role) lipgloss.Color {
	switch r {
	case animation.Inhale:
		return ColorInhale
	case animation.Exhale:
		return ColorExhale
	default:
		return ColorHold
	}
}
