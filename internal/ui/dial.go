package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RenderDial renders a small ring with a needle at deg (0 = north, clockwise)
// whose colour follows the glow intensity.
func RenderDial(width, height int, deg, glow float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]rune, height)
	isNeedle := make([][]bool, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
		isNeedle[i] = make([]bool, width)
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := math.Max(fcx-1, 3) // columns
	ry := math.Max(fcy-1, 2) // rows

	steps := 64
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		setCell(grid, col, row, '·')
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))

	rad := deg * math.Pi / 180
	sinA, cosA := math.Sin(rad), math.Cos(rad)
	shaft := int(math.Max(rx, ry) * 0.8)
	if shaft < 2 {
		shaft = 2
	}
	for s := 1; s <= shaft; s++ {
		t := float64(s) / float64(shaft) * 0.8
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if setCell(grid, col, row, needleChar(rad)) {
			isNeedle[row][col] = true
		}
	}
	setCell(grid, cx, cy, '+')

	needleSty := lipgloss.NewStyle().Foreground(lipgloss.Color(needleColor(glow))).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorDimTeal)
	hubSty := lipgloss.NewStyle().Foreground(ColorBright).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case ch == '+':
				sb.WriteString(hubSty.Render("+"))
			case isNeedle[row][col]:
				sb.WriteString(needleSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func setCell(grid [][]rune, col, row int, ch rune) bool {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return false
	}
	grid[row][col] = ch
	return true
}

// needleChar picks the line glyph for a direction in radians.
func needleChar(a float64) rune {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch int(math.Round(a/(math.Pi/4))) % 8 {
	case 0, 4:
		return '|'
	case 2, 6:
		return '-'
	case 1, 5:
		return '/'
	default:
		return '\\'
	}
}

func needleColor(glow float64) string {
	dim, _ := colorful.Hex(string(ColorMidTeal))
	bright, _ := colorful.Hex(string(ColorBright))
	return dim.BlendLab(bright, math.Max(0, math.Min(1, glow))).Clamped().Hex()
}
