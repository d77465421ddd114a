package ui

import (
	"fmt"
	"strings"
	"time"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/preset"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderPresetDetail renders the selected preset's details under the list:
// fields, per-phase duration bars, the recent glow sparkline and a dial
// showing the drawing's rotation.
func RenderPresetDetail(p preset.Pattern, width, height int, f animation.Frame, glowHistory []float64, now time.Time) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{
		StylePanelTitle.Render("DETAIL"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}

	kind := "built-in"
	if p.IsCustom {
		kind = "custom"
	}
	fields := []struct{ label, value string }{
		{"Shape", p.Shape.String()},
		{"Cycle", (time.Duration(p.CycleDuration()) * time.Millisecond).String()},
		{"Cycles", fmt.Sprintf("%d", p.DefaultCycles)},
		{"Tempo", fmt.Sprintf("%gx", p.Tempo)},
		{"Level", string(p.Metadata.Difficulty)},
		{"Tags", p.Tags()},
		{"Added", humanize.RelTime(p.CreatedAt, now, "ago", "from now") + " (" + kind + ")"},
	}
	for _, fl := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf(" %-7s", fl.label))+StyleValue.Render(truncRaw(fl.value, innerW-8)))
	}
	lines = append(lines, "")

	lines = append(lines, renderPhaseBars(p, innerW)...)
	lines = append(lines, "")

	if len(glowHistory) > 0 {
		lines = append(lines, StyleLabel.Render(" Glow:"))
		spark := renderSparkline(glowHistory, innerW-2)
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(ColorTeal).Render(spark))
	}

	dialH := height - len(lines) - 3
	if dialH >= 5 {
		dialW := innerW
		if dialW > dialH*3 {
			dialW = dialH * 3
		}
		dial := RenderDial(dialW, dialH, f.RotationDegrees, f.GlowIntensity)
		pad := strings.Repeat(" ", max(0, (innerW-dialW)/2))
		for _, dl := range strings.Split(dial, "\n") {
			lines = append(lines, pad+dl)
		}
	}

	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return StylePanelActive.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// renderPhaseBars draws one bar per phase, scaled to the longest phase.
func renderPhaseBars(p preset.Pattern, width int) []string {
	longest := 0
	for _, ph := range p.Phases {
		if ph.Duration > longest {
			longest = ph.Duration
		}
	}
	if longest == 0 {
		return nil
	}

	barMax := width - 16
	if barMax < 4 {
		barMax = 4
	}
	out := make([]string, 0, len(p.Phases))
	for i, ph := range p.Phases {
		n := ph.Duration * barMax / longest
		if n < 1 {
			n = 1
		}
		role := animation.RoleOf(i, len(p.Phases))
		bar := lipgloss.NewStyle().Foreground(roleColor(role)).Render(strings.Repeat("█", n))
		name := ph.Label
		if name == "" {
			name = string(ph.Type)
		}
		out = append(out, StyleLabel.Render(fmt.Sprintf(" %-6s", truncRaw(name, 6)))+bar+
			StyleValue.Render(fmt.Sprintf(" %gs", float64(ph.Duration)/1000)))
	}
	return out
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	// glow is already in [0, 1]
	var sb strings.Builder
	for _, v := range values[start:] {
		idx := int(v * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
