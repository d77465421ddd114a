package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Status is the data shown in the bottom bar.
type Status struct {
	Running      bool
	Phase        int
	PhaseCount   int
	Cycles       int
	TargetCycles int
	Rotation     float64
	CycleMs      int
	FPS          float64
	Message      string
	Err          error
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := StyleStatusPaused.Render("[STOPPED]")
	if s.Running {
		state = StyleStatusRunning.Render("[RUNNING]")
	}

	cycles := fmt.Sprintf("%d", s.Cycles)
	if s.TargetCycles > 0 {
		cycles = fmt.Sprintf("%d/%d", s.Cycles, s.TargetCycles)
	}
	cycle := time.Duration(s.CycleMs) * time.Millisecond

	info := fmt.Sprintf(" Phase: %d/%d  Cycles: %s  Cycle: %s  Rotation: %ddeg  FPS: %s",
		s.Phase+1, s.PhaseCount, cycles, cycle, int(s.Rotation), humanize.Ftoa(math.Round(s.FPS)))

	content := state + StyleStatusBar.UnsetPadding().Render(info)
	switch {
	case s.Err != nil:
		content += "  " + StyleStatusError.Render(s.Err.Error())
	case s.Message != "":
		content += "  " + StyleValue.Render(s.Message)
	}

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
