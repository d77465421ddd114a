package animation

import "breathe.klederson.com/internal/config"

// State is the animation value object advanced once per frame.
type State struct {
	CurrentPhase       int
	PhaseProgress      float64 // [0, 1)
	CumulativeProgress float64 // phase-units since reset, never wrapped
	Rotation           float64 // degrees, unwrapped
	Scale              float64
	GlowIntensity      float64
	PulseVisible       bool
}

// InitialState is the state at session start or after a reset.
func InitialState() State {
	return State{
		Scale:         config.MinScale,
		GlowIntensity: config.MinGlow,
	}
}

// DegreesPerMs is the rotation speed that turns the drawing once per cycle.
func DegreesPerMs(phaseDurationMs float64, phaseCount int) float64 {
	return 360 / (phaseDurationMs * float64(phaseCount))
}

// Tick advances s by deltaMs. When the phase completes, the phase index
// wraps modulo phaseCount and progress restarts at 0; any overshoot past the
// boundary is dropped. Cumulative progress always receives the full delta.
// Scale and glow are recomputed from the resulting phase and progress.
func Tick(s State, deltaMs, phaseDurationMs float64, phaseCount int, degreesPerMs float64) State {
	next := s
	next.Rotation = s.Rotation - deltaMs*degreesPerMs

	progressDelta := deltaMs / phaseDurationMs
	next.CumulativeProgress = s.CumulativeProgress + progressDelta

	raw := s.PhaseProgress + progressDelta
	if raw >= 1 {
		next.CurrentPhase = (s.CurrentPhase + 1) % phaseCount
		next.PhaseProgress = 0
	} else {
		next.PhaseProgress = raw
	}

	next.Scale = ScaleOf(next.CurrentPhase, next.PhaseProgress, phaseCount)
	next.GlowIntensity = GlowOf(next.CurrentPhase, next.PhaseProgress, phaseCount)
	return next
}

// CompletedCycles counts whole cycles travelled since reset.
func (s State) CompletedCycles(phaseCount int) int {
	return int(s.CumulativeProgress / float64(phaseCount))
}
