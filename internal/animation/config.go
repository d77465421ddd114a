package animation

import (
	"errors"
	"fmt"

	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
)

var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrInvalidPhaseCount = errors.New("invalid phase count")
	ErrInvalidDuration   = errors.New("invalid phase duration")
	ErrSessionActive     = errors.New("session is active")
)

var defaultLabels = map[shape.Kind][]string{
	shape.Triangle: {"Breathe In", "Hold", "Breathe Out"},
	shape.Square:   {"Breathe In", "Hold", "Breathe Out", "Hold"},
}

// Config is the immutable input for one session.
type Config struct {
	Shape            shape.Kind
	PhaseDurationsMs []int
	Labels           []string // optional per-phase overrides
}

// UniformConfig builds a config with every phase lasting durationMs.
func UniformConfig(k shape.Kind, durationMs int) Config {
	d := make([]int, k.PhaseCount())
	for i := range d {
		d[i] = durationMs
	}
	return Config{Shape: k, PhaseDurationsMs: d}
}

// DefaultConfig is the uniform 4 second configuration for k.
func DefaultConfig(k shape.Kind) Config {
	return UniformConfig(k, config.DefaultPhaseDurationMs)
}

// Validate rejects configurations the core is not defined for.
func (c Config) Validate() error {
	if !c.Shape.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidShape, c.Shape)
	}
	if len(c.PhaseDurationsMs) != c.Shape.PhaseCount() {
		return fmt.Errorf("%w: %s needs %d phases, got %d",
			ErrInvalidPhaseCount, c.Shape, c.Shape.PhaseCount(), len(c.PhaseDurationsMs))
	}
	for i, d := range c.PhaseDurationsMs {
		if d <= 0 {
			return fmt.Errorf("%w: phase %d is %dms", ErrInvalidDuration, i, d)
		}
	}
	if len(c.Labels) != 0 && len(c.Labels) != len(c.PhaseDurationsMs) {
		return fmt.Errorf("%w: %d labels for %d phases",
			ErrInvalidPhaseCount, len(c.Labels), len(c.PhaseDurationsMs))
	}
	return nil
}

// PhaseCount is the number of phases per cycle.
func (c Config) PhaseCount() int {
	return c.Shape.PhaseCount()
}

// CycleDurationMs is the sum of all phase durations.
func (c Config) CycleDurationMs() int {
	total := 0
	for _, d := range c.PhaseDurationsMs {
		total += d
	}
	return total
}

// PhaseDurationMs is the single duration the tick math runs on: the mean of
// the phase durations, so one cycle still takes CycleDurationMs.
func (c Config) PhaseDurationMs() float64 {
	return float64(c.CycleDurationMs()) / float64(c.PhaseCount())
}

// Label returns the display name of phase.
func (c Config) Label(phase int) string {
	if phase >= 0 && phase < len(c.Labels) && c.Labels[phase] != "" {
		return c.Labels[phase]
	}
	labels := defaultLabels[c.Shape]
	if phase >= 0 && phase < len(labels) {
		return labels[phase]
	}
	return ""
}
