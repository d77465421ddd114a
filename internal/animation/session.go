package animation

import (
	"fmt"
	"time"

	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
)

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	Position        shape.Position
	RotationDegrees float64 // wrapped to [0, 360)
	Scale           float64
	GlowIntensity   float64
	Trail           Trail
	PulseVisible    bool
	MarkerRadius    float64

	Shape           shape.Kind
	CurrentPhase    int
	PhaseProgress   float64
	Role            Role
	Label           string
	CompletedCycles int
	Active          bool
}

// Session owns one animation run: its configuration, state and pulse timer.
// It is driven by a single caller and is not safe for concurrent use.
type Session struct {
	cfg             Config
	phaseDurationMs float64
	degreesPerMs    float64

	state  State
	pulse  *PulseScheduler
	active bool
	last   time.Time
}

// NewSession validates cfg and returns a stopped session in its initial state.
func NewSession(cfg Config) (*Session, error) {
	s := &Session{
		pulse: NewPulseScheduler(config.PulseInterval, config.PulseDuration),
	}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("session config: %w", err)
	}
	s.cfg = cfg
	s.phaseDurationMs = cfg.PhaseDurationMs()
	s.degreesPerMs = DegreesPerMs(s.phaseDurationMs, cfg.PhaseCount())
	s.state = InitialState()
	return nil
}

// Config returns the active configuration.
func (s *Session) Config() Config { return s.cfg }

// State returns a copy of the current animation state.
func (s *Session) State() State { return s.state }

// Active reports whether the session is accepting ticks.
func (s *Session) Active() bool { return s.active }

// DegreesPerMs returns the rotation speed derived from the configuration.
func (s *Session) DegreesPerMs() float64 { return s.degreesPerMs }

// Start begins ticking from now. Starting an active session does nothing.
func (s *Session) Start(now time.Time) {
	if s.active {
		return
	}
	s.active = true
	s.last = now
	s.pulse.Start(now)
}

// Stop halts ticking and cancels any pending pulse clear. State is kept.
func (s *Session) Stop() {
	s.active = false
	s.pulse.Stop()
	s.state.PulseVisible = false
}

// Reset returns to the initial state, discarding cumulative progress.
// Pending pulse clears are invalidated; an active session keeps running.
func (s *Session) Reset() {
	s.state = InitialState()
	if s.active {
		s.pulse.Start(s.last)
	} else {
		s.pulse.Stop()
	}
}

// Restart resets and starts again from now.
func (s *Session) Restart(now time.Time) {
	s.Stop()
	s.Reset()
	s.Start(now)
}

// Reconfigure swaps the configuration and resets. It is refused while the
// session is active.
func (s *Session) Reconfigure(cfg Config) error {
	if s.active {
		return ErrSessionActive
	}
	if err := s.apply(cfg); err != nil {
		return err
	}
	s.pulse.Stop()
	return nil
}

// Advance feeds the wall-clock time of a new frame. The delta since the
// previous frame is clamped at zero, so a clock that steps backwards never
// rewinds the animation. The returned Pulse is non-nil when a pulse was armed;
// callers that schedule their own clear timer pass its token to EndPulse.
func (s *Session) Advance(now time.Time) (Frame, *Pulse) {
	if !s.active {
		return s.Frame(), nil
	}

	delta := now.Sub(s.last)
	if delta < 0 {
		delta = 0
	} else {
		s.last = now
	}

	s.state = Tick(s.state, durationMs(delta), s.phaseDurationMs, s.cfg.PhaseCount(), s.degreesPerMs)
	armed := s.pulse.Update(now)
	s.state.PulseVisible = s.pulse.Visible()
	return s.Frame(), armed
}

// EndPulse clears the pulse armed with token, if it is still current.
func (s *Session) EndPulse(token PulseToken) bool {
	ok := s.pulse.End(token)
	s.state.PulseVisible = s.pulse.Visible()
	return ok
}

// Frame projects the current state into render output.
func (s *Session) Frame() Frame {
	st := s.state
	n := s.cfg.PhaseCount()
	k := s.cfg.Shape

	radius := config.MarkerRadiusNormal
	if st.PulseVisible {
		radius = config.MarkerRadiusPulse
	}

	return Frame{
		Position:        shape.PointOnShape(k, st.CurrentPhase, st.PhaseProgress),
		RotationDegrees: shape.NormalizeDegrees(st.Rotation),
		Scale:           st.Scale,
		GlowIntensity:   st.GlowIntensity,
		Trail:           TrailFor(st.CumulativeProgress, n, k.PathLength()),
		PulseVisible:    st.PulseVisible,
		MarkerRadius:    radius,
		Shape:           k,
		CurrentPhase:    st.CurrentPhase,
		PhaseProgress:   st.PhaseProgress,
		Role:            RoleOf(st.CurrentPhase, n),
		Label:           s.cfg.Label(st.CurrentPhase),
		CompletedCycles: st.CompletedCycles(n),
		Active:          s.active,
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
