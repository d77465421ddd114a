package animation

import (
	"errors"
	"math"
	"testing"
	"time"

	"breathe.klederson.com/internal/shape"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"triangle ok", DefaultConfig(shape.Triangle), nil},
		{"square ok", DefaultConfig(shape.Square), nil},
		{"bad shape", Config{Shape: shape.Kind(9), PhaseDurationsMs: []int{1, 1, 1}}, ErrInvalidShape},
		{"wrong count", Config{Shape: shape.Square, PhaseDurationsMs: []int{1000, 1000, 1000}}, ErrInvalidPhaseCount},
		{"zero duration", Config{Shape: shape.Triangle, PhaseDurationsMs: []int{1000, 0, 1000}}, ErrInvalidDuration},
		{"negative duration", Config{Shape: shape.Triangle, PhaseDurationsMs: []int{-5, 1000, 1000}}, ErrInvalidDuration},
		{"label mismatch", Config{Shape: shape.Triangle, PhaseDurationsMs: []int{1, 1, 1}, Labels: []string{"a"}}, ErrInvalidPhaseCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigPhaseDurationIsMean(t *testing.T) {
	cfg := Config{Shape: shape.Square, PhaseDurationsMs: []int{5000, 5000, 6000, 4000}}
	if cfg.CycleDurationMs() != 20000 {
		t.Errorf("CycleDurationMs = %d", cfg.CycleDurationMs())
	}
	if cfg.PhaseDurationMs() != 5000 {
		t.Errorf("PhaseDurationMs = %v, want 5000", cfg.PhaseDurationMs())
	}
}

func TestConfigLabels(t *testing.T) {
	cfg := DefaultConfig(shape.Square)
	if cfg.Label(0) != "Breathe In" || cfg.Label(3) != "Hold" {
		t.Errorf("labels = %q, %q", cfg.Label(0), cfg.Label(3))
	}
	cfg.Labels = []string{"", "Pause", "", ""}
	if cfg.Label(1) != "Pause" || cfg.Label(2) != "Breathe Out" {
		t.Errorf("override labels = %q, %q", cfg.Label(1), cfg.Label(2))
	}
	if cfg.Label(7) != "" {
		t.Errorf("out of range label = %q", cfg.Label(7))
	}
}

func TestNewSessionRejectsInvalid(t *testing.T) {
	_, err := NewSession(Config{Shape: shape.Triangle})
	if !errors.Is(err, ErrInvalidPhaseCount) {
		t.Fatalf("NewSession() err = %v, want ErrInvalidPhaseCount", err)
	}
}

func TestSessionInactiveIgnoresTime(t *testing.T) {
	s, err := NewSession(DefaultConfig(shape.Triangle))
	if err != nil {
		t.Fatal(err)
	}
	f, armed := s.Advance(time.Unix(100, 0))
	if armed != nil || f.Active || f.PhaseProgress != 0 {
		t.Errorf("inactive session advanced: %+v", f)
	}
}

func TestSessionAdvance(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Triangle))
	t0 := time.Unix(100, 0)
	s.Start(t0)

	f, _ := s.Advance(t0.Add(ms(1000)))
	if f.PhaseProgress != 0.25 || f.CurrentPhase != 0 {
		t.Fatalf("frame = phase %d progress %v", f.CurrentPhase, f.PhaseProgress)
	}
	if f.Label != "Breathe In" || f.Role != Inhale {
		t.Errorf("label/role = %q/%v", f.Label, f.Role)
	}
	want := shape.PointOnShape(shape.Triangle, 0, 0.25)
	if f.Position != want {
		t.Errorf("position = %+v, want %+v", f.Position, want)
	}
	if math.Abs(f.RotationDegrees-330) > 1e-9 {
		t.Errorf("rotation = %v, want 330 (one twelfth clockwise)", f.RotationDegrees)
	}
	if math.Abs(f.Trail.Length-50) > 1e-9 {
		t.Errorf("trail length = %v, want 50", f.Trail.Length)
	}
}

func TestSessionClampsClockRegression(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Square))
	t0 := time.Unix(100, 0)
	s.Start(t0)
	s.Advance(t0.Add(ms(400)))
	before := s.State()

	s.Advance(t0.Add(ms(100)))
	after := s.State()
	if after.CumulativeProgress != before.CumulativeProgress || after.Rotation != before.Rotation {
		t.Errorf("clock regression moved state: %+v -> %+v", before, after)
	}

	// progress resumes from the latest timestamp, not the regressed one
	s.Advance(t0.Add(ms(500)))
	if got := s.State().CumulativeProgress; math.Abs(got-500.0/4000) > 1e-12 {
		t.Errorf("cumulative = %v, want %v", got, 500.0/4000)
	}
}

func TestSessionPulse(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Square))
	t0 := time.Unix(100, 0)
	s.Start(t0)

	f, armed := s.Advance(t0.Add(ms(1000)))
	if armed == nil || !f.PulseVisible {
		t.Fatal("expected pulse at 1s")
	}
	if f.MarkerRadius != 10 {
		t.Errorf("marker radius = %v, want 10", f.MarkerRadius)
	}

	if !s.EndPulse(armed.Token) {
		t.Error("EndPulse rejected current token")
	}
	if s.Frame().PulseVisible || s.Frame().MarkerRadius != 6 {
		t.Error("pulse still visible after EndPulse")
	}
}

func TestSessionStopCancelsPulse(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Square))
	t0 := time.Unix(100, 0)
	s.Start(t0)
	_, armed := s.Advance(t0.Add(ms(1000)))
	s.Stop()
	if s.Frame().PulseVisible {
		t.Error("stop left pulse visible")
	}
	if s.EndPulse(armed.Token) {
		t.Error("stale pulse clear applied after stop")
	}
}

func TestSessionResetKeepsRunning(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Triangle))
	t0 := time.Unix(100, 0)
	s.Start(t0)
	_, armed := s.Advance(t0.Add(ms(1000)))
	s.Advance(t0.Add(ms(9000)))

	s.Reset()
	if s.State() != InitialState() {
		t.Errorf("Reset() state = %+v", s.State())
	}
	if !s.Active() {
		t.Error("Reset stopped an active session")
	}
	if s.EndPulse(armed.Token) {
		t.Error("pulse token survived reset")
	}

	f, _ := s.Advance(t0.Add(ms(10000)))
	if math.Abs(f.Trail.Length-50) > 1e-9 {
		t.Errorf("trail after reset = %v, want 50", f.Trail.Length)
	}
}

func TestSessionRestart(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Triangle))
	t0 := time.Unix(100, 0)
	s.Start(t0)
	s.Advance(t0.Add(ms(5000)))

	s.Restart(t0.Add(ms(6000)))
	f, _ := s.Advance(t0.Add(ms(7000)))
	if f.PhaseProgress != 0.25 || f.CurrentPhase != 0 {
		t.Errorf("after restart: phase %d progress %v", f.CurrentPhase, f.PhaseProgress)
	}
}

func TestSessionReconfigure(t *testing.T) {
	s, _ := NewSession(DefaultConfig(shape.Triangle))
	t0 := time.Unix(100, 0)
	s.Start(t0)
	s.Advance(t0.Add(ms(3000)))

	if err := s.Reconfigure(DefaultConfig(shape.Square)); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("Reconfigure while active = %v, want ErrSessionActive", err)
	}

	s.Stop()
	if err := s.Reconfigure(DefaultConfig(shape.Square)); err != nil {
		t.Fatalf("Reconfigure() error: %v", err)
	}
	if s.Config().Shape != shape.Square || s.State() != InitialState() {
		t.Errorf("reconfigure did not reset: %+v", s.State())
	}
	if s.DegreesPerMs() != 360.0/16000 {
		t.Errorf("DegreesPerMs = %v", s.DegreesPerMs())
	}

	if err := s.Reconfigure(Config{Shape: shape.Square}); err == nil {
		t.Error("invalid reconfigure accepted")
	}
	if s.Config().Shape != shape.Square {
		t.Error("failed reconfigure replaced config")
	}
}

func TestSessionCycleCount(t *testing.T) {
	s, _ := NewSession(UniformConfig(shape.Triangle, 1000))
	t0 := time.Unix(0, 0)
	s.Start(t0)
	var f Frame
	for i := 1; i <= 70; i++ {
		f, _ = s.Advance(t0.Add(ms(i * 100)))
	}
	if f.CompletedCycles != 2 {
		t.Errorf("CompletedCycles = %d, want 2", f.CompletedCycles)
	}
}
