package animation

import (
	"math"
	"testing"

	"breathe.klederson.com/internal/config"
)

func TestScaleBoundaries(t *testing.T) {
	tests := []struct {
		phases, phase int
		start, end    float64
	}{
		{3, 0, config.MinScale, config.MaxScale},
		{3, 1, config.MaxScale, config.MaxScale},
		{3, 2, config.MaxScale, config.MinScale},
		{4, 0, config.MinScale, config.MaxScale},
		{4, 1, config.MaxScale, config.MaxScale},
		{4, 2, config.MaxScale, config.MinScale},
		{4, 3, config.MinScale, config.MinScale},
	}
	for _, tt := range tests {
		if got := ScaleOf(tt.phase, 0, tt.phases); got != tt.start {
			t.Errorf("ScaleOf(%d, 0, %d) = %v, want %v", tt.phase, tt.phases, got, tt.start)
		}
		if got := ScaleOf(tt.phase, 1, tt.phases); got != tt.end {
			t.Errorf("ScaleOf(%d, 1, %d) = %v, want %v", tt.phase, tt.phases, got, tt.end)
		}
	}
}

func TestScaleContinuousAcrossPhases(t *testing.T) {
	for _, n := range []int{3, 4} {
		for p := 0; p < n; p++ {
			end := ScaleOf(p, 1, n)
			next := ScaleOf((p+1)%n, 0, n)
			if end != next {
				t.Errorf("n=%d: ScaleOf(%d,1)=%v != ScaleOf(%d,0)=%v", n, p, end, (p+1)%n, next)
			}
		}
	}
}

func TestScaleLinearDuringInhale(t *testing.T) {
	for _, p := range []float64{0.25, 0.5, 0.75} {
		want := 0.95 + 0.15*p
		if got := ScaleOf(0, p, 3); math.Abs(got-want) > 1e-12 {
			t.Errorf("ScaleOf(0, %v) = %v, want %v", p, got, want)
		}
	}
}

func TestScaleWithinRange(t *testing.T) {
	for _, n := range []int{3, 4} {
		for p := 0; p < n; p++ {
			for i := 0; i <= 20; i++ {
				v := ScaleOf(p, float64(i)/20, n)
				if v < config.MinScale-1e-12 || v > config.MaxScale+1e-12 {
					t.Errorf("ScaleOf(%d, %v, %d) = %v out of range", p, float64(i)/20, n, v)
				}
			}
		}
	}
}

func TestGlowTable(t *testing.T) {
	tests := []struct {
		name          string
		phases, phase int
		progress      float64
		want          float64
	}{
		{"inhale start", 3, 0, 0, 0},
		{"inhale quarter", 3, 0, 0.25, 0.25},
		{"inhale end", 4, 0, 1, 1},
		{"hold full", 4, 1, 0.5, 1},
		{"exhale start", 3, 2, 0, 1},
		{"exhale end", 3, 2, 1, 0.3},
		{"exhale mid", 4, 2, 0.5, 0.65},
		{"hold empty", 4, 3, 0.7, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GlowOf(tt.phase, tt.progress, tt.phases)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("GlowOf(%d, %v, %d) = %v, want %v", tt.phase, tt.progress, tt.phases, got, tt.want)
			}
		})
	}
}

func TestGlowContinuousExceptCycleWrap(t *testing.T) {
	for _, n := range []int{3, 4} {
		for p := 0; p < n-1; p++ {
			if GlowOf(p, 1, n) != GlowOf(p+1, 0, n) {
				t.Errorf("n=%d: glow discontinuous between %d and %d", n, p, p+1)
			}
		}
		// the new inhale restarts from zero glow
		if GlowOf(0, 0, n) != config.MinGlow {
			t.Errorf("n=%d: inhale does not start at min glow", n)
		}
	}
}

func TestRoleOf(t *testing.T) {
	if RoleOf(2, 3) != Exhale || RoleOf(2, 4) != Exhale {
		t.Error("phase 2 should be exhale")
	}
	if RoleOf(3, 4) != HoldEmpty {
		t.Error("phase 3 of 4 should be hold-empty")
	}
	if RoleOf(1, 3).String() != "hold-full" {
		t.Errorf("RoleOf(1,3) = %v", RoleOf(1, 3))
	}
}
