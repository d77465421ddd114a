package animation

import "breathe.klederson.com/internal/config"

// Role is the breathing role a phase plays in the cycle.
type Role int

const (
	Inhale Role = iota
	HoldFull
	Exhale
	HoldEmpty
)

func (r Role) String() string {
	switch r {
	case Inhale:
		return "inhale"
	case HoldFull:
		return "hold-full"
	case Exhale:
		return "exhale"
	case HoldEmpty:
		return "hold-empty"
	}
	return "unknown"
}

// RoleOf maps a phase index to its role. Three-phase cycles have no
// hold-empty; index 2 is always the exhale.
func RoleOf(phase, phaseCount int) Role {
	switch phase {
	case 0:
		return Inhale
	case 1:
		return HoldFull
	case 2:
		return Exhale
	}
	if phaseCount >= 4 {
		return HoldEmpty
	}
	return Exhale
}

// lerp is exact at both ends.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// ScaleOf returns the shape scale for a phase at the given progress.
func ScaleOf(phase int, progress float64, phaseCount int) float64 {
	switch RoleOf(phase, phaseCount) {
	case Inhale:
		return lerp(config.MinScale, config.MaxScale, progress)
	case HoldFull:
		return config.MaxScale
	case Exhale:
		return lerp(config.MaxScale, config.MinScale, progress)
	default:
		return config.MinScale
	}
}

// GlowOf returns the marker glow intensity for a phase at the given progress.
// Glow drops from the dim floor back to zero when a new inhale begins.
func GlowOf(phase int, progress float64, phaseCount int) float64 {
	switch RoleOf(phase, phaseCount) {
	case Inhale:
		return lerp(config.MinGlow, config.MaxGlow, progress)
	case HoldFull:
		return config.MaxGlow
	case Exhale:
		return lerp(config.MaxGlow, config.DimGlowFloor, progress)
	default:
		return config.DimGlowFloor
	}
}
