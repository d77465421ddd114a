package animation

import (
	"fmt"
	"math"

	"breathe.klederson.com/internal/config"
)

// Trail describes the bright segment drawn behind the marker as a
// dash pattern on a closed path: Length drawn, Gap hidden, shifted by Offset.
type Trail struct {
	Length float64
	Gap    float64
	Offset float64
	Path   float64 // total path length the pattern repeats over
}

// MaxTrailLength is the cap on the visible trail for a path of length L.
func MaxTrailLength(pathLength float64) float64 {
	return pathLength * config.TrailLengthRatio
}

// DistanceTravelled converts cumulative phase-units into path distance.
// It is unbounded and grows for the lifetime of a session.
func DistanceTravelled(cumulative float64, phaseCount int, pathLength float64) float64 {
	return cumulative / float64(phaseCount) * pathLength
}

// TrailFor computes the trail descriptor from cumulative progress. The
// offset is built from the unwrapped distance; the dash pattern repeats every
// pathLength so wrapping is left to whoever draws it.
func TrailFor(cumulative float64, phaseCount int, pathLength float64) Trail {
	dist := DistanceTravelled(cumulative, phaseCount, pathLength)
	length := math.Min(dist, MaxTrailLength(pathLength))
	return Trail{
		Length: length,
		Gap:    pathLength - length,
		Offset: -dist + length,
		Path:   pathLength,
	}
}

// Head is the path distance of the trail's leading edge, in [0, Path).
func (t Trail) Head() float64 {
	return wrap(t.Length-t.Offset, t.Path)
}

// Covers reports whether the point at path distance s falls inside the
// drawn dash, using the same rule as an SVG stroke-dasharray/dashoffset.
func (t Trail) Covers(s float64) bool {
	if t.Length <= 0 || t.Path <= 0 {
		return false
	}
	return wrap(s+t.Offset, t.Path) < t.Length
}

// Fade returns 1 at the trail head falling to 0 at its tail, or 0 outside
// the trail.
func (t Trail) Fade(s float64) float64 {
	if !t.Covers(s) {
		return 0
	}
	return wrap(s+t.Offset, t.Path) / t.Length
}

// DashArray formats the pattern as an SVG stroke-dasharray value.
func (t Trail) DashArray() string {
	return fmt.Sprintf("%g %g", t.Length, t.Gap)
}

func wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	return v
}
