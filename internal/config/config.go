package config

import "time"

const (
	// Canvas coordinate space (all geometry is laid out in these units)
	CanvasWidth   = 400.0
	CanvasHeight  = 300.0
	RotateCenterX = 200.0 // Pivot for rotation and scale
	RotateCenterY = 150.0
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// Triangle layout: vertices on a circle at 0°, 120°, 240°
	TriangleCenterX = 200.0
	TriangleCenterY = 175.0
	TriangleRadius  = 115.47

	// Normalised outline lengths used for trail math
	TrianglePathLength = 600.0
	SquarePathLength   = 800.0
	TrailLengthRatio   = 1.0 / 6.0

	// Breath curves
	MinScale     = 0.95
	MaxScale     = 1.10
	MinGlow      = 0.0
	MaxGlow      = 1.0
	DimGlowFloor = 0.3

	// Marker
	MarkerRadiusNormal = 6.0
	MarkerRadiusPulse  = 10.0
	RippleMaxRadius    = 30.0

	// Pulse timing (wall clock, independent of phases)
	PulseInterval = 1000 * time.Millisecond
	PulseDuration = 500 * time.Millisecond

	// Session defaults
	DefaultPhaseDurationMs = 4000
	TargetFPS              = 30
	DeltaHistorySize       = 60 // Frame deltas kept for the FPS readout

	// App
	AppName    = "BREATHE"
	AppVersion = "1.0"
	AppDataDir = ".config/breathe"
)
