package preset

import (
	"time"

	"breathe.klederson.com/internal/shape"
)

// DefaultSelectedID is selected on first run and after a reset.
const DefaultSelectedID = "triangle-classic"

// Defaults returns the built-in patterns in display order.
func Defaults() []Pattern {
	now := time.Now()
	prefs := Preferences{VoiceCues: VoiceOff}

	patterns := []Pattern{
		{
			ID:            "triangle-classic",
			Name:          "Triangle Breathing",
			Description:   "Classic 3-phase breathing for focus and calm",
			Shape:         shape.Triangle,
			Phases:        []Phase{{PhaseIn, 4000, ""}, {PhaseHold, 4000, ""}, {PhaseOut, 4000, ""}},
			DefaultCycles: 5,
			Metadata:      Metadata{Tags: []string{"focus", "calm", "beginner"}, Difficulty: Beginner},
		},
		{
			ID:            "square-box",
			Name:          "Square Breathing",
			Description:   "4-phase breathing for stress relief",
			Shape:         shape.Square,
			Phases:        []Phase{{PhaseIn, 4000, ""}, {PhaseHold, 4000, ""}, {PhaseOut, 4000, ""}, {PhaseHold, 4000, ""}},
			DefaultCycles: 4,
			Metadata:      Metadata{Tags: []string{"stress-relief", "anxiety", "beginner"}, Difficulty: Beginner},
		},
		{
			ID:            "triangle-quick",
			Name:          "Quick Focus",
			Description:   "Fast-paced triangle breathing for quick energy",
			Shape:         shape.Triangle,
			Phases:        []Phase{{PhaseIn, 3000, ""}, {PhaseHold, 2000, ""}, {PhaseOut, 3000, ""}},
			DefaultCycles: 6,
			Metadata:      Metadata{Tags: []string{"energy", "focus", "intermediate"}, Difficulty: Intermediate},
		},
		{
			ID:            "square-deep",
			Name:          "Deep Relaxation",
			Description:   "Slower square breathing for deep relaxation",
			Shape:         shape.Square,
			Phases:        []Phase{{PhaseIn, 5000, ""}, {PhaseHold, 5000, ""}, {PhaseOut, 6000, ""}, {PhaseHold, 4000, ""}},
			DefaultCycles: 3,
			Metadata:      Metadata{Tags: []string{"sleep", "relaxation", "intermediate"}, Difficulty: Intermediate},
		},
	}

	for i := range patterns {
		patterns[i].Tempo = 1.0
		patterns[i].Preferences = prefs
		patterns[i].CreatedAt = now
		patterns[i].Metadata.TotalDuration = patterns[i].CycleDuration()
	}
	return patterns
}
