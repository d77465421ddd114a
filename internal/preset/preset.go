// Package preset models named breathing patterns and persists them.
package preset

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/shape"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("preset not found")
	ErrBuiltin  = errors.New("built-in preset cannot be deleted")
	ErrInvalid  = errors.New("invalid preset")
)

// PhaseType is the breathing action of one phase.
type PhaseType string

const (
	PhaseIn   PhaseType = "in"
	PhaseHold PhaseType = "hold"
	PhaseOut  PhaseType = "out"
)

// Difficulty grades a pattern for display.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// VoiceCues selects spoken guidance.
type VoiceCues string

const (
	VoiceOff      VoiceCues = "off"
	VoiceCounts   VoiceCues = "counts"
	VoiceGuidance VoiceCues = "guidance"
)

// Phase is one timed segment of a pattern.
type Phase struct {
	Type     PhaseType `json:"type"`
	Duration int       `json:"duration"` // milliseconds
	Label    string    `json:"label,omitempty"`
}

// Metadata describes a pattern for browsing.
type Metadata struct {
	Tags          []string
	Difficulty    Difficulty
	TotalDuration int // milliseconds for one cycle
}

// Preferences are per-pattern session options.
type Preferences struct {
	Sound     bool
	Haptics   bool
	VoiceCues VoiceCues
}

// Pattern is a named breathing preset.
type Pattern struct {
	ID            string
	Name          string
	Description   string
	Shape         shape.Kind
	Phases        []Phase
	DefaultCycles int
	Tempo         float64 // 1.0 is normal speed
	Metadata      Metadata
	Preferences   Preferences
	CreatedAt     time.Time
	IsCustom      bool
	IsFavorite    bool
}

// roleOrder is the phase type sequence for each shape.
var roleOrder = map[shape.Kind][]PhaseType{
	shape.Triangle: {PhaseIn, PhaseHold, PhaseOut},
	shape.Square:   {PhaseIn, PhaseHold, PhaseOut, PhaseHold},
}

// NewCustom builds a user pattern with a fresh ID from per-phase durations.
func NewCustom(name string, k shape.Kind, durationsMs []int) Pattern {
	order := roleOrder[k]
	phases := make([]Phase, len(durationsMs))
	for i, d := range durationsMs {
		pt := PhaseHold
		if i < len(order) {
			pt = order[i]
		}
		phases[i] = Phase{Type: pt, Duration: d}
	}

	p := Pattern{
		ID:            uuid.New().String(),
		Name:          name,
		Shape:         k,
		Phases:        phases,
		DefaultCycles: 5,
		Tempo:         1.0,
		Metadata:      Metadata{Difficulty: Beginner},
		Preferences:   Preferences{VoiceCues: VoiceOff},
		CreatedAt:     time.Now(),
		IsCustom:      true,
	}
	p.Metadata.TotalDuration = p.CycleDuration()
	return p
}

// CycleDuration sums the phase durations in milliseconds.
func (p Pattern) CycleDuration() int {
	total := 0
	for _, ph := range p.Phases {
		total += ph.Duration
	}
	return total
}

// Validate checks the pattern can drive a session.
func (p Pattern) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !p.Shape.Valid() {
		return fmt.Errorf("%w: unknown shape", ErrInvalid)
	}
	if len(p.Phases) != p.Shape.PhaseCount() {
		return fmt.Errorf("%w: %s needs %d phases, got %d", ErrInvalid, p.Shape, p.Shape.PhaseCount(), len(p.Phases))
	}
	for i, ph := range p.Phases {
		switch ph.Type {
		case PhaseIn, PhaseHold, PhaseOut:
		default:
			return fmt.Errorf("%w: phase %d has type %q", ErrInvalid, i, ph.Type)
		}
		if ph.Duration <= 0 {
			return fmt.Errorf("%w: phase %d duration %dms", ErrInvalid, i, ph.Duration)
		}
	}
	if p.Tempo <= 0 || math.IsNaN(p.Tempo) || math.IsInf(p.Tempo, 0) {
		return fmt.Errorf("%w: tempo %v", ErrInvalid, p.Tempo)
	}
	if p.DefaultCycles < 0 {
		return fmt.Errorf("%w: default cycles %d", ErrInvalid, p.DefaultCycles)
	}
	return nil
}

// Config converts the pattern into an animation configuration. Tempo divides
// every duration, so 2.0 breathes twice as fast.
func (p Pattern) Config() (animation.Config, error) {
	if err := p.Validate(); err != nil {
		return animation.Config{}, err
	}

	cfg := animation.Config{
		Shape:            p.Shape,
		PhaseDurationsMs: make([]int, len(p.Phases)),
	}
	hasLabels := false
	labels := make([]string, len(p.Phases))
	for i, ph := range p.Phases {
		d := int(math.Round(float64(ph.Duration) / p.Tempo))
		if d < 1 {
			d = 1
		}
		cfg.PhaseDurationsMs[i] = d
		labels[i] = ph.Label
		if ph.Label != "" {
			hasLabels = true
		}
	}
	if hasLabels {
		cfg.Labels = labels
	}
	return cfg, nil
}

// Tags formats the metadata tags for display.
func (p Pattern) Tags() string {
	return strings.Join(p.Metadata.Tags, ", ")
}
