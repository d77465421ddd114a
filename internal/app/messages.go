package app

import (
	"time"

	"breathe.klederson.com/internal/animation"
)

// TickMsg triggers a frame update for animation.
type TickMsg time.Time

// PulseEndMsg fires when a pulse's visible window is over.
type PulseEndMsg struct {
	Token animation.PulseToken
}

// ErrorMsg reports a failed store or session operation to the status bar.
type ErrorMsg struct {
	Err error
}
