package animation

import "time"

// PulseToken identifies one armed pulse. A deferred clear carrying a token
// that no longer matches the scheduler is stale and does nothing.
type PulseToken uint64

// Pulse is returned when the scheduler arms a new pulse.
type Pulse struct {
	Token   PulseToken
	ClearAt time.Time
}

// PulseScheduler raises a visibility flag every interval of wall-clock time
// and lowers it after duration. It knows nothing about phases.
type PulseScheduler struct {
	interval time.Duration
	duration time.Duration

	running   bool
	lastPulse time.Time
	clearAt   time.Time
	visible   bool
	gen       PulseToken
}

// NewPulseScheduler creates a stopped scheduler.
func NewPulseScheduler(interval, duration time.Duration) *PulseScheduler {
	return &PulseScheduler{interval: interval, duration: duration}
}

// Start begins counting intervals from now.
func (p *PulseScheduler) Start(now time.Time) {
	p.running = true
	p.lastPulse = now
	p.visible = false
	p.gen++
}

// Stop lowers the flag and invalidates any pending clear.
func (p *PulseScheduler) Stop() {
	p.running = false
	p.visible = false
	p.clearAt = time.Time{}
	p.gen++
}

// Update expires a pulse whose clear deadline has passed and arms a new one
// when an interval has elapsed. The returned Pulse is non-nil only when a
// pulse was armed on this call; arming while one is visible re-arms the flag
// and restarts its clear deadline.
func (p *PulseScheduler) Update(now time.Time) *Pulse {
	if !p.running {
		return nil
	}

	if p.visible && !now.Before(p.clearAt) {
		p.visible = false
	}

	if now.Sub(p.lastPulse) < p.interval {
		return nil
	}

	p.lastPulse = now
	p.visible = true
	p.clearAt = now.Add(p.duration)
	p.gen++
	return &Pulse{Token: p.gen, ClearAt: p.clearAt}
}

// End clears the pulse identified by token. It reports whether the token was
// current; stale tokens from a stopped or re-armed pulse are ignored.
func (p *PulseScheduler) End(token PulseToken) bool {
	if token != p.gen || !p.visible {
		return false
	}
	p.visible = false
	return true
}

// Visible reports whether the pulse flag is raised.
func (p *PulseScheduler) Visible() bool {
	return p.visible
}
