package app

// SampleRing is a circular buffer of recent float samples: frame deltas for
// the FPS readout and glow values for the detail sparkline.
type SampleRing struct {
	buf   []float64
	pos   int
	count int
}

// NewSampleRing creates a ring holding up to capacity samples.
func NewSampleRing(capacity int) *SampleRing {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a sample, overwriting the oldest once full.
func (r *SampleRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored samples in chronological order.
func (r *SampleRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent sample, or 0 if empty.
func (r *SampleRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

// Mean averages the stored samples.
func (r *SampleRing) Mean() float64 {
	if r.count == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range r.Values() {
		sum += v
	}
	return sum / float64(r.count)
}

// Len returns the number of stored samples.
func (r *SampleRing) Len() int {
	return r.count
}

// Reset empties the ring.
func (r *SampleRing) Reset() {
	r.pos = 0
	r.count = 0
}
