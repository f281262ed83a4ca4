// Package frametime keeps a running frames-per-second estimate.
package frametime

import "time"

// DefaultCapacity is the number of frames averaged over when no capacity is
// given.
const DefaultCapacity = 128

// Estimator is a fixed-capacity ring of recent frame durations.
type Estimator struct {
	buf   []uint64 // microseconds
	idx   int
	count int
}

// New returns an estimator averaging over the last capacity frames.
func New(capacity int) *Estimator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Estimator{buf: make([]uint64, capacity)}
}

// Push records one frame duration and returns the updated rate in frames per
// second. The oldest entry is overwritten once the ring is full. Negative
// durations count as zero.
func (e *Estimator) Push(d time.Duration) float64 {
	d = max(d, 0)
	e.buf[e.idx] = uint64(d.Microseconds())
	e.idx = (e.idx + 1) % len(e.buf)
	if e.count < len(e.buf) {
		e.count++
	}
	return e.Rate()
}

// Rate returns the current estimate without recording anything.
func (e *Estimator) Rate() float64 {
	var sum uint64
	for i := 0; i < e.count; i++ {
		sum += e.buf[i]
	}
	if sum == 0 {
		return 0
	}
	return 1e6 * float64(e.count) / float64(sum)
}

// Len returns the number of durations currently held.
func (e *Estimator) Len() int { return e.count }

// Cap returns the ring capacity.
func (e *Estimator) Cap() int { return len(e.buf) }
