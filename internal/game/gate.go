package game

import "time"

// DefaultTickInterval is the wall-clock time between simulation ticks.
const DefaultTickInterval = 80 * time.Millisecond

// Gate admits fixed-interval simulation ticks from a variable-rate frame
// callback. The platform calls Admit once per frame; a tick runs only
// when enough wall-clock time has accumulated since the last one, so the
// simulation speed is independent of the display refresh rate.
type Gate struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewGate creates a gate. A non-positive interval selects the default.
func NewGate(interval time.Duration) *Gate {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Gate{interval: interval}
}

// Interval returns the configured tick interval.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Admit reports whether a simulation tick is due at the given instant.
// The first call only establishes the time base. At most one tick is
// admitted per call; after a long frame stall the backlog is dropped
// rather than replayed, so the match slows down instead of
// fast-forwarding through queued ticks.
func (g *Gate) Admit(now time.Time) bool {
	if !g.started {
		g.started = true
		g.last = now
		return false
	}

	elapsed := now.Sub(g.last)
	if elapsed < g.interval {
		return false
	}
	if elapsed >= 2*g.interval {
		g.last = now
	} else {
		g.last = g.last.Add(g.interval)
	}
	return true
}

// Reset clears the time base; the next Admit re-establishes it.
func (g *Gate) Reset() {
	g.started = false
}
