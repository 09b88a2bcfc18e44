package swipedeck

import (
	"time"

	"go.uber.org/atomic"
)

// HeavyOperationSettings configures the busy-loop stress probe. The probe
// blocks the UI thread, not the animation timeline, so cards keep gliding
// while gestures and window advances stall.
type HeavyOperationSettings struct {
	Duration time.Duration // How long each busy loop spins. Default 1s.
	Interval time.Duration // Pause between loops. Default 5ms.
}

type heavyOperation struct {
	settings HeavyOperationSettings
	enabled  *atomic.Bool
	blocked  *atomic.Duration
	runs     *atomic.Int64
	next     time.Time
}

func newHeavyOperation(settings HeavyOperationSettings) *heavyOperation {
	if settings.Duration <= 0 {
		settings.Duration = time.Second
	}
	if settings.Interval <= 0 {
		settings.Interval = 5 * time.Millisecond
	}
	return &heavyOperation{
		settings: settings,
		enabled:  atomic.NewBool(true),
		blocked:  atomic.NewDuration(0),
		runs:     atomic.NewInt64(0),
		next:     time.Now(),
	}
}

// Toggle flips the probe on or off and reports the new state.
func (h *heavyOperation) Toggle() bool {
	return !h.enabled.Toggle()
}

// maybeRun spins for the configured duration if a run is due.
func (h *heavyOperation) maybeRun(now time.Time) {
	if !h.enabled.Load() || now.Before(h.next) {
		return
	}

	start := time.Now()
	for time.Since(start) < h.settings.Duration {
		// spin
	}
	h.blocked.Add(time.Since(start))
	h.runs.Inc()
	h.next = time.Now().Add(h.settings.Interval)
}

func (h *heavyOperation) Stats() (runs int64, blocked time.Duration) {
	return h.runs.Load(), h.blocked.Load()
}
