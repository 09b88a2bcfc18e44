package deck

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Completion reports that an animation carrying a token stopped. Finished is
// false when the animation was replaced or overwritten before reaching its target.
type Completion struct {
	Token    uint64
	Finished bool
}

type animation struct {
	value   *Value
	from    float64
	to      float64
	timing  Timing
	token   uint64
	start   time.Time
	started bool
}

// Timeline interpolates running animations. Step may be driven by Run on a
// dedicated goroutine or called directly with a synthetic clock.
type Timeline struct {
	mu      sync.Mutex
	running []*animation
	pending []Completion
	ready   chan struct{}
	tokens  atomic.Uint64
}

// NewTimeline creates an idle timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		ready: make(chan struct{}, 1),
	}
}

// NextToken returns a fresh non-zero completion token.
func (t *Timeline) NextToken() uint64 {
	return t.tokens.Inc()
}

// Animate starts animating v from its current value to target. A running
// animation on v is replaced and, if it carried a token, completes unfinished.
// The start time is bound on the next Step, so animations queued together
// finish on the same frame. A zero token means nobody waits on completion.
func (t *Timeline) Animate(v *Value, target float64, timing Timing, token uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked(v)
	t.running = append(t.running, &animation{
		value:  v,
		from:   v.Get(),
		to:     target,
		timing: timing,
		token:  token,
	})
}

// Set writes x to v immediately, cancelling any animation running on it.
func (t *Timeline) Set(v *Value, x float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked(v)
	v.store(x)
}

// Animating reports whether v has a running animation.
func (t *Timeline) Animating(v *Value) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, a := range t.running {
		if a.value == v {
			return true
		}
	}
	return false
}

// Busy reports whether any animation is running.
func (t *Timeline) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.running) > 0
}

// Step advances every running animation to now. Completions are queued only
// after all values for this frame are written.
func (t *Timeline) Step(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var done []Completion
	kept := t.running[:0]
	for _, a := range t.running {
		if !a.started {
			a.start = now
			a.started = true
		}

		progress := 1.0
		if a.timing.Duration > 0 {
			progress = float64(now.Sub(a.start)) / float64(a.timing.Duration)
		}

		if progress >= 1 {
			a.value.store(a.to)
			if a.token != 0 {
				done = append(done, Completion{Token: a.token, Finished: true})
			}
			continue
		}

		a.value.store(a.from + (a.to-a.from)*a.timing.ease(progress))
		kept = append(kept, a)
	}
	clear(t.running[len(kept):])
	t.running = kept

	t.queueLocked(done...)
}

// Run steps the timeline every interval until ctx is done.
func (t *Timeline) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			t.Step(now)
		}
	}
}

// Ready receives a signal whenever completions are waiting to be taken.
func (t *Timeline) Ready() <-chan struct{} {
	return t.ready
}

// Take removes and returns the queued completions in the order they occurred.
func (t *Timeline) Take() []Completion {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.pending
	t.pending = nil
	return out
}

func (t *Timeline) cancelLocked(v *Value) {
	for i, a := range t.running {
		if a.value != v {
			continue
		}
		t.running = append(t.running[:i], t.running[i+1:]...)
		if a.token != 0 {
			t.queueLocked(Completion{Token: a.token, Finished: false})
		}
		return
	}
}

func (t *Timeline) queueLocked(cs ...Completion) {
	if len(cs) == 0 {
		return
	}
	t.pending = append(t.pending, cs...)

	select {
	case t.ready <- struct{}{}:
	default:
	}
}
