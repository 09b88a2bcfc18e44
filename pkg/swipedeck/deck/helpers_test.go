package deck

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
)

const (
	testWidth  = 400
	testHeight = 800
)

// fakeClock drives a Timeline deterministically.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) step(tl *Timeline, d time.Duration) {
	f.now = f.now.Add(d)
	tl.Step(f.now)
}

type harness struct {
	c     *Controller
	tl    *Timeline
	clock *fakeClock
}

func newHarness(t *testing.T, items []string) *harness {
	t.Helper()
	tl := NewTimeline()
	return &harness{
		c:     NewController(items, NewLayout(testWidth, testHeight), tl, ControllerSettings{}),
		tl:    tl,
		clock: newFakeClock(),
	}
}

func (h *harness) drag(dy float64) {
	h.c.GestureStart()
	h.c.GestureChange(dy / 2)
	h.c.GestureChange(dy)
	h.c.GestureEnd()
}

// settle runs the timeline past one full animation and drains completions.
func (h *harness) settle() {
	h.clock.step(h.tl, 0)
	h.clock.step(h.tl, constants.DefaultAnimationDuration)
	h.c.DrainCompletions()
}
