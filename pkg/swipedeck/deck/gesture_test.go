package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerReportsCumulativeTranslation(t *testing.T) {
	tr := Tracker{Source: "mouse"}

	ev, ok := tr.Press(100)
	assert.True(t, ok)
	assert.Equal(t, GestureEvent{Phase: PhaseStart, Source: "mouse"}, ev)

	ev, ok = tr.Move(130)
	assert.True(t, ok)
	assert.Equal(t, 30.0, ev.TranslationY)

	_, ok = tr.Move(130)
	assert.False(t, ok, "repeated position should be dropped")

	ev, ok = tr.Nudge(-10)
	assert.True(t, ok)
	assert.Equal(t, 20.0, ev.TranslationY)

	ev, ok = tr.Release()
	assert.True(t, ok)
	assert.Equal(t, PhaseEnd, ev.Phase)
	assert.Equal(t, 20.0, ev.TranslationY)
	assert.False(t, tr.Active())
}

func TestTrackerIgnoresEventsOutsideGesture(t *testing.T) {
	var tr Tracker

	_, ok := tr.Move(10)
	assert.False(t, ok)
	_, ok = tr.Release()
	assert.False(t, ok)

	tr.Press(0)
	_, ok = tr.Press(50)
	assert.False(t, ok, "second press while active")
}
