package internal

import (
	"testing"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDPadDragPressStartsGesture(t *testing.T) {
	d := NewDPadDrag(20)

	events, ok := d.Handle(&Event{Button: constants.VirtualButtonDown, Pressed: true})
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, deck.PhaseStart, events[0].Phase)
	assert.Equal(t, deck.PhaseChange, events[1].Phase)
	assert.Equal(t, 20.0, events[1].TranslationY)

	events, ok = d.Handle(&Event{Button: constants.VirtualButtonDown, Pressed: false})
	require.True(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, deck.PhaseEnd, events[0].Phase)
}

func TestDPadDragCancelEndsHeldGesture(t *testing.T) {
	d := NewDPadDrag(20)
	d.Handle(&Event{Button: constants.VirtualButtonDown, Pressed: true})

	ev, ok := d.Cancel()
	require.True(t, ok)
	assert.Equal(t, deck.PhaseEnd, ev.Phase)

	_, ok = d.Cancel()
	assert.False(t, ok, "nothing left to end")
	_, ok = d.Update()
	assert.False(t, ok, "no repeats after cancel")

	// the late release is swallowed
	events, ok := d.Handle(&Event{Button: constants.VirtualButtonDown, Pressed: false})
	assert.True(t, ok)
	assert.Empty(t, events)
}

func TestDPadDragCancelFeedsController(t *testing.T) {
	c := deck.NewController([]string{"A", "B"}, deck.NewLayout(400, 800), deck.NewTimeline(), deck.ControllerSettings{})
	d := NewDPadDrag(20)

	events, _ := d.Handle(&Event{Button: constants.VirtualButtonDown, Pressed: true})
	for _, ev := range events {
		c.Apply(ev)
	}
	require.Equal(t, deck.StateDragging, c.State())

	ev, ok := d.Cancel()
	require.True(t, ok)
	c.Apply(ev)
	assert.Equal(t, deck.StateSnappingBack, c.State())
	assert.False(t, c.GestureActive())
}

func TestDPadDragIgnoresOtherButtons(t *testing.T) {
	d := NewDPadDrag(20)
	events, ok := d.Handle(&Event{Button: constants.VirtualButtonA, Pressed: true})
	assert.False(t, ok)
	assert.Empty(t, events)
}
