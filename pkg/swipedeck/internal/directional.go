package internal

import (
	"time"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"
)

// DPadDrag turns a held Down (or Up) button into a pan gesture. Pressing
// starts the gesture with one step of travel; while held, the card moves one
// step after repeatDelay and then every repeatInterval; releasing ends it.
type DPadDrag struct {
	tracker        deck.Tracker
	held           constants.VirtualButton
	step           float64
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDPadDrag creates a DPadDrag with 150ms initial delay and 40ms repeats.
func NewDPadDrag(step float64) *DPadDrag {
	return NewDPadDragWithTiming(step, 150*time.Millisecond, 40*time.Millisecond)
}

func NewDPadDragWithTiming(step float64, delay, interval time.Duration) *DPadDrag {
	if step <= 0 {
		step = constants.DefaultDragStep
	}
	return &DPadDrag{
		tracker:        deck.Tracker{Source: "dpad"},
		step:           step,
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// Handle consumes a button event. It returns the gesture events produced and
// whether the button was a vertical direction.
func (d *DPadDrag) Handle(ev *Event) ([]deck.GestureEvent, bool) {
	if ev.Button != constants.VirtualButtonDown && ev.Button != constants.VirtualButtonUp {
		return nil, false
	}
	if ev.Repeat {
		return nil, true
	}

	if ev.Pressed {
		if d.tracker.Active() {
			return nil, true
		}
		d.held = ev.Button
		d.hasRepeated = false
		d.lastRepeatTime = time.Now()

		var out []deck.GestureEvent
		if start, ok := d.tracker.Press(0); ok {
			out = append(out, start)
		}
		if change, ok := d.tracker.Nudge(d.direction()); ok {
			out = append(out, change)
		}
		return out, true
	}

	if ev.Button != d.held {
		return nil, true
	}
	d.held = constants.VirtualButtonUnassigned
	if end, ok := d.tracker.Release(); ok {
		return []deck.GestureEvent{end}, true
	}
	return nil, true
}

// Update is called every frame and emits a change event when a repeat is due.
func (d *DPadDrag) Update() (deck.GestureEvent, bool) {
	if !d.tracker.Active() {
		return deck.GestureEvent{}, false
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}
	if time.Since(d.lastRepeatTime) < threshold {
		return deck.GestureEvent{}, false
	}

	d.lastRepeatTime = time.Now()
	d.hasRepeated = true
	return d.tracker.Nudge(d.direction())
}

// Cancel ends a held drag as if the button were released, for example when
// the window loses focus and the release will never arrive.
func (d *DPadDrag) Cancel() (deck.GestureEvent, bool) {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	return d.tracker.Release()
}

func (d *DPadDrag) direction() float64 {
	if d.held == constants.VirtualButtonUp {
		return -d.step
	}
	return d.step
}
