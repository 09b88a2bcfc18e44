package internal

import (
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"
	"github.com/veandco/go-sdl2/sdl"
)

// PointerGestures turns SDL mouse and touch events into pan gestures. Only one
// pointer drives the deck at a time; a second finger is ignored until the
// first lifts.
type PointerGestures struct {
	mouse  deck.Tracker
	finger deck.Tracker
	owner  sdl.FingerID
}

func NewPointerGestures() *PointerGestures {
	return &PointerGestures{
		mouse:  deck.Tracker{Source: "mouse"},
		finger: deck.Tracker{Source: "touch"},
	}
}

// Process returns the gesture event for an SDL event, if any. screenHeight
// converts normalised finger coordinates to logical pixels.
func (p *PointerGestures) Process(event sdl.Event, screenHeight float64) (deck.GestureEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT || p.finger.Active() {
			return deck.GestureEvent{}, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return p.mouse.Press(float64(e.Y))
		}
		return p.mouse.Release()

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return deck.GestureEvent{}, false
		}
		return p.mouse.Move(float64(e.Y))

	case *sdl.TouchFingerEvent:
		if p.mouse.Active() {
			return deck.GestureEvent{}, false
		}
		y := float64(e.Y) * screenHeight

		switch e.Type {
		case sdl.FINGERDOWN:
			if p.finger.Active() {
				return deck.GestureEvent{}, false
			}
			p.owner = e.FingerID
			return p.finger.Press(y)
		case sdl.FINGERMOTION:
			if e.FingerID != p.owner {
				return deck.GestureEvent{}, false
			}
			return p.finger.Move(y)
		case sdl.FINGERUP:
			if e.FingerID != p.owner {
				return deck.GestureEvent{}, false
			}
			return p.finger.Release()
		}
	}
	return deck.GestureEvent{}, false
}

// Cancel ends any pointer gesture in progress, for example when the window
// loses focus mid-drag.
func (p *PointerGestures) Cancel() []deck.GestureEvent {
	var out []deck.GestureEvent
	if ev, ok := p.mouse.Release(); ok {
		out = append(out, ev)
	}
	if ev, ok := p.finger.Release(); ok {
		out = append(out, ev)
	}
	return out
}
