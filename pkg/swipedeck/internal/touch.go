package internal

import "github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"

// TouchSample is one frame from a raw touchscreen. Y is normalised to [0, 1]
// of the panel height.
type TouchSample struct {
	Down    bool // finger present in this frame
	Y       float64
	Changed bool // contact started or ended in this frame
}

var touchSamples = make(chan TouchSample, 64)

// TouchSamples delivers samples from the touchscreen reader, if one is running.
func TouchSamples() <-chan TouchSample {
	return touchSamples
}

func postTouchSample(s TouchSample) {
	select {
	case touchSamples <- s:
	default:
		// UI thread is stalled: drop the oldest sample so contact changes
		// still get through.
		select {
		case <-touchSamples:
		default:
		}
		select {
		case touchSamples <- s:
		default:
		}
	}
}

// TouchGestures converts TouchSamples to pan gestures.
type TouchGestures struct {
	tracker deck.Tracker
}

func NewTouchGestures() *TouchGestures {
	return &TouchGestures{tracker: deck.Tracker{Source: "evdev"}}
}

func (t *TouchGestures) Process(s TouchSample, screenHeight float64) (deck.GestureEvent, bool) {
	y := s.Y * screenHeight
	switch {
	case s.Down && !t.tracker.Active():
		return t.tracker.Press(y)
	case s.Down:
		return t.tracker.Move(y)
	default:
		return t.tracker.Release()
	}
}
