package deck

// Phase is the stage of a pan gesture.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseChange
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseChange:
		return "change"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// GestureEvent is a pan sample. TranslationY is cumulative from the start of
// the gesture, positive downward.
type GestureEvent struct {
	Phase        Phase
	TranslationY float64
	Source       string
}

// Tracker turns absolute pointer positions into GestureEvents. One Tracker
// follows a single pointer; the zero value is ready to use.
type Tracker struct {
	Source  string
	active  bool
	originY float64
	lastY   float64
}

// Active reports whether a press is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// Press starts a gesture at y. A press while already active is ignored.
func (t *Tracker) Press(y float64) (GestureEvent, bool) {
	if t.active {
		return GestureEvent{}, false
	}
	t.active = true
	t.originY = y
	t.lastY = y
	return GestureEvent{Phase: PhaseStart, Source: t.Source}, true
}

// Move reports the translation from the press point. Repeated positions are
// dropped.
func (t *Tracker) Move(y float64) (GestureEvent, bool) {
	if !t.active || y == t.lastY {
		return GestureEvent{}, false
	}
	t.lastY = y
	return GestureEvent{Phase: PhaseChange, TranslationY: y - t.originY, Source: t.Source}, true
}

// Nudge moves the pointer by dy relative to its last position.
func (t *Tracker) Nudge(dy float64) (GestureEvent, bool) {
	return t.Move(t.lastY + dy)
}

// Release ends the gesture.
func (t *Tracker) Release() (GestureEvent, bool) {
	if !t.active {
		return GestureEvent{}, false
	}
	t.active = false
	return GestureEvent{Phase: PhaseEnd, TranslationY: t.lastY - t.originY, Source: t.Source}, true
}
