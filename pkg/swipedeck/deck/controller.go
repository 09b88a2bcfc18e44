package deck

import (
	"log/slog"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"go.uber.org/atomic"
)

// State is the combined gesture and window state of a Controller.
type State int

const (
	StateIdle         State = iota // Offsets at rest, no gesture
	StateDragging                  // Top card follows the finger
	StateSnappingBack              // Top card animating back to 0
	StateCommitting                // All three cards animating, advance pending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSnappingBack:
		return "snapping_back"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Offsets is a snapshot of the three animated slot offsets.
type Offsets struct {
	Top    float64
	Middle float64
	Bottom float64
}

// ControllerSettings configures a Controller. Zero values select defaults.
type ControllerSettings struct {
	Timing    Timing             // Default: DefaultTiming()
	Threshold float64            // Default: constants.CommitThreshold
	Logger    *slog.Logger       // Default: discards
	OnAdvance func(newIndex int) // Called on the interaction thread after each advance
}

// Controller maps pan gestures to card animations and advances its Window
// once per completed dismiss. All methods must be called from the single
// interaction thread; only the Timeline touches the offsets concurrently.
type Controller struct {
	window   *Window
	layout   Layout
	timeline *Timeline
	settings ControllerSettings

	top    *Value
	middle *Value
	bottom *Value

	gestureActive *atomic.Bool

	state        State
	swallowing   bool
	snapToken    uint64
	commitToken  uint64
	commitTarget int
}

// NewController creates a Controller over items with offsets at rest.
func NewController(items []string, layout Layout, timeline *Timeline, settings ControllerSettings) *Controller {
	if settings.Timing.Duration <= 0 {
		settings.Timing = DefaultTiming()
	}
	if settings.Threshold <= 0 {
		settings.Threshold = constants.CommitThreshold
	}
	if settings.Logger == nil {
		settings.Logger = slog.New(slog.DiscardHandler)
	}

	return &Controller{
		window:        NewWindow(items),
		layout:        layout,
		timeline:      timeline,
		settings:      settings,
		top:           NewValue(layout.RestOffset(SlotTop)),
		middle:        NewValue(layout.RestOffset(SlotMiddle)),
		bottom:        NewValue(layout.RestOffset(SlotBottom)),
		gestureActive: atomic.NewBool(false),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// GestureActive reports whether a gesture is between start and end.
func (c *Controller) GestureActive() bool {
	return c.gestureActive.Load()
}

// Index returns the window index.
func (c *Controller) Index() int {
	return c.window.Index()
}

// Visible returns the items currently in the window.
func (c *Controller) Visible() []string {
	return c.window.Visible()
}

// Done reports whether the deck has been exhausted.
func (c *Controller) Done() bool {
	return c.window.Done()
}

// Remaining returns the number of cards not yet dismissed.
func (c *Controller) Remaining() int {
	return c.window.Remaining()
}

// Layout returns the layout the controller animates against.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Offsets returns the current slot offsets.
func (c *Controller) Offsets() Offsets {
	return Offsets{
		Top:    c.top.Get(),
		Middle: c.middle.Get(),
		Bottom: c.bottom.Get(),
	}
}

// Apply routes a GestureEvent to the matching gesture callback.
func (c *Controller) Apply(ev GestureEvent) {
	switch ev.Phase {
	case PhaseStart:
		c.GestureStart()
	case PhaseChange:
		c.GestureChange(ev.TranslationY)
	case PhaseEnd:
		c.GestureEnd()
	}
}

// GestureStart begins a drag. While a dismiss is in flight, or once the deck
// is empty, the whole gesture is swallowed up to and including its end.
func (c *Controller) GestureStart() {
	if c.state == StateCommitting || c.window.Done() {
		c.swallowing = true
		c.settings.Logger.Debug("Ignoring gesture", "state", c.state.String(), "index", c.window.Index())
		return
	}

	c.swallowing = false
	c.snapToken = 0
	c.gestureActive.Store(true)
	c.state = StateDragging
}

// GestureChange makes the top card track the finger. translationY is the
// cumulative drag since GestureStart and is not clamped.
func (c *Controller) GestureChange(translationY float64) {
	if c.swallowing || c.state != StateDragging {
		return
	}
	c.timeline.Set(c.top, translationY)
}

// GestureEnd releases the drag and either commits a dismiss, when the top
// offset is strictly greater than the threshold, or snaps the card back.
func (c *Controller) GestureEnd() {
	if c.swallowing {
		c.swallowing = false
		return
	}
	if c.state != StateDragging {
		return
	}

	c.gestureActive.Store(false)

	offset := c.top.Get()
	if offset > c.settings.Threshold {
		c.commit(offset)
		return
	}
	c.snapBack(offset)
}

func (c *Controller) commit(offset float64) {
	h := c.layout.ScreenHeight

	c.state = StateCommitting
	c.commitTarget = c.window.Index() + 1
	c.commitToken = c.timeline.NextToken()

	c.timeline.Animate(c.top, h, c.settings.Timing, 0)
	c.timeline.Animate(c.middle, h/2, c.settings.Timing, 0)
	c.timeline.Animate(c.bottom, 0, c.settings.Timing, c.commitToken)

	c.settings.Logger.Debug("Committing dismiss", "offset", offset, "target", c.commitTarget)
}

func (c *Controller) snapBack(offset float64) {
	c.state = StateSnappingBack
	c.snapToken = c.timeline.NextToken()
	c.timeline.Animate(c.top, 0, c.settings.Timing, c.snapToken)

	c.settings.Logger.Debug("Snapping back", "offset", offset)
}

// HandleCompletion applies an animation completion. A finished dismiss
// advances the window; anything else only settles the state.
func (c *Controller) HandleCompletion(done Completion) {
	if done.Token == 0 {
		return
	}

	switch done.Token {
	case c.commitToken:
		c.commitToken = 0
		c.state = StateIdle
		if !done.Finished {
			c.settings.Logger.Warn("Dismiss interrupted before completion", "target", c.commitTarget)
			return
		}
		c.advance(c.commitTarget)

	case c.snapToken:
		c.snapToken = 0
		if c.state == StateSnappingBack {
			c.state = StateIdle
		}
	}
}

// DrainCompletions applies every completion queued by the timeline and
// returns how many were handled.
func (c *Controller) DrainCompletions() int {
	done := c.timeline.Take()
	for _, d := range done {
		c.HandleCompletion(d)
	}
	return len(done)
}

// advance moves the window and puts every offset back at rest in one step,
// so the next render sees the new items at their rest positions.
func (c *Controller) advance(newIndex int) {
	moved := c.window.Advance(newIndex)
	c.resetOffsets()

	if !moved {
		c.settings.Logger.Debug("Advance ignored", "target", newIndex, "index", c.window.Index())
		return
	}

	c.settings.Logger.Info("Advanced deck", "index", newIndex, "remaining", c.window.Remaining(), "total", c.window.Len())
	if c.settings.OnAdvance != nil {
		c.settings.OnAdvance(newIndex)
	}
}

func (c *Controller) resetOffsets() {
	c.timeline.Set(c.top, c.layout.RestOffset(SlotTop))
	c.timeline.Set(c.middle, c.layout.RestOffset(SlotMiddle))
	c.timeline.Set(c.bottom, c.layout.RestOffset(SlotBottom))
}

// SetLayout adopts new screen measurements. Offsets are re-rested only when
// idle; a resize mid-gesture takes effect for the next card.
func (c *Controller) SetLayout(layout Layout) {
	c.layout = layout
	if c.state == StateIdle {
		c.resetOffsets()
	}
}

// Layers returns the cards to draw, back to front: incoming, next, current.
// There is one layer per visible item.
func (c *Controller) Layers() []Layer {
	visible := c.window.Visible()
	layers := make([]Layer, 0, len(visible))

	for i := len(visible) - 1; i >= 0; i-- {
		slot := Slot(i)
		layers = append(layers, Layer{
			Slot: slot,
			Text: visible[i],
			Rect: c.layout.CardRect(slot, c.offset(slot)),
		})
	}
	return layers
}

func (c *Controller) offset(s Slot) float64 {
	switch s {
	case SlotTop:
		return c.top.Get()
	case SlotMiddle:
		return c.middle.Get()
	default:
		return c.bottom.Get()
	}
}
