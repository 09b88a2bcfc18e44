// Package deck holds the swipe deck state machine, independent of any
// rendering backend.
//
// A Controller owns three animated offsets (top, middle and bottom card slots)
// and a Window over the caller's items. Gesture callbacks mutate the offsets on
// the interaction thread; a Timeline interpolates them on its own goroutine and
// hands completions back as messages, which the interaction thread drains with
// Controller.DrainCompletions. The visible window only ever advances from that
// drain, after the incoming card has visually arrived.
//
// # Basic Usage
//
//	timeline := deck.NewTimeline()
//	go timeline.Run(ctx, constants.DefaultFrameInterval)
//
//	c := deck.NewController(items, deck.NewLayout(480, 640), timeline, deck.ControllerSettings{})
//
//	// on every frame, from the UI thread:
//	for _, ev := range pendingGestures {
//	    c.Apply(ev)
//	}
//	c.DrainCompletions()
//	for _, layer := range c.Layers() {
//	    draw(layer)
//	}
package deck
