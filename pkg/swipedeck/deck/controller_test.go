package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restOffsets() Offsets {
	return Offsets{Top: 0, Middle: 0, Bottom: -testHeight / 2}
}

func TestNewControllerStartsAtRest(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})

	assert.Equal(t, StateIdle, h.c.State())
	assert.Equal(t, restOffsets(), h.c.Offsets())
	assert.False(t, h.c.GestureActive())
}

func TestGestureTracksFinger(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})

	h.c.GestureStart()
	assert.True(t, h.c.GestureActive())
	assert.Equal(t, StateDragging, h.c.State())

	h.c.GestureChange(35)
	assert.Equal(t, 35.0, h.c.Offsets().Top)

	h.c.GestureChange(-120)
	assert.Equal(t, -120.0, h.c.Offsets().Top, "offset is not clamped")
	assert.Equal(t, 0.0, h.c.Offsets().Middle)
}

func TestReleaseAtOrBelowThresholdSnapsBack(t *testing.T) {
	for _, dy := range []float64{-40, 0, 30, 50} {
		h := newHarness(t, []string{"A", "B", "C", "D"})

		h.drag(dy)
		assert.Equal(t, StateSnappingBack, h.c.State())
		assert.False(t, h.c.GestureActive())

		h.settle()
		assert.Equal(t, StateIdle, h.c.State())
		assert.Equal(t, restOffsets(), h.c.Offsets())
		assert.Equal(t, 0, h.c.Index())
		assert.Equal(t, []string{"A", "B", "C"}, h.c.Visible())
	}
}

func TestSnapBackLeavesOtherLayersAlone(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})

	h.drag(40)
	assert.True(t, h.tl.Animating(h.c.top))
	assert.False(t, h.tl.Animating(h.c.middle))
	assert.False(t, h.tl.Animating(h.c.bottom))
}

func TestReleasePastThresholdCommits(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C", "D"})

	h.drag(80)
	assert.Equal(t, StateCommitting, h.c.State())

	// Halfway through, the cards move but the window has not changed.
	h.clock.step(h.tl, 0)
	h.clock.step(h.tl, 150*time.Millisecond)
	h.c.DrainCompletions()

	assert.Equal(t, Offsets{Top: 440, Middle: 200, Bottom: -200}, h.c.Offsets())
	assert.Equal(t, 0, h.c.Index())
	assert.Equal(t, []string{"A", "B", "C"}, h.c.Visible())

	h.clock.step(h.tl, 150*time.Millisecond)
	h.c.DrainCompletions()

	assert.Equal(t, StateIdle, h.c.State())
	assert.Equal(t, 1, h.c.Index())
	assert.Equal(t, []string{"B", "C", "D"}, h.c.Visible())
	assert.Equal(t, restOffsets(), h.c.Offsets())
}

func TestThresholdIsStrict(t *testing.T) {
	h := newHarness(t, []string{"A", "B"})
	h.drag(50)
	assert.Equal(t, StateSnappingBack, h.c.State())

	h = newHarness(t, []string{"A", "B"})
	h.drag(50.5)
	assert.Equal(t, StateCommitting, h.c.State())
}

func TestDismissSequenceLayers(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C", "D"})
	h.drag(80)
	h.settle()

	layers := h.c.Layers()
	require.Len(t, layers, 3)

	assert.Equal(t, SlotBottom, layers[0].Slot)
	assert.Equal(t, "D", layers[0].Text)
	assert.Equal(t, SlotMiddle, layers[1].Slot)
	assert.Equal(t, "C", layers[1].Text)
	assert.Equal(t, SlotTop, layers[2].Slot)
	assert.Equal(t, "B", layers[2].Text)

	// container 800: cards are 160 tall at 20%; the top sits half a screen lower
	assert.Equal(t, Rect{X: 40, Y: 560, W: 320, H: 160}, layers[2].Rect)
	assert.Equal(t, Rect{X: 40, Y: 160, W: 320, H: 160}, layers[1].Rect)
	assert.Equal(t, Rect{X: 40, Y: -240, W: 320, H: 160}, layers[0].Rect)
}

func TestSingleItemDeck(t *testing.T) {
	h := newHarness(t, []string{"X"})

	layers := h.c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, "X", layers[0].Text)
	assert.Equal(t, SlotTop, layers[0].Slot)

	h.drag(120)
	h.settle()

	assert.Equal(t, 1, h.c.Index())
	assert.Empty(t, h.c.Visible())
	assert.Empty(t, h.c.Layers())
	assert.True(t, h.c.Done())

	h.drag(200)
	assert.Equal(t, StateIdle, h.c.State())
	assert.False(t, h.c.GestureActive())
	assert.Equal(t, 1, h.c.Index())
}

func TestEmptyDeckRendersNothing(t *testing.T) {
	h := newHarness(t, nil)

	assert.Empty(t, h.c.Layers())
	assert.True(t, h.c.Done())

	h.c.GestureStart()
	assert.False(t, h.c.GestureActive())
	h.c.GestureChange(300)
	assert.Equal(t, 0.0, h.c.Offsets().Top)
	h.c.GestureEnd()
	assert.Equal(t, StateIdle, h.c.State())
}

func TestTwoItemWindowRendersTwoLayers(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C", "D"})
	for range 2 {
		h.drag(90)
		h.settle()
	}

	layers := h.c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "D", layers[0].Text)
	assert.Equal(t, "C", layers[1].Text)
}

func TestWindowIndexWalksWholeDeck(t *testing.T) {
	for n := 0; n <= 7; n++ {
		items := make([]string, n)
		for i := range items {
			items[i] = string(rune('A' + i))
		}
		h := newHarness(t, items)

		for want := 0; want <= n; want++ {
			assert.Equal(t, want, h.c.Index())
			assert.Len(t, h.c.Visible(), min(3, n-want))
			assert.Len(t, h.c.Layers(), min(3, n-want))

			h.drag(100)
			h.settle()
		}
		assert.Equal(t, n, h.c.Index(), "index never passes the end")
	}
}

func TestGestureDuringCommitIsIgnored(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C", "D", "E"})

	h.drag(80)
	h.clock.step(h.tl, 0)
	h.clock.step(h.tl, 100*time.Millisecond)
	topBefore := h.c.Offsets().Top

	h.c.GestureStart()
	assert.False(t, h.c.GestureActive())
	h.c.GestureChange(300)
	assert.Equal(t, topBefore, h.c.Offsets().Top)
	h.c.GestureEnd()
	assert.Equal(t, StateCommitting, h.c.State())

	h.clock.step(h.tl, 200*time.Millisecond)
	h.c.DrainCompletions()

	assert.Equal(t, 1, h.c.Index(), "exactly one advance per commit")
	assert.Equal(t, restOffsets(), h.c.Offsets())

	h.drag(80)
	h.settle()
	assert.Equal(t, 2, h.c.Index())
}

func TestRegrabDuringSnapBack(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})

	h.drag(45)
	h.clock.step(h.tl, 0)
	h.clock.step(h.tl, 100*time.Millisecond)

	h.c.GestureStart()
	assert.Equal(t, StateDragging, h.c.State())
	h.c.GestureChange(90)
	h.c.DrainCompletions()
	assert.Equal(t, StateDragging, h.c.State(), "cancelled snap must not settle the drag")
	assert.Equal(t, 90.0, h.c.Offsets().Top)

	h.c.GestureEnd()
	h.settle()
	assert.Equal(t, 1, h.c.Index())
}

func TestUnfinishedCommitDoesNotAdvance(t *testing.T) {
	h := newHarness(t, []string{"A", "B"})

	h.drag(80)
	h.c.HandleCompletion(Completion{Token: h.c.commitToken, Finished: false})

	assert.Equal(t, StateIdle, h.c.State())
	assert.Equal(t, 0, h.c.Index())
}

func TestAdvanceSameTargetTwice(t *testing.T) {
	var advanced []int
	tl := NewTimeline()
	c := NewController([]string{"A", "B", "C"}, NewLayout(testWidth, testHeight), tl, ControllerSettings{
		OnAdvance: func(i int) { advanced = append(advanced, i) },
	})

	c.advance(1)
	c.advance(1)

	assert.Equal(t, 1, c.Index())
	assert.Equal(t, []int{1}, advanced)
	assert.Equal(t, restOffsets(), c.Offsets())
}

func TestStaleCompletionIsIgnored(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})
	h.drag(80)
	token := h.c.commitToken
	h.settle()
	require.Equal(t, 1, h.c.Index())

	h.c.HandleCompletion(Completion{Token: token, Finished: true})
	h.c.HandleCompletion(Completion{})
	assert.Equal(t, 1, h.c.Index())
}

func TestApplyRoutesPhases(t *testing.T) {
	h := newHarness(t, []string{"A", "B"})
	tr := Tracker{Source: "test"}

	for _, step := range []func() (GestureEvent, bool){
		func() (GestureEvent, bool) { return tr.Press(10) },
		func() (GestureEvent, bool) { return tr.Move(70) },
		func() (GestureEvent, bool) { return tr.Move(95) },
		tr.Release,
	} {
		ev, ok := step()
		require.True(t, ok)
		h.c.Apply(ev)
	}

	assert.Equal(t, StateCommitting, h.c.State())
	h.settle()
	assert.Equal(t, []string{"B"}, h.c.Visible())
}

func TestSetLayoutRestsIncomingCard(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"})

	h.c.SetLayout(NewLayout(300, 1000))
	assert.Equal(t, -500.0, h.c.Offsets().Bottom)

	small := NewLayout(300, 480)
	assert.Equal(t, 600.0, small.ContainerHeight)
	assert.Equal(t, 480.0, small.ScreenHeight)
	assert.Equal(t, -60.0, small.ContainerY())
	assert.Zero(t, NewLayout(300, 1000).ContainerY())
}

func TestEmptyItemStillGetsCard(t *testing.T) {
	h := newHarness(t, []string{"", "B"})

	layers := h.c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "B", layers[0].Text)
	assert.True(t, layers[0].HasLabel())
	assert.Equal(t, SlotTop, layers[1].Slot)
	assert.False(t, layers[1].HasLabel(), "blank card is drawn without a label")

	h.drag(80)
	h.settle()
	assert.Equal(t, 1, h.c.Index())
	assert.Equal(t, []string{"B"}, h.c.Visible())
}
