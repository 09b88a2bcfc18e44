package swipedeck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeavyOperationBlocksForDuration(t *testing.T) {
	h := newHeavyOperation(HeavyOperationSettings{Duration: 5 * time.Millisecond, Interval: time.Hour})

	start := time.Now()
	h.maybeRun(start)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	// next run is an hour away
	h.maybeRun(time.Now())
	runs, blocked := h.Stats()
	assert.Equal(t, int64(1), runs)
	assert.GreaterOrEqual(t, blocked, 5*time.Millisecond)
}

func TestHeavyOperationToggle(t *testing.T) {
	h := newHeavyOperation(HeavyOperationSettings{Duration: time.Millisecond})

	assert.False(t, h.Toggle())
	h.maybeRun(time.Now().Add(time.Minute))
	runs, _ := h.Stats()
	assert.Zero(t, runs)

	assert.True(t, h.Toggle())
}

func TestHeavyOperationDefaults(t *testing.T) {
	h := newHeavyOperation(HeavyOperationSettings{})
	assert.Equal(t, time.Second, h.settings.Duration)
	assert.Equal(t, 5*time.Millisecond, h.settings.Interval)
}
