package deck

import "go.uber.org/atomic"

// Value is a scalar written by gestures and the Timeline and read by the
// renderer. Reads never block the timeline goroutine.
type Value struct {
	v *atomic.Float64
}

// NewValue creates a Value holding initial.
func NewValue(initial float64) *Value {
	return &Value{v: atomic.NewFloat64(initial)}
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.v.Load()
}

func (v *Value) store(x float64) {
	v.v.Store(x)
}
