package deck

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// InOutQuad accelerates through the first half and decelerates through the second.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Timing configures a timing animation.
type Timing struct {
	Duration time.Duration
	Easing   Easing // nil means InOutQuad
}

// DefaultTiming is 300ms with in-out quadratic easing.
func DefaultTiming() Timing {
	return Timing{
		Duration: constants.DefaultAnimationDuration,
		Easing:   InOutQuad,
	}
}

func (t Timing) ease(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	if t.Easing == nil {
		return InOutQuad(progress)
	}
	return t.Easing(progress)
}
