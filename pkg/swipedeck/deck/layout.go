package deck

import "github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"

// Slot identifies one of the three rendered card positions.
type Slot int

const (
	SlotTop    Slot = iota // Current card, follows the finger
	SlotMiddle             // Next card, becomes the top on commit
	SlotBottom             // Incoming card, parked above the screen at rest
)

func (s Slot) String() string {
	switch s {
	case SlotTop:
		return "top"
	case SlotMiddle:
		return "middle"
	case SlotBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Rect is a rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Layout holds the screen measurements the deck animates against.
type Layout struct {
	ScreenWidth     float64
	ScreenHeight    float64
	ContainerHeight float64
}

// NewLayout builds a Layout for a screen, keeping the card container at
// least constants.MinContainerHeight tall.
func NewLayout(width, height float64) Layout {
	return Layout{
		ScreenWidth:     width,
		ScreenHeight:    height,
		ContainerHeight: max(height, constants.MinContainerHeight),
	}
}

// RestOffset returns the offset a slot returns to between interactions.
func (l Layout) RestOffset(s Slot) float64 {
	if s == SlotBottom {
		return -l.ScreenHeight / 2
	}
	return 0
}

// CardRect places a card for slot s displaced by offset. Every card occupies
// the 20%-40% band of the container at 80% width; the top card sits a further
// half screen lower.
func (l Layout) CardRect(s Slot, offset float64) Rect {
	y := l.ContainerHeight*constants.CardTopFraction + offset
	if s == SlotTop {
		y += l.ScreenHeight / 2
	}
	return Rect{
		X: l.ScreenWidth * constants.CardLeftFraction,
		Y: y,
		W: l.ScreenWidth * constants.CardWidthFraction,
		H: l.ContainerHeight * constants.CardHeightFraction,
	}
}

// HasLabel reports whether the card has text to draw. An empty item still
// gets a card.
func (l Layer) HasLabel() bool {
	return l.Text != ""
}

// ContainerY is where the container starts so that it is centred vertically.
// It is negative when the screen is shorter than the minimum container.
func (l Layout) ContainerY() float64 {
	return (l.ScreenHeight - l.ContainerHeight) / 2
}

// Layer is one card to draw.
type Layer struct {
	Slot Slot
	Text string
	Rect Rect
}
