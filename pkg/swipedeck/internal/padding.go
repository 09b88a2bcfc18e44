package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding is the space around a label when it is drawn as a pill.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// SymmetricPadding uses v above and below and h on either side.
func SymmetricPadding(v, h int32) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Outset grows rect by the padding on each side.
func (p Padding) Outset(rect sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: rect.X - p.Left,
		Y: rect.Y - p.Top,
		W: rect.W + p.Left + p.Right,
		H: rect.H + p.Top + p.Bottom,
	}
}
