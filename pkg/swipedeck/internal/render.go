package internal

import (
	"math"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// ToSDLRect rounds a float rectangle to whole pixels.
func ToSDLRect(x, y, w, h float64) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(x)),
		Y: int32(math.Round(y)),
		W: int32(math.Round(w)),
		H: int32(math.Round(h)),
	}
}

// FillRectAlpha fills rect with color at the given opacity in [0, 1].
func FillRectAlpha(renderer *sdl.Renderer, rect *sdl.Rect, color sdl.Color, opacity float64) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, uint8(math.Round(255*opacity)))
	renderer.FillRect(rect)
}

// TextTexture renders text to a texture. The caller owns the result. Empty
// text has no texture and returns nil without an error.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	if text == "" {
		return nil, nil
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return renderer.CreateTextureFromSurface(surface)
}

// CopyCentered draws texture centred inside bounds, shrinking it to fit.
func CopyCentered(renderer *sdl.Renderer, texture *sdl.Texture, bounds sdl.Rect, opacity float64) {
	if texture == nil {
		return
	}
	_, _, tw, th, err := texture.Query()
	if err != nil || tw == 0 || th == 0 {
		return
	}

	scale := min(1, float64(bounds.W)/float64(tw), float64(bounds.H)/float64(th))
	w := int32(float64(tw) * scale)
	h := int32(float64(th) * scale)

	texture.SetAlphaMod(uint8(math.Round(255 * opacity)))
	renderer.Copy(texture, nil, &sdl.Rect{
		X: bounds.X + (bounds.W-w)/2,
		Y: bounds.Y + (bounds.H-h)/2,
		W: w,
		H: h,
	})
}

// RenderText draws text once without caching, aligned around x.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}
	texture, err := TextTexture(renderer, font, text, color)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w
}

// TextWidth measures text in font, returning 0 on error.
func TextWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
