package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes before scaling.
type FontSizes struct {
	Card   int
	Medium int
	Small  int
}

// DefaultFontSizes matches an 80pt card label on a 768px tall screen.
var DefaultFontSizes = FontSizes{
	Card:   80,
	Medium: 32,
	Small:  22,
}

type fontsHolder struct {
	CardFont   *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts holds the loaded fonts after Init.
var Fonts fontsHolder

const referenceHeight = 768

var scaleFactor float32 = 1

// GetScaleFactor returns the window height relative to a 768px reference.
func GetScaleFactor() float32 {
	return scaleFactor
}

func initFonts(path string, sizes FontSizes, windowHeight int32) error {
	if windowHeight > 0 {
		scaleFactor = float32(windowHeight) / referenceHeight
	}

	open := func(size int) (*ttf.Font, error) {
		scaled := max(int(float32(size)*scaleFactor), 8)
		f, err := ttf.OpenFont(path, scaled)
		if err != nil {
			return nil, fmt.Errorf("open font %q at %dpt: %w", path, scaled, err)
		}
		return f, nil
	}

	var err error
	if Fonts.CardFont, err = open(sizes.Card); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.CardFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsHolder{}
}
