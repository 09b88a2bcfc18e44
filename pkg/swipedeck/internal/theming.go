package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the deck.
type Theme struct {
	CardColor           sdl.Color // Card rectangle fill, drawn at constants.CardOpacity
	CardTextColor       sdl.Color // Card label
	BackgroundColor     sdl.Color // Screen clear color when no background image is set
	HintColor           sdl.Color // Swipe hint and footer help text
	AccentColor         sdl.Color // Footer button pills, selected prompt option
	ButtonLabelColor    sdl.Color // Text inside footer pills
	FontPath            string    // Path to the UI font
	BackgroundImagePath string    // Path to an optional background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
