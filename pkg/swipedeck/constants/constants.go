// Package constants defines shared constants, types, and configuration values
// used throughout the swipedeck UI framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the framework.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	TouchDeviceEnvVar    = "TOUCH_DEVICE"
	DebugEnvVar          = "SWIPEDECK_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Deck geometry. Fractions are of the container; offsets are logical pixels.
const (
	CommitThreshold    float64 = 50  // Downward drag that must be exceeded to dismiss
	MinContainerHeight float64 = 600 // Container never lays out shorter than this
	CardTopFraction    float64 = 0.2
	CardHeightFraction float64 = 0.2
	CardLeftFraction   float64 = 0.1
	CardWidthFraction  float64 = 0.8
	CardOpacity        float64 = 0.6
)

// VisibleCards is the size of the sliding window over the deck items.
const VisibleCards = 3

// Default timing and spacing constants.
const (
	DefaultInputDelay        = 20 * time.Millisecond  // Debounce delay between input events
	DefaultAnimationDuration = 300 * time.Millisecond // Timing animation length
	DefaultFrameInterval     = 16 * time.Millisecond  // Timeline tick, ~60fps
)

const (
	DefaultDragStep     float64 = 20 // Drag added per d-pad repeat
	DefaultTitleSpacing int32   = 5  // Vertical spacing below title text
)
