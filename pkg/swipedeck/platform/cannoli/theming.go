// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/internal"
)

// FontPath is where Cannoli ships its UI font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's colors and the specified font.
// Cards keep the deck's green so the dismiss animation reads the same on device.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		CardColor:        internal.HexToColor(0x008000),
		CardTextColor:    internal.HexToColor(0xFFFFFF),
		BackgroundColor:  internal.HexToColor(0x000000),
		HintColor:        internal.HexToColor(0xB4B4B4),
		AccentColor:      internal.HexToColor(0x008080),
		ButtonLabelColor: internal.HexToColor(0x000000),
		FontPath:         fontPath,
	}
}
