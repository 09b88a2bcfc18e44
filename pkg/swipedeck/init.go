// Package swipedeck provides a swipe-to-dismiss card deck for small screens,
// particularly handheld devices running custom firmware, built on SDL2.
//
// The user drags the top card downward past a threshold to dismiss it and
// reveal the next one. Gesture handling and the card window live in the
// deck subpackage; this package owns the window, input sources and rendering.
package swipedeck

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/internal"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/platform/cannoli"
)

// WindowOptions selects the SDL window size and flags.
type WindowOptions = internal.WindowOptions

// Options configures the swipedeck UI framework initialization.
type Options struct {
	WindowTitle     string        // Window title displayed in windowed mode
	ShowBackground  bool          // Whether to render the theme background image
	WindowOptions   WindowOptions // SDL window size and flags
	CardColorHex    uint32        // Custom card color (0 keeps the theme's green)
	FontPath        string        // Path to a TTF font (default: Cannoli system font)
	TouchDevicePath string        // evdev touchscreen node, e.g. /dev/input/event3
	LogPath         string        // Full path for log file including filename (creates parent directories)
	Language        string        // BCP 47 tag for UI text (default: from LANG)
}

// Init initializes SDL, the window, fonts and input sources.
// Must be called before any other swipedeck functions.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.FontPath
	}
	theme := cannoli.InitCannoliTheme(fontPath)
	if options.CardColorHex != 0 {
		theme.CardColor = internal.HexToColor(options.CardColorHex)
	}
	internal.SetTheme(theme)

	internal.SetLanguage(options.Language)

	touchDevice := options.TouchDevicePath
	if touchDevice == "" {
		touchDevice = os.Getenv(constants.TouchDeviceEnvVar)
	}

	err := internal.Init(internal.Config{
		Title:           options.WindowTitle,
		ShowBackground:  options.ShowBackground,
		WindowOptions:   options.WindowOptions,
		TouchDevicePath: touchDevice,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLanguage switches the UI language at runtime.
func SetLanguage(tag string) {
	internal.SetLanguage(tag)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
