package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Config is everything Init needs to bring up the framework.
type Config struct {
	Title           string
	ShowBackground  bool
	WindowOptions   WindowOptions
	FontSizes       FontSizes
	TouchDevicePath string
}

// Init brings up SDL, the window, fonts, controllers and the optional
// evdev touch reader. On failure everything already opened is released.
func Init(cfg Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	InitInputProcessor()

	winOpts := cfg.WindowOptions
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(cfg.Title, cfg.ShowBackground, winOpts)
	if err != nil {
		SDLCleanup()
		return fmt.Errorf("create window: %w", err)
	}
	window = w

	sizes := cfg.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	_, h := window.LogicalSize()
	if err := initFonts(GetTheme().FontPath, sizes, h); err != nil {
		SDLCleanup()
		return err
	}

	if cfg.TouchDevicePath != "" {
		if err := StartTouchReader(cfg.TouchDevicePath); err != nil {
			GetInternalLogger().Warn("Touchscreen unavailable", "device", cfg.TouchDevicePath, "error", err)
		}
	}

	return nil
}

func SDLCleanup() {
	StopTouchReader()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
