package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Width      int32 // 0 uses the display mode (or 1024 in dev mode)
	Height     int32 // 0 uses the display mode (or 768 in dev mode)
	Borderless bool
	Resizable  bool
	Fullscreen bool
	Hidden     bool
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Window wraps SDL window and renderer with additional state for the UI framework.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

var window *Window

func GetWindow() *Window {
	return window
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
		}
		width, height = mode.W, mode.H
	}

	if constants.IsDevMode() {
		winOpts.Borderless = false
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, winOpts.flags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.Destroy()
			return nil, err
		}
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	win := &Window{
		Window:            w,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0,
	}
	win.applyLogicalSize()
	win.loadBackground()

	return win, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// applyLogicalSize keeps the logical canvas at least
// constants.MinContainerHeight tall, letting SDL scale shorter screens.
func (window *Window) applyLogicalSize() {
	w, h := window.Window.GetSize()
	if minH := int32(constants.MinContainerHeight); h < minH {
		w = w * minH / h
		h = minH
	}
	window.Renderer.SetLogicalSize(w, h)
}

func (window *Window) loadBackground() {
	if !window.DisplayBackground {
		return
	}

	path := os.Getenv(constants.BackgroundPathEnvVar)
	if path == "" {
		path = GetTheme().BackgroundImagePath
	}
	if path == "" {
		return
	}

	bg, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bg
}

// HandleResize recomputes the logical canvas after the window changed size.
func (window *Window) HandleResize() {
	window.applyLogicalSize()
}

// LogicalSize returns the canvas size the deck lays out against.
func (window *Window) LogicalSize() (int32, int32) {
	w, h := window.Renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		return window.Window.GetSize()
	}
	return w, h
}

// DeckLayout returns the deck geometry for the current canvas.
func (window *Window) DeckLayout() deck.Layout {
	w, h := window.LogicalSize()
	return deck.NewLayout(float64(w), float64(h))
}

func (window *Window) Clear() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, nil)
		return
	}
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}
