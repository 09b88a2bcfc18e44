package swipedeck

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/deck"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// SwipeDeckSettings configures the SwipeDeck component.
type SwipeDeckSettings struct {
	Timing            deck.Timing      // Dismiss and snap back timing (default: 300ms in-out quad)
	FooterHelpItems   []FooterHelpItem // nil shows the localized defaults
	DisableBackButton bool             // Ignore B / Escape
	HideHint          bool             // Don't draw the swipe-down hint
	ShowRemaining     bool             // Show "N cards left" in the footer
	ExitWhenEmpty     bool             // Return as soon as the last card is dismissed

	// HeavyOperation, when set, blocks the UI thread on a schedule to show
	// that animations keep running while input stalls. Select toggles it.
	HeavyOperation *HeavyOperationSettings

	// OnAdvance is called after each dismissed card with the new window index.
	OnAdvance func(index int)
}

type swipeDeckController struct {
	settings SwipeDeckSettings

	window     *internal.Window
	timeline   *deck.Timeline
	controller *deck.Controller

	pointer *internal.PointerGestures
	dpad    *internal.DPadDrag
	touch   *internal.TouchGestures
	heavy   *heavyOperation

	cards *internal.TextureCache
	hint  *sdl.Texture

	cancelled bool
	exited    bool
	finished  bool
	err       error
}

// SwipeDeck shows items as a stack of cards. The user drags the top card down
// to dismiss it. It returns when every card is gone (with ExitWhenEmpty), when
// Start is pressed, or with ErrCancelled when the user backs out.
func SwipeDeck(items []string, settings SwipeDeckSettings) (*SwipeDeckResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("swipe_deck", errors.New("not initialized"))
	}
	logger := internal.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	timeline := deck.NewTimeline()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = timeline.Run(ctx, constants.DefaultFrameInterval)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	c := &swipeDeckController{
		settings: settings,
		window:   window,
		timeline: timeline,
		pointer:  internal.NewPointerGestures(),
		dpad:     internal.NewDPadDrag(constants.DefaultDragStep),
		touch:    internal.NewTouchGestures(),
		cards:    internal.NewTextureCache(constants.VisibleCards + 2),
	}
	defer c.cleanup()

	c.controller = deck.NewController(items, window.DeckLayout(), timeline, deck.ControllerSettings{
		Timing:    settings.Timing,
		Logger:    logger,
		OnAdvance: settings.OnAdvance,
	})

	if settings.HeavyOperation != nil {
		c.heavy = newHeavyOperation(*settings.HeavyOperation)
		logger.Info("Heavy operation enabled",
			"duration", c.heavy.settings.Duration, "interval", c.heavy.settings.Interval)
	}

	if !settings.HideHint {
		size := int32(48 * internal.GetScaleFactor())
		hint, err := internal.SVGTexture(window.Renderer, constants.SwipeHintSVG, size, size)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to build swipe hint", "error", err)
		} else {
			c.hint = hint
		}
	}

	logger.Debug("Showing deck", "items", len(items))

	for {
		if !c.handleEvents() {
			break
		}
		c.update()
		if c.finished {
			break
		}
		c.render()
		if c.err != nil {
			break
		}
		window.Present()
	}

	if c.heavy != nil {
		runs, blocked := c.heavy.Stats()
		logger.Info("Heavy operation summary", "runs", runs, "blocked", blocked)
	}

	if c.err != nil {
		return nil, c.err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}

	result := &SwipeDeckResult{
		Action: DeckActionFinished,
		Index:  c.controller.Index(),
		Total:  len(items),
	}
	if c.exited && !c.controller.Done() {
		result.Action = DeckActionExited
	}
	logger.Info("Deck closed", "action", result.Action.String(), "index", result.Index, "total", result.Total)
	return result, nil
}

func (c *swipeDeckController) handleEvents() bool {
	processor := internal.GetInputProcessor()
	screenHeight := c.controller.Layout().ScreenHeight

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
				c.window.HandleResize()
				c.controller.SetLayout(c.window.DeckLayout())
				screenHeight = c.controller.Layout().ScreenHeight
			case sdl.WINDOWEVENT_FOCUS_LOST:
				for _, ev := range c.pointer.Cancel() {
					c.controller.Apply(ev)
				}
				if ev, ok := c.dpad.Cancel(); ok {
					c.controller.Apply(ev)
				}
			}

		case *sdl.MouseButtonEvent, *sdl.MouseMotionEvent, *sdl.TouchFingerEvent:
			if ev, ok := c.pointer.Process(event, screenHeight); ok {
				c.controller.Apply(ev)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			if gestures, ok := c.dpad.Handle(inputEvent); ok {
				for _, ev := range gestures {
					c.controller.Apply(ev)
				}
				continue
			}

			if !inputEvent.Pressed || inputEvent.Repeat {
				continue
			}

			switch inputEvent.Button {
			case constants.VirtualButtonB:
				if !c.settings.DisableBackButton {
					c.cancelled = true
					return false
				}
			case constants.VirtualButtonStart:
				c.exited = true
				return false
			case constants.VirtualButtonSelect:
				if c.heavy != nil {
					internal.GetLogger().Info("Heavy operation toggled", "enabled", c.heavy.Toggle())
				}
			}
		}
	}

	c.drainTouch(screenHeight)
	return true
}

// drainTouch applies everything the evdev reader posted since the last frame.
func (c *swipeDeckController) drainTouch(screenHeight float64) {
	samples := internal.TouchSamples()
	for {
		select {
		case s := <-samples:
			if ev, ok := c.touch.Process(s, screenHeight); ok {
				c.controller.Apply(ev)
			}
		default:
			return
		}
	}
}

func (c *swipeDeckController) update() {
	if ev, ok := c.dpad.Update(); ok {
		c.controller.Apply(ev)
	}

	select {
	case <-c.timeline.Ready():
		c.controller.DrainCompletions()
	default:
	}

	if c.heavy != nil {
		c.heavy.maybeRun(time.Now())
	}

	if c.settings.ExitWhenEmpty && c.controller.Done() && c.controller.State() == deck.StateIdle {
		c.finished = true
	}
}

func (c *swipeDeckController) render() {
	renderer := c.window.Renderer
	theme := internal.GetTheme()
	layout := c.controller.Layout()
	shift := layout.ContainerY()

	c.window.Clear()

	layers := c.controller.Layers()
	for _, layer := range layers {
		r := layer.Rect
		rect := internal.ToSDLRect(r.X, r.Y+shift, r.W, r.H)
		internal.FillRectAlpha(renderer, &rect, theme.CardColor, constants.CardOpacity)
		if !layer.HasLabel() {
			continue
		}

		label, err := c.cards.GetOrCreate(layer.Text, func() (*sdl.Texture, error) {
			return internal.TextTexture(renderer, internal.Fonts.CardFont, layer.Text, theme.CardTextColor)
		})
		if err != nil {
			c.err = NewInfrastructureError("render_card", err)
			return
		}
		internal.CopyCentered(renderer, label, rect, constants.CardOpacity)
	}

	if len(layers) == 0 {
		w, _ := c.window.LogicalSize()
		internal.RenderText(renderer, internal.Fonts.MediumFont, internal.Localize("EmptyDeck"),
			w/2, int32(layout.ScreenHeight/2), theme.HintColor, constants.TextAlignCenter)
	} else if c.showHint() {
		c.renderHint(layers[len(layers)-1].Rect, shift)
	}

	status := ""
	if c.settings.ShowRemaining {
		status = internal.LocalizeCount("CardsRemaining", c.controller.Remaining())
	}
	renderFooter(renderer, c.footerItems(), status)
}

func (c *swipeDeckController) showHint() bool {
	return c.hint != nil && c.controller.State() == deck.StateIdle &&
		!c.controller.GestureActive() && !c.timeline.Busy()
}

// renderHint draws the chevron just above the top card, pointing the way it
// should be dragged.
func (c *swipeDeckController) renderHint(top deck.Rect, shift float64) {
	_, _, w, h, err := c.hint.Query()
	if err != nil {
		return
	}
	x := int32(top.X+top.W/2) - w/2
	y := int32(top.Y+shift) - h - int32(constants.DefaultTitleSpacing)*2
	c.window.Renderer.Copy(c.hint, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

func (c *swipeDeckController) footerItems() []FooterHelpItem {
	if c.settings.FooterHelpItems != nil {
		return c.settings.FooterHelpItems
	}
	items := []FooterHelpItem{{ButtonName: constants.Down, HelpText: internal.Localize("FooterSwipe")}}
	if !c.settings.DisableBackButton {
		items = append(items, FooterHelpItem{ButtonName: "B", HelpText: internal.Localize("FooterBack")})
	}
	return items
}

func (c *swipeDeckController) cleanup() {
	internal.GetInternalLogger().Debug("Releasing card textures", "count", c.cards.Len())
	c.cards.Destroy()
	if c.hint != nil {
		c.hint.Destroy()
	}
}
