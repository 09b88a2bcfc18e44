package swipedeck

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// EndOfDeckSettings configures the end of deck prompt.
type EndOfDeckSettings struct {
	// Message replaces the localized "last card" text.
	Message string
	// Options defaults to Restart then Quit.
	Options []PromptAction
	// InitialSelection is the index of the initially selected option (default: 0)
	InitialSelection int
	// DisableBackButton hides the back button and disables its functionality
	DisableBackButton bool
}

type endOfDeckController struct {
	message       string
	options       []PromptAction
	selectedIndex int
	disableBack   bool
	inputDelay    time.Duration
	lastInputTime time.Time
	cancelled     bool
}

// String returns the localized label for the action.
func (a PromptAction) String() string {
	switch a {
	case PromptActionRestart:
		return internal.Localize("EndOfDeckRestart")
	case PromptActionQuit:
		return internal.Localize("EndOfDeckQuit")
	default:
		return "unknown"
	}
}

// EndOfDeckPrompt tells the user the deck is empty and lets them pick between
// the options with left/right, confirming with A or Start.
// Returns ErrCancelled if the user presses B.
func EndOfDeckPrompt(settings EndOfDeckSettings) (PromptAction, error) {
	window := internal.GetWindow()
	if window == nil {
		return PromptActionQuit, NewInfrastructureError("end_of_deck", errors.New("not initialized"))
	}
	renderer := window.Renderer

	options := settings.Options
	if options == nil {
		options = []PromptAction{PromptActionRestart, PromptActionQuit}
	}
	if len(options) == 0 {
		return PromptActionQuit, ErrNoOptions
	}

	c := &endOfDeckController{
		message:       settings.Message,
		options:       options,
		selectedIndex: settings.InitialSelection,
		disableBack:   settings.DisableBackButton,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	if c.message == "" {
		c.message = internal.Localize("EndOfDeckMessage")
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(options) {
		c.selectedIndex = 0
	}

	for {
		if !c.handleEvents() {
			break
		}

		c.render(renderer, window)
		window.Present()
	}

	if c.cancelled {
		return PromptActionQuit, ErrCancelled
	}

	choice := c.options[c.selectedIndex]
	internal.GetLogger().Debug("End of deck choice", "choice", int(choice))
	return choice, nil
}

func (c *endOfDeckController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.VirtualButtonLeft:
				c.navigate(-1)
			case constants.VirtualButtonRight:
				c.navigate(1)
			case constants.VirtualButtonA, constants.VirtualButtonStart:
				return false
			case constants.VirtualButtonB:
				if !c.disableBack {
					c.cancelled = true
					return false
				}
			}
		}
	}
	return true
}

// navigate moves the selection by delta, wrapping at both ends.
func (c *endOfDeckController) navigate(delta int) {
	n := len(c.options)
	c.selectedIndex = ((c.selectedIndex+delta)%n + n) % n
}

func (c *endOfDeckController) render(renderer *sdl.Renderer, window *internal.Window) {
	window.Clear()

	width, height := window.LogicalSize()
	theme := internal.GetTheme()
	messageFont := internal.Fonts.MediumFont
	optionFont := internal.Fonts.MediumFont

	spacing := int32(30)
	totalHeight := int32(messageFont.Height()) + spacing + int32(optionFont.Height())
	startY := (height - totalHeight) / 2
	centerX := width / 2

	internal.RenderText(renderer, messageFont, c.message, centerX, startY, theme.CardTextColor, constants.TextAlignCenter)
	c.renderOptions(renderer, centerX, startY+int32(messageFont.Height())+spacing, optionFont)

	items := []FooterHelpItem{{ButtonName: "A", HelpText: c.options[c.selectedIndex].String()}}
	if !c.disableBack {
		items = append(items, FooterHelpItem{ButtonName: "B", HelpText: internal.Localize("FooterBack")})
	}
	renderFooter(renderer, items, "")
}

// renderOptions draws "<  Restart  |  Quit  >" with the selection highlighted.
func (c *endOfDeckController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()
	leftArrow, rightArrow, separator := "<  ", "  >", "  |  "

	labels := make([]string, len(c.options))
	total := internal.TextWidth(font, leftArrow) + internal.TextWidth(font, rightArrow)
	for i, opt := range c.options {
		labels[i] = opt.String()
		total += internal.TextWidth(font, labels[i])
		if i < len(labels)-1 {
			total += internal.TextWidth(font, separator)
		}
	}

	x := centerX - total/2
	x += internal.RenderText(renderer, font, leftArrow, x, y, theme.HintColor, constants.TextAlignLeft)
	for i, label := range labels {
		color := theme.HintColor
		if i == c.selectedIndex {
			color = theme.CardTextColor
			text := sdl.Rect{X: x, Y: y, W: internal.TextWidth(font, label), H: int32(font.Height())}
			pill := internal.UniformPadding(6).Outset(text)
			internal.FillRectAlpha(renderer, &pill, theme.CardColor, constants.CardOpacity)
		}
		x += internal.RenderText(renderer, font, label, x, y, color, constants.TextAlignLeft)
		if i < len(labels)-1 {
			x += internal.RenderText(renderer, font, separator, x, y, theme.HintColor, constants.TextAlignLeft)
		}
	}
	internal.RenderText(renderer, font, rightArrow, x, y, theme.HintColor, constants.TextAlignLeft)
}
