package swipedeck

import (
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FooterHelpItem is a button hint shown along the bottom edge.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

const footerMargin int32 = 20

// renderFooter draws each item as a pill with the button name followed by its
// help text, left to right. status, when set, is right aligned.
func renderFooter(renderer *sdl.Renderer, items []FooterHelpItem, status string) {
	window := internal.GetWindow()
	width, height := window.LogicalSize()
	font := internal.Fonts.SmallFont
	theme := internal.GetTheme()

	y := height - int32(font.Height()) - footerMargin
	x := footerMargin
	pad := int32(8)
	padding := internal.SymmetricPadding(pad/2, pad)

	for _, item := range items {
		label := sdl.Rect{X: x + pad, Y: y, W: internal.TextWidth(font, item.ButtonName), H: int32(font.Height())}
		pill := padding.Outset(label)
		internal.FillRectAlpha(renderer, &pill, theme.AccentColor, 1)
		internal.RenderText(renderer, font, item.ButtonName, label.X, y, theme.ButtonLabelColor, constants.TextAlignLeft)
		x += pill.W + pad

		x += internal.RenderText(renderer, font, item.HelpText, x, y, theme.HintColor, constants.TextAlignLeft) + 2*pad
	}

	if status != "" {
		internal.RenderText(renderer, font, status, width-footerMargin, y, theme.HintColor, constants.TextAlignRight)
	}
}
