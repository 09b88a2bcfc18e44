package main

import (
	"errors"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/router"
)

const (
	ScreenDeck router.Screen = iota
	ScreenEndOfDeck
)

type DeckInput struct {
	Items []string
}

type DeckResult struct {
	Items     []string
	Result    *swipedeck.SwipeDeckResult
	Cancelled bool
}

type EndOfDeckResult struct {
	Action    swipedeck.PromptAction
	Cancelled bool
}

type app struct {
	cfg    Config
	router *router.Router
}

func newApp(cfg Config) *app {
	a := &app{cfg: cfg}
	a.router = router.New().
		WithLogger(swipedeck.GetLogger()).
		Register(ScreenDeck, "deck", a.deckScreen).
		Register(ScreenEndOfDeck, "end_of_deck", a.endOfDeckScreen).
		OnTransition(transition)
	return a
}

func (a *app) Run() error {
	return a.router.Run(ScreenDeck, DeckInput{Items: a.cfg.Items})
}

func (a *app) deckScreen(input any) (any, error) {
	in := input.(DeckInput)
	logger := swipedeck.GetLogger()

	settings := swipedeck.SwipeDeckSettings{
		ShowRemaining: true,
		ExitWhenEmpty: len(in.Items) > 0,
		OnAdvance: func(index int) {
			if index == len(in.Items) {
				logger.Info("End of deck reached", "total", len(in.Items))
			}
		},
	}
	if a.cfg.Stress.Enabled {
		settings.HeavyOperation = &swipedeck.HeavyOperationSettings{
			Duration: a.cfg.Stress.Duration(),
			Interval: a.cfg.Stress.Interval(),
		}
	}

	res, err := swipedeck.SwipeDeck(in.Items, settings)
	if errors.Is(err, swipedeck.ErrCancelled) {
		return DeckResult{Items: in.Items, Cancelled: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return DeckResult{Items: in.Items, Result: res}, nil
}

func (a *app) endOfDeckScreen(any) (any, error) {
	action, err := swipedeck.EndOfDeckPrompt(swipedeck.EndOfDeckSettings{})
	if errors.Is(err, swipedeck.ErrCancelled) {
		return EndOfDeckResult{Cancelled: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return EndOfDeckResult{Action: action}, nil
}

// transition holds the whole demo flow: a finished deck goes to the prompt,
// and restarting runs a fresh deck over the same items.
func transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenDeck:
		res := result.(DeckResult)
		if res.Cancelled || res.Result == nil || res.Result.Action != swipedeck.DeckActionFinished {
			return router.ScreenExit, nil
		}
		if stack.IsEmpty() {
			stack.Push(from, DeckInput{Items: res.Items}, nil)
		}
		return ScreenEndOfDeck, nil

	case ScreenEndOfDeck:
		res := result.(EndOfDeckResult)
		if res.Cancelled || res.Action != swipedeck.PromptActionRestart {
			return router.ScreenExit, nil
		}
		if entry := stack.Root(); entry != nil {
			return entry.Screen, entry.Input
		}
	}
	return router.ScreenExit, nil
}
