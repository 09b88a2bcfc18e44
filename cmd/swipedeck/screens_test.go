package main

import (
	"testing"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck"
	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finished(items ...string) DeckResult {
	return DeckResult{
		Items:  items,
		Result: &swipedeck.SwipeDeckResult{Action: swipedeck.DeckActionFinished, Index: len(items), Total: len(items)},
	}
}

func TestTransitionFinishedDeckPrompts(t *testing.T) {
	stack := router.NewStack()

	next, _ := transition(ScreenDeck, finished("A", "B"), stack)
	assert.Equal(t, ScreenEndOfDeck, next)
	require.Equal(t, 1, stack.Len())
	assert.Equal(t, DeckInput{Items: []string{"A", "B"}}, stack.Peek().Input)
}

func TestTransitionRestartRunsFreshDeck(t *testing.T) {
	stack := router.NewStack()
	transition(ScreenDeck, finished("A", "B"), stack)

	next, input := transition(ScreenEndOfDeck, EndOfDeckResult{Action: swipedeck.PromptActionRestart}, stack)
	assert.Equal(t, ScreenDeck, next)
	assert.Equal(t, DeckInput{Items: []string{"A", "B"}}, input)

	// a second lap does not grow the stack
	transition(ScreenDeck, finished("A", "B"), stack)
	assert.Equal(t, 1, stack.Len())
}

func TestTransitionExits(t *testing.T) {
	tests := []struct {
		name   string
		from   router.Screen
		result any
	}{
		{"deck cancelled", ScreenDeck, DeckResult{Cancelled: true}},
		{"deck exited early", ScreenDeck, DeckResult{Result: &swipedeck.SwipeDeckResult{Action: swipedeck.DeckActionExited}}},
		{"quit chosen", ScreenEndOfDeck, EndOfDeckResult{Action: swipedeck.PromptActionQuit}},
		{"prompt cancelled", ScreenEndOfDeck, EndOfDeckResult{Cancelled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := transition(tt.from, tt.result, router.NewStack())
			assert.Equal(t, router.ScreenExit, next)
		})
	}
}
