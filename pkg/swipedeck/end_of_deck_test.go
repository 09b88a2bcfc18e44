package swipedeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndOfDeckNavigateWraps(t *testing.T) {
	c := &endOfDeckController{options: []PromptAction{PromptActionRestart, PromptActionQuit}}

	c.navigate(-1)
	assert.Equal(t, 1, c.selectedIndex)
	c.navigate(1)
	assert.Equal(t, 0, c.selectedIndex)
	c.navigate(1)
	c.navigate(1)
	assert.Equal(t, 0, c.selectedIndex)
}

func TestEndOfDeckPromptWithoutInit(t *testing.T) {
	_, err := EndOfDeckPrompt(EndOfDeckSettings{})
	assert.True(t, IsInfrastructureError(err))
}

func TestSwipeDeckWithoutInit(t *testing.T) {
	_, err := SwipeDeck([]string{"A"}, SwipeDeckSettings{})
	assert.True(t, IsInfrastructureError(err))
}
