package swipedeck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureErrorWrapping(t *testing.T) {
	cause := errors.New("font missing")
	err := fmt.Errorf("render: %w", NewInfrastructureError("load_font", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "render: swipedeck: load_font: font missing")
	assert.False(t, IsCancelled(err))
}

func TestInfrastructureErrorWithoutCause(t *testing.T) {
	assert.EqualError(t, NewInfrastructureError("init", nil), "swipedeck: init")
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(fmt.Errorf("deck: %w", ErrCancelled)))
	assert.False(t, IsInfrastructureError(ErrCancelled))
}
