package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenA Screen = iota
	screenB
)

func TestRunRequiresTransition(t *testing.T) {
	err := New().Register(screenA, "a", func(any) (any, error) { return nil, nil }).Run(screenA, nil)
	assert.ErrorIs(t, err, ErrNoTransition)
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New().OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	err := r.Run(screenB, nil)
	require.ErrorIs(t, err, ErrNotRegistered)
	assert.Contains(t, err.Error(), "1")
}

func TestRunWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New().
		Register(screenA, "deck", func(any) (any, error) { return nil, boom }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	err := r.Run(screenA, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "deck")
}

func TestRunPassesResultsAndInputs(t *testing.T) {
	var seen []any
	r := New().
		Register(screenA, "a", func(in any) (any, error) { seen = append(seen, in); return in.(int) + 1, nil }).
		Register(screenB, "b", func(in any) (any, error) { seen = append(seen, in); return nil, nil }).
		OnTransition(func(from Screen, result any, _ *Stack) (Screen, any) {
			if from == screenA {
				return screenB, result
			}
			return ScreenExit, nil
		})

	require.NoError(t, r.Run(screenA, 41))
	assert.Equal(t, []any{41, 42}, seen)
}

func TestRunContextStopsBetweenScreens(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	r := New().
		Register(screenA, "a", func(any) (any, error) { calls++; cancel(); return nil, nil }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return screenA, nil })

	err := r.RunContext(ctx, screenA, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestName(t *testing.T) {
	r := New().Register(screenA, "deck", nil)
	assert.Equal(t, "deck", r.Name(screenA))
	assert.Equal(t, "screen(1)", r.Name(screenB))
	assert.Equal(t, "exit", r.Name(ScreenExit))
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())
	assert.Nil(t, s.Root())

	s.Push(screenA, "first", nil)
	s.Push(screenB, "second", 3)
	s.Push(screenA, "third", nil)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "third", s.Peek().Input)

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, "third", top.Input)

	root := s.Root()
	require.NotNil(t, root)
	assert.Equal(t, "first", root.Input)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}
