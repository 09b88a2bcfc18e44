package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
//
//	const (
//	    ScreenDeck Screen = iota
//	    ScreenEndOfDeck
//	)
type Screen int

// ScreenFunc runs a screen. The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to pick the next one.
// It receives the screen that just completed, its result, and the navigation
// stack, and returns the next screen and its input. Returning ScreenExit stops
// the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

var (
	ErrNoTransition  = errors.New("router: no transition function set")
	ErrNotRegistered = errors.New("router: screen not registered")
)

// Router runs screens one after another. Screens are registered with their
// functions, and a single transition function holds all routing logic.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// Register adds a screen to the router. name is only used in logs and errors.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	r.names[screen] = name
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// WithLogger logs every screen change to logger at debug level.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run starts the router at the given screen with the given input and keeps
// going until the transition function returns ScreenExit or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	return r.RunContext(context.Background(), start, input)
}

// RunContext is Run, stopping between screens once ctx is done. A screen that
// is already showing is not interrupted.
func (r *Router) RunContext(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current, currentInput := start, input
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotRegistered, current)
		}

		r.logger.Debug("Showing screen", "screen", r.Name(current), "stack", r.stack.Len())
		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", r.Name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			r.logger.Debug("Router exiting", "from", r.Name(current))
			return nil
		}

		current, currentInput = next, nextInput
	}
}

// Name returns the registered name of screen, or its number.
func (r *Router) Name(screen Screen) string {
	if name, ok := r.names[screen]; ok && name != "" {
		return name
	}
	if screen == ScreenExit {
		return "exit"
	}
	return fmt.Sprintf("screen(%d)", int(screen))
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
