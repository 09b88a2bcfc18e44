// Package router provides screen navigation with explicit data flow.
//
// Each screen takes a typed input and returns a typed result, and a single
// transition function decides what runs next. This keeps the flow of a small
// app (a deck, a prompt at the end of it, a restart) in one place.
//
// # Basic Usage
//
//	const (
//	    ScreenDeck router.Screen = iota
//	    ScreenEndOfDeck
//	)
//
//	r := router.New()
//
//	r.Register(ScreenDeck, "deck", func(input any) (any, error) {
//	    res, err := swipedeck.SwipeDeck(input.([]string), settings)
//	    return res, err
//	})
//
//	r.Register(ScreenEndOfDeck, "end_of_deck", func(input any) (any, error) {
//	    action, err := swipedeck.EndOfDeckPrompt(swipedeck.EndOfDeckSettings{})
//	    return action, err
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenDeck:
//	        stack.Push(from, items, nil)
//	        return ScreenEndOfDeck, nil
//	    case ScreenEndOfDeck:
//	        if result.(swipedeck.PromptAction) == swipedeck.PromptActionRestart {
//	            entry := stack.Root()
//	            return entry.Screen, entry.Input
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenDeck, items)
//
// # Resume State
//
// Screens can return resume state that gets stored on the stack when
// navigating forward. When navigating back, the transition passes it to the
// screen through its input. Resume is nil for stateless screens.
package router
