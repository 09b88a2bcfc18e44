package swipedeck

// DeckAction describes how a SwipeDeck call ended.
type DeckAction int

const (
	DeckActionFinished DeckAction = iota // Every card was dismissed
	DeckActionExited                     // User pressed Start before the end
)

func (a DeckAction) String() string {
	switch a {
	case DeckActionFinished:
		return "finished"
	case DeckActionExited:
		return "exited"
	default:
		return "unknown"
	}
}

// SwipeDeckResult is returned when a SwipeDeck call ends without error.
type SwipeDeckResult struct {
	Action DeckAction
	Index  int // Final window index, also the number of cards dismissed
	Total  int
}

// PromptAction represents the choice made on the end of deck prompt.
type PromptAction int

const (
	PromptActionRestart PromptAction = iota
	PromptActionQuit
)
