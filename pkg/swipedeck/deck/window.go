package deck

import (
	"slices"

	"github.com/BrandonKowalski/swipedeck/pkg/swipedeck/constants"
)

// Window is a sliding view of up to constants.VisibleCards items.
// Its index starts at 0, only moves forward and stops at len(items).
type Window struct {
	items []string
	index int
}

// NewWindow copies items; later changes to the caller's slice are not observed.
func NewWindow(items []string) *Window {
	return &Window{items: slices.Clone(items)}
}

// Index returns the offset of the first visible item.
func (w *Window) Index() int {
	return w.index
}

// Len returns the total number of items in the deck.
func (w *Window) Len() int {
	return len(w.items)
}

// Remaining returns how many items have not been dismissed yet.
func (w *Window) Remaining() int {
	return len(w.items) - w.index
}

// Done reports whether every item has been dismissed.
func (w *Window) Done() bool {
	return w.index >= len(w.items)
}

// Visible returns items[index : index+VisibleCards], clipped to the deck end.
func (w *Window) Visible() []string {
	end := min(w.index+constants.VisibleCards, len(w.items))
	return slices.Clone(w.items[w.index:end])
}

// Advance moves the window to newIndex. Targets at or behind the current
// index, or past the end of the deck, are ignored so a repeated call cannot
// advance twice. Reports whether the window moved.
func (w *Window) Advance(newIndex int) bool {
	if newIndex <= w.index || newIndex > len(w.items) {
		return false
	}
	w.index = newIndex
	return true
}
