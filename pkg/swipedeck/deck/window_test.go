package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowVisible(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		index int
		want  []string
	}{
		{"empty", nil, 0, []string{}},
		{"single", []string{"X"}, 0, []string{"X"}},
		{"full window", []string{"A", "B", "C", "D"}, 0, []string{"A", "B", "C"}},
		{"shifted", []string{"A", "B", "C", "D"}, 1, []string{"B", "C", "D"}},
		{"tail", []string{"A", "B", "C", "D"}, 2, []string{"C", "D"}},
		{"end", []string{"A", "B", "C", "D"}, 4, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.items)
			w.index = tt.index
			if len(tt.want) == 0 {
				assert.Empty(t, w.Visible())
				return
			}
			assert.Equal(t, tt.want, w.Visible())
		})
	}
}

func TestWindowAdvanceIsIdempotent(t *testing.T) {
	w := NewWindow([]string{"A", "B", "C"})

	assert.True(t, w.Advance(1))
	assert.False(t, w.Advance(1))
	assert.Equal(t, 1, w.Index())
}

func TestWindowAdvanceRejectsBackwardAndOverflow(t *testing.T) {
	w := NewWindow([]string{"A", "B"})

	assert.False(t, w.Advance(0))
	assert.False(t, w.Advance(-1))
	assert.False(t, w.Advance(3))
	assert.True(t, w.Advance(2))
	assert.True(t, w.Done())
	assert.Equal(t, 0, w.Remaining())
}

func TestWindowCopiesItems(t *testing.T) {
	items := []string{"A", "B"}
	w := NewWindow(items)
	items[0] = "Z"

	assert.Equal(t, []string{"A", "B"}, w.Visible())

	visible := w.Visible()
	visible[1] = "Y"
	assert.Equal(t, []string{"A", "B"}, w.Visible())
}
