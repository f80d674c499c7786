package session

import "time"

// Turn is one user/assistant exchange recorded for AI context.
type Turn struct {
	User      string
	Assistant string
	At        time.Time
}

// History is a fixed-capacity conversation window. Appending past capacity
// evicts the oldest turn; length never exceeds the cap.
type History struct {
	capacity int
	turns    []Turn
}

// NewHistory builds a history window of the given capacity (minimum 1).
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

// Append records a turn, evicting the oldest once the window is full.
func (h *History) Append(t Turn) {
	h.turns = append(h.turns, t)
	if len(h.turns) > h.capacity {
		h.turns = h.turns[len(h.turns)-h.capacity:]
	}
}

// Last returns up to n most recent turns in chronological order.
func (h *History) Last(n int) []Turn {
	if n > len(h.turns) {
		n = len(h.turns)
	}
	out := make([]Turn, n)
	copy(out, h.turns[len(h.turns)-n:])
	return out
}

// Len reports how many turns the window currently holds.
func (h *History) Len() int {
	return len(h.turns)
}
