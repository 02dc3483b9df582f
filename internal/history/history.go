// Package history keeps the bounded conversation log supplied to the
// generation call.
package history

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one user or assistant message.
type Turn struct {
	Role Role
	Text string
}

// History is an ordered, size-bounded log of turns, oldest first. When an
// append would exceed the cap, the oldest turns are evicted so the window
// always holds the most recent ones.
type History struct {
	max   int
	turns []Turn
}

// New creates a history capped at max turns. The cap holds whole
// user+assistant pairs, so odd values are rounded up.
func New(max int) *History {
	if max <= 0 {
		max = 10
	}
	if max%2 != 0 {
		max++
	}
	return &History{max: max}
}

// Append adds one turn at the end, evicting from the front if needed.
func (h *History) Append(t Turn) {
	h.turns = append(h.turns, t)
	if n := len(h.turns) - h.max; n > 0 {
		h.turns = append(h.turns[:0:0], h.turns[n:]...)
	}
}

// Snapshot returns a copy of the current turns. Later mutations of the
// history are not observable through it, and callers cannot corrupt the
// log by modifying the returned slice.
func (h *History) Snapshot() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Len() int { return len(h.turns) }
