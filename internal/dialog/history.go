package dialog

// Turn is one entry in a session's conversation record.
type Turn struct {
	Role string // "user" or "assistant"
	Text string
}

// History is the append-only conversation record of a single call. The full
// sequence is retained for the session's lifetime; completion requests take a
// bounded view via LastN.
type History struct {
	turns []Turn
}

// Append records one turn.
func (h *History) Append(role, text string) {
	h.turns = append(h.turns, Turn{Role: role, Text: text})
}

// Len returns the number of recorded turns.
func (h *History) Len() int { return len(h.turns) }

// LastN returns up to the n most recent turns.
func (h *History) LastN(n int) []Turn {
	if n >= len(h.turns) {
		return h.turns
	}
	return h.turns[len(h.turns)-n:]
}

// All returns every recorded turn.
func (h *History) All() []Turn { return h.turns }
