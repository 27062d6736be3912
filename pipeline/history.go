package pipeline

// History is a minimal rolling window of past states: just a start and an
// end slot. All three pipeline stages use it the same way, to remember
// "last emitted state" versus "most recent state".
//
// Callers typically either Roll() then UpdateEnd(), or Collapse(). These do
// not result in the same history. Roll should not be called without a
// subsequent UpdateEnd.
type History[T comparable] struct {
	Start, End T
}

// NewHistory returns a history collapsed onto an initial state.
func NewHistory[T comparable](initial T) History[T] {
	return History[T]{Start: initial, End: initial}
}

// UpdateEnd sets the end of history to a new state.
func (h *History[T]) UpdateEnd(state T) {
	h.End = state
}

// Roll forgets ancient history: start becomes the historical end state.
func (h *History[T]) Roll() {
	h.Start = h.End
}

// Collapse makes both slots the same new state.
func (h *History[T]) Collapse(state T) {
	h.Start = state
	h.End = state
}

// IsCollapsed is a predicate: was the most recent call a Collapse?
func (h *History[T]) IsCollapsed() bool {
	return h.Start == h.End
}
