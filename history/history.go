// SPDX-License-Identifier: MIT

package history

// History is a single-branch undo/redo manager over values of type T.
// past holds older states, oldest first; future holds redo states with the
// next one to redo at the end.
type History[T any] struct {
	past     []T
	present  T
	future   []T
	max      int
	clone    func(T) T
	onChange func(T)
}

// New creates a History whose present value is initial and whose stacks are empty.
func New[T any](initial T, opts ...Option[T]) *History[T] {
	h := &History[T]{max: DefaultMaxHistory}
	for _, opt := range opts {
		opt(h)
	}
	h.present = h.own(initial)

	return h
}

// own returns the stored form of v.
func (h *History[T]) own(v T) T {
	if h.clone == nil {
		return v
	}

	return h.clone(v)
}

func (h *History[T]) changed() {
	if h.onChange != nil {
		h.onChange(h.State())
	}
}

// pushPast appends v to past and evicts the oldest entries beyond the cap.
func (h *History[T]) pushPast(v T) {
	h.past = append(h.past, v)
	if h.max > 0 && len(h.past) > h.max {
		drop := len(h.past) - h.max
		var zero T
		for i := 0; i < drop; i++ {
			h.past[i] = zero // release evicted snapshots
		}
		h.past = h.past[drop:]
	}
}

// SetState commits v as a new edit: the current present is pushed onto the
// past stack and the redo branch is discarded.
func (h *History[T]) SetState(v T) {
	h.pushPast(h.present)
	h.future = nil
	h.present = h.own(v)
	h.changed()
}

// ResetState replaces the present value without recording history and
// clears both stacks. Use it when loading a new document.
func (h *History[T]) ResetState(v T) {
	h.past, h.future = nil, nil
	h.present = h.own(v)
	h.changed()
}

// Undo restores the most recent past state. It returns false and does
// nothing when there is nothing to undo.
func (h *History[T]) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	i := len(h.past) - 1
	prev := h.past[i]
	var zero T
	h.past[i] = zero
	h.past = h.past[:i]

	h.future = append(h.future, h.present)
	h.present = prev
	h.changed()

	return true
}

// Redo re-applies the most recently undone state. It returns false and
// does nothing when the redo branch is empty.
func (h *History[T]) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	i := len(h.future) - 1
	next := h.future[i]
	var zero T
	h.future[i] = zero
	h.future = h.future[:i]

	h.pushPast(h.present)
	h.present = next
	h.changed()

	return true
}

// ClearHistory empties both stacks and keeps the present value.
func (h *History[T]) ClearHistory() {
	h.past, h.future = nil, nil
}

// State returns the present value (an owned copy when WithClone is set).
func (h *History[T]) State() T { return h.own(h.present) }

// CanUndo reports whether Undo would change the state.
func (h *History[T]) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether Redo would change the state.
func (h *History[T]) CanRedo() bool { return len(h.future) > 0 }

// HistoryLength returns the number of undo steps available.
func (h *History[T]) HistoryLength() int { return len(h.past) }

// FutureLength returns the number of redo steps available.
func (h *History[T]) FutureLength() int { return len(h.future) }

// MaxHistory returns the configured cap on undo steps (0 = unbounded).
func (h *History[T]) MaxHistory() int { return h.max }
