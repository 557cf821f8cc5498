// SPDX-License-Identifier: MIT
// Package history: functional options.
// WithX constructors panic on nonsensical values (programmer error), the
// same contract the numeric-policy options of the matrix adapters follow.

package history

// DefaultMaxHistory is the default cap on the past stack; 0 means unbounded.
const DefaultMaxHistory = 0

// Option configures a History at construction time.
type Option[T any] func(h *History[T])

// WithMaxHistory caps the number of undo steps kept. Oldest entries are
// evicted first. n == 0 means unbounded; n < 0 panics.
func WithMaxHistory[T any](n int) Option[T] {
	if n < 0 {
		panic("history: WithMaxHistory(n): n must be >= 0")
	}

	return func(h *History[T]) { h.max = n }
}

// WithClone sets the function used to take owned copies of states handed
// to or returned from the History. Use it when T is a pointer or contains
// slices the caller may keep mutating. A nil fn panics.
func WithClone[T any](fn func(T) T) Option[T] {
	if fn == nil {
		panic("history: WithClone(nil)")
	}

	return func(h *History[T]) { h.clone = fn }
}

// WithOnChange registers a hook called with the new present value after
// SetState, ResetState and every successful Undo/Redo. A nil fn panics.
func WithOnChange[T any](fn func(T)) Option[T] {
	if fn == nil {
		panic("history: WithOnChange(nil)")
	}

	return func(h *History[T]) { h.onChange = fn }
}
