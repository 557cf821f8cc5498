// SPDX-License-Identifier: MIT

// Package history provides single-branch undo/redo over an opaque state value.
//
// What:
//
//   - History[T] holds past snapshots, the present value and a redo branch.
//   - SetState commits an edit: present moves to past, the redo branch is dropped.
//   - ResetState replaces present and forgets both stacks (document load).
//   - Undo / Redo move one step and report whether anything happened.
//
// Invariants:
//
//   - After n SetState calls on a fresh History, HistoryLength() == min(n, max).
//   - A SetState after Undo leaves CanRedo() == false; there is no history tree.
//   - Undo and Redo on an empty stack are no-ops returning false, never errors.
//
// Options:
//
//   - WithMaxHistory(n): cap the past stack, evicting oldest first (0 = unbounded).
//   - WithClone(fn):     store owned copies of reference-typed states.
//   - WithOnChange(fn):  hook fired after every change of the present value.
//
// Complexity:
//
//   - SetState, Undo, Redo: amortised O(1) plus the cost of the clone function.
//   - Eviction under a cap: O(1) amortised (slice window moves forward).
//
// A History is not safe for concurrent use; one editing session owns it.
package history
