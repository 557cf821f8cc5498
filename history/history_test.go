package history_test

import (
	"testing"

	"github.com/katalvlaran/chargen/history"
	"github.com/stretchr/testify/require"
)

func TestUndoRedo(t *testing.T) {
	h := history.New("a")
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())

	h.SetState("b")
	h.SetState("c")
	require.Equal(t, "c", h.State())
	require.Equal(t, 2, h.HistoryLength())

	require.True(t, h.Undo())
	require.Equal(t, "b", h.State())
	require.True(t, h.CanRedo())
	require.Equal(t, 1, h.FutureLength())

	require.True(t, h.Undo())
	require.Equal(t, "a", h.State())
	require.False(t, h.Undo(), "empty past is a no-op")
	require.Equal(t, "a", h.State())

	require.True(t, h.Redo())
	require.Equal(t, "b", h.State())
	require.True(t, h.Redo())
	require.Equal(t, "c", h.State())
	require.False(t, h.Redo(), "empty future is a no-op")
	require.Equal(t, 2, h.HistoryLength())
}

// TestSetStateDropsRedoBranch: editing after undo forgets the undone states.
func TestSetStateDropsRedoBranch(t *testing.T) {
	h := history.New(0)
	for i := 1; i <= 3; i++ {
		h.SetState(i)
	}
	require.True(t, h.Undo())
	require.True(t, h.Undo())
	require.Equal(t, 1, h.State())

	h.SetState(10)
	require.False(t, h.CanRedo())
	require.Equal(t, 0, h.FutureLength())
	require.Equal(t, 2, h.HistoryLength()) // 0, 1

	require.True(t, h.Undo())
	require.Equal(t, 1, h.State())
	require.True(t, h.Redo())
	require.Equal(t, 10, h.State())
}

// TestMaxHistoryEvictsOldest caps past and drops the oldest entries first.
func TestMaxHistoryEvictsOldest(t *testing.T) {
	h := history.New(0, history.WithMaxHistory[int](3))
	require.Equal(t, 3, h.MaxHistory())
	for i := 1; i <= 10; i++ {
		h.SetState(i)
		require.LessOrEqual(t, h.HistoryLength(), 3)
	}
	require.Equal(t, 3, h.HistoryLength())

	var seen []int
	for h.Undo() {
		seen = append(seen, h.State())
	}
	require.Equal(t, []int{9, 8, 7}, seen)

	// redo pushes onto the capped past as well
	for h.Redo() {
	}
	require.Equal(t, 10, h.State())
	require.Equal(t, 3, h.HistoryLength())
}

// TestHistoryLengthCounts: after n SetState calls HistoryLength == n when unbounded.
func TestHistoryLengthCounts(t *testing.T) {
	h := history.New(0)
	for i := 0; i < 250; i++ {
		h.SetState(i)
	}
	require.Equal(t, 250, h.HistoryLength())
	require.Equal(t, history.DefaultMaxHistory, h.MaxHistory())
}

// TestResetAndClear covers document load and explicit history clearing.
func TestResetAndClear(t *testing.T) {
	h := history.New("doc1")
	h.SetState("edit")
	require.True(t, h.Undo())

	h.ResetState("doc2")
	require.Equal(t, "doc2", h.State())
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())

	h.SetState("x")
	h.SetState("y")
	require.True(t, h.Undo())
	h.ClearHistory()
	require.Equal(t, "x", h.State())
	require.Zero(t, h.HistoryLength())
	require.Zero(t, h.FutureLength())
}

// TestWithClone keeps snapshots independent of caller-held slices.
func TestWithClone(t *testing.T) {
	cloneSlice := func(s []int) []int { return append([]int(nil), s...) }
	buf := []int{1, 2, 3}
	h := history.New(buf, history.WithClone(cloneSlice))

	buf[0] = 99
	require.Equal(t, []int{1, 2, 3}, h.State())

	next := h.State()
	next[1] = 20
	h.SetState(next)
	next[2] = 30 // mutation after commit must not leak in

	require.Equal(t, []int{1, 20, 3}, h.State())
	require.True(t, h.Undo())
	require.Equal(t, []int{1, 2, 3}, h.State())

	got := h.State()
	got[0] = -1
	require.Equal(t, 1, h.State()[0])
}

// TestWithOnChange fires for every change of the present value only.
func TestWithOnChange(t *testing.T) {
	var log []int
	h := history.New(0, history.WithOnChange(func(v int) { log = append(log, v) }))

	h.SetState(1)
	h.SetState(2)
	h.Undo()
	h.Redo()
	h.Redo() // no-op: nothing to report
	h.ClearHistory()
	h.ResetState(7)

	require.Equal(t, []int{1, 2, 1, 2, 7}, log)
}

// TestOptionPanics: nonsensical option values are programmer errors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { history.WithMaxHistory[int](-1) })
	require.Panics(t, func() { history.WithClone[int](nil) })
	require.Panics(t, func() { history.WithOnChange[int](nil) })
	require.NotPanics(t, func() { history.WithMaxHistory[int](0) })
}
