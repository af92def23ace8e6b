// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestSubscribe_DeliversOldAndNew checks the event payload.
func TestSubscribe_DeliversOldAndNew(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewRectangularFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var rec recorder[int]
	m.Subscribe(rec.handle)

	require.NoError(t, m.Set(0, 1, 20))
	require.NoError(t, m.Set(0, 1, 21))
	require.Equal(t, []matrix.Change[int]{
		{Row: 0, Col: 1, Old: 2, New: 20},
		{Row: 0, Col: 1, Old: 20, New: 21},
	}, rec.events)
}

// TestSubscribe_OrderAndUnsubscribe checks subscription order and that the
// unsubscribe func is idempotent.
func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare[int](2)
	require.NoError(t, err)

	var order []string
	unA := m.Subscribe(func(matrix.Change[int]) { order = append(order, "a") })
	m.Subscribe(func(matrix.Change[int]) { order = append(order, "b") })
	m.Subscribe(func(matrix.Change[int]) { order = append(order, "c") })
	require.Equal(t, 3, matrix.SubscriberCount_TestOnly[int](m))

	require.NoError(t, m.Set(0, 0, 1))
	require.Equal(t, []string{"a", "b", "c"}, order)

	unA()
	unA()
	require.Equal(t, 2, matrix.SubscriberCount_TestOnly[int](m))

	order = nil
	require.NoError(t, m.Set(0, 0, 2))
	require.Equal(t, []string{"b", "c"}, order)
}

// TestSet_FailedWriteFiresNothing covers out-of-range and structural failures.
func TestSet_FailedWriteFiresNothing(t *testing.T) {
	t.Parallel()

	d := diag3(t)
	var rec recorder[int]
	d.Subscribe(rec.handle)

	require.ErrorIs(t, d.Set(3, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 1, 1), matrix.ErrStructuralWrite)
	require.Empty(t, rec.events)

	require.NoError(t, d.Set(1, 1, 60))
	require.Equal(t, []matrix.Change[int]{{Row: 1, Col: 1, Old: 6, New: 60}}, rec.events)
}

// TestSet_ReentrantWriteRejected ensures a handler cannot write to the matrix
// it observes, and that the outer write still completes.
func TestSet_ReentrantWriteRejected(t *testing.T) {
	t.Parallel()

	m := sym3(t)
	var inner error
	m.Subscribe(func(ev matrix.Change[int]) {
		inner = m.Set(ev.Col, ev.Row, ev.New)
	})

	require.NoError(t, m.Set(0, 1, 9))
	require.ErrorIs(t, inner, matrix.ErrReentrantWrite)
	require.Equal(t, 9, MustAt[int](t, m, 0, 1))
	require.Equal(t, 2, MustAt[int](t, m, 1, 0))

	// The guard is released once delivery ends.
	require.NoError(t, m.Set(1, 0, 9))
	require.ErrorIs(t, inner, matrix.ErrReentrantWrite)
}

// TestSubscribe_DuringDispatch applies from the next write on.
func TestSubscribe_DuringDispatch(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewRectangular[int](1, 2)
	require.NoError(t, err)

	var late recorder[int]
	added := false
	m.Subscribe(func(matrix.Change[int]) {
		if !added {
			added = true
			m.Subscribe(late.handle)
		}
	})

	require.NoError(t, m.Set(0, 0, 1))
	require.Empty(t, late.events)
	require.NoError(t, m.Set(0, 1, 2))
	require.Len(t, late.events, 1)
}

// TestWithHandler subscribes at construction and sees the first write.
func TestWithHandler(t *testing.T) {
	t.Parallel()

	var rec recorder[string]
	m, err := matrix.NewRectangular(1, 1, matrix.WithHandler(rec.handle))
	require.NoError(t, err)
	require.Equal(t, 1, matrix.SubscriberCount_TestOnly[string](m))

	require.NoError(t, m.Set(0, 0, "x"))
	require.Equal(t, []matrix.Change[string]{{Row: 0, Col: 0, Old: "", New: "x"}}, rec.events)
}

// TestClone_DropsSubscriptions checks that clones start without handlers.
func TestClone_DropsSubscriptions(t *testing.T) {
	t.Parallel()

	var rec recorder[int]
	m := sym3(t)
	m.Subscribe(rec.handle)

	cp := m.Clone()
	require.Zero(t, matrix.SubscriberCount_TestOnly[int](cp))
	require.NoError(t, cp.Set(0, 0, 5))
	require.Empty(t, rec.events)
}

// TestSubscribe_NilPanics guards the programmer-error path.
func TestSubscribe_NilPanics(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare[int](1)
	require.NoError(t, err)
	require.PanicsWithValue(t, matrix.PanicSubNil_TestOnly, func() { m.Subscribe(nil) })
}
