// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the tests.
//   - Keep assertions on whole matrices in one place (MustRows, RequireRows).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// intSum is the integer addition combiner used across tests.
func intSum(x, y int) int { return x + y }

// diag3 is the Diagonal fixture with diagonal [1, 6, 11].
func diag3(t testing.TB) *matrix.Diagonal[int] {
	t.Helper()
	d, err := matrix.NewDiagonalFromRows([][]int{
		{1, 0, 0},
		{0, 6, 0},
		{0, 0, 11},
	})
	require.NoError(t, err)

	return d
}

// sym3 is the Symmetric fixture [[1,2,3],[2,6,0],[3,0,11]].
func sym3(t testing.TB) *matrix.Symmetric[int] {
	t.Helper()
	s, err := matrix.NewSymmetricFromRows([][]int{
		{1, 2, 3},
		{2, 6, 0},
		{3, 0, 11},
	})
	require.NoError(t, err)

	return s
}

// MustAt reads (i, j) or fails the test.
func MustAt[T comparable](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRows snapshots m as [][]T or fails the test.
func MustRows[T comparable](t testing.TB, m matrix.Matrix[T]) [][]T {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// RequireRows asserts that m holds exactly want.
func RequireRows[T comparable](t testing.TB, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	require.Equal(t, want, MustRows(t, m))
}

// recorder collects change notifications.
type recorder[T comparable] struct {
	events []matrix.Change[T]
}

func (r *recorder[T]) handle(ev matrix.Change[T]) { r.events = append(r.events, ev) }
