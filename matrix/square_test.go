// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewSquare covers size validation and the Size accessor.
func TestNewSquare(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, matrix.KindSquare, m.Kind())

	for _, n := range []int{0, -5} {
		_, err = matrix.NewSquare[int](n)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

// TestNewSquareFromRows_NonSquare ensures rows != cols input is rejected.
func TestNewSquareFromRows_NonSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int
	}{
		{"3x4", [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}},
		{"2x1", [][]int{{1}, {2}}},
		{"1x2", [][]int{{1, 2}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewSquareFromRows(tc.rows)
			require.ErrorIs(t, err, matrix.ErrNonSquare)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}

	m, err := matrix.NewSquareFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	RequireRows[int](t, [][]int{{1, 2}, {3, 4}}, m)
}

// TestNewSquareFromSlice_InfersSize checks integer square-root inference.
func TestNewSquareFromSlice_InfersSize(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquareFromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	RequireRows[int](t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m)

	_, err = matrix.NewSquareFromSlice([]int{1, 2, 3, 4, 9, 10, 11, 12})
	require.ErrorIs(t, err, matrix.ErrNotPerfectSquare)

	_, err = matrix.NewSquareFromSlice([]int{})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewSquareFromSlice[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
}

// TestNewSquareFromSliceN checks the explicit-size form.
func TestNewSquareFromSliceN(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquareFromSliceN([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())

	_, err = matrix.NewSquareFromSliceN([]int{1, 2, 3, 4, 5}, 2)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestSquareSizeOf exercises the integer square root on edge values.
func TestSquareSizeOf(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]int{1: 1, 4: 2, 9: 3, 144: 12, 1 << 20: 1 << 10} {
		got, err := matrix.SquareSizeOf_TestOnly(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "n=%d", n)
	}
	for _, n := range []int{2, 3, 8, 15, 143} {
		_, err := matrix.SquareSizeOf_TestOnly(n)
		require.ErrorIs(t, err, matrix.ErrNotPerfectSquare, "n=%d", n)
	}
}

// TestSquare_Clone keeps kind and size.
func TestSquare_Clone(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquareFromSlice([]int{1, 2, 3, 4})
	require.NoError(t, err)
	cp := m.Clone()
	require.Equal(t, matrix.KindSquare, cp.Kind())
	require.True(t, matrix.Equal[int](m, cp))
	require.NoError(t, cp.Set(1, 0, 0))
	require.False(t, matrix.Equal[int](m, cp))
}
