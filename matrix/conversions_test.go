// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestToRows_Snapshot returns an independent dense copy for every variant.
func TestToRows_Snapshot(t *testing.T) {
	t.Parallel()

	d := diag3(t)
	rows, err := matrix.ToRows[int](d)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 6, 0}, {0, 0, 11}}, rows)

	rows[0][0] = 42
	require.Equal(t, 1, MustAt[int](t, d, 0, 0))

	_, err = matrix.ToRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
}

// TestEqual ignores kind but not shape or contents.
func TestEqual(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewSquareFromRows([][]int{{1, 0, 0}, {0, 6, 0}, {0, 0, 11}})
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](diag3(t), sq))
	require.False(t, matrix.Equal[int](diag3(t), sym3(t)))

	r, err := matrix.NewRectangular[int](3, 1)
	require.NoError(t, err)
	require.False(t, matrix.Equal[int](r, sq))
	require.False(t, matrix.Equal[int](nil, sq))
	require.False(t, matrix.Equal[int](sq, nil))
}

// TestValidate re-checks structure after trusted writes.
func TestValidate(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRectangular[int](2, 5)
	require.NoError(t, err)
	require.NoError(t, matrix.Validate[int](r))

	sq, err := matrix.NewSquare[int](2)
	require.NoError(t, err)
	require.NoError(t, sq.Set(0, 1, 3))
	require.NoError(t, matrix.Validate[int](sq))

	s := sym3(t)
	require.NoError(t, s.Set(2, 0, -3))
	err = matrix.Validate[int](s)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.EqualError(t, err, "Validate: (0,2): matrix: invalid argument: matrix must be symmetric")

	require.ErrorIs(t, matrix.Validate[int](nil), matrix.ErrNilArgument)
	var nilRect *matrix.Rectangular[int]
	require.ErrorIs(t, matrix.Validate[int](nilRect), matrix.ErrNilArgument)
	_, err = matrix.ToRows[int](nilRect)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	require.False(t, matrix.Equal[int](nilRect, r))
}

// untagged wraps a real matrix but reports a kind outside Kinds().
type untagged struct {
	matrix.Matrix[int]
	kind matrix.Kind
}

func (u untagged) Kind() matrix.Kind { return u.kind }

// TestValidate_UnknownKind returns ErrInvalidArgument instead of panicking.
func TestValidate_UnknownKind(t *testing.T) {
	t.Parallel()

	for _, k := range []matrix.Kind{matrix.KindUnknown, matrix.Kind(9)} {
		err := matrix.Validate[int](untagged{Matrix: sym3(t), kind: k})
		require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		require.ErrorContains(t, err, "Validate: kind ")
	}
}

// TestFromRows dispatches to the constructor of the requested kind.
func TestFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]int{{1, 0}, {0, 1}}
	for _, k := range matrix.Kinds() {
		m, err := matrix.FromRows(k, rows)
		require.NoError(t, err, k)
		require.Equal(t, k, m.Kind())
		RequireRows(t, rows, m)
	}

	m, err := matrix.FromRows(matrix.KindDiagonal, [][]int{{1, 1}, {0, 1}})
	require.ErrorIs(t, err, matrix.ErrNonDiagonal)
	require.Nil(t, m) // untyped nil, never a typed-nil interface

	_, err = matrix.FromRows(matrix.KindUnknown, rows)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}
