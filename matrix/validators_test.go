// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestErrorPriority documents the order in which construction checks fire:
// nil argument -> shape -> length -> structure.
func TestErrorPriority(t *testing.T) {
	t.Parallel()

	// nil wins over a bad shape
	_, err := matrix.NewSymmetricFromSliceN[int](nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilArgument)

	// shape wins over length
	_, err = matrix.NewSymmetricFromSliceN([]int{1, 2, 3}, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// length wins over structure
	_, err = matrix.NewDiagonalFromSliceN([]int{1, 2, 3}, 2)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)

	// squareness wins over symmetry
	_, err = matrix.NewSymmetricFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// a nil row wins over raggedness
	_, err = matrix.NewRectangularFromRows([][]int{{1, 2}, {1}, nil})
	require.ErrorIs(t, err, matrix.ErrNilArgument)
}

// TestSentinelTaxonomy checks every construction sentinel wraps the root.
func TestSentinelTaxonomy(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		matrix.ErrBadShape,
		matrix.ErrRaggedRows,
		matrix.ErrLengthMismatch,
		matrix.ErrNotPerfectSquare,
		matrix.ErrNonSquare,
		matrix.ErrAsymmetry,
		matrix.ErrNonDiagonal,
	} {
		require.ErrorIs(t, err, matrix.ErrInvalidArgument, err.Error())
	}
	for _, err := range []error{
		matrix.ErrNilArgument,
		matrix.ErrOutOfRange,
		matrix.ErrStructuralWrite,
		matrix.ErrDimensionMismatch,
		matrix.ErrReentrantWrite,
	} {
		require.NotErrorIs(t, err, matrix.ErrInvalidArgument, err.Error())
	}
}

// TestValidationWithEqual applies a custom equality to the diagonal check.
func TestValidationWithEqual(t *testing.T) {
	t.Parallel()

	// Treat anything below 1e-12 in magnitude as zero.
	tiny := matrix.WithEqual(func(a, b float64) bool {
		d := a - b
		return d < 1e-12 && d > -1e-12
	})
	rows := [][]float64{{2, 1e-15}, {0, 3}}

	_, err := matrix.NewDiagonalFromRows(rows)
	require.ErrorIs(t, err, matrix.ErrNonDiagonal)

	d, err := matrix.NewDiagonalFromRows(rows, tiny)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, d.Diagonal())
	require.Zero(t, MustAt[float64](t, d, 0, 1))
}
