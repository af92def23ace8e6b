// SPDX-License-Identifier: MIT

package matrixio_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrixio"
	"github.com/stretchr/testify/require"
)

func TestCombinerByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want float64
	}{
		{"sum", 7},
		{"", 7},
		{" SUM ", 7},
		{"diff", 3},
		{"mul", 10},
		{"max", 5},
		{"min", 2},
	}
	for _, tc := range tests {
		c, err := matrixio.CombinerByName(tc.name)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, c(5, 2), tc.name)
	}

	_, err := matrixio.CombinerByName("pow")
	require.ErrorIs(t, err, matrixio.ErrUnknownOp)
	require.Equal(t, []string{"diff", "max", "min", "mul", "sum"}, matrixio.CombinerNames())
}
