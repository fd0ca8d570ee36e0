package matrixexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symmatrix/matrixexpr"
	"github.com/njchilds90/symmatrix/scalar"
)

func TestSizeDispatchesOnEveryLiteralKind(t *testing.T) {
	cases := []struct {
		name string
		expr matrixexpr.MatrixExpr
		rows string
		cols string
	}{
		{"symbol", matrixexpr.NewMatrixSymbol("A", scalar.N(2), scalar.N(3)), "2", "3"},
		{"identity", matrixexpr.NewIdentityMatrix(scalar.N(5)), "5", "5"},
		{"zero", matrixexpr.NewZeroMatrix(scalar.N(4), scalar.N(6)), "4", "6"},
		{"diagonal", matrixexpr.NewDiagonalMatrix(scalar.N(1), scalar.N(2), scalar.N(3)), "3", "3"},
		{"dense", matrixexpr.NewImmutableDenseMatrix(2, 3, []scalar.Expr{
			scalar.N(1), scalar.N(2), scalar.N(3), scalar.N(4), scalar.N(5), scalar.N(6),
		}), "2", "3"},
	}
	for _, c := range cases {
		rows, cols := matrixexpr.Size(c.expr)
		require.Equal(t, c.rows, rows.String(), "rows for %s", c.name)
		require.Equal(t, c.cols, cols.String(), "cols for %s", c.name)
	}
}

func TestSymbolicDimensionsAreAcceptedWhenIndeterminate(t *testing.T) {
	n := scalar.NewSymbol("n")
	a := matrixexpr.NewMatrixSymbol("A", n, n)
	b := matrixexpr.NewMatrixSymbol("B", n, n)
	_, err := matrixexpr.MatrixAddOf(a, b)
	require.NoError(t, err, "symbolic dimensions that cannot be proven unequal must be accepted")
}
