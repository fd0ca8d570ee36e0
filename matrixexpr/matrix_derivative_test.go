package matrixexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symmatrix/matrixexpr"
	"github.com/njchilds90/symmatrix/scalar"
)

func TestMatrixDerivativeOfSymbolWrapsNode(t *testing.T) {
	a := sym("A", 2)
	x := scalar.NewSymbol("x")
	got, err := matrixexpr.MatrixDerivativeOf(a, x)
	require.NoError(t, err)
	d, ok := got.(*matrixexpr.MatrixDerivative)
	require.True(t, ok)
	require.True(t, d.Arg().Equal(a))
	require.Len(t, d.Vars(), 1)
	require.Equal(t, "x", d.Vars()[0].Name())
}

func TestMatrixDerivativeOfRejectsNonSymbolVariable(t *testing.T) {
	a := sym("A", 2)
	notASymbol := scalar.N(5)
	_, err := matrixexpr.MatrixDerivativeOf(a, notASymbol)
	require.ErrorIs(t, err, matrixexpr.ErrInvalidVariable)
}

func TestMatrixDerivativeOfIdentityIsZero(t *testing.T) {
	id := matrixexpr.NewIdentityMatrix(scalar.N(3))
	x := scalar.NewSymbol("x")
	got, err := matrixexpr.MatrixDerivativeOf(id, x)
	require.NoError(t, err)
	_, ok := got.(*matrixexpr.ZeroMatrix)
	require.True(t, ok)
}

func TestMatrixDerivativeOfDenseDifferentiatesEntries(t *testing.T) {
	x := scalar.NewSymbol("x")
	m := matrixexpr.NewImmutableDenseMatrix(2, 2, []scalar.Expr{
		scalar.MulOf(x, x), scalar.N(1),
		x, scalar.N(0),
	})
	got, err := matrixexpr.MatrixDerivativeOf(m, x)
	require.NoError(t, err)
	d, ok := got.(*matrixexpr.ImmutableDenseMatrix)
	require.True(t, ok)
	require.True(t, d.At(0, 0).Equal(scalar.MulOf(scalar.N(2), x)))
	require.True(t, d.At(0, 1).Equal(scalar.Zero))
	require.True(t, d.At(1, 0).Equal(scalar.One))
}

func TestMatrixDerivativeOfSumDistributes(t *testing.T) {
	a, b := sym("A", 2), sym("B", 2)
	sum, err := matrixexpr.MatrixAddOf(a, b)
	require.NoError(t, err)
	x := scalar.NewSymbol("x")
	got, err := matrixexpr.MatrixDerivativeOf(sum, x)
	require.NoError(t, err)

	da, err := matrixexpr.MatrixDerivativeOf(a, x)
	require.NoError(t, err)
	db, err := matrixexpr.MatrixDerivativeOf(b, x)
	require.NoError(t, err)
	want, err := matrixexpr.MatrixAddOf(da, db)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestTraceDiffPushesThroughMatrixDerivative(t *testing.T) {
	a := sym("A", 2)
	x := scalar.NewSymbol("x")
	tr := matrixexpr.TraceOf(a)
	got := scalar.Diff(tr, x)

	da, err := matrixexpr.MatrixDerivativeOf(a, x)
	require.NoError(t, err)
	want := matrixexpr.TraceOf(da)
	require.True(t, got.Equal(want))
}
