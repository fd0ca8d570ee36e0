package matrixexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symmatrix/matrixexpr"
	"github.com/njchilds90/symmatrix/scalar"
)

func TestMatrixMulOfDropsIdentityFactor(t *testing.T) {
	a := sym("A", 3)
	id := matrixexpr.NewIdentityMatrix(scalar.N(3))
	got, err := matrixexpr.MatrixMulOf(scalar.One, id, a)
	require.NoError(t, err)
	require.True(t, got.Equal(a))
}

func TestMatrixMulOfAllIdentityCollapsesToIdentity(t *testing.T) {
	id := matrixexpr.NewIdentityMatrix(scalar.N(3))
	got, err := matrixexpr.MatrixMulOf(scalar.One, id, id)
	require.NoError(t, err)
	_, ok := got.(*matrixexpr.IdentityMatrix)
	require.True(t, ok)
}

func TestMatrixMulOfZeroScalarCollapsesToZero(t *testing.T) {
	a := sym("A", 2)
	got, err := matrixexpr.MatrixMulOf(scalar.N(0), a)
	require.NoError(t, err)
	_, ok := got.(*matrixexpr.ZeroMatrix)
	require.True(t, ok)
}

func TestMatrixMulOfZeroFactorCollapsesToZero(t *testing.T) {
	a := sym("A", 2)
	z := matrixexpr.NewZeroMatrix(scalar.N(2), scalar.N(2))
	got, err := matrixexpr.MatrixMulOf(scalar.One, a, z)
	require.NoError(t, err)
	_, ok := got.(*matrixexpr.ZeroMatrix)
	require.True(t, ok)
}

func TestMatrixMulOfFlattensNestedMul(t *testing.T) {
	a, b, c := sym("A", 2), sym("B", 2), sym("C", 2)
	inner, err := matrixexpr.MatrixMulOf(scalar.N(2), a, b)
	require.NoError(t, err)
	outer, err := matrixexpr.MatrixMulOf(scalar.N(3), inner, c)
	require.NoError(t, err)
	mm, ok := outer.(*matrixexpr.MatrixMul)
	require.True(t, ok)
	require.True(t, mm.Scalar().Equal(scalar.N(6)))
	require.Len(t, mm.Factors(), 3)
}

func TestMatrixMulOfPreservesFactorOrder(t *testing.T) {
	a, b := sym("A", 2), sym("B", 2)
	ab, err := matrixexpr.MatrixMulOf(scalar.One, a, b)
	require.NoError(t, err)
	ba, err := matrixexpr.MatrixMulOf(scalar.One, b, a)
	require.NoError(t, err)
	require.False(t, ab.Equal(ba), "matrix multiplication must not be treated as commutative")
}

func TestMatrixMulOfRejectsChainDimensionMismatch(t *testing.T) {
	a := matrixexpr.NewMatrixSymbol("A", scalar.N(2), scalar.N(3))
	b := matrixexpr.NewMatrixSymbol("B", scalar.N(4), scalar.N(2))
	_, err := matrixexpr.MatrixMulOf(scalar.One, a, b)
	require.ErrorIs(t, err, matrixexpr.ErrDimensionMismatch)
}

func TestMatrixMulOfSingleFactorWithUnitScalarReturnsFactor(t *testing.T) {
	a := sym("A", 2)
	got, err := matrixexpr.MatrixMulOf(scalar.One, a)
	require.NoError(t, err)
	require.True(t, got.Equal(a))
}

func TestMatrixMulOfAllIdentityWithNonUnitScalarKeepsCoefficient(t *testing.T) {
	id := matrixexpr.NewIdentityMatrix(scalar.N(3))
	got, err := matrixexpr.MatrixMulOf(scalar.N(3), id, id)
	require.NoError(t, err)
	mm, ok := got.(*matrixexpr.MatrixMul)
	require.True(t, ok, "3*I*I must retain its coefficient rather than collapsing to bare identity")
	require.True(t, mm.Scalar().Equal(scalar.N(3)))
	require.Len(t, mm.Factors(), 1)
	_, isIdentity := mm.Factors()[0].(*matrixexpr.IdentityMatrix)
	require.True(t, isIdentity)
}
