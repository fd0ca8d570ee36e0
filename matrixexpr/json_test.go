package matrixexpr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njchilds90/symmatrix/matrixexpr"
	"github.com/njchilds90/symmatrix/scalar"
)

func roundTrip(t *testing.T, e matrixexpr.MatrixExpr) matrixexpr.MatrixExpr {
	t.Helper()
	encoded, err := matrixexpr.ToJSON(e)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(encoded), &data))

	decoded, err := matrixexpr.FromJSON(data)
	require.NoError(t, err)
	return decoded
}

func TestJSONRoundTripMatrixSymbol(t *testing.T) {
	a := sym("A", 3)
	got := roundTrip(t, a)
	require.True(t, got.Equal(a))
}

func TestJSONRoundTripMatrixAdd(t *testing.T) {
	a, b := sym("A", 2), sym("B", 2)
	sum, err := matrixexpr.MatrixAddOf(a, b)
	require.NoError(t, err)
	got := roundTrip(t, sum)
	require.True(t, got.Equal(sum))
}

func TestJSONRoundTripMatrixMul(t *testing.T) {
	a, b := sym("A", 2), sym("B", 2)
	prod, err := matrixexpr.MatrixMulOf(scalar.N(3), a, b)
	require.NoError(t, err)
	got := roundTrip(t, prod)
	require.True(t, got.Equal(prod))
}

func TestJSONRoundTripDiagonalAndDense(t *testing.T) {
	d := matrixexpr.NewDiagonalMatrix(scalar.N(1), scalar.N(2))
	got := roundTrip(t, d)
	require.True(t, got.Equal(d))

	dense := matrixexpr.NewImmutableDenseMatrix(2, 2, []scalar.Expr{
		scalar.N(1), scalar.N(2), scalar.N(3), scalar.N(4),
	})
	gotDense := roundTrip(t, dense)
	require.True(t, gotDense.Equal(dense))
}

func TestJSONRoundTripMatrixDerivative(t *testing.T) {
	a := sym("A", 2)
	x := scalar.NewSymbol("x")
	d, err := matrixexpr.MatrixDerivativeOf(a, x)
	require.NoError(t, err)
	got := roundTrip(t, d)
	require.True(t, got.Equal(d))
}

func TestFromJSONRejectsMissingType(t *testing.T) {
	_, err := matrixexpr.FromJSON(map[string]interface{}{})
	require.Error(t, err)
}

func TestFromJSONRejectsUnknownType(t *testing.T) {
	_, err := matrixexpr.FromJSON(map[string]interface{}{"type": "not_a_real_kind"})
	require.Error(t, err)
}
