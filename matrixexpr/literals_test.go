package matrixexpr_test

import (
	"testing"

	"github.com/njchilds90/symmatrix/matrixexpr"
	"github.com/njchilds90/symmatrix/scalar"
)

func TestMatrixSymbolEquality(t *testing.T) {
	n := scalar.N(3)
	a := matrixexpr.NewMatrixSymbol("A", n, n)
	b := matrixexpr.NewMatrixSymbol("A", n, n)
	c := matrixexpr.NewMatrixSymbol("B", n, n)
	if !a.Equal(b) {
		t.Errorf("symbols with same name/shape should be equal")
	}
	if a.Equal(c) {
		t.Errorf("symbols with different names should not be equal")
	}
}

func TestIdentityMatrixString(t *testing.T) {
	id := matrixexpr.NewIdentityMatrix(scalar.N(4))
	if id.String() != "I(4)" {
		t.Errorf("expected I(4), got %s", id.String())
	}
}

func TestZeroMatrixEquality(t *testing.T) {
	z1 := matrixexpr.NewZeroMatrix(scalar.N(2), scalar.N(3))
	z2 := matrixexpr.NewZeroMatrix(scalar.N(2), scalar.N(3))
	z3 := matrixexpr.NewZeroMatrix(scalar.N(3), scalar.N(2))
	if !z1.Equal(z2) {
		t.Errorf("zero matrices with same shape should be equal")
	}
	if z1.Equal(z3) {
		t.Errorf("zero matrices with different shape should not be equal")
	}
}

func TestDiagonalMatrixPanicsOnEmpty(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty diagonal")
		}
	}()
	matrixexpr.NewDiagonalMatrix()
}

func TestImmutableDenseMatrixPanicsOnBadCellCount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on mismatched cell count")
		}
	}()
	matrixexpr.NewImmutableDenseMatrix(2, 2, []scalar.Expr{scalar.N(1)})
}

func TestImmutableDenseMatrixAtPanicsOutOfRange(t *testing.T) {
	m := matrixexpr.NewImmutableDenseMatrix(2, 2, []scalar.Expr{
		scalar.N(1), scalar.N(2), scalar.N(3), scalar.N(4),
	})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on out-of-range index")
		}
	}()
	m.At(5, 0)
}

func TestImmutableDenseMatrixAt(t *testing.T) {
	m := matrixexpr.NewImmutableDenseMatrix(2, 2, []scalar.Expr{
		scalar.N(1), scalar.N(2), scalar.N(3), scalar.N(4),
	})
	if !m.At(1, 0).Equal(scalar.N(3)) {
		t.Errorf("expected cell (1,0) to be 3, got %s", m.At(1, 0).String())
	}
}
