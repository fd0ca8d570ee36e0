package scalar_test

import (
	"testing"

	"github.com/njchilds90/symmatrix/scalar"
)

// === Num tests ===

func TestNumArithmeticSimplify(t *testing.T) {
	sum := scalar.AddOf(scalar.N(2), scalar.N(3))
	if sum.String() != "5" {
		t.Errorf("expected 5, got %s", sum.String())
	}
	prod := scalar.MulOf(scalar.N(2), scalar.N(3))
	if prod.String() != "6" {
		t.Errorf("expected 6, got %s", prod.String())
	}
}

func TestNumFraction(t *testing.T) {
	f := scalar.F(1, 2)
	if f.String() != "1/2" {
		t.Errorf("expected 1/2, got %s", f.String())
	}
}

func TestNumIsZeroIsOne(t *testing.T) {
	if !scalar.Zero.IsZero() {
		t.Errorf("Zero.IsZero() should be true")
	}
	if !scalar.One.IsOne() {
		t.Errorf("One.IsOne() should be true")
	}
	if scalar.N(-1).IsNegOne() != true {
		t.Errorf("N(-1).IsNegOne() should be true")
	}
}

// === Sym tests ===

func TestSymbolEquality(t *testing.T) {
	x := scalar.NewSymbol("x")
	y := scalar.NewSymbol("x")
	z := scalar.NewSymbol("y")
	if !x.Equal(y) {
		t.Errorf("symbols with same name should be equal")
	}
	if x.Equal(z) {
		t.Errorf("symbols with different names should not be equal")
	}
}

// === Add tests ===

func TestAddFlattenNested(t *testing.T) {
	x := scalar.NewSymbol("x")
	inner := scalar.AddOf(x, scalar.N(1))
	outer := scalar.AddOf(inner, scalar.N(2))
	got := outer.String()
	want := "x + 3"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAddLikeTerms(t *testing.T) {
	x := scalar.NewSymbol("x")
	got := scalar.AddOf(x, x, x).String()
	want := "3*x"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAddZeroDrops(t *testing.T) {
	x := scalar.NewSymbol("x")
	got := scalar.AddOf(x, scalar.N(0))
	if !got.Equal(x) {
		t.Errorf("adding zero should leave %s unchanged, got %s", x.String(), got.String())
	}
}

func TestAddEmptyIsZero(t *testing.T) {
	got := scalar.AddOf()
	if !got.Equal(scalar.Zero) {
		t.Errorf("AddOf() with no terms should be zero, got %s", got.String())
	}
}

// === Mul tests ===

func TestMulFlattenNested(t *testing.T) {
	x := scalar.NewSymbol("x")
	inner := scalar.MulOf(x, scalar.N(2))
	outer := scalar.MulOf(inner, scalar.N(3))
	got := outer.String()
	want := "6*x"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMulByZero(t *testing.T) {
	x := scalar.NewSymbol("x")
	got := scalar.MulOf(x, scalar.N(0))
	if !got.Equal(scalar.Zero) {
		t.Errorf("multiplying by zero should be zero, got %s", got.String())
	}
}

func TestMulByOneDrops(t *testing.T) {
	x := scalar.NewSymbol("x")
	got := scalar.MulOf(x, scalar.N(1))
	if !got.Equal(x) {
		t.Errorf("multiplying by one should leave %s unchanged, got %s", x.String(), got.String())
	}
}

func TestMulSortsFactorsByStringKey(t *testing.T) {
	a := scalar.NewSymbol("a")
	b := scalar.NewSymbol("b")
	got1 := scalar.MulOf(b, a).String()
	got2 := scalar.MulOf(a, b).String()
	if got1 != got2 {
		t.Errorf("scalar multiplication should be commutative after canonicalization: %q vs %q", got1, got2)
	}
}

// === Diff tests ===

func TestDiffOfSymbol(t *testing.T) {
	x := scalar.NewSymbol("x")
	y := scalar.NewSymbol("y")
	if !scalar.Diff(x, x).Equal(scalar.One) {
		t.Errorf("d/dx(x) should be 1")
	}
	if !scalar.Diff(y, x).Equal(scalar.Zero) {
		t.Errorf("d/dx(y) should be 0")
	}
}

func TestDiffProductRule(t *testing.T) {
	x := scalar.NewSymbol("x")
	y := scalar.NewSymbol("y")
	// d/dx(x*y) = y
	got := scalar.Diff(scalar.MulOf(x, y), x)
	if !got.Equal(y) {
		t.Errorf("d/dx(x*y) should be y, got %s", got.String())
	}
}

// === IsZero (three-valued) tests ===

func TestIsZeroDefiniteCases(t *testing.T) {
	if scalar.IsZero(scalar.N(0)) != scalar.True {
		t.Errorf("IsZero(0) should be True")
	}
	if scalar.IsZero(scalar.N(5)) != scalar.False {
		t.Errorf("IsZero(5) should be False")
	}
}

func TestIsZeroIndeterminateForSymbol(t *testing.T) {
	x := scalar.NewSymbol("x")
	if scalar.IsZero(x) != scalar.Indeterminate {
		t.Errorf("IsZero(x) should be Indeterminate")
	}
}

// === Less (total order) tests ===

func TestLessOrdersNumsBeforeSymbols(t *testing.T) {
	n := scalar.N(5)
	x := scalar.NewSymbol("x")
	if !scalar.Less(n, x) {
		t.Errorf("Num should sort before Symbol")
	}
	if scalar.Less(x, n) {
		t.Errorf("Symbol should not sort before Num")
	}
}

func TestLessIsAntisymmetric(t *testing.T) {
	a := scalar.NewSymbol("a")
	b := scalar.NewSymbol("b")
	if scalar.Less(a, b) == scalar.Less(b, a) {
		t.Errorf("Less must be antisymmetric for distinct symbols")
	}
}

// === Eq / Neq / IsOne / IsNumber ===

func TestEqNeq(t *testing.T) {
	x := scalar.NewSymbol("x")
	y := scalar.NewSymbol("x")
	if !scalar.Eq(x, y) {
		t.Errorf("Eq should hold for equal symbols")
	}
	z := scalar.NewSymbol("z")
	if !scalar.Neq(x, z) {
		t.Errorf("Neq should hold for distinct symbols")
	}
}

func TestIsOneIsNumber(t *testing.T) {
	if !scalar.IsOne(scalar.One) {
		t.Errorf("IsOne(One) should be true")
	}
	if scalar.IsOne(scalar.N(2)) {
		t.Errorf("IsOne(2) should be false")
	}
	if !scalar.IsNumber(scalar.N(2)) {
		t.Errorf("IsNumber(2) should be true")
	}
	if scalar.IsNumber(scalar.NewSymbol("x")) {
		t.Errorf("IsNumber(x) should be false")
	}
}
