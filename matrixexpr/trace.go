package matrixexpr

import (
	"fmt"

	"github.com/njchilds90/symmatrix/scalar"
)

// Trace wraps a matrix expression whose trace could not be reduced any
// further — an opaque MatrixSymbol, or a ZeroMatrix whose squareness is
// indeterminate, or a matrix product the cyclic-rotation rule could not
// collapse. It implements scalar.Expr, not MatrixExpr: a trace is a scalar
// value, the same design original_source's Trace (a Basic, not a
// MatrixExpr subclass) reflects.
type Trace struct {
	arg MatrixExpr
}

var _ scalar.Expr = (*Trace)(nil)

func (t *Trace) Arg() MatrixExpr { return t.arg }

func (t *Trace) Simplify() scalar.Expr { return t }

func (t *Trace) String() string { return fmt.Sprintf("trace(%s)", t.arg.String()) }

func (t *Trace) Equal(other scalar.Expr) bool {
	o, ok := other.(*Trace)
	return ok && t.arg.Equal(o.arg)
}

// Diff differentiates a trace by pushing the derivative inside: trace is
// linear in its argument's entries, so d/dx trace(A) = trace(dA/dx).
func (t *Trace) Diff(x *scalar.Symbol) scalar.Expr {
	deriv, err := MatrixDerivativeOf(t.arg, x)
	if err != nil {
		panic(err)
	}
	return TraceOf(deriv)
}

// TraceOf computes the canonicalized trace of a matrix expression,
// exploiting linearity over sums, the cyclic-shift invariance of matrix
// products, and distributivity of matrix multiplication over addition.
//
// The per-kind dispatch is a direct translation of original_source's
// MatrixTraceVisitor (a C++ double-dispatch visitor) into a Go type switch,
// the idiom spec.md §9 calls out explicitly: "dynamic dispatch on node kind
// maps directly to pattern matching on a sum type". The cartesian-product
// expansion of a MatrixMul with one or more MatrixAdd factors is spelled
// out in spec.md §4.3's prose beyond what the excerpted C++ shows.
func TraceOf(arg MatrixExpr) scalar.Expr {
	switch v := arg.(type) {
	case *IdentityMatrix:
		return v.size

	case *ZeroMatrix:
		switch isSquareTribool(v.rows, v.cols) {
		case scalar.True:
			return scalar.Zero
		case scalar.False:
			panic(fmt.Errorf("trace of %s x %s zero matrix: %w", v.rows.String(), v.cols.String(), ErrNonSquare))
		default:
			return &Trace{arg: v}
		}

	case *DiagonalMatrix:
		return scalar.AddOf(v.diag...)

	case *ImmutableDenseMatrix:
		tr, err := traceOfDense(v)
		if err != nil {
			panic(err)
		}
		return tr

	case *MatrixAdd:
		// Trace is linear: trace(A + B + ...) = trace(A) + trace(B) + ...
		terms := make([]scalar.Expr, len(v.terms))
		for i, term := range v.terms {
			terms[i] = TraceOf(term)
		}
		return scalar.AddOf(terms...)

	case *MatrixMul:
		return traceOfMatrixMul(v)

	default:
		return &Trace{arg: arg}
	}
}

// traceOfMatrixMul implements the MatrixMul branch of the trace visitor:
// a zero scalar makes the whole product zero; any MatrixAdd factor
// distributes across a cartesian product of one-term-at-a-time products
// (spec.md §4.3); otherwise the factor chain is cyclically rotated to put
// its key-order minimum first — exploiting tr(ABC) = tr(BCA) = tr(CAB) —
// before being re-examined.
func traceOfMatrixMul(mm *MatrixMul) scalar.Expr {
	if scalar.IsZero(mm.scalar) == scalar.True {
		return scalar.Zero
	}

	for i, f := range mm.factors {
		add, ok := f.(*MatrixAdd)
		if !ok {
			continue
		}
		terms := make([]scalar.Expr, 0, len(add.terms))
		for _, term := range add.terms {
			newFactors := make([]MatrixExpr, len(mm.factors))
			copy(newFactors, mm.factors)
			newFactors[i] = term
			product, err := MatrixMulOf(scalar.One, newFactors...)
			if err != nil {
				panic(err)
			}
			terms = append(terms, TraceOf(product))
		}
		sum := scalar.AddOf(terms...)
		if !scalar.IsOne(mm.scalar) {
			sum = scalar.MulOf(mm.scalar, sum)
		}
		return sum
	}

	minIdx := 0
	for i := 1; i < len(mm.factors); i++ {
		if mm.factors[i].Less(mm.factors[minIdx]) {
			minIdx = i
		}
	}

	var product MatrixExpr
	var err error
	if minIdx == 0 {
		product, err = matrixMulFactorsOf(mm.factors)
	} else {
		rotated := make([]MatrixExpr, 0, len(mm.factors))
		rotated = append(rotated, mm.factors[minIdx:]...)
		rotated = append(rotated, mm.factors[:minIdx]...)
		product, err = matrixMulFactorsOf(rotated)
	}
	if err != nil {
		panic(err)
	}

	var tr scalar.Expr
	if pmm, ok := product.(*MatrixMul); ok {
		// Rotation did not reduce the chain any further; stop here rather
		// than looping forever re-deriving the same rotation.
		tr = &Trace{arg: pmm}
	} else {
		tr = TraceOf(product)
	}
	if !scalar.IsOne(mm.scalar) {
		tr = scalar.MulOf(tr, mm.scalar)
	}
	return tr
}
