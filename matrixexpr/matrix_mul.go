package matrixexpr

import (
	"strings"

	"github.com/njchilds90/symmatrix/scalar"
)

// MatrixMul is a canonicalized matrix product: a scalar coefficient times
// an ordered, non-empty chain of matrix factors. Factor order is never
// reordered — matrix multiplication does not commute, unlike scalar.Mul's
// factor sort (see scalar.MulOf's doc comment) and gosymbol.go's Mul.Simplify,
// neither of which applies here.
type MatrixMul struct {
	scalar  scalar.Expr
	factors []MatrixExpr
}

func (m *MatrixMul) Scalar() scalar.Expr { return m.scalar }

func (m *MatrixMul) Factors() []MatrixExpr {
	cp := make([]MatrixExpr, len(m.factors))
	copy(cp, m.factors)
	return cp
}

func (m *MatrixMul) String() string {
	parts := make([]string, 0, len(m.factors)+1)
	if !scalar.IsOne(m.scalar) {
		parts = append(parts, m.scalar.String())
	}
	for _, f := range m.factors {
		_, isAdd := f.(*MatrixAdd)
		if isAdd {
			parts = append(parts, "("+f.String()+")")
		} else {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "*")
}

func (m *MatrixMul) Equal(other MatrixExpr) bool {
	o, ok := other.(*MatrixMul)
	if !ok || len(m.factors) != len(o.factors) || !m.scalar.Equal(o.scalar) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *MatrixMul) Less(other MatrixExpr) bool {
	o, ok := other.(*MatrixMul)
	if !ok {
		return defaultLess(m, other)
	}
	if scalar.Less(m.scalar, o.scalar) {
		return true
	}
	if scalar.Less(o.scalar, m.scalar) {
		return false
	}
	n := len(m.factors)
	if len(o.factors) < n {
		n = len(o.factors)
	}
	for i := 0; i < n; i++ {
		if m.factors[i].Less(o.factors[i]) {
			return true
		}
		if o.factors[i].Less(m.factors[i]) {
			return false
		}
	}
	return len(m.factors) < len(o.factors)
}

func (m *MatrixMul) Hash() uint64 {
	seed := hashString("MatrixMul")
	seed = hashCombine(seed, hashString(m.scalar.String()))
	for _, f := range m.factors {
		seed = hashCombine(seed, f.Hash())
	}
	return seed
}

func (m *MatrixMul) Children() []MatrixExpr { return m.factors }

// isCanonicalMatrixMul mirrors the canonical-form invariant resolved in
// SPEC_FULL.md §4: at least one matrix factor, none of them a ZeroMatrix or
// nested MatrixMul (both are collapsed away before a MatrixMul is ever
// constructed). An IdentityMatrix factor is only canonical when it is the
// sole factor — the degenerate case of an all-identity chain with a
// non-unit coefficient (e.g. 3*I), which has no other representation once
// every other identity in the chain has been dropped. Any IdentityMatrix
// alongside a non-identity factor is always collapsible, so it can never
// survive here.
func isCanonicalMatrixMul(factors []MatrixExpr) bool {
	if len(factors) == 0 {
		return false
	}
	for _, f := range factors {
		switch f.(type) {
		case *ZeroMatrix, *MatrixMul:
			return false
		case *IdentityMatrix:
			if len(factors) > 1 {
				return false
			}
		}
	}
	return true
}

func newMatrixMul(coef scalar.Expr, factors []MatrixExpr) *MatrixMul {
	if !isCanonicalMatrixMul(factors) {
		panic("matrixexpr: MatrixMul built from non-canonical factors")
	}
	return &MatrixMul{scalar: coef, factors: factors}
}

// MatrixMulOf is the canonicalizing product constructor. It flattens nested
// MatrixMul factors (absorbing their scalar coefficients into coef),
// validates adjacent-factor chain dimensions, collapses the whole product
// to a ZeroMatrix if coef or any factor is zero, drops IdentityMatrix
// factors, and otherwise returns the coefficient and remaining factor chain
// unreordered.
//
// Grounded on the flatten/extract-coefficient/rebuild shape of
// gosymbol.go's Mul.Simplify, with the commutative factor sort that
// function performs deliberately omitted — see DESIGN.md.
func MatrixMulOf(coef scalar.Expr, factors ...MatrixExpr) (MatrixExpr, error) {
	if len(factors) == 0 {
		panic("matrixexpr: MatrixMulOf requires at least one matrix factor")
	}

	flat := make([]MatrixExpr, 0, len(factors))
	runningCoef := coef
	for _, f := range factors {
		if mm, ok := f.(*MatrixMul); ok {
			runningCoef = scalar.Mul2(runningCoef, mm.scalar)
			flat = append(flat, mm.factors...)
		} else {
			flat = append(flat, f)
		}
	}

	if err := checkChainSizes(flat); err != nil {
		return nil, err
	}

	rows, cols := Size(flat[0])
	_, lastCols := Size(flat[len(flat)-1])
	cols = lastCols

	hasZero := scalar.IsZero(runningCoef) == scalar.True
	if !hasZero {
		for _, f := range flat {
			if _, ok := f.(*ZeroMatrix); ok {
				hasZero = true
				break
			}
		}
	}
	if hasZero {
		return NewZeroMatrix(rows, cols), nil
	}

	kept := make([]MatrixExpr, 0, len(flat))
	for _, f := range flat {
		if _, ok := f.(*IdentityMatrix); ok {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		// The whole chain was identities; the product is itself an
		// identity of the common size.
		if scalar.IsOne(runningCoef) {
			return NewIdentityMatrix(rows), nil
		}
		kept = []MatrixExpr{NewIdentityMatrix(rows)}
	}

	if len(kept) == 1 && scalar.IsOne(runningCoef) {
		return kept[0], nil
	}
	return newMatrixMul(runningCoef, kept), nil
}

// matrixMulFactorsOf re-canonicalizes a bare factor chain with an implicit
// unit coefficient, used by MatrixAddOf when it needs to compare two
// matrix-multiplication terms by their factors alone (their coefficients
// are tracked and merged separately).
func matrixMulFactorsOf(factors []MatrixExpr) (MatrixExpr, error) {
	return MatrixMulOf(scalar.One, factors...)
}
