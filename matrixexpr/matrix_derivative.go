package matrixexpr

import (
	"sort"
	"strings"

	"github.com/njchilds90/symmatrix/scalar"
)

// MatrixDerivative is an unevaluated derivative of a MatrixSymbol with
// respect to one or more scalar variables, stored as a sorted multiset (the
// original's multiset_basic) so that repeated differentiation by the same
// variable, and differentiation order, normalize to the same node.
//
// original_source's matrix_symbol.h documents that every MatrixExpr's
// diff_impl "can be overridden"; the only subclass that ever exercises the
// default is MatrixSymbol, which is why MatrixDerivative's canonical form
// requires its arg to be a MatrixSymbol specifically (everything else
// differentiates structurally in diffOnce below, never reaching here).
type MatrixDerivative struct {
	arg  *MatrixSymbol
	vars []*scalar.Symbol // sorted by name; may repeat
}

func (m *MatrixDerivative) Arg() *MatrixSymbol { return m.arg }

func (m *MatrixDerivative) Vars() []*scalar.Symbol {
	cp := make([]*scalar.Symbol, len(m.vars))
	copy(cp, m.vars)
	return cp
}

func (m *MatrixDerivative) String() string {
	names := make([]string, len(m.vars))
	for i, v := range m.vars {
		names[i] = v.Name()
	}
	return "D[" + m.arg.String() + ", " + strings.Join(names, ",") + "]"
}

func (m *MatrixDerivative) Equal(other MatrixExpr) bool {
	o, ok := other.(*MatrixDerivative)
	if !ok || !m.arg.Equal(o.arg) || len(m.vars) != len(o.vars) {
		return false
	}
	for i := range m.vars {
		if !m.vars[i].Equal(o.vars[i]) {
			return false
		}
	}
	return true
}

func (m *MatrixDerivative) Less(other MatrixExpr) bool {
	o, ok := other.(*MatrixDerivative)
	if !ok {
		return defaultLess(m, other)
	}
	if m.arg.Name() != o.arg.Name() {
		return m.arg.Name() < o.arg.Name()
	}
	n := len(m.vars)
	if len(o.vars) < n {
		n = len(o.vars)
	}
	for i := 0; i < n; i++ {
		if m.vars[i].Name() != o.vars[i].Name() {
			return m.vars[i].Name() < o.vars[i].Name()
		}
	}
	return len(m.vars) < len(o.vars)
}

func (m *MatrixDerivative) Hash() uint64 {
	seed := hashString("MatrixDerivative")
	seed = hashCombine(seed, m.arg.Hash())
	for _, v := range m.vars {
		seed = hashCombine(seed, hashString(v.Name()))
	}
	return seed
}

func (m *MatrixDerivative) Children() []MatrixExpr { return []MatrixExpr{m.arg} }

// isCanonicalMatrixDerivative mirrors original_source's
// MatrixDerivative::is_canonical: every variable must be a scalar symbol
// (enforced by MatrixDerivativeOf's argument type before this is even
// reached) and arg must be a MatrixSymbol.
func isCanonicalMatrixDerivative(arg MatrixExpr, vars []*scalar.Symbol) bool {
	if len(vars) == 0 {
		return false
	}
	_, ok := arg.(*MatrixSymbol)
	return ok
}

func newMatrixDerivative(arg *MatrixSymbol, vars []*scalar.Symbol) *MatrixDerivative {
	sorted := make([]*scalar.Symbol, len(vars))
	copy(sorted, vars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })
	if !isCanonicalMatrixDerivative(arg, sorted) {
		panic("matrixexpr: MatrixDerivative built from non-canonical arg/vars")
	}
	return &MatrixDerivative{arg: arg, vars: sorted}
}

// MatrixDerivativeOf differentiates arg with respect to each of vars in
// turn. Each var must be a scalar symbol (ErrInvalidVariable otherwise, the
// Go realization of is_canonical's "x must be a Symbol" check — exposed as
// a returned error here rather than an assertion, since vars arrive as
// scalar.Expr from call sites such as the JSON tool surface that cannot
// enforce the narrower type at compile time).
//
// A MatrixSymbol differentiates to an unevaluated MatrixDerivative node;
// every other node kind differentiates structurally, entrywise or via the
// product/sum rule, and never produces a MatrixDerivative itself — the
// "diff_impl override" original_source documents.
func MatrixDerivativeOf(arg MatrixExpr, vars ...scalar.Expr) (MatrixExpr, error) {
	syms := make([]*scalar.Symbol, len(vars))
	for i, v := range vars {
		s, ok := v.(*scalar.Symbol)
		if !ok {
			return nil, ErrInvalidVariable
		}
		syms[i] = s
	}
	result := arg
	for _, s := range syms {
		next, err := diffOnce(result, s)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

func diffOnce(arg MatrixExpr, x *scalar.Symbol) (MatrixExpr, error) {
	switch v := arg.(type) {
	case *MatrixSymbol:
		return newMatrixDerivative(v, []*scalar.Symbol{x}), nil

	case *MatrixDerivative:
		return newMatrixDerivative(v.arg, append(v.Vars(), x)), nil

	case *IdentityMatrix:
		return NewZeroMatrix(v.size, v.size), nil

	case *ZeroMatrix:
		return v, nil

	case *DiagonalMatrix:
		d := make([]scalar.Expr, len(v.diag))
		for i, e := range v.diag {
			d[i] = scalar.Diff(e, x)
		}
		return NewDiagonalMatrix(d...), nil

	case *ImmutableDenseMatrix:
		d := make([]scalar.Expr, len(v.data))
		for i, e := range v.data {
			d[i] = scalar.Diff(e, x)
		}
		return NewImmutableDenseMatrix(v.rows, v.cols, d), nil

	case *MatrixAdd:
		terms := make([]MatrixExpr, len(v.terms))
		for i, t := range v.terms {
			dt, err := diffOnce(t, x)
			if err != nil {
				return nil, err
			}
			terms[i] = dt
		}
		return MatrixAddOf(terms...)

	case *MatrixMul:
		// Product rule: d(c*F1*...*Fn)/dx = (dc/dx)*F1*...*Fn
		//                                   + c*sum_i F1*...*(dFi/dx)*...*Fn
		var sumTerms []MatrixExpr
		dcoef := scalar.Diff(v.scalar, x)
		if !dcoef.Equal(scalar.Zero) {
			t, err := MatrixMulOf(dcoef, v.factors...)
			if err != nil {
				return nil, err
			}
			sumTerms = append(sumTerms, t)
		}
		for i := range v.factors {
			dfi, err := diffOnce(v.factors[i], x)
			if err != nil {
				return nil, err
			}
			newFactors := make([]MatrixExpr, len(v.factors))
			copy(newFactors, v.factors)
			newFactors[i] = dfi
			t, err := MatrixMulOf(v.scalar, newFactors...)
			if err != nil {
				return nil, err
			}
			sumTerms = append(sumTerms, t)
		}
		if len(sumTerms) == 0 {
			rows, cols := Size(v)
			return NewZeroMatrix(rows, cols), nil
		}
		return MatrixAddOf(sumTerms...)

	default:
		panic("matrixexpr: diffOnce: unhandled node kind")
	}
}
