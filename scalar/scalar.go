// Package scalar provides the scalar symbolic-expression collaborator that
// the matrix-expression algebra (package matrixexpr) builds on: exact
// rational numbers, named symbols, canonicalizing sum/product constructors,
// a three-valued zero test, a derivative, and a stable total order.
//
// Design goals mirror the scalar kernel this module's matrix algebra grew
// out of: deterministic simplification, exact rational arithmetic
// (math/big.Rat), and a single flat, dependency-free package.
package scalar

import (
	"math/big"
	"sort"
	"strings"
)

// Expr is any scalar symbolic expression.
type Expr interface {
	Simplify() Expr
	String() string
	Diff(sym *Symbol) Expr
	Equal(other Expr) bool
}

// ============================================================
// Tribool — three-valued logic for is_zero and friends
// ============================================================

// Tribool is the result of a predicate the scalar layer could not always
// decide: True, False, or Indeterminate when the symbolic value is unknown.
type Tribool int

const (
	Indeterminate Tribool = iota
	True
	False
)

func (t Tribool) IsTrue() bool          { return t == True }
func (t Tribool) IsFalse() bool         { return t == False }
func (t Tribool) IsIndeterminate() bool { return t == Indeterminate }

func (t Tribool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "indeterminate"
	}
}

// ============================================================
// Num — exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("scalar: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

var (
	Zero = N(0)
	One  = N(1)
)

func (n *Num) Simplify() Expr       { return n }
func (n *Num) Diff(*Symbol) Expr    { return Zero }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) IsZero() bool      { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool       { return n.val.Cmp(big.NewRat(1, 1)) == 0 }
func (n *Num) IsNegOne() bool    { return n.val.Cmp(big.NewRat(-1, 1)) == 0 }
func (n *Num) Sign() int         { return n.val.Sign() }
func (n *Num) Rat() *big.Rat     { return new(big.Rat).Set(n.val) }

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

// ============================================================
// Symbol — named scalar variable
// ============================================================

type Symbol struct{ name string }

func NewSymbol(name string) *Symbol { return &Symbol{name: name} }

func (s *Symbol) Simplify() Expr { return s }
func (s *Symbol) String() string { return s.name }
func (s *Symbol) Name() string   { return s.name }
func (s *Symbol) Diff(x *Symbol) Expr {
	if s.name == x.name {
		return One
	}
	return Zero
}
func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

// ============================================================
// Add — sum of terms
// ============================================================

type Add struct{ terms []Expr }

// AddOf builds the canonicalized sum of terms: flattens nested sums,
// accumulates numeric terms into a single constant, and collects repeated
// symbols into a coefficient*symbol term.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	numAccum := N(0)
	symCoeffs := map[string]*Num{}
	symOrder := []string{}
	others := []Expr{}
	for _, t := range flat {
		switch v := t.(type) {
		case *Num:
			numAccum = numAdd(numAccum, v)
		case *Symbol:
			if _, seen := symCoeffs[v.name]; !seen {
				symOrder = append(symOrder, v.name)
				symCoeffs[v.name] = N(0)
			}
			symCoeffs[v.name] = numAdd(symCoeffs[v.name], N(1))
		default:
			others = append(others, t)
		}
	}
	result := []Expr{}
	sort.Strings(symOrder)
	for _, name := range symOrder {
		coeff := symCoeffs[name]
		if coeff.IsZero() {
			continue
		}
		if coeff.IsOne() {
			result = append(result, NewSymbol(name))
		} else {
			result = append(result, MulOf(coeff, NewSymbol(name)))
		}
	}
	result = append(result, others...)
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	if len(result) == 0 {
		return Zero
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Diff(x *Symbol) Expr {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		dTerms[i] = t.Diff(x)
	}
	return AddOf(dTerms...)
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) Terms() []Expr { return a.terms }

// ============================================================
// Mul — product of factors
// ============================================================

type Mul struct{ factors []Expr }

// MulOf builds the canonicalized product: flattens nested products,
// collects numeric factors into a single leading coefficient, and sorts the
// remaining factors by their string key (scalar multiplication commutes,
// unlike matrix multiplication — see matrixexpr.MatrixMulOf, which must not
// do this).
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	coeff := N(1)
	others := []Expr{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
		} else {
			others = append(others, f)
		}
	}
	if coeff.IsZero() {
		return Zero
	}
	if len(others) == 0 {
		return coeff
	}

	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(others))
	for i, e := range others {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	sortedOthers := make([]Expr, len(ks))
	for i := range ks {
		sortedOthers[i] = ks[i].e
	}
	others = sortedOthers

	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		_, isAdd := f.(*Add)
		if isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) Diff(x *Symbol) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(x)
		others := make([]Expr, 0, len(m.factors)-1)
		for j, fj := range m.factors {
			if j != i {
				others = append(others, fj)
			}
		}
		if len(others) == 0 {
			terms[i] = dfi
		} else {
			terms[i] = MulOf(append([]Expr{dfi}, others...)...)
		}
	}
	return AddOf(terms...)
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Public collaborator surface (spec §6 names)
// ============================================================

// Add2, Mul2, Sub are the two-argument convenience wrappers spec.md names
// s_add, s_mul, s_sub.
func Add2(x, y Expr) Expr { return AddOf(x, y) }
func Mul2(x, y Expr) Expr { return MulOf(x, y) }
func Sub(x, y Expr) Expr  { return AddOf(x, MulOf(N(-1), y)) }

// Eq and Neq are spec.md's seq/sne: structural equality on already-simplified
// expressions.
func Eq(x, y Expr) bool  { return x.Equal(y) }
func Neq(x, y Expr) bool { return !x.Equal(y) }

// IsOne and IsNumber are spec.md's is_one/is_number predicates.
func IsOne(x Expr) bool {
	n, ok := x.(*Num)
	return ok && n.IsOne()
}

func IsNumber(x Expr) bool {
	_, ok := x.(*Num)
	return ok
}

// IsZero is spec.md's three-valued is_zero: a Num decides definitively,
// anything else is indeterminate (this kernel makes no assumptions about
// symbolic non-zeroness).
func IsZero(x Expr) Tribool {
	n, ok := x.Simplify().(*Num)
	if !ok {
		return Indeterminate
	}
	if n.IsZero() {
		return True
	}
	return False
}

// Diff is spec.md's diff(expr, symbol).
func Diff(expr Expr, x *Symbol) Expr { return expr.Diff(x).Simplify() }

// ============================================================
// Less — stable total order ("key order" / RCPBasicKeyLess)
// ============================================================

// typeRank orders expression kinds before falling back to a comparison
// within a kind (numeric value for Num, String() for every other kind),
// extending the String()-as-sort-key precedent
// already used by Mul.Simplify into a full order across kinds so it can
// serve as matrixexpr's canonical ordering primitive too.
func typeRank(e Expr) int {
	switch e.(type) {
	case *Num:
		return 0
	case *Symbol:
		return 1
	case *Mul:
		return 2
	case *Add:
		return 3
	default:
		return 4
	}
}

// Less is the stable total order spec.md §6 calls RCPBasicKeyLess.
func Less(a, b Expr) bool {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra < rb
	}
	if an, ok := a.(*Num); ok {
		bn := b.(*Num)
		return an.val.Cmp(bn.val) < 0
	}
	return a.String() < b.String()
}
