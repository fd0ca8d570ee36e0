package matrixexpr

import (
	"sort"
	"strings"

	"github.com/njchilds90/symmatrix/scalar"
)

// MatrixAdd is a canonicalized sum of two or more matrix expressions. It is
// never constructed directly; MatrixAddOf is the only entry point, and the
// private constructor below panics if handed a term list that violates the
// canonical-form invariants (original_source's MatrixAdd::is_canonical,
// carried forward per SPEC_FULL.md's "is_canonical assertions" note).
type MatrixAdd struct {
	terms []MatrixExpr
}

func (m *MatrixAdd) Terms() []MatrixExpr { return m.terms }

func (m *MatrixAdd) String() string {
	parts := make([]string, len(m.terms))
	for i, t := range m.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Equal treats MatrixAdd as a multiset of terms: addition is commutative and
// associative, so term order does not matter. Deliberately does not convert
// terms to a sorted/multiset representation before hashing or comparing —
// original_source's MatrixAdd::__eq__ comment explains why: a nested
// MatrixAdd term's own hash already depends on the stored order of *its*
// terms, so normalizing order here would not make hashing order-independent
// anyway, and it is cheaper to just do the O(n^2) pairwise membership check.
func (m *MatrixAdd) Equal(other MatrixExpr) bool {
	o, ok := other.(*MatrixAdd)
	if !ok || len(m.terms) != len(o.terms) {
		return false
	}
	for _, p := range m.terms {
		found := false
		for _, q := range o.terms {
			if p.Equal(q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *MatrixAdd) Less(other MatrixExpr) bool {
	o, ok := other.(*MatrixAdd)
	if !ok {
		return defaultLess(m, other)
	}
	n := len(m.terms)
	if len(o.terms) < n {
		n = len(o.terms)
	}
	for i := 0; i < n; i++ {
		if m.terms[i].Less(o.terms[i]) {
			return true
		}
		if o.terms[i].Less(m.terms[i]) {
			return false
		}
	}
	return len(m.terms) < len(o.terms)
}

func (m *MatrixAdd) Hash() uint64 {
	seed := hashString("MatrixAdd")
	for _, t := range m.terms {
		seed = hashCombine(seed, t.Hash())
	}
	return seed
}

func (m *MatrixAdd) Children() []MatrixExpr { return m.terms }

// isCanonicalMatrixAdd mirrors original_source's MatrixAdd::is_canonical:
// at least two terms, no ZeroMatrix or nested MatrixAdd term, and at most
// one DiagonalMatrix term and at most one ImmutableDenseMatrix term — never
// both (a diag+dense pair must already have been merged into one dense
// term by the time a MatrixAdd is constructed).
func isCanonicalMatrixAdd(terms []MatrixExpr) bool {
	if len(terms) < 2 {
		return false
	}
	numDiag, numDense := 0, 0
	for _, t := range terms {
		switch t.(type) {
		case *ZeroMatrix, *MatrixAdd:
			return false
		case *DiagonalMatrix:
			numDiag++
		case *ImmutableDenseMatrix:
			numDense++
		}
	}
	if numDiag > 1 || numDense > 1 {
		return false
	}
	if numDiag == 1 && numDense == 1 {
		return false
	}
	return true
}

func newMatrixAdd(terms []MatrixExpr) *MatrixAdd {
	if !isCanonicalMatrixAdd(terms) {
		panic("matrixexpr: MatrixAdd built from non-canonical terms")
	}
	return &MatrixAdd{terms: terms}
}

// MatrixAddOf is the canonicalizing sum constructor. It flattens nested
// sums, merges like matrix-multiplication terms by combining their scalar
// coefficients, merges DiagonalMatrix/ImmutableDenseMatrix terms entrywise,
// drops ZeroMatrix terms (unless the whole sum reduces to zero), and
// collapses a single surviving term to itself rather than wrapping it in a
// one-term MatrixAdd.
//
// Direct translation of original_source's matrix_add function; see
// DESIGN.md for the line-by-line grounding.
func MatrixAddOf(terms ...MatrixExpr) (MatrixExpr, error) {
	if len(terms) == 0 {
		return nil, ErrEmptySum
	}
	if len(terms) == 1 {
		return terms[0], nil
	}

	expanded := make([]MatrixExpr, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(*MatrixAdd); ok {
			expanded = append(expanded, inner.terms...)
		} else {
			expanded = append(expanded, t)
		}
	}

	if err := checkMatchingSizes(expanded); err != nil {
		return nil, err
	}

	var coefKeep []scalar.Expr
	var keep []MatrixExpr
	var diag *DiagonalMatrix
	var dense *ImmutableDenseMatrix
	var zero *ZeroMatrix

	for _, term := range expanded {
		switch v := term.(type) {
		case *ZeroMatrix:
			zero = v

		case *DiagonalMatrix:
			if diag == nil {
				diag = v
			} else {
				merged := make([]scalar.Expr, len(diag.diag))
				for i := range merged {
					merged[i] = scalar.AddOf(diag.diag[i], v.diag[i])
				}
				diag = NewDiagonalMatrix(merged...)
			}

		case *ImmutableDenseMatrix:
			if dense == nil {
				dense = v
			} else {
				sum := make([]scalar.Expr, len(dense.data))
				for i := range sum {
					sum[i] = scalar.AddOf(v.data[i], dense.data[i])
				}
				dense = NewImmutableDenseMatrix(dense.rows, dense.cols, sum)
			}

		default:
			// For a matrix-multiplication term, separate its scalar
			// coefficient from its matrix factors so that like products
			// (same factors, different coefficient) combine into one term.
			var coefTerm scalar.Expr
			var newTerm MatrixExpr
			if mm, ok := term.(*MatrixMul); ok {
				coefTerm = mm.scalar
				canon, err := matrixMulFactorsOf(mm.factors)
				if err != nil {
					return nil, err
				}
				newTerm = canon
			} else {
				coefTerm = scalar.One
				newTerm = term
			}
			found := false
			for i, k := range keep {
				if k.Equal(newTerm) {
					coefKeep[i] = scalar.AddOf(coefKeep[i], coefTerm)
					found = true
					break
				}
			}
			if !found {
				coefKeep = append(coefKeep, coefTerm)
				keep = append(keep, newTerm)
			}
		}
	}

	for i := range coefKeep {
		if scalar.IsOne(coefKeep[i]) {
			continue
		}
		rebuilt, err := MatrixMulOf(coefKeep[i], keep[i])
		if err != nil {
			return nil, err
		}
		keep[i] = rebuilt
	}

	// A coefficient can cancel to zero (A + (-1)*A), which MatrixMulOf above
	// turns into a ZeroMatrix term; drop it here the same way an explicit
	// ZeroMatrix operand is dropped, rather than letting it survive into a
	// non-canonical MatrixAdd.
	filtered := keep[:0]
	for _, k := range keep {
		if z, ok := k.(*ZeroMatrix); ok {
			zero = z
			continue
		}
		filtered = append(filtered, k)
	}
	keep = filtered

	if diag != nil {
		if dense != nil {
			merged := make([]scalar.Expr, len(dense.data))
			for i := 0; i < dense.rows; i++ {
				for j := 0; j < dense.cols; j++ {
					idx := i*dense.cols + j
					if i == j {
						merged[idx] = scalar.AddOf(dense.data[idx], diag.diag[i])
					} else {
						merged[idx] = dense.data[idx]
					}
				}
			}
			dense = NewImmutableDenseMatrix(dense.rows, dense.cols, merged)
		} else {
			keep = append(keep, diag)
		}
	}
	if dense != nil {
		keep = append(keep, dense)
	}

	// Kept terms must sort by canonical key order: MatrixAdd's Hash folds
	// terms in stored order, so A+B and B+A would otherwise hash differently
	// despite being the same multiset of terms.
	sort.Slice(keep, func(i, j int) bool { return keep[i].Less(keep[j]) })

	if len(keep) == 1 {
		return keep[0], nil
	}
	if len(keep) == 0 && zero != nil {
		return zero, nil
	}
	return newMatrixAdd(keep), nil
}
