package matrixexpr

import (
	"hash/fnv"

	"github.com/njchilds90/symmatrix/scalar"
)

// MatrixExpr is any node in the matrix-expression tree. All node types are
// immutable once constructed; the canonicalizing constructors (MatrixAddOf,
// MatrixMulOf, TraceOf, MatrixDerivativeOf) are the only way to build a
// compound node, so equal inputs always produce structurally identical
// output.
type MatrixExpr interface {
	String() string
	Equal(other MatrixExpr) bool
	Less(other MatrixExpr) bool
	Hash() uint64
	Children() []MatrixExpr
}

// typeTag gives every node kind a stable rank for Less and hashing, the
// same role gosymbol.go's String()-as-sort-key plays for scalar.Mul, but
// made explicit as a total order across kinds rather than an incidental
// byproduct of string comparison.
type typeTag int

const (
	tagMatrixSymbol typeTag = iota
	tagIdentityMatrix
	tagZeroMatrix
	tagDiagonalMatrix
	tagImmutableDenseMatrix
	tagMatrixAdd
	tagMatrixMul
	tagTrace
	tagMatrixDerivative
)

func tagOf(e MatrixExpr) typeTag {
	switch e.(type) {
	case *MatrixSymbol:
		return tagMatrixSymbol
	case *IdentityMatrix:
		return tagIdentityMatrix
	case *ZeroMatrix:
		return tagZeroMatrix
	case *DiagonalMatrix:
		return tagDiagonalMatrix
	case *ImmutableDenseMatrix:
		return tagImmutableDenseMatrix
	case *MatrixAdd:
		return tagMatrixAdd
	case *MatrixMul:
		return tagMatrixMul
	case *MatrixDerivative:
		return tagMatrixDerivative
	default:
		panic("matrixexpr: unknown node kind")
	}
}

// defaultLess orders first by type tag, then falls back to String(), the
// same two-level scheme scalar.Less uses. Node types that need a more
// structural comparison (MatrixAdd/MatrixMul comparing term-by-term)
// implement their own Less for same-kind operands and call this helper only
// when the other operand is of a different kind.
func defaultLess(a, b MatrixExpr) bool {
	ta, tb := tagOf(a), tagOf(b)
	if ta != tb {
		return ta < tb
	}
	return a.String() < b.String()
}

// hashCombine folds a child node's hash into a running seed, the Go
// translation of the original's hash_combine<Basic>(seed, *a) idiom
// (original_source/symengine/matrices/matrix_add.cpp), keeping
// boost::hash_combine's 0x9e3779b9 mixing formula; leaf strings are hashed
// with the stdlib FNV-1a hash (hashString).
func hashCombine(seed uint64, h uint64) uint64 {
	seed ^= h + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	return seed
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Size dispatches on node kind to report an expression's row and column
// counts as scalar expressions (spec's size(expr)). It is a free function
// rather than a MatrixExpr method so the dimension checker and the
// constructors can call it uniformly without widening the interface every node
// must satisfy.
func Size(e MatrixExpr) (rows, cols scalar.Expr) {
	switch v := e.(type) {
	case *MatrixSymbol:
		return v.rows, v.cols
	case *IdentityMatrix:
		return v.size, v.size
	case *ZeroMatrix:
		return v.rows, v.cols
	case *DiagonalMatrix:
		n := scalar.N(int64(len(v.diag)))
		return n, n
	case *ImmutableDenseMatrix:
		return scalar.N(int64(v.rows)), scalar.N(int64(v.cols))
	case *MatrixAdd:
		return Size(v.terms[0])
	case *MatrixMul:
		r, _ := Size(v.factors[0])
		_, c := Size(v.factors[len(v.factors)-1])
		return r, c
	case *MatrixDerivative:
		return Size(v.arg)
	default:
		panic("matrixexpr: Size called on non-matrix expression")
	}
}
