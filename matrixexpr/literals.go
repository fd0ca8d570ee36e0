package matrixexpr

import (
	"fmt"
	"strings"

	"github.com/njchilds90/symmatrix/scalar"
)

// ============================================================
// MatrixSymbol — a named, opaque matrix variable
// ============================================================

// MatrixSymbol is a named matrix-valued leaf, the matrix analogue of
// scalar.Symbol and grounded on the named leaf of
// original_source/symengine/matrices/matrix_symbol.h, with its row and
// column counts stored alongside the name so that Size can report them.
type MatrixSymbol struct {
	name       string
	rows, cols scalar.Expr
}

// NewMatrixSymbol constructs a named matrix symbol of the given shape. Rows
// and cols are scalar expressions (not plain ints) so that symbolic
// dimensions — an n-by-n matrix where n is itself a symbol — are
// representable, matching spec.md's data model.
func NewMatrixSymbol(name string, rows, cols scalar.Expr) *MatrixSymbol {
	return &MatrixSymbol{name: name, rows: rows, cols: cols}
}

func (m *MatrixSymbol) Name() string { return m.name }

func (m *MatrixSymbol) String() string { return m.name }

func (m *MatrixSymbol) Equal(other MatrixExpr) bool {
	o, ok := other.(*MatrixSymbol)
	return ok && m.name == o.name && m.rows.Equal(o.rows) && m.cols.Equal(o.cols)
}

func (m *MatrixSymbol) Less(other MatrixExpr) bool { return defaultLess(m, other) }

func (m *MatrixSymbol) Hash() uint64 { return hashString("MatrixSymbol:" + m.name) }

func (m *MatrixSymbol) Children() []MatrixExpr { return nil }

// ============================================================
// IdentityMatrix — the n-by-n identity
// ============================================================

// IdentityMatrix is the square identity of a given (possibly symbolic)
// size. Two identities are equal exactly when their sizes are.
type IdentityMatrix struct {
	size scalar.Expr
}

func NewIdentityMatrix(size scalar.Expr) *IdentityMatrix {
	return &IdentityMatrix{size: size}
}

func (m *IdentityMatrix) Size() scalar.Expr { return m.size }

func (m *IdentityMatrix) String() string { return fmt.Sprintf("I(%s)", m.size.String()) }

func (m *IdentityMatrix) Equal(other MatrixExpr) bool {
	o, ok := other.(*IdentityMatrix)
	return ok && m.size.Equal(o.size)
}

func (m *IdentityMatrix) Less(other MatrixExpr) bool { return defaultLess(m, other) }

func (m *IdentityMatrix) Hash() uint64 {
	return hashCombine(hashString("IdentityMatrix"), hashString(m.size.String()))
}

func (m *IdentityMatrix) Children() []MatrixExpr { return nil }

// ============================================================
// ZeroMatrix — the rows-by-cols zero matrix
// ============================================================

// ZeroMatrix is the additive identity of a given (possibly symbolic)
// shape.
type ZeroMatrix struct {
	rows, cols scalar.Expr
}

func NewZeroMatrix(rows, cols scalar.Expr) *ZeroMatrix {
	return &ZeroMatrix{rows: rows, cols: cols}
}

func (m *ZeroMatrix) String() string {
	return fmt.Sprintf("0(%s,%s)", m.rows.String(), m.cols.String())
}

func (m *ZeroMatrix) Equal(other MatrixExpr) bool {
	o, ok := other.(*ZeroMatrix)
	return ok && m.rows.Equal(o.rows) && m.cols.Equal(o.cols)
}

func (m *ZeroMatrix) Less(other MatrixExpr) bool { return defaultLess(m, other) }

func (m *ZeroMatrix) Hash() uint64 {
	seed := hashString("ZeroMatrix")
	seed = hashCombine(seed, hashString(m.rows.String()))
	seed = hashCombine(seed, hashString(m.cols.String()))
	return seed
}

func (m *ZeroMatrix) Children() []MatrixExpr { return nil }

// isSquareTribool reports, three-valued, whether rows and cols are
// provably equal — mirroring trace.cpp's ZeroMatrix branch, which asks
// is_square() rather than assuming a zero matrix is square.
func isSquareTribool(rows, cols scalar.Expr) scalar.Tribool {
	return scalar.IsZero(scalar.Sub(rows, cols))
}

// ============================================================
// DiagonalMatrix — a diagonal matrix given by its diagonal entries
// ============================================================

// DiagonalMatrix is a square matrix specified by its diagonal; off-diagonal
// entries are implicitly zero. Its size is the number of diagonal entries.
type DiagonalMatrix struct {
	diag []scalar.Expr
}

// NewDiagonalMatrix builds a diagonal matrix from its diagonal entries. It
// panics on an empty diagonal — a 0-by-0 matrix is not representable by
// this node, mirroring gosymbol.go's MatrixFromSlice panicking on a
// malformed cell count rather than silently accepting it.
func NewDiagonalMatrix(diag ...scalar.Expr) *DiagonalMatrix {
	if len(diag) == 0 {
		panic("matrixexpr: NewDiagonalMatrix requires at least one diagonal entry")
	}
	cp := make([]scalar.Expr, len(diag))
	copy(cp, diag)
	return &DiagonalMatrix{diag: cp}
}

func (m *DiagonalMatrix) Diagonal() []scalar.Expr {
	cp := make([]scalar.Expr, len(m.diag))
	copy(cp, m.diag)
	return cp
}

func (m *DiagonalMatrix) String() string {
	parts := make([]string, len(m.diag))
	for i, d := range m.diag {
		parts[i] = d.String()
	}
	return "diag(" + strings.Join(parts, ",") + ")"
}

func (m *DiagonalMatrix) Equal(other MatrixExpr) bool {
	o, ok := other.(*DiagonalMatrix)
	if !ok || len(m.diag) != len(o.diag) {
		return false
	}
	for i := range m.diag {
		if !m.diag[i].Equal(o.diag[i]) {
			return false
		}
	}
	return true
}

func (m *DiagonalMatrix) Less(other MatrixExpr) bool { return defaultLess(m, other) }

func (m *DiagonalMatrix) Hash() uint64 {
	seed := hashString("DiagonalMatrix")
	for _, d := range m.diag {
		seed = hashCombine(seed, hashString(d.String()))
	}
	return seed
}

func (m *DiagonalMatrix) Children() []MatrixExpr { return nil }

// ============================================================
// ImmutableDenseMatrix — a fully-specified dense literal matrix
// ============================================================

// ImmutableDenseMatrix holds a fixed rows-by-cols grid of scalar
// expressions in row-major order, mirroring gosymbol.go's Matrix storage
// convention (NewMatrix/MatrixFromSlice) but immutable and symbolic.
type ImmutableDenseMatrix struct {
	rows, cols int
	data       []scalar.Expr // row-major, length rows*cols
}

// NewImmutableDenseMatrix builds a dense literal matrix from row-major
// cell data. It panics if the cell count does not match rows*cols, the
// same contract as gosymbol.go's MatrixFromSlice.
func NewImmutableDenseMatrix(rows, cols int, data []scalar.Expr) *ImmutableDenseMatrix {
	if rows <= 0 || cols <= 0 {
		panic("matrixexpr: ImmutableDenseMatrix requires positive dimensions")
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrixexpr: ImmutableDenseMatrix expects %d cells, got %d", rows*cols, len(data)))
	}
	cp := make([]scalar.Expr, len(data))
	copy(cp, data)
	return &ImmutableDenseMatrix{rows: rows, cols: cols, data: cp}
}

// checkBounds panics on an out-of-range cell index, the same bounds-panic
// style as gosymbol.go's Matrix.checkBounds — this node is an internal
// literal, not a user-facing indexer, so a panic (not a returned error) is
// the right contract here.
func (m *ImmutableDenseMatrix) checkBounds(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrixexpr: cell (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// At returns the (i,j) cell, 0-indexed.
func (m *ImmutableDenseMatrix) At(i, j int) scalar.Expr {
	m.checkBounds(i, j)
	return m.data[i*m.cols+j]
}

func (m *ImmutableDenseMatrix) Rows() int { return m.rows }
func (m *ImmutableDenseMatrix) Cols() int { return m.cols }

func (m *ImmutableDenseMatrix) String() string {
	rows := make([]string, m.rows)
	for i := 0; i < m.rows; i++ {
		cells := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			cells[j] = m.At(i, j).String()
		}
		rows[i] = "[" + strings.Join(cells, ",") + "]"
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func (m *ImmutableDenseMatrix) Equal(other MatrixExpr) bool {
	o, ok := other.(*ImmutableDenseMatrix)
	if !ok || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

func (m *ImmutableDenseMatrix) Less(other MatrixExpr) bool { return defaultLess(m, other) }

func (m *ImmutableDenseMatrix) Hash() uint64 {
	seed := hashString("ImmutableDenseMatrix")
	for _, d := range m.data {
		seed = hashCombine(seed, hashString(d.String()))
	}
	return seed
}

func (m *ImmutableDenseMatrix) Children() []MatrixExpr { return nil }

// traceOfDense sums the diagonal of a dense literal matrix, returning
// ErrNonSquare if it is not square. Used by trace.go's visitor.
func traceOfDense(m *ImmutableDenseMatrix) (scalar.Expr, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("trace of %dx%d matrix: %w", m.rows, m.cols, ErrNonSquare)
	}
	terms := make([]scalar.Expr, m.rows)
	for i := 0; i < m.rows; i++ {
		terms[i] = m.At(i, i)
	}
	return scalar.AddOf(terms...), nil
}
