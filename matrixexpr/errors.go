// Package matrixexpr implements a symbolic matrix-expression algebra:
// immutable expression nodes for matrix-shaped values (symbols, identity,
// zero, diagonal, and dense literal matrices) plus canonicalizing
// constructors that normalize sums, products, traces, and derivatives of
// those nodes into a unique simplified form.
package matrixexpr

import "errors"

// Sentinel errors returned by the canonicalizing constructors when a caller
// supplies invalid operands: an empty sum, provably incompatible
// dimensions, a provably non-square trace argument, or a derivative
// variable that is not a scalar symbol. Every
// message is prefixed with "matrixexpr: " for consistent grepping; wrap
// with fmt.Errorf("...: %w", err) at call sites that need to add context,
// and check with errors.Is rather than comparing error strings.
var (
	// ErrEmptySum is returned by MatrixAddOf when called with zero terms.
	ErrEmptySum = errors.New("matrixexpr: empty sum")

	// ErrDimensionMismatch is returned when two operands have row/column
	// counts that are definitely unequal (not merely unknown).
	ErrDimensionMismatch = errors.New("matrixexpr: dimension mismatch")

	// ErrNonSquare is wrapped in the error TraceOf panics with when its
	// operand (a ZeroMatrix or ImmutableDenseMatrix) is provably not square;
	// TraceOf itself has no error return.
	ErrNonSquare = errors.New("matrixexpr: matrix is not square")

	// ErrInvalidVariable is returned by MatrixDerivativeOf when a
	// differentiation variable is not a scalar symbol.
	ErrInvalidVariable = errors.New("matrixexpr: derivative variable is not a scalar symbol")
)
