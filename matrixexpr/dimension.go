package matrixexpr

import (
	"fmt"

	"github.com/njchilds90/symmatrix/scalar"
)

// checkMatchingSizes verifies that every pair of terms in exprs has the same
// shape, raising ErrDimensionMismatch on a *provable* mismatch. A pair whose
// row or column counts cannot be compared (scalar.IsZero returns
// Indeterminate on their difference) is accepted rather than rejected —
// symbolic dimensions are given the benefit of the doubt, matching
// original_source/symengine/matrices/matrix_add.cpp's check_matching_sizes,
// which only throws on is_false, never on "don't know".
func checkMatchingSizes(exprs []MatrixExpr) error {
	for i := 0; i < len(exprs)-1; i++ {
		firstRows, firstCols := Size(exprs[i])
		for j := 1; j < len(exprs); j++ {
			secondRows, secondCols := Size(exprs[j])
			if scalar.IsZero(scalar.Sub(firstRows, secondRows)) == scalar.False {
				return fmt.Errorf("rows %s vs %s: %w", firstRows.String(), secondRows.String(), ErrDimensionMismatch)
			}
			if scalar.IsZero(scalar.Sub(firstCols, secondCols)) == scalar.False {
				return fmt.Errorf("cols %s vs %s: %w", firstCols.String(), secondCols.String(), ErrDimensionMismatch)
			}
		}
	}
	return nil
}

// checkChainSizes verifies that adjacent factors in a matrix product chain
// each other's rows/cols, i.e. cols(factors[i]) matches rows(factors[i+1]).
// Used by MatrixMulOf, which (unlike MatrixAddOf's pairwise all-to-all
// check) only needs adjacent compatibility since matrix multiplication is
// not commutative.
func checkChainSizes(factors []MatrixExpr) error {
	for i := 0; i < len(factors)-1; i++ {
		_, cols := Size(factors[i])
		rows, _ := Size(factors[i+1])
		if scalar.IsZero(scalar.Sub(cols, rows)) == scalar.False {
			return fmt.Errorf("factor %d cols %s vs factor %d rows %s: %w", i, cols.String(), i+1, rows.String(), ErrDimensionMismatch)
		}
	}
	return nil
}
