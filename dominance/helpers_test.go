// SPDX-License-Identifier: MIT

package dominance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/dominance"
	"github.com/katalvlaran/ratdom/matrix"
)

// sumOf returns the polynomial with the given coefficients as a one-term sum.
func sumOf(coeffs ...int64) *algebra.RationalFunctionSum {
	return algebra.NewRationalFunctionSum(algebra.PolyToRationalFunction(algebra.PolyFromInts(coeffs...)))
}

// symbolic builds a SymbolicMatrix or fails the test.
func symbolic(t *testing.T, rows [][]*algebra.RationalFunctionSum) *dominance.SymbolicMatrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// dominant is [[λ+1, 0], [1, 1]]: row 0 outgrows row 1 from the first power.
func dominant(t *testing.T) *dominance.SymbolicMatrix {
	return symbolic(t, [][]*algebra.RationalFunctionSum{
		{sumOf(1, 1), sumOf(0)},
		{sumOf(1), sumOf(1)},
	})
}

// crossing is [[2, 3], [λ, 0]]: column 0 crosses at λ = 2, the square
// separates the rows (3λ+4 against 2λ).
func crossing(t *testing.T) *dominance.SymbolicMatrix {
	return symbolic(t, [][]*algebra.RationalFunctionSum{
		{sumOf(2), sumOf(3)},
		{sumOf(0, 1), sumOf(0)},
	})
}
