// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic rings and fixtures for the kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/matrix"
)

// intRing is the ordinary integer ring.
var intRing = matrix.Ring[int]{
	Zero: func() int { return 0 },
	One:  func() int { return 1 },
	Add:  func(a, b int) int { return a + b },
	Mul:  func(a, b int) int { return a * b },
}

// boolRing is the boolean semiring (OR, AND), useful for reachability.
var boolRing = matrix.Ring[bool]{
	Zero: func() bool { return false },
	One:  func() bool { return true },
	Add:  func(a, b bool) bool { return a || b },
	Mul:  func(a, b bool) bool { return a && b },
}

// MustFromRows builds a Dense or fails the test.
func MustFromRows[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads a cell or fails the test.
func MustAt[T any](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// sequential fills an r×c int matrix with 1, 2, 3, ... row by row.
func sequential(t *testing.T, r, c int) *matrix.Dense[int] {
	t.Helper()
	next := 0
	m, err := matrix.NewDense(r, c, func() int { next++; return next })
	require.NoError(t, err)

	return m
}
