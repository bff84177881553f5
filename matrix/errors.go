// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with matrixErrorf(op, err) at the facade; callers still use errors.Is.

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0,
	// or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrIncompleteRing signals a Ring missing Zero, Add or Mul.
	ErrIncompleteRing = errors.New("matrix: ring is missing an operation")

	// ErrNoIdentity signals an operation needing Ring.One when it is nil.
	ErrNoIdentity = errors.New("matrix: ring has no multiplicative identity")

	// ErrBadExponent signals a negative exponent for Pow.
	ErrBadExponent = errors.New("matrix: exponent must be >= 0")
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "NewDense"
	opFromRows = "FromRows"
	opAt       = "At"
	opSet      = "Set"
	opMul      = "Mul"
	opPow      = "Pow"
	opIdentity = "Identity"
	opMap      = "Map"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
