// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a value's runtime tier does not match an
	// expected tier, or when a coercion targets a tier below the value's own.
	ErrTypeMismatch = errors.New("algebra: type mismatch")

	// ErrZeroPolynomial is returned when square-free factorization is invoked
	// on the zero polynomial.
	ErrZeroPolynomial = errors.New("algebra: zero polynomial")

	// ErrZeroDenominator signals a fraction or rational function constructed
	// with a zero denominator.
	ErrZeroDenominator = errors.New("algebra: zero denominator")

	// ErrDivisionByZero signals division by a zero fraction or polynomial.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrParse signals a malformed textual fraction.
	ErrParse = errors.New("algebra: cannot parse fraction")
)

// Operation tags used when wrapping sentinels.
const (
	opCastUp   = "CastUp"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opEqual    = "Equal"
	opQuo      = "Quo"
	opDivMod   = "DivMod"
	opYun      = "YunFactorization"
	opNewPoly  = "NewPolynomial"
	opNewRF    = "NewRationalFunction"
	opNewFrac  = "NewFraction"
	opParse    = "ParseFraction"
	opEvaluate = "Evaluate"
)

// algebraErrorf wraps err with an operation tag. Call only with err != nil.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
