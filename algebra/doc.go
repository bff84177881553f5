// SPDX-License-Identifier: MIT

// Package algebra implements exact symbolic arithmetic over the rationals.
//
// What:
//
//   - Fraction: canonical rational numbers (big.Int backed, lowest terms,
//     positive denominator).
//   - Polynomial: dense univariate polynomials with Fraction coefficients,
//     long division, Euclidean GCD, derivative, Horner evaluation.
//   - RationalFunction: numerator/denominator pairs of Polynomials.
//   - RationalFunctionSum: sums of RationalFunctions, merged by equal
//     denominators.
//   - Root & sign analysis: Sturm sequences, Yun square-free factorization,
//     PosAbove1, the factor-wise test the dominance refinement relies on,
//     and NonNegativeAbove1, which decides f(x) ≥ 0 for every real x ≥ 1.
//
// The five value kinds form a promotion tower
//
//	Integer < Fraction < Polynomial < RationalFunction < RationalFunctionSum
//
// and the package-level Add, Sub, Mul and Equal lift the lower operand with
// CastUp before dispatching, so mixed-tier expressions are well defined.
//
// All values are immutable: every operation returns a freshly allocated
// result and never aliases an operand. Values may therefore be shared across
// goroutines freely.
//
// Errors:
//
//   - ErrTypeMismatch     coercion below a value's tier, or tag/type disagreement
//   - ErrZeroPolynomial   square-free factorization of the zero polynomial
//   - ErrZeroDenominator  a fraction or rational function with zero denominator
//   - ErrDivisionByZero   division by a zero fraction or zero polynomial
//
// Evaluating a rational function at a pole is not an error: Evaluate returns
// ok == false and the caller decides what "undefined" means.
package algebra
