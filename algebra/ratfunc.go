// SPDX-License-Identifier: MIT
// Package algebra: rational functions f/g over Q.
//
// Canonical form (applied by every constructor):
//   - numerator and denominator are trimmed polynomials;
//   - a zero numerator forces the denominator to 1.
//
// Common factors are NOT cancelled; equality is decided by cross
// multiplication instead (f1·g2 == f2·g1).

package algebra

import "fmt"

// RationalFunction is an immutable quotient num/den of polynomials.
type RationalFunction struct {
	num *Polynomial
	den *Polynomial
}

// simplifiedRF builds the canonical form of num/den (den != 0).
func simplifiedRF(num, den *Polynomial) *RationalFunction {
	if num.IsZero() {
		return &RationalFunction{num: ZeroPoly(), den: OnePoly()}
	}

	return &RationalFunction{num: num, den: den}
}

// NewRationalFunction returns num/den in canonical form.
// Returns ErrZeroDenominator if den is the zero polynomial and
// ErrTypeMismatch if either argument is nil.
func NewRationalFunction(num, den *Polynomial) (*RationalFunction, error) {
	if num == nil || den == nil {
		return nil, algebraErrorf(opNewRF, ErrTypeMismatch)
	}
	if den.IsZero() {
		return nil, algebraErrorf(opNewRF, ErrZeroDenominator)
	}

	return simplifiedRF(num, den), nil
}

// MustRationalFunction is NewRationalFunction that panics on error.
func MustRationalFunction(num, den *Polynomial) *RationalFunction {
	rf, err := NewRationalFunction(num, den)
	if err != nil {
		panic(err)
	}

	return rf
}

// PolyToRationalFunction lifts p to p/1.
func PolyToRationalFunction(p *Polynomial) *RationalFunction {
	return simplifiedRF(p, OnePoly())
}

// ZeroRationalFunction returns a fresh 0/1.
func ZeroRationalFunction() *RationalFunction {
	return simplifiedRF(ZeroPoly(), OnePoly())
}

// OneRationalFunction returns a fresh 1/1.
func OneRationalFunction() *RationalFunction {
	return simplifiedRF(OnePoly(), OnePoly())
}

// Tier reports TierRationalFunction.
func (r *RationalFunction) Tier() Tier { return TierRationalFunction }

// Num returns the numerator.
func (r *RationalFunction) Num() *Polynomial { return r.num }

// Den returns the denominator.
func (r *RationalFunction) Den() *Polynomial { return r.den }

// IsZero reports whether the numerator is the zero polynomial.
func (r *RationalFunction) IsZero() bool { return r.num.IsZero() }

// Add returns (f1·g2 + f2·g1) / (g1·g2) with no factor cancellation.
func (r *RationalFunction) Add(o *RationalFunction) *RationalFunction {
	num := r.num.Mul(o.den).Add(o.num.Mul(r.den))

	return simplifiedRF(num, r.den.Mul(o.den))
}

// Sub returns r − o.
func (r *RationalFunction) Sub(o *RationalFunction) *RationalFunction {
	return r.Add(o.Neg())
}

// Neg returns −r.
func (r *RationalFunction) Neg() *RationalFunction {
	return simplifiedRF(r.num.Neg(), r.den)
}

// Mul multiplies numerators and denominators component-wise.
func (r *RationalFunction) Mul(o *RationalFunction) *RationalFunction {
	return simplifiedRF(r.num.Mul(o.num), r.den.Mul(o.den))
}

// MulPoly folds p into the numerator only.
func (r *RationalFunction) MulPoly(p *Polynomial) *RationalFunction {
	return simplifiedRF(r.num.Mul(p), r.den)
}

// Evaluate returns r(x). ok is false when the denominator vanishes at x,
// which is the explicit "undefined" result, not an error.
func (r *RationalFunction) Evaluate(x Fraction) (Fraction, bool) {
	d := r.den.Evaluate(x)
	if d.IsZero() {
		return Fraction{}, false
	}

	return r.num.Evaluate(x).mustQuo(d), true
}

// Equal reports f1·g2 == f2·g1.
func (r *RationalFunction) Equal(o *RationalFunction) bool {
	return r.num.Mul(o.den).Equal(o.num.Mul(r.den))
}

// String renders "[num]/[den]", or just the numerator over 1.
func (r *RationalFunction) String() string {
	if r.den.Equal(OnePoly()) {
		return r.num.String()
	}

	return fmt.Sprintf("[%s]/[%s]", r.num, r.den)
}
