// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/algebra"
)

// poly is a terse constructor for integer-coefficient polynomials.
func poly(c ...int64) *algebra.Polynomial { return algebra.PolyFromInts(c...) }

func TestPolynomial_Monomial(t *testing.T) {
	assert.True(t, algebra.Monomial(0).Equal(algebra.OnePoly()))
	assert.True(t, algebra.Monomial(1).Equal(poly(0, 1)))
	assert.True(t, algebra.Monomial(3).Equal(poly(0, 0, 0, 1)))
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			assert.True(t, algebra.Monomial(a).Mul(algebra.Monomial(b)).Equal(algebra.Monomial(a+b)))
		}
	}
}

func TestPolynomial_Trim(t *testing.T) {
	assert.Equal(t, 1, poly(1, 2, 0, 0).Degree())
	z := poly(0, 0, 0)
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Degree())
	assert.True(t, poly().IsZero())
	assert.True(t, poly(1, 1).Sub(poly(0, 1)).Equal(algebra.OnePoly()))
	assert.True(t, poly(0, 0, 1).Sub(poly(0, 0, 1)).IsZero())
}

func TestNewPolynomial(t *testing.T) {
	p, err := algebra.NewPolynomial(1, int64(2), algebra.Integer(3), algebra.MustFraction(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Degree())
	assert.True(t, p.Coeff(3).Equal(algebra.MustFraction(1, 2)))
	assert.True(t, p.Coeff(10).IsZero())

	_, err = algebra.NewPolynomial(1, "x")
	assert.ErrorIs(t, err, algebra.ErrTypeMismatch)
	_, err = algebra.NewPolynomial(1.5)
	assert.ErrorIs(t, err, algebra.ErrTypeMismatch)
}

func TestPolynomial_AddMul(t *testing.T) {
	assert.True(t, algebra.Monomial(2).Add(algebra.Monomial(1)).Equal(poly(0, 1, 1)))
	assert.True(t, poly(1, 1, 1).Mul(poly(1, 1, 1)).Equal(poly(1, 2, 3, 2, 1)))

	half := algebra.MustFraction(7, 2)
	got := algebra.Monomial(2).Add(algebra.Monomial(4)).Scale(half)
	want := algebra.PolyFromFractions(algebra.Fraction{}, algebra.Fraction{}, half, algebra.Fraction{}, half)
	assert.True(t, got.Equal(want))

	x := algebra.Monomial(1)
	assert.True(t, x.Mul(x).Equal(poly(0, 0, 1)))
	assert.True(t, x.Equal(poly(0, 1)), "operands are never mutated")
	assert.True(t, poly(3, 4).Shift(2).Equal(poly(0, 0, 3, 4)))
	assert.True(t, poly(1, -2).Neg().Equal(poly(-1, 2)))
}

func TestPolynomial_DivMod(t *testing.T) {
	cases := []struct {
		name string
		a, b *algebra.Polynomial
	}{
		{"cubic by quadratic", poly(5, -2, 0, 1), poly(1, 0, 2)},
		{"exact", poly(2, -3, 1), poly(-1, 1)},
		{"lower degree dividend", poly(1, 1), poly(0, 0, 1)},
		{"zero dividend", poly(0), poly(3, 1)},
		{"constant divisor", poly(4, 6, 8), poly(2)},
		{"fractional", algebra.PolyFromFractions(algebra.MustFraction(1, 3), algebra.MustFraction(-2, 5), algebra.FractionFromInt(1)), poly(7, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, r, err := tc.a.DivMod(tc.b)
			require.NoError(t, err)
			assert.True(t, q.Mul(tc.b).Add(r).Equal(tc.a), "a == q*b + r")
			assert.True(t, r.IsZero() || r.Degree() < tc.b.Degree(), "deg r < deg b")
		})
	}

	q, err := poly(2, -3, 1).Quo(poly(-1, 1))
	require.NoError(t, err)
	assert.True(t, q.Equal(poly(-2, 1)))
	r, err := poly(2, -3, 1).Rem(poly(0, 1))
	require.NoError(t, err)
	assert.True(t, r.Equal(poly(2)))

	_, _, err = poly(1, 1).DivMod(algebra.ZeroPoly())
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestPolynomial_DerivativeEvaluate(t *testing.T) {
	assert.True(t, poly(5, -2, 0, 1).Derivative().Equal(poly(-2, 0, 3)))
	assert.True(t, poly(7).Derivative().IsZero())

	v := poly(1, 2, 3).Evaluate(algebra.MustFraction(1, 2))
	assert.Equal(t, "11/4", v.String())
	assert.True(t, poly(0).Evaluate(algebra.FractionFromInt(9)).IsZero())
}

func TestPolynomial_GCD(t *testing.T) {
	a := poly(2, -3, 1) // (x-1)(x-2)
	b := poly(-3, 2, 1) // (x-1)(x+3)
	assert.True(t, a.GCD(b).Equal(poly(-1, 1)))
	assert.True(t, poly(-2, 2).GCD(poly(-3, 3)).Equal(poly(-1, 1)))
	assert.True(t, poly(1, 1).GCD(poly(1, -1)).Equal(algebra.OnePoly()))
	assert.True(t, poly(4, 2).GCD(algebra.ZeroPoly()).Equal(poly(2, 1)))
	assert.True(t, algebra.ZeroPoly().GCD(algebra.ZeroPoly()).IsZero())
}

func TestPolynomial_String(t *testing.T) {
	assert.Equal(t, "1+2λ-λ²", poly(1, 2, -1).String())
	assert.Equal(t, "0", poly(0).String())
	assert.Equal(t, "λ¹⁰", algebra.Monomial(10).String())
	assert.Equal(t, "(1/2)", algebra.PolyFromFractions(algebra.MustFraction(1, 2)).String())
}
