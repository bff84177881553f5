// SPDX-License-Identifier: MIT
// Package algebra: dense univariate polynomials over the rationals.
//
// Representation:
//   - coefficients c[0..n], index == degree, c[0] is the constant term;
//   - the slice is never empty and c[n] != 0, except that the zero
//     polynomial is exactly [0].
//
// Polynomials are immutable after construction, so the Sturm sequence is
// memoized per instance without any invalidation logic.

package algebra

import (
	"fmt"
	"strings"
	"sync"
)

// Polynomial is an element of Q[x].
type Polynomial struct {
	c []Fraction

	sturmOnce sync.Once
	sturm     []*Polynomial
}

// newPoly takes ownership of c and trims trailing zeros.
func newPoly(c []Fraction) *Polynomial {
	n := len(c)
	for n > 1 && c[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return &Polynomial{c: []Fraction{{}}}
	}

	return &Polynomial{c: c[:n]}
}

// NewPolynomial builds a polynomial from coefficients in ascending degree.
// Each coefficient must be an int, int64, Integer or Fraction; integers are
// lifted to Fractions. An empty list yields the zero polynomial.
// Returns ErrTypeMismatch for any other coefficient type.
func NewPolynomial(coeffs ...any) (*Polynomial, error) {
	c := make([]Fraction, len(coeffs))
	for i, x := range coeffs {
		switch v := x.(type) {
		case Fraction:
			c[i] = v
		case Integer:
			c[i] = FractionFromInt(int64(v))
		case int:
			c[i] = FractionFromInt(int64(v))
		case int64:
			c[i] = FractionFromInt(v)
		default:
			return nil, algebraErrorf(opNewPoly,
				fmt.Errorf("coefficient %d of type %T: %w", i, x, ErrTypeMismatch))
		}
	}

	return newPoly(c), nil
}

// PolyFromInts builds a polynomial from integer coefficients.
func PolyFromInts(coeffs ...int64) *Polynomial {
	c := make([]Fraction, len(coeffs))
	for i, v := range coeffs {
		c[i] = FractionFromInt(v)
	}

	return newPoly(c)
}

// PolyFromFractions builds a polynomial from Fraction coefficients.
func PolyFromFractions(coeffs ...Fraction) *Polynomial {
	c := make([]Fraction, len(coeffs))
	copy(c, coeffs)

	return newPoly(c)
}

// ZeroPoly returns a fresh zero polynomial [0].
func ZeroPoly() *Polynomial { return PolyFromInts(0) }

// OnePoly returns a fresh constant polynomial [1].
func OnePoly() *Polynomial { return PolyFromInts(1) }

// Monomial returns x^n. Negative n is treated as 0.
func Monomial(n int) *Polynomial {
	if n < 0 {
		n = 0
	}
	c := make([]Fraction, n+1)
	c[n] = FractionFromInt(1)

	return newPoly(c)
}

// Tier reports TierPolynomial.
func (f *Polynomial) Tier() Tier { return TierPolynomial }

// Degree returns len(coefficients)-1; the zero polynomial has degree 0.
func (f *Polynomial) Degree() int { return len(f.c) - 1 }

// Coeff returns the coefficient of x^i (zero beyond the degree).
func (f *Polynomial) Coeff(i int) Fraction {
	if i < 0 || i >= len(f.c) {
		return Fraction{}
	}

	return f.c[i]
}

// Coeffs returns a copy of the coefficient slice.
func (f *Polynomial) Coeffs() []Fraction {
	out := make([]Fraction, len(f.c))
	copy(out, f.c)

	return out
}

// Lead returns the leading coefficient.
func (f *Polynomial) Lead() Fraction { return f.c[len(f.c)-1] }

// IsZero reports whether f is the zero polynomial.
func (f *Polynomial) IsZero() bool { return len(f.c) == 1 && f.c[0].IsZero() }

// IsConstant reports whether f has degree 0.
func (f *Polynomial) IsConstant() bool { return len(f.c) == 1 }

// Add returns f + g, padding the shorter operand with zeros.
func (f *Polynomial) Add(g *Polynomial) *Polynomial {
	n := max(len(f.c), len(g.c))
	c := make([]Fraction, n)
	for i := range c {
		c[i] = f.Coeff(i).Add(g.Coeff(i))
	}

	return newPoly(c)
}

// Sub returns f - g.
func (f *Polynomial) Sub(g *Polynomial) *Polynomial {
	n := max(len(f.c), len(g.c))
	c := make([]Fraction, n)
	for i := range c {
		c[i] = f.Coeff(i).Sub(g.Coeff(i))
	}

	return newPoly(c)
}

// Neg returns -f.
func (f *Polynomial) Neg() *Polynomial {
	return f.Scale(FractionFromInt(-1))
}

// Scale returns s·f.
func (f *Polynomial) Scale(s Fraction) *Polynomial {
	c := make([]Fraction, len(f.c))
	for i, a := range f.c {
		c[i] = a.Mul(s)
	}

	return newPoly(c)
}

// Shift returns f·x^n for n ≥ 0.
func (f *Polynomial) Shift(n int) *Polynomial {
	if n <= 0 || f.IsZero() {
		return PolyFromFractions(f.c...)
	}
	c := make([]Fraction, n+len(f.c))
	copy(c[n:], f.c)

	return newPoly(c)
}

// Mul returns f·g by O(n·m) convolution.
func (f *Polynomial) Mul(g *Polynomial) *Polynomial {
	c := make([]Fraction, len(f.c)+len(g.c)-1)
	for i, a := range f.c {
		if a.IsZero() {
			continue
		}
		for j, b := range g.c {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}

	return newPoly(c)
}

// DivMod performs polynomial long division and returns (q, r) with
// f == q·g + r and deg(r) < deg(g) (or r == 0).
// Returns ErrDivisionByZero if g is the zero polynomial.
func (f *Polynomial) DivMod(g *Polynomial) (*Polynomial, *Polynomial, error) {
	if g.IsZero() {
		return nil, nil, algebraErrorf(opDivMod, ErrDivisionByZero)
	}
	q, r := f.divmod(g)

	return q, r, nil
}

// divmod assumes g != 0.
// While deg(a) ≥ deg(b) and a != 0, subtract (lead(a)/lead(b))·x^(deg a − deg b)·b.
func (f *Polynomial) divmod(g *Polynomial) (*Polynomial, *Polynomial) {
	a := f
	qc := make([]Fraction, max(len(f.c)-len(g.c)+1, 1))
	lb := g.Lead()
	for len(a.c) >= len(g.c) && !a.IsZero() {
		shift := len(a.c) - len(g.c)
		k := a.Lead().mustQuo(lb)
		qc[shift] = qc[shift].Add(k)
		a = a.Sub(g.Scale(k).Shift(shift))
	}

	return newPoly(qc), a
}

// Quo returns the quotient of f by g.
func (f *Polynomial) Quo(g *Polynomial) (*Polynomial, error) {
	q, _, err := f.DivMod(g)

	return q, err
}

// Rem returns the remainder of f by g.
func (f *Polynomial) Rem(g *Polynomial) (*Polynomial, error) {
	_, r, err := f.DivMod(g)

	return r, err
}

// Derivative returns f'.
func (f *Polynomial) Derivative() *Polynomial {
	if len(f.c) == 1 {
		return ZeroPoly()
	}
	c := make([]Fraction, len(f.c)-1)
	for i := 1; i < len(f.c); i++ {
		c[i-1] = f.c[i].Mul(FractionFromInt(int64(i)))
	}

	return newPoly(c)
}

// Evaluate returns f(x) by Horner's method from the leading coefficient down.
func (f *Polynomial) Evaluate(x Fraction) Fraction {
	var acc Fraction
	for i := len(f.c) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(f.c[i])
	}

	return acc
}

// Monic returns f scaled so its leading coefficient is 1.
// The zero polynomial is returned unchanged.
func (f *Polynomial) Monic() *Polynomial {
	if f.IsZero() {
		return ZeroPoly()
	}

	return f.Scale(FractionFromInt(1).mustQuo(f.Lead()))
}

// GCD returns the monic greatest common divisor of f and g by the iterative
// Euclidean algorithm: while b != 0 { a, b = b, a mod b }.
// GCD(0, 0) is the zero polynomial.
func (f *Polynomial) GCD(g *Polynomial) *Polynomial {
	a, b := f, g
	for !b.IsZero() {
		_, r := a.divmod(b)
		a, b = b, r
	}

	return a.Monic()
}

// Equal reports whether f - g reduces to the zero polynomial.
func (f *Polynomial) Equal(g *Polynomial) bool {
	if len(f.c) != len(g.c) {
		return false
	}

	return f.Sub(g).IsZero()
}

// String renders f in ascending degree using λ as the variable,
// e.g. "1+2λ-λ²" or "(1/2)λ³".
func (f *Polynomial) String() string {
	var parts []string
	for i, a := range f.c {
		if a.IsZero() {
			continue
		}
		parts = append(parts, fmtMonomial(i, a))
	}
	if len(parts) == 0 {
		return "0"
	}
	s := strings.Join(parts, "+")
	s = strings.ReplaceAll(s, "+-", "-")

	return s
}

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func fmtMonomial(deg int, a Fraction) string {
	coeff := a.String()
	if a.den().Cmp(bigOne) != 0 {
		coeff = "(" + coeff + ")"
	}
	if deg == 0 {
		return coeff
	}
	v := "λ"
	if deg > 1 {
		var sb strings.Builder
		for _, d := range fmt.Sprint(deg) {
			sb.WriteRune(superscripts[d-'0'])
		}
		v += sb.String()
	}
	switch coeff {
	case "1":
		return v
	case "-1":
		return "-" + v
	}

	return coeff + v
}
