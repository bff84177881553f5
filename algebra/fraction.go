// SPDX-License-Identifier: MIT
// Package algebra: exact rational numbers.
//
// Fraction keeps a hard canonical form after every constructor and operation:
//   - gcd(|p|, q) == 1 (lowest terms, via the iterative Euclidean GCD below),
//   - q > 0 (the sign lives in the numerator),
//   - zero is 0/1.
//
// Because the form is canonical, Cmp/Less are plain cross-multiplication
// comparisons with no sign fix-ups.

package algebra

import (
	"math/big"
	"strings"
)

var bigOne = big.NewInt(1)

// Fraction is an immutable rational number p/q.
// The zero value is the fraction 0/1 and is ready to use.
type Fraction struct {
	p *big.Int // numerator; nil means 0
	q *big.Int // denominator; nil means 1, otherwise > 0
}

// GCD returns gcd(|a|, |b|) computed by the iterative Euclidean algorithm.
// gcd(0, b) == |b| and gcd(0, 0) == 0. Inputs are not modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}

	return x
}

// canonical builds a Fraction from freshly owned p and q (q != 0).
// Stage 1: move the sign to the numerator.
// Stage 2: divide both parts by their gcd.
func canonical(p, q *big.Int) Fraction {
	if q.Sign() < 0 {
		p.Neg(p)
		q.Neg(q)
	}
	if p.Sign() == 0 {
		return Fraction{p: new(big.Int), q: big.NewInt(1)}
	}
	g := GCD(p, q)
	if g.Cmp(bigOne) != 0 {
		p.Quo(p, g)
		q.Quo(q, g)
	}

	return Fraction{p: p, q: q}
}

// NewFraction returns p/q in canonical form.
// Returns ErrZeroDenominator if q == 0.
func NewFraction(p, q int64) (Fraction, error) {
	if q == 0 {
		return Fraction{}, algebraErrorf(opNewFrac, ErrZeroDenominator)
	}

	return canonical(big.NewInt(p), big.NewInt(q)), nil
}

// NewFractionBig returns p/q in canonical form. The arguments are copied.
// Returns ErrZeroDenominator if q is nil or zero.
func NewFractionBig(p, q *big.Int) (Fraction, error) {
	if q == nil || q.Sign() == 0 {
		return Fraction{}, algebraErrorf(opNewFrac, ErrZeroDenominator)
	}
	num := new(big.Int)
	if p != nil {
		num.Set(p)
	}

	return canonical(num, new(big.Int).Set(q)), nil
}

// MustFraction is NewFraction that panics on a zero denominator.
// Intended for literals in tests and examples.
func MustFraction(p, q int64) Fraction {
	f, err := NewFraction(p, q)
	if err != nil {
		panic(err)
	}

	return f
}

// FractionFromInt returns n/1.
func FractionFromInt(n int64) Fraction {
	return Fraction{p: big.NewInt(n), q: big.NewInt(1)}
}

// ParseFraction parses "p", "p/q" or "-p/q" (surrounding spaces allowed).
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	p, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Fraction{}, algebraErrorf(opParse, ErrParse)
	}
	q := big.NewInt(1)
	if hasDen {
		if q, ok = q.SetString(strings.TrimSpace(denStr), 10); !ok {
			return Fraction{}, algebraErrorf(opParse, ErrParse)
		}
	}
	if q.Sign() == 0 {
		return Fraction{}, algebraErrorf(opParse, ErrZeroDenominator)
	}

	return canonical(p, q), nil
}

func (f Fraction) num() *big.Int {
	if f.p == nil {
		return new(big.Int)
	}

	return f.p
}

func (f Fraction) den() *big.Int {
	if f.q == nil {
		return bigOne
	}

	return f.q
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.num()) }

// Den returns a copy of the (always positive) denominator.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.den()) }

// Tier reports TierFraction.
func (f Fraction) Tier() Tier { return TierFraction }

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	p := new(big.Int).Mul(f.num(), g.den())
	p.Add(p, new(big.Int).Mul(g.num(), f.den()))

	return canonical(p, new(big.Int).Mul(f.den(), g.den()))
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// Mul returns f · g.
func (f Fraction) Mul(g Fraction) Fraction {
	return canonical(
		new(big.Int).Mul(f.num(), g.num()),
		new(big.Int).Mul(f.den(), g.den()),
	)
}

// Quo returns f / g = (p·s)/(q·r), i.e. f times the reciprocal of g.
// This is exact division, not integer floor division.
// Returns ErrDivisionByZero if g == 0.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, algebraErrorf(opQuo, ErrDivisionByZero)
	}

	return canonical(
		new(big.Int).Mul(f.num(), g.den()),
		new(big.Int).Mul(f.den(), g.num()),
	), nil
}

// mustQuo divides by a divisor the caller has proven non-zero.
func (f Fraction) mustQuo(g Fraction) Fraction {
	r, err := f.Quo(g)
	if err != nil {
		panic(err)
	}

	return r
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{p: new(big.Int).Neg(f.num()), q: new(big.Int).Set(f.den())}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	return Fraction{p: new(big.Int).Abs(f.num()), q: new(big.Int).Set(f.den())}
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int { return f.num().Sign() }

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.num().Sign() == 0 }

// Cmp compares f and g by cross-multiplication and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	l := new(big.Int).Mul(f.num(), g.den())
	r := new(big.Int).Mul(g.num(), f.den())

	return l.Cmp(r)
}

// Less reports f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// Equal reports p1·q2 == p2·q1.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// Float64 returns the nearest float64, for display only.
func (f Fraction) Float64() float64 {
	v, _ := new(big.Rat).SetFrac(f.num(), f.den()).Float64()

	return v
}

// String formats f as "p" or "p/q".
func (f Fraction) String() string {
	if f.den().Cmp(bigOne) == 0 {
		return f.num().String()
	}

	return f.num().String() + "/" + f.den().String()
}
