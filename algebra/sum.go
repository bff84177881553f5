// SPDX-License-Identifier: MIT
// Package algebra: sums of rational functions.
//
// A RationalFunctionSum keeps its terms apart so that repeated additions
// stay cheap; after simplification no two terms share a structurally equal
// denominator and no term has a zero numerator. The empty sum is zero.

package algebra

import "strings"

// RationalFunctionSum is an immutable sum of RationalFunction terms.
type RationalFunctionSum struct {
	terms []*RationalFunction
}

// NewRationalFunctionSum returns the simplified sum of terms.
// Nil terms are ignored.
func NewRationalFunctionSum(terms ...*RationalFunction) *RationalFunctionSum {
	ts := make([]*RationalFunction, 0, len(terms))
	for _, t := range terms {
		if t != nil {
			ts = append(ts, t)
		}
	}

	return &RationalFunctionSum{terms: simplifyTerms(ts)}
}

// ZeroSum returns a fresh zero sum.
func ZeroSum() *RationalFunctionSum {
	return NewRationalFunctionSum(ZeroRationalFunction())
}

// OneSum returns a fresh sum equal to 1.
func OneSum() *RationalFunctionSum {
	return NewRationalFunctionSum(OneRationalFunction())
}

// simplifyTerms walks ts from the end. A term with a zero numerator is
// dropped; otherwise it is merged into the first earlier term with an equal
// denominator (numerators added) and removed. ts is owned by the caller.
func simplifyTerms(ts []*RationalFunction) []*RationalFunction {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i].IsZero() {
			ts = append(ts[:i], ts[i+1:]...)
			continue
		}
		for j := 0; j < i; j++ {
			if ts[i].den.Equal(ts[j].den) {
				ts[j] = simplifiedRF(ts[j].num.Add(ts[i].num), ts[j].den)
				ts = append(ts[:i], ts[i+1:]...)
				break
			}
		}
	}

	return ts
}

// Tier reports TierSum.
func (s *RationalFunctionSum) Tier() Tier { return TierSum }

// Len returns the number of terms.
func (s *RationalFunctionSum) Len() int { return len(s.terms) }

// Terms returns a copy of the term list.
func (s *RationalFunctionSum) Terms() []*RationalFunction {
	out := make([]*RationalFunction, len(s.terms))
	copy(out, s.terms)

	return out
}

// IsZero reports whether every term vanishes identically.
func (s *RationalFunctionSum) IsZero() bool { return s.SumTerms().IsZero() }

// SumTerms folds all terms into a single RationalFunction.
func (s *RationalFunctionSum) SumTerms() *RationalFunction {
	acc := ZeroRationalFunction()
	for _, t := range s.terms {
		acc = acc.Add(t)
	}

	return acc
}

// Add concatenates the term lists and re-simplifies.
func (s *RationalFunctionSum) Add(o *RationalFunctionSum) *RationalFunctionSum {
	ts := make([]*RationalFunction, 0, len(s.terms)+len(o.terms))
	ts = append(ts, s.terms...)
	ts = append(ts, o.terms...)

	return &RationalFunctionSum{terms: simplifyTerms(ts)}
}

// Sub returns s − o.
func (s *RationalFunctionSum) Sub(o *RationalFunctionSum) *RationalFunctionSum {
	return s.Add(o.Neg())
}

// Neg negates every term.
func (s *RationalFunctionSum) Neg() *RationalFunctionSum {
	ts := make([]*RationalFunction, len(s.terms))
	for i, t := range s.terms {
		ts[i] = t.Neg()
	}

	return &RationalFunctionSum{terms: ts}
}

// Mul collapses both sums with SumTerms and multiplies the two resulting
// rational functions, yielding a single-term sum.
func (s *RationalFunctionSum) Mul(o *RationalFunctionSum) *RationalFunctionSum {
	return NewRationalFunctionSum(s.SumTerms().Mul(o.SumTerms()))
}

// Distribute multiplies every term by r.
func (s *RationalFunctionSum) Distribute(r *RationalFunction) *RationalFunctionSum {
	ts := make([]*RationalFunction, len(s.terms))
	for i, t := range s.terms {
		ts[i] = t.Mul(r)
	}

	return &RationalFunctionSum{terms: simplifyTerms(ts)}
}

// Evaluate sums the term values at x. ok is false when any term is
// undefined at x.
func (s *RationalFunctionSum) Evaluate(x Fraction) (Fraction, bool) {
	var acc Fraction
	for _, t := range s.terms {
		v, ok := t.Evaluate(x)
		if !ok {
			return Fraction{}, false
		}
		acc = acc.Add(v)
	}

	return acc, true
}

// Equal compares the collapsed rational functions of both sums.
func (s *RationalFunctionSum) Equal(o *RationalFunctionSum) bool {
	return s.SumTerms().Equal(o.SumTerms())
}

// String joins the terms with " + "; the empty sum prints as "0".
func (s *RationalFunctionSum) String() string {
	parts := make([]string, 0, len(s.terms))
	for _, t := range s.terms {
		parts = append(parts, t.String())
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
