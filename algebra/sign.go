// SPDX-License-Identifier: MIT
// Package algebra: sign decision on [1, ∞).

package algebra

// PosAbove1 is the conservative test used by the dominance refinement.
// It returns true for the zero polynomial; otherwise it requires f(1) ≥ 0
// and that every factor returned by YunFactorization, the last one carrying
// the leftover constant, is non-negative on [1, ∞) by itself.
//
// A true result guarantees f(x) ≥ 0 for every x ≥ 1. The converse does not
// hold: a factor of even multiplicity that dips below zero is rejected even
// though f never changes sign there, e.g. (x−2)². Use NonNegativeAbove1 for
// the exact decision.
func (f *Polynomial) PosAbove1() bool {
	if f.IsZero() {
		return true
	}
	if f.Evaluate(FractionFromInt(1)).Sign() < 0 {
		return false
	}
	factors, err := f.YunFactorization()
	if err != nil {
		return false
	}
	for _, a := range factors {
		if !sqFrPosAbove1(a) {
			return false
		}
	}

	return true
}

// NonNegativeAbove1 reports whether f(x) ≥ 0 for every real x ≥ 1.
//
// Implementation:
//   - Stage 1: the zero polynomial is trivially non-negative.
//   - Stage 2: require f(1) ≥ 0 and a positive leading coefficient
//     (otherwise f → −∞).
//   - Stage 3: split f with YunFactorization. A factor of even multiplicity
//     never changes sign, so only odd-multiplicity factors are checked, each
//     made monic and handed to sqFrPosAbove1.
//
// The odd factors are pairwise coprime, so f changes sign exactly where one
// of them has a root; each monic factor must therefore be non-negative on
// [1, ∞) by itself.
func (f *Polynomial) NonNegativeAbove1() bool {
	if f.IsZero() {
		return true
	}
	if f.Evaluate(FractionFromInt(1)).Sign() < 0 || f.Lead().Sign() < 0 {
		return false
	}
	factors, err := f.YunFactorization()
	if err != nil {
		return false
	}
	for i, a := range factors {
		if (i+1)%2 == 0 {
			continue
		}
		if !sqFrPosAbove1(a.Monic()) {
			return false
		}
	}

	return true
}

// rootInterval is a half-open search window (a, b] used by the bisection.
type rootInterval struct {
	a, b Fraction
}

// sqFrPosAbove1 decides f ≥ 0 on [1, ∞) for a square-free f.
//
// Implementation:
//   - Stage 1: divide out (x−1) while f(1) == 0; fail if then f(1) < 0.
//   - Stage 2: bisect [1, RootUpperBound] with a stack until every kept
//     interval holds exactly one root (by Sturm counting).
//   - Stage 3: when a root sits on the right endpoint b, extend b by
//     r = 2^-i, halving r until (b, b+r] holds no root.
//   - Stage 4: f ≥ 0 on [1, ∞) iff f(a) ≥ 0 and f(b) ≥ 0 for every kept
//     interval: each holds a single simple root, where f must change sign.
func sqFrPosAbove1(f *Polynomial) bool {
	one := FractionFromInt(1)
	xMinusOne := PolyFromInts(-1, 1)
	for !f.IsConstant() && f.Evaluate(one).IsZero() {
		f, _ = f.divmod(xMinusOne)
	}
	if f.Evaluate(one).Sign() < 0 {
		return false
	}

	half := MustFraction(1, 2)
	stack := []rootInterval{{a: one, b: f.RootUpperBound()}}
	var single []rootInterval
	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch roots := f.UniqueZerosInRegion(iv.a, iv.b); {
		case roots == 1:
			single = append(single, iv)
		case roots > 1:
			mid := iv.a.Add(iv.b).Mul(half)
			stack = append(stack, rootInterval{a: iv.a, b: mid}, rootInterval{a: mid, b: iv.b})
		}
	}

	for _, iv := range single {
		b := iv.b
		if f.Evaluate(b).IsZero() {
			r := one
			for f.UniqueZerosInRegion(b, b.Add(r)) != 0 {
				r = r.Mul(half)
			}
			b = b.Add(r)
		}
		if f.Evaluate(iv.a).Sign() < 0 || f.Evaluate(b).Sign() < 0 {
			return false
		}
	}

	return true
}
