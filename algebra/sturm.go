// SPDX-License-Identifier: MIT
// Package algebra: Sturm sequences and real-root counting.

package algebra

// SturmSequence returns [f, f', -rem(f, f'), ...] extended by
// -(prev_prev mod prev) until a zero polynomial is produced (the trailing
// zero is kept). The sequence is computed once per instance.
// Callers must not modify the returned slice.
func (f *Polynomial) SturmSequence() []*Polynomial {
	f.sturmOnce.Do(func() {
		seq := []*Polynomial{f, f.Derivative()}
		for !seq[len(seq)-1].IsZero() {
			_, r := seq[len(seq)-2].divmod(seq[len(seq)-1])
			seq = append(seq, r.Neg())
		}
		f.sturm = seq
	})

	return f.sturm
}

// SignChanges is V(x): the number of sign flips between consecutive
// non-zero values of the Sturm sequence evaluated at x. Zero values are
// dropped before counting.
func (f *Polynomial) SignChanges(x Fraction) int {
	var (
		changes int
		prev    int
	)
	for _, s := range f.SturmSequence() {
		sign := s.Evaluate(x).Sign()
		if sign == 0 {
			continue
		}
		if prev != 0 && sign != prev {
			changes++
		}
		prev = sign
	}

	return changes
}

// UniqueZerosInRegion returns V(a) − V(b), the number of distinct real roots
// in (a, b] (by Sturm's theorem when f(a), f(b) != 0, the open interval).
func (f *Polynomial) UniqueZerosInRegion(a, b Fraction) int {
	return f.SignChanges(a) - f.SignChanges(b)
}

// RootUpperBound returns 1 + max |a_i / a_n| over the non-leading
// coefficients; every real root of f lies strictly below it.
// A constant polynomial yields 1.
func (f *Polynomial) RootUpperBound() Fraction {
	var m Fraction
	lead := f.Lead()
	for i := 0; i < len(f.c)-1; i++ {
		r := f.c[i].mustQuo(lead).Abs()
		if m.Less(r) {
			m = r
		}
	}

	return m.Add(FractionFromInt(1))
}
