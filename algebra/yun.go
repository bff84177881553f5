// SPDX-License-Identifier: MIT
// Package algebra: Yun's square-free decomposition.

package algebra

// YunFactorization returns square-free factors [a_1, a_2, ...] such that
// f = c · a_1 · a_2² · a_3³ ··· for a scalar c. Factors are monic except the
// last, which absorbs the constant left over when the iteration ends.
//
// Iteration:
//
//	a0 = gcd(f, f'), b0 = f/a0, c0 = f'/a0, d0 = c0 − b0'
//	a_i = gcd(b_{i-1}, d_{i-1}); emit a_i
//	b_i = b_{i-1}/a_i, c_i = d_{i-1}/a_i, d_i = c_i − b_i'
//	stop when b_i is constant, folding it into the last factor.
//
// Returns ErrZeroPolynomial if f is the zero polynomial.
func (f *Polynomial) YunFactorization() ([]*Polynomial, error) {
	if f.IsZero() {
		return nil, algebraErrorf(opYun, ErrZeroPolynomial)
	}
	df := f.Derivative()
	a := f.GCD(df)
	b, _ := f.divmod(a)
	c, _ := df.divmod(a)
	d := c.Sub(b.Derivative())

	var out []*Polynomial
	for {
		a = b.GCD(d)
		out = append(out, a)
		b, _ = b.divmod(a)
		c, _ = d.divmod(a)
		d = c.Sub(b.Derivative())
		if b.IsConstant() {
			out[len(out)-1] = out[len(out)-1].Mul(b)
			break
		}
	}

	return out, nil
}
