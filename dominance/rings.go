// SPDX-License-Identifier: MIT

package dominance

import (
	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/matrix"
)

// FractionRing is the field of exact rationals, used for matrices
// evaluated at a fixed λ.
func FractionRing() matrix.Ring[algebra.Fraction] {
	return matrix.Ring[algebra.Fraction]{
		Zero: func() algebra.Fraction { return algebra.Fraction{} },
		One:  func() algebra.Fraction { return algebra.FractionFromInt(1) },
		Add:  func(a, b algebra.Fraction) algebra.Fraction { return a.Add(b) },
		Mul:  func(a, b algebra.Fraction) algebra.Fraction { return a.Mul(b) },
	}
}

// SumRing is the ring of rational-function sums used for symbolic powering.
// Products collapse both operands to single terms before multiplying.
func SumRing() matrix.Ring[*algebra.RationalFunctionSum] {
	return matrix.Ring[*algebra.RationalFunctionSum]{
		Zero: algebra.ZeroSum,
		One:  algebra.OneSum,
		Add:  func(a, b *algebra.RationalFunctionSum) *algebra.RationalFunctionSum { return a.Add(b) },
		Mul:  func(a, b *algebra.RationalFunctionSum) *algebra.RationalFunctionSum { return a.Mul(b) },
	}
}
