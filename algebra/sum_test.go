// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/algebra"
)

func TestSum_MergeEqualDenominators(t *testing.T) {
	f, g, h := poly(1, 2), poly(0, 0, 3), poly(1, 1)
	s := algebra.NewRationalFunctionSum(rf(f, h), rf(g, h))
	require.Equal(t, 1, s.Len())
	term := s.Terms()[0]
	assert.True(t, term.Num().Equal(f.Add(g)))
	assert.True(t, term.Den().Equal(h))
}

func TestSum_DropZeroTerms(t *testing.T) {
	s := algebra.NewRationalFunctionSum(
		algebra.ZeroRationalFunction(),
		rf(poly(1), poly(0, 1)),
		rf(poly(0), poly(5, 1)),
		rf(poly(-1), poly(0, 1)),
	)
	assert.Equal(t, 0, s.Len(), "1/x - 1/x merges to zero and is dropped")
	assert.True(t, s.IsZero())
	assert.Equal(t, "0", s.String())

	assert.Equal(t, 0, algebra.ZeroSum().Len())
	assert.Equal(t, 1, algebra.OneSum().Len())

	two := algebra.OneSum().Add(algebra.OneSum())
	require.Equal(t, 1, two.Len())
	assert.Equal(t, "2", two.String())
}

func TestSum_KeepsDistinctDenominators(t *testing.T) {
	s := algebra.NewRationalFunctionSum(
		rf(poly(1), poly(0, 1)),
		rf(poly(0, 0, 1), poly(1, 1)),
		rf(poly(0, 1, 2, 3), poly(1, 1)),
		rf(poly(1, 2, 3, 5), poly(1)),
	)
	assert.Equal(t, 3, s.Len())

	s = s.Add(algebra.NewRationalFunctionSum(rf(poly(0, 2), poly(0, 1))))
	assert.Equal(t, 3, s.Len())
}

func TestSum_MulCollapses(t *testing.T) {
	a := algebra.NewRationalFunctionSum(rf(poly(1), poly(0, 1)), rf(poly(1), poly(1, 1)))
	sq := a.Mul(a)
	assert.Equal(t, 1, sq.Len())
	want := a.SumTerms().Mul(a.SumTerms())
	assert.True(t, sq.SumTerms().Equal(want))

	d := a.Distribute(rf(poly(0, 2), poly(1)))
	assert.Equal(t, 2, d.Len(), "distribution keeps the term grouping")
	assert.True(t, d.Equal(algebra.NewRationalFunctionSum(rf(poly(2), poly(1)), rf(poly(0, 2), poly(1, 1)))))
}

func TestSum_Evaluate(t *testing.T) {
	s := algebra.NewRationalFunctionSum(rf(poly(1), poly(0, 1)), rf(poly(1), poly(-2, 1)))
	_, ok := s.Evaluate(frac(2, 1))
	assert.False(t, ok)

	v, ok := s.Evaluate(frac(1, 1))
	require.True(t, ok)
	assert.True(t, v.IsZero(), "1/1 + 1/(1-2) == 0")
}

func TestSum_AdditionLaws(t *testing.T) {
	a := algebra.NewRationalFunctionSum(rf(poly(1, 2), poly(3, 0, 1)))
	b := algebra.NewRationalFunctionSum(rf(poly(-1), poly(1, 1)), rf(poly(4), poly(1)))
	c := algebra.NewRationalFunctionSum(rf(poly(0, 0, 5), poly(2)))

	assert.True(t, a.Add(b).Equal(b.Add(a)))
	assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	assert.True(t, a.Sub(a).IsZero())

	// different grouping, same value
	split := algebra.NewRationalFunctionSum(rf(poly(1), poly(0, 1)), rf(poly(1), poly(0, 1, 1)))
	whole := algebra.NewRationalFunctionSum(rf(poly(2, 1), poly(0, 1, 1)))
	assert.True(t, split.Equal(whole))
}
