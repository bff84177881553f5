// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/matrix"
)

func eqInt(a, b int) bool { return a == b }

func TestMul_Correctness(t *testing.T) {
	a := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})
	c, err := matrix.Mul(a, b, intRing)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{58, 64}, {139, 154}}, c.ToRows())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, a.ToRows(), "operands are not mutated")
}

func TestMul_Errors(t *testing.T) {
	a := sequential(t, 2, 3)
	_, err := matrix.Mul(a, a, intRing)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a, intRing)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(a, sequential(t, 3, 1), matrix.Ring[int]{Zero: intRing.Zero})
	assert.ErrorIs(t, err, matrix.ErrIncompleteRing)
}

func TestMul_ParallelMatchesSequential(t *testing.T) {
	a := sequential(t, 9, 7)
	b := sequential(t, 7, 5)
	seq, err := matrix.Mul(a, b, intRing)
	require.NoError(t, err)
	for _, w := range []int{0, 2, 4, 16} {
		par, err := matrix.Mul(a, b, intRing, matrix.WithWorkers(w))
		require.NoError(t, err)
		assert.True(t, matrix.Equal(seq, par, eqInt), "workers=%d", w)
	}
}

func TestMul_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := sequential(t, 4, 4)

	_, err := matrix.Mul(a, a, intRing, matrix.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = matrix.Mul(a, a, intRing, matrix.WithContext(ctx), matrix.WithWorkers(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPow(t *testing.T) {
	fib := MustFromRows(t, [][]int{{1, 1}, {1, 0}})
	p, err := matrix.Pow(fib, 10, intRing)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{89, 55}, {55, 34}}, p.ToRows())

	p, err = matrix.Pow(fib, 1, intRing)
	require.NoError(t, err)
	assert.Equal(t, fib.ToRows(), p.ToRows())

	id, err := matrix.Pow(fib, 0, intRing)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}}, id.ToRows())

	_, err = matrix.Pow(fib, -1, intRing)
	assert.ErrorIs(t, err, matrix.ErrBadExponent)
	_, err = matrix.Pow(sequential(t, 2, 3), 2, intRing)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Pow(fib, 0, matrix.Ring[int]{Zero: intRing.Zero, Add: intRing.Add, Mul: intRing.Mul})
	assert.ErrorIs(t, err, matrix.ErrNoIdentity)
}

func TestPow_BooleanReachability(t *testing.T) {
	// path 0→1→2: the square reaches 0→2 only.
	adj := MustFromRows(t, [][]bool{
		{false, true, false},
		{false, false, true},
		{false, false, false},
	})
	sq, err := matrix.Pow(adj, 2, boolRing, matrix.WithWorkers(2))
	require.NoError(t, err)
	assert.True(t, MustAt(t, sq, 0, 2))
	assert.False(t, MustAt(t, sq, 0, 1))
	assert.False(t, MustAt(t, sq, 1, 2))
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3, intRing)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())
	_, err = matrix.Identity(0, intRing)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMap(t *testing.T) {
	m := sequential(t, 2, 2)
	half, err := matrix.Map(m, func(v int) (float64, error) { return float64(v) / 2, nil })
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, half.ToRows())

	_, err = matrix.Map(m, func(v int) (int, error) {
		if v == 3 {
			return 0, matrix.ErrOutOfRange
		}
		return v, nil
	})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "cell (1,0)")
}
