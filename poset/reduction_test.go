// SPDX-License-Identifier: MIT

package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratdom/poset"
)

// chainClosure builds the transitive closure of the chain 0→1→…→n-1.
func chainClosure(t *testing.T, n int) *poset.Graph {
	t.Helper()
	g := poset.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	return g
}

func TestTransitiveReduction_Chain(t *testing.T) {
	h, err := poset.TransitiveReduction(chainClosure(t, 4))
	require.NoError(t, err)
	assert.Equal(t, []poset.Edge{{0, 1}, {1, 2}, {2, 3}}, h.Edges())
}

func TestTransitiveReduction_Diamond(t *testing.T) {
	// 0 < {1,2} < 3 with the implied 0→3 present.
	g := poset.NewGraph(4)
	for _, e := range []poset.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {0, 3}} {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}
	h, err := poset.TransitiveReduction(g)
	require.NoError(t, err)
	assert.Equal(t, []poset.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, h.Edges())
}

func TestTransitiveReduction_Errors(t *testing.T) {
	_, err := poset.TransitiveReduction(nil)
	assert.ErrorIs(t, err, poset.ErrGraphNil)

	g := poset.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	_, err = poset.TransitiveReduction(g)
	assert.ErrorIs(t, err, poset.ErrCycleDetected)
}

func TestReachability(t *testing.T) {
	g := poset.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	reach, err := poset.Reachability(g)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{false, true, true},
		{false, false, true},
		{false, false, false},
	}, reach)
}
