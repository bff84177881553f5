// SPDX-License-Identifier: MIT

package poset

// Reachability returns reach[u][v] == true iff a non-empty path u→…→v exists.
// The graph must be acyclic.
//
// Complexity: O(V·(V + E)).
func Reachability(g *Graph) ([][]bool, error) {
	order, err := TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	reach := make([][]bool, g.n)
	for i := range reach {
		reach[i] = make([]bool, g.n)
	}
	// Sinks first, so every successor's row is complete before it is merged.
	for idx := len(order) - 1; idx >= 0; idx-- {
		u := order[idx]
		succ, _ := g.Neighbors(u)
		for _, w := range succ {
			reach[u][w] = true
			for v, ok := range reach[w] {
				if ok {
					reach[u][v] = true
				}
			}
		}
	}

	return reach, nil
}

// TransitiveReduction returns the Hasse diagram of an acyclic graph: the
// unique minimal subgraph with the same reachability. An edge u→v is kept
// iff no other successor w of u reaches v.
//
// Errors: ErrGraphNil, ErrCycleDetected.
func TransitiveReduction(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	reach, err := Reachability(g)
	if err != nil {
		return nil, err
	}
	out := NewGraph(g.n)
	for u := 0; u < g.n; u++ {
		succ, _ := g.Neighbors(u)
		for _, v := range succ {
			redundant := false
			for _, w := range succ {
				if w != v && reach[w][v] {
					redundant = true
					break
				}
			}
			if !redundant {
				out.adj[u][v] = struct{}{}
			}
		}
	}

	return out, nil
}
