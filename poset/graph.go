// SPDX-License-Identifier: MIT

package poset

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Edge is a directed pair From→To.
type Edge struct {
	From int
	To   int
}

// Graph is a directed simple graph over vertices 0..n-1.
//
// mu guards adj; n is immutable after NewGraph.
type Graph struct {
	mu  sync.RWMutex
	n   int
	adj []map[int]struct{} // adj[from] = set of to
}

// NewGraph creates a graph with n isolated vertices. Negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Vertices returns 0..n-1.
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

func (g *Graph) has(v int) bool { return v >= 0 && v < g.n }

// AddEdge inserts from→to. Adding an existing edge is a no-op.
//
// Errors: ErrVertexNotFound, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if !g.has(from) || !g.has(to) {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrVertexNotFound)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj[from][to] = struct{}{}

	return nil
}

// RemoveEdge deletes from→to if present.
func (g *Graph) RemoveEdge(from, to int) error {
	if !g.has(from) || !g.has(to) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrVertexNotFound)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.adj[from], to)

	return nil
}

// HasEdge reports whether from→to exists. Unknown vertices report false.
func (g *Graph) HasEdge(from, to int) bool {
	if !g.has(from) || !g.has(to) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Neighbors returns the successors of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.has(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	g.mu.RLock()
	out := make([]int, 0, len(g.adj[v]))
	for to := range g.adj[v] {
		out = append(out, to)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Edges returns all edges ordered by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for from := 0; from < g.n; from++ {
		succ, _ := g.Neighbors(from)
		for _, to := range succ {
			out = append(out, Edge{From: from, To: to})
		}
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, s := range g.adj {
		total += len(s)
	}

	return total
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := NewGraph(g.n)
	g.mu.RLock()
	defer g.mu.RUnlock()
	for from, s := range g.adj {
		for to := range s {
			c.adj[from][to] = struct{}{}
		}
	}

	return c
}

// String renders one "from -> to" line per edge.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "%d -> %d\n", e.From, e.To)
	}

	return sb.String()
}
