// SPDX-License-Identifier: MIT

package poset

import (
	"context"
	"fmt"
)

// Visitation states of the DFS.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *Graph
	opts  topoOptions
	state []int // visitation state per vertex
	order []int // post-order sequence
}

// TopologicalSort returns an ordering of all vertices such that for every
// edge u→v, u appears before v. Roots are tried in ascending order and
// successors are explored in ascending order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrCycleDetected, or the context error.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, g.n),
		order: make([]int, 0, g.n),
	}
	for v := 0; v < g.n; v++ {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("at vertex %d: %w", id, ErrCycleDetected)
	case black:
		return nil
	}
	t.state[id] = gray

	succ, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, to := range succ {
		if err = t.visit(to); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
