// SPDX-License-Identifier: MIT

package dominance

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/ratdom/poset"
)

// Relation is a square boolean matrix. r[x][y] reads "y has not been shown
// to dominate x", so a set cell means x ≥ y is still possible.
type Relation [][]bool

// NewRelation returns the all-true relation on n elements.
func NewRelation(n int) Relation {
	r := make(Relation, n)
	for i := range r {
		r[i] = make([]bool, n)
		for j := range r[i] {
			r[i][j] = true
		}
	}

	return r
}

// Size returns the number of elements.
func (r Relation) Size() int { return len(r) }

// Dominates reports r[x][y]. Out-of-range indices report false.
func (r Relation) Dominates(x, y int) bool {
	if x < 0 || y < 0 || x >= len(r) || y >= len(r[x]) {
		return false
	}

	return r[x][y]
}

// Strictly reports that x ≥ y holds and y ≥ x does not.
func (r Relation) Strictly(x, y int) bool {
	return x != y && r.Dominates(x, y) && !r.Dominates(y, x)
}

func (r Relation) square() bool {
	if len(r) == 0 {
		return false
	}
	for _, row := range r {
		if len(row) != len(r) {
			return false
		}
	}

	return true
}

// IsReflexive reports r[x][x] for every x.
func (r Relation) IsReflexive() bool {
	for x := range r {
		if !r.Dominates(x, x) {
			return false
		}
	}

	return true
}

// IsAntisymmetric reports that r[x][y] and r[y][x] together imply x == y.
func (r Relation) IsAntisymmetric() bool {
	for x := range r {
		for y := x + 1; y < len(r); y++ {
			if r.Dominates(x, y) && r.Dominates(y, x) {
				return false
			}
		}
	}

	return true
}

// IsTransitive reports that r[x][y] and r[y][z] imply r[x][z].
// Complexity: O(n³).
func (r Relation) IsTransitive() bool {
	n := len(r)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if !r.Dominates(x, y) {
				continue
			}
			for z := 0; z < n; z++ {
				if r.Dominates(y, z) && !r.Dominates(x, z) {
					return false
				}
			}
		}
	}

	return true
}

// IsTotal reports that every pair is comparable.
func (r Relation) IsTotal() bool {
	for x := range r {
		for y := x + 1; y < len(r); y++ {
			if !r.Dominates(x, y) && !r.Dominates(y, x) {
				return false
			}
		}
	}

	return true
}

// Validate checks that r is a partial order and returns the first violated
// axiom.
func (r Relation) Validate() error {
	switch {
	case !r.square():
		return dominanceErrorf(opValidate, ErrMalformed)
	case !r.IsReflexive():
		return dominanceErrorf(opValidate, ErrNotReflexive)
	case !r.IsAntisymmetric():
		return dominanceErrorf(opValidate, ErrNotAntisymmetric)
	case !r.IsTransitive():
		return dominanceErrorf(opValidate, ErrNotTransitive)
	}

	return nil
}

// Graph returns the strict part of r as a directed graph: x→y iff
// Strictly(x, y). A relation that is empty or not square yields ErrMalformed.
func (r Relation) Graph() (*poset.Graph, error) {
	if !r.square() {
		return nil, dominanceErrorf(opGraph, ErrMalformed)
	}
	g := poset.NewGraph(len(r))
	for x := range r {
		for y := range r {
			if !r.Strictly(x, y) {
				continue
			}
			if err := g.AddEdge(x, y); err != nil {
				return nil, dominanceErrorf(opGraph, err)
			}
		}
	}

	return g, nil
}

// LinearExtension returns the elements ordered so that every dominating
// element precedes the elements it strictly dominates.
func (r Relation) LinearExtension(ctx context.Context) ([]int, error) {
	g, err := r.Graph()
	if err != nil {
		return nil, err
	}

	return poset.TopologicalSort(g, poset.WithCancelContext(ctx))
}

// Hasse returns the covering relation of the strict part of r.
func (r Relation) Hasse() (*poset.Graph, error) {
	g, err := r.Graph()
	if err != nil {
		return nil, err
	}

	return poset.TransitiveReduction(g)
}

// String renders one row per line with 1 for set and 0 for cleared cells.
func (r Relation) String() string {
	var sb strings.Builder
	for _, row := range r {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Clone returns an independent copy of r.
func (r Relation) Clone() Relation {
	out := make(Relation, len(r))
	for i, row := range r {
		out[i] = append([]bool(nil), row...)
	}

	return out
}

// Diff lists the cells where r and o disagree as "(x,y)" strings.
func (r Relation) Diff(o Relation) []string {
	var out []string
	for x := range r {
		for y := range r[x] {
			if r.Dominates(x, y) != o.Dominates(x, y) {
				out = append(out, fmt.Sprintf("(%d,%d)", x, y))
			}
		}
	}

	return out
}
