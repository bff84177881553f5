// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/matrix"
)

// TransitionMatrix returns the s×s matrix over States(n) whose entry
// [x][y] is the probability, as a sum of rational functions in λ, of
// moving from state x to state y in one step.
//
// For a source urn src with x[src] > 0 and destination dst, let
// c(dst) = x[dst] − [src = dst]. The move contributes
//
//	(x[src]/n) · λ^c(dst) / Σ_d λ^c(d)
//
// to [x][y], where y is x with one ball moved from src to dst, folded so
// that Stars ≥ Daggers.
//
// Errors: ErrBadSize.
// Complexity: O(s) states, nine terms each.
func TransitionMatrix(n int) (*matrix.Dense[*algebra.RationalFunctionSum], error) {
	if n < 1 {
		return nil, fmt.Errorf("TransitionMatrix(%d): %w", n, ErrBadSize)
	}
	states := States(n)
	idx := Index(states)
	s := len(states)
	cells := make([][]*algebra.RationalFunction, s*s)

	for ix, x := range states {
		u := x.Urns()
		for src := 0; src < 3; src++ {
			if u[src] == 0 {
				continue
			}
			var c [3]int
			total := algebra.ZeroPoly()
			for dst := 0; dst < 3; dst++ {
				c[dst] = u[dst]
				if dst == src {
					c[dst]--
				}
				total = total.Add(algebra.Monomial(c[dst]))
			}
			weight := algebra.MustFraction(int64(u[src]), int64(n))
			for dst := 0; dst < 3; dst++ {
				v := u
				v[src]--
				v[dst]++
				iy, ok := idx[canonical(v)]
				if !ok {
					return nil, fmt.Errorf("TransitionMatrix(%d): state %v has no successor %v", n, x, v)
				}
				term := algebra.MustRationalFunction(algebra.Monomial(c[dst]).Scale(weight), total)
				cells[ix*s+iy] = append(cells[ix*s+iy], term)
			}
		}
	}

	next := 0
	return matrix.NewDense(s, s, func() *algebra.RationalFunctionSum {
		sum := algebra.NewRationalFunctionSum(cells[next]...)
		next++
		return sum
	})
}
