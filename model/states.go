// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadSize is returned for a non-positive number of balls.
var ErrBadSize = errors.New("model: size must be >= 1")

// State counts the balls in each urn.
type State struct {
	Blue    int
	Stars   int
	Daggers int
}

// Urns returns the counts as an array indexed by urn.
func (s State) Urns() [3]int { return [3]int{s.Blue, s.Stars, s.Daggers} }

// canonical folds the two interchangeable urns so that Stars ≥ Daggers.
func canonical(u [3]int) State {
	if u[1] < u[2] {
		u[1], u[2] = u[2], u[1]
	}

	return State{Blue: u[0], Stars: u[1], Daggers: u[2]}
}

// less orders states lexicographically by (Blue, Stars, Daggers).
func (s State) less(o State) bool {
	if s.Blue != o.Blue {
		return s.Blue < o.Blue
	}
	if s.Stars != o.Stars {
		return s.Stars < o.Stars
	}

	return s.Daggers < o.Daggers
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Blue, s.Stars, s.Daggers)
}

// States enumerates every state with n balls in descending lexicographic
// order. n < 1 yields nil.
func States(n int) []State {
	if n < 1 {
		return nil
	}
	var out []State
	for blue := 0; blue <= n; blue++ {
		for stars := 0; stars <= n-blue; stars++ {
			daggers := n - blue - stars
			if daggers > stars {
				continue
			}
			out = append(out, State{Blue: blue, Stars: stars, Daggers: daggers})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[j].less(out[i]) })

	return out
}

// Index returns the position of every state in states.
func Index(states []State) map[State]int {
	idx := make(map[State]int, len(states))
	for i, s := range states {
		idx[s] = i
	}

	return idx
}
