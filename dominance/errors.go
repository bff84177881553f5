// SPDX-License-Identifier: MIT

package dominance

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEntry indicates a nil cell in the symbolic matrix.
	ErrNilEntry = errors.New("dominance: nil matrix entry")

	// ErrUndefined indicates an entry has a pole at a sampled λ.
	ErrUndefined = errors.New("dominance: entry undefined at sample point")

	// ErrBadPowers indicates a non-positive number of sampled powers.
	ErrBadPowers = errors.New("dominance: powers must be >= 1")

	// ErrMalformed indicates a relation that is empty or not square.
	ErrMalformed = errors.New("dominance: relation is not square")

	// ErrNotReflexive, ErrNotAntisymmetric and ErrNotTransitive report
	// which partial-order axiom a relation violates.
	ErrNotReflexive     = errors.New("dominance: relation is not reflexive")
	ErrNotAntisymmetric = errors.New("dominance: relation is not antisymmetric")
	ErrNotTransitive    = errors.New("dominance: relation is not transitive")
)

const (
	opCompute  = "Compute"
	opSampled  = "Sampled"
	opValidate = "Validate"
	opGraph    = "Graph"
)

func dominanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
