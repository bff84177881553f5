// SPDX-License-Identifier: MIT

package dominance

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/matrix"
)

// SymbolicMatrix is a square matrix of rational-function sums in λ.
type SymbolicMatrix = matrix.Dense[*algebra.RationalFunctionSum]

// validateSymbolic checks that a is non-nil, square and has no nil cells.
func validateSymbolic(a *SymbolicMatrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	for i := 0; i < a.Rows(); i++ {
		for j, v := range a.Row(i) {
			if v == nil {
				return fmt.Errorf("cell (%d,%d): %w", i, j, ErrNilEntry)
			}
		}
	}

	return nil
}

// Compute refines the all-true relation over the rows of a.
//
// Round k (k = 1..rounds) inspects P = a^k: for every ordered pair i ≠ j
// with r[j][i] still set, if the numerator of P[i][0] − P[j][0] is
// non-negative on [1, ∞) then r[j][i] is cleared. P is multiplied by a
// between rounds; the product after the last round is never needed and is
// not computed.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNilEntry, context
// errors, and multiplication errors.
//
// Complexity: rounds−1 symbolic multiplications plus O(rounds·s²) sign
// decisions for an s×s matrix.
func Compute(ctx context.Context, a *SymbolicMatrix, opts ...Option) (Relation, error) {
	if err := validateSymbolic(a); err != nil {
		return nil, dominanceErrorf(opCompute, err)
	}
	o := gatherOptions(opts...)
	s := a.Rows()
	r := NewRelation(s)
	ring := SumRing()
	power := a.Clone()

	for round := 1; round <= o.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, dominanceErrorf(opCompute, err)
		}
		col := make([]*algebra.RationalFunctionSum, s)
		for i := range col {
			col[i], _ = power.At(i, 0)
		}
		cleared := 0
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				if i == j || !r[j][i] {
					continue
				}
				diff := col[i].Sub(col[j]).SumTerms().Num()
				if diff.PosAbove1() {
					r[j][i] = false
					cleared++
					o.logger.Debug("dominance witnessed",
						zap.Int("round", round), zap.Int("i", i), zap.Int("j", j))
				}
			}
		}
		o.logger.Debug("dominance round done",
			zap.Int("round", round), zap.Int("size", s), zap.Int("cleared", cleared))

		if round == o.rounds {
			break
		}
		next, err := matrix.Mul(power, a, ring,
			matrix.WithContext(ctx), matrix.WithWorkers(o.workers))
		if err != nil {
			return nil, dominanceErrorf(opCompute, fmt.Errorf("round %d: %w", round, err))
		}
		power = next
	}

	return r, nil
}
