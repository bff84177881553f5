// SPDX-License-Identifier: MIT

package dominance

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ratdom/algebra"
	"github.com/katalvlaran/ratdom/matrix"
)

// Evaluate returns a evaluated at λ = x as an exact rational matrix.
// A pole at x yields ErrUndefined naming the cell.
func Evaluate(a *SymbolicMatrix, x algebra.Fraction) (*matrix.Dense[algebra.Fraction], error) {
	return matrix.Map(a, func(s *algebra.RationalFunctionSum) (algebra.Fraction, error) {
		if s == nil {
			return algebra.Fraction{}, ErrNilEntry
		}
		v, ok := s.Evaluate(x)
		if !ok {
			return algebra.Fraction{}, fmt.Errorf("λ=%s: %w", x, ErrUndefined)
		}
		return v, nil
	})
}

// Sampled is the numeric cross-check of Compute. For every λ in lambdas it
// evaluates a, and for k = 1..powers clears r[x][y] whenever
// a^k[x][0] < a^k[y][0], i.e. whenever the sample disproves x ≥ y.
//
// Errors: ErrBadPowers, matrix.ErrNilMatrix, matrix.ErrNonSquare,
// ErrNilEntry, ErrUndefined, context errors.
func Sampled(ctx context.Context, a *SymbolicMatrix, lambdas []algebra.Fraction, powers int, opts ...Option) (Relation, error) {
	if powers < 1 {
		return nil, dominanceErrorf(opSampled, ErrBadPowers)
	}
	if err := validateSymbolic(a); err != nil {
		return nil, dominanceErrorf(opSampled, err)
	}
	o := gatherOptions(opts...)
	s := a.Rows()
	r := NewRelation(s)
	ring := FractionRing()

	for _, x := range lambdas {
		m, err := Evaluate(a, x)
		if err != nil {
			return nil, dominanceErrorf(opSampled, err)
		}
		p := m
		for k := 1; k <= powers; k++ {
			col := make([]algebra.Fraction, s)
			for i := range col {
				col[i], _ = p.At(i, 0)
			}
			for i := 0; i < s; i++ {
				for j := 0; j < s; j++ {
					if i != j && r[i][j] && col[i].Less(col[j]) {
						r[i][j] = false
						o.logger.Debug("sample disproved",
							zap.Stringer("lambda", x), zap.Int("power", k), zap.Int("x", i), zap.Int("y", j))
					}
				}
			}
			if k == powers {
				break
			}
			if p, err = matrix.Mul(p, m, ring, matrix.WithContext(ctx), matrix.WithWorkers(o.workers)); err != nil {
				return nil, dominanceErrorf(opSampled, err)
			}
		}
	}

	return r, nil
}
