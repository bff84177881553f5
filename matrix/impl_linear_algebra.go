// SPDX-License-Identifier: MIT
// Package matrix provides universal kernels over any Ring: multiplication,
// powering, identity construction and element mapping. All functions perform
// strict fail-fast validation and return sentinel errors wrapped with an
// operation tag.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Identity returns the n×n identity over ring.
//
// Errors:
//   - ErrBadShape (n <= 0), ErrNoIdentity (ring.One == nil),
//     ErrIncompleteRing (ring.Zero == nil).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T any](n int, ring Ring[T]) (*Dense[T], error) {
	if ring.One == nil {
		return nil, matrixErrorf(opIdentity, ErrNoIdentity)
	}
	if ring.Zero == nil {
		return nil, matrixErrorf(opIdentity, ErrIncompleteRing)
	}
	m, err := NewDense(n, n, ring.Zero)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ring.One()
	}

	return m, nil
}

// Mul returns C = A×B with C[i][k] = Σ_j A[i][j]·B[j][k], each cell seeded
// with ring.Zero().
//
// Implementation:
//   - Stage 1: ValidateRing, ValidateMulCompatible; resolve options.
//   - Stage 2: one row kernel per output row. Sequential by default; with
//     WithWorkers(n > 1) rows run on an errgroup limited to n goroutines.
//     Output cells are independent, so row order never affects values.
//   - Stage 3: cancellation is checked before each row.
//
// Inputs:
//   - a (r×n), b (n×c): non-nil and conformable.
//   - ring: Zero/Add/Mul required.
//
// Returns:
//   - *Dense[T]: new r×c matrix; operands are not mutated.
//
// Errors:
//   - ErrIncompleteRing, ErrNilMatrix, ErrDimensionMismatch,
//     context errors from WithContext.
//
// Determinism:
//   - Accumulation order within a cell is fixed j = 0..n-1.
//
// Complexity:
//   - Time O(r*n*c) ring operations, Space O(r*c).
func Mul[T any](a, b *Dense[T], ring Ring[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	rowKernel := func(i int) {
		var (
			j, k int
			acc  T
		)
		rowOffsetA := i * a.c
		rowOffsetR := i * b.c
		for k = 0; k < b.c; k++ {
			acc = ring.Zero()
			for j = 0; j < a.c; j++ {
				acc = ring.Add(acc, ring.Mul(a.data[rowOffsetA+j], b.data[j*b.c+k]))
			}
			res.data[rowOffsetR+k] = acc
		}
	}

	if o.workers <= 1 {
		for i := 0; i < a.r; i++ {
			if err := o.ctx.Err(); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			rowKernel(i)
		}

		return res, nil
	}

	g, ctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)
	for i := 0; i < a.r; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rowKernel(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := o.ctx.Err(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Pow returns m^n by repeated multiplication (m·m·…·m, n factors).
// Each step depends on the previous one, so the loop is sequential; the
// options are forwarded to every Mul.
//
// Errors:
//   - ErrBadExponent (n < 0), ErrNonSquare, ErrNilMatrix,
//     ErrNoIdentity (n == 0 without ring.One), plus Mul errors.
//
// Complexity:
//   - Time O((n−1)·s³) ring operations for an s×s matrix.
func Pow[T any](m *Dense[T], n int, ring Ring[T], opts ...Option) (*Dense[T], error) {
	if n < 0 {
		return nil, matrixErrorf(opPow, ErrBadExponent)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n == 0 {
		id, err := Identity(m.r, ring)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		return id, nil
	}
	res := m.Clone()
	var err error
	for step := 1; step < n; step++ {
		if res, err = Mul(res, m, ring, opts...); err != nil {
			return nil, matrixErrorf(opPow, fmt.Errorf("step %d: %w", step, err))
		}
	}

	return res, nil
}

// Map applies f to every cell and returns a matrix of the results.
// The first error from f aborts the map and is returned with the cell index.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Map[T, U any](m *Dense[T], f func(T) (U, error)) (*Dense[U], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for idx, v := range m.data {
		u, err := f(v)
		if err != nil {
			return nil, matrixErrorf(opMap, fmt.Errorf("cell (%d,%d): %w", idx/m.c, idx%m.c, err))
		}
		out.data[idx] = u
	}

	return out, nil
}
