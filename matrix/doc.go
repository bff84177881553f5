// SPDX-License-Identifier: MIT

// Package matrix offers dense matrices over an abstract ring.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major matrix of arbitrary element type T with bounds
//     checked At/Set and shallow Clone (elements are treated as immutable).
//   - Ring[T]: the algebra a kernel needs (additive identity, optional
//     multiplicative identity, Add, Mul), supplied by the caller.
//   - Mul / Pow / Identity / Map kernels with strict fail-fast validation and
//     sentinel errors matched via errors.Is.
//
// Mul is embarrassingly parallel across output rows; WithWorkers(n) runs rows
// on an errgroup with at most n goroutines. Successive multiplies in Pow are
// strictly sequential because each power depends on the previous one.
//
// Elements are never mutated by the kernels: rings must return fresh values
// from Add/Mul, and must be safe for concurrent use when WithWorkers > 1.
package matrix
