// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every kernel.
package matrix

// Ring describes the element algebra a kernel runs over.
//
// Zero, Add and Mul are required. One is optional and only needed by
// Identity and Pow(m, 0). All functions must return fresh values and never
// mutate their arguments; with WithWorkers(n > 1) they must also be safe for
// concurrent use.
type Ring[T any] struct {
	// Zero returns a fresh additive identity.
	Zero func() T

	// One returns a fresh multiplicative identity (optional).
	One func() T

	// Add returns a + b.
	Add func(a, b T) T

	// Mul returns a · b.
	Mul func(a, b T) T
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}
