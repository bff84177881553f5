// SPDX-License-Identifier: MIT

package poset

import "errors"

// Sentinel errors for poset operations.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to an algorithm.
	ErrGraphNil = errors.New("poset: graph is nil")

	// ErrVertexNotFound indicates a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("poset: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("poset: self-loop not allowed")

	// ErrCycleDetected indicates the graph is not acyclic, so no strict
	// order (and no linear extension) exists.
	ErrCycleDetected = errors.New("poset: cycle detected")
)
