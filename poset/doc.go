// SPDX-License-Identifier: MIT

// Package poset provides a small, thread-safe directed graph over dense
// integer vertices 0..n-1 and the order-theoretic algorithms needed to
// present a dominance relation: topological sorting (a linear extension of
// a partial order) and transitive reduction (its Hasse diagram).
//
// Vertices are fixed at construction; edges are simple (no parallel
// edges) and self-loops are rejected, because a strict order is
// irreflexive.
//
// Determinism:
//
//   - Neighbors, Edges and TopologicalSort visit vertices in ascending order,
//     so equal graphs always produce identical output.
//
// Concurrency:
//
//   - Graph guards its adjacency with a sync.RWMutex; reads may run in
//     parallel, mutations are exclusive.
//
// Complexity:
//
//   - TopologicalSort: O(V + E).
//   - TransitiveReduction: O(V·(V + E)) time, O(V²) memory for reachability.
package poset
