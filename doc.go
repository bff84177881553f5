// Package ratdom is an exact symbolic engine for deciding when one
// parametric growth function dominates another, for every parameter λ ≥ 1.
//
// 🚀 What is ratdom?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Exact rationals: big-integer fractions in canonical form
//		• Polynomials over Q: long division, Euclidean GCD, Horner evaluation
//		• Root analysis: Sturm sequences, Yun square-free factorization
//		• Rational functions and their sums, with a coercion tower
//		• Generic matrices over any ring, with parallel multiplication
//		• Dominance relations refined by symbolic matrix powering
//		• Partial-order tooling: linear extensions, Hasse diagrams
//
// ✨ Why ratdom?
//
//   - No floating point anywhere in a decision
//   - Immutable values – every operation returns a fresh result
//   - Sentinel errors everywhere, matched with errors.Is
//
// Packages:
//
//	algebra/   — Fraction, Polynomial, RationalFunction, RationalFunctionSum, tower
//	matrix/    — Dense[T], Ring[T], Mul/Pow/Identity/Map
//	poset/     — directed graph, topological sort, transitive reduction
//	dominance/ — Compute, Sampled, Relation
//	model/     — urn state space and transition matrix
//	config/    — YAML run configuration
//	cmd/ratdom — command-line front end
//
// Quick example:
//
//	p := algebra.PolyFromInts(-1, 1) // λ − 1
//	p.PosAbove1()                    // true: zero at 1, positive beyond
//
//	go install github.com/katalvlaran/ratdom/cmd/ratdom@latest
package ratdom
