// SPDX-License-Identifier: MIT

// Package dominance computes a dominance relation between the rows of a
// square parametric matrix A whose entries are sums of rational functions
// in λ.
//
// Row i dominates row j at power k when A^k[i][0] − A^k[j][0] is
// non-negative for every λ ≥ 1, decided exactly with Sturm sequences.
// Compute starts from the all-true relation and clears r[j][i] for every
// such witness over a fixed number of rounds, multiplying by A between
// rounds. Sampled performs the numeric counterpart at chosen values of λ.
//
// Relation r is read as "r[x][y]: y has not been shown to dominate x". The
// caller decides whether the result is a partial order via Validate.
package dominance
