// SPDX-License-Identifier: MIT

// Package model supplies the parametric matrix analysed by package
// dominance: an urn process with n balls split over three urns (blue,
// stars, daggers), where the star and dagger urns are interchangeable.
//
// A state is a triple (b, s, d) with b+s+d = n and d ≤ s. One step picks a
// source urn with probability proportional to its size and moves one ball
// to a destination urn chosen with weight λ^c, where c is the number of
// balls already in the destination (not counting the moving ball).
package model
