// SPDX-License-Identifier: MIT

// Package legendre precomputes normalized associated Legendre polynomial
// tables for spherical harmonic transforms.
//
// 🚀 What is in a table?
//
//	For orders m < mmax, degrees m ≤ l < lmax and colatitudes θ_i the table
//	holds s_l · P̄_l^m(cos θ_i), where P̄_l^m is the orthonormal associated
//	Legendre function (∫∫ |P̄_l^m e^{imφ}|² dΩ = 1) including the
//	Condon–Shortley phase (−1)^m, and s_l is the degree scale of the chosen
//	normalization (see Norm).
//
// ✨ Key features:
//   - ratio-stable three-term recurrences, no factorials;
//   - sqrt(1−x²) clamped at the poles, never NaN;
//   - one independent degree chain per order, computed in parallel;
//   - bit-identical output for identical inputs, regardless of worker count;
//   - upper-triangular storage: only m ≤ l is kept.
//
// ⚙️ Usage:
//
//	g, _ := grid.Build(grid.LegendreGauss, 64)
//	tab, err := legendre.Build(64, 64, g.Theta(), legendre.Ortho)
//	row := tab.RawRow(3, 10) // P̄_10^3 at every latitude, read-only
//
// A Table is immutable and safe for concurrent readers.
package legendre
