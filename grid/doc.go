// SPDX-License-Identifier: MIT

// Package grid provides latitude sample points and quadrature weights for
// spherical harmonic transforms.
//
// 🚀 What is a latitude grid?
//
//	A function on the sphere is sampled at nlat colatitudes θ_i ∈ [0, π]
//	(north pole first) and nlon equispaced longitudes. The latitude integral
//	∫_{-1}^{1} f(x) dx, x = cos θ, is replaced by the quadrature Σ_i w_i f(x_i).
//
// ✨ Supported rules:
//
//   - LegendreGauss: roots of P_nlat; exact up to degree 2·nlat−1.
//   - Equiangular: midpoints θ_i = (i+½)π/nlat with Fejér's first-rule
//     weights; exact up to degree nlat−1.
//   - Lobatto: Gauss–Lobatto–Legendre, includes both poles; exact up
//     to degree 2·nlat−3.
//   - ClenshawCurtis: θ_k = kπ/(nlat−1), includes both poles; exact up to
//     degree nlat−1.
//
// ⚙️ Usage:
//
//	g, err := grid.Build(grid.LegendreGauss, 256)
//	if err != nil { ... }
//	theta, w := g.Theta(), g.Weights()
//
// Weights are expressed for the measure dx on [-1, 1] and therefore sum to 2;
// the longitude measure 2π is applied by the transform.
package grid
