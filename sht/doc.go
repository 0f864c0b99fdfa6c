// SPDX-License-Identifier: MIT

// Package sht computes the discrete Spherical Harmonic Transform of real
// scalar fields and its inverse.
//
// 🚀 What does it do?
//
//	Forward (analysis):  signal (..., nlat, nlon) float64 → coefficients (..., lmax, mmax) complex128
//	Inverse (synthesis): coefficients (..., lmax, mmax) complex128 → signal (..., nlat, nlon) float64
//
//	Forward = real FFT along longitude, scaled by 2π/nlon, followed by a
//	quadrature contraction over latitude against a legendre.Table.
//	Inverse = the adjoint contraction followed by an unnormalized inverse
//	real FFT. On a Gauss grid with lmax ≤ nlat, Forward∘Inverse is the
//	identity on band-limited spectra up to rounding.
//
// ✨ Two ways to use it:
//
//   - Stateless functions Forward/Inverse over a caller-owned table and weights.
//   - A cached plan: New builds the grid and table once; Transform.Forward and
//     Transform.Inverse are safe for concurrent use by any number of goroutines.
//
// ⚙️ Usage:
//
//	tr, err := sht.New(256, 512, sht.WithGrid(grid.LegendreGauss), sht.WithNorm(legendre.Ortho))
//	if err != nil { ... }
//	coeffs, err := tr.Forward(signal)   // signal: *tensor.Real (..., 256, 512)
//	back, err := tr.Inverse(coeffs)
//
// Performance:
//
//   - Time:   O(B·(nlat·nlon·log nlon + mmax·lmax·nlat)) per direction.
//   - Memory: O(mmax·lmax·nlat) for the table, shared by all calls.
//
// Batch elements are processed in parallel; when the batch is smaller than
// the worker budget the latitude contraction is additionally split by order.
package sht
