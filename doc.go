// Package harmonics computes discrete Spherical Harmonic Transforms of real
// scalar fields sampled on latitude–longitude grids.
//
// 🚀 What is harmonics?
//
//	A pure-Go numerical library built around three steps:
//		• Quadrature: colatitudes and weights for Gauss, equiangular,
//		  Lobatto and Clenshaw–Curtis rules
//		• Legendre tables: associated Legendre functions by stable
//		  three-term recurrences, no factorials
//		• Transforms: real FFT along longitude plus a quadrature contraction
//		  along latitude, in both directions
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/: latitude rules, weights on [-1, 1], longitude sampling
//	legendre/: Table (upper-triangular P[m, l, i]) and Norm (ortho, four-pi, schmidt)
//	sht/: Forward, Inverse, the cached Transform plan and error metrics
//	tensor/: batched row-major Real and Complex storage
//
// The shtcheck command (cmd/shtcheck) runs round-trip diagnostics from the
// command line.
//
// Quick example:
//
//	tr, _ := sht.New(256, 512)             // Gauss grid, ortho, lmax = mmax = 256
//	coeffs, _ := tr.Forward(signal)        // (..., 256, 512) → (..., 256, 256)
//	back, _ := tr.Inverse(coeffs)          // equals signal up to rounding if signal is band-limited (l < 256)
//
// Tables and grids are immutable after construction and can be shared by
// any number of goroutines.
package harmonics
