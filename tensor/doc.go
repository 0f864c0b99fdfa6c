// SPDX-License-Identifier: MIT

// Package tensor provides the dense batched containers exchanged by the
// spherical harmonic transforms.
//
// Two concrete types are offered:
//
//   - Real: float64 values shaped (..., rows, cols); signals on a
//     latitude/longitude grid use (..., nlat, nlon).
//   - Complex: complex128 values shaped (..., rows, cols); spectra use
//     (..., lmax, mmax).
//
// Both store their elements in one flat row-major buffer. Every dimension
// before the trailing two is a batch dimension; Plane(b) returns the
// contiguous rows×cols block of batch element b without copying.
//
// The public surface never panics on user input: At/Set return ErrOutOfRange
// or ErrNaNInf, constructors return ErrBadShape or ErrDataLength.
//
// Complexity quicksheet:
//   - NewReal/NewComplex: O(N) zero-init; At/Set: O(rank); Clone: O(N); Plane: O(1).
package tensor
