// SPDX-License-Identifier: MIT
// Package sht: sentinel error set.
// Shape and truncation checks run before any computation; a failing call
// never returns a partially filled tensor.

package sht

import (
	"errors"

	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/legendre"
)

var (
	// ErrShapeMismatch indicates tensor trailing dimensions (or weight length)
	// inconsistent with nlat/nlon/lmax/mmax.
	ErrShapeMismatch = errors.New("sht: shape mismatch")

	// ErrNormMismatch is returned when the requested normalization differs
	// from the one the table was built with.
	ErrNormMismatch = errors.New("sht: normalization mismatch")

	// ErrNilInput indicates a nil tensor or table.
	ErrNilInput = errors.New("sht: nil input")

	// ErrInvalidWeights indicates a quadrature weight that is not finite and
	// strictly positive.
	ErrInvalidWeights = errors.New("sht: invalid quadrature weights")
)

// Re-exported sentinels so callers of this package can match the whole
// taxonomy without importing grid and legendre.
var (
	// ErrInvalidGridSpec aliases grid.ErrInvalidGridSpec.
	ErrInvalidGridSpec = grid.ErrInvalidGridSpec

	// ErrInvalidTruncation aliases legendre.ErrInvalidTruncation; it is also
	// returned when mmax exceeds the longitude Nyquist limit nlon/2+1.
	ErrInvalidTruncation = legendre.ErrInvalidTruncation
)
