// SPDX-License-Identifier: MIT
// Package legendre: sentinel error set.
// Build and the Table accessors return these sentinels wrapped with
// fmt.Errorf("ctx: %w", ...); callers match with errors.Is.

package legendre

import "errors"

var (
	// ErrInvalidTruncation is returned when the truncation violates
	// 1 ≤ mmax ≤ lmax ≤ nlat.
	ErrInvalidTruncation = errors.New("legendre: invalid truncation")

	// ErrInvalidTheta signals a NaN or ±Inf colatitude.
	ErrInvalidTheta = errors.New("legendre: invalid colatitude")

	// ErrUnknownNorm is returned for a normalization outside Ortho, FourPi, Schmidt.
	ErrUnknownNorm = errors.New("legendre: unknown normalization")

	// ErrOutOfRange indicates an (m, l, i) outside the stored upper triangle.
	ErrOutOfRange = errors.New("legendre: index out of range")
)
