// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped with
// call-site context); tests match them via errors.Is.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a shape has rank < 2 or a non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDataLength is returned when a backing slice does not hold exactly
	// the number of elements implied by the shape.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates that an index is outside valid bounds or that
	// the index count differs from the tensor rank.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNaNInf signals that a NaN or ±Inf value was written through Set.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)
