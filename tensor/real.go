// SPDX-License-Identifier: MIT

// Package tensor - Real: batched row-major float64 storage & safe accessors.
//
// Purpose:
//   - Hold signals shaped (..., nlat, nlon) in one contiguous buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose Plane(b) so hot loops can work on a batch element without copies.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

const kindReal = "Real"

// Real is a dense float64 tensor of rank ≥ 2.
//   - shape holds the dimensions, the trailing two form the rows×cols plane.
//   - data is a flat buffer of length prod(shape) in row-major order.
type Real struct {
	shape []int
	data  []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Real)(nil)

// NewReal creates a zero-filled Real tensor with the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rank ≥ 2 and positive dims; else ErrBadShape.
//   - Stage 2: allocate the zero-filled flat buffer.
//
// Complexity:
//   - Time O(N), Space O(N), N = prod(shape).
func NewReal(shape ...int) (*Real, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}

	return &Real{shape: cloneShape(shape), data: make([]float64, n)}, nil
}

// NewRealFrom wraps data (row-major) as a tensor with the given shape.
// The tensor takes ownership of data; later writes to data are visible
// through the tensor.
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrDataLength when len(data) != prod(shape).
func NewRealFrom(data []float64, shape ...int) (*Real, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("len %d, want %d: %w", len(data), n, ErrDataLength)
	}

	return &Real{shape: cloneShape(shape), data: data}, nil
}

// Shape returns a copy of the tensor dimensions.
func (t *Real) Shape() []int { return cloneShape(t.shape) }

// Rank returns the number of dimensions.
func (t *Real) Rank() int { return len(t.shape) }

// Len returns the total number of elements.
func (t *Real) Len() int { return len(t.data) }

// Dims returns the trailing (rows, cols) plane dimensions.
func (t *Real) Dims() (rows, cols int) {
	return t.shape[len(t.shape)-2], t.shape[len(t.shape)-1]
}

// Batch returns the number of rows×cols planes (product of leading dims).
func (t *Real) Batch() int { return batchOf(t.shape) }

// RawData returns the backing buffer. Mutations are visible in the tensor.
func (t *Real) RawData() []float64 { return t.data }

// Plane returns the contiguous rows×cols block of batch element b.
// The slice aliases the tensor storage. Plane panics if b is out of range,
// matching slice-indexing semantics for internal hot paths.
func (t *Real) Plane(b int) []float64 {
	rows, cols := t.Dims()
	sz := rows * cols

	return t.data[b*sz : (b+1)*sz : (b+1)*sz]
}

// At returns the value at idx or ErrOutOfRange.
// Complexity: O(rank).
func (t *Real) At(idx ...int) (float64, error) {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return 0, tensorErrorf(kindReal, ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at idx.
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf when v is NaN or ±Inf (finite-only policy).
func (t *Real) Set(v float64, idx ...int) error {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return tensorErrorf(kindReal, ctxSet, idx, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return tensorErrorf(kindReal, ctxSet, idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (t *Real) Clone() *Real {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Real{shape: cloneShape(t.shape), data: cp}
}

// String renders every plane row by row. Intended for debugging only.
func (t *Real) String() string {
	var sb strings.Builder
	rows, cols := t.Dims()
	for b := 0; b < t.Batch(); b++ {
		p := t.Plane(b)
		if t.Batch() > 1 {
			fmt.Fprintf(&sb, "batch %d:\n", b)
		}
		for i := 0; i < rows; i++ {
			sb.WriteString(_fmtRowOpen)
			for j := 0; j < cols; j++ {
				if j > 0 {
					sb.WriteString(_fmtSep)
				}
				fmt.Fprintf(&sb, "%g", p[i*cols+j])
			}
			sb.WriteString(_fmtRowClose)
		}
	}

	return sb.String()
}

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)
