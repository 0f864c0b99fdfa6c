// SPDX-License-Identifier: MIT

// Package tensor - Complex: batched row-major complex128 storage.
// Mirrors Real; spectra are shaped (..., lmax, mmax).

package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

const kindComplex = "Complex"

// Complex is a dense complex128 tensor of rank ≥ 2.
type Complex struct {
	shape []int
	data  []complex128
}

var _ fmt.Stringer = (*Complex)(nil)

// NewComplex creates a zero-filled Complex tensor with the given shape.
// Errors: ErrBadShape.
func NewComplex(shape ...int) (*Complex, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}

	return &Complex{shape: cloneShape(shape), data: make([]complex128, n)}, nil
}

// NewComplexFrom wraps data (row-major) as a tensor with the given shape,
// taking ownership of data.
// Errors: ErrBadShape, ErrDataLength.
func NewComplexFrom(data []complex128, shape ...int) (*Complex, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("len %d, want %d: %w", len(data), n, ErrDataLength)
	}

	return &Complex{shape: cloneShape(shape), data: data}, nil
}

// Shape returns a copy of the tensor dimensions.
func (t *Complex) Shape() []int { return cloneShape(t.shape) }

// Rank returns the number of dimensions.
func (t *Complex) Rank() int { return len(t.shape) }

// Len returns the total number of elements.
func (t *Complex) Len() int { return len(t.data) }

// Dims returns the trailing (rows, cols) plane dimensions.
func (t *Complex) Dims() (rows, cols int) {
	return t.shape[len(t.shape)-2], t.shape[len(t.shape)-1]
}

// Batch returns the number of rows×cols planes.
func (t *Complex) Batch() int { return batchOf(t.shape) }

// RawData returns the backing buffer.
func (t *Complex) RawData() []complex128 { return t.data }

// Plane returns the contiguous rows×cols block of batch element b (aliasing).
// Panics if b is out of range.
func (t *Complex) Plane(b int) []complex128 {
	rows, cols := t.Dims()
	sz := rows * cols

	return t.data[b*sz : (b+1)*sz : (b+1)*sz]
}

// At returns the value at idx or ErrOutOfRange.
func (t *Complex) At(idx ...int) (complex128, error) {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return 0, tensorErrorf(kindComplex, ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at idx; rejects NaN/Inf in either component.
func (t *Complex) Set(v complex128, idx ...int) error {
	off, err := offsetOf(t.shape, idx)
	if err != nil {
		return tensorErrorf(kindComplex, ctxSet, idx, err)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return tensorErrorf(kindComplex, ctxSet, idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (t *Complex) Clone() *Complex {
	cp := make([]complex128, len(t.data))
	copy(cp, t.data)

	return &Complex{shape: cloneShape(t.shape), data: cp}
}

// MaxAbs returns max |z| over all elements (0 for an all-zero tensor).
func (t *Complex) MaxAbs() float64 {
	m := 0.0
	for _, z := range t.data {
		m = math.Max(m, cmplx.Abs(z))
	}

	return m
}

// String renders every plane row by row. Intended for debugging only.
func (t *Complex) String() string {
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
