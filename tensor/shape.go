// SPDX-License-Identifier: MIT

// Package tensor - shape bookkeeping shared by Real and Complex.
//
// Purpose:
//   - Validate shapes once, at construction.
//   - Compute row-major offsets with the explicit formula
//     off = ((i0*d1 + i1)*d2 + i2)... for any rank.

package tensor

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// tensorErrorf wraps a sentinel with the method name and the offending index.
func tensorErrorf(kind, method string, idx []int, err error) error {
	return fmt.Errorf("%s.%s(%v): %w", kind, method, idx, err)
}

// numElements validates shape and returns the element count it implies.
// Implementation:
//   - Stage 1: require rank ≥ 2 (trailing rows×cols plane).
//   - Stage 2: require every dimension > 0 and accumulate the product.
//
// Complexity:
//   - Time O(rank), Space O(1).
func numElements(shape []int) (int, error) {
	if len(shape) < 2 {
		return 0, fmt.Errorf("rank %d < 2: %w", len(shape), ErrBadShape)
	}
	n := 1
	for axis, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("dim %d = %d: %w", axis, d, ErrBadShape)
		}
		n *= d
	}

	return n, nil
}

// offsetOf computes the row-major offset of idx within shape.
// Returns ErrOutOfRange when len(idx) != rank or any index is out of bounds.
func offsetOf(shape, idx []int) (int, error) {
	if len(idx) != len(shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= shape[axis] {
			return 0, ErrOutOfRange
		}
		off = off*shape[axis] + i
	}

	return off, nil
}

// cloneShape returns an independent copy of shape.
func cloneShape(shape []int) []int {
	cp := make([]int, len(shape))
	copy(cp, shape)

	return cp
}

// batchOf returns the product of all dimensions except the trailing two.
func batchOf(shape []int) int {
	b := 1
	for _, d := range shape[:len(shape)-2] {
		b *= d
	}

	return b
}

// BatchShape returns shape without its trailing two dimensions.
// The result is empty (not nil) for rank-2 shapes.
// Typical use: out shape = append(BatchShape(in), rows, cols).
func BatchShape(shape []int) []int {
	if len(shape) < 2 {
		return []int{}
	}

	return cloneShape(shape[:len(shape)-2])
}
