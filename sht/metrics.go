// SPDX-License-Identifier: MIT

package sht

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/harmonics/tensor"
)

// RelativeError returns the mean over batch elements of ‖got_b − ref_b‖_F / ‖ref_b‖_F.
// A batch element whose reference is all zeros contributes its absolute error.
// Errors: ErrNilInput, ErrShapeMismatch when the shapes differ.
func RelativeError(got, ref *tensor.Real) (float64, error) {
	if got == nil || ref == nil {
		return 0, ErrNilInput
	}
	if !slices.Equal(got.Shape(), ref.Shape()) {
		return 0, fmt.Errorf("RelativeError: %v vs %v: %w", got.Shape(), ref.Shape(), ErrShapeMismatch)
	}

	sum := 0.0
	for b := 0; b < ref.Batch(); b++ {
		g, r := got.Plane(b), ref.Plane(b)
		d := floats.Distance(g, r, 2)
		if n := floats.Norm(r, 2); n > 0 {
			d /= n
		}
		sum += d
	}

	return sum / float64(ref.Batch()), nil
}

// SpectralRelativeError is RelativeError for coefficient tensors.
func SpectralRelativeError(got, ref *tensor.Complex) (float64, error) {
	if got == nil || ref == nil {
		return 0, ErrNilInput
	}
	if !slices.Equal(got.Shape(), ref.Shape()) {
		return 0, fmt.Errorf("SpectralRelativeError: %v vs %v: %w", got.Shape(), ref.Shape(), ErrShapeMismatch)
	}

	sum := 0.0
	for b := 0; b < ref.Batch(); b++ {
		g, r := got.Plane(b), ref.Plane(b)
		d := cmplxs.Distance(g, r, 2)
		if n := cmplxs.Norm(r, 2); n > 0 {
			d /= n
		}
		sum += d
	}

	return sum / float64(ref.Batch()), nil
}
