// SPDX-License-Identifier: MIT

package sht

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/harmonics/legendre"
	"github.com/katalvlaran/harmonics/tensor"
)

// Forward computes spectral coefficients of a real signal (analysis).
// MAIN DESCRIPTION:
//   - coeffs[..., l, m] = a_l · Σ_i w_i · P[m,l,i] · F[..., i, m],
//     F = (2π/nlon)·DFT_lon(signal), a_l = norm.AnalysisScale(l).
//
// Implementation:
//   - Stage 1: validate inputs (nil, norm vs table, nlat, weight count and
//     values, Nyquist).
//   - Stage 2: per batch element, real FFT of every latitude row with gonum's
//     fourier.FFT; keep orders m < mmax.
//   - Stage 3: per order m, contract over latitude for l ∈ [m, lmax).
//
// Behavior highlights:
//   - Entries with l < m are zero.
//   - Pure: the table and weights are only read.
//
// Inputs:
//   - signal:  (..., nlat, nlon) with nlat == table.NLat().
//   - table:   synthesis table; its MMax/LMax set the output shape.
//   - weights: quadrature weights on [-1, 1], len == nlat, finite and > 0
//     (as returned by grid.Build).
//   - norm:    must equal table.Norm().
//
// Errors:
//   - ErrNilInput, ErrNormMismatch, ErrShapeMismatch, ErrInvalidWeights,
//     ErrInvalidTruncation.
//
// Complexity:
//   - Time O(B·(nlat·nlon·log nlon + mmax·lmax·nlat)), Space O(B·lmax·mmax + mmax·nlat).
func Forward(signal *tensor.Real, table *legendre.Table, weights []float64, norm legendre.Norm, opts ...Option) (*tensor.Complex, error) {
	if signal == nil || table == nil {
		return nil, ErrNilInput
	}
	if norm != table.Norm() {
		return nil, fmt.Errorf("forward: norm %v, table %v: %w", norm, table.Norm(), ErrNormMismatch)
	}
	nlat, nlon := signal.Dims()
	if nlat != table.NLat() {
		return nil, fmt.Errorf("forward: signal nlat=%d, table nlat=%d: %w", nlat, table.NLat(), ErrShapeMismatch)
	}
	if len(weights) != nlat {
		return nil, fmt.Errorf("forward: %d weights for nlat=%d: %w", len(weights), nlat, ErrShapeMismatch)
	}
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("forward: weights[%d]=%v: %w", i, w, ErrInvalidWeights)
		}
	}
	if err := checkNyquist(table.MMax(), nlon); err != nil {
		return nil, err
	}

	lmax, mmax := table.LMax(), table.MMax()
	out, err := tensor.NewComplex(append(tensor.BatchShape(signal.Shape()), lmax, mmax)...)
	if err != nil {
		return nil, err
	}

	analysis := make([]float64, lmax)
	for l := range analysis {
		analysis[l] = norm.AnalysisScale(l)
	}

	o := gatherOptions(opts...)
	outer, inner := split(o.workers, signal.Batch())
	parallelFor(signal.Batch(), outer, func(start, end int) {
		k := newAnalysisKernel(table, weights, analysis, nlon)
		for b := start; b < end; b++ {
			k.run(signal.Plane(b), out.Plane(b), inner)
		}
	})

	return out, nil
}

// checkNyquist enforces mmax ≤ nlon/2+1.
func checkNyquist(mmax, nlon int) error {
	if nlon < 1 || mmax > nlon/2+1 {
		return fmt.Errorf("mmax=%d exceeds nlon/2+1 for nlon=%d: %w", mmax, nlon, ErrInvalidTruncation)
	}

	return nil
}

// analysisKernel owns the scratch state of one goroutine.
// fourier.FFT keeps internal work buffers, so a kernel is never shared.
type analysisKernel struct {
	table    *legendre.Table
	weights  []float64
	analysis []float64
	nlon     int
	fft      *fourier.FFT
	coef     []complex128 // nlon/2+1 half spectrum of one latitude row
	fre, fim []float64    // order-major: F[m*nlat+i]
}

func newAnalysisKernel(table *legendre.Table, weights, analysis []float64, nlon int) *analysisKernel {
	n := table.MMax() * table.NLat()

	return &analysisKernel{
		table:    table,
		weights:  weights,
		analysis: analysis,
		nlon:     nlon,
		fft:      fourier.NewFFT(nlon),
		coef:     make([]complex128, nlon/2+1),
		fre:      make([]float64, n),
		fim:      make([]float64, n),
	}
}

// run transforms one (nlat, nlon) plane into one (lmax, mmax) plane.
func (k *analysisKernel) run(src []float64, dst []complex128, workers int) {
	nlat, mmax, lmax := k.table.NLat(), k.table.MMax(), k.table.LMax()
	scale := 2 * math.Pi / float64(k.nlon)

	for i := 0; i < nlat; i++ {
		k.fft.Coefficients(k.coef, src[i*k.nlon:(i+1)*k.nlon])
		for m := 0; m < mmax; m++ {
			k.fre[m*nlat+i] = scale * real(k.coef[m])
			k.fim[m*nlat+i] = scale * imag(k.coef[m])
		}
	}

	parallelEach(mmax, workers, func(m int) {
		fre, fim := k.fre[m*nlat:(m+1)*nlat], k.fim[m*nlat:(m+1)*nlat]
		for l := m; l < lmax; l++ {
			row := k.table.RawRow(m, l)
			var re, im float64
			for i, p := range row {
				wp := k.weights[i] * p
				re += wp * fre[i]
				im += wp * fim[i]
			}
			a := k.analysis[l]
			dst[l*mmax+m] = complex(a*re, a*im)
		}
	})
}
