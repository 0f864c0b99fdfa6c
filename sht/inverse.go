// SPDX-License-Identifier: MIT

package sht

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/harmonics/legendre"
	"github.com/katalvlaran/harmonics/tensor"
)

// Inverse synthesizes a real signal from spectral coefficients.
// MAIN DESCRIPTION:
//   - F[..., i, m] = Σ_{l=m}^{lmax−1} P[m,l,i] · coeffs[..., l, m],
//     signal[..., i, :] = irfft(F[..., i, :]) without 1/nlon normalization.
//
// Implementation:
//   - Stage 1: validate (nil, trailing dims vs table, Nyquist limit).
//   - Stage 2: per order m, accumulate the latitude profile in order-major
//     buffers; only the upper triangle l ≥ m is read.
//   - Stage 3: per latitude, assemble the nlon/2+1 half spectrum (zero beyond
//     mmax), discard the imaginary part of the DC bin and of the Nyquist bin
//     for even nlon, then fourier.FFT.Sequence.
//
// Behavior highlights:
//   - Values stored in the lower triangle l < m are ignored.
//   - Imaginary parts at m = 0 do not reach the output.
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch, ErrInvalidTruncation.
//
// Complexity:
//   - Time O(B·(mmax·lmax·nlat + nlat·nlon·log nlon)), Space O(B·nlat·nlon + mmax·nlat).
func Inverse(coeffs *tensor.Complex, table *legendre.Table, nlon int, opts ...Option) (*tensor.Real, error) {
	if coeffs == nil || table == nil {
		return nil, ErrNilInput
	}
	lmax, mmax := coeffs.Dims()
	if lmax != table.LMax() || mmax != table.MMax() {
		return nil, fmt.Errorf("inverse: coeffs (%d, %d), table (%d, %d): %w",
			lmax, mmax, table.LMax(), table.MMax(), ErrShapeMismatch)
	}
	if err := checkNyquist(mmax, nlon); err != nil {
		return nil, err
	}

	nlat := table.NLat()
	out, err := tensor.NewReal(append(tensor.BatchShape(coeffs.Shape()), nlat, nlon)...)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	outer, inner := split(o.workers, coeffs.Batch())
	parallelFor(coeffs.Batch(), outer, func(start, end int) {
		k := newSynthesisKernel(table, nlon)
		for b := start; b < end; b++ {
			k.run(coeffs.Plane(b), out.Plane(b), inner)
		}
	})

	return out, nil
}

// synthesisKernel owns the scratch state of one goroutine.
type synthesisKernel struct {
	table    *legendre.Table
	nlon     int
	fft      *fourier.FFT
	coef     []complex128
	fre, fim []float64 // order-major: F[m*nlat+i]
}

func newSynthesisKernel(table *legendre.Table, nlon int) *synthesisKernel {
	n := table.MMax() * table.NLat()

	return &synthesisKernel{
		table: table,
		nlon:  nlon,
		fft:   fourier.NewFFT(nlon),
		coef:  make([]complex128, nlon/2+1),
		fre:   make([]float64, n),
		fim:   make([]float64, n),
	}
}

// run synthesizes one (lmax, mmax) plane into one (nlat, nlon) plane.
func (k *synthesisKernel) run(src []complex128, dst []float64, workers int) {
	nlat, mmax, lmax := k.table.NLat(), k.table.MMax(), k.table.LMax()

	parallelEach(mmax, workers, func(m int) {
		fre, fim := k.fre[m*nlat:(m+1)*nlat], k.fim[m*nlat:(m+1)*nlat]
		for i := range fre {
			fre[i], fim[i] = 0, 0
		}
		for l := m; l < lmax; l++ {
			c := src[l*mmax+m]
			cr, ci := real(c), imag(c)
			if cr == 0 && ci == 0 {
				continue
			}
			for i, p := range k.table.RawRow(m, l) {
				fre[i] += p * cr
				fim[i] += p * ci
			}
		}
	})

	nyquist := -1
	if k.nlon%2 == 0 {
		nyquist = k.nlon / 2
	}
	for i := 0; i < nlat; i++ {
		for m := range k.coef {
			if m >= mmax {
				k.coef[m] = 0
				continue
			}
			re, im := k.fre[m*nlat+i], k.fim[m*nlat+i]
			if m == 0 || m == nyquist {
				im = 0
			}
			k.coef[m] = complex(re, im)
		}
		k.fft.Sequence(dst[i*k.nlon:(i+1)*k.nlon], k.coef)
	}
}
