// SPDX-License-Identifier: MIT

package sht

import (
	"fmt"

	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/legendre"
	"github.com/katalvlaran/harmonics/tensor"
)

// Transform is a cached transform plan: a quadrature grid and a Legendre
// table built once for fixed (nlat, nlon, lmax, mmax, norm).
// All fields are immutable after New; Forward and Inverse may be called
// concurrently from any number of goroutines.
type Transform struct {
	nlon    int
	workers int
	grid    *grid.Grid
	weights []float64
	table   *legendre.Table
}

// New builds a transform plan for signals of shape (..., nlat, nlon).
// MAIN DESCRIPTION:
//   - Resolves the truncation (defaults lmax = grid.MaxDegree(),
//     mmax = min(lmax, nlon/2+1)), builds the grid and the table.
//
// Errors:
//   - ErrInvalidGridSpec: nlon < 1, nlat too small for the rule, unknown kind.
//   - ErrInvalidTruncation: lmax above grid.MaxDegree(), mmax > lmax,
//     mmax above the longitude Nyquist limit.
//   - legendre.ErrUnknownNorm: unknown normalization.
func New(nlat, nlon int, opts ...Option) (*Transform, error) {
	o := gatherOptions(opts...)
	if nlon < 1 {
		return nil, fmt.Errorf("sht.New: nlon=%d < 1: %w", nlon, ErrInvalidGridSpec)
	}
	g, err := grid.Build(o.kind, nlat)
	if err != nil {
		return nil, fmt.Errorf("sht.New: %w", err)
	}

	lmax := o.lmax
	if lmax == 0 {
		lmax = g.MaxDegree()
	}
	if lmax > g.MaxDegree() {
		return nil, fmt.Errorf("sht.New: lmax=%d > %v max degree %d: %w",
			lmax, g.Kind(), g.MaxDegree(), ErrInvalidTruncation)
	}
	mmax := o.mmax
	if mmax == 0 {
		mmax = min(lmax, nlon/2+1)
	}
	if err = checkNyquist(mmax, nlon); err != nil {
		return nil, fmt.Errorf("sht.New: %w", err)
	}

	tab, err := legendre.Build(mmax, lmax, g.Theta(), o.norm,
		legendre.WithCondonShortley(o.csPhase),
		legendre.WithWorkers(o.workers),
	)
	if err != nil {
		return nil, fmt.Errorf("sht.New: %w", err)
	}

	return &Transform{
		nlon:    nlon,
		workers: o.workers,
		grid:    g,
		weights: g.Weights(),
		table:   tab,
	}, nil
}

// Forward runs the analysis transform on signal (..., NLat, NLon).
func (t *Transform) Forward(signal *tensor.Real) (*tensor.Complex, error) {
	if signal != nil {
		if _, nlon := signal.Dims(); nlon != t.nlon {
			return nil, fmt.Errorf("Transform.Forward: nlon=%d, plan nlon=%d: %w", nlon, t.nlon, ErrShapeMismatch)
		}
	}

	return Forward(signal, t.table, t.weights, t.table.Norm(), WithWorkers(t.workers))
}

// Inverse runs the synthesis transform on coeffs (..., LMax, MMax).
func (t *Transform) Inverse(coeffs *tensor.Complex) (*tensor.Real, error) {
	return Inverse(coeffs, t.table, t.nlon, WithWorkers(t.workers))
}

// NLat returns the number of colatitudes.
func (t *Transform) NLat() int { return t.grid.NLat() }

// NLon returns the number of longitudes.
func (t *Transform) NLon() int { return t.nlon }

// LMax returns the degree truncation.
func (t *Transform) LMax() int { return t.table.LMax() }

// MMax returns the order truncation.
func (t *Transform) MMax() int { return t.table.MMax() }

// Norm returns the normalization convention.
func (t *Transform) Norm() legendre.Norm { return t.table.Norm() }

// Grid returns the quadrature grid.
func (t *Transform) Grid() *grid.Grid { return t.grid }

// Table returns the Legendre table. It is shared and must not be modified.
func (t *Transform) Table() *legendre.Table { return t.table }

// Weights returns a copy of the quadrature weights.
func (t *Transform) Weights() []float64 {
	w := make([]float64, len(t.weights))
	copy(w, t.weights)

	return w
}

// String implements fmt.Stringer.
func (t *Transform) String() string {
	return fmt.Sprintf("sht.Transform{grid=%v nlat=%d nlon=%d lmax=%d mmax=%d norm=%v}",
		t.grid.Kind(), t.NLat(), t.nlon, t.LMax(), t.MMax(), t.Norm())
}
