// SPDX-License-Identifier: MIT

// Package sht: functional configuration for transforms and plans.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Forward/Inverse only consult the worker budget; the remaining options
//     configure New.

package sht

import (
	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/legendre"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultGrid is the Gauss–Legendre rule (exact round trips for lmax ≤ nlat).
	DefaultGrid = grid.LegendreGauss

	// DefaultNorm is the orthonormal convention.
	DefaultNorm = legendre.Ortho

	// DefaultWorkers of 0 means GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultCondonShortley includes the (−1)^m phase.
	DefaultCondonShortley = true
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid = "sht: WithWorkers: n must be >= 0"
	panicLMaxInvalid    = "sht: WithLMax: lmax must be >= 1"
	panicMMaxInvalid    = "sht: WithMMax: mmax must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	kind    grid.Kind
	norm    legendre.Norm
	lmax    int // 0 ⇒ grid.MaxDegree()
	mmax    int // 0 ⇒ min(lmax, nlon/2+1)
	workers int
	csPhase bool
}

// WithGrid selects the latitude quadrature rule used by New.
func WithGrid(k grid.Kind) Option {
	return func(o *Options) { o.kind = k }
}

// WithNorm selects the normalization convention used by New.
func WithNorm(n legendre.Norm) Option {
	return func(o *Options) { o.norm = n }
}

// WithLMax sets the degree truncation. Panics when lmax < 1.
func WithLMax(lmax int) Option {
	if lmax < 1 {
		panic(panicLMaxInvalid)
	}

	return func(o *Options) { o.lmax = lmax }
}

// WithMMax sets the order truncation. Panics when mmax < 1.
func WithMMax(mmax int) Option {
	if mmax < 1 {
		panic(panicMMaxInvalid)
	}

	return func(o *Options) { o.mmax = mmax }
}

// WithWorkers bounds the goroutines used per call (and for table
// construction in New). 0 selects GOMAXPROCS, 1 runs sequentially.
// Results are bit-identical for every worker count. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithCondonShortley toggles the (−1)^m phase of the table built by New.
func WithCondonShortley(on bool) Option {
	return func(o *Options) { o.csPhase = on }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		kind:    DefaultGrid,
		norm:    DefaultNorm,
		workers: DefaultWorkers,
		csPhase: DefaultCondonShortley,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
