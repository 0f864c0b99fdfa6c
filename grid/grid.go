// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is an immutable latitude sampling with quadrature weights.
// Theta is ascending (north pole first); Weights[i] belongs to Theta[i].
// A Grid is safe for concurrent use.
type Grid struct {
	kind    Kind
	theta   []float64
	weights []float64
}

// Build computes the colatitudes and quadrature weights of the given rule.
// MAIN DESCRIPTION:
//   - Dispatch to the rule, then order nodes by ascending colatitude.
//
// Implementation:
//   - Stage 1: validate kind and nlat against the rule minimum.
//   - Stage 2: compute nodes x_i = cos θ_i and weights on [-1, 1].
//   - Stage 3: sort by θ ascending, carrying weights along.
//
// Errors:
//   - ErrInvalidGridSpec for unknown kinds or too few latitudes.
//
// Complexity:
//   - LegendreGauss/Lobatto: O(nlat²) (Newton on the three-term recurrence).
//   - Equiangular/ClenshawCurtis: O(nlat²) (closed-form cosine sums).
func Build(kind Kind, nlat int) (*Grid, error) {
	minN := kind.minNLat()
	if minN == 0 {
		return nil, fmt.Errorf("kind %v: %w", kind, ErrInvalidGridSpec)
	}
	if nlat < minN {
		return nil, fmt.Errorf("%v: nlat=%d < %d: %w", kind, nlat, minN, ErrInvalidGridSpec)
	}

	var theta, w []float64
	switch kind {
	case LegendreGauss:
		theta, w = legendreGauss(nlat)
	case Equiangular:
		theta, w = fejer(nlat)
	case Lobatto:
		theta, w = lobatto(nlat)
	case ClenshawCurtis:
		theta, w = clenshawCurtis(nlat)
	}

	// Argsort reorders theta in place; permute the weights to match.
	inds := make([]int, nlat)
	floats.Argsort(theta, inds)
	sorted := make([]float64, nlat)
	for i, j := range inds {
		sorted[i] = w[j]
	}

	return &Grid{kind: kind, theta: theta, weights: sorted}, nil
}

// Kind returns the quadrature rule.
func (g *Grid) Kind() Kind { return g.kind }

// NLat returns the number of latitude samples.
func (g *Grid) NLat() int { return len(g.theta) }

// Theta returns a copy of the colatitudes in radians, ascending in [0, π].
func (g *Grid) Theta() []float64 {
	cp := make([]float64, len(g.theta))
	copy(cp, g.theta)

	return cp
}

// Weights returns a copy of the quadrature weights (measure dx on [-1, 1]).
func (g *Grid) Weights() []float64 {
	cp := make([]float64, len(g.weights))
	copy(cp, g.weights)

	return cp
}

// CosTheta returns x_i = cos θ_i.
func (g *Grid) CosTheta() []float64 {
	x := make([]float64, len(g.theta))
	for i, t := range g.theta {
		x[i] = math.Cos(t)
	}

	return x
}

// MaxDegree returns the default lmax for this grid: nlat for every rule
// except Lobatto, which loses one degree to the poles.
// Round trips at this truncation are exact only for LegendreGauss and
// Lobatto; Equiangular and ClenshawCurtis integrate exactly up to degree
// nlat−1 and need lmax ≤ nlat/2.
func (g *Grid) MaxDegree() int {
	if g.kind == Lobatto {
		return len(g.theta) - 1
	}

	return len(g.theta)
}

// Longitudes returns the equispaced longitudes φ_j = 2πj/nlon, j < nlon.
// Errors: ErrInvalidGridSpec when nlon < 1.
func Longitudes(nlon int) ([]float64, error) {
	if nlon < 1 {
		return nil, fmt.Errorf("nlon=%d: %w", nlon, ErrInvalidGridSpec)
	}
	phi := make([]float64, nlon)
	for j := range phi {
		phi[j] = 2 * math.Pi * float64(j) / float64(nlon)
	}

	return phi, nil
}
