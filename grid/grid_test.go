// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/harmonics/grid"
)

var allKinds = []grid.Kind{grid.LegendreGauss, grid.Equiangular, grid.Lobatto, grid.ClenshawCurtis}

// exactDegree returns the highest monomial degree each rule integrates exactly.
func exactDegree(k grid.Kind, n int) int {
	switch k {
	case grid.LegendreGauss:
		return 2*n - 1
	case grid.Lobatto:
		return 2*n - 3
	default:
		return n - 1
	}
}

// TestBuild_InvalidSpec covers unknown kinds and too few latitudes.
func TestBuild_InvalidSpec(t *testing.T) {
	_, err := grid.ParseKind("unknown")
	assert.ErrorIs(t, err, grid.ErrInvalidGridSpec, "unknown name")

	_, err = grid.Build(grid.Kind(42), 10)
	assert.ErrorIs(t, err, grid.ErrInvalidGridSpec, "unknown kind")

	for _, k := range allKinds {
		_, err = grid.Build(k, 0)
		assert.ErrorIs(t, err, grid.ErrInvalidGridSpec, "%v nlat=0", k)
	}
	_, err = grid.Build(grid.Lobatto, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidGridSpec, "lobatto needs both poles")
	_, err = grid.Build(grid.ClenshawCurtis, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidGridSpec, "clenshaw-curtis needs both poles")

	_, err = grid.Longitudes(0)
	assert.ErrorIs(t, err, grid.ErrInvalidGridSpec)
}

// TestParseKind_RoundTrip checks wire names.
func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range allKinds {
		got, err := grid.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "legendre-gauss", grid.LegendreGauss.String())
	assert.Equal(t, "Kind(9)", grid.Kind(9).String())
}

// TestBuild_WeightsAndOrdering verifies positivity, total mass 2 and θ ordering.
func TestBuild_WeightsAndOrdering(t *testing.T) {
	for _, k := range allKinds {
		for _, n := range []int{2, 3, 7, 16, 65, 256} {
			g, err := grid.Build(k, n)
			require.NoError(t, err, "%v n=%d", k, n)
			require.Equal(t, n, g.NLat())

			theta, w := g.Theta(), g.Weights()
			require.Len(t, w, n)
			assert.InDelta(t, 2.0, floats.Sum(w), 1e-12, "%v n=%d weight sum", k, n)
			for i := range w {
				assert.Greater(t, w[i], 0.0, "%v n=%d weight %d", k, n, i)
				assert.GreaterOrEqual(t, theta[i], 0.0)
				assert.LessOrEqual(t, theta[i], math.Pi)
				if i > 0 {
					assert.Greater(t, theta[i], theta[i-1], "%v n=%d theta ascending", k, n)
				}
			}
			// Symmetric rules: w_i == w_{n-1-i}, θ_i + θ_{n-1-i} == π.
			for i := 0; i < n/2; i++ {
				assert.InDelta(t, w[i], w[n-1-i], 1e-13)
				assert.InDelta(t, math.Pi, theta[i]+theta[n-1-i], 1e-13)
			}
		}
	}
}

// TestBuild_Exactness integrates monomials x^d, d ≤ exactDegree, against
// ∫_{-1}^{1} x^d dx.
func TestBuild_Exactness(t *testing.T) {
	const n = 16
	for _, k := range allKinds {
		g, err := grid.Build(k, n)
		require.NoError(t, err)
		x, w := g.CosTheta(), g.Weights()
		for d := 0; d <= exactDegree(k, n); d++ {
			want := 0.0
			if d%2 == 0 {
				want = 2 / float64(d+1)
			}
			got := 0.0
			for i := range x {
				got += w[i] * math.Pow(x[i], float64(d))
			}
			assert.InDelta(t, want, got, 1e-13, "%v degree %d", k, d)
		}
	}
}

// TestBuild_Poles checks which rules sample the poles.
func TestBuild_Poles(t *testing.T) {
	for _, k := range []grid.Kind{grid.Lobatto, grid.ClenshawCurtis} {
		g, err := grid.Build(k, 9)
		require.NoError(t, err)
		theta := g.Theta()
		assert.Equal(t, 0.0, theta[0], "%v north pole", k)
		assert.Equal(t, math.Pi, theta[len(theta)-1], "%v south pole", k)
	}

	g, err := grid.Build(grid.Equiangular, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Pi / 8, 3 * math.Pi / 8, 5 * math.Pi / 8, 7 * math.Pi / 8}, g.Theta(), 1e-15)
}

// TestBuild_SinglePoint checks the degenerate one-latitude rules.
func TestBuild_SinglePoint(t *testing.T) {
	for _, k := range []grid.Kind{grid.LegendreGauss, grid.Equiangular} {
		g, err := grid.Build(k, 1)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, g.Theta()[0], 1e-15)
		assert.InDelta(t, 2.0, g.Weights()[0], 1e-15)
	}
}

// TestMaxDegree and copy semantics.
func TestMaxDegree(t *testing.T) {
	g, err := grid.Build(grid.Lobatto, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, g.MaxDegree())
	assert.Equal(t, grid.Lobatto, g.Kind())

	g, err = grid.Build(grid.LegendreGauss, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, g.MaxDegree())

	w := g.Weights()
	w[0] = -1
	assert.Greater(t, g.Weights()[0], 0.0, "Weights returns a copy")
}

// TestLongitudes checks spacing.
func TestLongitudes(t *testing.T) {
	phi, err := grid.Longitudes(4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}, phi, 1e-15)
}
