// SPDX-License-Identifier: MIT
// Package sht_test contains test helpers.
//
// Purpose:
//   - Build deterministic band-limited spectra that a plan can reproduce exactly.
//   - Keep fixtures seeded so failures are reproducible.

package sht_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/sht"
	"github.com/katalvlaran/harmonics/tensor"
)

// mustPlan builds a plan or fails the test.
func mustPlan(tb testing.TB, nlat, nlon int, opts ...sht.Option) *sht.Transform {
	tb.Helper()
	tr, err := sht.New(nlat, nlon, opts...)
	require.NoError(tb, err)

	return tr
}

// randomSpectrum fills (batch, lmax, mmax) with N(0,1) coefficients on the
// upper triangle l ≥ m. Bins that a real signal cannot carry are kept real:
// m = 0, and m = nlon/2 for even nlon.
func randomSpectrum(tb testing.TB, tr *sht.Transform, batch int, seed int64) *tensor.Complex {
	tb.Helper()
	lmax, mmax := tr.LMax(), tr.MMax()
	c, err := tensor.NewComplex(batch, lmax, mmax)
	require.NoError(tb, err)

	rng := rand.New(rand.NewSource(seed))
	for b := 0; b < batch; b++ {
		p := c.Plane(b)
		for l := 0; l < lmax; l++ {
			for m := 0; m <= l && m < mmax; m++ {
				re, im := rng.NormFloat64(), rng.NormFloat64()
				if m == 0 || (tr.NLon()%2 == 0 && m == tr.NLon()/2) {
					im = 0
				}
				p[l*mmax+m] = complex(re, im)
			}
		}
	}

	return c
}

// roundTrip applies Forward∘Inverse iters times starting from signal.
func roundTrip(tb testing.TB, tr *sht.Transform, signal *tensor.Real, iters int) *tensor.Real {
	tb.Helper()
	cur := signal
	for k := 0; k < iters; k++ {
		c, err := tr.Forward(cur)
		require.NoError(tb, err)
		cur, err = tr.Inverse(c)
		require.NoError(tb, err)
	}

	return cur
}
