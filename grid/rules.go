// SPDX-License-Identifier: MIT

// Package grid - quadrature rules.
//
// Each rule returns (theta, w) in any order; Build sorts by colatitude.
// Nodes are computed as x = cos θ and converted with math.Acos, except for
// the closed-form rules which are parameterized by θ directly.

package grid

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// newtonMaxIter bounds every Newton refinement loop.
	newtonMaxIter = 100

	// newtonTol is the absolute step size at which a node is considered converged.
	newtonTol = 1e-15
)

// legendreP evaluates P_n(x) and P_{n-1}(x) with the three-term recurrence
// (k+1)P_{k+1} = (2k+1)xP_k − kP_{k−1}. Requires n ≥ 1.
func legendreP(n int, x float64) (pn, pn1 float64) {
	p0, p1 := 1.0, x
	for k := 1; k < n; k++ {
		p0, p1 = p1, (float64(2*k+1)*x*p1-float64(k)*p0)/float64(k+1)
	}

	return p1, p0
}

// legendreGauss returns Gauss–Legendre colatitudes and weights.
// Implementation:
//   - Stage 1: seed nodes/weights from gonum's quad.Legendre.
//   - Stage 2: polish every node with Newton steps on P_n and recompute the
//     weight as 2(1−x²)/(n·P_{n−1}(x))², which keeps 2n−1 exactness at
//     machine precision for large n.
func legendreGauss(n int) (theta, w []float64) {
	x := make([]float64, n)
	w = make([]float64, n)
	if n == 1 {
		x[0], w[0] = 0, 2
	} else {
		quad.Legendre{}.FixedLocations(x, w, -1, 1)
		for i := range x {
			x[i], w[i] = polishGaussNode(n, x[i])
		}
	}

	theta = make([]float64, n)
	for i := range x {
		theta[i] = math.Acos(x[i])
	}

	return theta, w
}

// polishGaussNode refines a root of P_n starting at x and returns it with its weight.
func polishGaussNode(n int, x float64) (float64, float64) {
	nf := float64(n)
	for it := 0; it < newtonMaxIter; it++ {
		pn, pn1 := legendreP(n, x)
		dp := nf * (x*pn - pn1) / (x*x - 1)
		dx := pn / dp
		x -= dx
		if math.Abs(dx) <= newtonTol {
			break
		}
	}
	_, pn1 := legendreP(n, x)
	w := 2 * (1 - x*x) / (nf * nf * pn1 * pn1)

	return x, w
}

// lobatto returns Gauss–Lobatto–Legendre colatitudes and weights.
// Implementation:
//   - Stage 1: start from the Chebyshev–Gauss–Lobatto nodes cos(kπ/N), N = n−1.
//   - Stage 2: Newton iteration x ← x − (x·P_N − P_{N−1})/(n·P_N); the poles
//     are fixed points.
//   - Stage 3: weights 2/(N·n·P_N(x)²).
func lobatto(n int) (theta, w []float64) {
	N := n - 1
	x := make([]float64, n)
	for k := range x {
		x[k] = math.Cos(math.Pi * float64(k) / float64(N))
	}
	for k := range x {
		for it := 0; it < newtonMaxIter; it++ {
			pN, pN1 := legendreP(N, x[k])
			dx := (x[k]*pN - pN1) / (float64(n) * pN)
			x[k] -= dx
			if math.Abs(dx) <= newtonTol {
				break
			}
		}
	}

	theta = make([]float64, n)
	w = make([]float64, n)
	for k := range x {
		pN, _ := legendreP(N, x[k])
		w[k] = 2 / (float64(N*n) * pN * pN)
		theta[k] = math.Acos(math.Max(-1, math.Min(1, x[k])))
	}
	// Pin the poles exactly; Newton leaves them untouched but Acos(±1) must be 0/π.
	theta[0], theta[N] = 0, math.Pi

	return theta, w
}

// fejer returns the equiangular midpoint grid with Fejér's first-rule weights:
//
//	θ_i = (2i+1)π/(2n)
//	w_i = (2/n)·[1 − 2·Σ_{j=1}^{⌊n/2⌋} cos(2jθ_i)/(4j²−1)]
//
// The rule integrates polynomials in cos θ of degree ≤ n−1 exactly and all
// weights are positive.
func fejer(n int) (theta, w []float64) {
	theta = make([]float64, n)
	w = make([]float64, n)
	for i := range theta {
		t := float64(2*i+1) * math.Pi / float64(2*n)
		s := 0.0
		for j := 1; j <= n/2; j++ {
			s += math.Cos(float64(2*j)*t) / float64(4*j*j-1)
		}
		theta[i] = t
		w[i] = 2 / float64(n) * (1 - 2*s)
	}

	return theta, w
}

// clenshawCurtis returns the pole-including equiangular grid θ_k = kπ/N,
// N = n−1, with Clenshaw–Curtis weights
//
//	w_k = (c_k/N)·[1 − Σ_{j=1}^{⌊N/2⌋} b_j·cos(2jθ_k)/(4j²−1)]
//
// where c_0 = c_N = 1, c_k = 2 otherwise, b_j = 1 for j = N/2 and 2 otherwise.
func clenshawCurtis(n int) (theta, w []float64) {
	N := n - 1
	theta = make([]float64, n)
	w = make([]float64, n)
	for k := range theta {
		t := math.Pi * float64(k) / float64(N)
		s := 0.0
		for j := 1; j <= N/2; j++ {
			b := 2.0
			if 2*j == N {
				b = 1
			}
			s += b * math.Cos(float64(2*j)*t) / float64(4*j*j-1)
		}
		c := 2.0
		if k == 0 || k == N {
			c = 1
		}
		theta[k] = t
		w[k] = c / float64(N) * (1 - s)
	}

	return theta, w
}
