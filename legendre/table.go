// SPDX-License-Identifier: MIT

package legendre

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Table holds s_l·P̄_l^m(cos θ_i) for m < mmax, m ≤ l < lmax, i < nlat.
//   - Storage is one flat buffer; the block of order m starts at offsets[m]
//     and holds (lmax−m) rows of nlat values, degree-major.
//   - A Table is never mutated after Build returns.
type Table struct {
	mmax, lmax, nlat int
	norm             Norm
	csPhase          bool
	offsets          []int     // len mmax; start of each order block in data
	data             []float64 // len Σ_m (lmax−m)·nlat
}

// Build computes the associated Legendre table on the colatitudes theta.
// MAIN DESCRIPTION:
//   - Evaluate s_l·P̄_l^m(x), x = cos θ, for the upper triangle m ≤ l.
//
// Implementation:
//   - Stage 1: validate norm, truncation (1 ≤ mmax ≤ lmax ≤ nlat) and θ.
//   - Stage 2: sweep the diagonal sequentially:
//     P̄_0^0 = 1/sqrt(4π),
//     P̄_m^m = −sqrt(1−x²)·sqrt((2m+1)/(2m))·P̄_{m−1}^{m−1}.
//   - Stage 3: one independent chain per order m, in parallel:
//     P̄_{m+1}^m = sqrt(2m+3)·x·P̄_m^m,
//     P̄_l^m = a_lm·(x·P̄_{l−1}^m − b_lm·P̄_{l−2}^m),
//     a_lm = sqrt((4l²−1)/(l²−m²)), b_lm = sqrt(((l−1)²−m²)/(4(l−1)²−1)).
//   - Stage 4: every stored row is multiplied by norm.DegreeScale(l).
//
// Behavior highlights:
//   - sqrt(1−x²) is evaluated as sqrt(max(0, (1−x)(1+x))).
//   - The chain for order m only reads the diagonal entry of order m, so the
//     result does not depend on scheduling.
//
// Errors:
//   - ErrUnknownNorm, ErrInvalidTruncation, ErrInvalidTheta.
//
// Complexity:
//   - Time O(mmax·lmax·nlat), Space O(mmax·lmax·nlat).
func Build(mmax, lmax int, theta []float64, norm Norm, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	nlat := len(theta)

	// Stage 1: validate.
	if !norm.Valid() {
		return nil, fmt.Errorf("norm %v: %w", norm, ErrUnknownNorm)
	}
	if err := validateTruncation(mmax, lmax, nlat); err != nil {
		return nil, err
	}
	x := make([]float64, nlat)
	s := make([]float64, nlat)
	for i, t := range theta {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("theta[%d]=%v: %w", i, t, ErrInvalidTheta)
		}
		x[i] = math.Cos(t)
		s[i] = math.Sqrt(math.Max(0, (1-x[i])*(1+x[i])))
	}

	tab := &Table{
		mmax:    mmax,
		lmax:    lmax,
		nlat:    nlat,
		norm:    norm,
		csPhase: o.csPhase,
		offsets: make([]int, mmax),
	}
	size := 0
	for m := 0; m < mmax; m++ {
		tab.offsets[m] = size
		size += (lmax - m) * nlat
	}
	tab.data = make([]float64, size)

	// Stage 2: diagonal sweep (inherently sequential in m).
	diag := make([]float64, mmax*nlat)
	seed := 1 / math.Sqrt(4*math.Pi)
	for i := 0; i < nlat; i++ {
		diag[i] = seed
	}
	sign := 1.0
	if o.csPhase {
		sign = -1
	}
	for m := 1; m < mmax; m++ {
		c := sign * math.Sqrt(float64(2*m+1)/float64(2*m))
		prev, cur := diag[(m-1)*nlat:m*nlat], diag[m*nlat:(m+1)*nlat]
		for i := range cur {
			cur[i] = c * s[i] * prev[i]
		}
	}

	// Stage 3: independent degree chains.
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for m := 0; m < mmax; m++ {
		m := m
		g.Go(func() error {
			tab.fillOrder(m, x, diag[m*nlat:(m+1)*nlat])
			return nil
		})
	}
	_ = g.Wait() // chains never fail

	return tab, nil
}

// validateTruncation enforces 1 ≤ mmax ≤ lmax ≤ nlat.
func validateTruncation(mmax, lmax, nlat int) error {
	switch {
	case mmax < 1:
		return fmt.Errorf("mmax=%d < 1: %w", mmax, ErrInvalidTruncation)
	case mmax > lmax:
		return fmt.Errorf("mmax=%d > lmax=%d: %w", mmax, lmax, ErrInvalidTruncation)
	case lmax > nlat:
		return fmt.Errorf("lmax=%d > nlat=%d: %w", lmax, nlat, ErrInvalidTruncation)
	}

	return nil
}

// fillOrder runs the degree recurrence for one order and writes its block.
// pmm is the orthonormal diagonal value P̄_m^m at every latitude.
func (t *Table) fillOrder(m int, x, pmm []float64) {
	nlat := t.nlat
	p2 := make([]float64, nlat) // P̄_{l-2}^m
	p1 := make([]float64, nlat) // P̄_{l-1}^m
	copy(p1, pmm)
	t.store(m, m, p1)
	if m+1 >= t.lmax {
		return
	}

	p2, p1 = p1, p2
	c := math.Sqrt(float64(2*m + 3))
	for i := range p1 {
		p1[i] = c * x[i] * p2[i]
	}
	t.store(m, m+1, p1)

	mf := float64(m)
	for l := m + 2; l < t.lmax; l++ {
		lf := float64(l)
		a := math.Sqrt((4*lf*lf - 1) / (lf*lf - mf*mf))
		b := math.Sqrt(((lf-1)*(lf-1) - mf*mf) / (4*(lf-1)*(lf-1) - 1))
		// p2 now becomes P̄_l^m.
		for i := range p2 {
			p2[i] = a * (x[i]*p1[i] - b*p2[i])
		}
		p2, p1 = p1, p2
		t.store(m, l, p1)
	}
}

// store writes DegreeScale(l)·p into row (m, l).
func (t *Table) store(m, l int, p []float64) {
	row := t.RawRow(m, l)
	if t.norm == Ortho {
		copy(row, p)
		return
	}
	sc := t.norm.DegreeScale(l)
	for i, v := range p {
		row[i] = sc * v
	}
}

// MMax returns the order truncation (orders 0..MMax-1).
func (t *Table) MMax() int { return t.mmax }

// LMax returns the degree truncation (degrees 0..LMax-1).
func (t *Table) LMax() int { return t.lmax }

// NLat returns the number of colatitudes.
func (t *Table) NLat() int { return t.nlat }

// Norm returns the normalization convention of the stored values.
func (t *Table) Norm() Norm { return t.norm }

// CondonShortley reports whether the (−1)^m phase is included.
func (t *Table) CondonShortley() bool { return t.csPhase }

// valid reports whether (m, l) lies in the stored upper triangle.
func (t *Table) valid(m, l int) bool {
	return m >= 0 && m < t.mmax && l >= m && l < t.lmax
}

// RawRow returns the nlat values of (m, l) without copying.
// The slice aliases table storage and MUST be treated as read-only.
// Panics when (m, l) is outside the stored triangle; use Row for a checked copy.
func (t *Table) RawRow(m, l int) []float64 {
	if !t.valid(m, l) {
		panic(fmt.Sprintf("legendre: RawRow(%d,%d) outside mmax=%d lmax=%d", m, l, t.mmax, t.lmax))
	}
	off := t.offsets[m] + (l-m)*t.nlat

	return t.data[off : off+t.nlat : off+t.nlat]
}

// Row returns a copy of the nlat values of (m, l).
// Errors: ErrOutOfRange outside the stored triangle.
func (t *Table) Row(m, l int) ([]float64, error) {
	if !t.valid(m, l) {
		return nil, fmt.Errorf("Table.Row(%d,%d): %w", m, l, ErrOutOfRange)
	}
	cp := make([]float64, t.nlat)
	copy(cp, t.RawRow(m, l))

	return cp, nil
}

// At returns the table value at (m, l, i).
// Entries with l < m (lower triangle) are implicitly zero and are reported
// as 0 without error; any other out-of-range index yields ErrOutOfRange.
func (t *Table) At(m, l, i int) (float64, error) {
	if i < 0 || i >= t.nlat || m < 0 || m >= t.mmax || l < 0 || l >= t.lmax {
		return 0, fmt.Errorf("Table.At(%d,%d,%d): %w", m, l, i, ErrOutOfRange)
	}
	if l < m {
		return 0, nil
	}

	return t.RawRow(m, l)[i], nil
}
