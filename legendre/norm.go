// SPDX-License-Identifier: MIT

package legendre

import (
	"fmt"
	"math"
)

// Norm selects the normalization convention of the spherical harmonics
// Y_l^m = K·P_l^m(cos θ)·e^{imφ} synthesized from a table.
//
//   - Ortho: ∫∫ |Y|² dΩ = 1.
//   - FourPi: ∫∫ |Y|² dΩ = 4π (geodesy).
//   - Schmidt: ∫∫ |Y|² dΩ = 4π/(2l+1) (geomagnetism, semi-normalized).
//
// The table stores the synthesis basis. The forward transform divides by the
// basis energy (AnalysisScale) so forward and inverse are exact inverses on
// band-limited fields.
type Norm int

const (
	// Ortho is the orthonormal convention.
	Ortho Norm = iota

	// FourPi scales every harmonic to mean-square 1 over the sphere.
	FourPi

	// Schmidt is the Schmidt semi-normalized convention.
	Schmidt
)

const (
	nameOrtho   = "ortho"
	nameFourPi  = "four-pi"
	nameSchmidt = "schmidt"
)

// String returns the wire name of the convention.
func (n Norm) String() string {
	switch n {
	case Ortho:
		return nameOrtho
	case FourPi:
		return nameFourPi
	case Schmidt:
		return nameSchmidt
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// ParseNorm maps "ortho", "four-pi" or "schmidt" to a Norm.
// Errors: ErrUnknownNorm.
func ParseNorm(name string) (Norm, error) {
	switch name {
	case nameOrtho:
		return Ortho, nil
	case nameFourPi:
		return FourPi, nil
	case nameSchmidt:
		return Schmidt, nil
	default:
		return 0, fmt.Errorf("norm %q: %w", name, ErrUnknownNorm)
	}
}

// Valid reports whether n is one of the defined conventions.
func (n Norm) Valid() bool { return n >= Ortho && n <= Schmidt }

// DegreeScale returns s_l, the factor applied to the orthonormal P̄_l^m.
func (n Norm) DegreeScale(l int) float64 {
	switch n {
	case FourPi:
		return math.Sqrt(4 * math.Pi)
	case Schmidt:
		return math.Sqrt(4 * math.Pi / float64(2*l+1))
	default:
		return 1
	}
}

// AnalysisScale returns 1/s_l², the inverse energy ∫∫|Y_l^m|² dΩ of a
// synthesis harmonic of degree l.
func (n Norm) AnalysisScale(l int) float64 {
	s := n.DegreeScale(l)

	return 1 / (s * s)
}

// Constant returns K_lm such that a table entry equals K_lm·P_l^m(x) for the
// unnormalized associated Legendre polynomial P_l^m with Condon–Shortley phase:
//
//	K_lm = s_l · sqrt((2l+1)/(4π) · (l−m)!/(l+m)!)
//
// The factorial ratio is evaluated through math.Lgamma, so large l does not
// overflow. Intended for validation against closed forms.
func (n Norm) Constant(m, l int) float64 {
	lg1, _ := math.Lgamma(float64(l - m + 1))
	lg2, _ := math.Lgamma(float64(l + m + 1))
	ratio := math.Exp(lg1 - lg2)

	return n.DegreeScale(l) * math.Sqrt(float64(2*l+1)/(4*math.Pi)*ratio)
}
