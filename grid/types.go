// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Kind selects the latitude quadrature rule.
type Kind int

const (
	// LegendreGauss places nodes at the roots of the degree-nlat Legendre polynomial.
	LegendreGauss Kind = iota

	// Equiangular places nodes at uniformly spaced midpoint colatitudes and
	// uses Fejér's first-rule weights.
	Equiangular

	// Lobatto places nodes at ±1 and the roots of P'_{nlat-1}.
	Lobatto

	// ClenshawCurtis places nodes at θ_k = kπ/(nlat-1), poles included.
	ClenshawCurtis
)

// Wire names accepted by ParseKind and produced by Kind.String.
const (
	nameLegendreGauss  = "legendre-gauss"
	nameEquiangular    = "equiangular"
	nameLobatto        = "lobatto"
	nameClenshawCurtis = "clenshaw-curtis"
)

// String returns the wire name of the rule.
func (k Kind) String() string {
	switch k {
	case LegendreGauss:
		return nameLegendreGauss
	case Equiangular:
		return nameEquiangular
	case Lobatto:
		return nameLobatto
	case ClenshawCurtis:
		return nameClenshawCurtis
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a wire name to a Kind.
// Errors: ErrInvalidGridSpec for unknown names.
func ParseKind(name string) (Kind, error) {
	switch name {
	case nameLegendreGauss:
		return LegendreGauss, nil
	case nameEquiangular:
		return Equiangular, nil
	case nameLobatto:
		return Lobatto, nil
	case nameClenshawCurtis:
		return ClenshawCurtis, nil
	default:
		return 0, fmt.Errorf("kind %q: %w", name, ErrInvalidGridSpec)
	}
}

// minNLat returns the smallest latitude count the rule supports, or 0 for an
// unknown kind.
func (k Kind) minNLat() int {
	switch k {
	case LegendreGauss, Equiangular:
		return 1
	case Lobatto, ClenshawCurtis:
		return 2
	default:
		return 0
	}
}
