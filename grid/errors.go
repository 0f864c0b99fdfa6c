// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidGridSpec is returned for an unknown grid kind or a latitude
	// count the rule cannot support (nlat < 1, or nlat < 2 for rules that
	// place nodes on both poles).
	ErrInvalidGridSpec = errors.New("grid: invalid grid specification")
)
