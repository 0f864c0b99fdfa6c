// SPDX-License-Identifier: MIT

// Package legendre: functional configuration for table construction.
//
// Design goals:
//   - Deterministic behavior: options never change numerical results except
//     through the documented Condon–Shortley switch.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package legendre

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultCondonShortley includes the (−1)^m phase in every table entry.
	DefaultCondonShortley = true

	// DefaultWorkers of 0 means "use GOMAXPROCS" for the per-order chains.
	DefaultWorkers = 0
)

const panicWorkersInvalid = "legendre: WithWorkers: n must be >= 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	csPhase bool // DefaultCondonShortley
	workers int  // DefaultWorkers; 0 ⇒ GOMAXPROCS
}

// WithCondonShortley toggles the (−1)^m phase.
// Disabling it flips the sign of every odd-order row; transforms stay exact
// inverses because both directions share the table.
func WithCondonShortley(on bool) Option {
	return func(o *Options) { o.csPhase = on }
}

// WithWorkers bounds the number of order chains computed concurrently.
// n == 0 selects GOMAXPROCS; n == 1 computes sequentially.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		csPhase: DefaultCondonShortley,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
