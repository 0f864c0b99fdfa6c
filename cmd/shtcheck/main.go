// SPDX-License-Identifier: MIT

// Command shtcheck builds a transform plan and reports round-trip errors of
// Forward∘Inverse on random band-limited spectra.
//
// Settings come from SHT_* environment variables (see internal/config) and
// can be overridden with flags. The exit status is 1 when any measured
// relative error exceeds the tolerance.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/internal/config"
	"github.com/katalvlaran/harmonics/legendre"
	"github.com/katalvlaran/harmonics/sht"
	"github.com/katalvlaran/harmonics/tensor"
)

var errTolerance = errors.New("relative error above tolerance")

func main() {
	cfg := config.Load()
	bindFlags(flag.CommandLine, cfg)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, slog.Default()); err != nil {
		slog.Error("shtcheck failed", "error", err)
		os.Exit(1)
	}
}

// bindFlags registers one flag per setting, defaulting to the loaded value.
func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.NLat, "nlat", cfg.NLat, "number of colatitudes")
	fs.IntVar(&cfg.NLon, "nlon", cfg.NLon, "number of longitudes")
	fs.StringVar(&cfg.Grid, "grid", cfg.Grid, "legendre-gauss|equiangular|lobatto|clenshaw-curtis")
	fs.StringVar(&cfg.Norm, "norm", cfg.Norm, "ortho|four-pi|schmidt")
	fs.IntVar(&cfg.LMax, "lmax", cfg.LMax, "degree truncation (0 = grid maximum)")
	fs.IntVar(&cfg.MMax, "mmax", cfg.MMax, "order truncation (0 = min(lmax, nlon/2+1))")
	fs.IntVar(&cfg.Batch, "batch", cfg.Batch, "number of random fields")
	fs.StringVar(&cfg.Iters, "iters", cfg.Iters, "comma-separated composition counts")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutine budget (0 = GOMAXPROCS)")
	fs.Float64Var(&cfg.Tol, "tol", cfg.Tol, "maximum accepted relative error")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
}

// run executes the diagnostic and returns errTolerance on failure.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	kind, err := grid.ParseKind(cfg.Grid)
	if err != nil {
		return err
	}
	norm, err := legendre.ParseNorm(cfg.Norm)
	if err != nil {
		return err
	}
	if cfg.Batch < 1 {
		return fmt.Errorf("batch=%d < 1", cfg.Batch)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers=%d < 0", cfg.Workers)
	}

	opts := []sht.Option{sht.WithGrid(kind), sht.WithNorm(norm), sht.WithWorkers(cfg.Workers)}
	if cfg.LMax > 0 {
		opts = append(opts, sht.WithLMax(cfg.LMax))
	}
	if cfg.MMax > 0 {
		opts = append(opts, sht.WithMMax(cfg.MMax))
	}

	start := time.Now()
	tr, err := sht.New(cfg.NLat, cfg.NLon, opts...)
	if err != nil {
		return err
	}
	log.Info("plan ready", "plan", tr.String(), "elapsed", time.Since(start))

	coeffs, err := randomSpectrum(tr, cfg.Batch, cfg.Seed)
	if err != nil {
		return err
	}
	signal, err := tr.Inverse(coeffs)
	if err != nil {
		return err
	}

	failed := false
	check := func(what string, e float64, attrs ...any) {
		attrs = append(attrs, "check", what, "rel_err", e, "tol", cfg.Tol)
		if e > cfg.Tol {
			failed = true
			log.Warn("tolerance exceeded", attrs...)
			return
		}
		log.Info("ok", attrs...)
	}

	back, err := tr.Forward(signal)
	if err != nil {
		return err
	}
	e, err := sht.SpectralRelativeError(back, coeffs)
	if err != nil {
		return err
	}
	check("spectral", e)

	for _, iters := range cfg.IterCounts() {
		if err = ctx.Err(); err != nil {
			return err
		}
		t0 := time.Now()
		cur := signal
		for k := 0; k < iters; k++ {
			c, err := tr.Forward(cur)
			if err != nil {
				return err
			}
			if cur, err = tr.Inverse(c); err != nil {
				return err
			}
			log.Debug("composition", "iters", iters, "step", k+1)
		}
		e, err := sht.RelativeError(cur, signal)
		if err != nil {
			return err
		}
		check("signal", e, "iters", iters, "elapsed", time.Since(t0))
	}

	if failed {
		return errTolerance
	}

	return nil
}

// randomSpectrum draws N(0,1) coefficients on the representable part of the
// spectrum: l ≥ m, real at m = 0 and at the even-nlon Nyquist order.
func randomSpectrum(tr *sht.Transform, batch int, seed int64) (*tensor.Complex, error) {
	lmax, mmax := tr.LMax(), tr.MMax()
	c, err := tensor.NewComplex(batch, lmax, mmax)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	nyquist := -1
	if tr.NLon()%2 == 0 {
		nyquist = tr.NLon() / 2
	}
	for b := 0; b < batch; b++ {
		p := c.Plane(b)
		for l := 0; l < lmax; l++ {
			for m := 0; m <= l && m < mmax; m++ {
				re, im := rng.NormFloat64(), rng.NormFloat64()
				if m == 0 || m == nyquist {
					im = 0
				}
				p[l*mmax+m] = complex(re, im)
			}
		}
	}

	return c, nil
}
