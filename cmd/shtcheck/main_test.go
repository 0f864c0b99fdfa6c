// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/internal/config"
	"github.com/katalvlaran/harmonics/legendre"
)

func smallConfig() *config.Config {
	return &config.Config{
		NLat: 16, NLon: 32,
		Grid: "legendre-gauss", Norm: "schmidt",
		Batch: 2, Iters: "1,3", Seed: 1,
		Tol: 1e-9, LogLevel: "info",
	}
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRun_Passes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), smallConfig(), newLogger(&buf)))
	out := buf.String()
	assert.Contains(t, out, "plan ready")
	assert.Contains(t, out, "check=spectral")
	assert.Contains(t, out, "iters=3")
	assert.NotContains(t, out, "tolerance exceeded")
}

func TestRun_ToleranceExceeded(t *testing.T) {
	cfg := smallConfig()
	cfg.Grid = "equiangular" // full truncation is not exact on this rule
	var buf bytes.Buffer
	err := run(context.Background(), cfg, newLogger(&buf))
	assert.ErrorIs(t, err, errTolerance)
	assert.Contains(t, buf.String(), "tolerance exceeded")
}

func TestRun_BadInput(t *testing.T) {
	var buf bytes.Buffer
	cfg := smallConfig()
	cfg.Norm = "unit"
	assert.ErrorIs(t, run(context.Background(), cfg, newLogger(&buf)), legendre.ErrUnknownNorm)

	cfg = smallConfig()
	cfg.Batch = 0
	assert.Error(t, run(context.Background(), cfg, newLogger(&buf)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, run(ctx, smallConfig(), newLogger(&buf)), context.Canceled)
}

func TestBindFlags_Overrides(t *testing.T) {
	cfg := smallConfig()
	fs := flag.NewFlagSet("shtcheck", flag.ContinueOnError)
	bindFlags(fs, cfg)
	require.NoError(t, fs.Parse([]string{"-nlat=8", "-grid=lobatto", "-tol=0.5"}))
	assert.Equal(t, 8, cfg.NLat)
	assert.Equal(t, "lobatto", cfg.Grid)
	assert.Equal(t, 0.5, cfg.Tol)
	assert.Equal(t, 32, cfg.NLon, "unset flags keep the loaded value")
}
