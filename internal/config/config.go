// SPDX-License-Identifier: MIT

// Package config loads the shtcheck settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	NLat     int
	NLon     int
	Grid     string
	Norm     string
	LMax     int // 0 selects the grid maximum
	MMax     int // 0 selects min(LMax, NLon/2+1)
	Batch    int
	Iters    string // comma-separated composition counts, e.g. "1,2,4"
	Seed     int64
	Workers  int // 0 selects GOMAXPROCS
	Tol      float64
	LogLevel string
}

func Load() *Config {
	return &Config{
		NLat:     envIntOr("SHT_NLAT", 64),
		NLon:     envIntOr("SHT_NLON", 128),
		Grid:     envOr("SHT_GRID", "legendre-gauss"),
		Norm:     envOr("SHT_NORM", "ortho"),
		LMax:     envIntOr("SHT_LMAX", 0),
		MMax:     envIntOr("SHT_MMAX", 0),
		Batch:    envIntOr("SHT_BATCH", 2),
		Iters:    envOr("SHT_ITERS", "1,2,4,8,16"),
		Seed:     envInt64Or("SHT_SEED", 333),
		Workers:  envIntOr("SHT_WORKERS", 0),
		Tol:      envFloatOr("SHT_TOL", 1e-9),
		LogLevel: envOr("LOG_LEVEL", "info"),
	}
}

// Level maps LogLevel to a slog level; unknown names fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// IterCounts parses Iters. Entries that are not positive integers are skipped.
func (c *Config) IterCounts() []int {
	var out []int
	for _, f := range strings.Split(c.Iters, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(f)); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
