// SPDX-License-Identifier: MIT

package legendre_test

import (
	"testing"

	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/legendre"
)

// benchmarkBuild builds an nlat×nlat table on a Gauss grid with the given worker count.
func benchmarkBuild(b *testing.B, nlat, workers int) {
	g, err := grid.Build(grid.LegendreGauss, nlat)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	theta := g.Theta()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := legendre.Build(nlat, nlat, theta, legendre.Ortho, legendre.WithWorkers(workers)); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

func BenchmarkBuild_64_Sequential(b *testing.B)  { benchmarkBuild(b, 64, 1) }
func BenchmarkBuild_64_Parallel(b *testing.B)    { benchmarkBuild(b, 64, 0) }
func BenchmarkBuild_256_Sequential(b *testing.B) { benchmarkBuild(b, 256, 1) }
func BenchmarkBuild_256_Parallel(b *testing.B)   { benchmarkBuild(b, 256, 0) }
