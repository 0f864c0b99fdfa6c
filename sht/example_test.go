// SPDX-License-Identifier: MIT

package sht_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/harmonics/grid"
	"github.com/katalvlaran/harmonics/legendre"
	"github.com/katalvlaran/harmonics/sht"
	"github.com/katalvlaran/harmonics/tensor"
)

// ExampleNew builds a small Gauss plan and recovers a single harmonic.
//
// Scenario:
//
//	c[2,1] = 1 − 0.5i  →  Inverse  →  Forward  →  c[2,1]
func ExampleNew() {
	tr, err := sht.New(8, 16, sht.WithLMax(4), sht.WithMMax(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := tensor.NewComplex(tr.LMax(), tr.MMax())
	_ = c.Set(complex(1, -0.5), 2, 1)

	signal, err := tr.Inverse(c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	back, err := tr.Forward(signal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := back.At(2, 1)
	fmt.Println(tr)
	fmt.Printf("c[2,1] = %.6f%+.6fi\n", real(v), imag(v))
	fmt.Printf("max |c| = %.6f\n", back.MaxAbs())
	// Output:
	// sht.Transform{grid=legendre-gauss nlat=8 nlon=16 lmax=4 mmax=3 norm=ortho}
	// c[2,1] = 1.000000-0.500000i
	// max |c| = 1.118034
}

// ExampleForward uses the stateless entry point with a caller-owned grid and
// table. The mean of a constant field is carried by c[0,0] = sqrt(4π) for
// the orthonormal basis.
func ExampleForward() {
	g, err := grid.Build(grid.Equiangular, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tab, err := legendre.Build(2, 3, g.Theta(), legendre.Ortho)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ones := make([]float64, 6*8)
	for i := range ones {
		ones[i] = 1
	}
	signal, _ := tensor.NewRealFrom(ones, 6, 8)

	c, err := sht.Forward(signal, tab, g.Weights(), legendre.Ortho)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := c.At(0, 0)
	fmt.Printf("c[0,0] = %.6f (sqrt(4π) = %.6f)\n", real(v), math.Sqrt(4*math.Pi))
	// Output:
	// c[0,0] = 3.544908 (sqrt(4π) = 3.544908)
}
