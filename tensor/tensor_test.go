// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/tensor"
)

// TestNewReal_BadShape verifies rank and dimension validation.
func TestNewReal_BadShape(t *testing.T) {
	_, err := tensor.NewReal(3)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "rank 1 must be rejected")

	_, err = tensor.NewReal(2, 0, 3)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "zero dim must be rejected")

	_, err = tensor.NewComplex(-1, 4)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "negative dim must be rejected")
}

// TestNewFrom_DataLength ensures wrapping checks the buffer length.
func TestNewFrom_DataLength(t *testing.T) {
	_, err := tensor.NewRealFrom(make([]float64, 5), 2, 3)
	assert.ErrorIs(t, err, tensor.ErrDataLength)

	_, err = tensor.NewComplexFrom(make([]complex128, 7), 2, 3)
	assert.ErrorIs(t, err, tensor.ErrDataLength)

	r, err := tensor.NewRealFrom([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	v, err := r.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v, "row-major layout")
}

// TestReal_AtSet covers bounds, rank mismatch and the finite-only policy.
func TestReal_AtSet(t *testing.T) {
	r, err := tensor.NewReal(2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, r.Set(7.5, 1, 2, 3))
	v, err := r.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, 7.5, r.RawData()[r.Len()-1], "last index maps to last element")

	_, err = r.At(2, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = r.At(0, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "index count must equal rank")

	assert.ErrorIs(t, r.Set(math.NaN(), 0, 0, 0), tensor.ErrNaNInf)
	assert.ErrorIs(t, r.Set(math.Inf(-1), 0, 0, 0), tensor.ErrNaNInf)
}

// TestComplex_AtSet mirrors TestReal_AtSet for complex values.
func TestComplex_AtSet(t *testing.T) {
	c, err := tensor.NewComplex(3, 2)
	require.NoError(t, err)

	require.NoError(t, c.Set(complex(1, -2), 2, 1))
	v, err := c.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(1, -2), v)
	assert.InDelta(t, math.Sqrt(5), c.MaxAbs(), 1e-15)

	assert.ErrorIs(t, c.Set(cmplx.NaN(), 0, 0), tensor.ErrNaNInf)
	assert.ErrorIs(t, c.Set(cmplx.Inf(), 0, 0), tensor.ErrNaNInf)
	_, err = c.At(0, 2)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

// TestPlane_Aliasing checks batch geometry and that planes alias storage.
func TestPlane_Aliasing(t *testing.T) {
	r, err := tensor.NewReal(2, 3, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Batch())
	rows, cols := r.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 5, cols)

	p := r.Plane(4)
	require.Len(t, p, 10)
	p[3] = 9
	v, err := r.At(1, 1, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v, "plane 4 is batch index (1,1)")

	assert.Panics(t, func() { r.Plane(6) })
}

// TestClone_Independence verifies deep copies.
func TestClone_Independence(t *testing.T) {
	r, err := tensor.NewReal(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.Set(1, 0, 0))
	cp := r.Clone()
	require.NoError(t, cp.Set(5, 0, 0))
	v, _ := r.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating clone must not touch original")

	c, err := tensor.NewComplex(1, 1)
	require.NoError(t, err)
	cc := c.Clone()
	require.NoError(t, cc.Set(1i, 0, 0))
	z, _ := c.At(0, 0)
	assert.Equal(t, complex128(0), z)
}

// TestBatchShape covers the leading-dimension helper.
func TestBatchShape(t *testing.T) {
	assert.Equal(t, []int{4, 3}, tensor.BatchShape([]int{4, 3, 8, 16}))
	assert.Equal(t, []int{}, tensor.BatchShape([]int{8, 16}))
	assert.Equal(t, []int{}, tensor.BatchShape(nil))

	r, err := tensor.NewReal(4, 3, 8, 16)
	require.NoError(t, err)
	s := r.Shape()
	s[0] = 99
	assert.Equal(t, []int{4, 3, 8, 16}, r.Shape(), "Shape returns a copy")
}

// TestString_Format checks the debug renderer.
func TestString_Format(t *testing.T) {
	r, err := tensor.NewRealFrom([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", r.String())

	c, err := tensor.NewComplexFrom([]complex128{1, 2i, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	require.NoError(t, err)
	assert.Contains(t, c.String(), "batch 1:\n")
}
