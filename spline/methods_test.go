package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spliner/knot"
	"github.com/katalvlaran/spliner/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMethods = []spline.Method{
	spline.NaturalCubic,
	spline.FiniteDifferenceCubic,
	spline.HermiteFiniteDiff,
	spline.CatmullRomUniform,
	spline.LagrangeLocal,
}

// TestMethods_KnotReproduction verifies that every family evaluates
// exactly to the knot value at each knot abscissa: the coefficient
// weights vanish there by construction.
func TestMethods_KnotReproduction(t *testing.T) {
	u := []float64{0, 1, 2.5, 3, 4.5}
	v := []float64{-1, 4, 0.5, 7, 2}
	g, err := knot.NewDomain(u)
	require.NoError(t, err)

	for _, m := range allMethods {
		t.Run(m.Name(), func(t *testing.T) {
			s, err := spline.NewWithValues(g, m, spline.Eager, v)
			require.NoError(t, err)
			for i, x := range u {
				y, err := s.At(x)
				require.NoError(t, err, "At(%g)", x)
				assert.InDelta(t, v[i], y, 1e-9, "knot %d", i)
			}
		})
	}
}

// TestMethods_LinearReproduction verifies that linear data is
// reproduced exactly between knots: with values 10..40 over [1,4] every
// family's coefficients describe the same straight line.
//
// CatmullRomUniform is checked on the interior query only: its boundary
// tangents are halved by the endpoint-duplication convention, which is
// a property of the method rather than a defect.
func TestMethods_LinearReproduction(t *testing.T) {
	g, err := knot.NewDomain([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	v := []float64{10, 20, 30, 40}
	queries := []float64{1.1, 2.5, 3.9}
	want := []float64{11, 25, 39}

	for _, m := range []spline.Method{
		spline.NaturalCubic,
		spline.FiniteDifferenceCubic,
		spline.HermiteFiniteDiff,
		spline.LagrangeLocal,
	} {
		t.Run(m.Name(), func(t *testing.T) {
			s, err := spline.NewWithValues(g, m, spline.Eager, v)
			require.NoError(t, err)
			for k, x := range queries {
				y, err := s.At(x)
				require.NoError(t, err)
				assert.InDelta(t, want[k], y, 1e-6, "At(%g)", x)
			}
		})
	}

	t.Run("CatmullRomUniform_interior", func(t *testing.T) {
		s, err := spline.NewWithValues(g, spline.CatmullRomUniform, spline.Eager, v)
		require.NoError(t, err)
		y, err := s.At(2.5)
		require.NoError(t, err)
		assert.InDelta(t, 25, y, 1e-6)
	})
}

// TestMethods_OutOfRange verifies that evaluation outside the knot span
// is rejected with knot.ErrRange for every family.
func TestMethods_OutOfRange(t *testing.T) {
	g, err := knot.NewDomain([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	for _, m := range allMethods {
		t.Run(m.Name(), func(t *testing.T) {
			s, err := spline.NewWithValues(g, m, spline.Eager, []float64{1, 2, 3, 4})
			require.NoError(t, err)
			_, err = s.At(0.9)
			assert.ErrorIs(t, err, knot.ErrRange)
			_, err = s.At(4.1)
			assert.ErrorIs(t, err, knot.ErrRange)
			_, err = s.At(math.NaN())
			assert.ErrorIs(t, err, knot.ErrRange, "NaN queries must not reach the blend")
		})
	}
}

// TestLagrangeLocal_WindowClamp verifies that queries in the first and
// last subintervals borrow the neighboring 4-knot window and still
// interpolate a cubic exactly (a cubic is its own Lagrange fit).
func TestLagrangeLocal_WindowClamp(t *testing.T) {
	cubic := func(x float64) float64 { return x*x*x - 2*x*x + 3 }
	u := []float64{0, 1, 2, 3, 4, 5}
	v := make([]float64, len(u))
	for i, x := range u {
		v[i] = cubic(x)
	}
	g, err := knot.NewDomain(u)
	require.NoError(t, err)
	s, err := spline.NewWithValues(g, spline.LagrangeLocal, spline.Eager, v)
	require.NoError(t, err)

	for _, x := range []float64{0.25, 0.5, 4.5, 4.9, 2.2} {
		y, err := s.At(x)
		require.NoError(t, err)
		assert.InDelta(t, cubic(x), y, 1e-9, "At(%g)", x)
	}
}

// TestTangentFamilies_BoundaryConvention pins the boundary tangents
// that tell the two Hermite families apart: HermiteFiniteDiff takes the
// full one-sided subinterval slope, CatmullRomUniform duplicates the
// endpoint and halves it. Interior tangents are identical.
func TestTangentFamilies_BoundaryConvention(t *testing.T) {
	g, err := knot.NewDomain([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	v := []float64{0, 2, 4, 9}

	hs, err := spline.NewWithValues(g, spline.HermiteFiniteDiff, spline.Eager, v)
	require.NoError(t, err)
	cs, err := spline.NewWithValues(g, spline.CatmullRomUniform, spline.Eager, v)
	require.NoError(t, err)

	hd, cd := hs.Coefficients(), cs.Coefficients()
	assert.Equal(t, 2.0, hd[0], "hermite front: (v[1]-v[0])/h[0]")
	assert.Equal(t, 5.0, hd[3], "hermite back: (v[3]-v[2])/h[2]")
	assert.Equal(t, 1.0, cd[0], "catmull-rom front: half the one-sided slope")
	assert.Equal(t, 2.5, cd[3], "catmull-rom back: half the one-sided slope")

	assert.Equal(t, hd[1], cd[1], "interior tangents agree")
	assert.Equal(t, hd[2], cd[2], "interior tangents agree")
}

// TestMethods_Capabilities pins the capability matrix the policy
// validation relies on.
func TestMethods_Capabilities(t *testing.T) {
	assert.False(t, spline.NaturalCubic.Local(), "natural cubic needs a global solve")
	assert.True(t, spline.FiniteDifferenceCubic.Local())
	assert.True(t, spline.HermiteFiniteDiff.Local())
	assert.True(t, spline.CatmullRomUniform.Local())
	assert.True(t, spline.LagrangeLocal.Stateless())
	assert.Equal(t, 4, spline.LagrangeLocal.MinKnots(), "lagrange needs a 4-knot window")
}
