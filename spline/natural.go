package spline

import "github.com/katalvlaran/spliner/knot"

// NaturalCubic is the C² natural cubic spline: second derivatives are
// solved globally from the tridiagonal system with natural boundary
// conditions s[0] = s[n-1] = 0 (Thomas algorithm, no pivoting needed
// since the matrix is diagonally dominant for any positive spacings).
//
// This is the only C² method, at the cost of a full O(n) re-solve on
// every knot-value change; it therefore does not support Lazy caching.
var NaturalCubic Method = naturalCubic{}

type naturalCubic struct{}

func (naturalCubic) Name() string    { return "NaturalCubic" }
func (naturalCubic) MinKnots() int   { return knot.MinKnots }
func (naturalCubic) Local() bool     { return false }
func (naturalCubic) Stateless() bool { return false }

func (naturalCubic) Weights(g knot.Grid, x float64) (Arg, error) {
	return c2Weights(g, x)
}

// Derive solves the tridiagonal system
//
//	h[i-1]*s[i-1] + 2*(h[i-1]+h[i])*s[i] + h[i]*s[i+1] = 6*(d[i]-d[i-1])
//
// for the interior second derivatives, d[i] being the subinterval
// slope (v[i+1]-v[i])/h[i], via forward elimination and back
// substitution. Boundary derivatives are fixed to zero.
func (naturalCubic) Derive(g knot.Grid, v, c []float64) {
	if u, ok := g.(*knot.Uniform); ok {
		deriveNaturalUniform(u.Step(), v, c)
		return
	}
	n := len(v)
	diag := make([]float64, n-1)
	rhs := make([]float64, n-1)

	// Row 1 seeds the forward pass.
	h0 := g.Length(0)
	h1 := g.Length(1)
	d0 := (v[1] - v[0]) / h0
	d1 := (v[2] - v[1]) / h1
	diag[1] = 2 * (h0 + h1)
	rhs[1] = 6 * (d1 - d0)

	// Forward elimination of the sub-diagonal h[i-1].
	for i := 2; i < n-1; i++ {
		h0, d0 = h1, d1
		h1 = g.Length(i)
		d1 = (v[i+1] - v[i]) / h1
		w := h0 / diag[i-1]
		diag[i] = 2*(h0+h1) - w*h0
		rhs[i] = 6*(d1-d0) - w*rhs[i-1]
	}

	// Back substitution against the super-diagonal h[i].
	c[n-1] = 0
	c[n-2] = rhs[n-2] / diag[n-2]
	for i := n - 3; i > 0; i-- {
		c[i] = (rhs[i] - g.Length(i)*c[i+1]) / diag[i]
	}
	c[0] = 0
}

// deriveNaturalUniform is the evenly spaced specialization: every
// subinterval has length h, so the system reduces to a constant-band
// recurrence. Results match the general path within float tolerance.
func deriveNaturalUniform(h float64, v, c []float64) {
	n := len(v)
	diag := make([]float64, n-1)
	rhs := make([]float64, n-1)

	diag[1] = 4 * h
	rhs[1] = 6 * (v[2] - 2*v[1] + v[0]) / h
	for i := 2; i < n-1; i++ {
		w := h / diag[i-1]
		diag[i] = 4*h - w*h
		rhs[i] = 6*(v[i+1]-2*v[i]+v[i-1])/h - w*rhs[i-1]
	}

	c[n-1] = 0
	c[n-2] = rhs[n-2] / diag[n-2]
	for i := n - 3; i > 0; i-- {
		c[i] = (rhs[i] - h*c[i+1]) / diag[i]
	}
	c[0] = 0
}

// DeriveAt re-solves the whole system: a single knot value feeds every
// second derivative, so no local update exists for this method.
func (m naturalCubic) DeriveAt(g knot.Grid, v, c []float64, _ int) {
	m.Derive(g, v, c)
}

func (naturalCubic) Blend(a Arg, v, c []float64) float64 {
	return c2Blend(a, v, c)
}
