package spline

import "github.com/katalvlaran/spliner/knot"

// FiniteDifferenceCubic approximates each second derivative
// independently from the neighboring subinterval slopes:
//
//	s[i] = 2 * (d[i] - d[i-1]) / (h[i-1] + h[i])
//
// with s[0] = s[n-1] = 0. Only C¹ in general, but every coefficient is
// an O(1) function of three knot values, which makes this the family
// suited to Lazy (per-index) caching.
var FiniteDifferenceCubic Method = finiteDiffCubic{}

type finiteDiffCubic struct{}

func (finiteDiffCubic) Name() string    { return "FiniteDifferenceCubic" }
func (finiteDiffCubic) MinKnots() int   { return knot.MinKnots }
func (finiteDiffCubic) Local() bool     { return true }
func (finiteDiffCubic) Stateless() bool { return false }

func (finiteDiffCubic) Weights(g knot.Grid, x float64) (Arg, error) {
	return c2Weights(g, x)
}

func (m finiteDiffCubic) Derive(g knot.Grid, v, c []float64) {
	for i := range v {
		m.DeriveAt(g, v, c, i)
	}
}

func (finiteDiffCubic) DeriveAt(g knot.Grid, v, c []float64, i int) {
	n := len(v)
	if i == 0 || i == n-1 {
		c[i] = 0
		return
	}
	h0 := g.Length(i - 1)
	h1 := g.Length(i)
	d0 := (v[i] - v[i-1]) / h0
	d1 := (v[i+1] - v[i]) / h1
	c[i] = 2 * (d1 - d0) / (h1 + h0)
}

func (finiteDiffCubic) Blend(a Arg, v, c []float64) float64 {
	return c2Blend(a, v, c)
}
