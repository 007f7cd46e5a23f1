package spline

import "github.com/katalvlaran/spliner/knot"

// hermiteWeights computes the cubic Hermite basis at t = left/h:
// h00 and h01 blend the knot values, h10 and h11 blend the tangents
// (scaled by h so tangents stay in abscissa units).
func hermiteWeights(g knot.Grid, x float64) (Arg, error) {
	i, err := g.Index(x)
	if err != nil {
		return Arg{}, err
	}
	h := g.Length(i)
	t := (x - g.At(i)) / h
	t2 := t * t
	t3 := t2 * t
	return Arg{i: i, w: [4]float64{
		2*t3 - 3*t2 + 1,
		3*t2 - 2*t3,
		(t3 - 2*t2 + t) * h,
		(t3 - t2) * h,
	}}, nil
}

// hermiteBlend evaluates a Hermite spline from knot values v and
// tangents d.
func hermiteBlend(a Arg, v, d []float64) float64 {
	i := a.i
	return v[i]*a.w[0] + v[i+1]*a.w[1] + d[i]*a.w[2] + d[i+1]*a.w[3]
}

// HermiteFiniteDiff is the C¹ cubic Hermite spline with tangents taken
// as central differences over the two adjacent subintervals,
//
//	d[i] = (v[i+1] - v[i-1]) / (h[i-1] + h[i])
//
// and one-sided subinterval slopes at the two boundary knots. Each
// tangent is local to three knot values, so Lazy caching applies.
var HermiteFiniteDiff Method = hermiteFiniteDiff{}

type hermiteFiniteDiff struct{}

func (hermiteFiniteDiff) Name() string    { return "HermiteFiniteDiff" }
func (hermiteFiniteDiff) MinKnots() int   { return knot.MinKnots }
func (hermiteFiniteDiff) Local() bool     { return true }
func (hermiteFiniteDiff) Stateless() bool { return false }

func (hermiteFiniteDiff) Weights(g knot.Grid, x float64) (Arg, error) {
	return hermiteWeights(g, x)
}

func (m hermiteFiniteDiff) Derive(g knot.Grid, v, c []float64) {
	for i := range v {
		m.DeriveAt(g, v, c, i)
	}
}

func (hermiteFiniteDiff) DeriveAt(g knot.Grid, v, c []float64, i int) {
	n := len(v)
	switch i {
	case 0:
		c[0] = (v[1] - v[0]) / g.Length(0)
	case n - 1:
		c[n-1] = (v[n-1] - v[n-2]) / g.Length(n-2)
	default:
		c[i] = (v[i+1] - v[i-1]) / (g.Length(i-1) + g.Length(i))
	}
}

func (hermiteFiniteDiff) Blend(a Arg, v, c []float64) float64 {
	return hermiteBlend(a, v, c)
}

// CatmullRomUniform is the Catmull-Rom spline under its uniform
// parametrization: interior tangents use the same central difference as
// HermiteFiniteDiff, while boundary knots substitute themselves for the
// missing neighbor, which degrades the tangent to half the adjacent
// subinterval slope.
var CatmullRomUniform Method = catmullRomUniform{}

type catmullRomUniform struct{}

func (catmullRomUniform) Name() string    { return "CatmullRomUniform" }
func (catmullRomUniform) MinKnots() int   { return knot.MinKnots }
func (catmullRomUniform) Local() bool     { return true }
func (catmullRomUniform) Stateless() bool { return false }

func (catmullRomUniform) Weights(g knot.Grid, x float64) (Arg, error) {
	return hermiteWeights(g, x)
}

func (m catmullRomUniform) Derive(g knot.Grid, v, c []float64) {
	for i := range v {
		m.DeriveAt(g, v, c, i)
	}
}

func (catmullRomUniform) DeriveAt(g knot.Grid, v, c []float64, i int) {
	n := len(v)
	switch i {
	case 0:
		c[0] = (v[1] - v[0]) / (2 * g.Length(0))
	case n - 1:
		c[n-1] = (v[n-1] - v[n-2]) / (2 * g.Length(n-2))
	default:
		c[i] = (v[i+1] - v[i-1]) / (g.Length(i-1) + g.Length(i))
	}
}

func (catmullRomUniform) Blend(a Arg, v, c []float64) float64 {
	return hermiteBlend(a, v, c)
}
