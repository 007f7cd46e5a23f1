package spline

import "github.com/katalvlaran/spliner/knot"

// LagrangeLocal fits a cubic Lagrange polynomial over a sliding 4-knot
// window {i-1, i, i+1, i+2}, with i clamped to [1, n-3] so the window
// always exists: in the first and last subintervals the neighboring
// window is used. Only C⁰ continuity is guaranteed.
//
// The method is stateless: the four window basis values live entirely
// in the Arg, so no coefficient array is derived or cached.
var LagrangeLocal Method = lagrangeLocal{}

type lagrangeLocal struct{}

func (lagrangeLocal) Name() string    { return "LagrangeLocal" }
func (lagrangeLocal) MinKnots() int   { return 4 }
func (lagrangeLocal) Local() bool     { return true }
func (lagrangeLocal) Stateless() bool { return true }

func (lagrangeLocal) Weights(g knot.Grid, x float64) (Arg, error) {
	i, err := g.Index(x)
	if err != nil {
		return Arg{}, err
	}
	if i < 1 {
		i = 1
	}
	if i > g.Size()-3 {
		i = g.Size() - 3
	}
	u0 := g.At(i - 1)
	u1 := g.At(i)
	u2 := g.At(i + 1)
	u3 := g.At(i + 2)
	return Arg{i: i, w: [4]float64{
		(x - u1) / (u0 - u1) * (x - u2) / (u0 - u2) * (x - u3) / (u0 - u3),
		(x - u0) / (u1 - u0) * (x - u2) / (u1 - u2) * (x - u3) / (u1 - u3),
		(x - u0) / (u2 - u0) * (x - u1) / (u2 - u1) * (x - u3) / (u2 - u3),
		(x - u0) / (u3 - u0) * (x - u1) / (u3 - u1) * (x - u2) / (u3 - u2),
	}}, nil
}

func (lagrangeLocal) Derive(knot.Grid, []float64, []float64) {}

func (lagrangeLocal) DeriveAt(knot.Grid, []float64, []float64, int) {}

func (lagrangeLocal) Blend(a Arg, v, _ []float64) float64 {
	i := a.i
	return v[i-1]*a.w[0] + v[i]*a.w[1] + v[i+1]*a.w[2] + v[i+2]*a.w[3]
}
