package spline

import "github.com/katalvlaran/spliner/knot"

// c2Weights computes the basis weights shared by the C² cubic families.
// cv0 and cv1 blend the neighboring knot values linearly; cs0 and cs1
// scale the second-derivative terms and vanish at both knots, which is
// what preserves knot reproduction for any solved coefficients.
func c2Weights(g knot.Grid, x float64) (Arg, error) {
	i, err := g.Index(x)
	if err != nil {
		return Arg{}, err
	}
	h := g.Length(i)
	left := x - g.At(i)
	right := h - left
	return Arg{i: i, w: [4]float64{
		right / h,
		left / h,
		right*right*right/(6*h) - h*right/6,
		left*left*left/(6*h) - h*left/6,
	}}, nil
}

// c2Blend evaluates a C² cubic spline from knot values v and second
// derivatives c.
func c2Blend(a Arg, v, c []float64) float64 {
	i := a.i
	return v[i]*a.w[0] + v[i+1]*a.w[1] + c[i]*a.w[2] + c[i+1]*a.w[3]
}
