// Package spline types: the caching Policy enum and the Method interface.
package spline

import "github.com/katalvlaran/spliner/knot"

// Policy selects when a Spline derives its coefficients.
//
//   - Eager: derive on every Assign or Set. Evaluation never fails on
//     validity. Set is documented as expensive for global methods: the
//     whole system is re-solved.
//   - Lazy: track validity per knot index and derive missing
//     coefficients on demand during evaluation. Only valid for methods
//     whose coefficient formula is local (Method.Local).
//   - Manual: derive only when Solve is called; evaluating with a
//     stale cache yields ErrStaleCache.
type Policy int

const (
	// Eager re-derives coefficients on every mutation.
	Eager Policy = iota
	// Lazy derives coefficients per index on demand.
	Lazy
	// Manual derives coefficients only on an explicit Solve.
	Manual
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Eager:
		return "Eager"
	case Lazy:
		return "Lazy"
	case Manual:
		return "Manual"
	default:
		return "Unknown"
	}
}

// Method is the capability interface implemented by each spline family.
// Implementations are stateless values: all mutable state lives in the
// Spline session.
type Method interface {
	// Name returns the method name.
	Name() string
	// MinKnots returns the smallest grid size the method supports.
	MinKnots() int
	// Local reports whether coefficients are computable per knot index,
	// which is the precondition for the Lazy policy.
	Local() bool
	// Stateless reports whether the method carries no coefficient array
	// at all (evaluation reads knot values only).
	Stateless() bool
	// Weights precomputes the basis weights for one query abscissa.
	Weights(g knot.Grid, x float64) (Arg, error)
	// Derive fills the coefficient array c from the knot values v.
	Derive(g knot.Grid, v, c []float64)
	// DeriveAt recomputes the single coefficient c[i]. For non-local
	// methods this falls back to a full Derive.
	DeriveAt(g knot.Grid, v, c []float64, i int)
	// Blend combines knot values and coefficients per the weights in a.
	Blend(a Arg, v, c []float64) float64
}
