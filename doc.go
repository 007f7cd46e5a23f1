// Package spliner computes piecewise-polynomial (spline) interpolants
// over one-dimensional ordered knot grids and evaluates them singly, in
// batches, and as separable bivariate tensor-product surfaces.
//
// 🚀 What is spliner?
//
//	A pure-Go interpolation library that brings together:
//		• Knot domains: validated strictly increasing abscissae, even or uneven
//		• Interchangeable methods: natural cubic (C²), finite-difference cubic,
//		  Hermite, Catmull-Rom, local Lagrange
//		• Caching policies: eager, lazy (per-index) and manual coefficient solving
//		• Cosplines: fixed query sets replayed over many knot-value assignments
//		• Bivariate resampling with a sparse 4×4 stencil mask
//
// ✨ Why choose spliner?
//
//   - Predictable numerics: Thomas-algorithm tridiagonal solving, natural bounds
//   - No hidden work: buffers are sized once, hot paths never allocate
//   - Pure Go: no cgo, no hidden deps
//   - Honest errors: out-of-range queries are rejected, never extrapolated
//
// Everything is organized under three subpackages:
//
//	knot/     : knot domains (Domain, Uniform) with interval lookup
//	spline/   : basis arguments, methods, caching policies, the Spline session
//	resample/ : Cospline and the bivariate BiSpline resampler
//
// Quick ASCII example:
//
//	    v ┤      ●
//	      ┤   ●     ●
//	      ┤ ●         ●
//	      └─┬──┬──┬──┬── u
//
//	knots (●) define the interpolant; queries between knots are blended
//	from the neighboring values and solved coefficients.
//
// A Domain is immutable after construction and may be shared by any
// number of splines; a Spline, Cospline or BiSpline owns mutable state
// and must be confined to one goroutine.
//
//	go get github.com/katalvlaran/spliner
package spliner
