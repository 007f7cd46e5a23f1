// Package knot defines the knot-domain abstraction: an immutable,
// validated, strictly increasing sequence of abscissae with precomputed
// subinterval lengths and an interval-lookup operation.
//
// What:
//
//   - Domain wraps an arbitrary strictly increasing []float64 and caches
//     the spacings h[i] = u[i+1]-u[i].
//   - Uniform describes an evenly spaced domain front + i*step with O(1)
//     interval lookup and no stored abscissae.
//   - Both satisfy the Grid interface consumed by spline and resample.
//   - Linspace builds evenly spaced abscissae slices for Domain.
//
// Why:
//
//   - Every spline, cospline and bivariate resampler reads the same
//     domain; validating and precomputing once keeps evaluation cheap.
//   - A Grid is immutable after construction, so it may be shared by any
//     number of splines across goroutines without synchronization.
//
// Complexity:
//
//   - Domain.Index: O(log n) binary search with a range check.
//   - Uniform.Index: O(1) division.
//   - Construction: O(n), validating every subinterval.
//
// Errors:
//
//   - ErrTooFewKnots: fewer knots than the required minimum (3).
//   - ErrNotIncreasing: abscissae not strictly increasing.
//   - ErrRange: query abscissa outside [Min, Max]; never extrapolated.
//   - ErrStep: non-positive step for a Uniform domain.
package knot
