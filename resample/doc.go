// Package resample fixes a query set once and replays it against many
// knot-value assignments: Cospline for one axis, BiSpline for separable
// bivariate tensor-product surfaces.
//
// What:
//
//   - Cospline binds a knot.Grid and a batch of query arguments; each
//     Resample call takes fresh knot values, performs exactly one
//     coefficient derivation, and evaluates the fixed queries.
//   - BiSpline composes one row spline per knot of the second axis plus
//     one scratch column spline, and evaluates 2D queries via two 1D
//     passes restricted to a sparse 4×4 stencil mask.
//
// Why:
//
//   - Resampling many data rows (image rows, time series) onto the same
//     output abscissae pays for argument precomputation once.
//   - For scattered 2D queries, only the grid cells inside some query's
//     stencil ever feed the result; BiSpline updates exactly those, so
//     cost scales with the rows and columns actually touched, not with
//     the full grid.
//
// Complexity:
//
//   - Cospline.Resample: one derivation (O(n) for global methods,
//     O(n) locals) + O(q) blending for q fixed queries.
//   - BiSpline.Resample: O(masked cells) updates + per query ≤4 row
//     evaluations and one column derivation.
//
// Errors:
//
//   - ErrGridShape: value grid not shaped [len(g1)][len(g0)].
//   - knot.ErrRange: a query abscissa outside a knot span, rejected at
//     construction.
//   - spline.ErrSize: knot values not aligned with the grid.
package resample
