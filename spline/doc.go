// Package spline derives and blends piecewise-cubic interpolants over a
// knot.Grid: per-query basis weights, interchangeable coefficient
// methods, and a session type with eager, lazy and manual caching.
//
// What:
//
//   - Arg holds precomputed basis weights for one query abscissa; Args
//     batches them for reuse across many evaluations.
//   - Method is the capability interface implemented by each family:
//     NaturalCubic, FiniteDifferenceCubic, HermiteFiniteDiff,
//     CatmullRomUniform and LagrangeLocal.
//   - Spline owns the knot values and the coefficient cache, and runs
//     the method according to its caching Policy.
//
// Why:
//
//   - Weights depend only on the grid and the query, so a fixed query
//     set is paid for once and replayed against many value assignments.
//   - Coefficient derivation is the expensive step; the Policy decides
//     when it runs (on every mutation, per index on demand, or only
//     when Solve is called).
//
// Caching policies:
//
//   - Eager: re-derive on every mutation; evaluation always valid.
//   - Lazy: track validity per knot index, derive on demand; only
//     methods with local coefficient formulas qualify.
//   - Manual: the caller invokes Solve; evaluating with a stale cache
//     yields ErrStaleCache.
//
// Complexity:
//
//   - NaturalCubic derivation: O(n) tridiagonal solve (Thomas algorithm).
//   - Local methods: O(1) per knot index.
//   - Evaluation: O(1) per query after lookup; batch evaluation performs
//     at most one derivation per call.
//
// Errors:
//
//   - ErrPolicyMethod: Lazy combined with a method needing a global solve.
//   - ErrStaleCache: Manual evaluation before a successful Solve.
//   - ErrSize: assigned values not aligned with the grid.
//   - ErrKnotIndex: Set with an out-of-range knot index.
//   - ErrArgsMismatch: Args built against another grid or method.
package spline
