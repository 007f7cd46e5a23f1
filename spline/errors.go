package spline

import "errors"

// Sentinel errors for spline construction and evaluation.
var (
	// ErrPolicyMethod indicates a Lazy policy paired with a method whose
	// coefficients require a global solve.
	ErrPolicyMethod = errors.New("spline: lazy caching requires a method with local coefficients")
	// ErrStaleCache indicates a Manual-policy evaluation without a prior
	// successful Solve.
	ErrStaleCache = errors.New("spline: coefficients are stale, call Solve first")
	// ErrSize indicates knot values not aligned with the grid.
	ErrSize = errors.New("spline: knot values must align with the grid")
	// ErrKnotIndex indicates an out-of-range knot index.
	ErrKnotIndex = errors.New("spline: knot index out of range")
	// ErrArgsMismatch indicates Args built against a different grid or method.
	ErrArgsMismatch = errors.New("spline: arguments were built for a different grid or method")
)
