package knot

import "errors"

// Sentinel errors for knot-domain construction and lookup.
var (
	// ErrTooFewKnots indicates fewer knots than the required minimum.
	ErrTooFewKnots = errors.New("knot: too few knots")
	// ErrNotIncreasing indicates abscissae that are not strictly increasing.
	ErrNotIncreasing = errors.New("knot: abscissae must be strictly increasing")
	// ErrRange indicates a query abscissa outside the knot span.
	ErrRange = errors.New("knot: abscissa out of range")
	// ErrStep indicates a non-positive step for a uniform domain.
	ErrStep = errors.New("knot: step must be positive")
)
