package resample

import "errors"

// Sentinel errors for resampling operations.
var (
	// ErrGridShape indicates a 2D value grid whose shape does not match
	// the two knot domains.
	ErrGridShape = errors.New("resample: value grid shape must match the knot domains")
)
