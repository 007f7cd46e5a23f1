package knot

import (
	"fmt"
	"sort"
)

// Domain is an immutable, validated, strictly increasing sequence of
// knot abscissae with precomputed subinterval lengths.
//
// A Domain is built once and shared read-only by any number of splines.
type Domain struct {
	u []float64 // knot abscissae
	h []float64 // subinterval lengths, h[i] = u[i+1]-u[i]
}

// NewDomain validates u and returns a Domain over a private copy of it.
// It fails with ErrTooFewKnots when len(u) < MinKnots and with
// ErrNotIncreasing when any u[i+1] <= u[i].
func NewDomain(u []float64) (*Domain, error) {
	if len(u) < MinKnots {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewKnots, len(u), MinKnots)
	}
	d := &Domain{
		u: make([]float64, len(u)),
		h: make([]float64, len(u)-1),
	}
	copy(d.u, u)
	for i := 0; i < len(u)-1; i++ {
		h := u[i+1] - u[i]
		if h <= 0 {
			return nil, fmt.Errorf("%w: u[%d]=%g, u[%d]=%g", ErrNotIncreasing, i, u[i], i+1, u[i+1])
		}
		d.h[i] = h
	}
	return d, nil
}

// Size returns the number of knots.
func (d *Domain) Size() int { return len(d.u) }

// At returns the abscissa of the i-th knot.
func (d *Domain) At(i int) float64 { return d.u[i] }

// Length returns the length of the i-th subinterval.
func (d *Domain) Length(i int) float64 { return d.h[i] }

// Min returns the first abscissa.
func (d *Domain) Min() float64 { return d.u[0] }

// Max returns the last abscissa.
func (d *Domain) Max() float64 { return d.u[len(d.u)-1] }

// Index returns the subinterval index i such that u[i] <= x <= u[i+1].
// x equal to the last knot maps to the last subinterval. Abscissae
// outside [Min, Max] yield ErrRange.
func (d *Domain) Index(x float64) (int, error) {
	n := len(d.u)
	// Negated guard so NaN also fails the range check.
	if !(x >= d.u[0] && x <= d.u[n-1]) {
		return 0, fmt.Errorf("%w: x=%g, span [%g, %g]", ErrRange, x, d.u[0], d.u[n-1])
	}
	// SearchFloat64s returns the smallest i with u[i] >= x.
	i := sort.SearchFloat64s(d.u, x)
	if i < n && d.u[i] == x {
		if i == n-1 {
			return n - 2, nil
		}
		return i, nil
	}
	return i - 1, nil
}

// Abscissae returns a copy of the knot abscissae.
func (d *Domain) Abscissae() []float64 {
	out := make([]float64, len(d.u))
	copy(out, d.u)
	return out
}
