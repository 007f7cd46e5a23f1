package knot

import "fmt"

// Uniform is an evenly spaced knot domain front + i*step. It stores no
// abscissae and answers interval lookups in O(1).
type Uniform struct {
	front float64
	step  float64
	n     int
}

// NewUniform returns a Uniform domain of n knots starting at front with
// the given spacing. It fails with ErrStep when step <= 0 and with
// ErrTooFewKnots when n < MinKnots.
func NewUniform(front, step float64, n int) (*Uniform, error) {
	if n < MinKnots {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewKnots, n, MinKnots)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrStep, step)
	}
	return &Uniform{front: front, step: step, n: n}, nil
}

// Size returns the number of knots.
func (u *Uniform) Size() int { return u.n }

// At returns the abscissa of the i-th knot.
func (u *Uniform) At(i int) float64 { return u.front + float64(i)*u.step }

// Length returns the length of any subinterval.
func (u *Uniform) Length(int) float64 { return u.step }

// Step returns the knot spacing.
func (u *Uniform) Step() float64 { return u.step }

// Min returns the first abscissa.
func (u *Uniform) Min() float64 { return u.front }

// Max returns the last abscissa.
func (u *Uniform) Max() float64 { return u.At(u.n - 1) }

// Index returns the subinterval index containing x, in O(1).
// x equal to the last knot maps to the last subinterval. Abscissae
// outside [Min, Max] yield ErrRange.
func (u *Uniform) Index(x float64) (int, error) {
	// Negated guard so NaN also fails the range check.
	if !(x >= u.Min() && x <= u.Max()) {
		return 0, fmt.Errorf("%w: x=%g, span [%g, %g]", ErrRange, x, u.Min(), u.Max())
	}
	i := int((x - u.front) / u.step)
	// Division may land on either side of a knot; clamp to the valid
	// subinterval range and settle exact-knot hits.
	if i > u.n-2 {
		i = u.n - 2
	}
	if i > 0 && x < u.At(i) {
		i--
	} else if i < u.n-2 && x >= u.At(i+1) {
		i++
	}
	return i, nil
}
