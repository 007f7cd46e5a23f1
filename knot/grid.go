package knot

// MinKnots is the smallest number of knots any grid may hold.
// Methods with wider stencils impose their own, larger minimum.
const MinKnots = 3

// Grid is the read-only view of a knot domain consumed by splines.
// Implementations are immutable after construction and safe for
// concurrent readers.
type Grid interface {
	// Size returns the number of knots n.
	Size() int
	// At returns the abscissa of the i-th knot, i in [0, n-1].
	At(i int) float64
	// Length returns the length of the i-th subinterval, i in [0, n-2].
	Length(i int) float64
	// Index returns i such that At(i) <= x <= At(i+1).
	// x == At(n-1) maps to the last subinterval n-2.
	// Out-of-span abscissae yield ErrRange.
	Index(x float64) (int, error)
	// Min returns the first abscissa.
	Min() float64
	// Max returns the last abscissa.
	Max() float64
}

// Linspace returns n evenly spaced abscissae from lo to hi inclusive.
// It is a convenience for building Domain inputs; n must be at least 2
// and hi must exceed lo, otherwise nil is returned.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 || hi <= lo {
		return nil
	}
	u := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range u {
		u[i] = lo + float64(i)*step
	}
	u[n-1] = hi // avoid accumulated rounding at the far end
	return u
}
