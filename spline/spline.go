package spline

import (
	"fmt"

	"github.com/katalvlaran/spliner/knot"
)

// Spline is the interpolation session: it owns the knot values and the
// coefficient cache, and runs its Method according to the caching
// Policy fixed at construction.
//
// A Spline borrows its Grid read-only and may share it with any number
// of other splines. The Spline itself is not safe for concurrent use.
type Spline struct {
	grid   knot.Grid
	method Method
	policy Policy

	v []float64 // knot values
	c []float64 // derived coefficients (second derivatives or tangents)

	stale bool   // Eager/Manual: whole cache out of date
	valid []bool // Lazy: per-index validity
}

// New returns a Spline over g with all knot values zero, which is a
// consistent state for every method.
//
// It fails with knot.ErrTooFewKnots when the grid is smaller than the
// method's minimum, and with ErrPolicyMethod when the Lazy policy is
// paired with a method whose coefficients require a global solve.
func New(g knot.Grid, m Method, p Policy) (*Spline, error) {
	if g.Size() < m.MinKnots() {
		return nil, fmt.Errorf("%w: %s needs %d knots, grid has %d",
			knot.ErrTooFewKnots, m.Name(), m.MinKnots(), g.Size())
	}
	if p == Lazy && !m.Local() {
		return nil, fmt.Errorf("%w: %s", ErrPolicyMethod, m.Name())
	}
	s := &Spline{
		grid:   g,
		method: m,
		policy: p,
		v:      make([]float64, g.Size()),
		c:      make([]float64, g.Size()),
	}
	if p == Lazy {
		s.valid = make([]bool, g.Size())
		for i := range s.valid {
			s.valid[i] = true // zeros are consistent with zero values
		}
	}
	return s, nil
}

// NewWithValues returns a Spline with v already assigned and, per the
// policy, solved.
func NewWithValues(g knot.Grid, m Method, p Policy, v []float64) (*Spline, error) {
	s, err := New(g, m, p)
	if err != nil {
		return nil, err
	}
	if err := s.Assign(v); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the knot domain the spline was built over.
func (s *Spline) Grid() knot.Grid { return s.grid }

// Method returns the spline's method.
func (s *Spline) Method() Method { return s.method }

// Policy returns the caching policy fixed at construction.
func (s *Spline) Policy() Policy { return s.policy }

// Values returns a copy of the current knot values.
func (s *Spline) Values() []float64 {
	out := make([]float64, len(s.v))
	copy(out, s.v)
	return out
}

// Coefficients returns a copy of the derived coefficient array as of
// the last derivation. Under Manual it may be stale; under Lazy,
// entries outside the valid set are whatever the last derivation left.
func (s *Spline) Coefficients() []float64 {
	out := make([]float64, len(s.c))
	copy(out, s.c)
	return out
}

// Assign replaces all knot values. Eager re-derives immediately; Lazy
// clears the valid-index set; Manual leaves the now-stale coefficients
// in place until Solve.
func (s *Spline) Assign(v []float64) error {
	if len(v) != len(s.v) {
		return fmt.Errorf("%w: got %d values for %d knots", ErrSize, len(v), len(s.v))
	}
	copy(s.v, v)
	s.invalidateAll()
	return nil
}

// Set mutates a single knot value. Eager re-derives the whole system,
// which is the documented cost for global methods; Lazy evicts only
// the coefficients whose formula reads v[i].
func (s *Spline) Set(i int, v float64) error {
	if i < 0 || i >= len(s.v) {
		return fmt.Errorf("%w: %d of %d", ErrKnotIndex, i, len(s.v))
	}
	s.v[i] = v
	if s.method.Stateless() {
		return nil
	}
	switch s.policy {
	case Eager:
		s.method.Derive(s.grid, s.v, s.c)
	case Lazy:
		for j := i - 1; j <= i+1; j++ {
			if j >= 0 && j < len(s.valid) {
				s.valid[j] = false
			}
		}
	case Manual:
		s.stale = true
	}
	return nil
}

func (s *Spline) invalidateAll() {
	if s.method.Stateless() {
		return
	}
	switch s.policy {
	case Eager:
		s.method.Derive(s.grid, s.v, s.c)
	case Lazy:
		for i := range s.valid {
			s.valid[i] = false
		}
	case Manual:
		s.stale = true
	}
}

// Solve derives all coefficients now. Under Manual this is the only way
// to revalidate the cache; under the other policies it refreshes a
// cache that is already consistent.
func (s *Spline) Solve() {
	if s.method.Stateless() {
		return
	}
	s.method.Derive(s.grid, s.v, s.c)
	s.stale = false
	for i := range s.valid {
		s.valid[i] = true
	}
}

// ensure makes the coefficients read by a valid, or reports why not.
func (s *Spline) ensure(a Arg) error {
	if s.method.Stateless() {
		return nil
	}
	switch s.policy {
	case Manual:
		if s.stale {
			return ErrStaleCache
		}
	case Lazy:
		for j := a.i; j <= a.i+1; j++ {
			if !s.valid[j] {
				s.method.DeriveAt(s.grid, s.v, s.c, j)
				s.valid[j] = true
			}
		}
	}
	return nil
}

// Eval evaluates the spline for a precomputed argument.
// The argument must have been built against the spline's grid and
// method (see Args for checked batches).
func (s *Spline) Eval(a Arg) (float64, error) {
	if err := s.ensure(a); err != nil {
		return 0, err
	}
	return s.method.Blend(a, s.v, s.c), nil
}

// At evaluates the spline at abscissa x. Out-of-span abscissae yield
// knot.ErrRange.
func (s *Spline) At(x float64) (float64, error) {
	a, err := s.method.Weights(s.grid, x)
	if err != nil {
		return 0, err
	}
	return s.Eval(a)
}

// EvalAll evaluates the spline for a whole argument batch, performing
// at most one coefficient derivation for the entire call.
func (s *Spline) EvalAll(as *Args) ([]float64, error) {
	out := make([]float64, as.Len())
	if err := s.EvalAllInto(as, out); err != nil {
		return nil, err
	}
	return out, nil
}

// EvalAllInto is EvalAll without the output allocation. len(out) must
// equal as.Len().
func (s *Spline) EvalAllInto(as *Args, out []float64) error {
	if as.grid != s.grid || as.method != s.method {
		return ErrArgsMismatch
	}
	if len(out) != as.Len() {
		return fmt.Errorf("%w: got %d outputs for %d arguments", ErrSize, len(out), as.Len())
	}
	for k, a := range as.args {
		if err := s.ensure(a); err != nil {
			return err
		}
		out[k] = s.method.Blend(a, s.v, s.c)
	}
	return nil
}
