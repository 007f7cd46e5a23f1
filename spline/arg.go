package spline

import "github.com/katalvlaran/spliner/knot"

// Arg holds the precomputed basis weights for one query abscissa.
// It is a pure function of (grid, x), immutable once built, and may be
// reused across any number of evaluations with different knot values.
//
// The meaning of the four weights depends on the method family:
// cubic families store {cv0, cv1, cs0, cs1}, Hermite families store
// {cv0, cv1, cd0, cd1}, Lagrange stores the four window basis values.
type Arg struct {
	i int
	w [4]float64
}

// Index returns the subinterval index of the argument.
func (a Arg) Index() int { return a.i }

// Args is a batch of precomputed arguments bound to one grid and one
// method. Building Args once and replaying them is what makes repeated
// evaluation (see resample.Cospline) cheap.
type Args struct {
	method Method
	grid   knot.Grid
	args   []Arg
}

// NewArgs precomputes the basis weights of every abscissa in xs.
// Any out-of-range abscissa fails the whole construction with ErrRange.
func NewArgs(m Method, g knot.Grid, xs []float64) (*Args, error) {
	as := &Args{method: m, grid: g, args: make([]Arg, 0, len(xs))}
	if err := as.Assign(xs); err != nil {
		return nil, err
	}
	return as, nil
}

// Assign replaces the batch with freshly computed arguments for xs,
// reusing the backing array when capacity allows.
func (as *Args) Assign(xs []float64) error {
	args := as.args[:0]
	for _, x := range xs {
		a, err := as.method.Weights(as.grid, x)
		if err != nil {
			return err
		}
		args = append(args, a)
	}
	as.args = args
	return nil
}

// Len returns the number of arguments in the batch.
func (as *Args) Len() int { return len(as.args) }

// At returns the i-th argument.
func (as *Args) At(i int) Arg { return as.args[i] }
