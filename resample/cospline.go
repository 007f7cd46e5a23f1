package resample

import (
	"github.com/katalvlaran/spliner/knot"
	"github.com/katalvlaran/spliner/spline"
)

// Cospline fixes a knot domain and a batch of query arguments once, and
// replays evaluation across many knot-value assignments without
// recomputing the arguments.
//
// This is the pattern for resampling many data rows onto the same
// output abscissae. A Cospline is not safe for concurrent use.
type Cospline struct {
	s    *spline.Spline
	args *spline.Args
}

// NewCospline precomputes the arguments for every abscissa in xs.
// Out-of-span abscissae are rejected with knot.ErrRange; grid and
// method constraints follow spline.New.
func NewCospline(g knot.Grid, m spline.Method, xs []float64) (*Cospline, error) {
	s, err := spline.New(g, m, spline.Manual)
	if err != nil {
		return nil, err
	}
	args, err := spline.NewArgs(m, g, xs)
	if err != nil {
		return nil, err
	}
	return &Cospline{s: s, args: args}, nil
}

// Len returns the number of fixed query abscissae.
func (c *Cospline) Len() int { return c.args.Len() }

// Assign re-targets the cospline to a new set of query abscissae,
// keeping the domain and method.
func (c *Cospline) Assign(xs []float64) error {
	return c.args.Assign(xs)
}

// Resample interpolates the fixed queries against fresh knot values:
// one coefficient derivation, then one batched evaluation.
func (c *Cospline) Resample(v []float64) ([]float64, error) {
	out := make([]float64, c.args.Len())
	if err := c.ResampleInto(v, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResampleInto is Resample without the output allocation. len(out)
// must equal Len.
func (c *Cospline) ResampleInto(v, out []float64) error {
	if err := c.s.Assign(v); err != nil {
		return err
	}
	c.s.Solve()
	return c.s.EvalAllInto(c.args, out)
}
