package resample

import (
	"fmt"

	"github.com/katalvlaran/spliner/knot"
	"github.com/katalvlaran/spliner/spline"
)

// BiSpline is the separable bivariate tensor-product resampler: one row
// spline per knot of the second axis (each over the first axis) plus
// one scratch column spline, with a fixed batch of 2D queries.
//
// At construction every query's 4×4 knot stencil is unioned into a
// boolean active mask; Resample reads only masked grid cells, so its
// cost scales with the rows and columns the query set actually touches.
//
// Methods with local coefficients (FiniteDifferenceCubic, the Hermite
// family, LagrangeLocal) interpolate exactly as two full 1D passes
// would. Global methods such as NaturalCubic solve each row and column
// against zeros at the knots no stencil covers, so their output matches
// a full pass only when the mask spans the grid.
type BiSpline struct {
	g0, g1 knot.Grid

	rows []*spline.Spline // splines along axis 0, one per g1 knot
	col  *spline.Spline   // scratch spline along axis 1

	args  [][2]spline.Arg // precomputed (x0, x1) arguments per query
	mask  []bool          // active cells, row-major j1*len(g0)+j0
	dirty []bool          // rows touched since their last solve
}

// NewBiSpline precomputes the arguments and the stencil mask for every
// query point (x0, x1). Out-of-span components are rejected with
// knot.ErrRange; grid and method constraints follow spline.New.
func NewBiSpline(g0, g1 knot.Grid, m spline.Method, pts [][2]float64) (*BiSpline, error) {
	col, err := spline.New(g1, m, spline.Manual)
	if err != nil {
		return nil, err
	}
	rows := make([]*spline.Spline, g1.Size())
	for j := range rows {
		if rows[j], err = spline.New(g0, m, spline.Manual); err != nil {
			return nil, err
		}
	}
	b := &BiSpline{
		g0:    g0,
		g1:    g1,
		rows:  rows,
		col:   col,
		args:  make([][2]spline.Arg, 0, len(pts)),
		mask:  make([]bool, g0.Size()*g1.Size()),
		dirty: make([]bool, g1.Size()),
	}
	for _, p := range pts {
		a0, err := m.Weights(g0, p[0])
		if err != nil {
			return nil, err
		}
		a1, err := m.Weights(g1, p[1])
		if err != nil {
			return nil, err
		}
		b.stencil(a0.Index(), a1.Index())
		b.args = append(b.args, [2]spline.Arg{a0, a1})
	}
	return b, nil
}

// stencil marks the 4×4 neighborhood of subinterval (i0, i1), clamped
// to the grid, as active.
func (b *BiSpline) stencil(i0, i1 int) {
	min0, max0 := clamp(i0-1, i0+2, b.g0.Size()-1)
	min1, max1 := clamp(i1-1, i1+2, b.g1.Size()-1)
	for j1 := min1; j1 <= max1; j1++ {
		for j0 := min0; j0 <= max0; j0++ {
			b.mask[j1*b.g0.Size()+j0] = true
		}
	}
}

func clamp(lo, hi, last int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > last {
		hi = last
	}
	return lo, hi
}

// Len returns the number of fixed query points.
func (b *BiSpline) Len() int { return len(b.args) }

// Masked reports whether grid cell (i0, i1) lies in some query's
// stencil, i.e. whether Resample reads it.
func (b *BiSpline) Masked(i0, i1 int) bool {
	return b.mask[i1*b.g0.Size()+i0]
}

// Resample interpolates the fixed queries against a fresh value grid,
// indexed v[j1][j0] with j1 over the second domain. Only masked cells
// are read; updating unmasked cells cannot change the output.
func (b *BiSpline) Resample(v [][]float64) ([]float64, error) {
	out := make([]float64, len(b.args))
	if err := b.ResampleInto(v, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResampleInto is Resample without the output allocation. len(out)
// must equal Len.
func (b *BiSpline) ResampleInto(v [][]float64, out []float64) error {
	n0, n1 := b.g0.Size(), b.g1.Size()
	if len(v) != n1 {
		return fmt.Errorf("%w: got %d rows, want %d", ErrGridShape, len(v), n1)
	}
	for j1, row := range v {
		if len(row) != n0 {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrGridShape, j1, len(row), n0)
		}
	}
	if len(out) != len(b.args) {
		return fmt.Errorf("%w: got %d outputs for %d queries", spline.ErrSize, len(out), len(b.args))
	}

	// Sparse update: push only masked cells into the row splines.
	for j1 := 0; j1 < n1; j1++ {
		base := j1 * n0
		for j0 := 0; j0 < n0; j0++ {
			if !b.mask[base+j0] {
				continue
			}
			if err := b.rows[j1].Set(j0, v[j1][j0]); err != nil {
				return err
			}
			b.dirty[j1] = true
		}
	}

	// Two 1D passes per query: the ≤4 row splines spanning the query's
	// second-axis stencil feed the scratch column spline.
	for k, a := range b.args {
		min1, max1 := clamp(a[1].Index()-1, a[1].Index()+2, n1-1)
		for j := min1; j <= max1; j++ {
			if b.dirty[j] {
				b.rows[j].Solve()
				b.dirty[j] = false
			}
			y, err := b.rows[j].Eval(a[0])
			if err != nil {
				return err
			}
			if err := b.col.Set(j, y); err != nil {
				return err
			}
		}
		b.col.Solve()
		y, err := b.col.Eval(a[1])
		if err != nil {
			return err
		}
		out[k] = y
	}
	return nil
}
