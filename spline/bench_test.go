package spline_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spliner/knot"
	"github.com/katalvlaran/spliner/spline"
)

// benchSetup builds a 10k-knot uneven grid with random values.
func benchSetup(b *testing.B) (*knot.Domain, []float64) {
	b.Helper()
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	u := make([]float64, n)
	v := make([]float64, n)
	x := 0.0
	for i := range u {
		x += 0.1 + rng.Float64()
		u[i] = x
		v[i] = rng.NormFloat64()
	}
	g, err := knot.NewDomain(u)
	if err != nil {
		b.Fatalf("setup NewDomain failed: %v", err)
	}
	return g, v
}

// BenchmarkNaturalCubicSolve measures the O(n) tridiagonal solve.
func BenchmarkNaturalCubicSolve(b *testing.B) {
	g, v := benchSetup(b)
	s, err := spline.New(g, spline.NaturalCubic, spline.Manual)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	if err := s.Assign(v); err != nil {
		b.Fatalf("setup Assign failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Solve()
	}
}

// BenchmarkEvalAllFixedArgs measures batched evaluation over 1k fixed
// arguments, the hot path of repeated resampling.
func BenchmarkEvalAllFixedArgs(b *testing.B) {
	g, v := benchSetup(b)
	s, err := spline.NewWithValues(g, spline.NaturalCubic, spline.Eager, v)
	if err != nil {
		b.Fatalf("setup NewWithValues failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = g.Min() + rng.Float64()*(g.Max()-g.Min())
	}
	args, err := spline.NewArgs(spline.NaturalCubic, g, xs)
	if err != nil {
		b.Fatalf("setup NewArgs failed: %v", err)
	}
	out := make([]float64, args.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.EvalAllInto(args, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLazySinglePoint measures the per-index lazy update after a
// point mutation, the case eager caching makes O(n).
func BenchmarkLazySinglePoint(b *testing.B) {
	g, v := benchSetup(b)
	s, err := spline.NewWithValues(g, spline.FiniteDifferenceCubic, spline.Lazy, v)
	if err != nil {
		b.Fatalf("setup NewWithValues failed: %v", err)
	}
	x := (g.At(500) + g.At(501)) / 2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Set(500, float64(i)); err != nil {
			b.Fatal(err)
		}
		if _, err := s.At(x); err != nil {
			b.Fatal(err)
		}
	}
}
