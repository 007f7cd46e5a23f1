package knot_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spliner/knot"
)

// BenchmarkDomainIndex measures the O(log n) binary-search lookup on an
// uneven 10k-knot domain.
func BenchmarkDomainIndex(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	u := make([]float64, n)
	x := 0.0
	for i := range u {
		x += 0.1 + rng.Float64()
		u[i] = x
	}
	d, err := knot.NewDomain(u)
	if err != nil {
		b.Fatalf("setup NewDomain failed: %v", err)
	}
	qs := make([]float64, 1024)
	for i := range qs {
		qs[i] = d.Min() + rng.Float64()*(d.Max()-d.Min())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Index(qs[i%len(qs)])
	}
}

// BenchmarkUniformIndex measures the O(1) division lookup.
func BenchmarkUniformIndex(b *testing.B) {
	u, err := knot.NewUniform(0, 0.001, 10000)
	if err != nil {
		b.Fatalf("setup NewUniform failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	qs := make([]float64, 1024)
	for i := range qs {
		qs[i] = u.Min() + rng.Float64()*(u.Max()-u.Min())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = u.Index(qs[i%len(qs)])
	}
}
