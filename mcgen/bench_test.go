package mcgen_test

import (
	"testing"

	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/mcgen"
)

// benchGenerator builds a 1000-point sampler once for the benchmarks.
func benchGenerator(b *testing.B) *mcgen.Generator {
	b.Helper()
	n := 1000
	energies := make([]float64, n)
	values := make([]float64, n)
	for i := range energies {
		energies[i] = 0.01 * float64(i)
		values[i] = float64(i%17) + 1
	}
	gen, err := mcgen.New(flux.Spectrum{Energies: energies, Values: values})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return gen
}

// BenchmarkNew measures CDF construction from a 1000-point spectrum.
func BenchmarkNew(b *testing.B) {
	n := 1000
	energies := make([]float64, n)
	values := make([]float64, n)
	for i := range energies {
		energies[i] = 0.01 * float64(i)
		values[i] = float64(i%17) + 1
	}
	spec := flux.Spectrum{Energies: energies, Values: values}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mcgen.New(spec); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkInverseCDF measures one table inversion (binary search + lerp).
func BenchmarkInverseCDF(b *testing.B) {
	gen := benchGenerator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.InverseCDF(float64(i%997) / 997.0)
	}
}

// BenchmarkDrawN measures bulk deterministic sampling.
func BenchmarkDrawN(b *testing.B) {
	gen := benchGenerator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.DrawN(1024, 42); err != nil {
			b.Fatalf("DrawN failed: %v", err)
		}
	}
}
