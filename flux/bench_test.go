package flux_test

import (
	"math"
	"testing"

	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/quadrature"
)

// smoothModel is a cheap solar-like rate shape for benchmarking.
type smoothModel struct{}

func (smoothModel) Rate(energy, radius float64) float64 {
	return energy * energy * math.Exp(-energy-5*radius)
}
func (smoothModel) Temperature(radius float64) float64 { return 1.3 * math.Exp(-4*radius*radius) }
func (smoothModel) RLo() float64                       { return 0 }
func (smoothModel) RHi() float64                       { return 1 }

// benchGrid is a 100-point grid over (0, 10] keV.
func benchGrid() []float64 {
	ergs := make([]float64, 100)
	for i := range ergs {
		ergs[i] = 0.1 * float64(i+1)
	}
	return ergs
}

// BenchmarkRadialSpectrum measures the full-sphere integrator on a
// 100-point grid.
func BenchmarkRadialSpectrum(b *testing.B) {
	ergs := benchGrid()
	cfg := quadrature.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flux.RadialSpectrum(smoothModel{}, ergs, cfg); err != nil {
			b.Fatalf("RadialSpectrum failed: %v", err)
		}
	}
}

// BenchmarkDiscSpectrum measures the nested disc integrator at one energy;
// the inner singular integral dominates.
func BenchmarkDiscSpectrum(b *testing.B) {
	cfg := quadrature.DefaultConfig()
	cfg.RelTol = 1e-4
	cfg.MaxSubdivisions = 4000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flux.DiscSpectrum(smoothModel{}, 0.5, []float64{3}, cfg); err != nil {
			b.Fatalf("DiscSpectrum failed: %v", err)
		}
	}
}

// BenchmarkWindowedFlux measures the grid-free 2-D integral over [1, 8] keV.
func BenchmarkWindowedFlux(b *testing.B) {
	cfg := quadrature.DefaultConfig()
	cfg.RelTol = 1e-4

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flux.WindowedFlux(smoothModel{}, 1, 8, cfg); err != nil {
			b.Fatalf("WindowedFlux failed: %v", err)
		}
	}
}
