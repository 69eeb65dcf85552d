package mcgen

import (
	"math"
	"math/rand"
	"sort"

	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/quadrature"
)

// uniformGridRelTol is the allowed relative wobble of the grid step before
// the grid no longer counts as uniform (trapezoid weights assume one Δ).
const uniformGridRelTol = 1e-9

// Generator inverts the cumulative distribution of a spectrum. Built once,
// then immutable; rebuilt (never mutated) when the underlying spectrum
// changes.
type Generator struct {
	energies []float64
	cdf      []float64
	norm     float64
}

// New builds a Generator from a spectrum on a uniform energy grid.
//
// Algorithm:
//  1. Validate: ≥ 2 points, finite non-negative energies and values,
//     uniform step Δ.
//  2. Trapezoidal accumulation:
//     cum[0] = 0; cum[i] = cum[i-1] + 0.5·Δ·(v[i] + v[i-1]).
//  3. norm = cum[last]; fail if norm ≤ 0 (nothing to sample).
//  4. Normalize; cum is non-decreasing by construction and ends at 1.
//
// Errors: ErrBadSpectrum, ErrNonUniformGrid, ErrDegenerateSpectrum.
func New(s flux.Spectrum) (*Generator, error) {
	n := s.Len()
	if n < 2 || len(s.Values) != n {
		return nil, ErrBadSpectrum
	}
	// Energies must be checked before the step test: a NaN gap compares
	// false against any tolerance and would slip through it.
	for _, e := range s.Energies {
		if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
			return nil, ErrBadSpectrum
		}
	}
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, ErrBadSpectrum
		}
	}
	delta := s.Energies[1] - s.Energies[0]
	if !(delta > 0) {
		return nil, ErrNonUniformGrid
	}
	for i := 2; i < n; i++ {
		if math.Abs((s.Energies[i]-s.Energies[i-1])-delta) > uniformGridRelTol*delta {
			return nil, ErrNonUniformGrid
		}
	}

	g := &Generator{
		energies: append([]float64(nil), s.Energies...),
		cdf:      make([]float64, n),
	}
	cum := 0.0
	for i := 1; i < n; i++ {
		cum += 0.5 * delta * (s.Values[i] + s.Values[i-1])
		g.cdf[i] = cum
	}
	if cum <= 0 {
		return nil, ErrDegenerateSpectrum
	}
	g.norm = cum
	for i := range g.cdf {
		g.cdf[i] /= cum
	}
	g.cdf[n-1] = 1.0 // exact upper endpoint, immune to rounding
	return g, nil
}

// FromProcess is the full Monte Carlo construction pipeline: build the
// uniform grid eMin + i·eStep (i = 0..n-1, n = ⌊(eMax−eMin)/eStep⌋,
// matching the flux-table convention of stopping short of eMax when the
// step does not divide the window), disc-integrate the rate model over an
// aperture of min(rMax, 1), and invert the resulting spectrum.
//
// Errors: ErrBadRange for a bad grid request, flux/quadrature sentinels
// from the spectrum computation, and New's errors.
func FromProcess(m flux.RateModel, eMin, eMax, eStep, rMax float64, cfg quadrature.Config) (*Generator, error) {
	if math.IsNaN(eMin) || math.IsNaN(eMax) || math.IsInf(eMax, 0) || eMin < 0 || eMin >= eMax || !(eStep > 0) {
		return nil, ErrBadRange
	}
	n := int((eMax - eMin) / eStep)
	if n < 2 {
		return nil, ErrBadRange
	}
	ergs := make([]float64, n)
	for i := range ergs {
		ergs[i] = eMin + float64(i)*eStep
	}

	spec, err := flux.DiscSpectrum(m, math.Min(rMax, 1.0), ergs, cfg)
	if err != nil {
		return nil, err
	}
	return New(spec)
}

// Norm returns the pre-normalization integrated norm of the spectrum —
// the total flux mass the sampler represents.
func (g *Generator) Norm() float64 { return g.norm }

// Energies returns a copy of the grid backing the table.
func (g *Generator) Energies() []float64 { return append([]float64(nil), g.energies...) }

// CDF returns a copy of the normalized cumulative table, index-aligned
// with Energies.
func (g *Generator) CDF() []float64 { return append([]float64(nil), g.cdf...) }

// InverseCDF maps a uniform variate u to an energy. u is clamped to
// [0, 1]; u = 0 returns the grid minimum, u = 1 the grid maximum. Within
// the table the bracketing interval is found by binary search and the
// energy recovered by linear interpolation; a u landing on a zero-valued
// plateau of the CDF resolves to the first (lowest-energy) interval.
func (g *Generator) InverseCDF(u float64) float64 {
	if u <= 0 {
		return g.energies[0]
	}
	if u >= 1 {
		return g.energies[len(g.energies)-1]
	}
	// First index with cdf[i] ≥ u; i ≥ 1 since cdf[0] = 0 < u.
	i := sort.SearchFloat64s(g.cdf, u)
	lo, hi := g.cdf[i-1], g.cdf[i]
	t := (u - lo) / (hi - lo) // hi > u-bracket lower bound by search contract
	return g.energies[i-1] + t*(g.energies[i]-g.energies[i-1])
}

// Draw samples one energy using the supplied RNG; a nil rng selects the
// deterministic default stream.
func (g *Generator) Draw(rng *rand.Rand) float64 {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return g.InverseCDF(rng.Float64())
}

// DrawN samples n energies deterministically from the given seed
// (seed==0 ⇒ default stream).
//
// Errors: ErrBadSampleCount if n < 0.
func (g *Generator) DrawN(n int, seed int64) ([]float64, error) {
	if n < 0 {
		return nil, ErrBadSampleCount
	}
	rng := rngFromSeed(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = g.InverseCDF(rng.Float64())
	}
	return out, nil
}
