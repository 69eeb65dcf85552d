// Package flux core types: the RateModel capability consumed by every
// integrator and the Spectrum / IntegratedFlux artifacts they produce.
package flux

import "math"

// RateModel is the opaque physics capability the engine integrates over.
// It may represent Primakoff, Compton, free-free, opacity-table or
// axion-electron production; the engine never branches on which.
//
// Contract:
//   - Rate(E, r) ≥ 0 for energy E ≥ 0 [keV] and radius r ∈ [RLo(), RHi()]
//     (solar-radius normalized units)
//   - Temperature(r) > 0 [keV] over the same domain
//   - the spatial domain satisfies 0 ≤ RLo() < RHi() ≤ 1 and is owned by
//     the model; the engine reads it, never mutates it
type RateModel interface {
	Rate(energy, radius float64) float64
	Temperature(radius float64) float64
	RLo() float64
	RHi() float64
}

// ZeroEnergyVanisher is an optional marker for rate models whose thermal
// weighting is indeterminate at E == 0 (the weighted-Compton variant).
// Models implementing it with VanishesAtZeroEnergy() == true get an exact
// zero at E == 0 from RadialSpectrum instead of a quadrature evaluation.
// This is a model-level convention, not an engine-generic rule: a
// different rate model might need a different zero-energy behavior.
type ZeroEnergyVanisher interface {
	VanishesAtZeroEnergy() bool
}

// Spectrum holds parallel, index-aligned sequences: Values[i] and
// Errors[i] belong to Energies[i], in the caller's grid order. Values are
// in axions / (cm² s keV); Errors are the quadrature error bounds in the
// same units. A Spectrum is immutable once produced.
type Spectrum struct {
	Energies []float64
	Values   []float64
	Errors   []float64
}

// Len returns the number of grid points.
func (s Spectrum) Len() int { return len(s.Energies) }

// IntegratedFlux is a single integrated flux value with its quadrature
// error bound. Returned by value; ephemeral.
type IntegratedFlux struct {
	Value float64
	Error float64
}

// Interpolant is the contract for a previously computed spectrum
// re-expressed as a continuous function of energy, e.g. one read back from
// a flux table file. Interpolate must be defined on [Lower(), Upper()];
// the engine never queries outside that range.
type Interpolant interface {
	Interpolate(energy float64) float64
	Lower() float64
	Upper() float64
}

// validateModel checks the RateModel structural contract shared by all
// integrators.
func validateModel(m RateModel) error {
	if m == nil {
		return ErrNilModel
	}
	lo, hi := m.RLo(), m.RHi()
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || lo >= hi || hi > 1 {
		return ErrBadDomain
	}
	return nil
}

// validateGrid checks the EnergyGrid contract.
func validateGrid(ergs []float64) error {
	if len(ergs) == 0 {
		return ErrBadGrid
	}
	for _, e := range ergs {
		if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
			return ErrBadGrid
		}
	}
	return nil
}

// vanishesAtZero reports whether m opted into the zero-energy convention.
func vanishesAtZero(m RateModel) bool {
	z, ok := m.(ZeroEnergyVanisher)
	return ok && z.VanishesAtZeroEnergy()
}
