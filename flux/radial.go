package flux

import (
	"math"

	"github.com/helioscope/axionflux/quadrature"
)

// RadialSpectrum — energy-differential flux from the full solar volume.
//
// Description:
//
//	For each grid energy E (processed independently, grid order preserved):
//
//	  value(E) = C · ∫_{r_lo}^{r_hi} 0.5·(r·E/π)² · Γ(E, r) dr
//
//	The (r·E/π)² kernel is the geometric phase-space factor for isotropic
//	emission from a shell of radius r observed at one astronomical unit;
//	it belongs to the domain, not to the rate model, and is applied
//	uniformly whatever Γ is.
//
// Special case:
//
//	E == 0 with a model that opted into ZeroEnergyVanisher yields an exact
//	(0, 0) pair without invoking quadrature — the thermal weight of the
//	weighted-Compton variant is indeterminate there.
//
// Errors:
//
//	Per-point convergence failure is not fatal: the point keeps its best
//	estimate and the quadrature error bound lands in Errors[i]. Structural
//	violations abort the whole call:
//	  - ErrNilModel / ErrBadDomain — model contract broken
//	  - ErrBadGrid                 — empty grid, negative or non-finite energy
//	  - quadrature.ErrBadConfig    — invalid tolerances
//
// Complexity: O(len(ergs)) independent adaptive integrations.
func RadialSpectrum(m RateModel, ergs []float64, cfg quadrature.Config) (Spectrum, error) {
	if err := validateModel(m); err != nil {
		return Spectrum{}, err
	}
	if err := validateGrid(ergs); err != nil {
		return Spectrum{}, err
	}

	s := Spectrum{
		Energies: append([]float64(nil), ergs...),
		Values:   make([]float64, len(ergs)),
		Errors:   make([]float64, len(ergs)),
	}
	skipZero := vanishesAtZero(m)
	for i, erg := range ergs {
		if erg == 0 && skipZero {
			continue // exact zero, see ZeroEnergyVanisher
		}
		v, e, err := radialPoint(m, erg, cfg)
		if err != nil {
			return Spectrum{}, err
		}
		s.Values[i] = v
		s.Errors[i] = e
	}
	return s, nil
}

// radialPoint evaluates one grid point of the radial integral, already
// scaled into axions / (cm² s keV). Shared with WindowedFlux, whose outer
// energy quadrature uses it as the integrand.
func radialPoint(m RateModel, erg float64, cfg quadrature.Config) (value, errBound float64, err error) {
	integrand := func(r float64) float64 {
		w := r * erg / math.Pi
		return 0.5 * w * w * m.Rate(erg, r)
	}
	res, err := quadrature.Adaptive(integrand, m.RLo(), m.RHi(), cfg)
	if err != nil {
		return 0, 0, err
	}
	return conversionFactor * res.Value, conversionFactor * res.Error, nil
}

// ThermalWeight is the photon-occupation weighting applied by thermally
// weighted Compton models: 0.5·(1 − 1/(e^{E/T(r)} − 1)). It diverges as
// E → 0, which is why such models opt into ZeroEnergyVanisher.
func ThermalWeight(m RateModel, energy, radius float64) float64 {
	u := energy / m.Temperature(radius)
	return 0.5 * (1.0 - 1.0/math.Expm1(u))
}
