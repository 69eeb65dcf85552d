package flux

import (
	"math"

	"github.com/helioscope/axionflux/quadrature"
)

// innerTolScale tightens the line-of-sight integral relative to the outer
// impact-parameter integral: outer-quadrature error compounds whatever
// error the inner integral commits.
const innerTolScale = 0.1

// DiscSpectrum — energy-differential flux collected from the portion of
// the Sun visible inside a projected aperture of radius rMax (a disc on
// the sky, rather than the full sphere).
//
// Description, per grid energy E:
//
//	outer(E) = C · 0.5·(E/π)² · ∫_{r_lo}^{rMax} b · inner(E, b) db
//	inner(E, b) =               ∫_{b}^{rMax} ρ/√(ρ²−b²) · Γ(E, ρ) dρ
//
//	b is the impact parameter of a line of sight, ρ the radial coordinate
//	along it. The inner integrand carries an integrable inverse-square-root
//	singularity at the tangent point ρ = b, so it runs on the doubly
//	adaptive Clenshaw–Curtis rule (AdaptiveCC) with tolerances tightened by
//	innerTolScale; a singularity-naive rule would silently underestimate
//	the flux near ρ ≈ b. The outer integral uses the plain Gauss–Kronrod
//	rule with the caller's tolerances.
//
// Aperture:
//
//	rMax is clamped to min(rMax, r_hi). If the clamped aperture satisfies
//	rMax ≤ r_lo, the visible disc is empty — a legitimate physical state —
//	and an all-zero Spectrum is returned without invoking quadrature.
//
// Errors: same per-point soft-convergence policy and structural sentinels
// as RadialSpectrum.
func DiscSpectrum(m RateModel, rMax float64, ergs []float64, cfg quadrature.Config) (Spectrum, error) {
	if err := validateModel(m); err != nil {
		return Spectrum{}, err
	}
	if err := validateGrid(ergs); err != nil {
		return Spectrum{}, err
	}
	if math.IsNaN(rMax) {
		return Spectrum{}, ErrBadDomain
	}

	s := Spectrum{
		Energies: append([]float64(nil), ergs...),
		Values:   make([]float64, len(ergs)),
		Errors:   make([]float64, len(ergs)),
	}

	rMin := m.RLo()
	rMax = math.Min(rMax, m.RHi())
	if rMax <= rMin {
		return s, nil // degenerate aperture: nothing of the Sun is visible
	}

	innerCfg := cfg.Scaled(innerTolScale)
	for i, erg := range ergs {
		prefactor := 0.5 * (erg / math.Pi) * (erg / math.Pi)
		if prefactor == 0 {
			continue // E == 0 carries no phase space
		}

		inner := func(b float64) float64 {
			res, ierr := quadrature.AdaptiveCC(func(rho float64) float64 {
				return rho / math.Sqrt(rho*rho-b*b) * m.Rate(erg, rho)
			}, b, rMax, innerCfg)
			if ierr != nil {
				return 0
			}
			return b * res.Value
		}

		res, err := quadrature.Adaptive(inner, rMin, rMax, cfg)
		if err != nil {
			return Spectrum{}, err
		}
		s.Values[i] = conversionFactor * prefactor * res.Value
		s.Errors[i] = conversionFactor * prefactor * res.Error
	}
	return s, nil
}
