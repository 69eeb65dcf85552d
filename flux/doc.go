// Package flux turns a pointwise axion emission-rate model Γ(E, r) into
// spectra and integrated fluxes.
//
// 🚀 What is flux?
//
//	Four integrators, all bottoming out in package quadrature — no
//	component performs its own ad-hoc numerical integration:
//	  • RadialSpectrum  — full-sphere spectrum: per grid energy E,
//	    C·∫ 0.5·(r·E/π)²·Γ(E,r) dr over the solar interior [r_lo, r_hi]
//	  • DiscSpectrum    — restricted-aperture spectrum: nested integral
//	    over impact parameter b and line-of-sight coordinate ρ, with an
//	    integrable 1/√(ρ²−b²) singularity at the tangent point handled by
//	    the doubly adaptive Clenshaw–Curtis rule
//	  • WindowedFlux    — single-number flux over an energy window,
//	    nesting a fresh radial integration inside an outer energy
//	    quadrature (a 2-D integral that never materializes a grid)
//	  • TabulatedFlux   — integrates a precomputed, interpolated spectrum
//	    over a window, optionally breakpoint-aware across the known
//	    axion-electron resonance lines
//
// ✨ Unit contract:
//
//	Spectrum values carry axions / (cm² s keV); the single dimensional
//	constant C = R³_sol[keV⁻³] / (d²_sol[cm²] · ħ[keV·s]) is applied by
//	every spectrum producer (see constants.go). WindowedFlux additionally
//	scales its return by 1e20 for numerical range; see WindowedFluxScale.
//
// Error handling:
//   - per-grid-point quadrature convergence failure is soft: the best
//     estimate lands in Values[i], its bound in Errors[i]
//   - structural violations (bad grid, bad window, out-of-range table)
//     are sentinel errors surfaced before any quadrature runs
//   - a disc aperture that clamps to nothing returns an all-zero
//     spectrum — a legitimate "no visible disc" state, not an error
//
// ⚙️ Usage:
//
//	model, err := solarmodel.NewAnalyticModel().Restrict(solarmodel.Primakoff)
//	if err != nil { ... }
//	ergs := []float64{1, 2, 3} // keV
//	spec, err := flux.RadialSpectrum(model, ergs, quadrature.DefaultConfig())
//
// See example_test.go for complete scenarios.
package flux
