// Package axionflux computes energy-differential solar axion production
// fluxes and the sampling machinery derived from them — adaptive quadrature
// over the solar interior, restricted-aperture (solar disc) integration,
// and inverse-CDF Monte Carlo generators.
//
// 🚀 What is axionflux?
//
//	A pure-Go numerical engine that turns a pointwise axion emission-rate
//	model Γ(E, r) into:
//	  • tabulated flux spectra over an energy grid [axions / cm² s keV]
//	  • single-number integrated fluxes over an energy window
//	  • a normalized inverse cumulative distribution for drawing random
//	    axion energies consistent with the computed spectrum
//
// ✨ Why choose axionflux?
//
//   - Correct quadrature – globally adaptive Gauss–Kronrod, a doubly
//     adaptive Clenshaw–Curtis rule for integrable endpoint singularities,
//     and breakpoint-aware integration across narrow resonance lines
//   - Process-agnostic – Primakoff, Compton, free-free or axion-electron
//     rates are all just RateModel capabilities; the engine never branches
//     on process identity
//   - No hidden state – per-call scratch workspaces, explicit tolerances,
//     one documented unit-conversion constant
//
// Everything is organized under four subpackages:
//
//	quadrature/ — adaptive integration rules, tolerances & workspaces
//	flux/       — radial, disc, windowed and tabulated flux integrators
//	mcgen/      — inverse-CDF builder & Monte Carlo energy sampler
//	solarmodel/ — RateModel capability interface + analytic toy models
//
// Quick sketch of the data flow:
//
//	RateModel ──▶ flux.RadialSpectrum / flux.DiscSpectrum ──▶ Spectrum
//	Spectrum  ──▶ flux.TabulatedFlux ──▶ IntegratedFlux
//	Spectrum  ──▶ mcgen.New ──▶ Generator.InverseCDF(u) ──▶ energy draw
//
// Dive into the per-package docs for algorithms, tolerances and the exact
// error-handling contract.
//
//	go get github.com/helioscope/axionflux
package axionflux
