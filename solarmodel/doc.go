// Package solarmodel provides RateModel capabilities for the flux engine:
// a smooth analytic solar model with the usual axion production processes,
// and a constant model for closed-form checks.
//
// 🚀 What is solarmodel?
//
//	The integration engine in package flux treats all physics as an opaque
//	Γ(E, r) callable. This package supplies concrete callables:
//	  • AnalyticModel — parameterized smooth profiles (temperature, plasma
//	    density) with Primakoff, Compton, weighted-Compton, free-free and
//	    axion-electron rate kernels selected by a Process value
//	  • ConstantModel — Γ ≡ const, for tests against closed-form integrals
//
// ✨ Process selection is a capability, not a branch:
//
//	model := solarmodel.NewAnalyticModel()
//	rm, err := model.Restrict(solarmodel.Primakoff) // a flux.RateModel
//	if err != nil { ... }                           // ErrUnknownProcess
//	spec, err := flux.RadialSpectrum(rm, ergs, quadrature.DefaultConfig())
//
// Restrict binds one process into a flux.RateModel value; the engine never
// learns which process it is integrating. The weighted-Compton restriction
// additionally opts into the zero-energy convention (its thermal weight is
// indeterminate at E == 0).
//
// The analytic kernels are deliberately simple — smooth, positive,
// exponentially cut off at the local temperature — so that examples,
// benchmarks and sampler tests exercise realistic spectral shapes without
// a tabulated solar structure file. Swapping in a file-backed model is a
// matter of implementing flux.RateModel.
package solarmodel
