package solarmodel

import (
	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/quadrature"
)

// Named-process conveniences: one-call spectra for the standard channels.
// Each is a thin Restrict + flux call; the engine stays process-agnostic.

// PrimakoffSpectrum computes the full-volume Primakoff spectrum on ergs.
func PrimakoffSpectrum(m *AnalyticModel, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return radialFor(m, Primakoff, ergs, cfg)
}

// PrimakoffDiscSpectrum computes the Primakoff spectrum restricted to the
// solar disc of aperture radius rMax.
func PrimakoffDiscSpectrum(m *AnalyticModel, rMax float64, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return discFor(m, Primakoff, rMax, ergs, cfg)
}

// ComptonSpectrum computes the full-volume Compton spectrum on ergs.
func ComptonSpectrum(m *AnalyticModel, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return radialFor(m, Compton, ergs, cfg)
}

// WeightedComptonSpectrum computes the thermally weighted Compton
// spectrum; grid points at E == 0 are exactly zero by the model's
// zero-energy convention.
func WeightedComptonSpectrum(m *AnalyticModel, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return radialFor(m, WeightedCompton, ergs, cfg)
}

// FFSpectrum computes the free-free (plus electron-electron) spectrum.
func FFSpectrum(m *AnalyticModel, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return radialFor(m, FF, ergs, cfg)
}

// ElectronSpectrum computes the combined axion-electron spectrum.
func ElectronSpectrum(m *AnalyticModel, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return radialFor(m, Electron, ergs, cfg)
}

// ElectronDiscSpectrum computes the combined axion-electron spectrum
// restricted to the solar disc of aperture radius rMax.
func ElectronDiscSpectrum(m *AnalyticModel, rMax float64, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	return discFor(m, Electron, rMax, ergs, cfg)
}

func radialFor(m *AnalyticModel, p Process, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	rm, err := m.Restrict(p)
	if err != nil {
		return flux.Spectrum{}, err
	}
	return flux.RadialSpectrum(rm, ergs, cfg)
}

func discFor(m *AnalyticModel, p Process, rMax float64, ergs []float64, cfg quadrature.Config) (flux.Spectrum, error) {
	rm, err := m.Restrict(p)
	if err != nil {
		return flux.Spectrum{}, err
	}
	return flux.DiscSpectrum(rm, rMax, ergs, cfg)
}
