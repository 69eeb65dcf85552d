package solarmodel_test

import (
	"math"
	"testing"

	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/quadrature"
	"github.com/helioscope/axionflux/solarmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyticModel_Profiles: temperature and rates behave like a star —
// positive, hottest in the core, falling outward.
func TestAnalyticModel_Profiles(t *testing.T) {
	m := solarmodel.NewAnalyticModel()

	require.Greater(t, m.Temperature(m.RadLo), 0.0)
	assert.Greater(t, m.Temperature(0.1), m.Temperature(0.8), "temperature falls outward")

	for _, p := range []solarmodel.Process{
		solarmodel.Primakoff, solarmodel.Compton, solarmodel.FF, solarmodel.Electron,
	} {
		core := m.Rate(p, 3.0, 0.05)
		edge := m.Rate(p, 3.0, 0.9)
		assert.Greater(t, core, 0.0, "%v rate positive in the core", p)
		assert.Greater(t, core, edge, "%v production concentrates in the core", p)
	}
}

// TestAnalyticModel_ElectronIsComptonPlusFF: the combined axion-electron
// rate is the sum of its channels.
func TestAnalyticModel_ElectronIsComptonPlusFF(t *testing.T) {
	m := solarmodel.NewAnalyticModel()
	e, r := 2.5, 0.2
	want := m.Rate(solarmodel.Compton, e, r) + m.Rate(solarmodel.FF, e, r)
	assert.InDelta(t, want, m.Rate(solarmodel.Electron, e, r), 1e-15)
}

// TestRestrict_OpaqueCapability: a restricted model satisfies the engine
// contract and forwards to the selected process only.
func TestRestrict_OpaqueCapability(t *testing.T) {
	m := solarmodel.NewAnalyticModel()
	rm, err := m.Restrict(solarmodel.Primakoff)
	require.NoError(t, err)

	assert.Equal(t, m.RadLo, rm.RLo())
	assert.Equal(t, m.RadHi, rm.RHi())
	assert.Equal(t, m.Rate(solarmodel.Primakoff, 2, 0.3), rm.Rate(2, 0.3))
	assert.Equal(t, m.Temperature(0.3), rm.Temperature(0.3))
}

// TestRestrict_WeightedComptonVanishesAtZero: only the thermally weighted
// restriction opts into the zero-energy convention.
func TestRestrict_WeightedComptonVanishesAtZero(t *testing.T) {
	m := solarmodel.NewAnalyticModel()

	wc, err := m.Restrict(solarmodel.WeightedCompton)
	require.NoError(t, err)
	w, ok := wc.(flux.ZeroEnergyVanisher)
	require.True(t, ok, "WeightedCompton restriction must carry the marker")
	assert.True(t, w.VanishesAtZeroEnergy())

	co, err := m.Restrict(solarmodel.Compton)
	require.NoError(t, err)
	_, ok = co.(flux.ZeroEnergyVanisher)
	assert.False(t, ok, "plain Compton has no zero-energy convention")
}

// TestRestrict_UnknownProcess: Process values outside the defined set are
// rejected at binding time, never silently integrated as a zero rate.
func TestRestrict_UnknownProcess(t *testing.T) {
	m := solarmodel.NewAnalyticModel()

	_, err := m.Restrict(solarmodel.Process(99))
	assert.ErrorIs(t, err, solarmodel.ErrUnknownProcess)

	_, err = m.Restrict(solarmodel.Process(-1))
	assert.ErrorIs(t, err, solarmodel.ErrUnknownProcess)
}

// TestProcess_String covers the table labels.
func TestProcess_String(t *testing.T) {
	assert.Equal(t, "Primakoff", solarmodel.Primakoff.String())
	assert.Equal(t, "all_axionelectron", solarmodel.Electron.String())
	assert.Equal(t, "unknown", solarmodel.Process(99).String())
}

// TestSpectrumWrappers: the named-process conveniences produce sane
// spectra and the weighted variant honors the zero-energy convention.
func TestSpectrumWrappers(t *testing.T) {
	m := solarmodel.NewAnalyticModel()
	ergs := []float64{0, 1, 3, 6}
	cfg := quadrature.DefaultConfig()

	prim, err := solarmodel.PrimakoffSpectrum(m, ergs, cfg)
	require.NoError(t, err)
	assert.Greater(t, prim.Values[2], 0.0)

	wc, err := solarmodel.WeightedComptonSpectrum(m, ergs, cfg)
	require.NoError(t, err)
	assert.Zero(t, wc.Values[0], "E=0 is exactly zero for the weighted variant")
	assert.False(t, math.IsNaN(wc.Values[1]))

	el, err := solarmodel.ElectronSpectrum(m, ergs, cfg)
	require.NoError(t, err)
	co, err := solarmodel.ComptonSpectrum(m, ergs, cfg)
	require.NoError(t, err)
	ff, err := solarmodel.FFSpectrum(m, ergs, cfg)
	require.NoError(t, err)
	for i := 1; i < len(ergs); i++ {
		assert.InEpsilon(t, co.Values[i]+ff.Values[i], el.Values[i], 1e-5,
			"electron spectrum is the channel sum at E=%g", ergs[i])
	}
}

// TestUnitModel: the closed-form anchor model.
func TestUnitModel(t *testing.T) {
	u := solarmodel.UnitModel()
	assert.Equal(t, 1.0, u.Rate(5, 0.5))
	assert.Equal(t, 0.0, u.RLo())
	assert.Equal(t, 1.0, u.RHi())

	spec, err := flux.RadialSpectrum(u, []float64{2}, quadrature.DefaultConfig())
	require.NoError(t, err)
	want := flux.ConversionFactor() * 0.5 * (2 / math.Pi) * (2 / math.Pi) / 3.0
	assert.InEpsilon(t, want, spec.Values[0], 1e-9, "unit model reproduces the closed form")
}
