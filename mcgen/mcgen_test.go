package mcgen_test

import (
	"math"
	"testing"

	"github.com/helioscope/axionflux/flux"
	"github.com/helioscope/axionflux/mcgen"
	"github.com/helioscope/axionflux/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// flatSpectrum is a uniform spectrum over [0, 10] keV with step 1.
func flatSpectrum() flux.Spectrum {
	energies := make([]float64, 11)
	floats.Span(energies, 0, 10)
	values := make([]float64, 11)
	for i := range values {
		values[i] = 3.5 // any positive constant; normalization removes it
	}
	return flux.Spectrum{Energies: energies, Values: values, Errors: make([]float64, 11)}
}

// TestNew_Validation rejects spectra that cannot back a sampler.
func TestNew_Validation(t *testing.T) {
	_, err := mcgen.New(flux.Spectrum{Energies: []float64{1}, Values: []float64{1}})
	assert.ErrorIs(t, err, mcgen.ErrBadSpectrum, "single point")

	_, err = mcgen.New(flux.Spectrum{Energies: []float64{0, 1}, Values: []float64{1, -1}})
	assert.ErrorIs(t, err, mcgen.ErrBadSpectrum, "negative value")

	_, err = mcgen.New(flux.Spectrum{Energies: []float64{0, 1, 3}, Values: []float64{1, 1, 1}})
	assert.ErrorIs(t, err, mcgen.ErrNonUniformGrid, "uneven step")

	_, err = mcgen.New(flux.Spectrum{Energies: []float64{1, 0}, Values: []float64{1, 1}})
	assert.ErrorIs(t, err, mcgen.ErrNonUniformGrid, "descending grid")
}

// TestNew_RejectsNonFiniteEnergies: a NaN grid gap compares false against
// the uniformity tolerance, so energies must be rejected before the step
// check — otherwise the sampler builds and silently emits NaN draws.
func TestNew_RejectsNonFiniteEnergies(t *testing.T) {
	values := []float64{1, 1, 1, 1}

	_, err := mcgen.New(flux.Spectrum{Energies: []float64{0, 1, math.NaN(), 3}, Values: values})
	assert.ErrorIs(t, err, mcgen.ErrBadSpectrum, "NaN energy must fail at build time")

	_, err = mcgen.New(flux.Spectrum{Energies: []float64{0, 1, math.Inf(1), 3}, Values: values})
	assert.ErrorIs(t, err, mcgen.ErrBadSpectrum, "infinite energy must fail at build time")

	_, err = mcgen.New(flux.Spectrum{Energies: []float64{-3, -2, -1, 0}, Values: values})
	assert.ErrorIs(t, err, mcgen.ErrBadSpectrum, "negative energy must fail at build time")
}

// TestNew_DegenerateSpectrum: a zero-mass spectrum fails synchronously at
// build time, never at first-draw time.
func TestNew_DegenerateSpectrum(t *testing.T) {
	s := flatSpectrum()
	for i := range s.Values {
		s.Values[i] = 0
	}
	_, err := mcgen.New(s)
	assert.ErrorIs(t, err, mcgen.ErrDegenerateSpectrum)
}

// TestNew_FlatSpectrumCDF: a flat spectrum over [0,10] with step 1 must
// produce cum[i] ≈ i/10, anchored exactly at 0 and 1.
func TestNew_FlatSpectrumCDF(t *testing.T) {
	gen, err := mcgen.New(flatSpectrum())
	require.NoError(t, err)

	cdf := gen.CDF()
	require.Len(t, cdf, 11)
	assert.Equal(t, 0.0, cdf[0], "cum[0] is exactly zero")
	assert.Equal(t, 1.0, cdf[len(cdf)-1], "cum[last] is exactly one")
	for i := range cdf {
		assert.InDelta(t, float64(i)/10.0, cdf[i], 1e-12, "flat spectrum ⇒ linear CDF at i=%d", i)
	}
	assert.InDelta(t, 35.0, gen.Norm(), 1e-12, "norm is the trapezoid mass 3.5·10")
}

// TestNew_Monotonicity: the table is non-decreasing for any non-negative
// spectrum.
func TestNew_Monotonicity(t *testing.T) {
	s := flatSpectrum()
	s.Values = []float64{0, 2, 5, 0, 0, 1, 4, 2, 0, 1, 3}
	gen, err := mcgen.New(s)
	require.NoError(t, err)

	cdf := gen.CDF()
	for i := 1; i < len(cdf); i++ {
		assert.GreaterOrEqual(t, cdf[i], cdf[i-1], "CDF must never decrease")
	}
}

// TestInverseCDF_RoundTrip: evaluating at the stored cumulative values
// recovers the grid energies; the endpoints map to the grid extremes.
func TestInverseCDF_RoundTrip(t *testing.T) {
	gen, err := mcgen.New(flatSpectrum())
	require.NoError(t, err)

	cdf := gen.CDF()
	energies := gen.Energies()
	for i := 1; i < len(cdf)-1; i++ {
		assert.InDelta(t, energies[i], gen.InverseCDF(cdf[i]), 1e-9, "round trip at interior i=%d", i)
	}
	assert.Equal(t, energies[0], gen.InverseCDF(0), "u=0 ⇒ grid minimum")
	assert.Equal(t, energies[len(energies)-1], gen.InverseCDF(1), "u=1 ⇒ grid maximum")
	assert.Equal(t, energies[len(energies)-1], gen.InverseCDF(1.5), "u clamps above 1")
	assert.Equal(t, energies[0], gen.InverseCDF(-0.5), "u clamps below 0")
}

// TestInverseCDF_PlateauTies: a zero-valued plateau makes the CDF flat;
// inversion at the plateau value must resolve to the first (lowest-energy)
// interval.
func TestInverseCDF_PlateauTies(t *testing.T) {
	s := flux.Spectrum{
		Energies: []float64{0, 1, 2, 3, 4, 5},
		Values:   []float64{1, 1, 0, 0, 1, 1},
	}
	gen, err := mcgen.New(s)
	require.NoError(t, err)

	cdf := gen.CDF()
	require.Equal(t, cdf[2], cdf[3], "zero plateau must flatten the CDF")

	at := gen.InverseCDF(cdf[2])
	assert.LessOrEqual(t, at, 2.0, "tie resolves to the lowest-energy interval")

	above := gen.InverseCDF(cdf[2] + 1e-9)
	assert.Greater(t, above, 3.0, "just past the plateau lands beyond it")
}

// TestDrawN_Deterministic: same seed ⇒ identical draws; seed 0 follows the
// default-stream policy.
func TestDrawN_Deterministic(t *testing.T) {
	gen, err := mcgen.New(flatSpectrum())
	require.NoError(t, err)

	a, err := gen.DrawN(64, 42)
	require.NoError(t, err)
	b, err := gen.DrawN(64, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce draws exactly")

	zero, err := gen.DrawN(16, 0)
	require.NoError(t, err)
	one, err := gen.DrawN(16, 1)
	require.NoError(t, err)
	assert.Equal(t, one, zero, "seed 0 selects the fixed default stream")

	_, err = gen.DrawN(-1, 1)
	assert.ErrorIs(t, err, mcgen.ErrBadSampleCount)
}

// TestDrawN_FlatSpectrumStatistics: a flat spectrum samples uniformly over
// [0, 10]: every draw in range, mean near 5.
func TestDrawN_FlatSpectrumStatistics(t *testing.T) {
	gen, err := mcgen.New(flatSpectrum())
	require.NoError(t, err)

	draws, err := gen.DrawN(20000, 7)
	require.NoError(t, err)

	sum := 0.0
	for _, d := range draws {
		require.GreaterOrEqual(t, d, 0.0)
		require.LessOrEqual(t, d, 10.0)
		sum += d
	}
	assert.InDelta(t, 5.0, sum/float64(len(draws)), 0.15, "uniform draws average to the midpoint")
}

// TestFromProcess builds the full pipeline from a constant rate model.
func TestFromProcess(t *testing.T) {
	m := unitSphere{}
	cfg := quadrature.DefaultConfig()
	cfg.RelTol = 1e-4
	cfg.MaxSubdivisions = 4000

	gen, err := mcgen.FromProcess(m, 1.0, 2.0, 0.1, 1.0, cfg)
	require.NoError(t, err)
	assert.Greater(t, gen.Norm(), 0.0)

	energies := gen.Energies()
	require.Len(t, energies, 10, "⌊(2−1)/0.1⌋ grid points, stopping short of eMax")
	assert.InDelta(t, 1.0, energies[0], 1e-12)
	assert.InDelta(t, 1.9, energies[len(energies)-1], 1e-12)
}

// TestFromProcess_Validation covers the grid-request contract.
func TestFromProcess_Validation(t *testing.T) {
	cfg := quadrature.DefaultConfig()

	_, err := mcgen.FromProcess(unitSphere{}, 2, 1, 0.1, 1, cfg)
	assert.ErrorIs(t, err, mcgen.ErrBadRange, "inverted window")

	_, err = mcgen.FromProcess(unitSphere{}, 1, 2, 0, 1, cfg)
	assert.ErrorIs(t, err, mcgen.ErrBadRange, "zero step")

	_, err = mcgen.FromProcess(unitSphere{}, 1, 2, 0.9, 1, cfg)
	assert.ErrorIs(t, err, mcgen.ErrBadRange, "fewer than two grid points")

	_, err = mcgen.FromProcess(unitSphere{}, 1, math.NaN(), 0.1, 1, cfg)
	assert.ErrorIs(t, err, mcgen.ErrBadRange, "NaN eMax must be rejected explicitly")
}

// unitSphere is the Γ ≡ 1 full-interior model.
type unitSphere struct{}

func (unitSphere) Rate(energy, radius float64) float64 { return 1 }
func (unitSphere) Temperature(radius float64) float64  { return 1 }
func (unitSphere) RLo() float64                        { return 0 }
func (unitSphere) RHi() float64                        { return 1 }
