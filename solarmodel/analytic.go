package solarmodel

import (
	"math"

	"github.com/helioscope/axionflux/flux"
)

// AnalyticModel is a smooth stand-in for a tabulated solar structure:
// temperature and effective plasma density fall off monotonically from the
// core, and each production channel is a positive kernel exponentially cut
// off at the local temperature.
//
// Fields (all in solar-radius normalized / keV units):
//   - RadLo, RadHi — spatial domain, 0 ≤ RadLo < RadHi ≤ 1.
//   - TCore        — central temperature [keV].
//   - TSlope       — radial falloff rate of the temperature profile.
//   - DensitySlope — radial falloff rate of the effective density.
type AnalyticModel struct {
	RadLo, RadHi float64
	TCore        float64
	TSlope       float64
	DensitySlope float64
}

// Solar-like defaults: core temperature 1.3 keV, production concentrated
// in the inner ~20% of the radius.
func NewAnalyticModel() *AnalyticModel {
	return &AnalyticModel{
		RadLo:        0.0015,
		RadHi:        0.95,
		TCore:        1.3,
		TSlope:       4.0,
		DensitySlope: 10.0,
	}
}

// Temperature returns the local plasma temperature [keV].
func (m *AnalyticModel) Temperature(radius float64) float64 {
	return m.TCore * math.Exp(-m.TSlope*radius*radius)
}

// density is the effective (normalized) plasma density profile.
func (m *AnalyticModel) density(radius float64) float64 {
	return math.Exp(-m.DensitySlope * radius)
}

// Rate evaluates the emission-rate kernel of one process [keV; natural
// units] at energy [keV] and normalized radius. Unknown processes rate 0.
func (m *AnalyticModel) Rate(p Process, energy, radius float64) float64 {
	t := m.Temperature(radius)
	n := m.density(radius)
	switch p {
	case Primakoff:
		return energy * energy * n / math.Expm1(energy/t+1e-12)
	case Compton:
		return energy * energy * n * n * math.Exp(-energy/t)
	case WeightedCompton:
		w := 0.5 * (1.0 - 1.0/math.Expm1(energy/t))
		return w * energy * energy * n * n * math.Exp(-energy/t)
	case FF:
		return energy * n * n * math.Exp(-energy/t) / math.Sqrt(t)
	case Electron:
		return m.Rate(Compton, energy, radius) + m.Rate(FF, energy, radius)
	default:
		return 0
	}
}

// Restrict binds one process into an opaque flux.RateModel capability.
// The WeightedCompton restriction also opts into the engine's zero-energy
// convention via flux.ZeroEnergyVanisher.
//
// Errors: ErrUnknownProcess for a Process value outside the defined set.
func (m *AnalyticModel) Restrict(p Process) (flux.RateModel, error) {
	if p < 0 || int(p) >= numProcesses {
		return nil, ErrUnknownProcess
	}
	r := restricted{m: m, p: p}
	if p == WeightedCompton {
		return zeroVanishing{r}, nil
	}
	return r, nil
}

// restricted is the single-process view of an AnalyticModel.
type restricted struct {
	m *AnalyticModel
	p Process
}

func (r restricted) Rate(energy, radius float64) float64 { return r.m.Rate(r.p, energy, radius) }
func (r restricted) Temperature(radius float64) float64  { return r.m.Temperature(radius) }
func (r restricted) RLo() float64                        { return r.m.RadLo }
func (r restricted) RHi() float64                        { return r.m.RadHi }

// zeroVanishing marks thermally weighted restrictions.
type zeroVanishing struct{ restricted }

func (zeroVanishing) VanishesAtZeroEnergy() bool { return true }
