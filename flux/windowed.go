package flux

import (
	"math"

	"github.com/helioscope/axionflux/quadrature"
)

// WindowedFlux — total flux in the energy window [eMin, eMax], computed
// live from the rate model.
//
// Description:
//
//	Conceptually a 2-D integral over radius × energy, performed without
//	ever materializing an energy grid: the outer adaptive quadrature over
//	energy uses one fresh radial integration (radialPoint) as its
//	integrand, each with the caller's tolerances.
//
// Unit contract:
//
//	The returned magnitude is the physical integrated flux
//	[axions / (cm² s)] multiplied by WindowedFluxScale (1e20), purely for
//	numerical range. See the constant's doc.
//
// Errors:
//   - ErrNilModel / ErrBadDomain — model contract broken.
//   - ErrBadWindow               — window not 0 ≤ eMin < eMax, or non-finite.
//   - quadrature.ErrBadConfig    — invalid tolerances.
//     Convergence trouble is soft and lands in the Error field.
func WindowedFlux(m RateModel, eMin, eMax float64, cfg quadrature.Config) (IntegratedFlux, error) {
	if err := validateModel(m); err != nil {
		return IntegratedFlux{}, err
	}
	if math.IsNaN(eMin) || math.IsInf(eMax, 0) || eMin < 0 || eMin >= eMax {
		return IntegratedFlux{}, ErrBadWindow
	}

	skipZero := vanishesAtZero(m)
	integrand := func(erg float64) float64 {
		if erg == 0 && skipZero {
			return 0
		}
		v, _, err := radialPoint(m, erg, cfg)
		if err != nil {
			return 0
		}
		return v
	}

	res, err := quadrature.Adaptive(integrand, eMin, eMax, cfg)
	if err != nil {
		return IntegratedFlux{}, err
	}
	return IntegratedFlux{
		Value: WindowedFluxScale * res.Value,
		Error: WindowedFluxScale * res.Error,
	}, nil
}
