package flux

import "math"

// Physical constants feeding the one unit-conversion factor every spectrum
// producer applies. Scattering ad-hoc conversions across integration sites
// is how unit bugs happen; everything dimensional lives here.
const (
	// SolarRadius is the nominal solar radius in meters (IAU 2015).
	SolarRadius = 6.957e8
	// SolarDistance is the astronomical unit in meters.
	SolarDistance = 1.495978707e11
	// hbarGeVs is the reduced Planck constant in GeV·s.
	hbarGeVs = 6.582119514e-25
	// hbarcKeVcm is ħc in keV·cm (197.3269804 MeV·fm).
	hbarcKeVcm = 1.973269804e-8
)

// conversionFactor rescales the raw radial/disc integrals — computed in
// natural units over the normalized solar interior — into
// axions / (cm² s keV) at one astronomical unit:
//
//	C = (R_sol[keV⁻¹])³ / (d_sol[cm]² · ħ[keV·s])
//
// R_sol in keV⁻¹ is SolarRadius / (1e-2·ħc[keV·cm]); d_sol in cm is
// 1e2·SolarDistance; ħ in keV·s is 1e6·ħ[GeV·s]. Numerically ≈ 2.97e47.
var conversionFactor = math.Pow(SolarRadius/(1e-2*hbarcKeVcm), 3) /
	(math.Pow(1e2*SolarDistance, 2) * (1e6 * hbarGeVs))

// WindowedFluxScale is the documented output scale of WindowedFlux: the
// returned magnitude is the physical integrated flux multiplied by 1e20,
// purely for numerical-range convenience. Callers comparing against
// physical predictions must divide it back out; it is part of the unit
// contract, never baked into comparisons inside the engine.
const WindowedFluxScale = 1e20

// ConversionFactor exposes the spectrum unit constant for callers that
// need to undo or cross-check the normalization.
func ConversionFactor() float64 { return conversionFactor }
