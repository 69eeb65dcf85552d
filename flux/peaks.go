package flux

// electronPeaks lists the energies [keV] of the narrow resonance lines in
// the axion-electron spectrum (free-bound and bound-bound transitions of
// metals in the solar plasma). Spectra including electron interactions are
// dominated by these lines in narrow windows, which defeats naive
// quadrature; TabulatedFluxWithPeaks pins breakpoints on them.
var electronPeaks = []float64{
	0.653029, 0.779074, 0.920547, 0.956836, 1.02042, 1.05343, 1.3497,
	1.40807, 1.46949, 1.59487, 1.62314, 1.65075, 1.72461, 1.76286,
	1.86037, 2.00007, 2.45281, 2.61233, 3.12669, 3.30616, 3.88237,
	4.08163, 5.64394, 5.76064, 6.14217, 6.19863, 6.58874, 6.63942,
	6.66482, 7.68441, 7.74104, 7.76785,
}

// ElectronPeaks returns a copy of the known axion-electron resonance
// energies in ascending order [keV].
func ElectronPeaks() []float64 {
	return append([]float64(nil), electronPeaks...)
}
