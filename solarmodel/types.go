// Package solarmodel process identifiers and errors.
package solarmodel

import "errors"

// Process names one axion production channel of an AnalyticModel.
// The flux engine never sees these values; they exist only to select which
// rate kernel a Restrict-ed capability evaluates.
type Process int

const (
	// Primakoff — photon-to-axion conversion in the electrostatic fields
	// of plasma charges.
	Primakoff Process = iota
	// Compton — axion production off thermal electrons.
	Compton
	// WeightedCompton — Compton rate with the photon-occupation thermal
	// weight 0.5·(1 − 1/(e^{E/T} − 1)); vanishes at E == 0 by convention.
	WeightedCompton
	// FF — free-free (bremsstrahlung) plus electron-electron contribution.
	FF
	// Electron — the combined axion-electron rate.
	Electron

	numProcesses = iota
)

// processNames maps Process values to their table/file labels.
var processNames = [numProcesses]string{
	"Primakoff", "Compton", "weightedCompton", "all_ff", "all_axionelectron",
}

// String returns the canonical process label used in table headers.
func (p Process) String() string {
	if p < 0 || int(p) >= numProcesses {
		return "unknown"
	}
	return processNames[p]
}

// ErrUnknownProcess indicates a Process value outside the defined set.
var ErrUnknownProcess = errors.New("solarmodel: unknown process")
