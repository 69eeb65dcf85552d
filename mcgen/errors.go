package mcgen

import "errors"

var (
	// ErrBadSpectrum indicates a spectrum with fewer than two points, or
	// negative / non-finite energies or values.
	ErrBadSpectrum = errors.New("mcgen: spectrum needs ≥ 2 grid points with finite, non-negative energies and values")
	// ErrNonUniformGrid indicates energy spacing that is not a constant step.
	ErrNonUniformGrid = errors.New("mcgen: inverse CDF construction requires a uniform energy grid")
	// ErrDegenerateSpectrum indicates an integrated norm ≤ 0: no sampler
	// can be built from a zero-mass spectrum.
	ErrDegenerateSpectrum = errors.New("mcgen: spectrum has non-positive integrated norm")
	// ErrBadRange indicates an invalid (eMin, eMax, eStep) grid request.
	ErrBadRange = errors.New("mcgen: require 0 ≤ eMin < eMax and eStep > 0 spanning ≥ 2 grid points")
	// ErrBadSampleCount indicates a negative draw count.
	ErrBadSampleCount = errors.New("mcgen: sample count must be non-negative")
)
