package quadrature

import "errors"

var (
	// ErrNilFunc indicates a nil integrand was supplied.
	ErrNilFunc = errors.New("quadrature: integrand must be non-nil")
	// ErrBadInterval indicates a non-finite or empty integration interval.
	ErrBadInterval = errors.New("quadrature: interval bounds must be finite with a < b")
	// ErrBadConfig indicates an invalid tolerance/budget/rule combination.
	ErrBadConfig = errors.New("quadrature: invalid config (need AbsTol ≥ 0, RelTol ≥ 0, not both zero, MaxSubdivisions ≥ 1, known Rule)")
	// ErrBadBreakpoints indicates a breakpoint list that is too short or not strictly increasing.
	ErrBadBreakpoints = errors.New("quadrature: breakpoints must be strictly increasing with at least two entries")
)
