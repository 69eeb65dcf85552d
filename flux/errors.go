package flux

import "errors"

var (
	// ErrNilModel indicates a nil RateModel was supplied.
	ErrNilModel = errors.New("flux: rate model must be non-nil")
	// ErrBadDomain indicates a model whose spatial domain violates 0 ≤ r_lo < r_hi ≤ 1.
	ErrBadDomain = errors.New("flux: model domain must satisfy 0 ≤ r_lo < r_hi ≤ 1")
	// ErrBadGrid indicates an empty energy grid or one with negative or non-finite entries.
	ErrBadGrid = errors.New("flux: energy grid must be non-empty with finite, non-negative entries")
	// ErrBadWindow indicates an energy window that is not 0 ≤ E_min < E_max.
	ErrBadWindow = errors.New("flux: energy window must satisfy 0 ≤ E_min < E_max")
	// ErrNilInterpolant indicates a nil tabulated-spectrum source.
	ErrNilInterpolant = errors.New("flux: interpolant must be non-nil")
	// ErrOutOfRange indicates a window extending beyond the tabulated
	// spectrum's domain; the engine refuses to extrapolate silently.
	ErrOutOfRange = errors.New("flux: energy window exceeds the tabulated spectrum's domain")
	// ErrBadTable indicates tabulated data that cannot back an interpolant:
	// mismatched lengths, fewer than two points, or non-increasing energies.
	ErrBadTable = errors.New("flux: table needs ≥ 2 points, equal-length columns and strictly increasing energies")
)
