// Package quadrature defines the configuration and result types shared by
// all adaptive integration rules.
package quadrature

import "math"

// Func is a one-dimensional integrand. Implementations must be pure for the
// duration of a call; the engine may evaluate them in any order.
type Func func(x float64) float64

// Rule selects the Gauss–Kronrod pair used by Adaptive on each segment.
//
//   - GK15 — 7-point Gauss / 15-point Kronrod. Cheapest; good default for
//     integrands with localized structure (more, smaller segments).
//   - GK21 — 10-point Gauss / 21-point Kronrod. Higher order per segment;
//     preferred for smooth integrands.
type Rule int

const (
	// GK15 selects the 7/15 Gauss–Kronrod pair.
	GK15 Rule = iota
	// GK21 selects the 10/21 Gauss–Kronrod pair.
	GK21
)

// Config carries the tolerances and effort budget for one integration call.
//
// Fields:
//   - AbsTol          — absolute tolerance target (≥ 0).
//   - RelTol          — relative tolerance target (≥ 0). AbsTol and RelTol
//     must not both be zero.
//   - MaxSubdivisions — maximum number of interval splits before the call
//     gives up and reports its best estimate (≥ 1).
//   - Rule            — Gauss–Kronrod pair for Adaptive; AdaptiveCC ignores
//     it (it always uses the nested Clenshaw–Curtis ladder).
//
// Example:
//
//	cfg := quadrature.DefaultConfig()
//	cfg.RelTol = 1e-8
//	res, err := quadrature.Adaptive(f, 0, 1, cfg)
type Config struct {
	AbsTol          float64
	RelTol          float64
	MaxSubdivisions int
	Rule            Rule
}

// Default tolerances mirror the integration precision the solar flux
// integrators were tuned with.
const (
	defaultAbsTol          = 0.0
	defaultRelTol          = 1e-6
	defaultMaxSubdivisions = 1000
)

// DefaultConfig returns the engine-wide default integration settings:
// pure relative tolerance 1e-6, up to 1000 subdivisions, GK21 segments.
func DefaultConfig() Config {
	return Config{
		AbsTol:          defaultAbsTol,
		RelTol:          defaultRelTol,
		MaxSubdivisions: defaultMaxSubdivisions,
		Rule:            GK21,
	}
}

// Scaled returns a copy of c with both tolerances multiplied by s.
// The disc integrator uses it to tighten the inner line-of-sight integral
// relative to the outer one (outer error compounds inner error).
func (c Config) Scaled(s float64) Config {
	c.AbsTol *= s
	c.RelTol *= s
	return c
}

// validate reports whether c satisfies the Config invariants.
func (c Config) validate() error {
	if c.AbsTol < 0 || c.RelTol < 0 || (c.AbsTol == 0 && c.RelTol == 0) {
		return ErrBadConfig
	}
	if math.IsNaN(c.AbsTol) || math.IsNaN(c.RelTol) {
		return ErrBadConfig
	}
	if c.MaxSubdivisions < 1 {
		return ErrBadConfig
	}
	if c.Rule != GK15 && c.Rule != GK21 {
		return ErrBadConfig
	}
	return nil
}

// tolerance computes the convergence target for a running estimate v.
func (c Config) tolerance(v float64) float64 {
	return math.Max(c.AbsTol, c.RelTol*math.Abs(v))
}

// Result is the outcome of one integration call.
//
// Converged=false is a soft condition: the subdivision budget ran out
// before the tolerance was met, and Value/Error are the best available
// estimate and its error bound. Callers decide whether a large Error is
// acceptable; the engine never turns it into a hard failure.
type Result struct {
	Value       float64
	Error       float64
	Evaluations int
	Converged   bool
}
